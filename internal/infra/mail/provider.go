package mail

import (
	"log/slog"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/domain/constants"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NewEmailSender creates the EmailSender selected by mail.driver.
func NewEmailSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	mailCfg := cfg.Mail

	switch mailCfg.Driver {
	case constants.MailDriverLog, "":
		logger.Info("Using log mail driver, emails are not delivered")

		return NewLogSender(logger), nil

	case constants.MailDriverSMTP:
		if mailCfg.Host == "" || mailCfg.Port == 0 {
			return nil, errors.New("mail.host and mail.port are required for the smtp driver")
		}
		if mailCfg.From == "" {
			return nil, errors.New("mail.from is required for the smtp driver")
		}
		logger.Info("Using SMTP mail driver",
			slog.String("host", mailCfg.Host),
			slog.Int("port", mailCfg.Port),
		)

		return NewSMTPSender(*mailCfg, logger), nil

	default:
		return nil, errors.Errorf("unknown mail driver: %s", mailCfg.Driver)
	}
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEmailSender, NewComposer),
)
