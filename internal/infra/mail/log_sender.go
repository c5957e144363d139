package mail

import (
	"context"
	"log/slog"

	deliverycontext "github.com/thenextech/shoploc-back-end/internal/delivery/context"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"
)

// logSender records outgoing email in the log instead of sending it. The body
// is omitted because it may carry a verification code.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates an EmailSender for local development.
func NewLogSender(logger *slog.Logger) service.EmailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, email service.Email) error {
	deliverycontext.LoggerFrom(ctx, s.logger).Info("[LogMail] Email not sent, mail driver is log",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.Int("body_bytes", len(email.HTML)),
	)

	return nil
}
