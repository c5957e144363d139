// Package mail delivers application email over SMTP or to the log.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/pkg/errors"
)

const implicitTLSPort = 465

// smtpSender sends HTML email through an SMTP relay. Port 465 uses implicit
// TLS; other ports upgrade with STARTTLS when the server offers it.
type smtpSender struct {
	cfg    config.MailConfig
	logger *slog.Logger
}

// NewSMTPSender creates an SMTP EmailSender.
func NewSMTPSender(cfg config.MailConfig, logger *slog.Logger) service.EmailSender {
	return &smtpSender{cfg: cfg, logger: logger}
}

func (s *smtpSender) Send(ctx context.Context, email service.Email) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	conn, err := s.dial(ctx, addr)
	if err != nil {
		return errors.Wrap(err, "mail: dial")
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return errors.Wrap(err, "mail: set deadline")
		}
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return errors.Wrap(err, "mail: handshake")
	}
	defer client.Close()

	if s.cfg.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
				return errors.Wrap(err, "mail: starttls")
			}
		}
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "mail: auth")
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return errors.Wrap(err, "mail: sender rejected")
	}
	if err := client.Rcpt(email.To); err != nil {
		return errors.Wrap(err, "mail: recipient rejected")
	}

	w, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "mail: data")
	}
	if _, err := w.Write(buildMessage(s.cfg, email)); err != nil {
		return errors.Wrap(err, "mail: write body")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "mail: close body")
	}

	s.logger.Debug("Email sent",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
	)

	return client.Quit()
}

func (s *smtpSender) dial(ctx context.Context, addr string) (net.Conn, error) {
	if s.cfg.Port == implicitTLSPort {
		dialer := &tls.Dialer{Config: &tls.Config{ServerName: s.cfg.Host}}

		return dialer.DialContext(ctx, "tcp", addr)
	}

	var dialer net.Dialer

	return dialer.DialContext(ctx, "tcp", addr)
}

// buildMessage renders the RFC 5322 headers and HTML body.
func buildMessage(cfg config.MailConfig, email service.Email) []byte {
	from := cfg.From
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", cfg.FromName), cfg.From)
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + email.To + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("UTF-8", email.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.HTML)

	return []byte(b.String())
}
