package mail

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposer_VerificationCode(t *testing.T) {
	email, err := NewComposer().VerificationCode("Ada <Lovelace>", "012345")
	require.NoError(t, err)

	assert.Equal(t, verificationSubject, email.Subject)
	assert.Contains(t, email.HTML, "012345")
	assert.Contains(t, email.HTML, "Ada &lt;Lovelace&gt;")
}

func TestComposer_NewOrderLine(t *testing.T) {
	email, err := NewComposer().NewOrderLine("Boulangerie", "Baguette", 3)
	require.NoError(t, err)

	assert.Equal(t, newOrderLineSubject, email.Subject)
	assert.Contains(t, email.HTML, "3 x Baguette")
}

func TestBuildMessage(t *testing.T) {
	raw := string(buildMessage(
		config.MailConfig{From: "noreply@shoploc.fr", FromName: "ShopLoc"},
		service.Email{To: "a@x.com", Subject: "Code de vérification", HTML: "<p>hi</p>"},
	))

	assert.Contains(t, raw, "From: ShopLoc <noreply@shoploc.fr>\r\n")
	assert.Contains(t, raw, "To: a@x.com\r\n")
	assert.Contains(t, raw, "Subject: =?UTF-8?q?")
	assert.Contains(t, raw, "Content-Type: text/html; charset=\"UTF-8\"\r\n")
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\n<p>hi</p>"))
}

func TestNewEmailSender(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sender, err := NewEmailSender(&config.Config{Mail: &config.MailConfig{Driver: "log"}}, logger)
	require.NoError(t, err)
	assert.NoError(t, sender.Send(context.Background(), service.Email{To: "a@x.com"}))

	_, err = NewEmailSender(&config.Config{Mail: &config.MailConfig{Driver: "smtp"}}, logger)
	assert.Error(t, err)

	_, err = NewEmailSender(&config.Config{Mail: &config.MailConfig{Driver: "pigeon"}}, logger)
	assert.Error(t, err)
}

// fakeSMTPServer accepts one session without auth or STARTTLS and returns the DATA payload.
func fakeSMTPServer(t *testing.T) (port int, received <-chan string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	out := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

		r := bufio.NewReader(conn)
		write := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }

		write("220 localhost ESMTP")
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			cmd := strings.ToUpper(strings.TrimSpace(line))

			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				write("250 localhost")
			case strings.HasPrefix(cmd, "MAIL FROM"), strings.HasPrefix(cmd, "RCPT TO"):
				write("250 OK")
			case cmd == "DATA":
				write("354 End data with <CR><LF>.<CR><LF>")
				var body strings.Builder
				for {
					dataLine, err := r.ReadString('\n')
					if err != nil {
						return
					}
					if dataLine == ".\r\n" {
						break
					}
					body.WriteString(dataLine)
				}
				out <- body.String()
				write("250 OK queued")
			case cmd == "QUIT":
				write("221 Bye")

				return
			default:
				write("250 OK")
			}
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port, out
}

func TestSMTPSender_Send(t *testing.T) {
	port, received := fakeSMTPServer(t)

	sender := NewSMTPSender(config.MailConfig{
		Host:     "127.0.0.1",
		Port:     port,
		From:     "noreply@shoploc.fr",
		FromName: "ShopLoc",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := sender.Send(ctx, service.Email{To: "a@x.com", Subject: "Hello", HTML: "<p>123456</p>"})
	require.NoError(t, err)

	select {
	case body := <-received:
		assert.Contains(t, body, "To: a@x.com")
		assert.Contains(t, body, "<p>123456</p>")
	case <-time.After(time.Second):
		t.Fatal("no message received")
	}
}

func TestSMTPSender_DialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	sender := NewSMTPSender(config.MailConfig{Host: "127.0.0.1", Port: port, From: "x@y.z"},
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	err = sender.Send(context.Background(), service.Email{To: "a@x.com"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dial")
}
