package service

import "context"

// Email is one outgoing HTML message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// EmailSender delivers email. Send returns once the transport accepted the message.
type EmailSender interface {
	Send(ctx context.Context, email Email) error
}

// MailComposer renders the HTML bodies sent by the application.
type MailComposer interface {
	// VerificationCode renders the login code email.
	VerificationCode(recipientName, code string) (Email, error)
	// NewOrderLine renders the merchant notice for a new order line.
	NewOrderLine(storeName, productName string, quantity int) (Email, error)
}
