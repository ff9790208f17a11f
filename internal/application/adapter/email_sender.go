// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SendEmailInput holds the content of an outbound email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the provider's identifier for a sent email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending transactional email.
type EmailSender interface {
	// Send delivers a single email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
