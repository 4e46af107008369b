package notify

import (
	"context"
	"fmt"
	"io"
)

// Strategy delivers a message over one channel.
type Strategy interface {
	Send(ctx context.Context, message string) error
	Name() string
}

// Email simulates an email delivery by writing a line to Out.
type Email struct {
	Out io.Writer
}

// Name returns the channel name.
func (e *Email) Name() string { return "email" }

// Send writes the email notification line for message.
func (e *Email) Send(ctx context.Context, message string) error {
	_ = ctx
	_, err := fmt.Fprintf(out(e.Out), "Sending email notification: %s\n", message)
	return err
}

// SMS simulates a text message delivery by writing a line to Out.
type SMS struct {
	Out io.Writer
}

func (s *SMS) Name() string { return "sms" }
func (s *SMS) Send(ctx context.Context, message string) error {
	_ = ctx
	_, err := fmt.Fprintf(out(s.Out), "Sending SMS notification: %s\n", message)
	return err
}
