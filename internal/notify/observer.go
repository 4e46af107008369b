package notify

import (
	"context"
	"fmt"
	"io"
)

// Observer reacts to a notification after it has been delivered.
type Observer interface {
	Update(ctx context.Context, message string) error
	Name() string
}

// EventLogger records the event line.
type EventLogger struct {
	Out io.Writer
}

func (l *EventLogger) Name() string { return "EventLogger" }
func (l *EventLogger) Update(ctx context.Context, message string) error {
	_ = ctx
	_, err := fmt.Fprintf(out(l.Out), "Event logged: %s\n", message)
	return err
}

// AuditLogger records the audit line.
type AuditLogger struct {
	Out io.Writer
}

func (l *AuditLogger) Name() string { return "AuditLogger" }
func (l *AuditLogger) Update(ctx context.Context, message string) error {
	_ = ctx
	_, err := fmt.Fprintf(out(l.Out), "Audit log entry: %s\n", message)
	return err
}
