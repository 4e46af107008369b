package notify

import "context"

// Selector holds a single strategy that can be swapped at runtime. The CLI
// flow goes through Manager instead; Selector is for callers that want to
// change channel without rebuilding a manager.
type Selector struct {
	strategy Strategy
}

func NewSelector(s Strategy) *Selector {
	return &Selector{strategy: s}
}

// SetStrategy replaces the held strategy.
func (c *Selector) SetStrategy(s Strategy) {
	c.strategy = s
}

// Send delivers message through the current strategy.
func (c *Selector) Send(ctx context.Context, message string) error {
	return c.strategy.Send(ctx, message)
}
