package notify

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidChoice is returned by FactoryFor when the menu number does not
// name a channel.
var ErrInvalidChoice = errors.New("invalid choice")

// Factory builds the Strategy for one channel. Each factory always
// produces the same kind of strategy.
type Factory interface {
	CreateStrategy() Strategy
}

// EmailFactory produces Email strategies writing to Out.
type EmailFactory struct{ Out io.Writer }

func (f *EmailFactory) CreateStrategy() Strategy { return &Email{Out: f.Out} }

// SMSFactory produces SMS strategies writing to Out.
type SMSFactory struct{ Out io.Writer }

func (f *SMSFactory) CreateStrategy() Strategy { return &SMS{Out: f.Out} }

// Channel is a menu entry. Its numeric value is what the user types.
type Channel int

const (
	ChannelEmail Channel = 1
	ChannelSMS   Channel = 2
)

func (c Channel) String() string {
	switch c {
	case ChannelEmail:
		return "Email"
	case ChannelSMS:
		return "SMS"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// Channels returns the selectable channels in menu order.
func Channels() []Channel {
	return []Channel{ChannelEmail, ChannelSMS}
}

var factories = map[Channel]func(io.Writer) Factory{
	ChannelEmail: func(w io.Writer) Factory { return &EmailFactory{Out: w} },
	ChannelSMS:   func(w io.Writer) Factory { return &SMSFactory{Out: w} },
}

// FactoryFor returns the factory for a menu choice. Strategies built by the
// factory write to w.
func FactoryFor(choice int, w io.Writer) (Factory, error) {
	mk, ok := factories[Channel(choice)]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}
	return mk(w), nil
}
