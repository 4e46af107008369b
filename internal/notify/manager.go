package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/notifyflow/notifyflow/internal/logging"
	"github.com/notifyflow/notifyflow/internal/metrics"
)

// Manager sends notifications through the strategy its factory builds and
// then informs every registered observer. The factory is fixed at
// construction. Observers run synchronously in registration order.
type Manager struct {
	factory   Factory
	observers []Observer
}

func NewManager(f Factory) *Manager {
	return &Manager{factory: f, observers: make([]Observer, 0)}
}

// AddObserver appends o. The same observer may be added more than once and
// will then be notified once per registration.
func (m *Manager) AddObserver(o Observer) {
	if o != nil {
		m.observers = append(m.observers, o)
	}
}

// RemoveObserver drops the first registration equal to o. Observers are
// compared with ==, so pointer observers match by identity.
func (m *Manager) RemoveObserver(o Observer) {
	for i, v := range m.observers {
		if v == o {
			m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
			return
		}
	}
}

func (m *Manager) Len() int {
	return len(m.observers)
}

// Observers returns a copy of the registered observers in notification order.
func (m *Manager) Observers() []Observer {
	return append([]Observer(nil), m.observers...)
}

// SendNotification builds a strategy, delivers message through it and then
// notifies every observer with the same message. The first write error
// stops the sequence.
func (m *Manager) SendNotification(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := m.factory.CreateStrategy()
	log := logging.Get().With().
		Str("notification_id", uuid.NewString()).
		Str("channel", s.Name()).
		Logger()
	log.Debug().Int("observers", len(m.observers)).Msg("sending notification")

	if err := s.Send(ctx, message); err != nil {
		metrics.IncSendFailure()
		log.Error().Err(err).Msg("notification delivery failed")
		return fmt.Errorf("%s delivery: %w", s.Name(), err)
	}
	metrics.IncSent(s.Name())

	if err := m.notifyObservers(ctx, &log, message); err != nil {
		metrics.IncSendFailure()
		return err
	}
	metrics.SetLastSend(time.Now())
	log.Debug().Msg("notification sent")
	return nil
}

func (m *Manager) notifyObservers(ctx context.Context, log *zerolog.Logger, message string) error {
	for _, o := range m.observers {
		if err := o.Update(ctx, message); err != nil {
			log.Error().Err(err).Str("observer", o.Name()).Msg("observer update failed")
			return fmt.Errorf("observer %s: %w", o.Name(), err)
		}
		metrics.IncObserverUpdate(o.Name())
	}
	return nil
}
