package notify

// Package notify implements the delivery channels for rendered reports.

import "context"

// Notifier delivers one rendered message.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// Multi fans a message out to several notifiers. The first failure is
// returned and stops delivery so the fingerprint is not persisted.
type Multi struct {
	notifiers []Notifier
}

// NewMulti combines notifiers into one.
func NewMulti(notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) Send(ctx context.Context, message string) error {
	for _, n := range m.notifiers {
		if err := n.Send(ctx, message); err != nil {
			return err
		}
	}
	return nil
}
