package notifier

import (
	"github.com/oklog/ulid/v2"

	"github.com/krew-solutions/ascetic-oo-go/asceticoo/disposable"
)

// Subscription identifies a single registration. Disposing it removes exactly
// that registration, even if the same handler was subscribed several times.
type Subscription struct {
	disposable.Disposable
	id        ulid.ULID
	eventName string
}

// ID is monotonic within a process, so IDs sort in registration order.
func (s *Subscription) ID() ulid.ULID {
	return s.id
}

func (s *Subscription) EventName() string {
	return s.eventName
}
