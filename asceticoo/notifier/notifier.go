package notifier

import (
	"maps"
	"slices"
	"unsafe"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/krew-solutions/ascetic-oo-go/asceticoo/disposable"
)

type entry[S, E any] struct {
	id      any
	token   ulid.ULID
	handler Handler[S, E]
}

// Notifier keeps named event channels for a single Subject and calls the
// handlers registered on a channel when an event is published to it.
//
// A Notifier is not safe for concurrent use. Handlers run synchronously on
// the publishing goroutine, in registration order.
type Notifier[S, E any] struct {
	subject  S
	id       uuid.UUID
	name     string
	channels map[string][]entry[S, E]
	logger   zerolog.Logger
	metrics  *Metrics
}

func New[S, E any](subject S, opts ...Option) *Notifier[S, E] {
	o := newOptions(subject, opts)
	n := &Notifier[S, E]{
		subject: subject,
		id:      uuid.New(),
		name:    o.name,
		metrics: o.metrics,
	}
	n.logger = o.logger.With().
		Str("notifier", n.id.String()).
		Str("subject", n.name).
		Logger()
	return n
}

func (n *Notifier[S, E]) Subject() S {
	return n.subject
}

func (n *Notifier[S, E]) ID() uuid.UUID {
	return n.id
}

func (n *Notifier[S, E]) Name() string {
	return n.name
}

// HasChannels reports whether the channel table exists. It is created by the
// first subscription and dropped again by UnsubscribeAll.
func (n *Notifier[S, E]) HasChannels() bool {
	return n.channels != nil
}

func (n *Notifier[S, E]) EventNames() []string {
	return slices.Sorted(maps.Keys(n.channels))
}

func (n *Notifier[S, E]) HandlerCount(eventName string) int {
	return len(n.channels[eventName])
}

// Subscribe appends handler to the eventName channel. The same handler may be
// subscribed more than once and is then called once per registration.
//
// Panics with ErrEmptyEventName or ErrNilHandler on invalid input.
func (n *Notifier[S, E]) Subscribe(eventName string, handler Handler[S, E], handlerID ...any) *Notifier[S, E] {
	n.add(eventName, handler, handlerID)
	return n
}

// Listen works like Subscribe but returns a Subscription bound to this one registration.
func (n *Notifier[S, E]) Listen(eventName string, handler Handler[S, E], handlerID ...any) *Subscription {
	e := n.add(eventName, handler, handlerID)
	return &Subscription{
		id:        e.token,
		eventName: eventName,
		Disposable: disposable.NewDisposable(func() {
			n.removeFirst(eventName, func(c entry[S, E]) bool {
				return c.token == e.token
			})
		}),
	}
}

func (n *Notifier[S, E]) Attach(eventName string, handler Handler[S, E], handlerID ...any) disposable.Disposable {
	return n.Listen(eventName, handler, handlerID...)
}

// Unsubscribe removes the first registration of handler on eventName.
// Handlers are matched by handlerID when given, otherwise by reference: the
// func value passed here must be the one that was subscribed. Each evaluation
// of a method value (obj.Method) or of a capturing closure yields a new
// reference, so keep the value, pass a handlerID or use Listen.
// Unknown channels and handlers are ignored.
func (n *Notifier[S, E]) Unsubscribe(eventName string, handler Handler[S, E], handlerID ...any) *Notifier[S, E] {
	n.Detach(eventName, handler, handlerID...)
	return n
}

func (n *Notifier[S, E]) Detach(eventName string, handler Handler[S, E], handlerID ...any) {
	id := resolveID(handler, handlerID)
	n.removeFirst(eventName, func(c entry[S, E]) bool {
		return c.id == id
	})
}

// UnsubscribeEvent drops the eventName channel with all of its handlers.
func (n *Notifier[S, E]) UnsubscribeEvent(eventName string) *Notifier[S, E] {
	entries, ok := n.channels[eventName]
	if !ok {
		return n
	}
	delete(n.channels, eventName)
	n.metrics.unsubscribed(n.name, len(entries))
	n.logger.Debug().
		Str("event", eventName).
		Int("removed", len(entries)).
		Msg("channel dropped")
	return n
}

// UnsubscribeAll drops the whole channel table.
func (n *Notifier[S, E]) UnsubscribeAll() *Notifier[S, E] {
	if n.channels == nil {
		return n
	}
	removed := 0
	for _, entries := range n.channels {
		removed += len(entries)
	}
	n.channels = nil
	n.metrics.unsubscribed(n.name, removed)
	n.logger.Debug().Int("removed", removed).Msg("channel table dropped")
	return n
}

// Publish calls every handler registered on eventName with the Subject and event.
// The first handler error is returned as is and the remaining handlers are skipped.
//
// Handlers registered or removed while Publish runs take effect from the next Publish.
func (n *Notifier[S, E]) Publish(eventName string, event E) error {
	entries := n.snapshot(eventName)
	n.metrics.publishedEvent(n.name, eventName)
	n.logger.Debug().
		Str("event", eventName).
		Int("handlers", len(entries)).
		Msg("publishing")
	for i, e := range entries {
		if err := e.handler(n.subject, event); err != nil {
			n.metrics.failed(n.name, eventName)
			n.logger.Debug().
				Err(err).
				Str("event", eventName).
				Int("handler", i).
				Int("skipped", len(entries)-i-1).
				Msg("handler failed")
			return err
		}
	}
	return nil
}

// PublishIsolated calls every handler registered on eventName even if some of
// them fail. Failures are collected into a *multierror.Error; each one is
// wrapped with the event name and handler position, errors.Cause yields the
// original.
func (n *Notifier[S, E]) PublishIsolated(eventName string, event E) error {
	entries := n.snapshot(eventName)
	n.metrics.publishedEvent(n.name, eventName)
	var result *multierror.Error
	for i, e := range entries {
		if err := e.handler(n.subject, event); err != nil {
			n.metrics.failed(n.name, eventName)
			n.logger.Warn().
				Err(err).
				Str("event", eventName).
				Int("handler", i).
				Msg("handler failed")
			result = multierror.Append(result, errors.Wrapf(err, "notifier: handler %d for %q", i, eventName))
		}
	}
	return result.ErrorOrNil()
}

func (n *Notifier[S, E]) add(eventName string, handler Handler[S, E], handlerID []any) entry[S, E] {
	if eventName == "" {
		panic(ErrEmptyEventName)
	}
	if handler == nil {
		panic(ErrNilHandler)
	}
	if n.channels == nil {
		n.channels = make(map[string][]entry[S, E])
	}
	e := entry[S, E]{
		id:      resolveID(handler, handlerID),
		token:   ulid.Make(),
		handler: handler,
	}
	n.channels[eventName] = append(n.channels[eventName], e)
	n.metrics.subscribed(n.name)
	n.logger.Debug().
		Str("event", eventName).
		Str("subscription", e.token.String()).
		Int("handlers", len(n.channels[eventName])).
		Msg("handler subscribed")
	return e
}

func (n *Notifier[S, E]) removeFirst(eventName string, match func(entry[S, E]) bool) {
	entries, ok := n.channels[eventName]
	if !ok {
		return
	}
	for i, e := range entries {
		if !match(e) {
			continue
		}
		entries = append(entries[:i], entries[i+1:]...)
		if len(entries) == 0 {
			delete(n.channels, eventName)
		} else {
			n.channels[eventName] = entries
		}
		n.metrics.unsubscribed(n.name, 1)
		n.logger.Debug().
			Str("event", eventName).
			Str("subscription", e.token.String()).
			Int("handlers", len(entries)).
			Msg("handler unsubscribed")
		return
	}
}

func (n *Notifier[S, E]) snapshot(eventName string) []entry[S, E] {
	return slices.Clone(n.channels[eventName])
}

func resolveID[S, E any](handler Handler[S, E], handlerID []any) any {
	if len(handlerID) > 0 {
		return handlerID[0]
	}
	return makeID(handler)
}

// makeID returns the address of the func value itself rather than its code
// pointer, so method values bound to different receivers stay distinct.
func makeID[S, E any](handler Handler[S, E]) uintptr {
	return *(*uintptr)(unsafe.Pointer(&handler))
}

var _ Observable[any, any] = (*Notifier[any, any])(nil)
