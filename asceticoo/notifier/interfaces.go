package notifier

import (
	"github.com/krew-solutions/ascetic-oo-go/asceticoo/disposable"
)

// Handler receives the Subject that published the event together with the event payload.
// Returning an error stops Publish and hands the error to its caller.
type Handler[S, E any] func(subject S, event E) error

// Observable is the capability a Subject exposes to the outside world.
type Observable[S, E any] interface {
	Attach(eventName string, handler Handler[S, E], handlerID ...any) disposable.Disposable
	Detach(eventName string, handler Handler[S, E], handlerID ...any)
	Publish(eventName string, event E) error
}
