package notifier

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-oo-go/asceticoo/disposable"
)

type isolatedPublisher[E any] interface {
	PublishIsolated(eventName string, event E) error
}

type Composite[S, E any] struct {
	delegates []Observable[S, E]
}

func NewComposite[S, E any](delegates ...Observable[S, E]) *Composite[S, E] {
	return &Composite[S, E]{delegates: delegates}
}

func (c *Composite[S, E]) Attach(eventName string, handler Handler[S, E], handlerID ...any) disposable.Disposable {
	disposables := make([]disposable.Disposable, 0, len(c.delegates))
	for _, delegate := range c.delegates {
		disposables = append(disposables, delegate.Attach(eventName, handler, handlerID...))
	}
	return disposable.NewCompositeDisposable(disposables...)
}

func (c *Composite[S, E]) Detach(eventName string, handler Handler[S, E], handlerID ...any) {
	for _, delegate := range c.delegates {
		delegate.Detach(eventName, handler, handlerID...)
	}
}

// Publish publishes to each delegate in order and stops at the first error.
func (c *Composite[S, E]) Publish(eventName string, event E) error {
	for _, delegate := range c.delegates {
		if err := delegate.Publish(eventName, event); err != nil {
			return err
		}
	}
	return nil
}

// PublishIsolated publishes to every delegate even if some of them fail.
// Delegates that support PublishIsolated themselves are published in isolated
// mode too, so one failing handler does not hide the rest of its channel.
// Failures are wrapped with the delegate position and collected into a
// *multierror.Error.
func (c *Composite[S, E]) PublishIsolated(eventName string, event E) error {
	var result *multierror.Error
	for i, delegate := range c.delegates {
		var err error
		if isolated, ok := delegate.(isolatedPublisher[E]); ok {
			err = isolated.PublishIsolated(eventName, event)
		} else {
			err = delegate.Publish(eventName, event)
		}
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "notifier: delegate %d", i))
		}
	}
	return result.ErrorOrNil()
}

var _ Observable[any, any] = (*Composite[any, any])(nil)
