package notifier

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposite_AttachPropagatesToAllDelegates(t *testing.T) {
	c1 := newCounter(0)
	c2 := newCounter(0)
	composite := NewComposite[*counter, int](c1.events, c2.events)
	callCount := 0
	composite.Attach("e", func(*counter, int) error { callCount++; return nil })
	_ = c1.events.Publish("e", 1)
	_ = c2.events.Publish("e", 1)
	assert.Equal(t, 2, callCount)
}

func TestComposite_HandlerReceivesEachSubject(t *testing.T) {
	c1 := newCounter(1)
	c2 := newCounter(2)
	composite := NewComposite[*counter, int](c1.events, c2.events)
	var seen []int
	composite.Attach("e", func(s *counter, _ int) error { seen = append(seen, s.value); return nil })
	_ = composite.Publish("e", 0)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestComposite_DetachPropagatesToAllDelegates(t *testing.T) {
	c1 := newCounter(0)
	c2 := newCounter(0)
	composite := NewComposite[*counter, int](c1.events, c2.events)
	called := false
	h := Handler[*counter, int](func(*counter, int) error { called = true; return nil })
	composite.Attach("e", h, "obs")
	composite.Detach("e", h, "obs")
	_ = c1.events.Publish("e", 1)
	_ = c2.events.Publish("e", 1)
	assert.False(t, called)
}

func TestComposite_DisposableDetachesFromAllDelegates(t *testing.T) {
	c1 := newCounter(0)
	c2 := newCounter(0)
	composite := NewComposite[*counter, int](c1.events, c2.events)
	called := false
	d := composite.Attach("e", func(*counter, int) error { called = true; return nil })
	d.Dispose()
	_ = composite.Publish("e", 1)
	assert.False(t, called)
}

func TestComposite_PublishNoDelegates(t *testing.T) {
	composite := NewComposite[*counter, int]()
	assert.NoError(t, composite.Publish("e", 1))
}

func TestComposite_PublishStopsAtFirstError(t *testing.T) {
	c1 := newCounter(0)
	c2 := newCounter(0)
	composite := NewComposite[*counter, int](c1.events, c2.events)
	expectedErr := errors.New("fail")
	c1.events.Subscribe("e", func(*counter, int) error { return expectedErr })
	called := false
	c2.events.Subscribe("e", func(*counter, int) error { called = true; return nil })
	err := composite.Publish("e", 1)
	assert.Equal(t, expectedErr, err)
	assert.False(t, called)
}

func TestComposite_Nested(t *testing.T) {
	c1 := newCounter(0)
	c2 := newCounter(0)
	composite := NewComposite[*counter, int](NewComposite[*counter, int](c1.events), c2.events)
	callCount := 0
	composite.Attach("e", func(*counter, int) error { callCount++; return nil })
	_ = composite.Publish("e", 1)
	assert.Equal(t, 2, callCount)
}

func TestComposite_PublishIsolatedReachesEveryDelegate(t *testing.T) {
	c1 := newCounter(0)
	c2 := newCounter(0)
	composite := NewComposite[*counter, int](c1.events, c2.events)
	err1 := errors.New("first")
	c1.events.
		Subscribe("e", func(*counter, int) error { return err1 }).
		Subscribe("e", func(s *counter, v int) error { s.value = v; return nil })
	c2.events.Subscribe("e", func(s *counter, v int) error { s.value = v; return nil })

	err := composite.PublishIsolated("e", 5)

	assert.Equal(t, 5, c1.value)
	assert.Equal(t, 5, c2.value)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 1)
	assert.Contains(t, merr.Errors[0].Error(), "notifier: delegate 0")
	delegateErr, ok := pkgerrors.Cause(merr.Errors[0]).(*multierror.Error)
	require.True(t, ok)
	assert.Same(t, err1, pkgerrors.Cause(delegateErr.Errors[0]))
}

func TestComposite_PublishIsolatedCollectsDelegateFailures(t *testing.T) {
	c1 := newCounter(0)
	c2 := newCounter(0)
	composite := NewComposite[*counter, int](NewComposite[*counter, int](c1.events), c2.events)
	c1.events.Subscribe("e", func(*counter, int) error { return errors.New("first") })
	c2.events.Subscribe("e", func(*counter, int) error { return errors.New("second") })

	err := composite.PublishIsolated("e", 1)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 2)
}

func TestComposite_PublishIsolatedWithoutFailures(t *testing.T) {
	composite := NewComposite[*counter, int](newCounter(0).events)
	assert.NoError(t, composite.PublishIsolated("e", 1))
}
