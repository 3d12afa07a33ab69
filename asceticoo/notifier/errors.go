package notifier

import "errors"

var (
	ErrEmptyEventName = errors.New("notifier: event name must not be empty")
	ErrNilHandler     = errors.New("notifier: handler must not be nil")
)
