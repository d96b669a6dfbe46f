package metrics

import "time"

// noop is a Recorder that discards all events.
type noop struct{}

// NewNoop returns a Recorder that does nothing.
func NewNoop() Recorder {
	return noop{}
}

func (noop) IncUserRegistered()                    {}
func (noop) IncLoginAttempt(string)                {}
func (noop) IncURLCreated()                        {}
func (noop) IncURLUpdated()                        {}
func (noop) IncURLDeleted()                        {}
func (noop) IncRedirect()                          {}
func (noop) IncRedirectNotFound()                  {}
func (noop) ObserveRedirectDuration(time.Duration) {}
