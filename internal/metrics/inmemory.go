package metrics

import (
	"sync/atomic"
	"time"
)

// InMemory is a Recorder backed by atomic counters, suitable for the
// /metrics snapshot endpoint.
type InMemory struct {
	usersRegistered   atomic.Int64
	loginsSucceeded   atomic.Int64
	loginsFailed      atomic.Int64
	urlsCreated       atomic.Int64
	urlsUpdated       atomic.Int64
	urlsDeleted       atomic.Int64
	redirects         atomic.Int64
	redirectsNotFound atomic.Int64
	redirectCount     atomic.Int64
	redirectTotalUs   atomic.Int64
}

// NewInMemory returns an in-memory Recorder.
func NewInMemory() *InMemory {
	return &InMemory{}
}

func (m *InMemory) IncUserRegistered() { m.usersRegistered.Add(1) }

func (m *InMemory) IncLoginAttempt(status string) {
	if status == "success" {
		m.loginsSucceeded.Add(1)
		return
	}
	m.loginsFailed.Add(1)
}

func (m *InMemory) IncURLCreated()       { m.urlsCreated.Add(1) }
func (m *InMemory) IncURLUpdated()       { m.urlsUpdated.Add(1) }
func (m *InMemory) IncURLDeleted()       { m.urlsDeleted.Add(1) }
func (m *InMemory) IncRedirect()         { m.redirects.Add(1) }
func (m *InMemory) IncRedirectNotFound() { m.redirectsNotFound.Add(1) }

func (m *InMemory) ObserveRedirectDuration(duration time.Duration) {
	m.redirectCount.Add(1)
	m.redirectTotalUs.Add(duration.Microseconds())
}

// Snapshot returns a point-in-time view of the counters.
func (m *InMemory) Snapshot() Snapshot {
	s := Snapshot{
		UsersRegistered:   m.usersRegistered.Load(),
		LoginsSucceeded:   m.loginsSucceeded.Load(),
		LoginsFailed:      m.loginsFailed.Load(),
		URLsCreated:       m.urlsCreated.Load(),
		URLsUpdated:       m.urlsUpdated.Load(),
		URLsDeleted:       m.urlsDeleted.Load(),
		Redirects:         m.redirects.Load(),
		RedirectsNotFound: m.redirectsNotFound.Load(),
	}
	if count := m.redirectCount.Load(); count > 0 {
		s.RedirectAvgMs = float64(m.redirectTotalUs.Load()) / float64(count) / 1000
	}
	return s
}
