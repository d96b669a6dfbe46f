// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Account metrics
	IncUserRegistered()
	IncLoginAttempt(status string) // status: "success" or "failed"

	// URL management metrics
	IncURLCreated()
	IncURLUpdated()
	IncURLDeleted()

	// Redirect metrics
	IncRedirect()
	IncRedirectNotFound()
	ObserveRedirectDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	UsersRegistered   int64   `json:"users_registered"`
	LoginsSucceeded   int64   `json:"logins_succeeded"`
	LoginsFailed      int64   `json:"logins_failed"`
	URLsCreated       int64   `json:"urls_created"`
	URLsUpdated       int64   `json:"urls_updated"`
	URLsDeleted       int64   `json:"urls_deleted"`
	Redirects         int64   `json:"redirects"`
	RedirectsNotFound int64   `json:"redirects_not_found"`
	RedirectAvgMs     float64 `json:"redirect_avg_ms"`
}
