package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestInMemory_Counters(t *testing.T) {
	t.Parallel()

	m := NewInMemory()

	m.IncUserRegistered()
	m.IncLoginAttempt("success")
	m.IncLoginAttempt("failed")
	m.IncURLCreated()
	m.IncURLCreated()
	m.IncURLDeleted()
	m.IncRedirect()
	m.IncRedirectNotFound()
	m.ObserveRedirectDuration(2 * time.Millisecond)

	snap := m.Snapshot()

	if snap.UsersRegistered != 1 {
		t.Errorf("UsersRegistered = %d, want 1", snap.UsersRegistered)
	}
	if snap.LoginsSucceeded != 1 || snap.LoginsFailed != 1 {
		t.Errorf("logins = %d/%d, want 1/1", snap.LoginsSucceeded, snap.LoginsFailed)
	}
	if snap.URLsCreated != 2 {
		t.Errorf("URLsCreated = %d, want 2", snap.URLsCreated)
	}
	if snap.URLsDeleted != 1 {
		t.Errorf("URLsDeleted = %d, want 1", snap.URLsDeleted)
	}
	if snap.Redirects != 1 || snap.RedirectsNotFound != 1 {
		t.Errorf("redirects = %d/%d, want 1/1", snap.Redirects, snap.RedirectsNotFound)
	}
	if snap.RedirectAvgMs < 1.9 || snap.RedirectAvgMs > 2.1 {
		t.Errorf("RedirectAvgMs = %f, want ~2", snap.RedirectAvgMs)
	}
}

func TestInMemory_ConcurrentUse(t *testing.T) {
	t.Parallel()

	m := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncURLCreated()
		}()
	}
	wg.Wait()

	if got := m.Snapshot().URLsCreated; got != 100 {
		t.Errorf("URLsCreated = %d, want 100", got)
	}
}
