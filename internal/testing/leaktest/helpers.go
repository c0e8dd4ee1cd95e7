// Package leaktest detects goroutines left running by background components
// such as the notification hub, the worker pool and the event publisher.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settle is how long Check waits for stopped goroutines to exit
const settle = 500 * time.Millisecond

// Snapshot records the goroutine count before a component starts
type Snapshot struct {
	t      testing.TB
	before int
}

// Take records the current goroutine count
func Take(t testing.TB) *Snapshot {
	t.Helper()
	runtime.Gosched()
	return &Snapshot{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test when more than tolerance goroutines outlive the
// component. It polls until settle elapses so exiting goroutines are not
// counted as leaks.
func (s *Snapshot) Check(tolerance int) {
	s.t.Helper()

	deadline := time.Now().Add(settle)
	after := runtime.NumGoroutine()
	for after-s.before > tolerance && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
		runtime.Gosched()
		after = runtime.NumGoroutine()
	}

	if leaked := after - s.before; leaked > tolerance {
		s.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d", s.before, after, leaked, tolerance)
	}
}

// Run executes fn and checks that it leaves no goroutines behind
func Run(t testing.TB, fn func()) {
	t.Helper()
	s := Take(t)
	fn()
	s.Check(0)
}
