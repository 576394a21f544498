package domain

import "time"

// DispatchScheduler registers one-shot deferred tasks (infrastructure port).
// Implementations fire each task exactly once when the clock reaches its
// registered time. A fire time not after the current time dispatches
// immediately. Registered tasks cannot be withdrawn.
type DispatchScheduler interface {
	RegisterOneShot(at time.Time, task func()) error
}
