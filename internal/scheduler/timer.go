// Package scheduler provides the in-memory implementation of the deferred
// dispatch registry. Tasks live only in process memory; a crash abandons
// anything not yet fired.
package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"groupnest/internal/domain"
)

// TimerScheduler registers one-shot tasks on process-local timers.
type TimerScheduler struct {
	logger *slog.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

// NewTimerScheduler returns a DispatchScheduler backed by time.AfterFunc.
func NewTimerScheduler(logger *slog.Logger) *TimerScheduler {
	return &TimerScheduler{
		logger: logger,
		timers: make(map[string]*time.Timer),
	}
}

var _ domain.DispatchScheduler = (*TimerScheduler)(nil)

// RegisterOneShot schedules task to run once when the clock reaches at.
// A fire time not after the current time dispatches immediately. Returns
// ErrInvalidInput after Stop.
func (s *TimerScheduler) RegisterOneShot(at time.Time, task func()) error {
	id := uuid.NewString()
	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return domain.ErrInvalidInput
	}
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
		s.logger.Info("dispatch fired", "task_id", id, "scheduled_at", at, "fired_at", time.Now())
		task()
	})
	s.mu.Unlock()

	s.logger.Info("dispatch registered", "task_id", id, "fire_at", at, "delay_ms", delay.Milliseconds())
	return nil
}

// Pending returns the number of registered tasks that have not fired.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels all pending timers and rejects further registrations.
// Tasks already executing are not interrupted.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
