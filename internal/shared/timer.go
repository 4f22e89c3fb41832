package shared

import "time"

// Timer is a pending call scheduled by a [Scheduler].
type Timer interface {
	// Stop prevents the call from running. It returns false if the call already ran or was stopped.
	Stop() bool
}

// Scheduler runs functions after a delay. Tests substitute a manual clock.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules calls on wall-clock time via [time.AfterFunc].
type RealScheduler struct{}

// AfterFunc implements [Scheduler].
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
