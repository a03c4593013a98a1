package toast

import "time"

// Cancel stops a scheduled task. It reports whether the task was stopped
// before it ran.
type Cancel func() bool

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Cancel
}

// TimerScheduler schedules tasks with time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
