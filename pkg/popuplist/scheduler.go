package popuplist

// Scheduler defers work until the host has finished its current update,
// including any item mounts and unmounts that update caused.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(fn func())

func (f SchedulerFunc) Schedule(fn func()) {
	f(fn)
}

// TickScheduler queues work until the host calls Tick, typically once per
// update cycle after rendering.
type TickScheduler struct {
	pending []func()
}

// NewTickScheduler creates an empty TickScheduler.
func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

func (s *TickScheduler) Schedule(fn func()) {
	s.pending = append(s.pending, fn)
}

// Tick runs the work queued so far and returns how many functions ran.
// Work scheduled while ticking waits for the next Tick.
func (s *TickScheduler) Tick() int {
	queued := s.pending
	s.pending = nil
	for _, fn := range queued {
		fn()
	}
	return len(queued)
}

// Pending returns the number of queued functions.
func (s *TickScheduler) Pending() int {
	return len(s.pending)
}
