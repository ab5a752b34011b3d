package game

import "sort"

// TaskID identifies a scheduled task. The zero value is never issued.
type TaskID uint64

type task struct {
	id  TaskID
	due uint64
	fn  func()
}

// Scheduler is a deferred action queue keyed by expiry tick. It is polled
// once per simulation step and is not safe for concurrent use.
type Scheduler struct {
	tick   uint64
	nextID TaskID
	tasks  []task
}

// NewScheduler creates an empty scheduler at tick zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current tick
func (s *Scheduler) Now() uint64 {
	return s.tick
}

// After schedules fn to run once, delay ticks from now. Delays shorter than
// one tick run on the next Advance.
func (s *Scheduler) After(delay uint64, fn func()) TaskID {
	if delay == 0 {
		delay = 1
	}
	s.nextID++
	t := task{id: s.nextID, due: s.tick + delay, fn: fn}

	// Keep tasks ordered by due tick, then by id
	i := sort.Search(len(s.tasks), func(i int) bool {
		return s.tasks[i].due > t.due
	})
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
	return t.id
}

// Cancel removes a pending task. It reports whether the task was pending.
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of tasks waiting to run
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves to the next tick and runs every task now due, in order.
// It returns the number of tasks run.
func (s *Scheduler) Advance() int {
	s.tick++
	ran := 0
	for len(s.tasks) > 0 && s.tasks[0].due <= s.tick {
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		if t.fn != nil {
			t.fn()
		}
		ran++
	}
	return ran
}
