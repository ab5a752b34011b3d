package game

import (
	"slices"
	"testing"
)

func TestSchedulerRunsInDueOrder(t *testing.T) {
	s := NewScheduler()
	var ran []string
	s.After(3, func() { ran = append(ran, "c") })
	s.After(1, func() { ran = append(ran, "a") })
	s.After(3, func() { ran = append(ran, "d") })
	s.After(2, func() { ran = append(ran, "b") })

	for range 3 {
		s.Advance()
	}
	want := []string{"a", "b", "c", "d"}
	if !slices.Equal(ran, want) {
		t.Fatalf("ran %v, want %v", ran, want)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerDelayTiming(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(30, func() { fired = true })

	for i := 1; i < 30; i++ {
		s.Advance()
		if fired {
			t.Fatalf("fired early at tick %d", s.Now())
		}
	}
	s.Advance()
	if !fired {
		t.Fatalf("not fired at tick %d", s.Now())
	}
}

func TestSchedulerZeroDelayRunsNextAdvance(t *testing.T) {
	s := NewScheduler()
	n := 0
	s.After(0, func() { n++ })
	if n != 0 {
		t.Fatal("ran before Advance")
	}
	if got := s.Advance(); got != 1 || n != 1 {
		t.Fatalf("Advance ran %d tasks, n=%d, want 1 and 1", got, n)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(1, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel of a pending task returned false")
	}
	if s.Cancel(id) {
		t.Error("second Cancel returned true")
	}
	s.Advance()
	if fired {
		t.Error("cancelled task ran")
	}
}

func TestSchedulerTaskSchedulesAnother(t *testing.T) {
	s := NewScheduler()
	var ticks []uint64
	s.After(1, func() {
		ticks = append(ticks, s.Now())
		s.After(0, func() { ticks = append(ticks, s.Now()) })
	})
	s.Advance()
	s.Advance()
	if !slices.Equal(ticks, []uint64{1, 2}) {
		t.Fatalf("ticks %v, want [1 2]", ticks)
	}
}
