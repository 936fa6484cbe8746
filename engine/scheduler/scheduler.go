package scheduler

import (
	"sync"

	"github.com/syntheticmagus/showroom-camera/engine/host"
)

// Status reports whether a stepped task wants to keep running.
type Status int

const (
	// Continue means the task expects another step on the next tick.
	Continue Status = iota
	// Done means the task has finished and must not be stepped again.
	Done
)

// Task is a resumable stepped routine. Each scheduler tick resumes exactly
// one step; a step runs to completion synchronously — there are no hidden
// suspension points inside a step.
type Task interface {
	// Step advances the task by one frame.
	//
	// Returns:
	//   - Status: Continue to be stepped again next tick, Done when finished
	Step() Status
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func() Status

func (f TaskFunc) Step() Status { return f() }

// Scheduler runs at most one Task, advancing it one step per tick of its
// tick source. Installing a new task unconditionally cancels whatever task
// was previously active: cancellation is silent and immediate, and a
// cancelled task is never stepped again. There is no queue.
type Scheduler interface {
	// Run installs task as the sole active stepped routine, cancelling and
	// abandoning any task currently in flight.
	//
	// Parameters:
	//   - task: the routine to step once per tick until it reports Done
	Run(task Task)

	// Cancel abandons the active task, if any, leaving the scheduler idle.
	Cancel()

	// Idle reports whether no task is currently installed.
	//
	// Returns:
	//   - bool: true when nothing is scheduled
	Idle() bool
}

// taskSlot wraps an installed task so cancellation checks compare slot
// pointers rather than Task interface values, which may hold non-comparable
// dynamic types such as TaskFunc.
type taskSlot struct {
	task Task
}

type schedulerImpl struct {
	mu     sync.Mutex
	active *taskSlot
}

var _ Scheduler = &schedulerImpl{}

// NewScheduler creates a Scheduler subscribed to the given tick source. The
// subscription is established once here and never removed.
//
// Parameters:
//   - source: per-frame tick provider driving the scheduler
//
// Returns:
//   - Scheduler: the newly created scheduler
func NewScheduler(source host.TickSource) Scheduler {
	s := &schedulerImpl{}
	source.AddTickCallback(func(float32) {
		s.tick()
	})
	return s
}

func (s *schedulerImpl) Run(task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = &taskSlot{task: task}
}

func (s *schedulerImpl) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

func (s *schedulerImpl) Idle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active == nil
}

// tick resumes the active task by one step. The lock is not held while the
// task runs: a step is allowed to install its successor via Run, and the
// scheduler only clears the slot afterwards if that did not happen.
func (s *schedulerImpl) tick() {
	s.mu.Lock()
	slot := s.active
	s.mu.Unlock()

	if slot == nil {
		return
	}

	if slot.task.Step() == Done {
		s.mu.Lock()
		if s.active == slot {
			s.active = nil
		}
		s.mu.Unlock()
	}
}
