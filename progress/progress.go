// Package progress counts completed work units against a goal.
//
// Every maze generator owns one Tracker, created by Initialize, and reports
// each discrete unit of work through it. Hosts read Fraction to drive a
// progress bar and IsComplete to stop stepping.
//
// Invariants:
//
//   - Count never decreases.
//   - IsComplete ⇔ Count ≥ Goal.
//   - The goal may be changed at most once after construction.
package progress

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeGoal indicates a goal below zero.
	ErrNegativeGoal = errors.New("progress: goal must be non-negative")
	// ErrGoalChanged indicates a second ChangeGoal call.
	ErrGoalChanged = errors.New("progress: goal already changed once")
)

// Tracker is a monotonic counter with a completion threshold. It is not safe
// for concurrent use.
type Tracker struct {
	goal        int
	count       int
	goalChanged bool
}

// New returns a Tracker with the given goal; negative goals are clamped to 0.
func New(goal int) *Tracker {
	if goal < 0 {
		goal = 0
	}
	return &Tracker{goal: goal}
}

// ChangeGoal replaces the goal. It may be called once.
func (t *Tracker) ChangeGoal(goal int) error {
	if goal < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeGoal, goal)
	}
	if t.goalChanged {
		return ErrGoalChanged
	}
	t.goal = goal
	t.goalChanged = true
	return nil
}

// Increase adds one unit of work.
func (t *Tracker) Increase() {
	t.count++
}

// SetCount raises the count to n. Lower values are ignored so the count
// stays monotonic.
func (t *Tracker) SetCount(n int) {
	if n > t.count {
		t.count = n
	}
}

// SetComplete forces count = goal, unless the count already exceeds it.
func (t *Tracker) SetComplete() {
	t.SetCount(t.goal)
}

// IsComplete reports count ≥ goal.
func (t *Tracker) IsComplete() bool {
	return t.count >= t.goal
}

// Goal returns the current goal.
func (t *Tracker) Goal() int { return t.goal }

// Count returns the completed units.
func (t *Tracker) Count() int { return t.count }

// Fraction returns count/goal clamped to [0,1]. A zero goal is complete.
func (t *Tracker) Fraction() float64 {
	if t.goal == 0 || t.count >= t.goal {
		return 1
	}
	return float64(t.count) / float64(t.goal)
}

func (t *Tracker) String() string {
	return fmt.Sprintf("%d/%d", t.count, t.goal)
}
