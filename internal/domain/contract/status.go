package contract

import (
	"errors"
	"fmt"
	"math"
)

type Status string

const (
	StatusPendingAcceptance Status = "pending_acceptance"
	StatusActive            Status = "active"
	StatusPaused            Status = "paused"
	StatusRevisionRequested Status = "revision_requested"
	StatusCompleted         Status = "completed"
	StatusCancelled         Status = "cancelled"
)

const (
	MilestonePending   = "pending"
	MilestoneActive    = "active"
	MilestoneInReview  = "in_review"
	MilestoneCompleted = "completed"
)

var (
	ErrInvalidTransition          = errors.New("invalid contract status transition")
	ErrMilestonesIncomplete       = errors.New("contract has milestones not yet completed")
	ErrInvalidMilestoneTransition = errors.New("invalid milestone status transition")
	ErrMilestoneNotFound          = errors.New("milestone not found")
)

// transitions is the full caller-invoked transition table. Cancellation
// from any non-terminal state is handled separately in CanTransition.
var transitions = map[Status][]Status{
	StatusPendingAcceptance: {StatusActive},
	StatusActive:            {StatusPaused, StatusRevisionRequested, StatusCompleted},
	StatusPaused:            {StatusActive},
	StatusRevisionRequested: {StatusActive},
	StatusCompleted:         {},
	StatusCancelled:         {},
}

var milestoneTransitions = map[string][]string{
	MilestonePending:   {MilestoneActive},
	MilestoneActive:    {MilestoneInReview},
	MilestoneInReview:  {MilestoneCompleted, MilestoneActive},
	MilestoneCompleted: {},
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether s -> to is in the transition table.
func (s Status) CanTransition(to Status) bool {
	if to == StatusCancelled {
		return !s.IsTerminal()
	}
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the contract to a new status, leaving it untouched
// on failure. Completing a fixed-price contract requires every
// milestone to be completed; hourly contracts complete unconditionally.
func (c *Contract) Transition(to Status) error {
	if !c.Status.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.Status, to)
	}
	if to == StatusCompleted && c.IsFixedPrice() && len(c.Milestones) > 0 {
		for _, m := range c.Milestones {
			if m.Status != MilestoneCompleted {
				return fmt.Errorf("%w: milestone %s is %s", ErrMilestonesIncomplete, m.ID, m.Status)
			}
		}
	}
	c.Status = to
	c.RecomputeProgress()
	return nil
}

// TransitionMilestone advances one milestone and re-derives contract
// progress. in_review -> active covers the client sending work back.
func (c *Contract) TransitionMilestone(milestoneID, to string) error {
	for i := range c.Milestones {
		if c.Milestones[i].ID != milestoneID {
			continue
		}
		from := c.Milestones[i].Status
		allowed := false
		for _, next := range milestoneTransitions[from] {
			if next == to {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidMilestoneTransition, from, to)
		}
		c.Milestones[i].Status = to
		c.RecomputeProgress()
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMilestoneNotFound, milestoneID)
}

// RecomputeProgress derives progress from milestone completion for
// fixed-price contracts. Hourly and zero-milestone contracts report
// progress supplied externally, so it is left as stored.
func (c *Contract) RecomputeProgress() {
	if !c.IsFixedPrice() || len(c.Milestones) == 0 {
		return
	}
	completed := 0
	for _, m := range c.Milestones {
		if m.Status == MilestoneCompleted {
			completed++
		}
	}
	progress := int(math.Round(100 * float64(completed) / float64(len(c.Milestones))))
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	c.Progress = progress
}
