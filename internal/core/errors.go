package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProcess is matched by every *InvalidProcessError.
	ErrInvalidProcess = errors.New("invalid process")
	// ErrStarvation is matched by every *StarvationError.
	ErrStarvation = errors.New("starvation invariant violated")
	// ErrPolicyViolation is matched by every *PolicyError.
	ErrPolicyViolation = errors.New("policy violation")
)

// InvalidProcessError rejects a job description before a run starts.
type InvalidProcessError struct {
	Index  int
	ID     string
	Reason string
}

func (e *InvalidProcessError) Error() string {
	return fmt.Sprintf("invalid process %q at index %d: %s", e.ID, e.Index, e.Reason)
}

func (e *InvalidProcessError) Is(target error) bool {
	return target == ErrInvalidProcess
}

// StarvationError aborts a run that still has unfinished processes but
// nothing eligible now or in the future.
type StarvationError struct {
	Clock      int
	Unfinished int
}

func (e *StarvationError) Error() string {
	return fmt.Sprintf("%d unfinished processes but no current or future arrival at t=%d",
		e.Unfinished, e.Clock)
}

func (e *StarvationError) Is(target error) bool {
	return target == ErrStarvation
}

// PolicyError reports a selector decision the engine cannot honor.
type PolicyError struct {
	Policy string
	Clock  int
	Reason string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("policy %s at t=%d: %s", e.Policy, e.Clock, e.Reason)
}

func (e *PolicyError) Is(target error) bool {
	return target == ErrPolicyViolation
}
