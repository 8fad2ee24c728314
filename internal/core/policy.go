package core

// None is the selector answer for "no process".
const None = -1

// Policy is a pluggable scheduling strategy. A Policy itself is stateless;
// every run asks it for a fresh Selector.
type Policy interface {
	Name() string
	Description() string
	NewSelector() Selector
}

// Selector picks the process to run at a decision point. It returns an
// index from View.Eligible, or None.
type Selector interface {
	Select(v View) int
}

// SelectorFunc adapts a plain function to Selector.
type SelectorFunc func(v View) int

func (f SelectorFunc) Select(v View) int {
	return f(v)
}

// Committer is implemented by non-preemptive policies that run a dispatched
// process to completion in a single step and jump idle gaps to the next
// arrival.
type Committer interface {
	CommitsToCompletion() bool
}

// View is the read-only state a selector decides on.
type View struct {
	// Clock is the current simulated time unit.
	Clock int
	// Running is the index of the process that held the CPU during the
	// previous unit and is still unfinished, or None.
	Running int
	// Eligible lists arrived, unfinished processes in arrival order.
	Eligible []int

	processes []Process
}

// Process returns a copy of the process at arena index i.
func (v View) Process(i int) Process {
	return v.processes[i]
}

// Len is the number of processes in the run.
func (v View) Len() int {
	return len(v.processes)
}

// IsEligible reports whether index i is in the eligible set.
func (v View) IsEligible(i int) bool {
	for _, idx := range v.Eligible {
		if idx == i {
			return true
		}
	}
	return false
}

func commits(p Policy) bool {
	c, ok := p.(Committer)
	return ok && c.CommitsToCompletion()
}
