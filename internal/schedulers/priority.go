package schedulers

import "github.com/devenderkumar212003/cpu-scheduler/internal/core"

// Priority picks the eligible process with the lowest priority value.
// The preemptive variant can starve low urgency processes for as long as
// more urgent ones keep arriving.
type Priority struct {
	preemptive bool
}

func NewPriority(preemptive bool) *Priority {
	return &Priority{preemptive: preemptive}
}

func (p *Priority) Preemptive() bool {
	return p.preemptive
}

func (p *Priority) Name() string {
	if p.preemptive {
		return "Priority Scheduling (Preemptive)"
	}
	return "Priority Scheduling (Non-Preemptive)"
}

func (p *Priority) Description() string {
	if p.preemptive {
		return "A preemptive scheduling algorithm that selects the process with the highest priority (lowest priority value). " +
			"If a new process arrives with a higher priority than the current process, " +
			"the current process is preempted. Can lead to starvation of low-priority processes."
	}
	return "A non-preemptive scheduling algorithm that selects the process with the highest priority (lowest priority value). " +
		"Once a process gets the CPU, it runs until completion. " +
		"Can lead to starvation of low-priority processes if high-priority processes keep arriving."
}

func (p *Priority) NewSelector() core.Selector {
	return scanSelector(p.preemptive, func(candidate, current core.Process) bool {
		return candidate.Priority < current.Priority
	})
}
