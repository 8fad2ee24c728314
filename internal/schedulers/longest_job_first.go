package schedulers

import "github.com/devenderkumar212003/cpu-scheduler/internal/core"

// LongestJobFirst mirrors ShortestJobFirst with the comparison inverted.
// The preemptive variant is Longest Remaining Time First.
type LongestJobFirst struct {
	preemptive bool
}

func NewLongestJobFirst(preemptive bool) *LongestJobFirst {
	return &LongestJobFirst{preemptive: preemptive}
}

func (l *LongestJobFirst) Preemptive() bool {
	return l.preemptive
}

func (l *LongestJobFirst) Name() string {
	if l.preemptive {
		return "Longest Remaining Time First (LRTF)"
	}
	return "Longest Job First (LJF)"
}

func (l *LongestJobFirst) Description() string {
	if l.preemptive {
		return "A preemptive scheduling algorithm that selects the process with the longest remaining time. " +
			"If a new process arrives with a longer burst time than the remaining time of the current process, " +
			"the current process is preempted. Generally results in poor average waiting time."
	}
	return "A non-preemptive scheduling algorithm that selects the process with the longest burst time. " +
		"Once a process gets the CPU, it runs until completion. " +
		"Generally results in poor average waiting time but may be useful in specific scenarios."
}

func (l *LongestJobFirst) NewSelector() core.Selector {
	return scanSelector(l.preemptive, func(candidate, current core.Process) bool {
		return candidate.RemainingTime > current.RemainingTime
	})
}
