package schedulers

import "github.com/devenderkumar212003/cpu-scheduler/internal/core"

// ShortestJobFirst picks the eligible process with the least remaining time.
// The preemptive variant is Shortest Remaining Time First.
type ShortestJobFirst struct {
	preemptive bool
}

func NewShortestJobFirst(preemptive bool) *ShortestJobFirst {
	return &ShortestJobFirst{preemptive: preemptive}
}

func (s *ShortestJobFirst) Preemptive() bool {
	return s.preemptive
}

func (s *ShortestJobFirst) Name() string {
	if s.preemptive {
		return "Shortest Remaining Time First (SRTF)"
	}
	return "Shortest Job First (SJF)"
}

func (s *ShortestJobFirst) Description() string {
	if s.preemptive {
		return "A preemptive scheduling algorithm that selects the process with the shortest remaining time. " +
			"If a new process arrives with a shorter burst time than the remaining time of the current process, " +
			"the current process is preempted. Optimal for minimizing average waiting time."
	}
	return "A non-preemptive scheduling algorithm that selects the process with the shortest burst time. " +
		"Once a process gets the CPU, it runs until completion. " +
		"Provides better average waiting time than FCFS but requires knowledge of burst times."
}

func (s *ShortestJobFirst) NewSelector() core.Selector {
	return scanSelector(s.preemptive, func(candidate, current core.Process) bool {
		return candidate.RemainingTime < current.RemainingTime
	})
}
