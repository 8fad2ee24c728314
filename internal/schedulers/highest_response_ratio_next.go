package schedulers

import "github.com/devenderkumar212003/cpu-scheduler/internal/core"

// HighestResponseRatioNext is a non-preemptive policy that favors processes
// whose wait is long relative to their burst.
type HighestResponseRatioNext struct{}

func NewHighestResponseRatioNext() *HighestResponseRatioNext {
	return &HighestResponseRatioNext{}
}

func (h *HighestResponseRatioNext) Name() string {
	return "Highest Response Ratio Next (HRRN)"
}

func (h *HighestResponseRatioNext) Description() string {
	return "A non-preemptive scheduling algorithm that selects the process with the highest response ratio. " +
		"Response Ratio = (Waiting Time + Burst Time) / Burst Time. " +
		"It balances between SJF and FCFS by considering both burst time and waiting time."
}

// CommitsToCompletion makes the engine run the chosen process for its whole
// burst and jump idle gaps to the next arrival.
func (h *HighestResponseRatioNext) CommitsToCompletion() bool {
	return true
}

func (h *HighestResponseRatioNext) NewSelector() core.Selector {
	return core.SelectorFunc(func(v core.View) int {
		return best(v, func(candidate, current core.Process) bool {
			return ratioGreater(candidate.Job, current.Job, v.Clock)
		})
	})
}

// ResponseRatio is (max(0, clock-arrival) + burst) / burst.
func ResponseRatio(job core.Job, clock int) float64 {
	return float64(waited(job, clock)+job.BurstTime) / float64(job.BurstTime)
}

// ratioGreater compares response ratios exactly by cross multiplication so
// equal ratios never depend on floating point rounding.
func ratioGreater(a, b core.Job, clock int) bool {
	lhs := int64(waited(a, clock)+a.BurstTime) * int64(b.BurstTime)
	rhs := int64(waited(b, clock)+b.BurstTime) * int64(a.BurstTime)
	return lhs > rhs
}

func waited(job core.Job, clock int) int {
	if w := clock - job.ArrivalTime; w > 0 {
		return w
	}
	return 0
}
