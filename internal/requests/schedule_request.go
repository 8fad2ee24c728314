package requests

import "github.com/devenderkumar212003/cpu-scheduler/internal/core"

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
	Deadline    int    `json:"deadline"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum overrides the configured round robin quantum when set.
	TimeQuantum int `json:"time_quantum"`
	// LevelsTimeQuantum overrides the configured MLFQ levels when set.
	LevelsTimeQuantum []int `json:"levels_time_quantum"`
}

// CoreJobs converts the request into engine job descriptions, keeping order.
func (r *ScheduleRequests) CoreJobs() []core.Job {
	jobs := make([]core.Job, len(r.Jobs))
	for i, j := range r.Jobs {
		jobs[i] = core.Job{
			ID:          j.ProcessId,
			ArrivalTime: j.ArrivalTime,
			BurstTime:   j.BurstTime,
			Priority:    j.Priority,
			Deadline:    j.Deadline,
		}
	}
	return jobs
}
