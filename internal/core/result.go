package core

// TimelineEntry is one simulated time unit of the Gantt chart.
type TimelineEntry struct {
	Label string `json:"label"`
	Time  int    `json:"time"`
}

// Slice is a run of consecutive timeline units with the same label.
type Slice struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	Stop  int    `json:"stop"`
}

// Result is the immutable outcome of one run.
type Result struct {
	Policy    string          `json:"policy"`
	Timeline  []TimelineEntry `json:"timeline"`
	Processes []Process       `json:"processes"`

	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`
	AvgWaitingTime    float64 `json:"avg_waiting_time"`
	AvgResponseTime   float64 `json:"avg_response_time"`
	Throughput        float64 `json:"throughput"`
	CPUUtilization    float64 `json:"cpu_utilization"`

	TotalTime       int `json:"total_time"`
	IdleTime        int `json:"idle_time"`
	ContextSwitches int `json:"context_switches"`
}

// Slices collapses the timeline into [Start, Stop) runs.
func (r Result) Slices() []Slice {
	slices := make([]Slice, 0)
	for _, e := range r.Timeline {
		n := len(slices)
		if n > 0 && slices[n-1].Label == e.Label && slices[n-1].Stop == e.Time {
			slices[n-1].Stop++
			continue
		}
		slices = append(slices, Slice{Label: e.Label, Start: e.Time, Stop: e.Time + 1})
	}
	return slices
}

// Units counts the timeline units labeled with label.
func (r Result) Units(label string) int {
	count := 0
	for _, e := range r.Timeline {
		if e.Label == label {
			count++
		}
	}
	return count
}

// Process finds the final state of the process with the given id.
func (r Result) Process(id string) (Process, bool) {
	for _, p := range r.Processes {
		if p.ID == id {
			return p, true
		}
	}
	return Process{}, false
}

func countContextSwitches(timeline []TimelineEntry) int {
	switches := 0
	last := ""
	for _, e := range timeline {
		if e.Label == IdleLabel {
			continue
		}
		if last != "" && e.Label != last {
			switches++
		}
		last = e.Label
	}
	return switches
}
