package core

// IdleLabel marks a timeline unit in which no process held the CPU.
const IdleLabel = "IDLE"

// Job is the static description of a process.
type Job struct {
	ID          string `json:"id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
	Deadline    int    `json:"deadline"`
}

// Process is a Job plus the state it accumulates during one simulation run.
// Only the engine mutates a Process; policies see copies.
type Process struct {
	Job

	RemainingTime  int  `json:"remaining_time"`
	Started        bool `json:"started"`
	ResponseTime   int  `json:"response_time"`
	CompletionTime int  `json:"completion_time"`
	TurnaroundTime int  `json:"turnaround_time"`
	WaitingTime    int  `json:"waiting_time"`
}

func newProcess(job Job) Process {
	p := Process{Job: job}
	p.reset()
	return p
}

func (p *Process) reset() {
	p.RemainingTime = p.BurstTime
	p.Started = false
	p.ResponseTime = -1
	p.CompletionTime = 0
	p.TurnaroundTime = 0
	p.WaitingTime = 0
}

// Finished reports whether the process has consumed its whole burst.
func (p Process) Finished() bool {
	return p.RemainingTime == 0
}

// Arrived reports whether the process is visible to the scheduler at clock.
func (p Process) Arrived(clock int) bool {
	return p.ArrivalTime <= clock
}

// dispatch records the first time the process gets the CPU. Later
// dispatches leave the response time untouched.
func (p *Process) dispatch(clock int) bool {
	if p.Started {
		return false
	}
	p.Started = true
	p.ResponseTime = clock - p.ArrivalTime
	return true
}

// execute runs the process for up to units and returns the units consumed.
func (p *Process) execute(units int) int {
	if units > p.RemainingTime {
		units = p.RemainingTime
	}
	p.RemainingTime -= units
	return units
}

func (p *Process) complete(clock int) {
	p.CompletionTime = clock
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}
