package core

import (
	"fmt"
	"sort"

	"github.com/devenderkumar212003/cpu-scheduler/internal/util"
)

// Engine drives a policy over a fixed process set. It owns a private,
// arrival-sorted copy of the jobs and replays it from scratch on every run.
// An Engine is not safe for concurrent use; create one per goroutine.
type Engine struct {
	jobs      []Job
	processes []Process
	clock     int
	timeline  []TimelineEntry
	finished  int

	// LogEvent, when set, receives a line for every dispatch, preemption,
	// completion and idle jump.
	LogEvent func(msg string)
}

// NewEngine validates jobs and returns an engine ready to run.
func NewEngine(jobs []Job) (*Engine, error) {
	if err := ValidateJobs(jobs); err != nil {
		return nil, err
	}

	sorted := make([]Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalTime < sorted[j].ArrivalTime
	})

	e := &Engine{jobs: sorted}
	e.Reset()
	return e, nil
}

// ValidateJobs rejects descriptions no run could honor.
func ValidateJobs(jobs []Job) error {
	seen := make(map[string]struct{}, len(jobs))
	for i, job := range jobs {
		reason := ""
		switch {
		case job.ID == "":
			reason = "empty id"
		case job.ID == IdleLabel:
			reason = "id is reserved for idle time"
		case job.BurstTime <= 0:
			reason = fmt.Sprintf("burst time must be positive, got %d", job.BurstTime)
		case job.ArrivalTime < 0:
			reason = fmt.Sprintf("arrival time must not be negative, got %d", job.ArrivalTime)
		}
		if _, dup := seen[job.ID]; dup && reason == "" {
			reason = "duplicate id"
		}
		if reason != "" {
			return &InvalidProcessError{Index: i, ID: job.ID, Reason: reason}
		}
		seen[job.ID] = struct{}{}
	}
	return nil
}

// Reset restores every process to its initial state and clears the clock
// and the timeline.
func (e *Engine) Reset() {
	e.processes = make([]Process, len(e.jobs))
	for i, job := range e.jobs {
		e.processes[i] = newProcess(job)
	}
	e.clock = 0
	e.finished = 0
	e.timeline = make([]TimelineEntry, 0)
}

// Processes returns a copy of the current process states in arrival order.
func (e *Engine) Processes() []Process {
	out := make([]Process, len(e.processes))
	copy(out, e.processes)
	return out
}

// Clock returns the current simulated time.
func (e *Engine) Clock() int {
	return e.clock
}

// Run resets the engine and steps policy until every process completes.
func (e *Engine) Run(policy Policy) (Result, error) {
	e.Reset()
	if err := e.loop(policy); err != nil {
		return Result{}, err
	}
	return e.calculateMetrics(policy.Name()), nil
}

func (e *Engine) loop(policy Policy) error {
	selector := policy.NewSelector()
	commit := commits(policy)
	running := None

	for e.finished < len(e.processes) {
		eligible := e.eligible()
		if len(eligible) == 0 {
			if err := e.idle(commit); err != nil {
				return err
			}
			running = None
			continue
		}

		view := View{
			Clock:     e.clock,
			Running:   running,
			Eligible:  eligible,
			processes: e.Processes(),
		}
		pick := selector.Select(view)
		if pick == None {
			return &PolicyError{Policy: policy.Name(), Clock: e.clock, Reason: "no process selected while work is eligible"}
		}
		if !view.IsEligible(pick) {
			return &PolicyError{Policy: policy.Name(), Clock: e.clock, Reason: fmt.Sprintf("selected index %d is not eligible", pick)}
		}

		if running != None && running != pick {
			e.logf("t=%d pid: %s preempted by %s", e.clock, e.processes[running].ID, e.processes[pick].ID)
		}

		p := &e.processes[pick]
		if p.dispatch(e.clock) {
			e.logf("t=%d pid: %s dispatched, response time %d", e.clock, p.ID, p.ResponseTime)
		}

		units := 1
		if commit {
			units = p.RemainingTime
		}
		for i := 0; i < units; i++ {
			p.execute(1)
			e.timeline = append(e.timeline, TimelineEntry{Label: p.ID, Time: e.clock})
			e.clock++
		}

		if p.Finished() {
			p.complete(e.clock)
			e.finished++
			e.logf("t=%d pid: %s completed, turnaround %d, waiting %d", e.clock, p.ID, p.TurnaroundTime, p.WaitingTime)
			running = None
		} else {
			running = pick
		}
	}
	return nil
}

// idle accounts for an instant with nothing eligible. Committing policies
// jump straight to the next arrival, others advance a single unit.
func (e *Engine) idle(jump bool) error {
	next, ok := e.nextArrival()
	if !ok {
		return &StarvationError{Clock: e.clock, Unfinished: len(e.processes) - e.finished}
	}

	until := e.clock + 1
	if jump {
		until = next
		e.logf("t=%d cpu idle until next arrival at t=%d", e.clock, next)
	}
	for ; e.clock < until; e.clock++ {
		e.timeline = append(e.timeline, TimelineEntry{Label: IdleLabel, Time: e.clock})
	}
	return nil
}

func (e *Engine) eligible() []int {
	eligible := make([]int, 0, len(e.processes))
	for i, p := range e.processes {
		if p.Arrived(e.clock) && !p.Finished() {
			eligible = append(eligible, i)
		}
	}
	return eligible
}

// nextArrival finds the earliest future arrival among unfinished processes.
func (e *Engine) nextArrival() (int, bool) {
	next, found := 0, false
	for _, p := range e.processes {
		if p.Finished() || p.ArrivalTime <= e.clock {
			continue
		}
		if !found || p.ArrivalTime < next {
			next, found = p.ArrivalTime, true
		}
	}
	return next, found
}

func (e *Engine) calculateMetrics(policyName string) Result {
	var (
		turnaround = make([]int, len(e.processes))
		waiting    = make([]int, len(e.processes))
		response   = make([]int, len(e.processes))
		totalBurst int
	)
	for i, p := range e.processes {
		turnaround[i] = p.TurnaroundTime
		waiting[i] = p.WaitingTime
		response[i] = p.ResponseTime
		totalBurst += p.BurstTime
	}

	totalTime := e.clock
	if totalTime < 1 {
		totalTime = 1
	}

	timeline := make([]TimelineEntry, len(e.timeline))
	copy(timeline, e.timeline)

	result := Result{
		Policy:            policyName,
		Timeline:          timeline,
		Processes:         e.Processes(),
		AvgTurnaroundTime: util.Average(util.Ints(turnaround)),
		AvgWaitingTime:    util.Average(util.Ints(waiting)),
		AvgResponseTime:   util.Average(util.Ints(response)),
		Throughput:        float64(len(e.processes)) / float64(totalTime),
		CPUUtilization:    float64(totalBurst) / float64(totalTime) * 100,
		TotalTime:         e.clock,
		IdleTime:          e.clock - totalBurst,
		ContextSwitches:   countContextSwitches(timeline),
	}
	return result
}

func (e *Engine) logf(format string, args ...interface{}) {
	if e.LogEvent == nil {
		return
	}
	e.LogEvent(fmt.Sprintf(format, args...))
}
