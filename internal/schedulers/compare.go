package schedulers

import (
	"fmt"
	"sync"

	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
)

// Outcome is the result of one catalog entry.
type Outcome struct {
	Key    string
	Result core.Result
}

// RunError names the entry whose run failed.
type RunError struct {
	Key string
	Err error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// Run simulates a single entry on a fresh engine.
func Run(jobs []core.Job, entry Entry, logEvent func(string)) (core.Result, error) {
	engine, err := core.NewEngine(jobs)
	if err != nil {
		return core.Result{}, &RunError{Key: entry.Key, Err: err}
	}
	if logEvent != nil {
		engine.LogEvent = func(msg string) {
			logEvent(fmt.Sprintf("[%s] %s", entry.Key, msg))
		}
	}

	result, err := engine.Run(entry.Policy)
	if err != nil {
		return core.Result{}, &RunError{Key: entry.Key, Err: err}
	}
	return result, nil
}

// Compare runs every entry against the same jobs, each on its own engine and
// goroutine, and returns the outcomes in entry order. Invalid jobs fail
// before any run starts; a failed run is reported as a *RunError. logEvent
// must be safe for concurrent use.
func Compare(jobs []core.Job, entries []Entry, logEvent func(string)) ([]Outcome, error) {
	if err := core.ValidateJobs(jobs); err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, len(entries))
	errs := make([]error, len(entries))

	var wg sync.WaitGroup
	wg.Add(len(entries))
	for i, entry := range entries {
		go func(i int, entry Entry) {
			defer wg.Done()
			result, err := Run(jobs, entry, logEvent)
			outcomes[i] = Outcome{Key: entry.Key, Result: result}
			errs[i] = err
		}(i, entry)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return outcomes, nil
}
