package schedulers

import "github.com/devenderkumar212003/cpu-scheduler/internal/core"

// best scans the eligible set in arrival order and keeps the first process
// for which no later one is strictly better, so ties go to the earliest.
func best(v core.View, better func(candidate, current core.Process) bool) int {
	chosen := core.None
	var chosenProcess core.Process
	for _, i := range v.Eligible {
		p := v.Process(i)
		if chosen == core.None || better(p, chosenProcess) {
			chosen, chosenProcess = i, p
		}
	}
	return chosen
}

// scanSelector implements the shared shape of SJF, Priority and LJF: a
// non-preemptive variant keeps the running process, a preemptive one
// re-evaluates every unit.
func scanSelector(preemptive bool, better func(candidate, current core.Process) bool) core.Selector {
	return core.SelectorFunc(func(v core.View) int {
		if !preemptive && v.Running != core.None {
			return v.Running
		}
		return best(v, better)
	})
}
