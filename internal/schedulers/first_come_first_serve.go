package schedulers

import "github.com/devenderkumar212003/cpu-scheduler/internal/core"

// FirstComeFirstServe runs processes in arrival order, each to completion.
type FirstComeFirstServe struct{}

func NewFirstComeFirstServe() *FirstComeFirstServe {
	return &FirstComeFirstServe{}
}

func (f *FirstComeFirstServe) Name() string {
	return "First Come First Serve (FCFS)"
}

func (f *FirstComeFirstServe) Description() string {
	return "A non-preemptive scheduling algorithm that executes processes in the order they arrive. " +
		"Once a process gets the CPU, it runs until completion. " +
		"Simple to implement but may cause convoy effect where short processes wait behind long ones."
}

func (f *FirstComeFirstServe) NewSelector() core.Selector {
	return core.SelectorFunc(func(v core.View) int {
		if v.Running != core.None {
			return v.Running
		}
		// eligible is arrival sorted with input order kept for equal arrivals
		for _, i := range v.Eligible {
			if !v.Process(i).Started {
				return i
			}
		}
		if len(v.Eligible) > 0 {
			return v.Eligible[0]
		}
		return core.None
	})
}
