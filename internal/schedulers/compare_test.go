package schedulers_test

import (
	"errors"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
	"github.com/devenderkumar212003/cpu-scheduler/internal/schedulers"
)

// stalledPolicy never selects anything.
type stalledPolicy struct{}

func (stalledPolicy) Name() string        { return "stalled" }
func (stalledPolicy) Description() string { return "" }
func (stalledPolicy) NewSelector() core.Selector {
	return core.SelectorFunc(func(core.View) int { return core.None })
}

var _ = Describe("Compare", func() {
	var (
		entries []schedulers.Entry
		jobs    []core.Job
	)

	BeforeEach(func() {
		var err error
		entries, err = schedulers.Catalog(2, []int{2, 4, 8})
		Expect(err).ToNot(HaveOccurred())

		jobs = []core.Job{
			prioritized("P1", 0, 8, 3),
			prioritized("P2", 1, 4, 1),
			prioritized("P3", 2, 9, 4),
			prioritized("P4", 3, 5, 2),
			prioritized("P5", 20, 3, 5),
			prioritized("P6", 40, 1, 1),
			prioritized("P7", 40, 6, 2),
		}
	})

	It("should return one outcome per entry in entry order", func() {
		outcomes, err := schedulers.Compare(jobs, entries, nil)
		Expect(err).ToNot(HaveOccurred())

		Expect(outcomes).To(HaveLen(len(entries)))
		for i, o := range outcomes {
			Expect(o.Key).To(Equal(entries[i].Key))
			Expect(o.Result.Policy).To(Equal(entries[i].Policy.Name()))
		}
	})

	It("should be deterministic across calls", func() {
		first, err := schedulers.Compare(jobs, entries, nil)
		Expect(err).ToNot(HaveOccurred())
		second, err := schedulers.Compare(jobs, entries, nil)
		Expect(err).ToNot(HaveOccurred())

		Expect(second).To(Equal(first))
	})

	It("should hold the accounting invariants for every policy", func() {
		totalBurst := 0
		for _, j := range jobs {
			totalBurst += j.BurstTime
		}

		outcomes, err := schedulers.Compare(jobs, entries, nil)
		Expect(err).ToNot(HaveOccurred())

		for _, o := range outcomes {
			r := o.Result
			for i, e := range r.Timeline {
				Expect(e.Time).To(Equal(i), "%s: timeline must be contiguous", o.Key)
			}
			for _, p := range r.Processes {
				Expect(p.Finished()).To(BeTrue(), "%s: %s unfinished", o.Key, p.ID)
				Expect(r.Units(p.ID)).To(Equal(p.BurstTime), "%s: %s units", o.Key, p.ID)
				Expect(p.TurnaroundTime).To(Equal(p.CompletionTime-p.ArrivalTime), "%s: %s turnaround", o.Key, p.ID)
				Expect(p.WaitingTime).To(Equal(p.TurnaroundTime-p.BurstTime), "%s: %s waiting", o.Key, p.ID)
				Expect(p.ResponseTime).To(BeNumerically(">=", 0), "%s: %s response", o.Key, p.ID)
				Expect(p.ResponseTime).To(BeNumerically("<=", p.WaitingTime), "%s: %s response", o.Key, p.ID)
			}
			Expect(r.IdleTime).To(Equal(r.TotalTime-totalBurst), o.Key)
			Expect(r.Units(core.IdleLabel)).To(Equal(r.IdleTime), o.Key)
			Expect(r.CPUUtilization).To(BeNumerically("<=", 100.0), o.Key)
		}
	})

	It("should report an empty run without failing", func() {
		outcomes, err := schedulers.Compare(nil, entries, nil)
		Expect(err).ToNot(HaveOccurred())

		for _, o := range outcomes {
			Expect(o.Result.AvgTurnaroundTime).To(BeZero())
			Expect(o.Result.Throughput).To(BeZero())
			Expect(o.Result.CPUUtilization).To(BeZero())
		}
	})

	It("should reject invalid jobs before running anything", func() {
		jobs = append(jobs, job("P1", 0, 1))

		_, err := schedulers.Compare(jobs, entries, nil)
		Expect(err).To(MatchError(core.ErrInvalidProcess))
	})

	It("should name the entry whose run failed", func() {
		stalled := schedulers.Entry{Key: "stalled", Policy: stalledPolicy{}}
		selected, err := schedulers.Filter(entries, []string{"fcfs", "rr"})
		Expect(err).ToNot(HaveOccurred())

		_, err = schedulers.Compare(jobs, append(selected, stalled), nil)

		var runErr *schedulers.RunError
		Expect(errors.As(err, &runErr)).To(BeTrue())
		Expect(runErr.Key).To(Equal("stalled"))
		Expect(err).To(MatchError(core.ErrPolicyViolation))
	})

	It("should prefix log lines with the entry key", func() {
		var (
			mu    sync.Mutex
			lines []string
		)
		logEvent := func(msg string) {
			mu.Lock()
			defer mu.Unlock()
			lines = append(lines, msg)
		}

		selected, err := schedulers.Filter(entries, []string{"fcfs", "hrrn"})
		Expect(err).ToNot(HaveOccurred())
		_, err = schedulers.Compare(jobs, selected, logEvent)
		Expect(err).ToNot(HaveOccurred())

		Expect(lines).ToNot(BeEmpty())
		for _, line := range lines {
			Expect(strings.HasPrefix(line, "[fcfs] ") || strings.HasPrefix(line, "[hrrn] ")).
				To(BeTrue(), line)
		}
	})
})

var _ = Describe("GenerateResponse", func() {
	It("should map a run to its response", func() {
		result := simulate(schedulers.NewFirstComeFirstServe(), job("P1", 0, 5), job("P2", 1, 3))

		response := schedulers.GenerateResponse("fcfs", result)

		Expect(response.Algorithm).To(Equal("fcfs"))
		Expect(response.Name).To(Equal("First Come First Serve (FCFS)"))
		Expect(response.AverageWaitingTime).To(Equal(2.0))
		Expect(response.TotalTime).To(Equal(8))
		Expect(response.Timeline).To(HaveLen(8))
		Expect(response.Gantt).To(HaveLen(2))
		Expect(response.Gantt[1].ProcessId).To(Equal("P2"))
		Expect(response.Gantt[1].Start).To(Equal(5))
		Expect(response.Gantt[1].Stop).To(Equal(8))
		Expect(response.Details).To(HaveLen(2))
		Expect(response.Details[1].WaitingTime).To(Equal(4))
	})
})
