package schedulers_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/devenderkumar212003/cpu-scheduler/internal/schedulers"
)

var _ = Describe("Catalog", func() {
	classic := []string{"fcfs", "sjf", "srtf", "rr", "priority", "priority-preemptive", "ljf", "lrtf", "hrrn"}

	It("should list the classic configurations in order", func() {
		entries, err := schedulers.Catalog(2, nil)
		Expect(err).ToNot(HaveOccurred())

		Expect(schedulers.Keys(entries)).To(Equal(classic))
	})

	It("should append MLFQ when levels are configured", func() {
		entries, err := schedulers.Catalog(2, []int{2, 4, 8})
		Expect(err).ToNot(HaveOccurred())

		Expect(schedulers.Keys(entries)).To(Equal(append(append([]string{}, classic...), "mlfq")))
	})

	It("should reject bad quanta", func() {
		_, err := schedulers.Catalog(0, nil)
		Expect(err).To(MatchError(schedulers.ErrInvalidQuantum))

		_, err = schedulers.Catalog(2, []int{2, 0})
		Expect(err).To(MatchError(schedulers.ErrInvalidQuantum))
	})

	Context("when looking up entries", func() {
		var entries []schedulers.Entry

		BeforeEach(func() {
			var err error
			entries, err = schedulers.Catalog(3, nil)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should find a known key", func() {
			entry, err := schedulers.Lookup(entries, "rr")
			Expect(err).ToNot(HaveOccurred())
			Expect(entry.Policy).To(BeAssignableToTypeOf(&schedulers.RoundRobin{}))
			Expect(entry.Policy.(*schedulers.RoundRobin).Quantum()).To(Equal(3))
		})

		It("should fail on an unknown key", func() {
			_, err := schedulers.Lookup(entries, "lottery")
			Expect(err).To(MatchError(schedulers.ErrUnknownPolicy))
			Expect(err.Error()).To(ContainSubstring(`"lottery"`))
		})

		It("should filter in the requested order", func() {
			selected, err := schedulers.Filter(entries, []string{"hrrn", "fcfs"})
			Expect(err).ToNot(HaveOccurred())
			Expect(schedulers.Keys(selected)).To(Equal([]string{"hrrn", "fcfs"}))
		})

		It("should keep everything when no keys are given", func() {
			selected, err := schedulers.Filter(entries, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(selected).To(HaveLen(len(entries)))
		})

		It("should fail the filter on an unknown key", func() {
			_, err := schedulers.Filter(entries, []string{"fcfs", "nope"})
			Expect(err).To(MatchError(schedulers.ErrUnknownPolicy))
		})

		It("should describe every entry", func() {
			info := schedulers.PolicyInfo(entries)
			Expect(info).To(HaveLen(len(entries)))
			for i, p := range info {
				Expect(p.Key).To(Equal(entries[i].Key))
				Expect(p.Name).ToNot(BeEmpty())
				Expect(p.Description).ToNot(BeEmpty())
			}
		})
	})
})
