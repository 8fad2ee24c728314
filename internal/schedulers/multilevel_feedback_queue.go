package schedulers

import (
	"fmt"

	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
)

// MultilevelFeedbackQueue is a stack of round robin levels. Arrivals enter
// the first level, a process that uses its whole quantum drops one level,
// and the last level keeps whatever reaches it.
type MultilevelFeedbackQueue struct {
	levels []int
}

func NewMultilevelFeedbackQueue(levels []int) (*MultilevelFeedbackQueue, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels configured", ErrInvalidQuantum)
	}
	for i, q := range levels {
		if q <= 0 {
			return nil, fmt.Errorf("%w: level %d has quantum %d", ErrInvalidQuantum, i, q)
		}
	}
	copied := make([]int, len(levels))
	copy(copied, levels)
	return &MultilevelFeedbackQueue{levels: copied}, nil
}

func (m *MultilevelFeedbackQueue) Levels() []int {
	out := make([]int, len(m.levels))
	copy(out, m.levels)
	return out
}

func (m *MultilevelFeedbackQueue) Name() string {
	return "Multilevel Feedback Queue (MLFQ)"
}

func (m *MultilevelFeedbackQueue) Description() string {
	return fmt.Sprintf("A preemptive scheduling algorithm with %d round robin levels (quanta %v). "+
		"New processes start in the top level; a process that uses its whole quantum is demoted one level. "+
		"Favors short and interactive processes without knowing burst times in advance.", len(m.levels), m.levels)
}

func (m *MultilevelFeedbackQueue) NewSelector() core.Selector {
	queues := make([]*readyQueue, len(m.levels))
	for i := range queues {
		queues[i] = newReadyQueue()
	}
	return &mlfqSelector{
		levels:  m.levels,
		queues:  queues,
		level:   make(map[int]int),
		current: core.None,
	}
}

type mlfqSelector struct {
	levels  []int
	queues  []*readyQueue
	level   map[int]int
	current int
	used    int
}

func (s *mlfqSelector) Select(v core.View) int {
	s.queues[0].admit(v)

	if s.current != core.None && v.Running != s.current {
		s.current = core.None
	}
	if s.current != core.None && s.used >= s.levels[s.level[s.current]] {
		next := s.level[s.current] + 1
		if next >= len(s.levels) {
			next = len(s.levels) - 1
		}
		s.level[s.current] = next
		s.queues[next].push(s.current)
		s.current = core.None
	}
	if s.current == core.None {
		for _, q := range s.queues {
			if i, ok := q.pop(); ok {
				s.current, s.used = i, 0
				break
			}
		}
		if s.current == core.None {
			return core.None
		}
	}

	s.used++
	return s.current
}
