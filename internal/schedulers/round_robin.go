package schedulers

import (
	"errors"
	"fmt"

	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
)

// ErrInvalidQuantum is returned for a time quantum that is not positive.
var ErrInvalidQuantum = errors.New("time quantum must be positive")

// RoundRobin grants each process a fixed quantum from a FIFO ready queue.
type RoundRobin struct {
	quantum int
}

func NewRoundRobin(quantum int) (*RoundRobin, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
	}
	return &RoundRobin{quantum: quantum}, nil
}

func (r *RoundRobin) Quantum() int {
	return r.quantum
}

func (r *RoundRobin) Name() string {
	return "Round Robin (RR)"
}

func (r *RoundRobin) Description() string {
	return "A preemptive scheduling algorithm that allocates a fixed time quantum to each process in a circular queue. " +
		"If a process doesn't complete within its time quantum, it's preempted and placed at the back of the ready queue. " +
		"Provides fair CPU sharing and good response time for interactive systems."
}

func (r *RoundRobin) NewSelector() core.Selector {
	return &roundRobinSelector{
		readyQueue: newReadyQueue(),
		quantum:    r.quantum,
		current:    core.None,
	}
}

type roundRobinSelector struct {
	*readyQueue
	quantum int
	current int
	used    int
}

func (s *roundRobinSelector) Select(v core.View) int {
	// arrivals are queued before the expiring process is requeued
	s.admit(v)

	if s.current != core.None && v.Running != s.current {
		s.current = core.None
	}
	if s.current != core.None && s.used >= s.quantum {
		s.push(s.current)
		s.current = core.None
	}
	if s.current == core.None {
		next, ok := s.pop()
		if !ok {
			return core.None
		}
		s.current, s.used = next, 0
	}

	s.used++
	return s.current
}

// readyQueue is a FIFO of arena indices that remembers which processes
// have already been admitted.
type readyQueue struct {
	queue    []int
	admitted map[int]bool
}

func newReadyQueue() *readyQueue {
	return &readyQueue{admitted: make(map[int]bool)}
}

// admit appends newly eligible processes in arrival order.
func (q *readyQueue) admit(v core.View) {
	for _, i := range v.Eligible {
		if q.admitted[i] {
			continue
		}
		q.admitted[i] = true
		q.push(i)
	}
}

func (q *readyQueue) push(i int) {
	q.queue = append(q.queue, i)
}

func (q *readyQueue) pop() (int, bool) {
	if len(q.queue) == 0 {
		return core.None, false
	}
	i := q.queue[0]
	q.queue = q.queue[1:]
	return i, true
}

func (q *readyQueue) Len() int {
	return len(q.queue)
}
