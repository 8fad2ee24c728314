package schedulers

import (
	"errors"
	"fmt"

	"github.com/devenderkumar212003/cpu-scheduler/internal/core"
)

// ErrUnknownPolicy is returned by Lookup for a key not in the catalog.
var ErrUnknownPolicy = errors.New("unknown scheduling policy")

const (
	KeyFCFS               = "fcfs"
	KeySJF                = "sjf"
	KeySRTF               = "srtf"
	KeyRoundRobin         = "rr"
	KeyPriority           = "priority"
	KeyPriorityPreemptive = "priority-preemptive"
	KeyLJF                = "ljf"
	KeyLRTF               = "lrtf"
	KeyHRRN               = "hrrn"
	KeyMLFQ               = "mlfq"
)

// Entry binds a policy to the key it is addressed by.
type Entry struct {
	Key    string
	Policy core.Policy
}

// Catalog returns the nine classic configurations followed by MLFQ when
// levels are given.
func Catalog(quantum int, mlfqLevels []int) ([]Entry, error) {
	rr, err := NewRoundRobin(quantum)
	if err != nil {
		return nil, err
	}

	entries := []Entry{
		{Key: KeyFCFS, Policy: NewFirstComeFirstServe()},
		{Key: KeySJF, Policy: NewShortestJobFirst(false)},
		{Key: KeySRTF, Policy: NewShortestJobFirst(true)},
		{Key: KeyRoundRobin, Policy: rr},
		{Key: KeyPriority, Policy: NewPriority(false)},
		{Key: KeyPriorityPreemptive, Policy: NewPriority(true)},
		{Key: KeyLJF, Policy: NewLongestJobFirst(false)},
		{Key: KeyLRTF, Policy: NewLongestJobFirst(true)},
		{Key: KeyHRRN, Policy: NewHighestResponseRatioNext()},
	}

	if len(mlfqLevels) > 0 {
		mlfq, err := NewMultilevelFeedbackQueue(mlfqLevels)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: KeyMLFQ, Policy: mlfq})
	}
	return entries, nil
}

// Lookup finds the entry registered under key.
func Lookup(entries []Entry, key string) (Entry, error) {
	for _, e := range entries {
		if e.Key == key {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, key)
}

// Filter narrows entries to keys, in the order given. No keys means all.
func Filter(entries []Entry, keys []string) ([]Entry, error) {
	if len(keys) == 0 {
		return entries, nil
	}
	selected := make([]Entry, 0, len(keys))
	for _, key := range keys {
		e, err := Lookup(entries, key)
		if err != nil {
			return nil, err
		}
		selected = append(selected, e)
	}
	return selected, nil
}

// Keys lists the keys of entries in order.
func Keys(entries []Entry) []string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}
