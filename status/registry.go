package status

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during init; handlers write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Entry is a formatted metric for display or logging
type Entry struct {
	Key   string
	Value string
}

// Entries returns every metric formatted, sorted by key
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		entries = append(entries, Entry{k, fmt.Sprintf("%t", v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		entries = append(entries, Entry{k, fmt.Sprintf("%d", v.Load())})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		entries = append(entries, Entry{k, fmt.Sprintf("%.2f", v.Get())})
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		entries = append(entries, Entry{k, v.Load()})
	})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}
