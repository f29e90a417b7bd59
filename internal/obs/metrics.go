package obs

import (
	"sort"
	"strings"
	"sync"
)

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// MeterOrNop returns m, or a NopMeter when m is nil.
func MeterOrNop(m Meter) Meter {
	if m == nil {
		return NopMeter{}
	}
	return m
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// CountingMeter keeps counter sums and histogram observations in memory.
// Series are keyed by name plus sorted labels, e.g. `reqs{method=GET}`.
type CountingMeter struct {
	mu       sync.Mutex
	counters map[string]float64
	samples  map[string][]float64
}

func (m *CountingMeter) Counter(name string, value float64, labels ...Label) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counters == nil {
		m.counters = make(map[string]float64)
	}
	m.counters[SeriesKey(name, labels...)] += value
}

func (m *CountingMeter) Histogram(name string, value float64, labels ...Label) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.samples == nil {
		m.samples = make(map[string][]float64)
	}
	k := SeriesKey(name, labels...)
	m.samples[k] = append(m.samples[k], value)
}

// Count returns the current sum of a counter series.
func (m *CountingMeter) Count(name string, labels ...Label) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[SeriesKey(name, labels...)]
}

// Samples returns a copy of the observations recorded for a histogram series.
func (m *CountingMeter) Samples(name string, labels ...Label) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.samples[SeriesKey(name, labels...)]...)
}

// SeriesKey renders name and labels into a stable series identifier.
func SeriesKey(name string, labels ...Label) string {
	if len(labels) == 0 {
		return name
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.Key+"="+l.Value)
	}
	sort.Strings(parts)
	return name + "{" + strings.Join(parts, ",") + "}"
}
