package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during Init; Update loops write directly to atomics
// Readers (renderer, soak runner) may sample from other goroutines
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[Float]
	Strings *MetricMap[Text]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[Float](),
		Strings: NewMetricMap[Text](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Flatten renders every metric as a string keyed by name
// Keys colliding across types resolve in order bools, ints, floats, strings
func (r *Registry) Flatten() map[string]string {
	out := make(map[string]string, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out[k] = strconv.FormatBool(v.Load())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out[k] = strconv.FormatInt(v.Load(), 10)
	})
	r.Floats.Range(func(k string, v *Float) {
		out[k] = strconv.FormatFloat(v.Get(), 'f', 2, 64)
	})
	r.Strings.Range(func(k string, v *Text) {
		out[k] = v.Load()
	})
	return out
}

// Line formats the named metrics as "key=value" pairs in the given order
// Missing keys are skipped
func (r *Registry) Line(keys ...string) string {
	flat := r.Flatten()
	line := ""
	for _, k := range keys {
		v, ok := flat[k]
		if !ok {
			continue
		}
		if line != "" {
			line += " "
		}
		line += fmt.Sprintf("%s=%s", k, v)
	}
	return line
}
