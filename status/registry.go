package status

import "sync/atomic"

// Metric keys recorded by a game session
const (
	KeyGuesses  = "guesses"
	KeyRejected = "rejected"
	KeyTooSmall = "too_small"
	KeyTooBig   = "too_big"
	KeyState    = "state"
)

// Registry is the session counters facade
// Callers cache pointers once; the loop writes directly to the atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Labels *MetricMap[Label]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Labels: NewMetricMap[Label](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Labels.Count()
}

// Snapshot flattens every metric into go-kit style key/value pairs, sorted by key within each type
func (r *Registry) Snapshot() []any {
	kv := make([]any, 0, 2*r.TotalCount())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		kv = append(kv, key, ptr.Load())
	})
	r.Labels.Range(func(key string, ptr *Label) {
		kv = append(kv, key, ptr.Load())
	})
	return kv
}
