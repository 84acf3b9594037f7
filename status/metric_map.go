package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap holds named metric cells of type T
// Cells are created on first Get and never removed, so callers cache the pointer
type MetricMap[T any] struct {
	cells sync.Map // string -> *T
	n     atomic.Int64
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.cells.Load(key); ok {
		return v.(*T)
	}
	v, loaded := m.cells.LoadOrStore(key, new(T))
	if !loaded {
		m.n.Add(1)
	}
	return v.(*T)
}

func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.cells.Load(key)
	return ok
}

// Range visits cells by key in lexical order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	var keys []string
	m.cells.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)
	for _, k := range keys {
		v, _ := m.cells.Load(k)
		fn(k, v.(*T))
	}
}

func (m *MetricMap[T]) Count() int { return int(m.n.Load()) }
