package extstat

import (
	"iter"
)

// FileEntry represents a single regular file discovered by the walk.
type FileEntry struct {
	// Ext is the file extension including the leading dot, or "" if none.
	Ext string
	// Size is the size in bytes.
	Size int64
}

// Value is the set of types a Report can hold.
type Value interface {
	int64 | string
}

// Report maps extensions to values, keeping first-seen key order.
type Report[V Value] struct {
	keys   []string
	values map[string]V
}

// Sizes holds raw byte counts per extension and accumulates file entries.
type Sizes struct {
	Report[int64]
}

// Formatted holds human-readable sizes per extension.
type Formatted = Report[string]

// NewReport creates an empty report.
func NewReport[V Value]() *Report[V] {
	return &Report[V]{
		keys:   make([]string, 0),
		values: make(map[string]V),
	}
}

// Set stores v under ext, appending ext to the key order if it is new.
func (r *Report[V]) Set(ext string, v V) {
	if _, ok := r.values[ext]; !ok {
		r.keys = append(r.keys, ext)
	}

	r.values[ext] = v
}

// Get returns the value stored under ext.
func (r *Report[V]) Get(ext string) (V, bool) {
	v, ok := r.values[ext]

	return v, ok
}

// Len returns the number of extensions in the report.
func (r *Report[V]) Len() int {
	return len(r.keys)
}

// Keys returns the extensions in first-seen order.
func (r *Report[V]) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)

	return keys
}

// All iterates over the report in first-seen order.
func (r *Report[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range r.keys {
			if !yield(k, r.values[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the report as a plain map.
func (r *Report[V]) Map() map[string]V {
	m := make(map[string]V, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}

	return m
}

// NewSizes creates an empty accumulator.
func NewSizes() *Sizes {
	return &Sizes{Report: *NewReport[int64]()}
}

// Add accumulates the size of e under its extension.
func (r *Sizes) Add(e FileEntry) {
	r.Set(e.Ext, r.values[e.Ext]+e.Size)
}

// Total returns the sum of all byte counts.
func (r *Sizes) Total() int64 {
	var total int64
	for _, v := range r.values {
		total += v
	}

	return total
}

// Aggregate sums entry sizes per extension.
// An empty sequence yields an empty report.
func Aggregate(entries iter.Seq[FileEntry]) *Sizes {
	sizes := NewSizes()
	for e := range entries {
		sizes.Add(e)
	}

	return sizes
}
