package store

import "sync/atomic"

// IDAllocator hands out monotonically increasing phone ids starting at 1.
// Ids are never reused, even after the phone holding one is deleted.
type IDAllocator struct {
	last atomic.Int64
}

// NewIDAllocator returns an allocator whose first id is 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the next unused id.
func (a *IDAllocator) Next() int64 {
	return a.last.Add(1)
}
