package util

import (
	"sync/atomic"
)

// AtomicInt32 is a boxed-class that provides synchronized access to the
// underlying int32 value
type AtomicInt32 struct {
	state int32
}

// NewAtomicInt32 returns a new AtomicInt32
func NewAtomicInt32(initialState int32) *AtomicInt32 {
	return &AtomicInt32{state: initialState}
}

// Get returns the current value synchronously
func (a *AtomicInt32) Get() int32 {
	return atomic.LoadInt32(&a.state)
}

// Set updates the value synchronously
func (a *AtomicInt32) Set(newState int32) int32 {
	atomic.StoreInt32(&a.state, newState)
	return newState
}

// CompareAndSwap stores newState only if the current value is oldState and
// reports whether the swap happened
func (a *AtomicInt32) CompareAndSwap(oldState int32, newState int32) bool {
	return atomic.CompareAndSwapInt32(&a.state, oldState, newState)
}
