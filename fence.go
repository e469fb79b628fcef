// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import "github.com/vulkangpu/gpu/native"

// TimelineFence is a monotonic, non-decreasing 64-bit GPU/CPU
// synchronization primitive. The current value is owned by the
// native backend (a Vulkan timeline semaphore); this type only adds
// the typed error mapping the rest of the core expects.
type TimelineFence struct {
	nat native.Fence
}

func newTimelineFence(nat native.Fence) *TimelineFence {
	return &TimelineFence{nat: nat}
}

// GetCurrent returns the last observed counter value. It never blocks.
func (f *TimelineFence) GetCurrent() uint64 {
	v, err := f.nat.Current()
	if err != nil {
		// A failure to query a fence value indicates a lost device;
		// the caller finds out for certain on their next blocking
		// call. Report the last-known-good floor of zero here rather
		// than panic, since GetCurrent must not block or fail.
		return 0
	}
	return v
}

// Signal advances the counter to v from the CPU side. v must be
// strictly greater than the current value.
func (f *TimelineFence) Signal(v uint64) error {
	if v <= f.GetCurrent() {
		return newErr(InvalidArgument, "TimelineFence.Signal", nil)
	}
	if err := f.nat.Signal(v); err != nil {
		return newErr(External, "TimelineFence.Signal", err)
	}
	return nil
}

// Wait blocks the calling goroutine until GetCurrent() >= v. It
// returns immediately if the fence is already satisfied.
func (f *TimelineFence) Wait(v uint64) error {
	if err := f.nat.Wait(v); err != nil {
		return newErr(External, "TimelineFence.Wait", err)
	}
	return nil
}

// IsSatisfied reports whether GetCurrent() >= v without blocking.
func (f *TimelineFence) IsSatisfied(v uint64) bool {
	return f.GetCurrent() >= v
}

// Destroy releases the underlying native fence.
func (f *TimelineFence) Destroy() { f.nat.Destroy() }
