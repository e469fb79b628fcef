// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"sync"

	"github.com/vulkangpu/gpu/native"
)

// CommandPool recycles CommandBuffers for one queue family.
// Availability is decided by each buffer's completion fence; a single
// lock serializes Acquire/Return per pool.
type CommandPool struct {
	mu       sync.Mutex
	nat      native.CommandPool
	device   native.Device
	returned []*CommandBuffer
}

func newCommandPool(nat native.CommandPool, device native.Device) *CommandPool {
	return &CommandPool{nat: nat, device: device}
}

// Acquire returns a CommandBuffer ready for recording: either a
// returned buffer whose fence has been satisfied, freshly Reset, or a
// newly allocated one.
func (p *CommandPool) Acquire() (*CommandBuffer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, cb := range p.returned {
		if cb.IsAvailable() {
			p.returned[i] = p.returned[len(p.returned)-1]
			p.returned = p.returned[:len(p.returned)-1]
			if err := cb.Reset(); err != nil {
				return nil, err
			}
			return cb, nil
		}
	}

	natCB, err := p.nat.Allocate()
	if err != nil {
		return nil, newErr(External, "CommandPool.Acquire", err)
	}
	natFence, err := p.device.NewFence(0)
	if err != nil {
		natCB.Destroy()
		return nil, newErr(External, "CommandPool.Acquire", err)
	}
	return &CommandBuffer{nat: natCB, fence: newTimelineFence(natFence)}, nil
}

// Return hands cb back to the pool; it may be in flight or idle. The
// pool decides reuse eligibility lazily, at the next Acquire, by
// consulting cb's completion fence.
func (p *CommandPool) Return(cb *CommandBuffer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.returned = append(p.returned, cb)
}

// Destroy releases every returned buffer's completion fence and the
// native command pool. The caller must ensure no returned buffer is
// still in flight.
func (p *CommandPool) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cb := range p.returned {
		cb.fence.Destroy()
	}
	p.returned = nil
	p.nat.Destroy()
}
