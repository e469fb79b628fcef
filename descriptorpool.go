// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"sync"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// DescriptorSetGroup is one native descriptor set plus the last-use
// fence value that denotes the submission which most recently
// referenced it.
type DescriptorSetGroup struct {
	set      native.DescriptorSet
	fence    *TimelineFence
	expected uint64
	upToDate bool
}

// Available reports whether the GPU has finished every submission
// that referenced this group, meaning it is safe to rewrite or reuse.
func (g *DescriptorSetGroup) Available() bool {
	return g.fence == nil || g.fence.IsSatisfied(g.expected)
}

// DescriptorPool grows geometrically: pool k holds InitialSize*2^k
// sets. It vends free DescriptorSetGroups and parks in-use ones until
// their fence value is satisfied.
type DescriptorPool struct {
	mu     sync.Mutex
	device native.Device
	layout types.ResourceHeapLayoutDesc
	counts native.DescriptorCounts

	initialSize int
	native      []native.DescriptorPool
	capLeft     int // sets not yet carved from the newest native pool
	vended      []*DescriptorSetGroup
	parked      []*DescriptorSetGroup

	totalAllocated int
	totalFreed     int
}

func newDescriptorPool(device native.Device, layout types.ResourceHeapLayoutDesc, counts native.DescriptorCounts, initialSize int) *DescriptorPool {
	if initialSize <= 0 {
		initialSize = 3
	}
	return &DescriptorPool{device: device, layout: layout, counts: counts, initialSize: initialSize}
}

// GetGroup returns the first available parked group, or grows the
// pool and carves a new one when none is available.
func (p *DescriptorPool) GetGroup() (*DescriptorSetGroup, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, g := range p.parked {
		if g.Available() {
			p.parked[i] = p.parked[len(p.parked)-1]
			p.parked = p.parked[:len(p.parked)-1]
			p.vended = append(p.vended, g)
			return g, nil
		}
	}
	return p.grow()
}

// grow carves a group from the newest native pool, allocating a new
// underlying pool sized by the next geometric step
// (InitialSize * 2^poolIndex) once the current one is exhausted.
// Caller must hold p.mu.
func (p *DescriptorPool) grow() (*DescriptorSetGroup, error) {
	if p.capLeft == 0 {
		size := p.initialSize << len(p.native)
		natPool, err := p.device.NewDescriptorPool(size, p.counts)
		if err != nil {
			return nil, newErr(OutOfMemory, "DescriptorPool.grow", err)
		}
		p.native = append(p.native, natPool)
		p.capLeft = size
	}

	set, err := p.native[len(p.native)-1].Allocate(p.layout)
	if err != nil {
		return nil, newErr(OutOfMemory, "DescriptorPool.grow", err)
	}
	p.capLeft--
	g := &DescriptorSetGroup{set: set}
	p.vended = append(p.vended, g)
	p.totalAllocated++
	return g, nil
}

// ReturnGroup parks g; it remains unavailable for reuse until its
// fence value is satisfied.
func (p *DescriptorPool) ReturnGroup(g *DescriptorSetGroup) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, v := range p.vended {
		if v == g {
			p.vended[i] = p.vended[len(p.vended)-1]
			p.vended = p.vended[:len(p.vended)-1]
			break
		}
	}
	p.parked = append(p.parked, g)
	p.totalFreed++
}

// MarkAllNotUpToDate invalidates every cached descriptor write, both
// vended and parked, so any reuse rewrites. Called after any binding
// mutation on the owning ResourceHeap.
func (p *DescriptorPool) MarkAllNotUpToDate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, g := range p.vended {
		g.upToDate = false
	}
	for _, g := range p.parked {
		g.upToDate = false
	}
}

// Stats reports lifetime allocation counters, for diagnostics only;
// no spec invariant depends on these values.
func (p *DescriptorPool) Stats() (allocated, freed int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalAllocated, p.totalFreed
}

// Destroy releases every underlying native pool.
func (p *DescriptorPool) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, np := range p.native {
		np.Destroy()
	}
}
