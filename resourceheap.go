// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"sync"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// bufferBinding is one bound buffer slot in a ResourceHeap.
type bufferBinding struct {
	buffer *Buffer
	offset int64
	size   int64
}

// samplerBinding is one bound sampler+view slot in a ResourceHeap.
type samplerBinding struct {
	sampler *Sampler
	view    *TextureView
}

// ResourceHeap groups the descriptor bindings for one set index.
// Binding mutation is copy-on-write: a call stages a copy of the
// current binding map, applies its updates, and swaps it in only on
// success, so a failed bind leaves prior bindings intact.
type ResourceHeap struct {
	mu sync.Mutex

	pool   *DescriptorPool
	layout types.ResourceHeapLayoutDesc

	buffers  map[int][]bufferBinding
	samplers map[int][]samplerBinding

	current *DescriptorSetGroup
}

func newResourceHeap(pool *DescriptorPool, layout types.ResourceHeapLayoutDesc) *ResourceHeap {
	return &ResourceHeap{
		pool:     pool,
		layout:   layout,
		buffers:  make(map[int][]bufferBinding),
		samplers: make(map[int][]samplerBinding),
	}
}

// BindBuffers writes buffers (with optional offsets/sizes, defaulting
// to 0/full capacity) into bindingIndex starting at arrayStart.
func (h *ResourceHeap) BindBuffers(bindingIndex int, buffers []*Buffer, offsets, sizes []int64, arrayStart int) error {
	if offsets != nil && len(offsets) != len(buffers) {
		return newErr(InvalidArgument, "ResourceHeap.BindBuffers", nil)
	}
	if sizes != nil && len(sizes) != len(buffers) {
		return newErr(InvalidArgument, "ResourceHeap.BindBuffers", nil)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	staged := append([]bufferBinding(nil), h.buffers[bindingIndex]...)
	need := arrayStart + len(buffers)
	if need > len(staged) {
		grown := make([]bufferBinding, need)
		copy(grown, staged)
		staged = grown
	}
	for i, b := range buffers {
		off := int64(0)
		if offsets != nil {
			off = offsets[i]
		}
		size := b.Cap() - off
		if sizes != nil {
			size = sizes[i]
		}
		staged[arrayStart+i] = bufferBinding{buffer: b, offset: off, size: size}
	}

	h.buffers[bindingIndex] = staged
	h.invalidate()
	return nil
}

// BindSamplers writes sampler+view pairs into bindingIndex starting at
// arrayStart.
func (h *ResourceHeap) BindSamplers(bindingIndex int, samplers []*Sampler, views []*TextureView, arrayStart int) error {
	if len(samplers) != len(views) {
		return newErr(InvalidArgument, "ResourceHeap.BindSamplers", nil)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	staged := append([]samplerBinding(nil), h.samplers[bindingIndex]...)
	need := arrayStart + len(samplers)
	if need > len(staged) {
		grown := make([]samplerBinding, need)
		copy(grown, staged)
		staged = grown
	}
	for i := range samplers {
		staged[arrayStart+i] = samplerBinding{sampler: samplers[i], view: views[i]}
	}

	h.samplers[bindingIndex] = staged
	h.invalidate()
	return nil
}

// invalidate clears the current group's up-to-date flag and marks the
// whole owning pool not-up-to-date, since any parked group might later
// be reused to represent this heap's new contents. Caller must hold
// h.mu.
func (h *ResourceHeap) invalidate() {
	if h.current != nil {
		h.current.upToDate = false
	}
	h.pool.MarkAllNotUpToDate()
}

// PrepareBinding selects a descriptor-set group for the current
// binding contents, transitioning every referenced resource per
// transitionPolicy, and returns the group ready to bind.
func (h *ResourceHeap) PrepareBinding(ctx *DeviceContext, transitionPolicy types.StateTransition) (*DescriptorSetGroup, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil || !h.current.Available() {
		if h.current != nil {
			h.pool.ReturnGroup(h.current)
		}
		g, err := h.pool.GetGroup()
		if err != nil {
			return nil, err
		}
		h.current = g
	}
	g := h.current

	cb := ctx.cmd
	autoTransition := transitionPolicy == types.Transit

	for _, bindings := range h.buffers {
		for _, b := range bindings {
			if b.buffer == nil {
				continue
			}
			cb.AddResourceReference(b.buffer)
			if autoTransition {
				if err := ctx.TransitBufferState(b.buffer, types.StateUniform, true); err != nil {
					return nil, err
				}
			}
		}
	}
	for _, bindings := range h.samplers {
		for _, s := range bindings {
			if s.sampler == nil {
				continue
			}
			cb.AddResourceReference(s.sampler)
			cb.AddResourceReference(s.view)
			if autoTransition {
				if err := ctx.TransitTextureState(s.view.texture, types.StateShaderReadOnly, s.view.baseLevel, s.view.levels, true); err != nil {
					return nil, err
				}
			}
		}
	}

	if !g.upToDate {
		h.writeDescriptors(g)
		g.upToDate = true
	}

	g.fence = cb.fence
	g.expected = cb.fenceExpected + 1

	return g, nil
}

// writeDescriptors issues the accumulated buffer/image descriptor
// writes for g in a single native update call. Caller must hold h.mu.
func (h *ResourceHeap) writeDescriptors(g *DescriptorSetGroup) {
	for slot, bindings := range h.buffers {
		bufs := make([]native.Buffer, len(bindings))
		offs := make([]int64, len(bindings))
		sizes := make([]int64, len(bindings))
		for i, b := range bindings {
			if b.buffer != nil {
				bufs[i] = b.buffer.nat
				offs[i] = b.offset
				sizes[i] = b.size
			}
		}
		g.set.WriteBuffers(slot, bufs, offs, sizes, 0)
	}
	for slot, bindings := range h.samplers {
		views := make([]native.TextureView, len(bindings))
		samps := make([]native.Sampler, len(bindings))
		for i, s := range bindings {
			if s.sampler != nil {
				views[i] = s.view.nat
				samps[i] = s.sampler.nat
			}
		}
		g.set.WriteImages(slot, views, samps, 0)
	}
}
