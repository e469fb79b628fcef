// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"testing"

	"github.com/vulkangpu/gpu/types"
)

func newTestResourceHeap(t *testing.T) (*GraphicsDevice, *ResourceHeap) {
	t.Helper()
	d := newTestDevice(t)
	layout, err := d.CreateResourceHeapLayout(types.ResourceHeapLayoutDesc{
		Entries: []types.HeapEntry{
			{Type: types.DescUniform, Stages: types.StageVertex, Slot: 0, Count: 2},
			{Type: types.DescTexture, Stages: types.StageFragment, Slot: 1, Count: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateResourceHeapLayout: %v", err)
	}
	heap, err := d.CreateResourceHeap(layout)
	if err != nil {
		t.Fatalf("CreateResourceHeap: %v", err)
	}
	return d, heap
}

func TestResourceHeap_BindBuffersLengthMismatchRejected(t *testing.T) {
	_, heap := newTestResourceHeap(t)
	d := newTestDevice(t)
	buf, err := d.CreateBuffer(&types.BufferDesc{Size: 16, Binding: types.BufferUniform, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	err = heap.BindBuffers(0, []*Buffer{buf}, []int64{0, 4}, nil, 0)
	if !IsKind(err, InvalidArgument) {
		t.Fatalf("BindBuffers with mismatched offsets length: err = %v, want InvalidArgument", err)
	}
}

func TestResourceHeap_BindSamplersLengthMismatchRejected(t *testing.T) {
	_, heap := newTestResourceHeap(t)
	d := newTestDevice(t)
	s, err := d.CreateSampler(&types.SamplerDesc{Min: types.FilterLinear, Mag: types.FilterLinear})
	if err != nil {
		t.Fatalf("CreateSampler: %v", err)
	}
	err = heap.BindSamplers(1, []*Sampler{s}, nil, 0)
	if !IsKind(err, InvalidArgument) {
		t.Fatalf("BindSamplers with nil views: err = %v, want InvalidArgument", err)
	}
}

func TestResourceHeap_BindBuffersExtendsWithoutDisturbingPriorEntry(t *testing.T) {
	d, heap := newTestResourceHeap(t)
	buf0, err := d.CreateBuffer(&types.BufferDesc{Size: 16, Binding: types.BufferUniform, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	buf1, err := d.CreateBuffer(&types.BufferDesc{Size: 16, Binding: types.BufferUniform, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}

	if err := heap.BindBuffers(0, []*Buffer{buf0}, nil, nil, 0); err != nil {
		t.Fatalf("BindBuffers at slot 0: %v", err)
	}
	if err := heap.BindBuffers(0, []*Buffer{buf1}, nil, nil, 1); err != nil {
		t.Fatalf("BindBuffers at slot 1: %v", err)
	}

	bindings := heap.buffers[0]
	if len(bindings) != 2 {
		t.Fatalf("len(buffers[0]) = %d, want 2", len(bindings))
	}
	if bindings[0].buffer != buf0 {
		t.Error("binding at array index 0 was disturbed by the second BindBuffers call")
	}
	if bindings[1].buffer != buf1 {
		t.Error("binding at array index 1 does not reference the newly bound buffer")
	}
}

func TestResourceHeap_PrepareBindingInvalidatesCurrentGroupOnRebind(t *testing.T) {
	d, heap := newTestResourceHeap(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	buf, err := d.CreateBuffer(&types.BufferDesc{Size: 16, Binding: types.BufferUniform, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if err := heap.BindBuffers(0, []*Buffer{buf}, nil, nil, 0); err != nil {
		t.Fatalf("BindBuffers: %v", err)
	}

	group, err := heap.PrepareBinding(ctx, types.Explicit)
	if err != nil {
		t.Fatalf("PrepareBinding: %v", err)
	}
	if !group.upToDate {
		t.Fatal("group should be marked up to date right after PrepareBinding writes descriptors")
	}

	if err := heap.BindBuffers(0, []*Buffer{buf}, nil, nil, 1); err != nil {
		t.Fatalf("second BindBuffers: %v", err)
	}
	if group.upToDate {
		t.Error("rebinding should invalidate the previously prepared group")
	}
}

func TestResourceHeap_PrepareBindingReusesUpToDateGroup(t *testing.T) {
	d, heap := newTestResourceHeap(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	g1, err := heap.PrepareBinding(ctx, types.Explicit)
	if err != nil {
		t.Fatalf("PrepareBinding: %v", err)
	}
	g2, err := heap.PrepareBinding(ctx, types.Explicit)
	if err != nil {
		t.Fatalf("PrepareBinding: %v", err)
	}
	if g1 != g2 {
		t.Error("PrepareBinding should return the same group when nothing has changed")
	}
}
