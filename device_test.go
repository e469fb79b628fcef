// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"bytes"
	"testing"

	"github.com/vulkangpu/gpu/native/fake"
	"github.com/vulkangpu/gpu/types"
)

func newTestDevice(t *testing.T) *GraphicsDevice {
	t.Helper()
	d, err := NewGraphicsDevice(fake.NewDevice())
	if err != nil {
		t.Fatalf("NewGraphicsDevice: %v", err)
	}
	return d
}

func TestNewGraphicsDevice(t *testing.T) {
	d := newTestDevice(t)
	if d.QueueFamilyCount() != 1 {
		t.Fatalf("QueueFamilyCount() = %d, want 1", d.QueueFamilyCount())
	}
	if d.Limits() != types.DefaultLimits() {
		t.Errorf("Limits() = %+v, want DefaultLimits()", d.Limits())
	}
	if err := d.WaitIdle(); err != nil {
		t.Errorf("WaitIdle() = %v, want nil", err)
	}
}

func TestCreateBuffer_RejectsNonPositiveSize(t *testing.T) {
	d := newTestDevice(t)
	_, err := d.CreateBuffer(&types.BufferDesc{Size: 0, Binding: types.BufferVertex}, nil)
	if !IsKind(err, InvalidArgument) {
		t.Fatalf("CreateBuffer with Size 0: err = %v, want InvalidArgument", err)
	}
}

func TestCreateBuffer_VisibleWithInitialData(t *testing.T) {
	d := newTestDevice(t)
	data := []byte{1, 2, 3, 4}
	buf, err := d.CreateBuffer(&types.BufferDesc{
		Size:    int64(len(data)),
		Binding: types.BufferUniform,
		Usage:   types.Dynamic,
	}, data)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if !buf.Visible() {
		t.Fatal("Dynamic buffer should be host visible")
	}
	fb := buf.nat.(*fake.Buffer)
	if !bytes.Equal(fb.Bytes(), data) {
		t.Errorf("buffer contents = %v, want %v", fb.Bytes(), data)
	}
}

func TestCreateBuffer_DeviceLocalWithInitialData(t *testing.T) {
	d := newTestDevice(t)
	data := []byte{9, 8, 7, 6}
	buf, err := d.CreateBuffer(&types.BufferDesc{
		Size:    int64(len(data)),
		Binding: types.BufferVertex,
		Usage:   types.Immutable,
	}, data)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if buf.Visible() {
		t.Fatal("Immutable buffer should not be host visible")
	}
	fb := buf.nat.(*fake.Buffer)
	if !bytes.Equal(fb.Bytes(), data) {
		t.Errorf("device-local buffer contents after staged upload = %v, want %v", fb.Bytes(), data)
	}
}

func TestCreateBuffer_NoInitialData(t *testing.T) {
	d := newTestDevice(t)
	buf, err := d.CreateBuffer(&types.BufferDesc{Size: 16, Binding: types.BufferUniform, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if buf.Cap() != 16 {
		t.Errorf("Cap() = %d, want 16", buf.Cap())
	}
	if buf.State() != types.StateCommon {
		t.Errorf("initial State() = %v, want StateCommon", buf.State())
	}
}

func TestCreateTexture(t *testing.T) {
	d := newTestDevice(t)
	tex, err := d.CreateTexture(&types.TextureDesc{
		Format:  types.RGBA8Unorm,
		Size:    types.Dim3D{Width: 32, Height: 32, Depth: 1},
		Levels:  4,
		Samples: 1,
		Binding: types.TextureSampled,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	for lvl := 0; lvl < 4; lvl++ {
		if s := tex.State(lvl); s != types.StateUndefined {
			t.Errorf("level %d initial state = %v, want StateUndefined", lvl, s)
		}
	}
}

func TestCreateTexture_ZeroLevelsDefaultsToOne(t *testing.T) {
	d := newTestDevice(t)
	tex, err := d.CreateTexture(&types.TextureDesc{
		Format: types.RGBA8Unorm,
		Size:   types.Dim3D{Width: 8, Height: 8, Depth: 1},
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	// Must not panic indexing level 0 despite Levels being unset.
	if s := tex.State(0); s != types.StateUndefined {
		t.Errorf("State(0) = %v, want StateUndefined", s)
	}
}

func TestCreateSampler(t *testing.T) {
	d := newTestDevice(t)
	s, err := d.CreateSampler(&types.SamplerDesc{Min: types.FilterLinear, Mag: types.FilterLinear})
	if err != nil {
		t.Fatalf("CreateSampler: %v", err)
	}
	s.Destroy()
}

func TestCompileShaderModule(t *testing.T) {
	d := newTestDevice(t)
	m, err := d.CompileShaderModule([]byte{0x03, 0x02, 0x23, 0x07})
	if err != nil {
		t.Fatalf("CompileShaderModule: %v", err)
	}
	m.Destroy()
}

func TestCreateFence(t *testing.T) {
	d := newTestDevice(t)
	f, err := d.CreateFence(5)
	if err != nil {
		t.Fatalf("CreateFence: %v", err)
	}
	if got := f.GetCurrent(); got != 5 {
		t.Errorf("GetCurrent() = %d, want 5", got)
	}
}

func TestCreateResourceHeapLayoutAndHeap(t *testing.T) {
	d := newTestDevice(t)
	layout, err := d.CreateResourceHeapLayout(types.ResourceHeapLayoutDesc{
		Entries: []types.HeapEntry{
			{Type: types.DescUniform, Stages: types.StageVertex, Slot: 0, Count: 1},
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
	if heap == nil {
		t.Fatal("CreateResourceHeap returned nil heap")
	}
}

func TestNewContext(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	defer ctx.Destroy()
	if ctx.nullVertexBuffer == nil {
		t.Error("NewContext did not create a null vertex buffer")
	}
}
