// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// Buffer is a GPU buffer resource. Its size is fixed; a larger
// buffer requires creating a new one and copying data across.
type Buffer struct {
	device  *GraphicsDevice
	nat     native.Buffer
	desc    types.BufferDesc
	state   types.ResourceState

	// mapped records the live MapBuffer access/type, or nil when
	// unmapped. Re-mapping a mapped buffer is InvalidOperation.
	mapped  *mapGuard
}

// mapGuard is the scoped mapping guard for an in-progress
// MapBuffer/UnmapBuffer pair, replacing a boolean flag stored
// permanently on the Buffer: it records the map access and type, owns
// the staging buffer of a discard mapping, and is dropped by
// UnmapBuffer.
type mapGuard struct {
	access  types.MapAccess
	typ     types.MapType
	staging *Buffer // non-nil only for MapWrite+MapDiscard
}

// Visible reports whether the buffer is host visible.
func (b *Buffer) Visible() bool { return b.nat.Visible() }

// Cap returns the buffer's capacity in bytes.
func (b *Buffer) Cap() int64 { return b.nat.Cap() }

// State returns the buffer's last recorded ResourceState.
func (b *Buffer) State() types.ResourceState { return b.state }

// Destroy releases the native buffer.
func (b *Buffer) Destroy() { b.nat.Destroy() }

// Texture is a GPU image resource.
type Texture struct {
	device *GraphicsDevice
	nat    native.Texture
	desc   types.TextureDesc
	// states records the ResourceState of each mip level, since
	// GenerateMips leaves mips in different states mid-chain.
	states []types.ResourceState
}

// NewView creates a typed view of the texture. All views created from
// a texture must be destroyed before the texture itself is.
func (t *Texture) NewView(desc types.TextureViewDesc) (*TextureView, error) {
	nat, err := t.nat.NewView(desc)
	if err != nil {
		return nil, newErr(External, "Texture.NewView", err)
	}
	levels := desc.LevelCount
	if levels == 0 {
		levels = t.desc.Levels - desc.BaseLevel
	}
	return &TextureView{
		nat:       nat,
		texture:   t,
		format:    t.desc.Format,
		width:     maxInt(1, t.desc.Size.Width>>desc.BaseLevel),
		height:    maxInt(1, t.desc.Size.Height>>desc.BaseLevel),
		samples:   t.desc.Samples,
		baseLevel: desc.BaseLevel,
		levels:    levels,
	}, nil
}

// State returns the ResourceState recorded for the given mip level.
func (t *Texture) State(level int) types.ResourceState { return t.states[level] }

func (t *Texture) setState(level int, s types.ResourceState) { t.states[level] = s }

// Destroy releases the native texture.
func (t *Texture) Destroy() { t.nat.Destroy() }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// TextureView is a typed view of a Texture.
type TextureView struct {
	nat       native.TextureView
	texture   *Texture
	format    types.PixelFmt
	width, height, samples int
	baseLevel, levels      int
}

// Destroy releases the native view.
func (v *TextureView) Destroy() { v.nat.Destroy() }

// Sampler is an image sampler.
type Sampler struct {
	nat native.Sampler
}

// Destroy releases the native sampler.
func (s *Sampler) Destroy() { s.nat.Destroy() }

// ShaderModule is a compiled shader binary, produced by the (out of
// scope) shader compiler front end and consumed opaquely here.
type ShaderModule struct {
	nat native.ShaderModule
}

// Destroy releases the native shader module.
func (m *ShaderModule) Destroy() { m.nat.Destroy() }

// GraphicsPipeline is a configured graphics pipeline.
type GraphicsPipeline struct {
	nat  native.Pipeline
	pass types.RenderPassKey
}

// Destroy releases the native pipeline.
func (p *GraphicsPipeline) Destroy() { p.nat.Destroy() }

// ResourceHeapLayout describes the shape of a ResourceHeap: which
// slots exist and what kind of resource each holds. It owns the
// DescriptorPool every ResourceHeap created from it allocates groups
// from.
type ResourceHeapLayout struct {
	desc types.ResourceHeapLayoutDesc
	pool *DescriptorPool
}

// Destroy releases the layout's underlying descriptor pool.
func (l *ResourceHeapLayout) Destroy() { l.pool.Destroy() }
