// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

// BufferDesc describes a Buffer to be created by a GraphicsDevice.
type BufferDesc struct {
	Label   string
	Size    int64
	Binding BufferBinding
	Usage   Usage
	// QueueFamilyMask lists the queue families allowed to access the
	// buffer. More than one bit set puts the buffer in concurrent
	// sharing mode; a single bit keeps it exclusive to that family.
	QueueFamilyMask uint32
}

// TextureDesc describes a Texture to be created by a GraphicsDevice.
type TextureDesc struct {
	Label           string
	Format          PixelFmt
	Size            Dim3D
	Layers          int
	Levels          int
	Samples         int
	Binding         TextureBinding
	QueueFamilyMask uint32
}

// ViewType is the type of a resource view.
type ViewType int

// View types.
const (
	View1D ViewType = iota
	View2D
	View3D
	ViewCube
	View1DArray
	View2DArray
	ViewCubeArray
)

// TextureViewDesc describes an ImageView to be created from a Texture.
type TextureViewDesc struct {
	Type         ViewType
	BaseLayer    int
	LayerCount   int
	BaseLevel    int
	LevelCount   int
}

// Filter is the type of sampler filters.
type Filter int

// Filters.
const (
	FilterNearest Filter = iota
	FilterLinear
)

// AddrMode is the type of sampler address modes.
type AddrMode int

// Address modes.
const (
	AddrWrap AddrMode = iota
	AddrMirror
	AddrClamp
)

// SamplerDesc describes a Sampler.
type SamplerDesc struct {
	Min, Mag, Mipmap    Filter
	AddrU, AddrV, AddrW AddrMode
	MaxAniso            int
	MinLOD, MaxLOD      float32
}

// Attachment describes one render target slot of a render pass.
type Attachment struct {
	Format  PixelFmt
	Samples int
	Load    LoadOp
	Store   StoreOp
	// Resolve names the attachment index (within the same pass) that
	// this multisample attachment resolves into, or -1 for none.
	Resolve int
}

// RenderPassDesc describes a RenderPass: the schema of attachments a
// framebuffer must match. Only a single implicit subpass is supported.
type RenderPassDesc struct {
	Colors []Attachment
	// HasDepth reports whether Depth is meaningful.
	HasDepth bool
	Depth    Attachment
}

// HeapEntry describes one binding slot of a ResourceHeapLayout.
type HeapEntry struct {
	Type   DescType
	Stages Stage
	Slot   int
	// Count is the number of array elements at this slot.
	Count int
}

// ResourceHeapLayoutDesc describes the shape of a ResourceHeap: which
// slots exist, what they hold and which shader stages see them.
type ResourceHeapLayoutDesc struct {
	SetIndex int
	Entries  []HeapEntry
}

// VertexFmt describes the format of a single vertex attribute.
type VertexFmt int

// Vertex attribute formats.
const (
	Float32 VertexFmt = iota
	Float32x2
	Float32x3
	Float32x4
	UInt32
	UInt32x2
)

// VertexIn describes one vertex input buffer binding.
type VertexIn struct {
	Format VertexFmt
	Stride int
	Slot   int
}

// CullMode selects which triangle winding to discard.
type CullMode int

// Cull modes.
const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

// FillMode selects the rasterizer's triangle fill mode.
type FillMode int

// Fill modes.
const (
	FillSolid FillMode = iota
	FillWireframe
)

// RasterState defines the rasterization state of a graphics pipeline.
type RasterState struct {
	Clockwise bool
	Cull      CullMode
	Fill      FillMode
}

// CmpFunc is a comparison function used by depth/stencil tests.
type CmpFunc int

// Comparison functions.
const (
	CmpNever CmpFunc = iota
	CmpLess
	CmpEqual
	CmpLessEqual
	CmpGreater
	CmpNotEqual
	CmpGreaterEqual
	CmpAlways
)

// DSState defines the depth/stencil state of a graphics pipeline.
type DSState struct {
	DepthTest   bool
	DepthWrite  bool
	DepthCmp    CmpFunc
	StencilTest bool
}

// BlendOp is a blend operation.
type BlendOp int

// Blend operations.
const (
	BlendAdd BlendOp = iota
	BlendSubtract
	BlendMin
	BlendMax
)

// BlendFac is a blend factor.
type BlendFac int

// Blend factors.
const (
	BlendZero BlendFac = iota
	BlendOne
	BlendSrcAlpha
	BlendInvSrcAlpha
)

// ColorBlend defines one render target's blend parameters.
type ColorBlend struct {
	Enabled bool
	Op      BlendOp
	SrcFac  BlendFac
	DstFac  BlendFac
}

// GraphicsPipelineDesc describes a graphics pipeline: the combination
// of programmable and fixed-function stages bound to a RenderPass.
type GraphicsPipelineDesc struct {
	Label        string
	VertexCode   []byte
	FragmentCode []byte
	Input        []VertexIn
	Topology     Topology
	Raster       RasterState
	Samples      int
	DS           DSState
	Blend        []ColorBlend
	// Pass and Subpass name the render pass this pipeline is valid for;
	// using it with any other pass is undefined.
	Pass    RenderPassKey
	Subpass int
}

// RenderPassKey identifies a render pass by its attachment schema; it
// is exported so pipelines can be created against a schema before the
// concrete RenderPass object has been cached.
type RenderPassKey struct {
	Samples int
	Depth   PixelFmt
	HasDepth bool
	Colors   []PixelFmt
}

// SwapChainDesc describes a SwapChain.
type SwapChainDesc struct {
	Width, Height    int
	Format           PixelFmt
	HasDepth         bool
	DepthFormat      PixelFmt
	BackBufferCount  int
	MaxFramesInFlight int
}
