// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package native is the driver boundary consumed by package gpu.
// It defines the raw, immediate-mode primitives a GPU backend must
// provide; none of the lazy state tracking, caching or pooling the
// core package does lives here. A Device implementation owns no
// policy beyond "create what was asked, issue what was recorded".
// The reference implementation is package native/vulkan; package
// native/fake stands in for it in tests.
package native

import "github.com/vulkangpu/gpu/types"

// Resource is the base interface every native handle implements.
type Resource interface {
	Destroy()
}

// Device creates every native object a GraphicsDevice can vend and
// exposes the handful of device-wide operations (limits, idle wait)
// that do not belong to a specific queue.
type Device interface {
	Limits() types.Limits
	QueueFamilyCount() int
	QueueFamily(index int) QueueFamily
	WaitIdle() error

	NewFence(initial uint64) (Fence, error)
	NewBinarySemaphore() (BinarySemaphore, error)
	NewCommandPool(queueFamily int) (CommandPool, error)
	NewDescriptorPool(maxSets int, counts DescriptorCounts) (DescriptorPool, error)
	NewRenderPass(key types.RenderPassKey) (RenderPass, error)
	NewFramebuffer(pass RenderPass, views []TextureView, width, height, layers int) (Framebuffer, error)
	NewShaderModule(code []byte) (ShaderModule, error)
	NewGraphicsPipeline(desc *types.GraphicsPipelineDesc, pass RenderPass) (Pipeline, error)
	NewBuffer(size int64, visible bool, binding types.BufferBinding) (Buffer, error)
	NewTexture(desc *types.TextureDesc) (Texture, error)
	NewSampler(desc *types.SamplerDesc) (Sampler, error)
	NewSwapchain(desc *types.SwapChainDesc, surface uintptr, old Swapchain) (Swapchain, error)
}

// QueueFamily groups Queues sharing an operation-capability mask.
type QueueFamily interface {
	QueueCount() int
	Queue(index int) Queue
}

// SemWait is one pending GPU-side wait: a timeline value on a Fence,
// or a binary semaphore consumed exactly once.
type SemWait struct {
	Fence       Fence  // nil for a binary wait
	Value       uint64 // meaningful only when Fence != nil
	Binary      BinarySemaphore
	StageMask   uint32
}

// SemSignal is one pending GPU-side signal.
type SemSignal struct {
	Fence  Fence // nil for a binary signal
	Value  uint64
	Binary BinarySemaphore
}

// Queue accumulates pending waits/signals across calls until Submit,
// mirroring how DeviceQueue stages its own waits/signals.
type Queue interface {
	AppendWait(w SemWait)
	AppendSignal(s SemSignal)
	Submit(cb CmdBuffer) error
	Present(sc Swapchain, imageIndex int, wait BinarySemaphore) error
	WaitIdle() error
}

// Fence is a native monotonic 64-bit GPU/CPU synchronization
// primitive (a Vulkan timeline semaphore on the real backend).
type Fence interface {
	Resource
	Current() (uint64, error)
	Signal(value uint64) error
	Wait(value uint64) error
}

// BinarySemaphore is a native single-use GPU/GPU handshake primitive,
// used for swap chain image-available/render-finished signaling.
type BinarySemaphore interface {
	Resource
}

// CommandPool allocates CmdBuffers bound to one queue family.
type CommandPool interface {
	Resource
	Allocate() (CmdBuffer, error)
}

// CmdBuffer is the raw recording primitive: a 1:1 mapping onto a
// native command buffer with no bookkeeping beyond what the driver
// itself requires (begin/end state).
type CmdBuffer interface {
	Resource
	Begin() error
	End() error
	Reset() error

	BeginRenderPass(pass RenderPass, fb Framebuffer, clear []types.ClearValue)
	EndRenderPass()
	BindPipeline(p Pipeline)
	SetViewport(v []types.Viewport)
	SetScissor(s []types.Scissor)
	BindVertexBuffers(start int, buf []Buffer, offsets []int64)
	BindIndexBuffer(buf Buffer, offset int64, format types.IndexFmt)
	BindDescriptorSet(setIndex int, set DescriptorSet)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance int)
	DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance int)

	PipelineBarrier(b []Barrier)
	ClearColorAttachment(slot int, c [4]float32)
	ClearDepthStencilAttachment(depth float32, stencil uint32)
	ClearColorImage(t Texture, c [4]float32)
	CopyBuffer(src Buffer, srcOff int64, dst Buffer, dstOff int64, size int64)
	CopyBufferToTexture(src Buffer, srcOff int64, dst Texture, layer, level int, off types.Off3D, size types.Dim3D)
	BlitImage(src Texture, srcLevel int, dst Texture, dstLevel int, srcSize, dstSize types.Dim3D)
}

// Barrier is a native pipeline barrier request, already translated
// from a ResourceState pair into stage/access masks by the core.
type Barrier struct {
	Buffer        Buffer  // nil for an image barrier
	Texture       Texture // nil for a buffer barrier
	BaseLevel     int
	LevelCount    int
	SrcStage      uint32
	DstStage      uint32
	SrcAccess     uint32
	DstAccess     uint32
	OldLayout     uint32
	NewLayout     uint32
}

// DescriptorCounts sizes a descriptor pool by descriptor type.
type DescriptorCounts struct {
	Buffers  int
	Textures int
	Samplers int
}

// DescriptorPool is a single native descriptor pool; geometric growth
// across pools is core-level policy (see gpu.DescriptorPool).
type DescriptorPool interface {
	Resource
	Allocate(layout types.ResourceHeapLayoutDesc) (DescriptorSet, error)
}

// DescriptorSet is one native descriptor set.
type DescriptorSet interface {
	Resource
	WriteBuffers(slot int, bufs []Buffer, offsets, sizes []int64, arrayStart int)
	WriteImages(slot int, views []TextureView, samplers []Sampler, arrayStart int)
}

// RenderPass is a native render pass object, keyed only by attachment
// format/sample-count identity; it carries no view references.
type RenderPass interface {
	Resource
}

// Framebuffer is a native framebuffer: a concrete attachment set
// bound to a RenderPass.
type Framebuffer interface {
	Resource
}

// Buffer is a native GPU buffer.
type Buffer interface {
	Resource
	Visible() bool
	Bytes() []byte
	Cap() int64
	Flush(offset, size int64)
	Invalidate(offset, size int64)
}

// Texture is a native GPU image.
type Texture interface {
	Resource
	NewView(desc types.TextureViewDesc) (TextureView, error)
}

// TextureView is a native typed view of a Texture.
type TextureView interface {
	Resource
}

// Sampler is a native image sampler.
type Sampler interface {
	Resource
}

// ShaderModule is a native compiled shader binary.
type ShaderModule interface {
	Resource
}

// Pipeline is a native graphics pipeline.
type Pipeline interface {
	Resource
}

// Swapchain is a native presentation chain.
type Swapchain interface {
	Resource
	ImageCount() int
	ImageView(index int) TextureView
	DepthView(index int) TextureView
	// AcquireNext blocks until an image is available, signaling
	// `available` when it is, and returns its index.
	AcquireNext(available BinarySemaphore) (index int, suboptimal bool, err error)
}
