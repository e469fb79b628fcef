// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// GraphicsDevice is the factory for every device-child resource:
// queues, buffers, textures, pipelines, descriptor layouts, fences,
// swap chains, and the DeviceContexts that record against them.
type GraphicsDevice struct {
	nat          native.Device
	limits       types.Limits
	families     []*DeviceQueueFamily
	renderPasses *RenderPassCache
	framebuffers *FramebufferCache

	uploadFamily *DeviceQueueFamily
}

// NewGraphicsDevice wraps a native.Device, enumerating its queue
// families and building the render-pass/framebuffer caches shared by
// every context on this device.
func NewGraphicsDevice(nat native.Device) (*GraphicsDevice, error) {
	d := &GraphicsDevice{nat: nat, limits: nat.Limits()}
	d.renderPasses = newRenderPassCache(d)
	d.framebuffers = newFramebufferCache(d, d.renderPasses)

	n := nat.QueueFamilyCount()
	d.families = make([]*DeviceQueueFamily, n)
	for i := 0; i < n; i++ {
		natFamily := nat.QueueFamily(i)
		queues := make([]*DeviceQueue, natFamily.QueueCount())
		for q := range queues {
			queues[q] = newDeviceQueue(natFamily.Queue(q))
		}
		d.families[i] = &DeviceQueueFamily{index: i, queues: queues}
	}
	if n > 0 {
		d.uploadFamily = d.families[0]
	}
	return d, nil
}

// Limits returns the adapter's reported resource limits.
func (d *GraphicsDevice) Limits() types.Limits { return d.limits }

// QueueFamily returns the queue family at index.
func (d *GraphicsDevice) QueueFamily(index int) *DeviceQueueFamily { return d.families[index] }

// QueueFamilyCount returns the number of queue families.
func (d *GraphicsDevice) QueueFamilyCount() int { return len(d.families) }

// WaitIdle blocks until every queue on the device has drained.
func (d *GraphicsDevice) WaitIdle() error {
	if err := d.nat.WaitIdle(); err != nil {
		return newErr(External, "GraphicsDevice.WaitIdle", err)
	}
	return nil
}

// NewContext creates a DeviceContext recording against the given
// queue family, with its own CommandPool (each command buffer it
// vends carries its own completion fence), plus
// the device-owned null vertex buffer every context substitutes for
// unset vertex-buffer slots.
func (d *GraphicsDevice) NewContext(queueFamily int) (*DeviceContext, error) {
	natPool, err := d.nat.NewCommandPool(queueFamily)
	if err != nil {
		return nil, newErr(External, "GraphicsDevice.NewContext", err)
	}
	pool := newCommandPool(natPool, d.nat)

	family := d.QueueFamily(queueFamily)
	queue := family.Queue(0)

	nullVB, err := d.CreateBuffer(&types.BufferDesc{
		Label:   "null-vertex-buffer",
		Size:    1,
		Binding: types.BufferVertex | types.BufferIndex | types.BufferUniform,
		Usage:   types.Immutable,
	}, []byte{0})
	if err != nil {
		return nil, err
	}

	return newDeviceContext(d, pool, queue, nullVB)
}

// CreateBuffer creates a buffer, optionally uploading initialData. A
// non-visible (device-local) buffer with initial data is populated
// through a one-shot staging upload on the upload queue family.
func (d *GraphicsDevice) CreateBuffer(desc *types.BufferDesc, initialData []byte) (*Buffer, error) {
	if desc.Size <= 0 {
		return nil, newErr(InvalidArgument, "GraphicsDevice.CreateBuffer", nil)
	}
	visible := desc.Usage != types.Immutable

	nat, err := d.nat.NewBuffer(desc.Size, visible, desc.Binding)
	if err != nil {
		return nil, newErr(OutOfMemory, "GraphicsDevice.CreateBuffer", err)
	}
	buf := &Buffer{device: d, nat: nat, desc: *desc, state: types.StateCommon}

	if initialData == nil {
		return buf, nil
	}

	if visible {
		copy(nat.Bytes(), initialData)
		nat.Flush(0, int64(len(initialData)))
		return buf, nil
	}

	stagingNat, err := d.nat.NewBuffer(desc.Size, true, types.BufferTransferSrc)
	if err != nil {
		return nil, newErr(OutOfMemory, "GraphicsDevice.CreateBuffer", err)
	}
	copy(stagingNat.Bytes(), initialData)
	stagingNat.Flush(0, int64(len(initialData)))

	if err := d.uploadOnce(func(cb native.CmdBuffer) {
		cb.PipelineBarrier([]native.Barrier{{
			Buffer: nat, SrcStage: stageTopOfPipe, DstStage: stageTransfer,
			SrcAccess: accessNone, DstAccess: accessTransferWrite,
		}})
		cb.CopyBuffer(stagingNat, 0, nat, 0, desc.Size)
		cb.PipelineBarrier([]native.Barrier{{
			Buffer: nat, SrcStage: stageTransfer, DstStage: stageAllCommands,
			SrcAccess: accessTransferWrite, DstAccess: accessMemoryRead | accessMemoryWrite,
		}})
	}); err != nil {
		return nil, err
	}
	stagingNat.Destroy()
	return buf, nil
}

// uploadOnce records cmds on a throwaway command buffer from the
// upload queue family, submits, and blocks until it completes. Used
// only for setup-time uploads outside any DeviceContext.
func (d *GraphicsDevice) uploadOnce(cmds func(cb native.CmdBuffer)) error {
	natPool, err := d.nat.NewCommandPool(d.uploadFamily.index)
	if err != nil {
		return newErr(External, "GraphicsDevice.uploadOnce", err)
	}
	defer natPool.Destroy()

	cb, err := natPool.Allocate()
	if err != nil {
		return newErr(External, "GraphicsDevice.uploadOnce", err)
	}
	if err := cb.Begin(); err != nil {
		return newErr(External, "GraphicsDevice.uploadOnce", err)
	}
	cmds(cb)
	if err := cb.End(); err != nil {
		return newErr(External, "GraphicsDevice.uploadOnce", err)
	}

	queue := d.uploadFamily.Queue(0)
	if err := queue.nat.Submit(cb); err != nil {
		return newErr(External, "GraphicsDevice.uploadOnce", err)
	}
	if err := queue.nat.WaitIdle(); err != nil {
		return newErr(External, "GraphicsDevice.uploadOnce", err)
	}
	return nil
}

// CreateTexture creates a texture with every mip level recorded at
// StateUndefined.
func (d *GraphicsDevice) CreateTexture(desc *types.TextureDesc) (*Texture, error) {
	nat, err := d.nat.NewTexture(desc)
	if err != nil {
		return nil, newErr(OutOfMemory, "GraphicsDevice.CreateTexture", err)
	}
	levels := desc.Levels
	if levels <= 0 {
		levels = 1
	}
	states := make([]types.ResourceState, levels)
	return &Texture{device: d, nat: nat, desc: *desc, states: states}, nil
}

// CreateTextureView creates a view of tex.
func (d *GraphicsDevice) CreateTextureView(tex *Texture, desc types.TextureViewDesc) (*TextureView, error) {
	return tex.NewView(desc)
}

// CreateSampler creates a sampler.
func (d *GraphicsDevice) CreateSampler(desc *types.SamplerDesc) (*Sampler, error) {
	nat, err := d.nat.NewSampler(desc)
	if err != nil {
		return nil, newErr(External, "GraphicsDevice.CreateSampler", err)
	}
	return &Sampler{nat: nat}, nil
}

// CreateRenderPass resolves (and caches) the RenderPass for key.
func (d *GraphicsDevice) CreateRenderPass(key types.RenderPassKey) (*RenderPass, error) {
	return d.renderPasses.Get(key)
}

// CreateFramebuffer builds a Framebuffer directly from pass and an
// explicit attachment set, bypassing the FramebufferCache.
func (d *GraphicsDevice) CreateFramebuffer(pass *RenderPass, colors []*TextureView, depth *TextureView, width, height, layers int) (*Framebuffer, error) {
	return pass.NewFB(colors, depth, width, height, layers)
}

// CreateGraphicsPipeline compiles desc against the render pass
// resolved from desc.Pass.
func (d *GraphicsDevice) CreateGraphicsPipeline(desc *types.GraphicsPipelineDesc) (*GraphicsPipeline, error) {
	pass, err := d.renderPasses.Get(desc.Pass)
	if err != nil {
		return nil, err
	}
	nat, err := d.nat.NewGraphicsPipeline(desc, pass.nat)
	if err != nil {
		return nil, newErr(External, "GraphicsDevice.CreateGraphicsPipeline", err)
	}
	return &GraphicsPipeline{nat: nat, pass: desc.Pass}, nil
}

// CreateResourceHeapLayout allocates the DescriptorPool backing every
// ResourceHeap created against this layout.
func (d *GraphicsDevice) CreateResourceHeapLayout(desc types.ResourceHeapLayoutDesc) (*ResourceHeapLayout, error) {
	var counts native.DescriptorCounts
	for _, e := range desc.Entries {
		switch e.Type {
		case types.DescBuffer, types.DescUniform:
			counts.Buffers += e.Count
		case types.DescTexture:
			counts.Textures += e.Count
		case types.DescSampler:
			counts.Samplers += e.Count
		}
	}
	return &ResourceHeapLayout{desc: desc, pool: newDescriptorPool(d.nat, desc, counts, 3)}, nil
}

// CreateResourceHeap creates a ResourceHeap backed by layout's pool.
func (d *GraphicsDevice) CreateResourceHeap(layout *ResourceHeapLayout) (*ResourceHeap, error) {
	return newResourceHeap(layout.pool, layout.desc), nil
}

// CreateFence creates a timeline fence starting at initial.
func (d *GraphicsDevice) CreateFence(initial uint64) (*TimelineFence, error) {
	nat, err := d.nat.NewFence(initial)
	if err != nil {
		return nil, newErr(External, "GraphicsDevice.CreateFence", err)
	}
	return newTimelineFence(nat), nil
}

// CompileShaderModule wraps an already-compiled bytecode blob as a
// ShaderModule. Translating GLSL/HLSL source text to bytecode is an
// external shader-compiler concern and out of scope here; callers
// pass pre-compiled SPIR-V (or the target backend's native bytecode).
func (d *GraphicsDevice) CompileShaderModule(code []byte) (*ShaderModule, error) {
	nat, err := d.nat.NewShaderModule(code)
	if err != nil {
		return nil, newErr(InvalidArgument, "GraphicsDevice.CompileShaderModule", err)
	}
	return &ShaderModule{nat: nat}, nil
}

// CreateSwapChain creates a swap chain for surface. Frame pacing is
// driven by the completion fences of the command buffers ctx flushes
// each frame; ctx must be the context the swap chain is presented
// from.
func (d *GraphicsDevice) CreateSwapChain(ctx *DeviceContext, desc *types.SwapChainDesc, surface uintptr) (*SwapChain, error) {
	if ctx == nil {
		return nil, newErr(InvalidArgument, "GraphicsDevice.CreateSwapChain", nil)
	}
	nat, err := d.nat.NewSwapchain(desc, surface, nil)
	if err != nil {
		return nil, newErr(External, "GraphicsDevice.CreateSwapChain", err)
	}
	return newSwapChain(d, nat, *desc, surface)
}
