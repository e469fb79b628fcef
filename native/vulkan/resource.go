// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"unsafe"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/native/vulkan/vk"
	"github.com/vulkangpu/gpu/types"
)

// Fence wraps a VK_SEMAPHORE_TYPE_TIMELINE semaphore, matching the
// engine's TimelineFence abstraction directly.
type Fence struct {
	device *Device
	handle uint64
}

func (d *Device) NewFence(initial uint64) (native.Fence, error) {
	typeInfo := vk.SemaphoreTypeCreateInfo{
		SType:         vk.StructureTypeSemaphoreTypeCreateInfo,
		SemaphoreType: 1, // VK_SEMAPHORE_TYPE_TIMELINE
		InitialValue:  initial,
	}
	info := vk.SemaphoreCreateInfo{
		SType: vk.StructureTypeSemaphoreCreateInfo,
		PNext: unsafe.Pointer(&typeInfo),
	}
	h, err := vk.CreateSemaphore(d.handle, &info)
	if err != nil {
		return nil, err
	}
	native.Logger().Debug("vulkan: timeline semaphore fence created")
	return &Fence{device: d, handle: h}, nil
}

func (f *Fence) Current() (uint64, error) {
	return vk.GetSemaphoreCounterValue(f.device.handle, f.handle)
}

func (f *Fence) Signal(value uint64) error {
	return vk.SignalSemaphore(f.device.handle, f.handle, value)
}

func (f *Fence) Wait(value uint64) error {
	const noTimeout = ^uint64(0)
	return vk.WaitSemaphoreValue(f.device.handle, f.handle, value, noTimeout)
}

func (f *Fence) Destroy() { vk.DestroySemaphore(f.device.handle, f.handle) }

// BinarySemaphore wraps a plain (non-timeline) VkSemaphore.
type BinarySemaphore struct {
	device *Device
	handle uint64
}

func (d *Device) NewBinarySemaphore() (native.BinarySemaphore, error) {
	info := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}
	h, err := vk.CreateSemaphore(d.handle, &info)
	if err != nil {
		return nil, err
	}
	return &BinarySemaphore{device: d, handle: h}, nil
}

func (s *BinarySemaphore) Destroy() { vk.DestroySemaphore(s.device.handle, s.handle) }

// Buffer wraps a VkBuffer plus its bound VkDeviceMemory, persistently
// mapped when created host-visible.
type Buffer struct {
	device  *Device
	handle  uint64
	memory  uint64
	size    int64
	visible bool
	mapped  []byte
}

func (d *Device) NewBuffer(size int64, visible bool, binding types.BufferBinding) (native.Buffer, error) {
	usage := bufferUsageFlags(binding) | 0x0001 | 0x0002 // TRANSFER_SRC|TRANSFER_DST, always allowed
	info := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        uint64(size),
		Usage:       usage,
		SharingMode: sharingExclusive,
	}
	handle, err := vk.CreateBuffer(d.handle, &info)
	if err != nil {
		return nil, err
	}

	req := vk.GetBufferMemoryRequirements(d.handle, handle)
	memType, err := d.findMemoryType(req.MemoryTypeBits, visible)
	if err != nil {
		vk.DestroyBuffer(d.handle, handle)
		return nil, err
	}
	allocInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  req.Size,
		MemoryTypeIndex: memType,
	}
	mem, err := vk.AllocateMemory(d.handle, &allocInfo)
	if err != nil {
		vk.DestroyBuffer(d.handle, handle)
		return nil, err
	}
	if err := vk.BindBufferMemory(d.handle, handle, mem, 0); err != nil {
		vk.FreeMemory(d.handle, mem)
		vk.DestroyBuffer(d.handle, handle)
		return nil, err
	}

	b := &Buffer{device: d, handle: handle, memory: mem, size: size, visible: visible}
	if visible {
		mapped, err := vk.MapMemory(d.handle, mem, uint64(size))
		if err != nil {
			return nil, err
		}
		b.mapped = mapped
	}
	return b, nil
}

func bufferUsageFlags(binding types.BufferBinding) uint32 {
	var flags uint32
	if binding&types.BufferVertex != 0 {
		flags |= 0x0080
	}
	if binding&types.BufferIndex != 0 {
		flags |= 0x0040
	}
	if binding&types.BufferUniform != 0 {
		flags |= 0x0010
	}
	return flags
}

func (b *Buffer) Visible() bool { return b.visible }
func (b *Buffer) Cap() int64    { return b.size }

func (b *Buffer) Bytes() []byte {
	return b.mapped
}

// Flush makes host writes in [offset, offset+size) visible to the
// device. The allocator always requests HOST_COHERENT memory (see
// findMemoryType), so this is not strictly required, but every
// caller of native.Buffer.Flush still issues it uniformly.
func (b *Buffer) Flush(offset, size int64) {
	rng := vk.MappedMemoryRange{
		SType:  vk.StructureTypeMappedMemoryRange,
		Memory: b.memory,
		Offset: uint64(offset),
		Size:   uint64(size),
	}
	vk.FlushMappedMemoryRanges(b.device.handle, &rng)
}

// Invalidate makes device writes in [offset, offset+size) visible to
// the host, required before a MapRead observes data written by a
// prior GPU submission.
func (b *Buffer) Invalidate(offset, size int64) {
	rng := vk.MappedMemoryRange{
		SType:  vk.StructureTypeMappedMemoryRange,
		Memory: b.memory,
		Offset: uint64(offset),
		Size:   uint64(size),
	}
	vk.InvalidateMappedMemoryRanges(b.device.handle, &rng)
}

func (b *Buffer) Destroy() {
	if b.mapped != nil {
		vk.UnmapMemory(b.device.handle, b.memory)
	}
	vk.DestroyBuffer(b.device.handle, b.handle)
	vk.FreeMemory(b.device.handle, b.memory)
}

// Texture wraps a VkImage plus its bound memory.
type Texture struct {
	device *Device
	handle uint64
	memory uint64
	desc   types.TextureDesc
}

func (d *Device) NewTexture(desc *types.TextureDesc) (native.Texture, error) {
	levels := desc.Levels
	if levels < 1 {
		levels = 1
	}
	info := vk.ImageCreateInfo{
		SType:       vk.StructureTypeImageCreateInfo,
		ImageType:   1, // VK_IMAGE_TYPE_2D
		Format:      pixelFormatToVk(desc.Format),
		Extent:      [3]uint32{uint32(desc.Size.Width), uint32(desc.Size.Height), 1},
		MipLevels:   uint32(levels),
		ArrayLayers: 1,
		Samples:     samplesToVk(desc.Samples),
		Tiling:      0, // VK_IMAGE_TILING_OPTIMAL
		Usage:       textureUsageFlags(desc.Binding),
		SharingMode: sharingExclusive,
	}
	handle, err := vk.CreateImage(d.handle, &info)
	if err != nil {
		return nil, err
	}
	req := vk.GetImageMemoryRequirements(d.handle, handle)
	memType, err := d.findMemoryType(req.MemoryTypeBits, false)
	if err != nil {
		vk.DestroyImage(d.handle, handle)
		return nil, err
	}
	allocInfo := vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  req.Size,
		MemoryTypeIndex: memType,
	}
	mem, err := vk.AllocateMemory(d.handle, &allocInfo)
	if err != nil {
		vk.DestroyImage(d.handle, handle)
		return nil, err
	}
	if err := vk.BindImageMemory(d.handle, handle, mem, 0); err != nil {
		vk.FreeMemory(d.handle, mem)
		vk.DestroyImage(d.handle, handle)
		return nil, err
	}
	return &Texture{device: d, handle: handle, memory: mem, desc: *desc}, nil
}

func textureUsageFlags(binding types.TextureBinding) uint32 {
	var flags uint32 = 0x0001 | 0x0002 // TRANSFER_SRC | TRANSFER_DST
	if binding&types.TextureSampled != 0 {
		flags |= 0x0004
	}
	if binding&types.TextureRenderTarget != 0 {
		flags |= 0x0010
	}
	if binding&types.TextureDepthStencilAttachment != 0 {
		flags |= 0x0020
	}
	return flags
}

func (t *Texture) NewView(desc types.TextureViewDesc) (native.TextureView, error) {
	info := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    t.handle,
		ViewType: 1, // VK_IMAGE_VIEW_TYPE_2D
		Format:   pixelFormatToVk(t.desc.Format),
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     aspectMaskFor(t.desc.Binding),
			BaseMipLevel:   uint32(desc.BaseLevel),
			LevelCount:     uint32(maxInt(1, desc.LevelCount)),
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	}
	handle, err := vk.CreateImageView(t.device.handle, &info)
	if err != nil {
		return nil, err
	}
	return &TextureView{device: t.device, texture: t, handle: handle, desc: desc}, nil
}

func (t *Texture) Destroy() {
	vk.DestroyImage(t.device.handle, t.handle)
	vk.FreeMemory(t.device.handle, t.memory)
}

func aspectMaskFor(binding types.TextureBinding) uint32 {
	if binding&types.TextureDepthStencilAttachment != 0 {
		return 0x0002 // DEPTH, stencil omitted for depth-only formats this engine uses
	}
	return 0x0001 // COLOR
}

// TextureView wraps a VkImageView.
type TextureView struct {
	device  *Device
	texture *Texture
	handle  uint64
	desc    types.TextureViewDesc
}

func (v *TextureView) Destroy() { vk.DestroyImageView(v.device.handle, v.handle) }

// Sampler wraps a VkSampler.
type Sampler struct {
	device *Device
	handle uint64
}

func (d *Device) NewSampler(desc *types.SamplerDesc) (native.Sampler, error) {
	info := vk.SamplerCreateInfo{
		SType:        vk.StructureTypeSamplerCreateInfo,
		MagFilter:    filterToVk(desc.Mag),
		MinFilter:    filterToVk(desc.Min),
		MipmapMode:   mipmapModeToVk(desc.Mipmap),
		AddressModeU: addrModeToVk(desc.AddrU),
		AddressModeV: addrModeToVk(desc.AddrV),
		AddressModeW: addrModeToVk(desc.AddrW),
		MinLod:       desc.MinLOD,
		MaxLod:       desc.MaxLOD,
	}
	h, err := vk.CreateSampler(d.handle, &info)
	if err != nil {
		return nil, err
	}
	return &Sampler{device: d, handle: h}, nil
}

func (s *Sampler) Destroy() { vk.DestroySampler(s.device.handle, s.handle) }

// ShaderModule wraps a VkShaderModule compiled from SPIR-V bytecode.
type ShaderModule struct {
	device *Device
	handle uint64
}

func (d *Device) NewShaderModule(code []byte) (native.ShaderModule, error) {
	info := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint64(len(code)),
		PCode:    unsafe.Pointer(&code[0]),
	}
	h, err := vk.CreateShaderModule(d.handle, &info)
	if err != nil {
		return nil, err
	}
	return &ShaderModule{device: d, handle: h}, nil
}

func (m *ShaderModule) Destroy() { vk.DestroyShaderModule(m.device.handle, m.handle) }

// Pipeline wraps a VkPipeline plus the VkPipelineLayout it was built
// with, needed by CmdBuffer.BindDescriptorSet once this pipeline is
// bound.
type Pipeline struct {
	device *Device
	handle uint64
	layout uint64
}

func (p *Pipeline) Destroy() {
	vk.DestroyPipeline(p.device.handle, p.handle)
	vk.DestroyPipelineLayout(p.device.handle, p.layout)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
