// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"unsafe"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/native/vulkan/vk"
	"github.com/vulkangpu/gpu/types"
)

// DescriptorPool wraps a VkDescriptorPool. This engine has no concept
// of a VkDescriptorSetLayout object separate from a
// types.ResourceHeapLayoutDesc: Allocate derives the layout it needs
// directly from desc on every call instead of caching one, since the
// core only ever allocates against a single fixed layout per pool (see
// gpu.DescriptorPool).
type DescriptorPool struct {
	device *Device
	handle uint64
}

func (d *Device) NewDescriptorPool(maxSets int, counts native.DescriptorCounts) (native.DescriptorPool, error) {
	var sizes []vk.DescriptorPoolSize
	if counts.Buffers > 0 {
		sizes = append(sizes, vk.DescriptorPoolSize{Type: descUniformBuffer, DescriptorCount: uint32(counts.Buffers)})
	}
	if counts.Textures > 0 {
		sizes = append(sizes, vk.DescriptorPoolSize{Type: descCombinedImageSampler, DescriptorCount: uint32(counts.Textures)})
	}
	if counts.Samplers > 0 {
		sizes = append(sizes, vk.DescriptorPoolSize{Type: descSampler, DescriptorCount: uint32(counts.Samplers)})
	}
	info := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		MaxSets:       uint32(maxSets),
		PoolSizeCount: uint32(len(sizes)),
	}
	if len(sizes) > 0 {
		info.PPoolSizes = unsafe.Pointer(&sizes[0])
	}
	handle, err := vk.CreateDescriptorPool(d.handle, &info)
	if err != nil {
		return nil, err
	}
	return &DescriptorPool{device: d, handle: handle}, nil
}

func (p *DescriptorPool) Destroy() { vk.DestroyDescriptorPool(p.device.handle, p.handle) }

// Allocate allocates a single descriptor set. This backend has no
// cached VkDescriptorSetLayout, so it builds a throwaway one from
// layout for the allocation call only; the driver copies what it
// needs at allocation time and the set itself is layout-free from
// then on.
func (p *DescriptorPool) Allocate(layout types.ResourceHeapLayoutDesc) (native.DescriptorSet, error) {
	setLayout, err := newDescriptorSetLayout(p.device, layout)
	if err != nil {
		return nil, err
	}
	defer vk.DestroyDescriptorSetLayout(p.device.handle, setLayout)

	info := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     p.handle,
		DescriptorSetCount: 1,
		PSetLayouts:        unsafe.Pointer(&setLayout),
	}
	handle, err := vk.AllocateDescriptorSet(p.device.handle, &info)
	if err != nil {
		return nil, err
	}
	return &DescriptorSet{device: p.device, handle: handle}, nil
}

func newDescriptorSetLayout(d *Device, layout types.ResourceHeapLayoutDesc) (uint64, error) {
	bindings := make([]vk.DescriptorSetLayoutBinding, len(layout.Entries))
	for i, e := range layout.Entries {
		bindings[i] = vk.DescriptorSetLayoutBinding{
			Binding:         uint32(e.Slot),
			DescriptorType:  descTypeToVk(e.Type),
			DescriptorCount: uint32(maxInt(1, e.Count)),
			StageFlags:      stageToVk(e.Stages),
		}
	}
	info := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(bindings)),
	}
	if len(bindings) > 0 {
		info.PBindings = unsafe.Pointer(&bindings[0])
	}
	return vk.CreateDescriptorSetLayout(d.handle, &info)
}

// VkDescriptorType values this backend vends.
const (
	descSampler              = 0 // VK_DESCRIPTOR_TYPE_SAMPLER
	descCombinedImageSampler = 1 // VK_DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER
	descSampledImage         = 2 // VK_DESCRIPTOR_TYPE_SAMPLED_IMAGE
	descUniformBuffer        = 6 // VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER
)

func descTypeToVk(t types.DescType) uint32 {
	switch t {
	case types.DescTexture:
		// The heap binds sampler+view pairs into one slot.
		return descCombinedImageSampler
	case types.DescSampler:
		return descSampler
	default:
		// DescUniform and DescBuffer are both uniform-buffer slots.
		return descUniformBuffer
	}
}

// DescriptorSet wraps a VkDescriptorSet.
type DescriptorSet struct {
	device *Device
	handle uint64
}

// Destroy is a no-op: descriptor sets are freed when their pool is
// reset or destroyed, never individually (the core never frees one
// on its own; see gpu.DescriptorPool.grow).
func (s *DescriptorSet) Destroy() {}

func (s *DescriptorSet) WriteBuffers(slot int, bufs []native.Buffer, offsets, sizes []int64, arrayStart int) {
	if len(bufs) == 0 {
		return
	}
	infos := make([]vk.DescriptorBufferInfo, len(bufs))
	for i, b := range bufs {
		infos[i] = vk.DescriptorBufferInfo{
			Buffer: b.(*Buffer).handle,
			Offset: uint64(offsets[i]),
			Range:  uint64(sizes[i]),
		}
	}
	write := vk.WriteDescriptorSet{
		SType:           vk.StructureTypeWriteDescriptorSet,
		DstSet:          s.handle,
		DstBinding:      uint32(slot),
		DstArrayElement: uint32(arrayStart),
		DescriptorCount: uint32(len(infos)),
		DescriptorType:  descUniformBuffer,
		PBufferInfo:     unsafe.Pointer(&infos[0]),
	}
	vk.UpdateDescriptorSets(s.device.handle, []vk.WriteDescriptorSet{write})
}

func (s *DescriptorSet) WriteImages(slot int, views []native.TextureView, samplers []native.Sampler, arrayStart int) {
	if len(views) == 0 {
		return
	}
	infos := make([]vk.DescriptorImageInfo, len(views))
	descType := uint32(descCombinedImageSampler)
	for i := range views {
		info := vk.DescriptorImageInfo{ImageLayout: 5} // VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL
		if views[i] != nil {
			info.ImageView = views[i].(*TextureView).handle
		} else {
			descType = descSampler
		}
		if samplers[i] != nil {
			info.Sampler = samplers[i].(*Sampler).handle
		} else {
			descType = descSampledImage
		}
		infos[i] = info
	}
	write := vk.WriteDescriptorSet{
		SType:           vk.StructureTypeWriteDescriptorSet,
		DstSet:          s.handle,
		DstBinding:      uint32(slot),
		DstArrayElement: uint32(arrayStart),
		DescriptorCount: uint32(len(infos)),
		DescriptorType:  descType,
		PImageInfo:      unsafe.Pointer(&infos[0]),
	}
	vk.UpdateDescriptorSets(s.device.handle, []vk.WriteDescriptorSet{write})
}
