// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Result is a VkResult (int32 in the C headers, passed as uint32
// through goffi's return-by-pointer convention).
type Result int32

const ResultSuccess Result = 0

// ResultSuboptimalKHR and ResultErrorOutOfDateKHR are the two
// presentation-path results the swapchain layer branches on.
const (
	ResultSuboptimalKHR     Result = 1000001003
	ResultErrorOutOfDateKHR Result = -1000001004
)

func (r Result) Err(op string) error {
	if r == ResultSuccess {
		return nil
	}
	return fmt.Errorf("vk: %s: VkResult(%d)", op, r)
}

func callResult(cif *types.CallInterface, fn unsafe.Pointer, op string, argPtrs ...unsafe.Pointer) (Result, error) {
	var ret uint32
	if err := ffi.CallFunction(cif, fn, unsafe.Pointer(&ret), argPtrs); err != nil {
		return 0, fmt.Errorf("vk: %s: %w", op, err)
	}
	return Result(ret), nil
}

func callVoid(cif *types.CallInterface, fn unsafe.Pointer, argPtrs ...unsafe.Pointer) {
	_ = ffi.CallFunction(cif, fn, nil, argPtrs)
}

func mustLoaded(fn unsafe.Pointer, name string) error {
	if fn == nil {
		return fmt.Errorf("vk: %s not loaded", name)
	}
	return nil
}

func p(v unsafe.Pointer) unsafe.Pointer { return unsafe.Pointer(&v) }

// createHandle is the vkCreate*(owner, pInfo, pAllocator, pHandle)
// pattern shared by most creation entry points.
func createHandle(fn unsafe.Pointer, op string, owner uint64, info unsafe.Pointer) (uint64, error) {
	if err := mustLoaded(fn, op); err != nil {
		return 0, err
	}
	var handle uint64
	res, err := callResult(&sigResultHPPP, fn, op,
		unsafe.Pointer(&owner), p(info), p(nil), p(unsafe.Pointer(&handle)))
	if err != nil {
		return 0, err
	}
	return handle, res.Err(op)
}

// destroyHandle is the vkDestroy*(owner, handle, pAllocator) pattern.
func destroyHandle(fn unsafe.Pointer, owner, handle uint64) {
	callVoid(&sigVoidHHP, fn, unsafe.Pointer(&owner), unsafe.Pointer(&handle), p(nil))
}

// CreateInstance wraps vkCreateInstance.
func CreateInstance(info *InstanceCreateInfo) (uint64, error) {
	if err := mustLoaded(pvkCreateInstance, "vkCreateInstance"); err != nil {
		return 0, err
	}
	var instance uint64
	res, err := callResult(&sigResultPPP, pvkCreateInstance, "vkCreateInstance",
		p(unsafe.Pointer(info)), p(nil), p(unsafe.Pointer(&instance)))
	if err != nil {
		return 0, err
	}
	return instance, res.Err("vkCreateInstance")
}

// DestroyInstance wraps vkDestroyInstance.
func DestroyInstance(instance uint64) {
	callVoid(&sigVoidHP, pvkDestroyInstance, unsafe.Pointer(&instance), p(nil))
}

// EnumeratePhysicalDevices wraps vkEnumeratePhysicalDevices, returning
// every physical device handle reported.
func EnumeratePhysicalDevices(instance uint64) ([]uint64, error) {
	var count uint32
	if _, err := callResult(&sigResultHPP, pvkEnumeratePhysicalDevices, "vkEnumeratePhysicalDevices(count)",
		unsafe.Pointer(&instance), p(unsafe.Pointer(&count)), p(nil)); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("vk: no physical devices reported")
	}
	devices := make([]uint64, count)
	res, err := callResult(&sigResultHPP, pvkEnumeratePhysicalDevices, "vkEnumeratePhysicalDevices",
		unsafe.Pointer(&instance), p(unsafe.Pointer(&count)), p(unsafe.Pointer(&devices[0])))
	if err != nil {
		return nil, err
	}
	return devices, res.Err("vkEnumeratePhysicalDevices")
}

// GetPhysicalDeviceQueueFamilyProperties wraps the property-array
// query pattern (call once for the count, once for the data).
func GetPhysicalDeviceQueueFamilyProperties(phys uint64) []QueueFamilyProperties {
	var count uint32
	callVoid(&sigVoidHPP, pvkGetPhysicalDeviceQueueFamilyProps,
		unsafe.Pointer(&phys), p(unsafe.Pointer(&count)), p(nil))
	if count == 0 {
		return nil
	}
	out := make([]QueueFamilyProperties, count)
	callVoid(&sigVoidHPP, pvkGetPhysicalDeviceQueueFamilyProps,
		unsafe.Pointer(&phys), p(unsafe.Pointer(&count)), p(unsafe.Pointer(&out[0])))
	return out
}

// GetPhysicalDeviceMemoryProperties wraps vkGetPhysicalDeviceMemoryProperties.
func GetPhysicalDeviceMemoryProperties(phys uint64) PhysicalDeviceMemoryProperties {
	var props PhysicalDeviceMemoryProperties
	callVoid(&sigVoidHP, pvkGetPhysicalDeviceMemoryProperties,
		unsafe.Pointer(&phys), p(unsafe.Pointer(&props)))
	return props
}

// FindMemoryType returns the index of the first memory type whose
// bit is set in typeBits and whose property flags satisfy want.
func FindMemoryType(props PhysicalDeviceMemoryProperties, typeBits uint32, want uint32) (uint32, error) {
	for i := uint32(0); i < props.MemoryTypeCount; i++ {
		if typeBits&(1<<i) == 0 {
			continue
		}
		if props.MemoryTypes[i].PropertyFlags&want == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("vk: no memory type for bits=%#x flags=%#x", typeBits, want)
}

// CreateDevice wraps vkCreateDevice.
func CreateDevice(phys uint64, info *DeviceCreateInfo) (uint64, error) {
	return createHandle(pvkCreateDevice, "vkCreateDevice", phys, unsafe.Pointer(info))
}

// DestroyDevice wraps vkDestroyDevice.
func DestroyDevice(device uint64) {
	callVoid(&sigVoidHP, pvkDestroyDevice, unsafe.Pointer(&device), p(nil))
}

// GetDeviceQueue wraps vkGetDeviceQueue.
func GetDeviceQueue(device uint64, family, index uint32) uint64 {
	var queue uint64
	callVoid(&sigVoidHUUP, pvkGetDeviceQueue,
		unsafe.Pointer(&device), unsafe.Pointer(&family), unsafe.Pointer(&index), p(unsafe.Pointer(&queue)))
	return queue
}

// DeviceWaitIdle wraps vkDeviceWaitIdle.
func DeviceWaitIdle(device uint64) error {
	res, err := callResult(&sigResultH, pvkDeviceWaitIdle, "vkDeviceWaitIdle", unsafe.Pointer(&device))
	if err != nil {
		return err
	}
	return res.Err("vkDeviceWaitIdle")
}

// QueueWaitIdle wraps vkQueueWaitIdle.
func QueueWaitIdle(queue uint64) error {
	res, err := callResult(&sigResultH, pvkQueueWaitIdle, "vkQueueWaitIdle", unsafe.Pointer(&queue))
	if err != nil {
		return err
	}
	return res.Err("vkQueueWaitIdle")
}

// QueueSubmit wraps vkQueueSubmit with a single VkSubmitInfo and no
// VkFence (completion is observed through timeline semaphores).
func QueueSubmit(queue uint64, info *SubmitInfo, fence uint64) error {
	one := uint32(1)
	res, err := callResult(&sigResultHUPH, pvkQueueSubmit, "vkQueueSubmit",
		unsafe.Pointer(&queue), unsafe.Pointer(&one), p(unsafe.Pointer(info)), unsafe.Pointer(&fence))
	if err != nil {
		return err
	}
	return res.Err("vkQueueSubmit")
}

// CreateSemaphore wraps vkCreateSemaphore.
func CreateSemaphore(device uint64, info *SemaphoreCreateInfo) (uint64, error) {
	return createHandle(pvkCreateSemaphore, "vkCreateSemaphore", device, unsafe.Pointer(info))
}

// DestroySemaphore wraps vkDestroySemaphore.
func DestroySemaphore(device, sem uint64) { destroyHandle(pvkDestroySemaphore, device, sem) }

// SignalSemaphore wraps vkSignalSemaphore for a timeline semaphore.
func SignalSemaphore(device, sem uint64, value uint64) error {
	info := SemaphoreSignalInfo{
		SType:     StructureTypeSemaphoreSignalInfo,
		Semaphore: sem,
		Value:     value,
	}
	res, err := callResult(&sigResultHP, pvkSignalSemaphore, "vkSignalSemaphore",
		unsafe.Pointer(&device), p(unsafe.Pointer(&info)))
	if err != nil {
		return err
	}
	return res.Err("vkSignalSemaphore")
}

// WaitSemaphoreValue blocks until sem's counter reaches at least value
// or timeoutNanos elapses.
func WaitSemaphoreValue(device, sem uint64, value uint64, timeoutNanos uint64) error {
	semH := sem
	val := value
	info := SemaphoreWaitInfo{
		SType:          StructureTypeSemaphoreWaitInfo,
		SemaphoreCount: 1,
		PSemaphores:    unsafe.Pointer(&semH),
		PValues:        unsafe.Pointer(&val),
	}
	res, err := callResult(&sigResultHPH, pvkWaitSemaphores, "vkWaitSemaphores",
		unsafe.Pointer(&device), p(unsafe.Pointer(&info)), unsafe.Pointer(&timeoutNanos))
	if err != nil {
		return err
	}
	return res.Err("vkWaitSemaphores")
}

// GetSemaphoreCounterValue wraps vkGetSemaphoreCounterValue.
func GetSemaphoreCounterValue(device, sem uint64) (uint64, error) {
	var value uint64
	res, err := callResult(&sigResultHHP, pvkGetSemaphoreCounterValue, "vkGetSemaphoreCounterValue",
		unsafe.Pointer(&device), unsafe.Pointer(&sem), p(unsafe.Pointer(&value)))
	if err != nil {
		return 0, err
	}
	return value, res.Err("vkGetSemaphoreCounterValue")
}

// CreateCommandPool wraps vkCreateCommandPool.
func CreateCommandPool(device uint64, info *CommandPoolCreateInfo) (uint64, error) {
	return createHandle(pvkCreateCommandPool, "vkCreateCommandPool", device, unsafe.Pointer(info))
}

// DestroyCommandPool wraps vkDestroyCommandPool.
func DestroyCommandPool(device, pool uint64) { destroyHandle(pvkDestroyCommandPool, device, pool) }

// AllocateCommandBuffer wraps vkAllocateCommandBuffers for a single
// primary command buffer.
func AllocateCommandBuffer(device uint64, info *CommandBufferAllocateInfo) (uint64, error) {
	var cb uint64
	res, err := callResult(&sigResultHPP, pvkAllocateCommandBuffers, "vkAllocateCommandBuffers",
		unsafe.Pointer(&device), p(unsafe.Pointer(info)), p(unsafe.Pointer(&cb)))
	if err != nil {
		return 0, err
	}
	return cb, res.Err("vkAllocateCommandBuffers")
}

// BeginCommandBuffer wraps vkBeginCommandBuffer.
func BeginCommandBuffer(cb uint64, info *CommandBufferBeginInfo) error {
	res, err := callResult(&sigResultHP, pvkBeginCommandBuffer, "vkBeginCommandBuffer",
		unsafe.Pointer(&cb), p(unsafe.Pointer(info)))
	if err != nil {
		return err
	}
	return res.Err("vkBeginCommandBuffer")
}

// EndCommandBuffer wraps vkEndCommandBuffer.
func EndCommandBuffer(cb uint64) error {
	res, err := callResult(&sigResultH, pvkEndCommandBuffer, "vkEndCommandBuffer", unsafe.Pointer(&cb))
	if err != nil {
		return err
	}
	return res.Err("vkEndCommandBuffer")
}

// ResetCommandBuffer wraps vkResetCommandBuffer.
func ResetCommandBuffer(cb uint64, flags uint32) error {
	res, err := callResult(&sigResultHU, pvkResetCommandBuffer, "vkResetCommandBuffer",
		unsafe.Pointer(&cb), unsafe.Pointer(&flags))
	if err != nil {
		return err
	}
	return res.Err("vkResetCommandBuffer")
}

// CreateRenderPass wraps vkCreateRenderPass.
func CreateRenderPass(device uint64, info *RenderPassCreateInfo) (uint64, error) {
	return createHandle(pvkCreateRenderPass, "vkCreateRenderPass", device, unsafe.Pointer(info))
}

// DestroyRenderPass wraps vkDestroyRenderPass.
func DestroyRenderPass(device, rp uint64) { destroyHandle(pvkDestroyRenderPass, device, rp) }

// CreateFramebuffer wraps vkCreateFramebuffer.
func CreateFramebuffer(device uint64, info *FramebufferCreateInfo) (uint64, error) {
	return createHandle(pvkCreateFramebuffer, "vkCreateFramebuffer", device, unsafe.Pointer(info))
}

// DestroyFramebuffer wraps vkDestroyFramebuffer.
func DestroyFramebuffer(device, fb uint64) { destroyHandle(pvkDestroyFramebuffer, device, fb) }

// CreateBuffer wraps vkCreateBuffer.
func CreateBuffer(device uint64, info *BufferCreateInfo) (uint64, error) {
	return createHandle(pvkCreateBuffer, "vkCreateBuffer", device, unsafe.Pointer(info))
}

// DestroyBuffer wraps vkDestroyBuffer.
func DestroyBuffer(device, buf uint64) { destroyHandle(pvkDestroyBuffer, device, buf) }

// AllocateMemory wraps vkAllocateMemory.
func AllocateMemory(device uint64, info *MemoryAllocateInfo) (uint64, error) {
	return createHandle(pvkAllocateMemory, "vkAllocateMemory", device, unsafe.Pointer(info))
}

// FreeMemory wraps vkFreeMemory.
func FreeMemory(device, mem uint64) { destroyHandle(pvkFreeMemory, device, mem) }

// GetBufferMemoryRequirements wraps vkGetBufferMemoryRequirements.
func GetBufferMemoryRequirements(device, buf uint64) MemoryRequirements {
	var req MemoryRequirements
	callVoid(&sigVoidHHP, pvkGetBufferMemoryRequirements,
		unsafe.Pointer(&device), unsafe.Pointer(&buf), p(unsafe.Pointer(&req)))
	return req
}

// GetImageMemoryRequirements wraps vkGetImageMemoryRequirements.
func GetImageMemoryRequirements(device, img uint64) MemoryRequirements {
	var req MemoryRequirements
	callVoid(&sigVoidHHP, pvkGetImageMemoryRequirements,
		unsafe.Pointer(&device), unsafe.Pointer(&img), p(unsafe.Pointer(&req)))
	return req
}

// BindBufferMemory wraps vkBindBufferMemory.
func BindBufferMemory(device, buf, mem uint64, offset uint64) error {
	res, err := callResult(&sigResultHHHH, pvkBindBufferMemory, "vkBindBufferMemory",
		unsafe.Pointer(&device), unsafe.Pointer(&buf), unsafe.Pointer(&mem), unsafe.Pointer(&offset))
	if err != nil {
		return err
	}
	return res.Err("vkBindBufferMemory")
}

// MapMemory wraps vkMapMemory over the whole allocation.
func MapMemory(device, mem uint64, size uint64) ([]byte, error) {
	var data unsafe.Pointer
	flags := uint32(0)
	offset := uint64(0)
	res, err := callResult(&sigResultHHHHUP, pvkMapMemory, "vkMapMemory",
		unsafe.Pointer(&device), unsafe.Pointer(&mem), unsafe.Pointer(&offset), unsafe.Pointer(&size),
		unsafe.Pointer(&flags), p(unsafe.Pointer(&data)))
	if err != nil {
		return nil, err
	}
	if err := res.Err("vkMapMemory"); err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(data), size), nil
}

// UnmapMemory wraps vkUnmapMemory.
func UnmapMemory(device, mem uint64) {
	callVoid(&sigVoidHH, pvkUnmapMemory, unsafe.Pointer(&device), unsafe.Pointer(&mem))
}

// FlushMappedMemoryRanges wraps vkFlushMappedMemoryRanges for a single
// range, making host writes visible to the device.
func FlushMappedMemoryRanges(device uint64, rng *MappedMemoryRange) error {
	count := uint32(1)
	res, err := callResult(&sigResultHUP, pvkFlushMappedMemoryRanges, "vkFlushMappedMemoryRanges",
		unsafe.Pointer(&device), unsafe.Pointer(&count), p(unsafe.Pointer(rng)))
	if err != nil {
		return err
	}
	return res.Err("vkFlushMappedMemoryRanges")
}

// InvalidateMappedMemoryRanges wraps vkInvalidateMappedMemoryRanges for
// a single range, making device writes visible to the host.
func InvalidateMappedMemoryRanges(device uint64, rng *MappedMemoryRange) error {
	count := uint32(1)
	res, err := callResult(&sigResultHUP, pvkInvalidateMappedMemoryRanges, "vkInvalidateMappedMemoryRanges",
		unsafe.Pointer(&device), unsafe.Pointer(&count), p(unsafe.Pointer(rng)))
	if err != nil {
		return err
	}
	return res.Err("vkInvalidateMappedMemoryRanges")
}

// CreateImage wraps vkCreateImage.
func CreateImage(device uint64, info *ImageCreateInfo) (uint64, error) {
	return createHandle(pvkCreateImage, "vkCreateImage", device, unsafe.Pointer(info))
}

// DestroyImage wraps vkDestroyImage.
func DestroyImage(device, img uint64) { destroyHandle(pvkDestroyImage, device, img) }

// BindImageMemory wraps vkBindImageMemory.
func BindImageMemory(device, img, mem uint64, offset uint64) error {
	res, err := callResult(&sigResultHHHH, pvkBindImageMemory, "vkBindImageMemory",
		unsafe.Pointer(&device), unsafe.Pointer(&img), unsafe.Pointer(&mem), unsafe.Pointer(&offset))
	if err != nil {
		return err
	}
	return res.Err("vkBindImageMemory")
}

// CreateImageView wraps vkCreateImageView.
func CreateImageView(device uint64, info *ImageViewCreateInfo) (uint64, error) {
	return createHandle(pvkCreateImageView, "vkCreateImageView", device, unsafe.Pointer(info))
}

// DestroyImageView wraps vkDestroyImageView.
func DestroyImageView(device, view uint64) { destroyHandle(pvkDestroyImageView, device, view) }

// CreateSampler wraps vkCreateSampler.
func CreateSampler(device uint64, info *SamplerCreateInfo) (uint64, error) {
	return createHandle(pvkCreateSampler, "vkCreateSampler", device, unsafe.Pointer(info))
}

// DestroySampler wraps vkDestroySampler.
func DestroySampler(device, s uint64) { destroyHandle(pvkDestroySampler, device, s) }

// CreateShaderModule wraps vkCreateShaderModule.
func CreateShaderModule(device uint64, info *ShaderModuleCreateInfo) (uint64, error) {
	return createHandle(pvkCreateShaderModule, "vkCreateShaderModule", device, unsafe.Pointer(info))
}

// DestroyShaderModule wraps vkDestroyShaderModule.
func DestroyShaderModule(device, mod uint64) { destroyHandle(pvkDestroyShaderModule, device, mod) }

// CreateGraphicsPipelines wraps vkCreateGraphicsPipelines for a single
// pipeline (no pipeline cache).
func CreateGraphicsPipelines(device uint64, infoPtr unsafe.Pointer) (uint64, error) {
	cache := uint64(0)
	count := uint32(1)
	var pipeline uint64
	res, err := callResult(&sigResultHHUPPP, pvkCreateGraphicsPipelines, "vkCreateGraphicsPipelines",
		unsafe.Pointer(&device), unsafe.Pointer(&cache), unsafe.Pointer(&count),
		p(infoPtr), p(nil), p(unsafe.Pointer(&pipeline)))
	if err != nil {
		return 0, err
	}
	return pipeline, res.Err("vkCreateGraphicsPipelines")
}

// DestroyPipeline wraps vkDestroyPipeline.
func DestroyPipeline(device, pipeline uint64) { destroyHandle(pvkDestroyPipeline, device, pipeline) }

// CreateDescriptorPool wraps vkCreateDescriptorPool.
func CreateDescriptorPool(device uint64, info *DescriptorPoolCreateInfo) (uint64, error) {
	return createHandle(pvkCreateDescriptorPool, "vkCreateDescriptorPool", device, unsafe.Pointer(info))
}

// DestroyDescriptorPool wraps vkDestroyDescriptorPool.
func DestroyDescriptorPool(device, pool uint64) { destroyHandle(pvkDestroyDescriptorPool, device, pool) }

// CreateDescriptorSetLayout wraps vkCreateDescriptorSetLayout.
func CreateDescriptorSetLayout(device uint64, info *DescriptorSetLayoutCreateInfo) (uint64, error) {
	return createHandle(pvkCreateDescriptorSetLayout, "vkCreateDescriptorSetLayout", device, unsafe.Pointer(info))
}

// DestroyDescriptorSetLayout wraps vkDestroyDescriptorSetLayout.
func DestroyDescriptorSetLayout(device, layout uint64) {
	destroyHandle(pvkDestroyDescriptorSetLayout, device, layout)
}

// CreatePipelineLayout wraps vkCreatePipelineLayout.
func CreatePipelineLayout(device uint64, info *PipelineLayoutCreateInfo) (uint64, error) {
	return createHandle(pvkCreatePipelineLayout, "vkCreatePipelineLayout", device, unsafe.Pointer(info))
}

// DestroyPipelineLayout wraps vkDestroyPipelineLayout.
func DestroyPipelineLayout(device, layout uint64) {
	destroyHandle(pvkDestroyPipelineLayout, device, layout)
}

// AllocateDescriptorSet wraps vkAllocateDescriptorSets for one set.
func AllocateDescriptorSet(device uint64, info *DescriptorSetAllocateInfo) (uint64, error) {
	var set uint64
	res, err := callResult(&sigResultHPP, pvkAllocateDescriptorSets, "vkAllocateDescriptorSets",
		unsafe.Pointer(&device), p(unsafe.Pointer(info)), p(unsafe.Pointer(&set)))
	if err != nil {
		return 0, err
	}
	return set, res.Err("vkAllocateDescriptorSets")
}

// UpdateDescriptorSets wraps vkUpdateDescriptorSets with no copies.
func UpdateDescriptorSets(device uint64, writes []WriteDescriptorSet) {
	if len(writes) == 0 {
		return
	}
	count := uint32(len(writes))
	zero := uint32(0)
	callVoid(&sigVoidHUPUP, pvkUpdateDescriptorSets,
		unsafe.Pointer(&device), unsafe.Pointer(&count), p(unsafe.Pointer(&writes[0])),
		unsafe.Pointer(&zero), p(nil))
}

// -- Command buffer recording --

func CmdBeginRenderPass(cb uint64, info *RenderPassBeginInfo, contents uint32) {
	callVoid(&sigVoidHPU, pvkCmdBeginRenderPass,
		unsafe.Pointer(&cb), p(unsafe.Pointer(info)), unsafe.Pointer(&contents))
}

func CmdEndRenderPass(cb uint64) {
	callVoid(&sigVoidH, pvkCmdEndRenderPass, unsafe.Pointer(&cb))
}

func CmdBindPipeline(cb uint64, bindPoint uint32, pipeline uint64) {
	callVoid(&sigVoidHUH, pvkCmdBindPipeline,
		unsafe.Pointer(&cb), unsafe.Pointer(&bindPoint), unsafe.Pointer(&pipeline))
}

func CmdSetViewport(cb uint64, v *Viewport) {
	first, count := uint32(0), uint32(1)
	callVoid(&sigVoidHUUP, pvkCmdSetViewport,
		unsafe.Pointer(&cb), unsafe.Pointer(&first), unsafe.Pointer(&count), p(unsafe.Pointer(v)))
}

func CmdSetScissor(cb uint64, r *Rect2D) {
	first, count := uint32(0), uint32(1)
	callVoid(&sigVoidHUUP, pvkCmdSetScissor,
		unsafe.Pointer(&cb), unsafe.Pointer(&first), unsafe.Pointer(&count), p(unsafe.Pointer(r)))
}

func CmdBindVertexBuffers(cb uint64, first uint32, buffers []uint64, offsets []uint64) {
	if len(buffers) == 0 {
		return
	}
	count := uint32(len(buffers))
	callVoid(&sigVoidHUUPP, pvkCmdBindVertexBuffers,
		unsafe.Pointer(&cb), unsafe.Pointer(&first), unsafe.Pointer(&count),
		p(unsafe.Pointer(&buffers[0])), p(unsafe.Pointer(&offsets[0])))
}

func CmdBindIndexBuffer(cb, buf uint64, offset uint64, indexType uint32) {
	callVoid(&sigVoidHHHU, pvkCmdBindIndexBuffer,
		unsafe.Pointer(&cb), unsafe.Pointer(&buf), unsafe.Pointer(&offset), unsafe.Pointer(&indexType))
}

func CmdBindDescriptorSets(cb uint64, bindPoint uint32, layout uint64, firstSet uint32, set uint64) {
	count := uint32(1)
	dynCount := uint32(0)
	setH := set
	callVoid(&sigVoidHUHUUPUP, pvkCmdBindDescriptorSets,
		unsafe.Pointer(&cb), unsafe.Pointer(&bindPoint), unsafe.Pointer(&layout),
		unsafe.Pointer(&firstSet), unsafe.Pointer(&count), p(unsafe.Pointer(&setH)),
		unsafe.Pointer(&dynCount), p(nil))
}

func CmdDraw(cb uint64, vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	callVoid(&sigVoidHUUUU, pvkCmdDraw, unsafe.Pointer(&cb),
		unsafe.Pointer(&vertexCount), unsafe.Pointer(&instanceCount),
		unsafe.Pointer(&firstVertex), unsafe.Pointer(&firstInstance))
}

func CmdDrawIndexed(cb uint64, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	vertexOffsetBits := uint32(vertexOffset)
	callVoid(&sigVoidHUUUUU, pvkCmdDrawIndexed, unsafe.Pointer(&cb),
		unsafe.Pointer(&indexCount), unsafe.Pointer(&instanceCount), unsafe.Pointer(&firstIndex),
		unsafe.Pointer(&vertexOffsetBits), unsafe.Pointer(&firstInstance))
}

func CmdPipelineBarrier(cb uint64, srcStage, dstStage uint32, bufferBarriers []BufferMemoryBarrier, imageBarriers []ImageMemoryBarrier) {
	depFlags := uint32(0)
	memCount := uint32(0)
	bCount, iCount := uint32(len(bufferBarriers)), uint32(len(imageBarriers))
	var bPtr, iPtr unsafe.Pointer
	if bCount > 0 {
		bPtr = unsafe.Pointer(&bufferBarriers[0])
	}
	if iCount > 0 {
		iPtr = unsafe.Pointer(&imageBarriers[0])
	}
	callVoid(&sigVoidHUUUUPUPUP, pvkCmdPipelineBarrier,
		unsafe.Pointer(&cb), unsafe.Pointer(&srcStage), unsafe.Pointer(&dstStage),
		unsafe.Pointer(&depFlags), unsafe.Pointer(&memCount), p(nil),
		unsafe.Pointer(&bCount), p(bPtr),
		unsafe.Pointer(&iCount), p(iPtr))
}

func CmdClearColorImage(cb, image uint64, layout uint32, color *ClearColorValue, ranges *ImageSubresourceRange) {
	count := uint32(1)
	callVoid(&sigVoidHHUPUP, pvkCmdClearColorImage,
		unsafe.Pointer(&cb), unsafe.Pointer(&image), unsafe.Pointer(&layout),
		p(unsafe.Pointer(color)), unsafe.Pointer(&count), p(unsafe.Pointer(ranges)))
}

func CmdClearAttachments(cb uint64, attachments []ClearAttachment, rects []ClearRect) {
	if len(attachments) == 0 || len(rects) == 0 {
		return
	}
	aCount, rCount := uint32(len(attachments)), uint32(len(rects))
	callVoid(&sigVoidHUPUP, pvkCmdClearAttachments,
		unsafe.Pointer(&cb), unsafe.Pointer(&aCount), p(unsafe.Pointer(&attachments[0])),
		unsafe.Pointer(&rCount), p(unsafe.Pointer(&rects[0])))
}

func CmdCopyBuffer(cb, src, dst uint64, regions []BufferCopy) {
	if len(regions) == 0 {
		return
	}
	count := uint32(len(regions))
	callVoid(&sigVoidHHHUP, pvkCmdCopyBuffer,
		unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&dst),
		unsafe.Pointer(&count), p(unsafe.Pointer(&regions[0])))
}

func CmdCopyBufferToImage(cb, buf, image uint64, layout uint32, regions []BufferImageCopy) {
	if len(regions) == 0 {
		return
	}
	count := uint32(len(regions))
	callVoid(&sigVoidHHHUUP, pvkCmdCopyBufferToImage,
		unsafe.Pointer(&cb), unsafe.Pointer(&buf), unsafe.Pointer(&image),
		unsafe.Pointer(&layout), unsafe.Pointer(&count), p(unsafe.Pointer(&regions[0])))
}

func CmdBlitImage(cb, src uint64, srcLayout uint32, dst uint64, dstLayout uint32, regions []ImageBlit, filter uint32) {
	if len(regions) == 0 {
		return
	}
	count := uint32(len(regions))
	callVoid(&sigVoidHHUHUUPU, pvkCmdBlitImage,
		unsafe.Pointer(&cb), unsafe.Pointer(&src), unsafe.Pointer(&srcLayout),
		unsafe.Pointer(&dst), unsafe.Pointer(&dstLayout),
		unsafe.Pointer(&count), p(unsafe.Pointer(&regions[0])), unsafe.Pointer(&filter))
}

// -- Debug messenger (VK_EXT_debug_utils) --

func CreateDebugUtilsMessengerEXT(instance uint64, info *DebugUtilsMessengerCreateInfoEXT) (uint64, error) {
	return createHandle(pvkCreateDebugUtilsMessengerEXT, "vkCreateDebugUtilsMessengerEXT", instance, unsafe.Pointer(info))
}

func DestroyDebugUtilsMessengerEXT(instance, messenger uint64) {
	destroyHandle(pvkDestroyDebugUtilsMessengerEXT, instance, messenger)
}

// -- Swapchain (VK_KHR_swapchain) --

func CreateSwapchainKHR(device uint64, info *SwapchainCreateInfoKHR) (uint64, error) {
	return createHandle(pvkCreateSwapchainKHR, "vkCreateSwapchainKHR", device, unsafe.Pointer(info))
}

func DestroySwapchainKHR(device, sc uint64) { destroyHandle(pvkDestroySwapchainKHR, device, sc) }

func GetSwapchainImagesKHR(device, sc uint64) ([]uint64, error) {
	var count uint32
	if _, err := callResult(&sigResultHHPP, pvkGetSwapchainImagesKHR, "vkGetSwapchainImagesKHR(count)",
		unsafe.Pointer(&device), unsafe.Pointer(&sc), p(unsafe.Pointer(&count)), p(nil)); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("vk: swapchain reports no images")
	}
	images := make([]uint64, count)
	res, err := callResult(&sigResultHHPP, pvkGetSwapchainImagesKHR, "vkGetSwapchainImagesKHR",
		unsafe.Pointer(&device), unsafe.Pointer(&sc), p(unsafe.Pointer(&count)), p(unsafe.Pointer(&images[0])))
	if err != nil {
		return nil, err
	}
	return images, res.Err("vkGetSwapchainImagesKHR")
}

func AcquireNextImageKHR(device, sc uint64, timeoutNanos uint64, semaphore uint64) (uint32, Result, error) {
	var index uint32
	fence := uint64(0)
	res, err := callResult(&sigResultHHHHHP, pvkAcquireNextImageKHR, "vkAcquireNextImageKHR",
		unsafe.Pointer(&device), unsafe.Pointer(&sc), unsafe.Pointer(&timeoutNanos),
		unsafe.Pointer(&semaphore), unsafe.Pointer(&fence), p(unsafe.Pointer(&index)))
	if err != nil {
		return 0, 0, err
	}
	return index, res, nil
}

func QueuePresentKHR(queue uint64, info *PresentInfoKHR) (Result, error) {
	res, err := callResult(&sigResultHP, pvkQueuePresentKHR, "vkQueuePresentKHR",
		unsafe.Pointer(&queue), p(unsafe.Pointer(info)))
	if err != nil {
		return 0, err
	}
	return res, nil
}
