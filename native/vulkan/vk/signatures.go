// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// Signature templates, reused across every Vulkan function sharing a
// shape: Vulkan has hundreds of entry points but only a few dozen
// distinct C signatures. Shape suffix key: H = handle/uint64 (also
// VkDeviceSize), U = uint32 (enums, flags, counts; int32 values are
// passed through a U slot bit-for-bit), P = pointer.
var (
	sigResultPPP    types.CallInterface // vkCreateInstance
	sigResultH      types.CallInterface // vkDeviceWaitIdle, vkQueueWaitIdle, vkEndCommandBuffer
	sigResultHP     types.CallInterface // vkSignalSemaphore, vkBeginCommandBuffer, vkQueuePresentKHR
	sigResultHU     types.CallInterface // vkResetCommandBuffer
	sigResultHPP    types.CallInterface // vkEnumeratePhysicalDevices, vkAllocateCommandBuffers, vkAllocateDescriptorSets
	sigResultHPPP   types.CallInterface // vkCreateDevice and the vkCreate*(device, pInfo, pAllocator, pHandle) family
	sigResultHUP    types.CallInterface // vkFlushMappedMemoryRanges, vkInvalidateMappedMemoryRanges
	sigResultHUPH   types.CallInterface // vkQueueSubmit
	sigResultHPH    types.CallInterface // vkWaitSemaphores (timeout is a uint64)
	sigResultHHP    types.CallInterface // vkGetSemaphoreCounterValue
	sigResultHHPP   types.CallInterface // vkGetSwapchainImagesKHR
	sigResultHHHH   types.CallInterface // vkBindBufferMemory, vkBindImageMemory
	sigResultHHHHUP types.CallInterface // vkMapMemory
	sigResultHHUPPP types.CallInterface // vkCreateGraphicsPipelines
	sigResultHHHHHP types.CallInterface // vkAcquireNextImageKHR

	sigVoidH         types.CallInterface // vkCmdEndRenderPass
	sigVoidHH        types.CallInterface // vkUnmapMemory
	sigVoidHP        types.CallInterface // vkDestroyInstance, vkDestroyDevice, vkGetPhysicalDeviceMemoryProperties
	sigVoidHPP       types.CallInterface // vkGetPhysicalDeviceQueueFamilyProperties
	sigVoidHHP       types.CallInterface // vkDestroy*(device, handle, pAllocator), vkGet*MemoryRequirements
	sigVoidHPU       types.CallInterface // vkCmdBeginRenderPass
	sigVoidHUH       types.CallInterface // vkCmdBindPipeline
	sigVoidHHHU      types.CallInterface // vkCmdBindIndexBuffer
	sigVoidHUUP      types.CallInterface // vkGetDeviceQueue, vkCmdSetViewport, vkCmdSetScissor
	sigVoidHUUPP     types.CallInterface // vkCmdBindVertexBuffers
	sigVoidHUPUP     types.CallInterface // vkUpdateDescriptorSets, vkCmdClearAttachments
	sigVoidHHUPUP    types.CallInterface // vkCmdClearColorImage
	sigVoidHHHUP     types.CallInterface // vkCmdCopyBuffer
	sigVoidHHHUUP    types.CallInterface // vkCmdCopyBufferToImage
	sigVoidHHUHUUPU  types.CallInterface // vkCmdBlitImage
	sigVoidHUUUU     types.CallInterface // vkCmdDraw
	sigVoidHUUUUU    types.CallInterface // vkCmdDrawIndexed
	sigVoidHUHUUPUP  types.CallInterface // vkCmdBindDescriptorSets
	sigVoidHUUUUPUPUP types.CallInterface // vkCmdPipelineBarrier
)

func prepareSignatures() error {
	u := types.UInt32TypeDescriptor
	h := types.UInt64TypeDescriptor
	p := types.PointerTypeDescriptor
	res := types.UInt32TypeDescriptor // VkResult is a C enum (int32)
	void := types.VoidTypeDescriptor

	type sig struct {
		cif  *types.CallInterface
		ret  *types.TypeDescriptor
		args []*types.TypeDescriptor
	}
	sigs := []sig{
		{&sigResultPPP, res, []*types.TypeDescriptor{p, p, p}},
		{&sigResultH, res, []*types.TypeDescriptor{h}},
		{&sigResultHP, res, []*types.TypeDescriptor{h, p}},
		{&sigResultHU, res, []*types.TypeDescriptor{h, u}},
		{&sigResultHPP, res, []*types.TypeDescriptor{h, p, p}},
		{&sigResultHPPP, res, []*types.TypeDescriptor{h, p, p, p}},
		{&sigResultHUP, res, []*types.TypeDescriptor{h, u, p}},
		{&sigResultHUPH, res, []*types.TypeDescriptor{h, u, p, h}},
		{&sigResultHPH, res, []*types.TypeDescriptor{h, p, h}},
		{&sigResultHHP, res, []*types.TypeDescriptor{h, h, p}},
		{&sigResultHHPP, res, []*types.TypeDescriptor{h, h, p, p}},
		{&sigResultHHHH, res, []*types.TypeDescriptor{h, h, h, h}},
		{&sigResultHHHHUP, res, []*types.TypeDescriptor{h, h, h, h, u, p}},
		{&sigResultHHUPPP, res, []*types.TypeDescriptor{h, h, u, p, p, p}},
		{&sigResultHHHHHP, res, []*types.TypeDescriptor{h, h, h, h, h, p}},

		{&sigVoidH, void, []*types.TypeDescriptor{h}},
		{&sigVoidHH, void, []*types.TypeDescriptor{h, h}},
		{&sigVoidHP, void, []*types.TypeDescriptor{h, p}},
		{&sigVoidHPP, void, []*types.TypeDescriptor{h, p, p}},
		{&sigVoidHHP, void, []*types.TypeDescriptor{h, h, p}},
		{&sigVoidHPU, void, []*types.TypeDescriptor{h, p, u}},
		{&sigVoidHUH, void, []*types.TypeDescriptor{h, u, h}},
		{&sigVoidHHHU, void, []*types.TypeDescriptor{h, h, h, u}},
		{&sigVoidHUUP, void, []*types.TypeDescriptor{h, u, u, p}},
		{&sigVoidHUUPP, void, []*types.TypeDescriptor{h, u, u, p, p}},
		{&sigVoidHUPUP, void, []*types.TypeDescriptor{h, u, p, u, p}},
		{&sigVoidHHUPUP, void, []*types.TypeDescriptor{h, h, u, p, u, p}},
		{&sigVoidHHHUP, void, []*types.TypeDescriptor{h, h, h, u, p}},
		{&sigVoidHHHUUP, void, []*types.TypeDescriptor{h, h, h, u, u, p}},
		{&sigVoidHHUHUUPU, void, []*types.TypeDescriptor{h, h, u, h, u, u, p, u}},
		{&sigVoidHUUUU, void, []*types.TypeDescriptor{h, u, u, u, u}},
		{&sigVoidHUUUUU, void, []*types.TypeDescriptor{h, u, u, u, u, u}},
		{&sigVoidHUHUUPUP, void, []*types.TypeDescriptor{h, u, h, u, u, p, u, p}},
		{&sigVoidHUUUUPUPUP, void, []*types.TypeDescriptor{h, u, u, u, u, p, u, p, u, p}},
	}
	for _, s := range sigs {
		if err := ffi.PrepareCallInterface(s.cif, types.DefaultCall, s.ret, s.args); err != nil {
			return err
		}
	}
	return nil
}

// instanceEntryPoints and deviceEntryPoints list every raw vk*
// function this package resolves, grouped to separate LoadInstance
// from LoadDevice. Device-level entries are still fetched through
// vkGetInstanceProcAddr here (see LoadDevice's doc comment).
var (
	pvkCreateInstance, pvkDestroyInstance                               unsafe.Pointer
	pvkEnumeratePhysicalDevices, pvkGetPhysicalDeviceQueueFamilyProps   unsafe.Pointer
	pvkGetPhysicalDeviceMemoryProperties                                unsafe.Pointer
	pvkCreateDevice, pvkDestroyDevice, pvkGetDeviceQueue                unsafe.Pointer
	pvkDeviceWaitIdle, pvkQueueWaitIdle, pvkQueueSubmit                 unsafe.Pointer
	pvkCreateSemaphore, pvkDestroySemaphore                             unsafe.Pointer
	pvkSignalSemaphore, pvkWaitSemaphores, pvkGetSemaphoreCounterValue  unsafe.Pointer
	pvkCreateCommandPool, pvkDestroyCommandPool                         unsafe.Pointer
	pvkAllocateCommandBuffers, pvkResetCommandBuffer                    unsafe.Pointer
	pvkBeginCommandBuffer, pvkEndCommandBuffer                          unsafe.Pointer
	pvkCreateRenderPass, pvkDestroyRenderPass                           unsafe.Pointer
	pvkCreateFramebuffer, pvkDestroyFramebuffer                         unsafe.Pointer
	pvkCreateBuffer, pvkDestroyBuffer, pvkAllocateMemory, pvkFreeMemory unsafe.Pointer
	pvkGetBufferMemoryRequirements, pvkGetImageMemoryRequirements       unsafe.Pointer
	pvkBindBufferMemory, pvkMapMemory, pvkUnmapMemory                   unsafe.Pointer
	pvkFlushMappedMemoryRanges, pvkInvalidateMappedMemoryRanges         unsafe.Pointer
	pvkCreateImage, pvkDestroyImage, pvkBindImageMemory                 unsafe.Pointer
	pvkCreateImageView, pvkDestroyImageView                             unsafe.Pointer
	pvkCreateSampler, pvkDestroySampler                                 unsafe.Pointer
	pvkCreateShaderModule, pvkDestroyShaderModule                       unsafe.Pointer
	pvkCreateGraphicsPipelines, pvkDestroyPipeline                      unsafe.Pointer
	pvkCreateDescriptorPool, pvkDestroyDescriptorPool                   unsafe.Pointer
	pvkCreateDescriptorSetLayout, pvkDestroyDescriptorSetLayout         unsafe.Pointer
	pvkCreatePipelineLayout, pvkDestroyPipelineLayout                   unsafe.Pointer
	pvkAllocateDescriptorSets, pvkUpdateDescriptorSets                  unsafe.Pointer
	pvkCmdBeginRenderPass, pvkCmdEndRenderPass                          unsafe.Pointer
	pvkCmdBindPipeline, pvkCmdSetViewport, pvkCmdSetScissor             unsafe.Pointer
	pvkCmdBindVertexBuffers, pvkCmdBindIndexBuffer                      unsafe.Pointer
	pvkCmdBindDescriptorSets, pvkCmdDraw, pvkCmdDrawIndexed             unsafe.Pointer
	pvkCmdPipelineBarrier, pvkCmdClearAttachments, pvkCmdClearColorImage unsafe.Pointer
	pvkCmdCopyBuffer, pvkCmdCopyBufferToImage, pvkCmdBlitImage          unsafe.Pointer
	pvkCreateSwapchainKHR, pvkDestroySwapchainKHR                       unsafe.Pointer
	pvkGetSwapchainImagesKHR, pvkAcquireNextImageKHR, pvkQueuePresentKHR unsafe.Pointer
	pvkCreateDebugUtilsMessengerEXT, pvkDestroyDebugUtilsMessengerEXT   unsafe.Pointer
)

// debugUtilsEntryPoints are resolved separately by LoadDebugUtils:
// they exist only when VK_EXT_debug_utils was enabled at instance
// creation, so resolving them is optional rather than part of
// LoadInstance.
var debugUtilsEntryPoints = map[string]*unsafe.Pointer{
	"vkCreateDebugUtilsMessengerEXT":  &pvkCreateDebugUtilsMessengerEXT,
	"vkDestroyDebugUtilsMessengerEXT": &pvkDestroyDebugUtilsMessengerEXT,
}

var instanceEntryPoints = map[string]*unsafe.Pointer{
	"vkCreateInstance":                         &pvkCreateInstance,
	"vkDestroyInstance":                        &pvkDestroyInstance,
	"vkEnumeratePhysicalDevices":               &pvkEnumeratePhysicalDevices,
	"vkGetPhysicalDeviceQueueFamilyProperties": &pvkGetPhysicalDeviceQueueFamilyProps,
	"vkGetPhysicalDeviceMemoryProperties":      &pvkGetPhysicalDeviceMemoryProperties,
	"vkCreateDevice":                           &pvkCreateDevice,
}

var deviceEntryPoints = map[string]*unsafe.Pointer{
	"vkDestroyDevice":                &pvkDestroyDevice,
	"vkGetDeviceQueue":               &pvkGetDeviceQueue,
	"vkDeviceWaitIdle":               &pvkDeviceWaitIdle,
	"vkQueueWaitIdle":                &pvkQueueWaitIdle,
	"vkQueueSubmit":                  &pvkQueueSubmit,
	"vkCreateSemaphore":              &pvkCreateSemaphore,
	"vkDestroySemaphore":             &pvkDestroySemaphore,
	"vkSignalSemaphore":              &pvkSignalSemaphore,
	"vkWaitSemaphores":               &pvkWaitSemaphores,
	"vkGetSemaphoreCounterValue":     &pvkGetSemaphoreCounterValue,
	"vkCreateCommandPool":            &pvkCreateCommandPool,
	"vkDestroyCommandPool":           &pvkDestroyCommandPool,
	"vkAllocateCommandBuffers":       &pvkAllocateCommandBuffers,
	"vkResetCommandBuffer":           &pvkResetCommandBuffer,
	"vkBeginCommandBuffer":           &pvkBeginCommandBuffer,
	"vkEndCommandBuffer":             &pvkEndCommandBuffer,
	"vkCreateRenderPass":             &pvkCreateRenderPass,
	"vkDestroyRenderPass":            &pvkDestroyRenderPass,
	"vkCreateFramebuffer":            &pvkCreateFramebuffer,
	"vkDestroyFramebuffer":           &pvkDestroyFramebuffer,
	"vkCreateBuffer":                 &pvkCreateBuffer,
	"vkDestroyBuffer":                &pvkDestroyBuffer,
	"vkAllocateMemory":               &pvkAllocateMemory,
	"vkFreeMemory":                   &pvkFreeMemory,
	"vkGetBufferMemoryRequirements":  &pvkGetBufferMemoryRequirements,
	"vkGetImageMemoryRequirements":   &pvkGetImageMemoryRequirements,
	"vkBindBufferMemory":             &pvkBindBufferMemory,
	"vkMapMemory":                    &pvkMapMemory,
	"vkUnmapMemory":                  &pvkUnmapMemory,
	"vkFlushMappedMemoryRanges":      &pvkFlushMappedMemoryRanges,
	"vkInvalidateMappedMemoryRanges": &pvkInvalidateMappedMemoryRanges,
	"vkCreateImage":                  &pvkCreateImage,
	"vkDestroyImage":                 &pvkDestroyImage,
	"vkBindImageMemory":              &pvkBindImageMemory,
	"vkCreateImageView":              &pvkCreateImageView,
	"vkDestroyImageView":             &pvkDestroyImageView,
	"vkCreateSampler":                &pvkCreateSampler,
	"vkDestroySampler":               &pvkDestroySampler,
	"vkCreateShaderModule":           &pvkCreateShaderModule,
	"vkDestroyShaderModule":          &pvkDestroyShaderModule,
	"vkCreateGraphicsPipelines":      &pvkCreateGraphicsPipelines,
	"vkDestroyPipeline":              &pvkDestroyPipeline,
	"vkCreateDescriptorPool":         &pvkCreateDescriptorPool,
	"vkDestroyDescriptorPool":        &pvkDestroyDescriptorPool,
	"vkAllocateDescriptorSets":       &pvkAllocateDescriptorSets,
	"vkUpdateDescriptorSets":         &pvkUpdateDescriptorSets,
	"vkCreateDescriptorSetLayout":    &pvkCreateDescriptorSetLayout,
	"vkDestroyDescriptorSetLayout":   &pvkDestroyDescriptorSetLayout,
	"vkCreatePipelineLayout":         &pvkCreatePipelineLayout,
	"vkDestroyPipelineLayout":        &pvkDestroyPipelineLayout,
	"vkCmdBeginRenderPass":           &pvkCmdBeginRenderPass,
	"vkCmdEndRenderPass":             &pvkCmdEndRenderPass,
	"vkCmdBindPipeline":              &pvkCmdBindPipeline,
	"vkCmdSetViewport":               &pvkCmdSetViewport,
	"vkCmdSetScissor":                &pvkCmdSetScissor,
	"vkCmdBindVertexBuffers":         &pvkCmdBindVertexBuffers,
	"vkCmdBindIndexBuffer":           &pvkCmdBindIndexBuffer,
	"vkCmdBindDescriptorSets":        &pvkCmdBindDescriptorSets,
	"vkCmdDraw":                      &pvkCmdDraw,
	"vkCmdDrawIndexed":               &pvkCmdDrawIndexed,
	"vkCmdPipelineBarrier":           &pvkCmdPipelineBarrier,
	"vkCmdClearAttachments":          &pvkCmdClearAttachments,
	"vkCmdClearColorImage":           &pvkCmdClearColorImage,
	"vkCmdCopyBuffer":                &pvkCmdCopyBuffer,
	"vkCmdCopyBufferToImage":         &pvkCmdCopyBufferToImage,
	"vkCmdBlitImage":                 &pvkCmdBlitImage,
	"vkCreateSwapchainKHR":           &pvkCreateSwapchainKHR,
	"vkDestroySwapchainKHR":          &pvkDestroySwapchainKHR,
	"vkGetSwapchainImagesKHR":        &pvkGetSwapchainImagesKHR,
	"vkAcquireNextImageKHR":          &pvkAcquireNextImageKHR,
	"vkQueuePresentKHR":              &pvkQueuePresentKHR,
}
