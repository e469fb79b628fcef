// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"unsafe"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/native/vulkan/vk"
	"github.com/vulkangpu/gpu/types"
)

// RenderPass wraps a VkRenderPass built from a format/sample-count
// schema only; it carries no attachment views (see Framebuffer).
type RenderPass struct {
	device   *Device
	handle   uint64
	hasDepth bool
}

// NewRenderPass builds a single-subpass VkRenderPass from key, one
// color attachment per key.Colors plus an optional depth attachment,
// loading/storing every color attachment and preserving whatever was
// last written to the depth attachment across passes.
func (d *Device) NewRenderPass(key types.RenderPassKey) (native.RenderPass, error) {
	n := len(key.Colors)
	if key.HasDepth {
		n++
	}
	attachments := make([]vk.AttachmentDescription, 0, n)
	colorRefs := make([]vk.AttachmentReference, len(key.Colors))
	for i, fmtColor := range key.Colors {
		attachments = append(attachments, vk.AttachmentDescription{
			Format:        pixelFormatToVk(fmtColor),
			Samples:       samplesToVk(key.Samples),
			LoadOp:        0, // VK_ATTACHMENT_LOAD_OP_LOAD; clears happen in-pass via vkCmdClearAttachments
			StoreOp:       0, // VK_ATTACHMENT_STORE_OP_STORE
			InitialLayout: layoutColorAttachment,
			FinalLayout:   layoutColorAttachment,
		})
		colorRefs[i] = vk.AttachmentReference{Attachment: uint32(i), Layout: layoutColorAttachment}
	}

	var depthRef vk.AttachmentReference
	if key.HasDepth {
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         pixelFormatToVk(key.Depth),
			Samples:        samplesToVk(key.Samples),
			LoadOp:         0,
			StoreOp:        0,
			StencilLoadOp:  2, // VK_ATTACHMENT_LOAD_OP_DONT_CARE
			StencilStoreOp: 1, // VK_ATTACHMENT_STORE_OP_DONT_CARE
			InitialLayout:  layoutDepthAttachment,
			FinalLayout:    layoutDepthAttachment,
		})
		depthRef = vk.AttachmentReference{Attachment: uint32(len(key.Colors)), Layout: layoutDepthAttachment}
	}

	subpass := vk.SubpassDescription{
		PipelineBindPoint:   0, // VK_PIPELINE_BIND_POINT_GRAPHICS
		ColorAttachmentCount: uint32(len(colorRefs)),
	}
	if len(colorRefs) > 0 {
		subpass.PColorAttachments = unsafe.Pointer(&colorRefs[0])
	}
	if key.HasDepth {
		subpass.PDepthStencilAttachment = unsafe.Pointer(&depthRef)
	}

	info := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attachments)),
		SubpassCount:    1,
		PSubpasses:      unsafe.Pointer(&subpass),
	}
	if len(attachments) > 0 {
		info.PAttachments = unsafe.Pointer(&attachments[0])
	}

	handle, err := vk.CreateRenderPass(d.handle, &info)
	if err != nil {
		return nil, err
	}
	return &RenderPass{device: d, handle: handle, hasDepth: key.HasDepth}, nil
}

func (p *RenderPass) Destroy() { vk.DestroyRenderPass(p.device.handle, p.handle) }

const (
	layoutColorAttachment = 2 // VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL
	layoutDepthAttachment = 3 // VK_IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL
)

// Framebuffer wraps a VkFramebuffer bound to a concrete set of views.
type Framebuffer struct {
	device *Device
	handle uint64
}

func (d *Device) NewFramebuffer(pass native.RenderPass, views []native.TextureView, width, height, layers int) (native.Framebuffer, error) {
	handles := make([]uint64, len(views))
	for i, v := range views {
		handles[i] = v.(*TextureView).handle
	}
	info := vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      pass.(*RenderPass).handle,
		AttachmentCount: uint32(len(handles)),
		Width:           uint32(width),
		Height:          uint32(height),
		Layers:          uint32(layers),
	}
	if len(handles) > 0 {
		info.PAttachments = unsafe.Pointer(&handles[0])
	}
	handle, err := vk.CreateFramebuffer(d.handle, &info)
	if err != nil {
		return nil, err
	}
	return &Framebuffer{device: d, handle: handle}, nil
}

func (f *Framebuffer) Destroy() { vk.DestroyFramebuffer(f.device.handle, f.handle) }
