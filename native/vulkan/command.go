// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"unsafe"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/native/vulkan/vk"
	"github.com/vulkangpu/gpu/types"
)

// CommandPool wraps a VkCommandPool bound to a single queue family.
type CommandPool struct {
	device *Device
	handle uint64
}

func (d *Device) NewCommandPool(queueFamily int) (native.CommandPool, error) {
	info := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            0x00000002, // VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT
		QueueFamilyIndex: uint32(queueFamily),
	}
	handle, err := vk.CreateCommandPool(d.handle, &info)
	if err != nil {
		return nil, err
	}
	return &CommandPool{device: d, handle: handle}, nil
}

func (p *CommandPool) Destroy() { vk.DestroyCommandPool(p.device.handle, p.handle) }

func (p *CommandPool) Allocate() (native.CmdBuffer, error) {
	info := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        p.handle,
		Level:              0, // VK_COMMAND_BUFFER_LEVEL_PRIMARY
		CommandBufferCount: 1,
	}
	handle, err := vk.AllocateCommandBuffer(p.device.handle, &info)
	if err != nil {
		return nil, err
	}
	return &CmdBuffer{device: p.device, handle: handle}, nil
}

// CmdBuffer wraps a VkCommandBuffer. The only state it tracks across
// calls within one recording is the pipeline layout needed to bind
// descriptor sets (see Pipeline); it does not track whether a render
// pass is active.
type CmdBuffer struct {
	device      *Device
	handle      uint64
	boundLayout uint64
}

func (c *CmdBuffer) Destroy() {} // freed with its pool, never individually

func (c *CmdBuffer) Begin() error {
	info := vk.CommandBufferBeginInfo{SType: vk.StructureTypeCommandBufferBeginInfo}
	return vk.BeginCommandBuffer(c.handle, &info)
}

func (c *CmdBuffer) End() error { return vk.EndCommandBuffer(c.handle) }

func (c *CmdBuffer) Reset() error { return vk.ResetCommandBuffer(c.handle, 0) }

func (c *CmdBuffer) BeginRenderPass(pass native.RenderPass, fb native.Framebuffer, clear []types.ClearValue) {
	values := make([]vk.ClearValue, len(clear))
	depthLast := pass.(*RenderPass).hasDepth
	for i, cv := range clear {
		if depthLast && i == len(clear)-1 {
			values[i] = vk.DepthStencilClearValue(cv.Depth, cv.Stencil)
		} else {
			values[i] = vk.ColorClearValue(cv.Color[0], cv.Color[1], cv.Color[2], cv.Color[3])
		}
	}
	info := vk.RenderPassBeginInfo{
		SType:           vk.StructureTypeRenderPassBeginInfo,
		RenderPass:      pass.(*RenderPass).handle,
		Framebuffer:     fb.(*Framebuffer).handle,
		ClearValueCount: uint32(len(values)),
	}
	if len(values) > 0 {
		info.PClearValues = unsafe.Pointer(&values[0])
	}
	vk.CmdBeginRenderPass(c.handle, &info, 0) // VK_SUBPASS_CONTENTS_INLINE
}

func (c *CmdBuffer) EndRenderPass() { vk.CmdEndRenderPass(c.handle) }

func (c *CmdBuffer) BindPipeline(pl native.Pipeline) {
	p := pl.(*Pipeline)
	c.boundLayout = p.layout
	vk.CmdBindPipeline(c.handle, 0, p.handle) // VK_PIPELINE_BIND_POINT_GRAPHICS
}

func (c *CmdBuffer) SetViewport(v []types.Viewport) {
	if len(v) == 0 {
		return
	}
	vv := v[0]
	vk.CmdSetViewport(c.handle, &vk.Viewport{
		X: vv.X, Y: vv.Y, Width: vv.Width, Height: vv.Height,
		MinDepth: vv.MinDepth, MaxDepth: vv.MaxDepth,
	})
}

func (c *CmdBuffer) SetScissor(s []types.Scissor) {
	if len(s) == 0 {
		return
	}
	ss := s[0]
	vk.CmdSetScissor(c.handle, &vk.Rect2D{
		OffsetX: int32(ss.X), OffsetY: int32(ss.Y),
		Width: uint32(ss.Width), Height: uint32(ss.Height),
	})
}

func (c *CmdBuffer) BindVertexBuffers(start int, buf []native.Buffer, offsets []int64) {
	handles := make([]uint64, len(buf))
	offs := make([]uint64, len(offsets))
	for i, b := range buf {
		handles[i] = b.(*Buffer).handle
	}
	for i, o := range offsets {
		offs[i] = uint64(o)
	}
	vk.CmdBindVertexBuffers(c.handle, uint32(start), handles, offs)
}

func (c *CmdBuffer) BindIndexBuffer(buf native.Buffer, offset int64, format types.IndexFmt) {
	vk.CmdBindIndexBuffer(c.handle, buf.(*Buffer).handle, uint64(offset), indexTypeToVk(format))
}

func (c *CmdBuffer) BindDescriptorSet(setIndex int, set native.DescriptorSet) {
	vk.CmdBindDescriptorSets(c.handle, 0, c.boundLayout, uint32(setIndex), set.(*DescriptorSet).handle)
}

func (c *CmdBuffer) Draw(vertexCount, instanceCount, firstVertex, firstInstance int) {
	vk.CmdDraw(c.handle, uint32(vertexCount), uint32(instanceCount), uint32(firstVertex), uint32(firstInstance))
}

func (c *CmdBuffer) DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance int) {
	vk.CmdDrawIndexed(c.handle, uint32(indexCount), uint32(instanceCount), uint32(firstIndex), int32(baseVertex), uint32(firstInstance))
}

func (c *CmdBuffer) PipelineBarrier(barriers []native.Barrier) {
	var srcStage, dstStage uint32
	var bufBarriers []vk.BufferMemoryBarrier
	var imgBarriers []vk.ImageMemoryBarrier
	for _, b := range barriers {
		srcStage |= b.SrcStage
		dstStage |= b.DstStage
		if b.Buffer != nil {
			bufBarriers = append(bufBarriers, vk.BufferMemoryBarrier{
				SType:         vk.StructureTypeBufferMemoryBarrier,
				SrcAccessMask: b.SrcAccess,
				DstAccessMask: b.DstAccess,
				SrcQueueFamilyIndex: queueFamilyIgnored,
				DstQueueFamilyIndex: queueFamilyIgnored,
				Buffer:        b.Buffer.(*Buffer).handle,
				Size:          wholeSize,
			})
			continue
		}
		imgBarriers = append(imgBarriers, vk.ImageMemoryBarrier{
			SType:         vk.StructureTypeImageMemoryBarrier,
			SrcAccessMask: b.SrcAccess,
			DstAccessMask: b.DstAccess,
			OldLayout:     b.OldLayout,
			NewLayout:     b.NewLayout,
			SrcQueueFamilyIndex: queueFamilyIgnored,
			DstQueueFamilyIndex: queueFamilyIgnored,
			Image:         b.Texture.(*Texture).handle,
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask:   aspectMaskFor(b.Texture.(*Texture).desc.Binding),
				BaseMipLevel: uint32(b.BaseLevel),
				LevelCount:   uint32(maxInt(1, b.LevelCount)),
				LayerCount:   1,
			},
		})
	}
	if len(bufBarriers) == 0 && len(imgBarriers) == 0 {
		return
	}
	vk.CmdPipelineBarrier(c.handle, srcStage, dstStage, bufBarriers, imgBarriers)
}

const (
	queueFamilyIgnored = ^uint32(0)
	wholeSize          = ^uint64(0)
)

func (c *CmdBuffer) ClearColorAttachment(slot int, col [4]float32) {
	att := vk.ClearAttachment{
		AspectMask:      0x0001, // VK_IMAGE_ASPECT_COLOR_BIT
		ColorAttachment: uint32(slot),
		ClearValue:      vk.ColorClearValue(col[0], col[1], col[2], col[3]),
	}
	rect := vk.ClearRect{LayerCount: 1}
	vk.CmdClearAttachments(c.handle, []vk.ClearAttachment{att}, []vk.ClearRect{rect})
}

func (c *CmdBuffer) ClearDepthStencilAttachment(depth float32, stencil uint32) {
	att := vk.ClearAttachment{
		AspectMask: 0x0002 | 0x0004, // DEPTH | STENCIL
		ClearValue: vk.DepthStencilClearValue(depth, stencil),
	}
	rect := vk.ClearRect{LayerCount: 1}
	vk.CmdClearAttachments(c.handle, []vk.ClearAttachment{att}, []vk.ClearRect{rect})
}

func (c *CmdBuffer) ClearColorImage(t native.Texture, col [4]float32) {
	tex := t.(*Texture)
	rng := vk.ImageSubresourceRange{
		AspectMask: aspectMaskFor(tex.desc.Binding),
		LevelCount: uint32(maxInt(1, tex.desc.Levels)),
		LayerCount: 1,
	}
	vk.CmdClearColorImage(c.handle, tex.handle, layoutTransferDst,
		&vk.ClearColorValue{R: col[0], G: col[1], B: col[2], A: col[3]}, &rng)
}

const layoutTransferDst = 7 // VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL

func (c *CmdBuffer) CopyBuffer(src native.Buffer, srcOff int64, dst native.Buffer, dstOff int64, size int64) {
	region := vk.BufferCopy{SrcOffset: uint64(srcOff), DstOffset: uint64(dstOff), Size: uint64(size)}
	vk.CmdCopyBuffer(c.handle, src.(*Buffer).handle, dst.(*Buffer).handle, []vk.BufferCopy{region})
}

func (c *CmdBuffer) CopyBufferToTexture(src native.Buffer, srcOff int64, dst native.Texture, layer, level int, off types.Off3D, size types.Dim3D) {
	tex := dst.(*Texture)
	region := vk.BufferImageCopy{
		BufferOffset: uint64(srcOff),
		ImageSubresource: vk.ImageSubresourceLayers{
			AspectMask:     aspectMaskFor(tex.desc.Binding),
			MipLevel:       uint32(level),
			BaseArrayLayer: uint32(layer),
			LayerCount:     1,
		},
		ImageOffset: [3]int32{int32(off.X), int32(off.Y), int32(off.Z)},
		ImageExtent: [3]uint32{uint32(size.Width), uint32(size.Height), uint32(size.Depth)},
	}
	vk.CmdCopyBufferToImage(c.handle, src.(*Buffer).handle, tex.handle, layoutTransferDst, []vk.BufferImageCopy{region})
}

func (c *CmdBuffer) BlitImage(src native.Texture, srcLevel int, dst native.Texture, dstLevel int, srcSize, dstSize types.Dim3D) {
	srcTex, dstTex := src.(*Texture), dst.(*Texture)
	region := vk.ImageBlit{
		SrcSubresource: vk.ImageSubresourceLayers{AspectMask: aspectMaskFor(srcTex.desc.Binding), MipLevel: uint32(srcLevel), LayerCount: 1},
		SrcOffsets:     [2][3]int32{{0, 0, 0}, {int32(srcSize.Width), int32(srcSize.Height), 1}},
		DstSubresource: vk.ImageSubresourceLayers{AspectMask: aspectMaskFor(dstTex.desc.Binding), MipLevel: uint32(dstLevel), LayerCount: 1},
		DstOffsets:     [2][3]int32{{0, 0, 0}, {int32(dstSize.Width), int32(dstSize.Height), 1}},
	}
	vk.CmdBlitImage(c.handle, srcTex.handle, layoutTransferSrc, dstTex.handle, layoutTransferDst, []vk.ImageBlit{region}, 1) // VK_FILTER_LINEAR
}

const layoutTransferSrc = 6 // VK_IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL
