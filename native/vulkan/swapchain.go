// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/native/vulkan/vk"
	"github.com/vulkangpu/gpu/types"
)

// Swapchain wraps a VkSwapchainKHR plus the per-image views the core
// needs for framebuffer construction; the optional depth buffer is
// allocated once up front and shared across every image, since only
// the color image actually rotates.
type Swapchain struct {
	device     *Device
	handle     uint64
	surface    uintptr
	colorViews []*TextureView
	depthTex   *Texture
	depthView  *TextureView
}

func (d *Device) NewSwapchain(desc *types.SwapChainDesc, surface uintptr, old native.Swapchain) (native.Swapchain, error) {
	var oldHandle uint64
	if old != nil {
		oldHandle = old.(*Swapchain).handle
	}

	info := vk.SwapchainCreateInfoKHR{
		SType:            vk.StructureTypeSwapchainCreateInfoKHR,
		Surface:          uint64(surface),
		MinImageCount:    uint32(desc.BackBufferCount),
		ImageFormat:      pixelFormatToVk(desc.Format),
		ImageExtent:      [2]uint32{uint32(desc.Width), uint32(desc.Height)},
		ImageArrayLayers: 1,
		ImageUsage:       0x0010, // VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT
		ImageSharingMode: sharingExclusive,
		PreTransform:     0x00000001, // VK_SURFACE_TRANSFORM_IDENTITY_BIT_KHR
		CompositeAlpha:   0x00000001, // VK_COMPOSITE_ALPHA_OPAQUE_BIT_KHR
		PresentMode:      0,          // VK_PRESENT_MODE_IMMEDIATE_KHR; vsync policy is out of scope here
		Clipped:          1,
		OldSwapchain:     oldHandle,
	}
	handle, err := vk.CreateSwapchainKHR(d.handle, &info)
	if err != nil {
		return nil, err
	}

	images, err := vk.GetSwapchainImagesKHR(d.handle, handle)
	if err != nil {
		vk.DestroySwapchainKHR(d.handle, handle)
		return nil, err
	}

	sc := &Swapchain{device: d, handle: handle, surface: surface}
	for _, img := range images {
		viewInfo := vk.ImageViewCreateInfo{
			SType:    vk.StructureTypeImageViewCreateInfo,
			Image:    img,
			ViewType: 1, // VK_IMAGE_VIEW_TYPE_2D
			Format:   pixelFormatToVk(desc.Format),
			SubresourceRange: vk.ImageSubresourceRange{
				AspectMask: 0x0001, // COLOR
				LevelCount: 1,
				LayerCount: 1,
			},
		}
		viewHandle, err := vk.CreateImageView(d.handle, &viewInfo)
		if err != nil {
			sc.Destroy()
			return nil, err
		}
		sc.colorViews = append(sc.colorViews, &TextureView{device: d, handle: viewHandle})
	}

	if desc.HasDepth {
		depthDesc := types.TextureDesc{
			Format:  desc.DepthFormat,
			Size:    types.Dim3D{Width: desc.Width, Height: desc.Height, Depth: 1},
			Levels:  1,
			Samples: 1,
			Binding: types.TextureDepthStencilAttachment,
		}
		depthTex, err := d.NewTexture(&depthDesc)
		if err != nil {
			sc.Destroy()
			return nil, err
		}
		depthView, err := depthTex.NewView(types.TextureViewDesc{Type: types.View2D, LevelCount: 1})
		if err != nil {
			depthTex.Destroy()
			sc.Destroy()
			return nil, err
		}
		sc.depthTex = depthTex.(*Texture)
		sc.depthView = depthView.(*TextureView)
	}

	return sc, nil
}

func (s *Swapchain) ImageCount() int { return len(s.colorViews) }

func (s *Swapchain) ImageView(index int) native.TextureView { return s.colorViews[index] }

func (s *Swapchain) DepthView(index int) native.TextureView {
	if s.depthView == nil {
		return nil
	}
	return s.depthView
}

func (s *Swapchain) AcquireNext(available native.BinarySemaphore) (int, bool, error) {
	const noTimeout = ^uint64(0)
	index, res, err := vk.AcquireNextImageKHR(s.device.handle, s.handle, noTimeout, available.(*BinarySemaphore).handle)
	if err != nil {
		return 0, false, err
	}
	if res != vk.ResultSuccess && res != vk.ResultSuboptimalKHR {
		return 0, false, res.Err("vkAcquireNextImageKHR")
	}
	return int(index), res == vk.ResultSuboptimalKHR, nil
}

func (s *Swapchain) Destroy() {
	if s.depthView != nil {
		s.depthView.Destroy()
	}
	if s.depthTex != nil {
		s.depthTex.Destroy()
	}
	for _, v := range s.colorViews {
		vk.DestroyImageView(s.device.handle, v.handle)
	}
	vk.DestroySwapchainKHR(s.device.handle, s.handle)
}
