// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// swapFrame is the per-frame-in-flight state SwapChain cycles
// through: one image-available semaphore, one present-ready
// semaphore, and a reference to the completion fence (plus the value
// it reaches) of the command buffer this frame's Flush submitted.
type swapFrame struct {
	imageAvailable native.BinarySemaphore
	renderFinished native.BinarySemaphore
	fence          *TimelineFence // nil until the slot's first EndFrame
	expected       uint64
}

// SwapChain coordinates presentation with MaxFramesInFlight frames in
// flight. It is driven by exactly one DeviceContext; each frame slot
// holds a reference to the completion fence of the command buffer
// that frame flushed, which StartFrame waits on before reusing the
// slot.
type SwapChain struct {
	device  *GraphicsDevice
	nat     native.Swapchain
	desc    types.SwapChainDesc
	surface uintptr

	frames []swapFrame
	cursor int

	colorViews []*TextureView
	depthViews []*TextureView

	imageInFlightFence []*TimelineFence
	imageInFlightValue []uint64
}

func newSwapChain(device *GraphicsDevice, nat native.Swapchain, desc types.SwapChainDesc, surface uintptr) (*SwapChain, error) {
	maxFrames := desc.MaxFramesInFlight
	if maxFrames <= 0 {
		maxFrames = 2
	}
	sc := &SwapChain{
		device:  device,
		nat:     nat,
		desc:    desc,
		surface: surface,
	}
	if err := sc.buildFrames(maxFrames); err != nil {
		return nil, err
	}
	if err := sc.buildImageViews(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *SwapChain) buildFrames(maxFrames int) error {
	s.frames = make([]swapFrame, maxFrames)
	for i := range s.frames {
		avail, err := s.device.nat.NewBinarySemaphore()
		if err != nil {
			return newErr(OutOfMemory, "SwapChain.buildFrames", err)
		}
		done, err := s.device.nat.NewBinarySemaphore()
		if err != nil {
			return newErr(OutOfMemory, "SwapChain.buildFrames", err)
		}
		s.frames[i] = swapFrame{imageAvailable: avail, renderFinished: done}
	}
	s.cursor = 0
	return nil
}

func (s *SwapChain) buildImageViews() error {
	n := s.nat.ImageCount()
	s.colorViews = make([]*TextureView, n)
	s.depthViews = make([]*TextureView, n)
	s.imageInFlightFence = make([]*TimelineFence, n)
	s.imageInFlightValue = make([]uint64, n)
	for i := 0; i < n; i++ {
		s.colorViews[i] = &TextureView{nat: s.nat.ImageView(i), format: s.desc.Format, width: s.desc.Width, height: s.desc.Height, samples: 1, levels: 1}
		if s.desc.HasDepth {
			s.depthViews[i] = &TextureView{nat: s.nat.DepthView(i), format: s.desc.DepthFormat, width: s.desc.Width, height: s.desc.Height, samples: 1, levels: 1}
		}
	}
	return nil
}

// ImageCount returns the number of back-buffer images.
func (s *SwapChain) ImageCount() int { return len(s.colorViews) }

// ColorView returns the color attachment view for the given image
// index.
func (s *SwapChain) ColorView(index int) *TextureView { return s.colorViews[index] }

// DepthView returns the depth attachment view for the given image
// index, or nil if the swap chain has no depth buffer.
func (s *SwapChain) DepthView(index int) *TextureView { return s.depthViews[index] }

// StartFrame begins the next frame: wait for the frame slot to free
// up, acquire the next image, then append an image-available wait to
// ctx's queue so the eventual submission does not race the
// presentation engine.
func (s *SwapChain) StartFrame(ctx *DeviceContext) (imageIndex int, suboptimal bool, err error) {
	frame := &s.frames[s.cursor]

	if frame.fence != nil {
		if err := frame.fence.Wait(frame.expected); err != nil {
			return 0, false, err
		}
	}

	idx, suboptimal, err := s.nat.AcquireNext(frame.imageAvailable)
	if err != nil {
		return 0, false, newErr(External, "SwapChain.StartFrame", err)
	}

	// Guard reuse of the same image across cursors: a different frame
	// slot may still be rendering into it.
	if s.imageInFlightFence[idx] != nil {
		if err := s.imageInFlightFence[idx].Wait(s.imageInFlightValue[idx]); err != nil {
			return 0, false, err
		}
	}

	ctx.queue.AppendWaitBinary(frame.imageAvailable, stageTopOfPipe)
	return idx, suboptimal, nil
}

// EndFrame flushes ctx, records the flushed command buffer's
// completion fence against both the frame slot and the presented
// image, presents imageIndex, and advances the frame cursor.
func (s *SwapChain) EndFrame(ctx *DeviceContext, imageIndex int) error {
	frame := &s.frames[s.cursor]

	ctx.queue.AppendSignalBinary(frame.renderFinished)
	if err := ctx.Flush(); err != nil {
		return err
	}
	frame.fence = ctx.lastFence
	frame.expected = ctx.lastSubmitted
	s.imageInFlightFence[imageIndex] = ctx.lastFence
	s.imageInFlightValue[imageIndex] = ctx.lastSubmitted

	if err := ctx.queue.nat.Present(s.nat, imageIndex, frame.renderFinished); err != nil {
		return newErr(External, "SwapChain.EndFrame", err)
	}

	s.cursor = (s.cursor + 1) % len(s.frames)
	return nil
}

// Resize waits the device idle, recreates the swap chain at the given
// extent, and resets all per-frame/per-image pacing state. Callers
// invoke this on window resize or when presentation reports the swap
// chain out of date.
func (s *SwapChain) Resize(width, height int) error {
	if err := s.device.WaitIdle(); err != nil {
		return err
	}

	s.desc.Width, s.desc.Height = width, height
	newNat, err := s.device.nat.NewSwapchain(&s.desc, s.surface, s.nat)
	if err != nil {
		return newErr(External, "SwapChain.Resize", err)
	}
	s.nat.Destroy()
	s.nat = newNat

	if err := s.buildImageViews(); err != nil {
		return err
	}
	for i := range s.frames {
		s.frames[i].fence = nil
		s.frames[i].expected = 0
	}
	s.cursor = 0
	return nil
}

// Destroy releases the swap chain and its per-frame semaphores.
func (s *SwapChain) Destroy() {
	for _, f := range s.frames {
		f.imageAvailable.Destroy()
		f.renderFinished.Destroy()
	}
	s.nat.Destroy()
}
