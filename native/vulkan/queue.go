// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"unsafe"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/native/vulkan/vk"
)

// QueueFamily holds the single VkQueue this engine opens per family
// (one queue per family is all GraphicsDevice ever requests; see
// NewDevice).
type QueueFamily struct {
	device *Device
	index  uint32
	queue  *Queue
}

func (f *QueueFamily) QueueCount() int          { return 1 }
func (f *QueueFamily) Queue(int) native.Queue   { return f.queue }

// Queue wraps a VkQueue and itself accumulates the pending
// waits/signals that gpu.DeviceQueue forwards to it; Submit turns them
// into a VkSubmitInfo with a chained VkTimelineSemaphoreSubmitInfo.
type Queue struct {
	device *Device
	handle uint64

	waitSems   []uint64
	waitStages []uint32
	waitVals   []uint64
	sigSems    []uint64
	sigVals    []uint64
}

func (q *Queue) AppendWait(w native.SemWait) {
	if w.Fence != nil {
		q.waitSems = append(q.waitSems, w.Fence.(*Fence).handle)
		q.waitVals = append(q.waitVals, w.Value)
	} else {
		q.waitSems = append(q.waitSems, w.Binary.(*BinarySemaphore).handle)
		q.waitVals = append(q.waitVals, 0)
	}
	q.waitStages = append(q.waitStages, w.StageMask)
}

func (q *Queue) AppendSignal(s native.SemSignal) {
	if s.Fence != nil {
		q.sigSems = append(q.sigSems, s.Fence.(*Fence).handle)
		q.sigVals = append(q.sigVals, s.Value)
	} else {
		q.sigSems = append(q.sigSems, s.Binary.(*BinarySemaphore).handle)
		q.sigVals = append(q.sigVals, 0)
	}
}

// Submit builds one VkSubmitInfo from the pending wait/signal lists
// plus cb, chains a VkTimelineSemaphoreSubmitInfo carrying their
// values, submits, and clears the pending lists.
func (q *Queue) Submit(cb native.CmdBuffer) error {
	cbHandle := cb.(*CmdBuffer).handle

	timeline := vk.TimelineSemaphoreSubmitInfo{
		SType:                     vk.StructureTypeTimelineSemaphoreSubmitInfo,
		WaitSemaphoreValueCount:   uint32(len(q.waitVals)),
		SignalSemaphoreValueCount: uint32(len(q.sigVals)),
	}
	if len(q.waitVals) > 0 {
		timeline.PWaitSemaphoreValues = unsafe.Pointer(&q.waitVals[0])
	}
	if len(q.sigVals) > 0 {
		timeline.PSignalSemaphoreValues = unsafe.Pointer(&q.sigVals[0])
	}

	info := vk.SubmitInfo{
		SType:                vk.StructureTypeSubmitInfo,
		PNext:                unsafe.Pointer(&timeline),
		WaitSemaphoreCount:   uint32(len(q.waitSems)),
		CommandBufferCount:   1,
		PCommandBuffers:      unsafe.Pointer(&cbHandle),
		SignalSemaphoreCount: uint32(len(q.sigSems)),
	}
	if len(q.waitSems) > 0 {
		info.PWaitSemaphores = unsafe.Pointer(&q.waitSems[0])
		info.PWaitDstStageMask = unsafe.Pointer(&q.waitStages[0])
	}
	if len(q.sigSems) > 0 {
		info.PSignalSemaphores = unsafe.Pointer(&q.sigSems[0])
	}

	err := vk.QueueSubmit(q.handle, &info, 0)

	q.waitSems, q.waitStages, q.waitVals = nil, nil, nil
	q.sigSems, q.sigVals = nil, nil
	return err
}

// Present wraps vkQueuePresentKHR, waiting on the single binary
// semaphore the engine's SwapChain signals at EndFrame.
func (q *Queue) Present(sc native.Swapchain, imageIndex int, wait native.BinarySemaphore) error {
	scHandle := sc.(*Swapchain).handle
	idx := uint32(imageIndex)
	waitHandle := wait.(*BinarySemaphore).handle

	info := vk.PresentInfoKHR{
		SType:              vk.StructureTypePresentInfoKHR,
		WaitSemaphoreCount: 1,
		PWaitSemaphores:    unsafe.Pointer(&waitHandle),
		SwapchainCount:     1,
		PSwapchains:        unsafe.Pointer(&scHandle),
		PImageIndices:      unsafe.Pointer(&idx),
	}
	_, err := vk.QueuePresentKHR(q.handle, &info)
	return err
}

func (q *Queue) WaitIdle() error { return vk.QueueWaitIdle(q.handle) }
