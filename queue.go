// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import "github.com/vulkangpu/gpu/native"

// DeviceQueueFamily holds the DeviceQueues sharing one operation-
// capability mask.
type DeviceQueueFamily struct {
	index  int
	queues []*DeviceQueue
}

// Queue returns the i'th queue in the family.
func (f *DeviceQueueFamily) Queue(i int) *DeviceQueue { return f.queues[i] }

// Count returns the number of queues in the family.
func (f *DeviceQueueFamily) Count() int { return len(f.queues) }

// DeviceQueue is a thin wrapper over a native GPU submission queue.
// It accumulates pending wait/signal semaphores and values across
// calls until Submit, which attaches all of them to one submission
// and clears the pending lists atomically.
type DeviceQueue struct {
	nat native.Queue
}

func newDeviceQueue(nat native.Queue) *DeviceQueue {
	return &DeviceQueue{nat: nat}
}

// AppendWaitFence stages a GPU-side wait on fence reaching value,
// consumed by the next Submit call.
func (q *DeviceQueue) AppendWaitFence(fence *TimelineFence, value uint64) {
	q.nat.AppendWait(native.SemWait{Fence: fence.nat, Value: value})
}

// AppendWaitBinary stages a GPU-side wait on a binary semaphore,
// consumed by the next Submit call.
func (q *DeviceQueue) AppendWaitBinary(sem native.BinarySemaphore, stageMask uint32) {
	q.nat.AppendWait(native.SemWait{Binary: sem, StageMask: stageMask})
}

// AppendSignalFence stages a GPU-side signal of fence to value,
// consumed by the next Submit call.
func (q *DeviceQueue) AppendSignalFence(fence *TimelineFence, value uint64) {
	q.nat.AppendSignal(native.SemSignal{Fence: fence.nat, Value: value})
}

// AppendSignalBinary stages a GPU-side signal of a binary semaphore,
// consumed by the next Submit call.
func (q *DeviceQueue) AppendSignalBinary(sem native.BinarySemaphore) {
	q.nat.AppendSignal(native.SemSignal{Binary: sem})
}

// submit builds one submission from the command buffer's strong-ref
// set still in force, all pending waits, and all pending signals plus
// the command buffer's own completion fence bumped to expected+1,
// then clears the pending lists.
func (q *DeviceQueue) submit(cb *CommandBuffer) error {
	expected := cb.fenceExpected + 1
	q.AppendSignalFence(cb.fence, expected)
	if err := q.nat.Submit(cb.nat); err != nil {
		return newErr(External, "DeviceQueue.Submit", err)
	}
	cb.fenceExpected = expected
	return nil
}

// WaitIdle blocks until the queue has drained all submitted work.
func (q *DeviceQueue) WaitIdle() error {
	if err := q.nat.WaitIdle(); err != nil {
		return newErr(External, "DeviceQueue.WaitIdle", err)
	}
	return nil
}
