// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// CommandBuffer is the recording primitive. It holds strong
// references to every resource touched during recording until its
// completion fence is satisfied, which is what guarantees those
// resources are not destroyed while the GPU is still reading them.
type CommandBuffer struct {
	nat native.CmdBuffer

	// fence is this buffer's own completion fence; fenceExpected is
	// the value the fence reaches once the GPU has finished the
	// buffer's most recent submission (the buffer's submit count).
	fence         *TimelineFence
	fenceExpected uint64

	recording bool
	refs      []any

	passActive bool
	pass       *RenderPass
	fb         *Framebuffer
}

// IsAvailable reports whether the command buffer's last submission
// (if any) has been completed by the GPU, meaning it is safe to reset
// and reuse.
func (c *CommandBuffer) IsAvailable() bool {
	return c.fence.IsSatisfied(c.fenceExpected)
}

// AddResourceReference records a strong reference to ref, keeping it
// alive at least until the command buffer's completion fence is
// satisfied.
func (c *CommandBuffer) AddResourceReference(ref any) {
	c.refs = append(c.refs, ref)
}

// BeginRecording prepares the command buffer for recording.
func (c *CommandBuffer) BeginRecording() error {
	if c.recording {
		return newErr(InvalidOperation, "CommandBuffer.BeginRecording", nil)
	}
	if err := c.nat.Begin(); err != nil {
		return newErr(External, "CommandBuffer.BeginRecording", err)
	}
	c.recording = true
	return nil
}

// EndRecording ends command recording.
func (c *CommandBuffer) EndRecording() error {
	if !c.recording {
		return newErr(InvalidOperation, "CommandBuffer.EndRecording", nil)
	}
	if c.passActive {
		c.endRenderPass()
	}
	if err := c.nat.End(); err != nil {
		return newErr(External, "CommandBuffer.EndRecording", err)
	}
	c.recording = false
	return nil
}

// Reset discards all recorded commands and drops the last strong
// references held in the reference set.
func (c *CommandBuffer) Reset() error {
	if err := c.nat.Reset(); err != nil {
		return newErr(External, "CommandBuffer.Reset", err)
	}
	c.refs = nil
	c.passActive = false
	c.pass = nil
	c.fb = nil
	c.recording = false
	return nil
}

func (c *CommandBuffer) beginRenderPass(pass *RenderPass, fb *Framebuffer, clear []types.ClearValue) {
	c.AddResourceReference(pass)
	c.AddResourceReference(fb)
	c.nat.BeginRenderPass(pass.nat, fb.nat, clear)
	c.passActive = true
	c.pass = pass
	c.fb = fb
}

func (c *CommandBuffer) endRenderPass() {
	if !c.passActive {
		return
	}
	c.nat.EndRenderPass()
	c.passActive = false
	c.pass = nil
	c.fb = nil
}
