// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

type vertexBinding struct {
	buffer *Buffer
	offset int64
}

type indexBinding struct {
	buffer *Buffer
	offset int64
	format types.IndexFmt
}

type heapBinding struct {
	heap *ResourceHeap
}

// DeviceContext is the command-recording engine: a
// single-producer sequence of draw/copy/transition calls that lazily
// materializes render-pass, pipeline, vertex/index-buffer, and
// resource-heap state just before each draw.
//
// Every pending flag starts up-to-date (true); a Set/Bind call clears
// the matching flag, and the matching Commit* routine sets it again
// once the native bind has been reissued against the current command
// buffer.
type DeviceContext struct {
	device *GraphicsDevice
	pool   *CommandPool
	queue  *DeviceQueue
	cmd    *CommandBuffer

	// lastFence/lastSubmitted identify the most recent Flush: the
	// completion fence of the command buffer it submitted and the
	// value that fence reaches when the GPU finishes it. SwapChain
	// frame pacing waits on this pair.
	lastFence     *TimelineFence
	lastSubmitted uint64

	nullVertexBuffer *Buffer

	transitionPolicy types.StateTransition

	renderPassUpToDate    bool
	pipelineUpToDate      bool
	vertexBuffersUpToDate bool
	indexBufferUpToDate   bool
	resourceHeapUpToDate  bool

	pendingColors []*TextureView
	pendingDepth  *TextureView
	pendingPass   *RenderPass
	pendingFB     *Framebuffer

	pipeline *GraphicsPipeline

	vertexBindings []vertexBinding
	index          indexBinding
	heaps          map[int]heapBinding
}

func newDeviceContext(device *GraphicsDevice, pool *CommandPool, queue *DeviceQueue, nullVB *Buffer) (*DeviceContext, error) {
	ctx := &DeviceContext{
		device:           device,
		pool:             pool,
		queue:            queue,
		nullVertexBuffer: nullVB,
		transitionPolicy: types.Transit,
		heaps:            make(map[int]heapBinding),
	}
	ctx.markAllUpToDate()

	cmd, err := pool.Acquire()
	if err != nil {
		return nil, err
	}
	if err := cmd.BeginRecording(); err != nil {
		return nil, err
	}
	ctx.cmd = cmd
	return ctx, nil
}

func (ctx *DeviceContext) markAllUpToDate() {
	ctx.renderPassUpToDate = true
	ctx.pipelineUpToDate = true
	ctx.vertexBuffersUpToDate = true
	ctx.indexBufferUpToDate = true
	ctx.resourceHeapUpToDate = true
}

// markAllDirty forces every Commit* routine to re-issue its native
// bind. Used after Flush swaps in a fresh command buffer: the new
// buffer has never seen any of the context's bindings, so the prior
// up-to-date state does not describe it.
func (ctx *DeviceContext) markAllDirty() {
	ctx.renderPassUpToDate = false
	ctx.pipelineUpToDate = false
	ctx.vertexBuffersUpToDate = false
	ctx.indexBufferUpToDate = false
	ctx.resourceHeapUpToDate = false
}

// SetTransitionPolicy selects whether resource-heap and render-target
// binds auto-insert barriers (Transit, the default) or leave state
// management to the caller (Explicit).
func (ctx *DeviceContext) SetTransitionPolicy(p types.StateTransition) {
	ctx.transitionPolicy = p
}

// BindPipeline stages pipeline for the next CommitPipeline.
func (ctx *DeviceContext) BindPipeline(p *GraphicsPipeline) {
	if ctx.pipeline == p {
		return
	}
	ctx.pipeline = p
	ctx.pipelineUpToDate = false
}

// BindVertexBuffers stages vertex-buffer bindings for consecutive
// slots starting at start. offsets may be nil (all zero); otherwise
// it must be the same length as bufs.
func (ctx *DeviceContext) BindVertexBuffers(start int, bufs []*Buffer, offsets []int64) error {
	if offsets != nil && len(offsets) != len(bufs) {
		return newErr(InvalidArgument, "DeviceContext.BindVertexBuffers", nil)
	}
	need := start + len(bufs)
	if need > len(ctx.vertexBindings) {
		grown := make([]vertexBinding, need)
		copy(grown, ctx.vertexBindings)
		ctx.vertexBindings = grown
	}
	for i, buf := range bufs {
		off := int64(0)
		if offsets != nil {
			off = offsets[i]
		}
		ctx.vertexBindings[start+i] = vertexBinding{buffer: buf, offset: off}
	}
	ctx.vertexBuffersUpToDate = false
	return nil
}

// BindIndexBuffer stages the index-buffer binding.
func (ctx *DeviceContext) BindIndexBuffer(buf *Buffer, offset int64, format types.IndexFmt) {
	ctx.index = indexBinding{buffer: buf, offset: offset, format: format}
	ctx.indexBufferUpToDate = false
}

// BindResourceHeap stages heap at setIndex.
func (ctx *DeviceContext) BindResourceHeap(setIndex int, heap *ResourceHeap) {
	ctx.heaps[setIndex] = heapBinding{heap: heap}
	ctx.resourceHeapUpToDate = false
}

// SetRenderTarget resolves the Framebuffer for the given target set
// and stages it as the pending render pass. On transition failure
// the previously recorded target set is restored and the error is
// returned.
func (ctx *DeviceContext) SetRenderTarget(colors []*TextureView, depth *TextureView) error {
	fb, err := ctx.device.framebuffers.Get(colors, depth)
	if err != nil {
		return err
	}

	prevColors, prevDepth, prevPass, prevFB := ctx.pendingColors, ctx.pendingDepth, ctx.pendingPass, ctx.pendingFB

	ctx.pendingColors = colors
	ctx.pendingDepth = depth
	ctx.pendingPass = fb.pass
	ctx.pendingFB = fb
	ctx.renderPassUpToDate = false

	if ctx.transitionPolicy == types.Transit {
		for _, v := range colors {
			if err := ctx.TransitTextureState(v.texture, types.StateRenderTarget, v.baseLevel, v.levels, true); err != nil {
				ctx.pendingColors, ctx.pendingDepth, ctx.pendingPass, ctx.pendingFB = prevColors, prevDepth, prevPass, prevFB
				return err
			}
		}
		if depth != nil {
			if err := ctx.TransitTextureState(depth.texture, types.StateDepthStencilWrite, depth.baseLevel, depth.levels, true); err != nil {
				ctx.pendingColors, ctx.pendingDepth, ctx.pendingPass, ctx.pendingFB = prevColors, prevDepth, prevPass, prevFB
				return err
			}
		}
	}
	return nil
}

// SetViewport overrides the viewport CommitRenderPass would otherwise
// derive from the framebuffer's first attachment. The override lasts
// until the next CommitRenderPass re-materializes the render pass.
func (ctx *DeviceContext) SetViewport(vp types.Viewport) {
	ctx.cmd.nat.SetViewport([]types.Viewport{vp})
}

// SetScissorRectangle overrides the scissor rectangle CommitRenderPass
// would otherwise derive from the framebuffer's first attachment.
func (ctx *DeviceContext) SetScissorRectangle(sc types.Scissor) {
	ctx.cmd.nat.SetScissor([]types.Scissor{sc})
}

// AppendSignalFence stages a GPU-side signal on this context's queue,
// attached at the next Flush's Submit.
func (ctx *DeviceContext) AppendSignalFence(fence *TimelineFence, value uint64) {
	ctx.queue.AppendSignalFence(fence, value)
}

// AppendWaitFence stages a GPU-side wait on this context's queue,
// attached at the next Flush's Submit.
func (ctx *DeviceContext) AppendWaitFence(fence *TimelineFence, value uint64, stageMask uint32) {
	ctx.queue.nat.AppendWait(native.SemWait{Fence: fence.nat, Value: value, StageMask: stageMask})
}

// CopyBuffer records a device-side copy from src to dst, transitioning
// both ends when the context's transition policy is Transit.
func (ctx *DeviceContext) CopyBuffer(src *Buffer, srcOff int64, dst *Buffer, dstOff int64, size int64) error {
	if ctx.transitionPolicy == types.Transit {
		if err := ctx.TransitBufferState(src, types.StateTransferSrc, true); err != nil {
			return err
		}
		if err := ctx.TransitBufferState(dst, types.StateTransferDst, true); err != nil {
			return err
		}
	}
	ctx.cmd.AddResourceReference(src)
	ctx.cmd.AddResourceReference(dst)
	ctx.cmd.nat.CopyBuffer(src.nat, srcOff, dst.nat, dstOff, size)
	return nil
}

// CopyBufferToTexture records a device-side copy from src into one
// mip level/array layer of dst, transitioning both ends when the
// context's transition policy is Transit.
func (ctx *DeviceContext) CopyBufferToTexture(src *Buffer, srcOff int64, dst *Texture, layer, level int, off types.Off3D, size types.Dim3D) error {
	if ctx.transitionPolicy == types.Transit {
		if err := ctx.TransitBufferState(src, types.StateTransferSrc, true); err != nil {
			return err
		}
		if err := ctx.TransitTextureState(dst, types.StateTransferDst, level, 1, true); err != nil {
			return err
		}
	}
	ctx.cmd.AddResourceReference(src)
	ctx.cmd.AddResourceReference(dst)
	ctx.cmd.nat.CopyBufferToTexture(src.nat, srcOff, dst.nat, layer, level, off, size)
	return nil
}

// CommitRenderPass materializes the pending render pass/framebuffer
// pair if it is not already current.
func (ctx *DeviceContext) CommitRenderPass() error {
	if ctx.renderPassUpToDate {
		return nil
	}
	if ctx.pendingPass == nil || ctx.pendingFB == nil {
		return newErr(InvalidOperation, "DeviceContext.CommitRenderPass", nil)
	}

	clear := make([]types.ClearValue, len(ctx.pendingColors))
	if ctx.pendingDepth != nil {
		clear = append(clear, types.ClearValue{})
	}
	ctx.cmd.beginRenderPass(ctx.pendingPass, ctx.pendingFB, clear)

	vp := types.Viewport{Width: float32(ctx.pendingFB.width), Height: float32(ctx.pendingFB.height), MaxDepth: 1}
	sc := types.Scissor{Width: ctx.pendingFB.width, Height: ctx.pendingFB.height}
	ctx.cmd.nat.SetViewport([]types.Viewport{vp})
	ctx.cmd.nat.SetScissor([]types.Scissor{sc})

	ctx.renderPassUpToDate = true
	return nil
}

// CommitPipeline binds the staged pipeline if it is not already
// current.
func (ctx *DeviceContext) CommitPipeline() error {
	if ctx.pipeline == nil {
		return newErr(InvalidOperation, "DeviceContext.CommitPipeline", nil)
	}
	if ctx.pipelineUpToDate {
		return nil
	}
	ctx.cmd.AddResourceReference(ctx.pipeline)
	ctx.cmd.nat.BindPipeline(ctx.pipeline.nat)
	ctx.pipelineUpToDate = true
	return nil
}

// CommitVertexBuffers binds every staged vertex-buffer slot,
// substituting the device-owned null vertex buffer for any unset slot.
func (ctx *DeviceContext) CommitVertexBuffers() error {
	if ctx.vertexBuffersUpToDate {
		return nil
	}
	n := len(ctx.vertexBindings)
	bufs := make([]native.Buffer, n)
	offsets := make([]int64, n)
	for i, b := range ctx.vertexBindings {
		buf := b.buffer
		off := b.offset
		if buf == nil {
			buf = ctx.nullVertexBuffer
			off = 0
		}
		ctx.cmd.AddResourceReference(buf)
		bufs[i] = buf.nat
		offsets[i] = off
	}
	ctx.cmd.nat.BindVertexBuffers(0, bufs, offsets)
	ctx.vertexBuffersUpToDate = true
	return nil
}

// CommitIndexBuffer binds the staged index buffer.
func (ctx *DeviceContext) CommitIndexBuffer() error {
	if ctx.index.buffer == nil {
		return newErr(InvalidOperation, "DeviceContext.CommitIndexBuffer", nil)
	}
	if ctx.indexBufferUpToDate {
		return nil
	}
	ctx.cmd.AddResourceReference(ctx.index.buffer)
	ctx.cmd.nat.BindIndexBuffer(ctx.index.buffer.nat, ctx.index.offset, ctx.index.format)
	ctx.indexBufferUpToDate = true
	return nil
}

// CommitResourceHeap prepares and binds every staged resource heap.
func (ctx *DeviceContext) CommitResourceHeap() error {
	if ctx.resourceHeapUpToDate {
		return nil
	}
	for setIndex, b := range ctx.heaps {
		if b.heap == nil {
			continue
		}
		ctx.cmd.AddResourceReference(b.heap)
		group, err := b.heap.PrepareBinding(ctx, ctx.transitionPolicy)
		if err != nil {
			return err
		}
		ctx.cmd.nat.BindDescriptorSet(setIndex, group.set)
	}
	ctx.resourceHeapUpToDate = true
	return nil
}

// PreDraw performs every commit a non-indexed draw needs, in the
// order that draws require: render-pass last, since barrier
// insertion while committing the resource heap may need to end an
// active render pass.
func (ctx *DeviceContext) PreDraw() error {
	if err := ctx.CommitPipeline(); err != nil {
		return err
	}
	if err := ctx.CommitVertexBuffers(); err != nil {
		return err
	}
	if err := ctx.CommitResourceHeap(); err != nil {
		return err
	}
	return ctx.CommitRenderPass()
}

// PreDrawIndexed is PreDraw plus CommitIndexBuffer.
func (ctx *DeviceContext) PreDrawIndexed() error {
	if err := ctx.PreDraw(); err != nil {
		return err
	}
	return ctx.CommitIndexBuffer()
}

// Draw records a non-indexed draw call.
func (ctx *DeviceContext) Draw(vertexCount, instanceCount, firstVertex, firstInstance int) error {
	if err := ctx.PreDraw(); err != nil {
		return err
	}
	ctx.cmd.nat.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
	return nil
}

// DrawIndexed records an indexed draw call.
func (ctx *DeviceContext) DrawIndexed(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance int) error {
	if err := ctx.PreDrawIndexed(); err != nil {
		return err
	}
	ctx.cmd.nat.DrawIndexed(indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
	return nil
}

// TransitTextureState transitions levels [baseLevel, baseLevel+levelCount)
// of tex from their currently recorded state to target, skipping any
// level already at target.
func (ctx *DeviceContext) TransitTextureState(tex *Texture, target types.ResourceState, baseLevel, levelCount int, recordState bool) error {
	var barriers []native.Barrier
	for level := baseLevel; level < baseLevel+levelCount; level++ {
		old := tex.State(level)
		if old == target {
			continue
		}
		src, dst := masksFor(old), masksFor(target)
		barriers = append(barriers, native.Barrier{
			Texture:    tex.nat,
			BaseLevel:  level,
			LevelCount: 1,
			SrcStage:   src.stage, DstStage: dst.stage,
			SrcAccess: src.access, DstAccess: dst.access,
			OldLayout: src.layout, NewLayout: dst.layout,
		})
		if recordState {
			tex.setState(level, target)
		}
	}
	if len(barriers) == 0 {
		return nil
	}
	ctx.endActiveRenderPassForBarrier()
	ctx.cmd.AddResourceReference(tex)
	ctx.cmd.nat.PipelineBarrier(barriers)
	return nil
}

// TransitBufferState transitions buf to target, skipping no-op and
// pure read-to-read/write-to-write transitions.
func (ctx *DeviceContext) TransitBufferState(buf *Buffer, target types.ResourceState, recordState bool) error {
	old := buf.state
	if old == target {
		return nil
	}
	if old.IsRead() == target.IsRead() {
		if recordState {
			buf.state = target
		}
		return nil
	}

	src, dst := masksFor(old), masksFor(target)
	barrier := native.Barrier{
		Buffer:    buf.nat,
		SrcStage:  src.stage, DstStage: dst.stage,
		SrcAccess: src.access, DstAccess: dst.access,
	}
	if recordState {
		buf.state = target
	}

	ctx.endActiveRenderPassForBarrier()
	ctx.cmd.AddResourceReference(buf)
	ctx.cmd.nat.PipelineBarrier([]native.Barrier{barrier})
	return nil
}

// endActiveRenderPassForBarrier ends the currently active render pass
// (if any) before inserting a barrier, marking render-pass dirty so
// the next draw re-materializes it.
func (ctx *DeviceContext) endActiveRenderPassForBarrier() {
	if ctx.cmd.passActive {
		ctx.cmd.endRenderPass()
		ctx.renderPassUpToDate = false
	}
}

// ClearRenderTarget clears view, materializing the active render pass
// if view is part of the pending target set, or else transitioning
// and clearing outside any render pass.
func (ctx *DeviceContext) ClearRenderTarget(view *TextureView, color [4]float32) error {
	if slot := ctx.colorSlot(view); slot >= 0 {
		if err := ctx.CommitRenderPass(); err != nil {
			return err
		}
		ctx.cmd.nat.ClearColorAttachment(slot, color)
		return nil
	}

	if ctx.transitionPolicy == types.Transit {
		if err := ctx.TransitTextureState(view.texture, types.StateTransferDst, view.baseLevel, view.levels, true); err != nil {
			return err
		}
	}
	ctx.cmd.AddResourceReference(view.texture)
	ctx.cmd.nat.ClearColorImage(view.texture.nat, color)
	return nil
}

// ClearDepthStencilView clears view within the active render pass. It
// requires view to be the pending depth attachment: there is no
// native entry point to clear a depth image outside a render pass.
func (ctx *DeviceContext) ClearDepthStencilView(view *TextureView, depth float32, stencil uint32) error {
	if ctx.pendingDepth != view {
		return newErr(InvalidOperation, "DeviceContext.ClearDepthStencilView", nil)
	}
	if err := ctx.CommitRenderPass(); err != nil {
		return err
	}
	ctx.cmd.nat.ClearDepthStencilAttachment(depth, stencil)
	return nil
}

func (ctx *DeviceContext) colorSlot(view *TextureView) int {
	for i, v := range ctx.pendingColors {
		if v == view {
			return i
		}
	}
	return -1
}

// MapBuffer maps buf for host access according to access/typ.
// Write+Discard allocates a transient staging buffer rather than
// mapping buf directly.
func (ctx *DeviceContext) MapBuffer(buf *Buffer, access types.MapAccess, typ types.MapType) ([]byte, error) {
	if buf.mapped != nil {
		return nil, newErr(InvalidOperation, "DeviceContext.MapBuffer", nil)
	}
	if buf.desc.Usage == types.Immutable {
		return nil, newErr(InvalidArgument, "DeviceContext.MapBuffer", nil)
	}

	switch {
	case access == types.MapRead:
		if typ != types.MapOverwrite {
			return nil, newErr(InvalidArgument, "DeviceContext.MapBuffer", nil)
		}
		buf.nat.Invalidate(0, buf.Cap())
		buf.mapped = &mapGuard{access: access, typ: typ}
		return buf.nat.Bytes(), nil

	case access == types.MapWrite && typ == types.MapOverwrite:
		buf.mapped = &mapGuard{access: access, typ: typ}
		return buf.nat.Bytes(), nil

	case access == types.MapWrite && typ == types.MapDiscard:
		staging, err := ctx.device.CreateBuffer(&types.BufferDesc{
			Label:   "staging",
			Size:    buf.Cap(),
			Binding: types.BufferTransferSrc,
			Usage:   types.StagingSource,
		}, nil)
		if err != nil {
			return nil, err
		}
		buf.mapped = &mapGuard{access: access, typ: typ, staging: staging}
		return staging.nat.Bytes(), nil

	default:
		return nil, newErr(InvalidArgument, "DeviceContext.MapBuffer", nil)
	}
}

// UnmapBuffer releases the mapping established by MapBuffer, flushing
// and (for Write+Discard) issuing the staging-to-real copy.
func (ctx *DeviceContext) UnmapBuffer(buf *Buffer) error {
	g := buf.mapped
	if g == nil {
		return newErr(InvalidOperation, "DeviceContext.UnmapBuffer", nil)
	}

	switch {
	case g.access == types.MapWrite && g.typ == types.MapOverwrite:
		buf.nat.Flush(0, buf.Cap())

	case g.access == types.MapWrite && g.typ == types.MapDiscard:
		g.staging.nat.Flush(0, g.staging.Cap())
		if err := ctx.TransitBufferState(g.staging, types.StateTransferSrc, true); err != nil {
			return err
		}
		if err := ctx.TransitBufferState(buf, types.StateTransferDst, true); err != nil {
			return err
		}
		ctx.cmd.AddResourceReference(g.staging)
		ctx.cmd.AddResourceReference(buf)
		ctx.cmd.nat.CopyBuffer(g.staging.nat, 0, buf.nat, 0, buf.Cap())
		// g.staging is kept alive by the command buffer's strong-ref
		// set until the copy's completion fence is satisfied; it is
		// simply dropped here rather than explicitly destroyed.
	}

	buf.mapped = nil
	return nil
}

// GenerateMips downscales tex's base level into every subsequent mip
// by successive 2x blits.
func (ctx *DeviceContext) GenerateMips(tex *Texture) error {
	levels := tex.desc.Levels
	for i := 1; i < levels; i++ {
		srcLevel := i - 1
		if err := ctx.TransitTextureState(tex, types.StateTransferSrc, srcLevel, 1, true); err != nil {
			return err
		}
		if err := ctx.TransitTextureState(tex, types.StateTransferDst, i, 1, true); err != nil {
			return err
		}

		srcSize := types.Dim3D{
			Width:  maxInt(1, tex.desc.Size.Width>>uint(srcLevel)),
			Height: maxInt(1, tex.desc.Size.Height>>uint(srcLevel)),
			Depth:  1,
		}
		dstSize := types.Dim3D{
			Width:  maxInt(1, tex.desc.Size.Width>>uint(i)),
			Height: maxInt(1, tex.desc.Size.Height>>uint(i)),
			Depth:  1,
		}
		ctx.cmd.AddResourceReference(tex)
		ctx.cmd.nat.BlitImage(tex.nat, srcLevel, tex.nat, i, srcSize, dstSize)
	}
	return ctx.TransitTextureState(tex, types.StateTransferSrc, levels-1, 1, true)
}

// Flush submits all recorded commands and begins a fresh recording.
// A fresh command buffer is acquired before
// anything else, so a submission failure still leaves the context
// able to record.
func (ctx *DeviceContext) Flush() error {
	fresh, err := ctx.pool.Acquire()
	if err != nil {
		return err
	}

	old := ctx.cmd
	if err := old.EndRecording(); err != nil {
		ctx.pool.Return(fresh)
		return err
	}

	ctx.device.framebuffers.CleanUp()

	if err := ctx.queue.submit(old); err != nil {
		ctx.cmd = fresh
		ctx.markAllDirty()
		if berr := fresh.BeginRecording(); berr != nil {
			return berr
		}
		return err
	}

	ctx.lastFence = old.fence
	ctx.lastSubmitted = old.fenceExpected
	ctx.pool.Return(old)
	ctx.cmd = fresh
	ctx.markAllDirty()
	return fresh.BeginRecording()
}

// WaitQueueIdle blocks until every submission from this context's
// queue has completed.
func (ctx *DeviceContext) WaitQueueIdle() error {
	return ctx.queue.WaitIdle()
}

// Destroy ends recording, waits for the queue to drain, and returns
// the current command buffer to its pool.
func (ctx *DeviceContext) Destroy() {
	ctx.queue.WaitIdle()
	if ctx.cmd != nil {
		ctx.cmd.EndRecording()
		ctx.pool.Return(ctx.cmd)
	}
}
