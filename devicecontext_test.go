// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"bytes"
	"testing"

	"github.com/vulkangpu/gpu/native/fake"
	"github.com/vulkangpu/gpu/types"
)

// newDrawableContext builds a device, context, render-target texture
// view and a matching graphics pipeline ready for Draw/DrawIndexed.
func newDrawableContext(t *testing.T) (*GraphicsDevice, *DeviceContext, *TextureView, *GraphicsPipeline) {
	t.Helper()
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	tex, err := d.CreateTexture(&types.TextureDesc{
		Format:  types.RGBA8Unorm,
		Size:    types.Dim3D{Width: 64, Height: 64, Depth: 1},
		Levels:  1,
		Samples: 1,
		Binding: types.TextureRenderTarget,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	view, err := d.CreateTextureView(tex, types.TextureViewDesc{Type: types.View2D, LevelCount: 1})
	if err != nil {
		t.Fatalf("CreateTextureView: %v", err)
	}

	passKey := types.RenderPassKey{Samples: 1, Colors: []types.PixelFmt{types.RGBA8Unorm}}
	pipeline, err := d.CreateGraphicsPipeline(&types.GraphicsPipelineDesc{
		VertexCode:   []byte{1, 2, 3, 4},
		FragmentCode: []byte{5, 6, 7, 8},
		Topology:     types.TopologyTriangleList,
		Pass:         passKey,
	})
	if err != nil {
		t.Fatalf("CreateGraphicsPipeline: %v", err)
	}

	if err := ctx.SetRenderTarget([]*TextureView{view}, nil); err != nil {
		t.Fatalf("SetRenderTarget: %v", err)
	}
	ctx.BindPipeline(pipeline)

	return d, ctx, view, pipeline
}

func fakeCmd(ctx *DeviceContext) *fake.CmdBuffer {
	return ctx.cmd.nat.(*fake.CmdBuffer)
}

func TestDraw_CommitsRenderPassOncePerFlush(t *testing.T) {
	_, ctx, _, pipeline := newDrawableContext(t)

	if err := ctx.Draw(3, 1, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := ctx.Draw(3, 1, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	fc := fakeCmd(ctx)
	if fc.DrawCount != 2 {
		t.Errorf("DrawCount = %d, want 2", fc.DrawCount)
	}
	if fc.BeginRenderPassCount != 1 {
		t.Errorf("BeginRenderPassCount = %d, want 1 (render pass should be committed once and reused)", fc.BeginRenderPassCount)
	}
	if fc.BoundPipeline != pipeline.nat {
		t.Error("BoundPipeline does not match the pipeline staged via BindPipeline")
	}
}

func TestDraw_WithoutPipelineFails(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := ctx.Draw(3, 1, 0, 0); !IsKind(err, InvalidOperation) {
		t.Fatalf("Draw without a pipeline: err = %v, want InvalidOperation", err)
	}
}

func TestDrawIndexed(t *testing.T) {
	d, ctx, _, _ := newDrawableContext(t)
	ibuf, err := d.CreateBuffer(&types.BufferDesc{Size: 12, Binding: types.BufferIndex, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	ctx.BindIndexBuffer(ibuf, 0, types.IndexU32)

	if err := ctx.DrawIndexed(3, 1, 0, 0, 0); err != nil {
		t.Fatalf("DrawIndexed: %v", err)
	}
	if fakeCmd(ctx).DrawIndexedCount != 1 {
		t.Errorf("DrawIndexedCount = %d, want 1", fakeCmd(ctx).DrawIndexedCount)
	}
}

func TestBindVertexBuffers(t *testing.T) {
	d, ctx, _, _ := newDrawableContext(t)
	vb, err := d.CreateBuffer(&types.BufferDesc{Size: 36, Binding: types.BufferVertex, Usage: types.Immutable}, make([]byte, 36))
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}

	if err := ctx.BindVertexBuffers(0, []*Buffer{vb}, []int64{0, 0}); !IsKind(err, InvalidArgument) {
		t.Fatalf("BindVertexBuffers with mismatched offsets length: err = %v, want InvalidArgument", err)
	}
	if err := ctx.BindVertexBuffers(0, []*Buffer{vb}, nil); err != nil {
		t.Fatalf("BindVertexBuffers: %v", err)
	}
	if err := ctx.Draw(3, 1, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
}

func TestDrawIndexed_WithoutIndexBufferFails(t *testing.T) {
	_, ctx, _, _ := newDrawableContext(t)
	if err := ctx.DrawIndexed(3, 1, 0, 0, 0); !IsKind(err, InvalidOperation) {
		t.Fatalf("DrawIndexed without index buffer: err = %v, want InvalidOperation", err)
	}
}

func TestTransitTextureState_SkipsNoopAndTracksPerLevel(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	tex, err := d.CreateTexture(&types.TextureDesc{
		Format: types.RGBA8Unorm, Size: types.Dim3D{Width: 16, Height: 16, Depth: 1},
		Levels: 1, Samples: 1, Binding: types.TextureSampled,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}

	if err := ctx.TransitTextureState(tex, types.StateShaderReadOnly, 0, 1, true); err != nil {
		t.Fatalf("TransitTextureState: %v", err)
	}
	if tex.State(0) != types.StateShaderReadOnly {
		t.Errorf("State(0) = %v, want StateShaderReadOnly", tex.State(0))
	}
	if got := fakeCmd(ctx).BarrierCount; got != 1 {
		t.Errorf("BarrierCount = %d, want 1", got)
	}

	// Same target again: no barrier should be recorded.
	if err := ctx.TransitTextureState(tex, types.StateShaderReadOnly, 0, 1, true); err != nil {
		t.Fatalf("TransitTextureState (no-op): %v", err)
	}
	if got := fakeCmd(ctx).BarrierCount; got != 1 {
		t.Errorf("BarrierCount after no-op transition = %d, want 1", got)
	}
}

func TestTransitBufferState_ElidesReadToReadTransitions(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	buf, err := d.CreateBuffer(&types.BufferDesc{Size: 16, Binding: types.BufferVertex, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}

	// StateCommon -> StateVertexBuffer is a real (write-like to read) transition.
	if err := ctx.TransitBufferState(buf, types.StateVertexBuffer, true); err != nil {
		t.Fatalf("TransitBufferState: %v", err)
	}
	if got := fakeCmd(ctx).BarrierCount; got != 1 {
		t.Errorf("BarrierCount = %d, want 1", got)
	}

	// StateVertexBuffer -> StateIndexBuffer is read-to-read: elided, but
	// recorded state still advances.
	if err := ctx.TransitBufferState(buf, types.StateIndexBuffer, true); err != nil {
		t.Fatalf("TransitBufferState: %v", err)
	}
	if got := fakeCmd(ctx).BarrierCount; got != 1 {
		t.Errorf("BarrierCount after read-to-read transition = %d, want unchanged 1", got)
	}
	if buf.State() != types.StateIndexBuffer {
		t.Errorf("State() = %v, want StateIndexBuffer", buf.State())
	}
}

func TestMapBuffer_WriteOverwrite(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	buf, err := d.CreateBuffer(&types.BufferDesc{Size: 4, Binding: types.BufferUniform, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}

	mem, err := ctx.MapBuffer(buf, types.MapWrite, types.MapOverwrite)
	if err != nil {
		t.Fatalf("MapBuffer: %v", err)
	}
	copy(mem, []byte{1, 2, 3, 4})
	if err := ctx.UnmapBuffer(buf); err != nil {
		t.Fatalf("UnmapBuffer: %v", err)
	}

	if !bytes.Equal(buf.nat.(*fake.Buffer).Bytes(), []byte{1, 2, 3, 4}) {
		t.Errorf("buffer contents after unmap = %v, want [1 2 3 4]", buf.nat.(*fake.Buffer).Bytes())
	}
}

func TestMapBuffer_WriteDiscardCopiesStagingIntoReal(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	buf, err := d.CreateBuffer(&types.BufferDesc{Size: 4, Binding: types.BufferUniform, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}

	mem, err := ctx.MapBuffer(buf, types.MapWrite, types.MapDiscard)
	if err != nil {
		t.Fatalf("MapBuffer: %v", err)
	}
	copy(mem, []byte{9, 9, 9, 9})
	if err := ctx.UnmapBuffer(buf); err != nil {
		t.Fatalf("UnmapBuffer: %v", err)
	}

	if !bytes.Equal(buf.nat.(*fake.Buffer).Bytes(), []byte{9, 9, 9, 9}) {
		t.Errorf("buffer contents after discard-unmap = %v, want [9 9 9 9]", buf.nat.(*fake.Buffer).Bytes())
	}
}

func TestMapBuffer_RejectsDoubleMap(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	buf, err := d.CreateBuffer(&types.BufferDesc{Size: 4, Binding: types.BufferUniform, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if _, err := ctx.MapBuffer(buf, types.MapWrite, types.MapOverwrite); err != nil {
		t.Fatalf("first MapBuffer: %v", err)
	}
	if _, err := ctx.MapBuffer(buf, types.MapWrite, types.MapOverwrite); !IsKind(err, InvalidOperation) {
		t.Fatalf("second MapBuffer on already-mapped buffer: err = %v, want InvalidOperation", err)
	}
}

func TestMapBuffer_ReadRequiresOverwrite(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	buf, err := d.CreateBuffer(&types.BufferDesc{Size: 4, Binding: types.BufferUniform, Usage: types.Dynamic}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if _, err := ctx.MapBuffer(buf, types.MapRead, types.MapDiscard); !IsKind(err, InvalidArgument) {
		t.Fatalf("MapRead+MapDiscard: err = %v, want InvalidArgument", err)
	}
}

func TestFlush_ForcesFreshCommandBufferAndRecommit(t *testing.T) {
	_, ctx, _, _ := newDrawableContext(t)

	if err := ctx.Draw(3, 1, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	firstCmd := fakeCmd(ctx)

	if err := ctx.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if fakeCmd(ctx) == firstCmd {
		t.Fatal("Flush should swap in a fresh command buffer")
	}

	if err := ctx.Draw(3, 1, 0, 0); err != nil {
		t.Fatalf("Draw after Flush: %v", err)
	}
	if fakeCmd(ctx).BeginRenderPassCount != 1 {
		t.Errorf("BeginRenderPassCount on fresh buffer = %d, want 1", fakeCmd(ctx).BeginRenderPassCount)
	}
	if fakeCmd(ctx).DrawCount != 1 {
		t.Errorf("DrawCount on fresh buffer = %d, want 1", fakeCmd(ctx).DrawCount)
	}
}

func TestCopyBuffer_TransitionsAndCopiesBytes(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	src, err := d.CreateBuffer(&types.BufferDesc{Size: 4, Binding: types.BufferTransferSrc, Usage: types.StagingSource}, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("CreateBuffer(src): %v", err)
	}
	dst, err := d.CreateBuffer(&types.BufferDesc{Size: 4, Binding: types.BufferTransferDst, Usage: types.Immutable}, nil)
	if err != nil {
		t.Fatalf("CreateBuffer(dst): %v", err)
	}

	if err := ctx.CopyBuffer(src, 0, dst, 0, 4); err != nil {
		t.Fatalf("CopyBuffer: %v", err)
	}
	if !bytes.Equal(dst.nat.(*fake.Buffer).Bytes(), []byte{1, 2, 3, 4}) {
		t.Errorf("dst contents after CopyBuffer = %v, want [1 2 3 4]", dst.nat.(*fake.Buffer).Bytes())
	}
	if dst.State() != types.StateTransferDst {
		t.Errorf("dst.State() = %v, want StateTransferDst", dst.State())
	}
}

func TestSetViewportAndScissor_OverrideWithoutPanicking(t *testing.T) {
	_, ctx, _, _ := newDrawableContext(t)
	ctx.SetViewport(types.Viewport{Width: 32, Height: 32, MaxDepth: 1})
	ctx.SetScissorRectangle(types.Scissor{Width: 32, Height: 32})
	if err := ctx.Draw(3, 1, 0, 0); err != nil {
		t.Fatalf("Draw: %v", err)
	}
}

func TestAppendSignalAndWaitFence_StageOnQueue(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	f, err := d.CreateFence(0)
	if err != nil {
		t.Fatalf("CreateFence: %v", err)
	}
	ctx.AppendSignalFence(f, 1)
	ctx.AppendWaitFence(f, 1, 0)
}

func TestGenerateMips(t *testing.T) {
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	tex, err := d.CreateTexture(&types.TextureDesc{
		Format: types.RGBA8Unorm, Size: types.Dim3D{Width: 64, Height: 64, Depth: 1},
		Levels: 4, Samples: 1, Binding: types.TextureSampled,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if err := ctx.GenerateMips(tex); err != nil {
		t.Fatalf("GenerateMips: %v", err)
	}
	for lvl := 0; lvl < 3; lvl++ {
		if tex.State(lvl) != types.StateTransferSrc {
			t.Errorf("level %d final state = %v, want StateTransferSrc", lvl, tex.State(lvl))
		}
	}
	if tex.State(3) != types.StateTransferSrc {
		t.Errorf("last level state = %v, want StateTransferSrc", tex.State(3))
	}
}
