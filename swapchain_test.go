// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"testing"

	"github.com/vulkangpu/gpu/types"
)

func newTestSwapChain(t *testing.T) (*DeviceContext, *SwapChain) {
	t.Helper()
	d := newTestDevice(t)
	ctx, err := d.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	sc, err := d.CreateSwapChain(ctx, &types.SwapChainDesc{
		Width: 320, Height: 240, Format: types.BGRA8Unorm,
		BackBufferCount: 3, MaxFramesInFlight: 2,
	}, 0)
	if err != nil {
		t.Fatalf("CreateSwapChain: %v", err)
	}
	return ctx, sc
}

func TestSwapChain_ImageCountMatchesBackBufferCount(t *testing.T) {
	_, sc := newTestSwapChain(t)
	if sc.ImageCount() != 3 {
		t.Errorf("ImageCount() = %d, want 3", sc.ImageCount())
	}
}

func TestSwapChain_StartEndFrameLoopStaysInBounds(t *testing.T) {
	ctx, sc := newTestSwapChain(t)

	for i := 0; i < 7; i++ {
		idx, suboptimal, err := sc.StartFrame(ctx)
		if err != nil {
			t.Fatalf("iteration %d: StartFrame: %v", i, err)
		}
		if suboptimal {
			t.Errorf("iteration %d: StartFrame reported suboptimal on the fake backend", i)
		}
		if idx < 0 || idx >= sc.ImageCount() {
			t.Fatalf("iteration %d: imageIndex = %d, out of [0,%d)", i, idx, sc.ImageCount())
		}
		if err := sc.EndFrame(ctx, idx); err != nil {
			t.Fatalf("iteration %d: EndFrame: %v", i, err)
		}
	}
}

func TestSwapChain_ResizeResetsFramePacingState(t *testing.T) {
	ctx, sc := newTestSwapChain(t)

	idx, _, err := sc.StartFrame(ctx)
	if err != nil {
		t.Fatalf("StartFrame: %v", err)
	}
	if err := sc.EndFrame(ctx, idx); err != nil {
		t.Fatalf("EndFrame: %v", err)
	}

	if err := sc.Resize(640, 480); err != nil {
		t.Fatalf("Resize: %v", err)
	}

	if sc.cursor != 0 {
		t.Errorf("cursor after Resize = %d, want 0", sc.cursor)
	}
	for i, f := range sc.frames {
		if f.expected != 0 {
			t.Errorf("frames[%d].expected after Resize = %d, want 0", i, f.expected)
		}
		if f.fence != nil {
			t.Errorf("frames[%d].fence after Resize is non-nil", i)
		}
	}

	// The swap chain must still be usable after a resize.
	idx2, _, err := sc.StartFrame(ctx)
	if err != nil {
		t.Fatalf("StartFrame after Resize: %v", err)
	}
	if err := sc.EndFrame(ctx, idx2); err != nil {
		t.Fatalf("EndFrame after Resize: %v", err)
	}
}

func TestSwapChain_ColorViewAndDepthView(t *testing.T) {
	_, sc := newTestSwapChain(t)
	if sc.ColorView(0) == nil {
		t.Error("ColorView(0) is nil")
	}
	if sc.DepthView(0) != nil {
		t.Error("DepthView(0) should be nil since the swap chain was created without a depth buffer")
	}
}
