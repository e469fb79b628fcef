// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"testing"

	"github.com/vulkangpu/gpu/types"
)

func TestRenderPassCache_EqualButDistinctSliceKeysShareHandle(t *testing.T) {
	d := newTestDevice(t)
	cache := newRenderPassCache(d)

	key1 := types.RenderPassKey{Samples: 4, Colors: []types.PixelFmt{types.RGBA8Unorm, types.BGRA8Unorm}}
	key2 := types.RenderPassKey{Samples: 4, Colors: []types.PixelFmt{types.RGBA8Unorm, types.BGRA8Unorm}}

	rp1, err := cache.Get(key1)
	if err != nil {
		t.Fatalf("Get(key1): %v", err)
	}
	rp2, err := cache.Get(key2)
	if err != nil {
		t.Fatalf("Get(key2): %v", err)
	}
	if rp1 != rp2 {
		t.Error("two render passes requested with an equal key (distinct backing slices) must return the same handle")
	}
}

func TestRenderPassCache_DifferentKeysGetDistinctHandles(t *testing.T) {
	d := newTestDevice(t)
	cache := newRenderPassCache(d)

	rp1, err := cache.Get(types.RenderPassKey{Samples: 1, Colors: []types.PixelFmt{types.RGBA8Unorm}})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	rp2, err := cache.Get(types.RenderPassKey{Samples: 1, Colors: []types.PixelFmt{types.BGRA8Unorm}})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rp1 == rp2 {
		t.Error("render passes with differing color formats must not share a handle")
	}
}

func TestRenderPassCache_HasDepthDistinguishesKeys(t *testing.T) {
	d := newTestDevice(t)
	cache := newRenderPassCache(d)

	withoutDepth, err := cache.Get(types.RenderPassKey{Samples: 1, Colors: []types.PixelFmt{types.RGBA8Unorm}})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	withDepth, err := cache.Get(types.RenderPassKey{
		Samples: 1, Colors: []types.PixelFmt{types.RGBA8Unorm}, HasDepth: true, Depth: types.D32Float,
	})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if withoutDepth == withDepth {
		t.Error("adding a depth attachment must select a different render pass")
	}
}

func TestFramebufferCache_SameViewsReturnSameFramebuffer(t *testing.T) {
	d := newTestDevice(t)
	passes := newRenderPassCache(d)
	cache := newFramebufferCache(d, passes)

	tex, err := d.CreateTexture(&types.TextureDesc{
		Format: types.RGBA8Unorm, Size: types.Dim3D{Width: 16, Height: 16, Depth: 1},
		Levels: 1, Samples: 1, Binding: types.TextureRenderTarget,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	view, err := d.CreateTextureView(tex, types.TextureViewDesc{Type: types.View2D, LevelCount: 1})
	if err != nil {
		t.Fatalf("CreateTextureView: %v", err)
	}

	fb1, err := cache.Get([]*TextureView{view}, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	fb2, err := cache.Get([]*TextureView{view}, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fb1 != fb2 {
		t.Error("requesting the same view set twice should return the cached framebuffer")
	}
}

func TestFramebufferCache_DifferentViewsReturnDifferentFramebuffers(t *testing.T) {
	d := newTestDevice(t)
	passes := newRenderPassCache(d)
	cache := newFramebufferCache(d, passes)

	newView := func() *TextureView {
		tex, err := d.CreateTexture(&types.TextureDesc{
			Format: types.RGBA8Unorm, Size: types.Dim3D{Width: 16, Height: 16, Depth: 1},
			Levels: 1, Samples: 1, Binding: types.TextureRenderTarget,
		})
		if err != nil {
			t.Fatalf("CreateTexture: %v", err)
		}
		v, err := d.CreateTextureView(tex, types.TextureViewDesc{Type: types.View2D, LevelCount: 1})
		if err != nil {
			t.Fatalf("CreateTextureView: %v", err)
		}
		return v
	}

	v1, v2 := newView(), newView()
	fb1, err := cache.Get([]*TextureView{v1}, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	fb2, err := cache.Get([]*TextureView{v2}, nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fb1 == fb2 {
		t.Error("distinct view identities must not share a cached framebuffer")
	}
}
