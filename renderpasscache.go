// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"sync"
	"weak"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// RenderPass is a device-child resource keyed only by attachment
// format/sample-count identity; it carries no view refs, so a single
// RenderPass is shared by every Framebuffer with a matching schema.
type RenderPass struct {
	device *GraphicsDevice
	nat    native.RenderPass
	key    types.RenderPassKey
}

// NewFB creates a Framebuffer from this render pass and the given
// attachment views. All framebuffers created from a render pass must
// be destroyed before the render pass itself is.
func (p *RenderPass) NewFB(colors []*TextureView, depth *TextureView, width, height, layers int) (*Framebuffer, error) {
	views := make([]native.TextureView, 0, len(colors)+1)
	for _, v := range colors {
		views = append(views, v.nat)
	}
	if depth != nil {
		views = append(views, depth.nat)
	}
	nat, err := p.device.nat.NewFramebuffer(p.nat, views, width, height, layers)
	if err != nil {
		return nil, newErr(External, "RenderPass.NewFB", err)
	}
	return &Framebuffer{nat: nat, pass: p, colors: append([]*TextureView(nil), colors...), depth: depth, width: width, height: height}, nil
}

// Destroy releases the native render pass.
func (p *RenderPass) Destroy() { p.nat.Destroy() }

// Framebuffer is the concrete attachment set of a render pass. It
// keeps strong references to its attachment views, since framebuffers
// (unlike render passes) are identified by view identity.
type Framebuffer struct {
	nat            native.Framebuffer
	pass           *RenderPass
	colors         []*TextureView
	depth          *TextureView
	width, height  int
}

// Destroy releases the native framebuffer.
func (f *Framebuffer) Destroy() { f.nat.Destroy() }

// RenderPassCache maps {sample-count, color formats, depth format} to
// a render pass object. Two requests with an equal key always return
// the same handle.
type RenderPassCache struct {
	mu     sync.Mutex
	device *GraphicsDevice
	byKey  map[renderPassKeyHash]*RenderPass
}

func newRenderPassCache(device *GraphicsDevice) *RenderPassCache {
	return &RenderPassCache{device: device, byKey: make(map[renderPassKeyHash]*RenderPass)}
}

// renderPassKeyHash is a comparable projection of types.RenderPassKey
// (whose Colors field is a slice, so the struct itself cannot be a
// map key).
type renderPassKeyHash struct {
	samples  int
	depth    types.PixelFmt
	hasDepth bool
	colors   string
}

func hashRenderPassKey(k types.RenderPassKey) renderPassKeyHash {
	b := make([]byte, len(k.Colors)*4)
	for i, f := range k.Colors {
		b[i*4] = byte(f)
		b[i*4+1] = byte(f >> 8)
		b[i*4+2] = byte(f >> 16)
		b[i*4+3] = byte(f >> 24)
	}
	return renderPassKeyHash{
		samples:  k.Samples,
		depth:    k.Depth,
		hasDepth: k.HasDepth,
		colors:   string(b),
	}
}

// Get returns the RenderPass for key, creating and caching it on
// first use.
func (c *RenderPassCache) Get(key types.RenderPassKey) (*RenderPass, error) {
	h := hashRenderPassKey(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	if rp, ok := c.byKey[h]; ok {
		return rp, nil
	}
	nat, err := c.device.nat.NewRenderPass(key)
	if err != nil {
		return nil, newErr(External, "RenderPassCache.Get", err)
	}
	rp := &RenderPass{device: c.device, nat: nat, key: key}
	c.byKey[h] = rp
	return rp, nil
}

// fbCacheEntry is one cached Framebuffer together with weak
// references to the views that were live when it was built, so
// CleanUp can evict it once any of them is collected.
type fbCacheEntry struct {
	colors []weak.Pointer[TextureView]
	depth  weak.Pointer[TextureView]
	hasDepth bool
	fb     *Framebuffer
}

// FramebufferCache maps {attachment view identities, depth view
// identity} to a Framebuffer, internally consulting a RenderPassCache
// to resolve the schema.
type FramebufferCache struct {
	mu      sync.Mutex
	device  *GraphicsDevice
	passes  *RenderPassCache
	entries []*fbCacheEntry
}

func newFramebufferCache(device *GraphicsDevice, passes *RenderPassCache) *FramebufferCache {
	return &FramebufferCache{device: device, passes: passes}
}

// Get returns the Framebuffer for the given color/depth view set,
// building (and caching) it if no entry with matching view identities
// exists yet.
func (c *FramebufferCache) Get(colors []*TextureView, depth *TextureView) (*Framebuffer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if fbKeyEquals(e, colors, depth) {
			return e.fb, nil
		}
	}

	key := types.RenderPassKey{}
	if len(colors) > 0 {
		key.Samples = colors[0].samples
	} else if depth != nil {
		key.Samples = depth.samples
	} else {
		key.Samples = 1
	}
	for _, v := range colors {
		key.Colors = append(key.Colors, v.format)
	}
	if depth != nil {
		key.HasDepth = true
		key.Depth = depth.format
	}

	pass, err := c.passes.Get(key)
	if err != nil {
		return nil, err
	}

	width, height := 0, 0
	if len(colors) > 0 {
		width, height = colors[0].width, colors[0].height
	} else if depth != nil {
		width, height = depth.width, depth.height
	}

	fb, err := pass.NewFB(colors, depth, width, height, 1)
	if err != nil {
		return nil, err
	}
	fb.colors = append([]*TextureView(nil), colors...)
	fb.depth = depth

	e := &fbCacheEntry{fb: fb, hasDepth: depth != nil}
	for _, v := range colors {
		e.colors = append(e.colors, weak.Make(v))
	}
	if depth != nil {
		e.depth = weak.Make(depth)
	}
	c.entries = append(c.entries, e)
	return fb, nil
}

func fbKeyEquals(e *fbCacheEntry, colors []*TextureView, depth *TextureView) bool {
	if len(e.colors) != len(colors) {
		return false
	}
	for i, v := range colors {
		if e.colors[i].Value() != v {
			return false
		}
	}
	if e.hasDepth != (depth != nil) {
		return false
	}
	if depth != nil && e.depth.Value() != depth {
		return false
	}
	return true
}

// CleanUp evicts entries whose view weak-refs have expired. It is
// called from DeviceContext.Flush.
func (c *FramebufferCache) CleanUp() {
	c.mu.Lock()
	defer c.mu.Unlock()

	live := c.entries[:0]
	for _, e := range c.entries {
		expired := false
		for _, w := range e.colors {
			if w.Value() == nil {
				expired = true
				break
			}
		}
		if !expired && e.hasDepth && e.depth.Value() == nil {
			expired = true
		}
		if !expired {
			live = append(live, e)
		}
	}
	c.entries = live
}
