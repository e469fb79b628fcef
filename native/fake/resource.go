// Package fake is an in-memory native.Device implementation used to
// exercise the command-recording engine in tests without real GPU
// hardware.
package fake

import (
	"sync/atomic"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// Resource is the placeholder embedded by every native handle that
// carries no state of its own.
type Resource struct{}

// Destroy is a no-op.
func (Resource) Destroy() {}

// Buffer is a host-backed byte slice standing in for a real GPU
// allocation, so MapBuffer/UnmapBuffer round-trips are observable in
// tests.
type Buffer struct {
	Resource
	data    []byte
	visible bool
}

func (b *Buffer) Visible() bool { return b.visible }
func (b *Buffer) Cap() int64    { return int64(len(b.data)) }
func (b *Buffer) Bytes() []byte { return b.data }
func (b *Buffer) Flush(int64, int64)     {}
func (b *Buffer) Invalidate(int64, int64) {}

// Texture stores its descriptor; NewView does not consult it and
// returns a view that records only the view descriptor.
type Texture struct {
	Resource
	Desc types.TextureDesc
}

func (t *Texture) NewView(desc types.TextureViewDesc) (native.TextureView, error) {
	return &TextureView{desc: desc}, nil
}

// TextureView is a placeholder identified only by pointer identity;
// it records its view descriptor and nothing else.
type TextureView struct {
	Resource
	desc types.TextureViewDesc
}

// Sampler, ShaderModule, Pipeline, RenderPass and Framebuffer carry no
// behavior; their pointer identity is what matters to callers.
type Sampler struct{ Resource }
type ShaderModule struct{ Resource }
type Pipeline struct{ Resource }

type RenderPass struct {
	Resource
	Key types.RenderPassKey
}

type Framebuffer struct {
	Resource
	Width, Height, Layers int
}

// BinarySemaphore tracks signaled state for diagnostics only; the
// fake backend is synchronous, so nothing ever actually waits on it.
type BinarySemaphore struct {
	Resource
	signaled atomic.Bool
}

// Fence is a plain atomic counter: Signal stores the new value, and
// Wait returns at once without checking it.
type Fence struct {
	Resource
	value atomic.Uint64
}

func (f *Fence) Current() (uint64, error) { return f.value.Load(), nil }

func (f *Fence) Signal(value uint64) error {
	f.value.Store(value)
	return nil
}

// Wait is instantaneous: every submission in this backend completes
// synchronously inside Queue.Submit, so by the time Wait is called
// the fence has already reached any value a real caller could ask
// for.
func (f *Fence) Wait(uint64) error { return nil }
