package fake

import (
	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// Swapchain cycles through an in-memory ring of back-buffer textures.
// AcquireNext never blocks and never reports out-of-date, since there
// is no real presentation engine behind it.
type Swapchain struct {
	Resource
	desc   types.SwapChainDesc
	colors []*TextureView
	depths []*TextureView
	cursor int
}

func newSwapchain(desc *types.SwapChainDesc) *Swapchain {
	n := desc.BackBufferCount
	if n <= 0 {
		n = 2
	}
	sc := &Swapchain{desc: *desc}
	sc.colors = make([]*TextureView, n)
	sc.depths = make([]*TextureView, n)
	for i := 0; i < n; i++ {
		sc.colors[i] = &TextureView{desc: types.TextureViewDesc{LevelCount: 1}}
		if desc.HasDepth {
			sc.depths[i] = &TextureView{desc: types.TextureViewDesc{LevelCount: 1}}
		}
	}
	return sc
}

func (s *Swapchain) ImageCount() int { return len(s.colors) }

func (s *Swapchain) ImageView(index int) native.TextureView { return s.colors[index] }

func (s *Swapchain) DepthView(index int) native.TextureView {
	if s.depths[index] == nil {
		return nil
	}
	return s.depths[index]
}

func (s *Swapchain) AcquireNext(native.BinarySemaphore) (int, bool, error) {
	idx := s.cursor
	s.cursor = (s.cursor + 1) % len(s.colors)
	return idx, false, nil
}
