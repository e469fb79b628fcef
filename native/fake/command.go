package fake

import (
	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// CmdBuffer records nothing; it only tracks enough state (active
// render pass, last bound pipeline/descriptor sets) for assertions in
// tests that care what the engine attempted to issue.
type CmdBuffer struct {
	Resource

	Recording  bool
	PassActive bool

	BeginRenderPassCount int
	DrawCount            int
	DrawIndexedCount     int
	BarrierCount         int
	BoundPipeline        native.Pipeline
	BoundSets            map[int]native.DescriptorSet
}

func newCmdBuffer() *CmdBuffer {
	return &CmdBuffer{BoundSets: make(map[int]native.DescriptorSet)}
}

func (c *CmdBuffer) Begin() error { c.Recording = true; return nil }
func (c *CmdBuffer) End() error   { c.Recording = false; return nil }
func (c *CmdBuffer) Reset() error {
	c.PassActive = false
	c.BoundPipeline = nil
	c.BoundSets = make(map[int]native.DescriptorSet)
	return nil
}

func (c *CmdBuffer) BeginRenderPass(native.RenderPass, native.Framebuffer, []types.ClearValue) {
	c.PassActive = true
	c.BeginRenderPassCount++
}
func (c *CmdBuffer) EndRenderPass() { c.PassActive = false }

func (c *CmdBuffer) BindPipeline(p native.Pipeline)        { c.BoundPipeline = p }
func (c *CmdBuffer) SetViewport([]types.Viewport)          {}
func (c *CmdBuffer) SetScissor([]types.Scissor)            {}
func (c *CmdBuffer) BindVertexBuffers(int, []native.Buffer, []int64) {}
func (c *CmdBuffer) BindIndexBuffer(native.Buffer, int64, types.IndexFmt) {}
func (c *CmdBuffer) BindDescriptorSet(setIndex int, set native.DescriptorSet) {
	c.BoundSets[setIndex] = set
}

func (c *CmdBuffer) Draw(int, int, int, int)             { c.DrawCount++ }
func (c *CmdBuffer) DrawIndexed(int, int, int, int, int) { c.DrawIndexedCount++ }

func (c *CmdBuffer) PipelineBarrier(b []native.Barrier) { c.BarrierCount += len(b) }

func (c *CmdBuffer) ClearColorAttachment(int, [4]float32)        {}
func (c *CmdBuffer) ClearDepthStencilAttachment(float32, uint32) {}
func (c *CmdBuffer) ClearColorImage(native.Texture, [4]float32)  {}

func (c *CmdBuffer) CopyBuffer(src native.Buffer, srcOff int64, dst native.Buffer, dstOff int64, size int64) {
	sb, dbok := src.(*Buffer)
	db, sbok := dst.(*Buffer)
	if dbok && sbok {
		copy(db.data[dstOff:dstOff+size], sb.data[srcOff:srcOff+size])
	}
}

func (c *CmdBuffer) CopyBufferToTexture(native.Buffer, int64, native.Texture, int, int, types.Off3D, types.Dim3D) {
}

func (c *CmdBuffer) BlitImage(native.Texture, int, native.Texture, int, types.Dim3D, types.Dim3D) {}

// CommandPool allocates fresh CmdBuffers; the fake backend never
// recycles native handles itself, since gpu.CommandPool already
// handles reuse above this layer.
type CommandPool struct{ Resource }

func (p *CommandPool) Allocate() (native.CmdBuffer, error) { return newCmdBuffer(), nil }

// DescriptorSet stores the last write call per slot so tests can
// assert what a heap bound.
type DescriptorSet struct {
	Resource
	Buffers map[int][]native.Buffer
	Images  map[int][]native.TextureView
}

func newDescriptorSet() *DescriptorSet {
	return &DescriptorSet{Buffers: make(map[int][]native.Buffer), Images: make(map[int][]native.TextureView)}
}

func (s *DescriptorSet) WriteBuffers(slot int, bufs []native.Buffer, _ []int64, _ []int64, _ int) {
	s.Buffers[slot] = bufs
}

func (s *DescriptorSet) WriteImages(slot int, views []native.TextureView, _ []native.Sampler, _ int) {
	s.Images[slot] = views
}

// DescriptorPool vends new DescriptorSets without limit; the fake
// backend does not model exhaustion.
type DescriptorPool struct {
	Resource
	MaxSets int
}

func (p *DescriptorPool) Allocate(types.ResourceHeapLayoutDesc) (native.DescriptorSet, error) {
	return newDescriptorSet(), nil
}
