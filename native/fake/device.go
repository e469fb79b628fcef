package fake

import (
	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/types"
)

// Device implements native.Device entirely in memory. It exists so
// DeviceContext, CommandPool, DescriptorPool, RenderPassCache,
// FramebufferCache, and SwapChain can all be exercised by ordinary Go
// tests without a GPU or a windowing system present.
type Device struct {
	families []*QueueFamily
	limits   types.Limits
}

// NewDevice returns a fake Device with one queue family of one queue.
func NewDevice() *Device {
	return &Device{
		families: []*QueueFamily{{queue: &Queue{}}},
		limits:   types.DefaultLimits(),
	}
}

func (d *Device) Limits() types.Limits            { return d.limits }
func (d *Device) QueueFamilyCount() int           { return len(d.families) }
func (d *Device) QueueFamily(i int) native.QueueFamily { return d.families[i] }
func (d *Device) WaitIdle() error                 { return nil }

func (d *Device) NewFence(initial uint64) (native.Fence, error) {
	f := &Fence{}
	f.value.Store(initial)
	return f, nil
}

func (d *Device) NewBinarySemaphore() (native.BinarySemaphore, error) {
	return &BinarySemaphore{}, nil
}

func (d *Device) NewCommandPool(int) (native.CommandPool, error) {
	return &CommandPool{}, nil
}

func (d *Device) NewDescriptorPool(maxSets int, _ native.DescriptorCounts) (native.DescriptorPool, error) {
	return &DescriptorPool{MaxSets: maxSets}, nil
}

func (d *Device) NewRenderPass(key types.RenderPassKey) (native.RenderPass, error) {
	return &RenderPass{Key: key}, nil
}

func (d *Device) NewFramebuffer(_ native.RenderPass, _ []native.TextureView, width, height, layers int) (native.Framebuffer, error) {
	return &Framebuffer{Width: width, Height: height, Layers: layers}, nil
}

func (d *Device) NewShaderModule([]byte) (native.ShaderModule, error) {
	return &ShaderModule{}, nil
}

func (d *Device) NewGraphicsPipeline(*types.GraphicsPipelineDesc, native.RenderPass) (native.Pipeline, error) {
	return &Pipeline{}, nil
}

func (d *Device) NewBuffer(size int64, visible bool, _ types.BufferBinding) (native.Buffer, error) {
	return &Buffer{data: make([]byte, size), visible: visible}, nil
}

func (d *Device) NewTexture(desc *types.TextureDesc) (native.Texture, error) {
	return &Texture{Desc: *desc}, nil
}

func (d *Device) NewSampler(*types.SamplerDesc) (native.Sampler, error) {
	return &Sampler{}, nil
}

func (d *Device) NewSwapchain(desc *types.SwapChainDesc, _ uintptr, _ native.Swapchain) (native.Swapchain, error) {
	return newSwapchain(desc), nil
}
