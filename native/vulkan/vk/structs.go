// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"math"
	"unsafe"
)

// Condensed Vulkan struct mirrors: only the fields this binding
// actually populates are named explicitly; trailing reserved/defaulted
// fields are kept as raw padding so the C layout still lines up for
// the driver even though Go never reads them back.

const (
	StructureTypeApplicationInfo               = 0
	StructureTypeInstanceCreateInfo            = 1
	StructureTypeDeviceQueueCreateInfo         = 2
	StructureTypeDeviceCreateInfo              = 3
	StructureTypeSubmitInfo                    = 4
	StructureTypeMemoryAllocateInfo            = 5
	StructureTypeMappedMemoryRange             = 6
	StructureTypeBufferCreateInfo              = 12
	StructureTypeImageCreateInfo               = 14
	StructureTypeImageViewCreateInfo           = 15
	StructureTypeShaderModuleCreateInfo        = 16
	StructureTypePipelineVertexInputStateCI    = 19
	StructureTypePipelineInputAssemblyStateCI  = 20
	StructureTypePipelineViewportStateCI       = 22
	StructureTypePipelineRasterizationStateCI  = 23
	StructureTypePipelineMultisampleStateCI    = 24
	StructureTypePipelineDepthStencilStateCI   = 25
	StructureTypePipelineColorBlendStateCI     = 26
	StructureTypePipelineDynamicStateCI        = 27
	StructureTypePipelineShaderStageCI         = 18
	StructureTypeGraphicsPipelineCreateInfo    = 28
	StructureTypeDescriptorPoolCreateInfo      = 33
	StructureTypeDescriptorSetAllocateInfo     = 34
	StructureTypeWriteDescriptorSet            = 35
	StructureTypeFramebufferCreateInfo         = 37
	StructureTypeRenderPassCreateInfo          = 38
	StructureTypeCommandPoolCreateInfo         = 39
	StructureTypeCommandBufferAllocateInfo     = 40
	StructureTypeCommandBufferBeginInfo        = 42
	StructureTypeRenderPassBeginInfo           = 43
	StructureTypeMemoryBarrier                 = 46
	StructureTypeBufferMemoryBarrier           = 44
	StructureTypeImageMemoryBarrier            = 45
	StructureTypeSamplerCreateInfo             = 31
	StructureTypeSemaphoreCreateInfo           = 9
	StructureTypeTimelineSemaphoreFeatures     = 1000207000
	StructureTypeSemaphoreTypeCreateInfo       = 1000207002
	StructureTypeTimelineSemaphoreSubmitInfo   = 1000207003
	StructureTypeSemaphoreWaitInfo             = 1000207004
	StructureTypeSemaphoreSignalInfo           = 1000207005
	StructureTypeSwapchainCreateInfoKHR        = 1000001000
	StructureTypePresentInfoKHR                = 1000001001
	StructureTypeDescriptorSetLayoutCreateInfo = 32
	StructureTypePipelineLayoutCreateInfo      = 30
)

// ApplicationInfo mirrors VkApplicationInfo.
type ApplicationInfo struct {
	SType              uint32
	_                  uint32 // pNext padding on 64-bit (struct alignment)
	PNext              unsafe.Pointer
	PApplicationName   unsafe.Pointer
	ApplicationVersion uint32
	_                  uint32
	PEngineName        unsafe.Pointer
	EngineVersion      uint32
	APIVersion         uint32
}

// InstanceCreateInfo mirrors VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	SType                   uint32
	_                       uint32
	PNext                   unsafe.Pointer
	Flags                   uint32
	_                       uint32
	PApplicationInfo        unsafe.Pointer
	EnabledLayerCount       uint32
	_                       uint32
	PpEnabledLayerNames     unsafe.Pointer
	EnabledExtensionCount   uint32
	_                       uint32
	PpEnabledExtensionNames unsafe.Pointer
}

// DeviceQueueCreateInfo mirrors VkDeviceQueueCreateInfo.
type DeviceQueueCreateInfo struct {
	SType            uint32
	_                uint32
	PNext            unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	_                uint32
	PQueuePriorities unsafe.Pointer
}

// DeviceCreateInfo mirrors VkDeviceCreateInfo.
type DeviceCreateInfo struct {
	SType                   uint32
	_                       uint32
	PNext                   unsafe.Pointer
	Flags                   uint32
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       unsafe.Pointer
	EnabledLayerCount       uint32
	_                       uint32
	PpEnabledLayerNames     unsafe.Pointer
	EnabledExtensionCount   uint32
	_                       uint32
	PpEnabledExtensionNames unsafe.Pointer
	PEnabledFeatures        unsafe.Pointer
}

// QueueFamilyProperties mirrors VkQueueFamilyProperties.
type QueueFamilyProperties struct {
	QueueFlags                  uint32
	QueueCount                  uint32
	TimestampValidBits           uint32
	MinImageTransferGranularity [3]uint32
}

// MemoryType / MemoryHeap / PhysicalDeviceMemoryProperties mirror the
// Vulkan structs of the same name, used to pick a memory type index
// when allocating.
type MemoryType struct {
	PropertyFlags uint32
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  uint64
	Flags uint32
	_     uint32
}

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [32]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [16]MemoryHeap
}

// MemoryRequirements mirrors VkMemoryRequirements.
type MemoryRequirements struct {
	Size           uint64
	Alignment      uint64
	MemoryTypeBits uint32
	_              uint32
}

// MemoryAllocateInfo mirrors VkMemoryAllocateInfo.
type MemoryAllocateInfo struct {
	SType           uint32
	_               uint32
	PNext           unsafe.Pointer
	AllocationSize  uint64
	MemoryTypeIndex uint32
	_               uint32
}

// MappedMemoryRange mirrors VkMappedMemoryRange.
type MappedMemoryRange struct {
	SType  uint32
	_      uint32
	PNext  unsafe.Pointer
	Memory uint64
	Offset uint64
	Size   uint64
}

// BufferCreateInfo mirrors VkBufferCreateInfo.
type BufferCreateInfo struct {
	SType                 uint32
	_                     uint32
	PNext                 unsafe.Pointer
	Flags                 uint32
	_                     uint32
	Size                  uint64
	Usage                 uint32
	SharingMode           uint32
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   unsafe.Pointer
}

// ImageCreateInfo mirrors VkImageCreateInfo.
type ImageCreateInfo struct {
	SType                 uint32
	_                     uint32
	PNext                 unsafe.Pointer
	Flags                 uint32
	ImageType             uint32
	Format                uint32
	Extent                [3]uint32
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               uint32
	Tiling                uint32
	Usage                 uint32
	SharingMode           uint32
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   unsafe.Pointer
	InitialLayout         uint32
	_                     uint32
}

// ImageSubresourceRange mirrors VkImageSubresourceRange.
type ImageSubresourceRange struct {
	AspectMask     uint32
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// ImageViewCreateInfo mirrors VkImageViewCreateInfo.
type ImageViewCreateInfo struct {
	SType            uint32
	_                uint32
	PNext            unsafe.Pointer
	Flags            uint32
	Image            uint64
	ViewType         uint32
	Format           uint32
	ComponentsRGBA   [4]uint32
	SubresourceRange ImageSubresourceRange
}

// SamplerCreateInfo mirrors VkSamplerCreateInfo.
type SamplerCreateInfo struct {
	SType                   uint32
	_                       uint32
	PNext                   unsafe.Pointer
	Flags                   uint32
	MagFilter               uint32
	MinFilter               uint32
	MipmapMode              uint32
	AddressModeU            uint32
	AddressModeV            uint32
	AddressModeW            uint32
	MipLodBias              float32
	AnisotropyEnable        uint32
	MaxAnisotropy           float32
	CompareEnable           uint32
	CompareOp               uint32
	MinLod                  float32
	MaxLod                  float32
	BorderColor             uint32
	UnnormalizedCoordinates uint32
}

// ShaderModuleCreateInfo mirrors VkShaderModuleCreateInfo.
type ShaderModuleCreateInfo struct {
	SType    uint32
	_        uint32
	PNext    unsafe.Pointer
	Flags    uint32
	_        uint32
	CodeSize uint64
	PCode    unsafe.Pointer
}

// AttachmentDescription mirrors VkAttachmentDescription.
type AttachmentDescription struct {
	Flags          uint32
	Format         uint32
	Samples        uint32
	LoadOp         uint32
	StoreOp        uint32
	StencilLoadOp  uint32
	StencilStoreOp uint32
	InitialLayout  uint32
	FinalLayout    uint32
}

// AttachmentReference mirrors VkAttachmentReference.
type AttachmentReference struct {
	Attachment uint32
	Layout     uint32
}

// SubpassDescription mirrors VkSubpassDescription.
type SubpassDescription struct {
	Flags                   uint32
	PipelineBindPoint       uint32
	InputAttachmentCount    uint32
	PInputAttachments       unsafe.Pointer
	ColorAttachmentCount    uint32
	PColorAttachments       unsafe.Pointer
	PResolveAttachments     unsafe.Pointer
	PDepthStencilAttachment unsafe.Pointer
	PreserveAttachmentCount uint32
	PPreserveAttachments    unsafe.Pointer
}

// RenderPassCreateInfo mirrors VkRenderPassCreateInfo.
type RenderPassCreateInfo struct {
	SType           uint32
	_               uint32
	PNext           unsafe.Pointer
	Flags           uint32
	AttachmentCount uint32
	PAttachments    unsafe.Pointer
	SubpassCount    uint32
	PSubpasses      unsafe.Pointer
	DependencyCount uint32
	PDependencies   unsafe.Pointer
}

// FramebufferCreateInfo mirrors VkFramebufferCreateInfo.
type FramebufferCreateInfo struct {
	SType           uint32
	_               uint32
	PNext           unsafe.Pointer
	Flags           uint32
	RenderPass      uint64
	AttachmentCount uint32
	_               uint32
	PAttachments    unsafe.Pointer
	Width           uint32
	Height          uint32
	Layers          uint32
}

// CommandPoolCreateInfo mirrors VkCommandPoolCreateInfo.
type CommandPoolCreateInfo struct {
	SType            uint32
	_                uint32
	PNext            unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
}

// CommandBufferAllocateInfo mirrors VkCommandBufferAllocateInfo.
type CommandBufferAllocateInfo struct {
	SType              uint32
	_                  uint32
	PNext              unsafe.Pointer
	CommandPool        uint64
	Level              uint32
	CommandBufferCount uint32
}

// CommandBufferBeginInfo mirrors VkCommandBufferBeginInfo.
type CommandBufferBeginInfo struct {
	SType            uint32
	_                uint32
	PNext            unsafe.Pointer
	Flags            uint32
	PInheritanceInfo unsafe.Pointer
}

// PhysicalDeviceTimelineSemaphoreFeatures chains off DeviceCreateInfo
// to enable timeline semaphores (core in Vulkan 1.2, still gated
// behind a feature bit at device creation).
type PhysicalDeviceTimelineSemaphoreFeatures struct {
	SType             uint32
	_                 uint32
	PNext             unsafe.Pointer
	TimelineSemaphore uint32
	_                 uint32
}

// SemaphoreTypeCreateInfo chains off SemaphoreCreateInfo to request a
// VK_SEMAPHORE_TYPE_TIMELINE semaphore.
type SemaphoreTypeCreateInfo struct {
	SType         uint32
	_             uint32
	PNext         unsafe.Pointer
	SemaphoreType uint32
	InitialValue  uint64
}

// SemaphoreCreateInfo mirrors VkSemaphoreCreateInfo.
type SemaphoreCreateInfo struct {
	SType uint32
	_     uint32
	PNext unsafe.Pointer
	Flags uint32
	_     uint32
}

// SemaphoreSignalInfo mirrors VkSemaphoreSignalInfo.
type SemaphoreSignalInfo struct {
	SType     uint32
	_         uint32
	PNext     unsafe.Pointer
	Semaphore uint64
	Value     uint64
}

// SemaphoreWaitInfo mirrors VkSemaphoreWaitInfo.
type SemaphoreWaitInfo struct {
	SType          uint32
	_              uint32
	PNext          unsafe.Pointer
	Flags          uint32
	SemaphoreCount uint32
	PSemaphores    unsafe.Pointer
	PValues        unsafe.Pointer
}

// TimelineSemaphoreSubmitInfo chains off SubmitInfo to carry the
// wait/signal values for timeline semaphores.
type TimelineSemaphoreSubmitInfo struct {
	SType                     uint32
	_                         uint32
	PNext                     unsafe.Pointer
	WaitSemaphoreValueCount   uint32
	PWaitSemaphoreValues      unsafe.Pointer
	SignalSemaphoreValueCount uint32
	PSignalSemaphoreValues    unsafe.Pointer
}

// SubmitInfo mirrors VkSubmitInfo.
type SubmitInfo struct {
	SType                uint32
	_                    uint32
	PNext                unsafe.Pointer
	WaitSemaphoreCount   uint32
	_                    uint32
	PWaitSemaphores      unsafe.Pointer
	PWaitDstStageMask    unsafe.Pointer
	CommandBufferCount   uint32
	_                    uint32
	PCommandBuffers      unsafe.Pointer
	SignalSemaphoreCount uint32
	_                    uint32
	PSignalSemaphores    unsafe.Pointer
}

// DescriptorSetLayoutBinding mirrors VkDescriptorSetLayoutBinding.
type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     uint32
	DescriptorCount    uint32
	StageFlags         uint32
	PImmutableSamplers unsafe.Pointer
}

// DescriptorSetLayoutCreateInfo mirrors VkDescriptorSetLayoutCreateInfo.
type DescriptorSetLayoutCreateInfo struct {
	SType        uint32
	_            uint32
	PNext        unsafe.Pointer
	Flags        uint32
	BindingCount uint32
	PBindings    unsafe.Pointer
}

// DescriptorPoolSize mirrors VkDescriptorPoolSize.
type DescriptorPoolSize struct {
	Type            uint32
	DescriptorCount uint32
}

// DescriptorPoolCreateInfo mirrors VkDescriptorPoolCreateInfo.
type DescriptorPoolCreateInfo struct {
	SType         uint32
	_             uint32
	PNext         unsafe.Pointer
	Flags         uint32
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    unsafe.Pointer
}

// DescriptorSetAllocateInfo mirrors VkDescriptorSetAllocateInfo.
type DescriptorSetAllocateInfo struct {
	SType              uint32
	_                  uint32
	PNext              unsafe.Pointer
	DescriptorPool     uint64
	DescriptorSetCount uint32
	_                  uint32
	PSetLayouts        unsafe.Pointer
}

// DescriptorBufferInfo mirrors VkDescriptorBufferInfo.
type DescriptorBufferInfo struct {
	Buffer uint64
	Offset uint64
	Range  uint64
}

// DescriptorImageInfo mirrors VkDescriptorImageInfo.
type DescriptorImageInfo struct {
	Sampler     uint64
	ImageView   uint64
	ImageLayout uint32
	_           uint32
}

// WriteDescriptorSet mirrors VkWriteDescriptorSet.
type WriteDescriptorSet struct {
	SType            uint32
	_                uint32
	PNext            unsafe.Pointer
	DstSet           uint64
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   uint32
	PImageInfo       unsafe.Pointer
	PBufferInfo      unsafe.Pointer
	PTexelBufferView unsafe.Pointer
}

// Viewport mirrors VkViewport.
type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

// Rect2D mirrors VkRect2D, with its VkOffset2D and VkExtent2D fields
// flattened in.
type Rect2D struct {
	OffsetX, OffsetY int32
	Width, Height    uint32
}

// ClearColorValue mirrors VkClearColorValue (float union).
type ClearColorValue struct {
	R, G, B, A float32
}

// ClearValue mirrors the 16-byte VkClearValue union: four raw words
// holding either a float color quad or a VkClearDepthStencilValue in
// the first two words.
type ClearValue struct {
	raw [4]uint32
}

// ColorClearValue builds the color arm of the union.
func ColorClearValue(r, g, b, a float32) ClearValue {
	return ClearValue{raw: [4]uint32{
		math.Float32bits(r), math.Float32bits(g), math.Float32bits(b), math.Float32bits(a),
	}}
}

// DepthStencilClearValue builds the depth/stencil arm of the union.
func DepthStencilClearValue(depth float32, stencil uint32) ClearValue {
	return ClearValue{raw: [4]uint32{math.Float32bits(depth), stencil}}
}

// ClearAttachment mirrors VkClearAttachment.
type ClearAttachment struct {
	AspectMask     uint32
	ColorAttachment uint32
	ClearValue     ClearValue
}

// ClearRect mirrors VkClearRect.
type ClearRect struct {
	Rect           Rect2D
	BaseArrayLayer uint32
	LayerCount     uint32
}

// RenderPassBeginInfo mirrors VkRenderPassBeginInfo.
type RenderPassBeginInfo struct {
	SType           uint32
	_               uint32
	PNext           unsafe.Pointer
	RenderPass      uint64
	Framebuffer     uint64
	RenderArea      Rect2D
	ClearValueCount uint32
	_               uint32
	PClearValues    unsafe.Pointer
}

// BufferMemoryBarrier / ImageMemoryBarrier mirror the Vulkan barrier
// structs used by vkCmdPipelineBarrier.
type BufferMemoryBarrier struct {
	SType               uint32
	_                   uint32
	PNext               unsafe.Pointer
	SrcAccessMask       uint32
	DstAccessMask       uint32
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              uint64
	Offset              uint64
	Size                uint64
}

type ImageMemoryBarrier struct {
	SType               uint32
	_                   uint32
	PNext               unsafe.Pointer
	SrcAccessMask       uint32
	DstAccessMask       uint32
	OldLayout           uint32
	NewLayout           uint32
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               uint64
	SubresourceRange    ImageSubresourceRange
}

// BufferCopy / BufferImageCopy / ImageBlit mirror the Vulkan copy and
// blit region structs.
type BufferCopy struct {
	SrcOffset, DstOffset, Size uint64
}

type ImageSubresourceLayers struct {
	AspectMask     uint32
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type BufferImageCopy struct {
	BufferOffset      uint64
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       [3]int32
	ImageExtent       [3]uint32
}

type ImageBlit struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffsets     [2][3]int32
	DstSubresource ImageSubresourceLayers
	DstOffsets     [2][3]int32
}

// SwapchainCreateInfoKHR mirrors VkSwapchainCreateInfoKHR.
type SwapchainCreateInfoKHR struct {
	SType                 uint32
	_                     uint32
	PNext                 unsafe.Pointer
	Flags                 uint32
	Surface               uint64
	MinImageCount         uint32
	ImageFormat           uint32
	ImageColorSpace       uint32
	ImageExtent           [2]uint32
	ImageArrayLayers      uint32
	ImageUsage            uint32
	ImageSharingMode      uint32
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   unsafe.Pointer
	PreTransform          uint32
	CompositeAlpha        uint32
	PresentMode           uint32
	Clipped               uint32
	OldSwapchain          uint64
}

// PresentInfoKHR mirrors VkPresentInfoKHR.
type PresentInfoKHR struct {
	SType              uint32
	_                  uint32
	PNext              unsafe.Pointer
	WaitSemaphoreCount uint32
	PWaitSemaphores    unsafe.Pointer
	SwapchainCount     uint32
	PSwapchains        unsafe.Pointer
	PImageIndices      unsafe.Pointer
	PResults           unsafe.Pointer
}

const StructureTypeDebugUtilsMessengerCreateInfoEXT = 1000128004

// DebugUtilsMessengerCreateInfoEXT mirrors VkDebugUtilsMessengerCreateInfoEXT.
type DebugUtilsMessengerCreateInfoEXT struct {
	SType           uint32
	_               uint32
	PNext           unsafe.Pointer
	Flags           uint32
	MessageSeverity uint32
	MessageType     uint32
	_               uint32
	PfnUserCallback uintptr
	PUserData       unsafe.Pointer
}

// DebugUtilsMessengerCallbackDataEXT mirrors
// VkDebugUtilsMessengerCallbackDataEXT. The string fields stay raw
// uintptrs because the struct arrives from the driver, outside Go's
// heap; the callback reads them out byte by byte.
type DebugUtilsMessengerCallbackDataEXT struct {
	SType            uint32
	_                uint32
	PNext            unsafe.Pointer
	Flags            uint32
	_                uint32
	PMessageIdName   uintptr
	MessageIdNumber  int32
	_                uint32
	PMessage         uintptr
	QueueLabelCount  uint32
	_                uint32
	PQueueLabels     unsafe.Pointer
	CmdBufLabelCount uint32
	_                uint32
	PCmdBufLabels    unsafe.Pointer
	ObjectCount      uint32
	_                uint32
	PObjects         unsafe.Pointer
}

// PipelineLayoutCreateInfo mirrors VkPipelineLayoutCreateInfo.
type PipelineLayoutCreateInfo struct {
	SType                  uint32
	_                      uint32
	PNext                  unsafe.Pointer
	Flags                  uint32
	SetLayoutCount         uint32
	PSetLayouts            unsafe.Pointer
	PushConstantRangeCount uint32
	_                      uint32
	PPushConstantRanges    unsafe.Pointer
}

// -- Graphics pipeline fixed-function state --

// PipelineShaderStageCreateInfo mirrors VkPipelineShaderStageCreateInfo.
type PipelineShaderStageCreateInfo struct {
	SType               uint32
	_                   uint32
	PNext               unsafe.Pointer
	Flags               uint32
	Stage               uint32
	Module              uint64
	PName               unsafe.Pointer
	PSpecializationInfo unsafe.Pointer
}

// VertexInputBindingDescription mirrors VkVertexInputBindingDescription.
type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate uint32
}

// VertexInputAttributeDescription mirrors VkVertexInputAttributeDescription.
type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   uint32
	Offset   uint32
}

// PipelineVertexInputStateCreateInfo mirrors VkPipelineVertexInputStateCreateInfo.
type PipelineVertexInputStateCreateInfo struct {
	SType                           uint32
	_                               uint32
	PNext                           unsafe.Pointer
	Flags                           uint32
	VertexBindingDescriptionCount   uint32
	PVertexBindingDescriptions      unsafe.Pointer
	VertexAttributeDescriptionCount uint32
	_                               uint32
	PVertexAttributeDescriptions    unsafe.Pointer
}

// PipelineInputAssemblyStateCreateInfo mirrors VkPipelineInputAssemblyStateCreateInfo.
type PipelineInputAssemblyStateCreateInfo struct {
	SType                  uint32
	_                      uint32
	PNext                  unsafe.Pointer
	Flags                  uint32
	Topology               uint32
	PrimitiveRestartEnable uint32
}

// PipelineViewportStateCreateInfo mirrors VkPipelineViewportStateCreateInfo.
// The engine always sets viewport/scissor dynamically, so the counts are
// populated but the pointers stay nil.
type PipelineViewportStateCreateInfo struct {
	SType         uint32
	_             uint32
	PNext         unsafe.Pointer
	Flags         uint32
	ViewportCount uint32
	PViewports    unsafe.Pointer
	ScissorCount  uint32
	_             uint32
	PScissors     unsafe.Pointer
}

// PipelineRasterizationStateCreateInfo mirrors VkPipelineRasterizationStateCreateInfo.
type PipelineRasterizationStateCreateInfo struct {
	SType                   uint32
	_                       uint32
	PNext                   unsafe.Pointer
	Flags                   uint32
	DepthClampEnable        uint32
	RasterizerDiscardEnable uint32
	PolygonMode             uint32
	CullMode                uint32
	FrontFace               uint32
	DepthBiasEnable         uint32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

// PipelineMultisampleStateCreateInfo mirrors VkPipelineMultisampleStateCreateInfo.
type PipelineMultisampleStateCreateInfo struct {
	SType                 uint32
	_                     uint32
	PNext                 unsafe.Pointer
	Flags                 uint32
	RasterizationSamples  uint32
	SampleShadingEnable   uint32
	MinSampleShading      float32
	PSampleMask           unsafe.Pointer
	AlphaToCoverageEnable uint32
	AlphaToOneEnable      uint32
}

// StencilOpState mirrors VkStencilOpState.
type StencilOpState struct {
	FailOp      uint32
	PassOp      uint32
	DepthFailOp uint32
	CompareOp   uint32
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// PipelineDepthStencilStateCreateInfo mirrors VkPipelineDepthStencilStateCreateInfo.
type PipelineDepthStencilStateCreateInfo struct {
	SType                 uint32
	_                     uint32
	PNext                 unsafe.Pointer
	Flags                 uint32
	DepthTestEnable       uint32
	DepthWriteEnable      uint32
	DepthCompareOp        uint32
	DepthBoundsTestEnable uint32
	StencilTestEnable     uint32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

// PipelineColorBlendAttachmentState mirrors VkPipelineColorBlendAttachmentState.
type PipelineColorBlendAttachmentState struct {
	BlendEnable         uint32
	SrcColorBlendFactor uint32
	DstColorBlendFactor uint32
	ColorBlendOp        uint32
	SrcAlphaBlendFactor uint32
	DstAlphaBlendFactor uint32
	AlphaBlendOp        uint32
	ColorWriteMask      uint32
}

// PipelineColorBlendStateCreateInfo mirrors VkPipelineColorBlendStateCreateInfo.
type PipelineColorBlendStateCreateInfo struct {
	SType           uint32
	_               uint32
	PNext           unsafe.Pointer
	Flags           uint32
	LogicOpEnable   uint32
	LogicOp         uint32
	AttachmentCount uint32
	PAttachments    unsafe.Pointer
	BlendConstants  [4]float32
}

// PipelineDynamicStateCreateInfo mirrors VkPipelineDynamicStateCreateInfo.
type PipelineDynamicStateCreateInfo struct {
	SType             uint32
	_                 uint32
	PNext             unsafe.Pointer
	Flags             uint32
	DynamicStateCount uint32
	PDynamicStates    unsafe.Pointer
}

// GraphicsPipelineCreateInfo mirrors VkGraphicsPipelineCreateInfo.
type GraphicsPipelineCreateInfo struct {
	SType               uint32
	_                   uint32
	PNext               unsafe.Pointer
	Flags               uint32
	StageCount          uint32
	PStages             unsafe.Pointer
	PVertexInputState   unsafe.Pointer
	PInputAssemblyState unsafe.Pointer
	PTessellationState  unsafe.Pointer
	PViewportState      unsafe.Pointer
	PRasterizationState unsafe.Pointer
	PMultisampleState   unsafe.Pointer
	PDepthStencilState  unsafe.Pointer
	PColorBlendState    unsafe.Pointer
	PDynamicState       unsafe.Pointer
	Layout              uint64
	RenderPass           uint64
	Subpass              uint32
	BasePipelineHandle   uint64
	BasePipelineIndex    int32
}
