// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"unsafe"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/native/vulkan/vk"
	"github.com/vulkangpu/gpu/types"
)

// NewGraphicsPipeline compiles the vertex/fragment stages into throwaway
// VkShaderModules, assembles every fixed-function state block from desc,
// and builds a single VkPipeline with no pipeline cache. pass must be a
// *RenderPass returned by this package.
func (d *Device) NewGraphicsPipeline(desc *types.GraphicsPipelineDesc, pass native.RenderPass) (native.Pipeline, error) {
	vsInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint64(len(desc.VertexCode)),
		PCode:    unsafe.Pointer(&desc.VertexCode[0]),
	}
	vs, err := vk.CreateShaderModule(d.handle, &vsInfo)
	if err != nil {
		return nil, err
	}
	defer vk.DestroyShaderModule(d.handle, vs)

	fsInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint64(len(desc.FragmentCode)),
		PCode:    unsafe.Pointer(&desc.FragmentCode[0]),
	}
	fs, err := vk.CreateShaderModule(d.handle, &fsInfo)
	if err != nil {
		return nil, err
	}
	defer vk.DestroyShaderModule(d.handle, fs)

	entry := []byte("main\x00")
	stages := []vk.PipelineShaderStageCreateInfo{
		{
			SType:  vk.StructureTypePipelineShaderStageCI,
			Stage:  stageToVk(types.StageVertex),
			Module: vs,
			PName:  unsafe.Pointer(&entry[0]),
		},
		{
			SType:  vk.StructureTypePipelineShaderStageCI,
			Stage:  stageToVk(types.StageFragment),
			Module: fs,
			PName:  unsafe.Pointer(&entry[0]),
		},
	}

	bindings := make([]vk.VertexInputBindingDescription, len(desc.Input))
	attrs := make([]vk.VertexInputAttributeDescription, len(desc.Input))
	for i, in := range desc.Input {
		bindings[i] = vk.VertexInputBindingDescription{
			Binding:   uint32(in.Slot),
			Stride:    uint32(in.Stride),
			InputRate: 0, // VK_VERTEX_INPUT_RATE_VERTEX
		}
		attrs[i] = vk.VertexInputAttributeDescription{
			Location: uint32(i),
			Binding:  uint32(in.Slot),
			Format:   vertexFmtToVk(in.Format),
		}
	}
	vertexInput := vk.PipelineVertexInputStateCreateInfo{
		SType:                         vk.StructureTypePipelineVertexInputStateCI,
		VertexBindingDescriptionCount: uint32(len(bindings)),
		VertexAttributeDescriptionCount: uint32(len(attrs)),
	}
	if len(bindings) > 0 {
		vertexInput.PVertexBindingDescriptions = unsafe.Pointer(&bindings[0])
		vertexInput.PVertexAttributeDescriptions = unsafe.Pointer(&attrs[0])
	}

	inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:    vk.StructureTypePipelineInputAssemblyStateCI,
		Topology: topologyToVk(desc.Topology),
	}

	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCI,
		ViewportCount: 1,
		ScissorCount:  1,
	}

	raster := vk.PipelineRasterizationStateCreateInfo{
		SType:       vk.StructureTypePipelineRasterizationStateCI,
		PolygonMode: fillModeToVk(desc.Raster.Fill),
		CullMode:    cullModeToVk(desc.Raster.Cull),
		FrontFace:   frontFaceToVk(desc.Raster.Clockwise),
		LineWidth:   1,
	}

	multisample := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCI,
		RasterizationSamples: samplesToVk(desc.Samples),
	}

	depthStencil := vk.PipelineDepthStencilStateCreateInfo{
		SType:            vk.StructureTypePipelineDepthStencilStateCI,
		DepthTestEnable:  boolToVk(desc.DS.DepthTest),
		DepthWriteEnable: boolToVk(desc.DS.DepthWrite),
		DepthCompareOp:   cmpFuncToVk(desc.DS.DepthCmp),
		StencilTestEnable: boolToVk(desc.DS.StencilTest),
	}

	blendAttachments := make([]vk.PipelineColorBlendAttachmentState, len(desc.Blend))
	for i, b := range desc.Blend {
		blendAttachments[i] = vk.PipelineColorBlendAttachmentState{
			BlendEnable:         boolToVk(b.Enabled),
			SrcColorBlendFactor: blendFacToVk(b.SrcFac),
			DstColorBlendFactor: blendFacToVk(b.DstFac),
			ColorBlendOp:        blendOpToVk(b.Op),
			SrcAlphaBlendFactor: blendFacToVk(b.SrcFac),
			DstAlphaBlendFactor: blendFacToVk(b.DstFac),
			AlphaBlendOp:        blendOpToVk(b.Op),
			ColorWriteMask:      0xF, // RGBA
		}
	}
	colorBlend := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCI,
		AttachmentCount: uint32(len(blendAttachments)),
	}
	if len(blendAttachments) > 0 {
		colorBlend.PAttachments = unsafe.Pointer(&blendAttachments[0])
	}

	dynStates := []uint32{0, 1} // VK_DYNAMIC_STATE_VIEWPORT, VK_DYNAMIC_STATE_SCISSOR
	dynamic := vk.PipelineDynamicStateCreateInfo{
		SType:             vk.StructureTypePipelineDynamicStateCI,
		DynamicStateCount: uint32(len(dynStates)),
		PDynamicStates:    unsafe.Pointer(&dynStates[0]),
	}

	info := vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(stages)),
		PStages:             unsafe.Pointer(&stages[0]),
		PVertexInputState:   unsafe.Pointer(&vertexInput),
		PInputAssemblyState: unsafe.Pointer(&inputAssembly),
		PViewportState:      unsafe.Pointer(&viewportState),
		PRasterizationState: unsafe.Pointer(&raster),
		PMultisampleState:   unsafe.Pointer(&multisample),
		PDepthStencilState:  unsafe.Pointer(&depthStencil),
		PColorBlendState:    unsafe.Pointer(&colorBlend),
		PDynamicState:       unsafe.Pointer(&dynamic),
		RenderPass:          pass.(*RenderPass).handle,
		Subpass:             uint32(desc.Subpass),
		BasePipelineIndex:   -1,
	}

	// This engine's ResourceHeapLayoutDesc is resolved against a
	// descriptor pool, not baked into the pipeline, so every pipeline
	// gets an empty, push-constant-less VkPipelineLayout: descriptor
	// set compatibility is enforced by the core (ResourceHeap binds
	// only sets it built itself), not by the driver's layout checks.
	layoutInfo := vk.PipelineLayoutCreateInfo{SType: vk.StructureTypePipelineLayoutCreateInfo}
	layout, err := vk.CreatePipelineLayout(d.handle, &layoutInfo)
	if err != nil {
		return nil, err
	}
	info.Layout = layout

	handle, err := vk.CreateGraphicsPipelines(d.handle, unsafe.Pointer(&info))
	if err != nil {
		vk.DestroyPipelineLayout(d.handle, layout)
		return nil, err
	}
	return &Pipeline{device: d, handle: handle, layout: layout}, nil
}

func frontFaceToVk(clockwise bool) uint32 {
	if clockwise {
		return 1 // VK_FRONT_FACE_CLOCKWISE
	}
	return 0 // VK_FRONT_FACE_COUNTER_CLOCKWISE
}
