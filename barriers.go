// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package gpu

import "github.com/vulkangpu/gpu/types"

// Pipeline-stage and access-mask bits, numerically identical to the
// Khronos Vulkan enums (VkPipelineStageFlagBits / VkAccessFlagBits /
// VkImageLayout) so the native/vulkan backend can pass them straight
// through without a second translation table.
const (
	stageTopOfPipe    uint32 = 0x00000001
	stageVertexInput  uint32 = 0x00000004
	stageVertexShader uint32 = 0x00000008
	stageFragment     uint32 = 0x00000080
	stageEarlyFrag    uint32 = 0x00000100
	stageLateFrag     uint32 = 0x00000200
	stageColorOutput  uint32 = 0x00000400
	stageTransfer     uint32 = 0x00001000
	stageBottomOfPipe uint32 = 0x00002000
	stageHost         uint32 = 0x00004000
	stageAllCommands  uint32 = 0x00010000
)

const (
	accessNone          uint32 = 0
	accessIndexRead     uint32 = 0x00000002
	accessVertexRead    uint32 = 0x00000004
	accessUniformRead   uint32 = 0x00000008
	accessShaderRead    uint32 = 0x00000020
	accessShaderWrite   uint32 = 0x00000040
	accessColorRead     uint32 = 0x00000080
	accessColorWrite    uint32 = 0x00000100
	accessDSRead        uint32 = 0x00000200
	accessDSWrite       uint32 = 0x00000400
	accessTransferRead  uint32 = 0x00000800
	accessTransferWrite uint32 = 0x00001000
	accessHostRead      uint32 = 0x00002000
	accessHostWrite     uint32 = 0x00004000
	accessMemoryRead    uint32 = 0x00008000
	accessMemoryWrite   uint32 = 0x00010000
)

const (
	layoutUndefined     uint32 = 0
	layoutGeneral       uint32 = 1
	layoutColorAttach   uint32 = 2
	layoutDSAttach      uint32 = 3
	layoutDSReadOnly    uint32 = 4
	layoutShaderReadOnly uint32 = 5
	layoutTransferSrc   uint32 = 6
	layoutTransferDst   uint32 = 7
	layoutPresent       uint32 = 1000001002
)

// stateMasks maps each abstract ResourceState to the stage, access,
// and image-layout triple a barrier touching that state must use.
type stateMasks struct {
	stage  uint32
	access uint32
	layout uint32
}

func masksFor(s types.ResourceState) stateMasks {
	switch s {
	case types.StateUndefined:
		return stateMasks{stageTopOfPipe, accessNone, layoutUndefined}
	case types.StateCommon:
		return stateMasks{stageAllCommands, accessMemoryRead | accessMemoryWrite, layoutGeneral}
	case types.StateRenderTarget:
		return stateMasks{stageColorOutput, accessColorRead | accessColorWrite, layoutColorAttach}
	case types.StateDepthStencilWrite:
		return stateMasks{stageEarlyFrag | stageLateFrag, accessDSRead | accessDSWrite, layoutDSAttach}
	case types.StateDepthStencilRead:
		return stateMasks{stageEarlyFrag | stageLateFrag, accessDSRead, layoutDSReadOnly}
	case types.StateShaderReadOnly:
		return stateMasks{stageVertexShader | stageFragment, accessShaderRead, layoutShaderReadOnly}
	case types.StateUniform:
		return stateMasks{stageVertexShader | stageFragment, accessUniformRead, layoutGeneral}
	case types.StateVertexBuffer:
		return stateMasks{stageVertexInput, accessVertexRead, layoutGeneral}
	case types.StateIndexBuffer:
		return stateMasks{stageVertexInput, accessIndexRead, layoutGeneral}
	case types.StateTransferSrc:
		return stateMasks{stageTransfer, accessTransferRead, layoutTransferSrc}
	case types.StateTransferDst:
		return stateMasks{stageTransfer, accessTransferWrite, layoutTransferDst}
	case types.StatePresent:
		return stateMasks{stageBottomOfPipe, accessNone, layoutPresent}
	default:
		return stateMasks{stageAllCommands, accessMemoryRead | accessMemoryWrite, layoutGeneral}
	}
}
