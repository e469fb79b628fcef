// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import "github.com/vulkangpu/gpu/types"

// pixelFormatToVk translates the engine's PixelFmt into the matching
// VkFormat enumerant.
func pixelFormatToVk(f types.PixelFmt) uint32 {
	switch f {
	case types.RGBA8Unorm:
		return 37 // VK_FORMAT_R8G8B8A8_UNORM
	case types.RGBA8Srgb:
		return 43 // VK_FORMAT_R8G8B8A8_SRGB
	case types.BGRA8Unorm:
		return 44 // VK_FORMAT_B8G8R8A8_UNORM
	case types.BGRA8Srgb:
		return 50 // VK_FORMAT_B8G8R8A8_SRGB
	case types.RG8Unorm:
		return 16 // VK_FORMAT_R8G8_UNORM
	case types.R8Unorm:
		return 9 // VK_FORMAT_R8_UNORM
	case types.RGBA16Float:
		return 97 // VK_FORMAT_R16G16B16A16_SFLOAT
	case types.RG16Float:
		return 83 // VK_FORMAT_R16G16_SFLOAT
	case types.R16Float:
		return 76 // VK_FORMAT_R16_SFLOAT
	case types.RGBA32Float:
		return 109 // VK_FORMAT_R32G32B32A32_SFLOAT
	case types.RG32Float:
		return 103 // VK_FORMAT_R32G32_SFLOAT
	case types.R32Float:
		return 100 // VK_FORMAT_R32_SFLOAT
	case types.D16Unorm:
		return 124 // VK_FORMAT_D16_UNORM
	case types.D32Float:
		return 126 // VK_FORMAT_D32_SFLOAT
	case types.S8Uint:
		return 127 // VK_FORMAT_S8_UINT
	case types.D24UnormS8Uint:
		return 129 // VK_FORMAT_D24_UNORM_S8_UINT
	case types.D32FloatS8Uint:
		return 130 // VK_FORMAT_D32_SFLOAT_S8_UINT
	default:
		return 0 // VK_FORMAT_UNDEFINED
	}
}

func samplesToVk(samples int) uint32 {
	switch {
	case samples <= 1:
		return 0x00000001
	case samples == 2:
		return 0x00000002
	case samples == 4:
		return 0x00000004
	case samples == 8:
		return 0x00000008
	default:
		return 0x00000010
	}
}

func filterToVk(f types.Filter) uint32 {
	if f == types.FilterLinear {
		return 1
	}
	return 0
}

func mipmapModeToVk(f types.Filter) uint32 {
	if f == types.FilterLinear {
		return 1
	}
	return 0
}

func addrModeToVk(m types.AddrMode) uint32 {
	switch m {
	case types.AddrMirror:
		return 1
	case types.AddrClamp:
		return 2
	default:
		return 0
	}
}

func indexTypeToVk(f types.IndexFmt) uint32 {
	if f == types.IndexU32 {
		return 1
	}
	return 0
}

func topologyToVk(t types.Topology) uint32 {
	switch t {
	case types.TopologyPointList:
		return 0
	case types.TopologyLineList:
		return 1
	case types.TopologyLineStrip:
		return 2
	case types.TopologyTriangleStrip:
		return 4
	default:
		return 3 // VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST
	}
}

func cullModeToVk(c types.CullMode) uint32 {
	switch c {
	case types.CullFront:
		return 0x00000001
	case types.CullBack:
		return 0x00000002
	default:
		return 0x00000000
	}
}

func fillModeToVk(f types.FillMode) uint32 {
	if f == types.FillWireframe {
		return 1
	}
	return 0
}

func cmpFuncToVk(c types.CmpFunc) uint32 {
	switch c {
	case types.CmpNever:
		return 0
	case types.CmpLess:
		return 1
	case types.CmpEqual:
		return 2
	case types.CmpLessEqual:
		return 3
	case types.CmpGreater:
		return 4
	case types.CmpNotEqual:
		return 5
	case types.CmpGreaterEqual:
		return 6
	default:
		return 7 // VK_COMPARE_OP_ALWAYS
	}
}

func loadOpToVk(op types.LoadOp) uint32 {
	switch op {
	case types.LoadClear:
		return 1
	case types.LoadLoad:
		return 0
	default:
		return 2 // VK_ATTACHMENT_LOAD_OP_DONT_CARE
	}
}

func storeOpToVk(op types.StoreOp) uint32 {
	if op == types.StoreStore {
		return 0
	}
	return 1 // VK_ATTACHMENT_STORE_OP_DONT_CARE
}

func vertexFmtToVk(f types.VertexFmt) uint32 {
	switch f {
	case types.Float32:
		return 100 // VK_FORMAT_R32_SFLOAT
	case types.Float32x2:
		return 103 // VK_FORMAT_R32G32_SFLOAT
	case types.Float32x3:
		return 106 // VK_FORMAT_R32G32B32_SFLOAT
	case types.Float32x4:
		return 109 // VK_FORMAT_R32G32B32A32_SFLOAT
	case types.UInt32:
		return 98 // VK_FORMAT_R32_UINT
	case types.UInt32x2:
		return 101 // VK_FORMAT_R32G32_UINT
	default:
		return 0
	}
}

func stageToVk(s types.Stage) uint32 {
	var flags uint32
	if s&types.StageVertex != 0 {
		flags |= 0x00000001
	}
	if s&types.StageFragment != 0 {
		flags |= 0x00000010
	}
	return flags
}

func blendOpToVk(op types.BlendOp) uint32 {
	switch op {
	case types.BlendSubtract:
		return 1
	case types.BlendMin:
		return 3
	case types.BlendMax:
		return 4
	default:
		return 0 // VK_BLEND_OP_ADD
	}
}

func blendFacToVk(f types.BlendFac) uint32 {
	switch f {
	case types.BlendOne:
		return 1
	case types.BlendSrcAlpha:
		return 6
	case types.BlendInvSrcAlpha:
		return 7
	default:
		return 0 // VK_BLEND_FACTOR_ZERO
	}
}

func boolToVk(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

