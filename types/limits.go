// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package types

// Limits describes implementation limits, queried once from the
// GraphicsDevice and immutable for its lifetime.
type Limits struct {
	MaxImage1D   int
	MaxImage2D   int
	MaxImageCube int
	MaxImage3D   int
	MaxLayers    int

	MaxDescHeaps      int
	MaxDBuffer        int
	MaxDTexture       int
	MaxDSampler       int
	MaxDBufferRange   int64

	MaxColorTargets int
	MaxFBSize       [2]int
	MaxFBLayers     int
	MaxViewports    int

	MaxVertexInputBindings int
}

// DefaultLimits returns a conservative set of limits suitable for the
// native/fake test backend and as a floor for real Vulkan adapters.
func DefaultLimits() Limits {
	return Limits{
		MaxImage1D:   16384,
		MaxImage2D:   16384,
		MaxImageCube: 16384,
		MaxImage3D:   2048,
		MaxLayers:    2048,

		MaxDescHeaps:    8,
		MaxDBuffer:      16,
		MaxDTexture:     16,
		MaxDSampler:     16,
		MaxDBufferRange: 1 << 28,

		MaxColorTargets: 8,
		MaxFBSize:       [2]int{16384, 16384},
		MaxFBLayers:     2048,
		MaxViewports:    16,

		MaxVertexInputBindings: 16,
	}
}
