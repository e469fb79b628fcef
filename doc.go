// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package gpu is a low-level, cross-API graphics rendering abstraction
// sitting between an application and a native GPU driver. It exposes
// an explicit, modern-GPU-style contract - device creation, swap
// chains, textures, buffers, render passes, framebuffers, pipelines,
// resource heaps, command submission and GPU/CPU synchronization -
// while hiding driver bookkeeping: memory allocation, command-pool
// recycling, descriptor-pool growth, render-pass/framebuffer caching,
// layout transitions and frame pacing.
//
// The reference native backend targets Vulkan (package
// native/vulkan); package native/fake provides an in-memory backend
// used by this package's own tests.
package gpu
