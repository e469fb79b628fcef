// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vk provides pure-Go Vulkan bindings using goffi, with a
// three-stage loading pattern: vkGetInstanceProcAddr bootstraps
// vkCreateInstance, instance-level entry points resolve through
// LoadInstance, and device-level entry points resolve through
// LoadDevice once a VkDevice exists.
package vk

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

var (
	vulkanLib             unsafe.Pointer
	vkGetInstanceProcAddr unsafe.Pointer
	cifGetInstanceProcAddr types.CallInterface

	initOnce sync.Once
	errInit  error
)

func libraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "vulkan-1.dll"
	case "darwin":
		return "libvulkan.dylib"
	default:
		return "libvulkan.so.1"
	}
}

// Init loads the Vulkan loader library. Safe to call more than once.
func Init() error {
	initOnce.Do(func() {
		errInit = doInit()
	})
	return errInit
}

func doInit() error {
	var err error
	vulkanLib, err = ffi.LoadLibrary(libraryName())
	if err != nil {
		return fmt.Errorf("vk: load %s: %w", libraryName(), err)
	}

	vkGetInstanceProcAddr, err = ffi.GetSymbol(vulkanLib, "vkGetInstanceProcAddr")
	if err != nil {
		return fmt.Errorf("vk: resolve vkGetInstanceProcAddr: %w", err)
	}

	if err := ffi.PrepareCallInterface(&cifGetInstanceProcAddr, types.DefaultCall,
		types.PointerTypeDescriptor,
		[]*types.TypeDescriptor{types.UInt64TypeDescriptor, types.PointerTypeDescriptor}); err != nil {
		return fmt.Errorf("vk: prepare GetInstanceProcAddr cif: %w", err)
	}

	return prepareSignatures()
}

// getInstanceProcAddr resolves name against instance (0 for global
// entry points such as vkCreateInstance).
func getInstanceProcAddr(instance uint64, name string) (unsafe.Pointer, error) {
	cName := append([]byte(name), 0)
	namePtr := unsafe.Pointer(&cName[0])

	args := [2]unsafe.Pointer{unsafe.Pointer(&instance), unsafe.Pointer(&namePtr)}
	var ret unsafe.Pointer
	if err := ffi.CallFunction(&cifGetInstanceProcAddr, vkGetInstanceProcAddr, unsafe.Pointer(&ret), args[:]); err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, fmt.Errorf("vk: entry point %s not found", name)
	}
	return ret, nil
}

// LoadInstance resolves every instance-level entry point this package
// calls, once a VkInstance handle exists.
func LoadInstance(instance uint64) error {
	return loadGroup(instance, instanceEntryPoints)
}

// LoadDevice resolves every device-level entry point, which must be
// fetched via vkGetDeviceProcAddr for best performance; this
// condensed binding fetches them through the instance-level resolver
// instead, since Vulkan guarantees that is also valid, just slower.
func LoadDevice(instance uint64) error {
	return loadGroup(instance, deviceEntryPoints)
}

// LoadDebugUtils resolves the VK_EXT_debug_utils entry points. It
// fails when the extension was not enabled at instance creation;
// callers treat that as non-fatal.
func LoadDebugUtils(instance uint64) error {
	return loadGroup(instance, debugUtilsEntryPoints)
}

func loadGroup(instance uint64, group map[string]*unsafe.Pointer) error {
	for name, slot := range group {
		ptr, err := getInstanceProcAddr(instance, name)
		if err != nil {
			return err
		}
		*slot = ptr
	}
	return nil
}
