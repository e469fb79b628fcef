// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/native/vulkan/vk"
)

// debugCallbackPtr holds the callback function pointer to prevent GC collection.
// Once created, the callback lives for the process lifetime (Vulkan requirement).
var debugCallbackPtr uintptr

// VK_EXT_debug_utils severity and message-type bits.
const (
	severityInfoBit    = 0x00000010
	severityWarningBit = 0x00000100
	severityErrorBit   = 0x00001000

	typeGeneralBit     = 0x00000001
	typeValidationBit  = 0x00000002
	typePerformanceBit = 0x00000004
)

// vulkanDebugCallback is the Go function registered as the Vulkan debug
// messenger callback. The Vulkan spec defines the callback signature as:
//
//	VkBool32 callback(
//	    VkDebugUtilsMessageSeverityFlagBitsEXT severity,
//	    VkDebugUtilsMessageTypeFlagsEXT types,
//	    const VkDebugUtilsMessengerCallbackDataEXT* callbackData,
//	    void* userData)
//
// All parameters are uintptr-sized for compatibility with ffi.NewCallback.
func vulkanDebugCallback(severity, types, callbackData, userData uintptr) uintptr {
	if callbackData == 0 {
		return 0 // VK_FALSE
	}

	// The pointer arrives as a uintptr from the Vulkan driver (not
	// GC-managed). Use the double-indirection pattern to satisfy go vet.
	data := *(**vk.DebugUtilsMessengerCallbackDataEXT)(unsafe.Pointer(&callbackData))

	msg := "(no message)"
	if data.PMessage != 0 {
		msg = cStringFromPtr(data.PMessage)
	}

	// Message ID name (e.g., "VUID-vkCmdDraw-None-02699").
	msgID := ""
	if data.PMessageIdName != 0 {
		msgID = cStringFromPtr(data.PMessageIdName)
	}

	var level slog.Level
	switch {
	case severity&severityErrorBit != 0:
		level = slog.LevelError
	case severity&severityWarningBit != 0:
		level = slog.LevelWarn
	case severity&severityInfoBit != 0:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}

	var typeStr string
	switch {
	case types&typeValidationBit != 0:
		typeStr = "Validation"
	case types&typePerformanceBit != 0:
		typeStr = "Performance"
	default:
		typeStr = "General"
	}

	attrs := []slog.Attr{
		slog.String("type", typeStr),
	}
	if msgID != "" {
		attrs = append(attrs, slog.String("id", msgID))
	}
	native.Logger().LogAttrs(context.Background(), level, "vulkan: "+msg, attrs...)

	// Returning VK_FALSE (0) means the Vulkan call that triggered the
	// callback should NOT be aborted.
	return 0
}

// cStringFromPtr reads a null-terminated C string from a uintptr.
func cStringFromPtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	p := *(**byte)(unsafe.Pointer(&ptr))
	const maxLen = 4096
	buf := unsafe.Slice(p, maxLen)
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// createDebugMessenger registers vulkanDebugCallback with the instance
// so validation-layer messages reach native.Logger(). Returns the
// messenger handle, or 0 if the debug-utils entry points or messenger
// are unavailable (non-fatal).
func createDebugMessenger(instance uint64) uint64 {
	if err := vk.LoadDebugUtils(instance); err != nil {
		native.Logger().Warn("vulkan: debug utils entry points unavailable", "err", err)
		return 0
	}

	// Create the callback pointer once; it is reused for every
	// messenger created afterwards.
	if debugCallbackPtr == 0 {
		debugCallbackPtr = ffi.NewCallback(vulkanDebugCallback)
	}

	info := vk.DebugUtilsMessengerCreateInfoEXT{
		SType:           vk.StructureTypeDebugUtilsMessengerCreateInfoEXT,
		MessageSeverity: severityWarningBit | severityErrorBit,
		MessageType:     typeGeneralBit | typeValidationBit | typePerformanceBit,
		PfnUserCallback: debugCallbackPtr,
	}
	messenger, err := vk.CreateDebugUtilsMessengerEXT(instance, &info)
	if err != nil {
		native.Logger().Warn("vulkan: failed to create debug messenger", "err", err)
		return 0
	}
	native.Logger().Info("vulkan: debug layer attached")
	return messenger
}
