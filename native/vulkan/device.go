// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vulkan implements the native package's interfaces against a
// real Vulkan 1.2 driver through the pure-Go vk bindings.
package vulkan

import (
	"fmt"
	"unsafe"

	"github.com/vulkangpu/gpu/native"
	"github.com/vulkangpu/gpu/native/vulkan/vk"
	"github.com/vulkangpu/gpu/types"
)

const (
	apiVersion1_2  = uint32(1)<<22 | uint32(2)<<12
	queueGraphics  = uint32(1)
	sharingExclusive = uint32(0)
)

// Device owns a VkInstance/VkPhysicalDevice/VkDevice triple and
// implements native.Device against them.
type Device struct {
	instance  uint64
	phys      uint64
	handle    uint64
	messenger uint64
	memProps  vk.PhysicalDeviceMemoryProperties
	families  []*QueueFamily
	limits    types.Limits
}

// NewDevice initializes Vulkan, picks the first physical device
// reported (failing if it exposes no queue family), and creates a
// logical device with one queue opened in every family. With debug set, the
// VK_LAYER_KHRONOS_validation layer is enabled and a debug-utils
// messenger forwards validation messages through native.Logger().
func NewDevice(appName string, debug bool) (*Device, error) {
	if err := vk.Init(); err != nil {
		return nil, err
	}

	app := vk.ApplicationInfo{
		SType:      vk.StructureTypeApplicationInfo,
		APIVersion: apiVersion1_2,
	}
	if appName != "" {
		appNameC := append([]byte(appName), 0)
		app.PApplicationName = unsafe.Pointer(&appNameC[0])
	}

	var layerNames, instExtNames []unsafe.Pointer
	if debug {
		layerValidation := append([]byte("VK_LAYER_KHRONOS_validation"), 0)
		extDebugUtils := append([]byte("VK_EXT_debug_utils"), 0)
		layerNames = append(layerNames, unsafe.Pointer(&layerValidation[0]))
		instExtNames = append(instExtNames, unsafe.Pointer(&extDebugUtils[0]))
	}

	instInfo := vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: unsafe.Pointer(&app),
	}
	if len(layerNames) > 0 {
		instInfo.EnabledLayerCount = uint32(len(layerNames))
		instInfo.PpEnabledLayerNames = unsafe.Pointer(&layerNames[0])
	}
	if len(instExtNames) > 0 {
		instInfo.EnabledExtensionCount = uint32(len(instExtNames))
		instInfo.PpEnabledExtensionNames = unsafe.Pointer(&instExtNames[0])
	}
	instance, err := vk.CreateInstance(&instInfo)
	if err != nil {
		return nil, err
	}
	if err := vk.LoadInstance(instance); err != nil {
		return nil, err
	}

	var messenger uint64
	if debug {
		messenger = createDebugMessenger(instance)
	}

	physDevices, err := vk.EnumeratePhysicalDevices(instance)
	if err != nil {
		return nil, err
	}
	phys := physDevices[0]

	queueProps := vk.GetPhysicalDeviceQueueFamilyProperties(phys)
	if len(queueProps) == 0 {
		return nil, fmt.Errorf("vulkan: physical device exposes no queue families")
	}

	priorities := []float32{1}
	queueInfos := make([]vk.DeviceQueueCreateInfo, len(queueProps))
	for i := range queueProps {
		queueInfos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: uint32(i),
			QueueCount:       1,
			PQueuePriorities: unsafe.Pointer(&priorities[0]),
		}
	}

	timelineFeature := vk.PhysicalDeviceTimelineSemaphoreFeatures{
		SType:             vk.StructureTypeTimelineSemaphoreFeatures,
		TimelineSemaphore: 1,
	}
	extSwapchain := append([]byte("VK_KHR_swapchain"), 0)
	extNames := []unsafe.Pointer{unsafe.Pointer(&extSwapchain[0])}

	devInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		PNext:                   unsafe.Pointer(&timelineFeature),
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       unsafe.Pointer(&queueInfos[0]),
		EnabledExtensionCount:   uint32(len(extNames)),
		PpEnabledExtensionNames: unsafe.Pointer(&extNames[0]),
	}
	handle, err := vk.CreateDevice(phys, &devInfo)
	if err != nil {
		return nil, err
	}
	if err := vk.LoadDevice(instance); err != nil {
		return nil, err
	}

	d := &Device{
		instance:  instance,
		phys:      phys,
		handle:    handle,
		messenger: messenger,
		memProps:  vk.GetPhysicalDeviceMemoryProperties(phys),
		limits:    types.DefaultLimits(),
	}
	for i := range queueProps {
		queue := vk.GetDeviceQueue(handle, uint32(i), 0)
		d.families = append(d.families, &QueueFamily{device: d, index: uint32(i), queue: &Queue{device: d, handle: queue}})
	}
	native.Logger().Debug("vulkan: logical device created", "queueFamilies", len(queueProps))
	return d, nil
}

func (d *Device) Limits() types.Limits                     { return d.limits }
func (d *Device) QueueFamilyCount() int                    { return len(d.families) }
func (d *Device) QueueFamily(i int) native.QueueFamily      { return d.families[i] }

func (d *Device) WaitIdle() error { return vk.DeviceWaitIdle(d.handle) }

// Destroy tears down the logical device, the debug messenger (if
// any), and the instance. Not part of native.Device: callers that own
// the Vulkan bootstrap call it directly during shutdown.
func (d *Device) Destroy() {
	vk.DestroyDevice(d.handle)
	if d.messenger != 0 {
		vk.DestroyDebugUtilsMessengerEXT(d.instance, d.messenger)
	}
	vk.DestroyInstance(d.instance)
}

func (d *Device) findMemoryType(typeBits uint32, hostVisible bool) (uint32, error) {
	want := uint32(0x0001) // VK_MEMORY_PROPERTY_DEVICE_LOCAL_BIT
	if hostVisible {
		want = 0x0002 | 0x0004 // HOST_VISIBLE | HOST_COHERENT
	}
	return vk.FindMemoryType(d.memProps, typeBits, want)
}
