// Package wgpu provides the GPU render backend using gogpu/wgpu.
//
// It implements render.Context over the gogpu/wgpu Pure Go WebGPU
// implementation, which selects Vulkan, Metal, DX12 or GLES depending on
// the platform. Importing the package registers the backend as "wgpu" with
// render.PriorityGPU:
//
//	import _ "github.com/gogpu/vox/backend/wgpu"
//
// # Components
//
//   - Context: instance, adapter, device, queue and window surface
//   - voxelPipeline: render pipeline, uniform buffer and bind group for the
//     instanced cube shader in render/shader
//   - GPUInfo: adapter description logged at startup
//
// # Surface Errors
//
// Context.Draw returns the gogpu/wgpu surface sentinels unchanged
// (wgpu.ErrSurfaceLost, wgpu.ErrSurfaceOutdated, wgpu.ErrTimeout,
// wgpu.ErrOutOfMemory), which render.Classify maps onto render.SurfaceError.
//
// # GPU Sharing
//
// Context implements gpucontext.DeviceProvider, so other gogpu libraries can
// draw with the same device and queue.
package wgpu
