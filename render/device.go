// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
)

// DeviceHandle is an alias for gpucontext.DeviceProvider.
//
// GPU backends implement it on their Context so that host code and other
// gogpu libraries can share the device, queue and surface format without
// depending on the backend package.
type DeviceHandle = gpucontext.DeviceProvider

// Device returns the DeviceHandle of the Renderer's Context.
// The second result is false for backends without a GPU device (null) and
// for released renderers.
func (r *Renderer) Device() (DeviceHandle, bool) {
	if r.ctx == nil {
		return nil, false
	}
	h, ok := r.ctx.(DeviceHandle)
	return h, ok
}

// DescribeAdapter formats adapter information for logs.
func DescribeAdapter(info gpucontext.AdapterInfo) string {
	if info.Name == "" {
		return info.Type.String()
	}
	return info.Name + " (" + info.Type.String() + ")"
}
