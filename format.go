// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import "fmt"

// Format identifies a DXGI pixel format. Values match the DXGI_FORMAT
// enumeration, so they pass into the flat descriptor unchanged.
//
// Only the formats commonly used for render targets, depth-stencil views
// and vertex attributes are named here; any other DXGI_FORMAT value can be
// used by converting it directly.
type Format uint32

const (
	FormatUnknown           Format = 0
	FormatR32G32B32A32Float Format = 2
	FormatR32G32B32Float    Format = 6
	FormatR16G16B16A16Float Format = 10
	FormatR32G32Float       Format = 16
	FormatD32FloatS8X24Uint Format = 20
	FormatR10G10B10A2Unorm  Format = 24
	FormatR8G8B8A8Unorm     Format = 28
	FormatR8G8B8A8UnormSRGB Format = 29
	FormatD32Float          Format = 40
	FormatR32Float          Format = 41
	FormatR32Uint           Format = 42
	FormatD24UnormS8Uint    Format = 45
	FormatR16Float          Format = 54
	FormatD16Unorm          Format = 55
	FormatR16Uint           Format = 57
	FormatR8Unorm           Format = 61
	FormatB8G8R8A8Unorm     Format = 87
	FormatB8G8R8A8UnormSRGB Format = 91
)

// String returns the DXGI name of the format.
func (f Format) String() string {
	switch f {
	case FormatUnknown:
		return "UNKNOWN"
	case FormatR32G32B32A32Float:
		return "R32G32B32A32_FLOAT"
	case FormatR32G32B32Float:
		return "R32G32B32_FLOAT"
	case FormatR16G16B16A16Float:
		return "R16G16B16A16_FLOAT"
	case FormatR32G32Float:
		return "R32G32_FLOAT"
	case FormatD32FloatS8X24Uint:
		return "D32_FLOAT_S8X24_UINT"
	case FormatR10G10B10A2Unorm:
		return "R10G10B10A2_UNORM"
	case FormatR8G8B8A8Unorm:
		return "R8G8B8A8_UNORM"
	case FormatR8G8B8A8UnormSRGB:
		return "R8G8B8A8_UNORM_SRGB"
	case FormatD32Float:
		return "D32_FLOAT"
	case FormatR32Float:
		return "R32_FLOAT"
	case FormatR32Uint:
		return "R32_UINT"
	case FormatD24UnormS8Uint:
		return "D24_UNORM_S8_UINT"
	case FormatR16Float:
		return "R16_FLOAT"
	case FormatD16Unorm:
		return "D16_UNORM"
	case FormatR16Uint:
		return "R16_UINT"
	case FormatR8Unorm:
		return "R8_UNORM"
	case FormatB8G8R8A8Unorm:
		return "B8G8R8A8_UNORM"
	case FormatB8G8R8A8UnormSRGB:
		return "B8G8R8A8_UNORM_SRGB"
	default:
		return fmt.Sprintf("DXGI_FORMAT(%d)", uint32(f))
	}
}
