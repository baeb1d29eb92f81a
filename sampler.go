// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"math"

	"github.com/gogpu/dx12/raw"
)

// Filter selects texture filtering (D3D12_FILTER). Only the commonly used
// values are named; the full enumeration can be used by converting the
// native value directly.
type Filter uint32

const (
	FilterMinMagMipPoint            Filter = 0x00
	FilterMinMagPointMipLinear      Filter = 0x01
	FilterMinMagLinearMipPoint      Filter = 0x14
	FilterMinMagMipLinear           Filter = 0x15
	FilterAnisotropic               Filter = 0x55
	FilterComparisonMinMagMipPoint  Filter = 0x80
	FilterComparisonMinMagMipLinear Filter = 0x95
	FilterComparisonAnisotropic     Filter = 0xD5
)

// TextureAddressMode resolves texture coordinates outside [0, 1]
// (D3D12_TEXTURE_ADDRESS_MODE).
type TextureAddressMode uint32

const (
	TextureAddressWrap       TextureAddressMode = 1
	TextureAddressMirror     TextureAddressMode = 2
	TextureAddressClamp      TextureAddressMode = 3
	TextureAddressBorder     TextureAddressMode = 4
	TextureAddressMirrorOnce TextureAddressMode = 5
)

// SamplerDesc describes a sampler object. Samplers share ComparisonFunc
// with the depth-stencil stage for comparison filtering.
type SamplerDesc struct {
	Filter         Filter
	AddressU       TextureAddressMode
	AddressV       TextureAddressMode
	AddressW       TextureAddressMode
	MipLODBias     float32
	MaxAnisotropy  uint32
	ComparisonFunc ComparisonFunc
	BorderColor    [4]float32
	MinLOD         float32
	MaxLOD         float32
}

// DefaultSamplerDesc returns a linear wrap sampler with the full mip
// range, matching the D3D12 helper defaults.
func DefaultSamplerDesc() SamplerDesc {
	return SamplerDesc{
		Filter:         FilterMinMagMipLinear,
		AddressU:       TextureAddressWrap,
		AddressV:       TextureAddressWrap,
		AddressW:       TextureAddressWrap,
		MaxAnisotropy:  16,
		ComparisonFunc: ComparisonLessEqual,
		MaxLOD:         math.MaxFloat32,
	}
}

// ToRaw converts into the flat D3D12_SAMPLER_DESC layout, field by field.
func (d SamplerDesc) ToRaw() raw.SamplerDesc {
	return raw.SamplerDesc{
		Filter:         uint32(d.Filter),
		AddressU:       uint32(d.AddressU),
		AddressV:       uint32(d.AddressV),
		AddressW:       uint32(d.AddressW),
		MipLODBias:     d.MipLODBias,
		MaxAnisotropy:  d.MaxAnisotropy,
		ComparisonFunc: uint32(d.ComparisonFunc),
		BorderColor:    d.BorderColor,
		MinLOD:         d.MinLOD,
		MaxLOD:         d.MaxLOD,
	}
}
