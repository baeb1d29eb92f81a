// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"runtime"

	"github.com/gogpu/dx12/raw"
)

// InputClassification selects per-vertex or per-instance data
// (D3D12_INPUT_CLASSIFICATION).
type InputClassification uint32

const (
	PerVertexData   InputClassification = 0
	PerInstanceData InputClassification = 1
)

// AppendAlignedElement tells the runtime to place an element directly
// after the previous one (D3D12_APPEND_ALIGNED_ELEMENT).
const AppendAlignedElement uint32 = 0xFFFFFFFF

// InputElementDesc describes one vertex-input element.
type InputElementDesc struct {
	SemanticName         string
	SemanticIndex        uint32
	Format               Format
	InputSlot            uint32
	AlignedByteOffset    uint32
	InputSlotClass       InputClassification
	InstanceDataStepRate uint32
}

// StripCutValue is the index value that restarts a primitive strip
// (D3D12_INDEX_BUFFER_STRIP_CUT_VALUE).
type StripCutValue uint32

const (
	StripCutDisabled  StripCutValue = 0
	StripCutMaxUint16 StripCutValue = 1
	StripCutMaxUint32 StripCutValue = 2
)

// PrimitiveTopologyType classifies the primitive topology
// (D3D12_PRIMITIVE_TOPOLOGY_TYPE).
type PrimitiveTopologyType uint32

const (
	PrimitiveTopologyUndefined PrimitiveTopologyType = 0
	PrimitiveTopologyPoint     PrimitiveTopologyType = 1
	PrimitiveTopologyLine      PrimitiveTopologyType = 2
	PrimitiveTopologyTriangle  PrimitiveTopologyType = 3
	PrimitiveTopologyPatch     PrimitiveTopologyType = 4
)

// InputLayoutBuilder owns an ordered list of input elements and produces
// the flat (pointer, count) view the aggregate descriptor stores.
//
// The flat form points into storage built by prepare, not into Elements
// itself, so Elements may be edited freely between builds. The view from
// one prepare call must be consumed before the next mutation.
type InputLayoutBuilder struct {
	Elements []InputElementDesc
}

// Add appends an element and returns the builder for chaining.
func (b *InputLayoutBuilder) Add(e InputElementDesc) *InputLayoutBuilder {
	b.Elements = append(b.Elements, e)
	return b
}

// inputLayoutView is the two-phase flat form: the descriptor fragment plus
// the backing storage its pointers reference. It is consumed immediately by
// descriptor assembly and never stored.
type inputLayoutView struct {
	desc  raw.InputLayoutDesc
	elems []raw.InputElementDesc
	names [][]byte
}

// keepAlive pins the backing storage past the device call that consumed
// the view.
func (v *inputLayoutView) keepAlive() {
	runtime.KeepAlive(v.elems)
	runtime.KeepAlive(v.names)
}

// prepare builds the flat element array. Semantic names are copied into
// NUL-terminated byte strings owned by the view.
func (b *InputLayoutBuilder) prepare() inputLayoutView {
	if len(b.Elements) == 0 {
		return inputLayoutView{}
	}
	v := inputLayoutView{
		elems: make([]raw.InputElementDesc, len(b.Elements)),
		names: make([][]byte, len(b.Elements)),
	}
	for i, e := range b.Elements {
		name := append([]byte(e.SemanticName), 0)
		v.names[i] = name
		v.elems[i] = raw.InputElementDesc{
			SemanticName:         &name[0],
			SemanticIndex:        e.SemanticIndex,
			Format:               uint32(e.Format),
			InputSlot:            e.InputSlot,
			AlignedByteOffset:    e.AlignedByteOffset,
			InputSlotClass:       uint32(e.InputSlotClass),
			InstanceDataStepRate: e.InstanceDataStepRate,
		}
	}
	v.desc = raw.InputLayoutDesc{
		InputElementDescs: &v.elems[0],
		NumElements:       uint32(len(v.elems)),
	}
	return v
}
