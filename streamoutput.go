// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"runtime"

	"github.com/gogpu/dx12/raw"
)

// NoRasterizedStream disables rasterization of stream-output data
// (D3D12_SO_NO_RASTERIZED_STREAM).
const NoRasterizedStream uint32 = 0xFFFFFFFF

// SODeclarationEntry describes one stream-output element
// (D3D12_SO_DECLARATION_ENTRY).
type SODeclarationEntry struct {
	Stream         uint32
	SemanticName   string
	SemanticIndex  uint32
	StartComponent uint8
	ComponentCount uint8
	OutputSlot     uint8
}

// StreamOutputDescBuilder owns the stream-output declaration and produces
// its flat form. The zero value is the default: no stream output.
//
// Like InputLayoutBuilder, the flat form from prepare points into storage
// owned by the returned view, so the builder's slices may be edited freely
// between builds.
type StreamOutputDescBuilder struct {
	Entries          []SODeclarationEntry
	BufferStrides    []uint32
	RasterizedStream uint32
}

// streamOutputView holds the flat descriptor fragment and the backing
// arrays its pointers reference.
type streamOutputView struct {
	desc    raw.StreamOutputDesc
	entries []raw.SODeclarationEntry
	names   [][]byte
	strides []uint32
}

func (v *streamOutputView) keepAlive() {
	runtime.KeepAlive(v.entries)
	runtime.KeepAlive(v.names)
	runtime.KeepAlive(v.strides)
}

// prepare builds the flat stream-output descriptor. An empty builder
// yields a zeroed fragment, which the device reads as "no stream output".
func (b *StreamOutputDescBuilder) prepare() streamOutputView {
	v := streamOutputView{
		desc: raw.StreamOutputDesc{RasterizedStream: b.RasterizedStream},
	}
	if len(b.Entries) > 0 {
		v.entries = make([]raw.SODeclarationEntry, len(b.Entries))
		v.names = make([][]byte, len(b.Entries))
		for i, e := range b.Entries {
			name := append([]byte(e.SemanticName), 0)
			v.names[i] = name
			v.entries[i] = raw.SODeclarationEntry{
				Stream:         e.Stream,
				SemanticName:   &name[0],
				SemanticIndex:  e.SemanticIndex,
				StartComponent: e.StartComponent,
				ComponentCount: e.ComponentCount,
				OutputSlot:     e.OutputSlot,
			}
		}
		v.desc.SODeclaration = &v.entries[0]
		v.desc.NumEntries = uint32(len(v.entries))
	}
	if len(b.BufferStrides) > 0 {
		v.strides = append([]uint32(nil), b.BufferStrides...)
		v.desc.BufferStrides = &v.strides[0]
		v.desc.NumStrides = uint32(len(v.strides))
	}
	return v
}
