// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"testing"
	"unsafe"
)

func TestInputLayoutBuilderAdd(t *testing.T) {
	var b InputLayoutBuilder
	b.Add(InputElementDesc{SemanticName: "POSITION", Format: FormatR32G32B32Float}).
		Add(InputElementDesc{SemanticName: "TEXCOORD", Format: FormatR32G32Float, AlignedByteOffset: AppendAlignedElement})

	if len(b.Elements) != 2 {
		t.Fatalf("len(Elements) = %d, want 2", len(b.Elements))
	}
	if b.Elements[1].SemanticName != "TEXCOORD" {
		t.Errorf("Elements[1].SemanticName = %q, want TEXCOORD", b.Elements[1].SemanticName)
	}
}

func TestInputLayoutPrepareEmpty(t *testing.T) {
	var b InputLayoutBuilder
	v := b.prepare()
	if v.desc.InputElementDescs != nil || v.desc.NumElements != 0 {
		t.Errorf("empty prepare = %+v, want zero descriptor", v.desc)
	}
}

func TestInputLayoutPrepare(t *testing.T) {
	var b InputLayoutBuilder
	b.Add(InputElementDesc{
		SemanticName:      "POSITION",
		Format:            FormatR32G32B32Float,
		AlignedByteOffset: 0,
	})
	b.Add(InputElementDesc{
		SemanticName:         "COLOR",
		SemanticIndex:        1,
		Format:               FormatR8G8B8A8Unorm,
		InputSlot:            1,
		AlignedByteOffset:    AppendAlignedElement,
		InputSlotClass:       PerInstanceData,
		InstanceDataStepRate: 2,
	})

	v := b.prepare()
	if v.desc.NumElements != 2 {
		t.Fatalf("NumElements = %d, want 2", v.desc.NumElements)
	}
	if v.desc.InputElementDescs != &v.elems[0] {
		t.Error("descriptor does not point at the view's element array")
	}

	e := v.elems[1]
	if e.SemanticIndex != 1 || e.Format != uint32(FormatR8G8B8A8Unorm) || e.InputSlot != 1 {
		t.Errorf("elems[1] = %+v, want COLOR1 R8G8B8A8 slot 1", e)
	}
	if e.AlignedByteOffset != AppendAlignedElement {
		t.Errorf("AlignedByteOffset = %#x, want APPEND_ALIGNED_ELEMENT", e.AlignedByteOffset)
	}
	if e.InputSlotClass != uint32(PerInstanceData) || e.InstanceDataStepRate != 2 {
		t.Errorf("instancing = %d/%d, want per-instance step 2", e.InputSlotClass, e.InstanceDataStepRate)
	}
}

func TestInputLayoutPrepareNulTerminatedNames(t *testing.T) {
	var b InputLayoutBuilder
	b.Add(InputElementDesc{SemanticName: "NORMAL"})

	v := b.prepare()
	name := v.names[0]
	if string(name) != "NORMAL\x00" {
		t.Fatalf("names[0] = %q, want NUL-terminated NORMAL", name)
	}
	if v.elems[0].SemanticName != &name[0] {
		t.Error("element does not point at the view-owned name")
	}
	// Walk the C string back out through the pointer.
	got := ""
	for p := v.elems[0].SemanticName; *p != 0; p = (*byte)(unsafe.Add(unsafe.Pointer(p), 1)) {
		got += string(rune(*p))
	}
	if got != "NORMAL" {
		t.Errorf("C string = %q, want NORMAL", got)
	}
}

func TestInputLayoutPrepareOwnsStorage(t *testing.T) {
	var b InputLayoutBuilder
	b.Add(InputElementDesc{SemanticName: "POSITION", Format: FormatR32G32B32Float})

	v := b.prepare()

	// Mutating the builder after prepare must not disturb the view.
	b.Elements[0].Format = FormatR32Float
	b.Add(InputElementDesc{SemanticName: "EXTRA"})

	if v.desc.NumElements != 1 {
		t.Errorf("NumElements = %d, want 1", v.desc.NumElements)
	}
	if v.elems[0].Format != uint32(FormatR32G32B32Float) {
		t.Errorf("elems[0].Format = %d, builder mutation leaked into view", v.elems[0].Format)
	}
}
