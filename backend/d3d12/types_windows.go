// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package d3d12

import "golang.org/x/sys/windows"

type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type iD3D12ObjectVtbl struct {
	iUnknownVtbl

	GetPrivateData          uintptr
	SetPrivateData          uintptr
	SetPrivateDataInterface uintptr
	SetName                 uintptr
}

// iD3D12DeviceVtbl lists the full ID3D12Device method table. Only a few
// slots are dispatched, but every entry must be present so the offsets of
// the ones that are stay correct.
type iD3D12DeviceVtbl struct {
	iD3D12ObjectVtbl

	GetNodeCount                     uintptr
	CreateCommandQueue               uintptr
	CreateCommandAllocator           uintptr
	CreateGraphicsPipelineState      uintptr
	CreateComputePipelineState       uintptr
	CreateCommandList                uintptr
	CheckFeatureSupport              uintptr
	CreateDescriptorHeap             uintptr
	GetDescriptorHandleIncrementSize uintptr
	CreateRootSignature              uintptr
	CreateConstantBufferView         uintptr
	CreateShaderResourceView         uintptr
	CreateUnorderedAccessView        uintptr
	CreateRenderTargetView           uintptr
	CreateDepthStencilView           uintptr
	CreateSampler                    uintptr
	CopyDescriptors                  uintptr
	CopyDescriptorsSimple            uintptr
	GetResourceAllocationInfo        uintptr
	GetCustomHeapProperties          uintptr
	CreateCommittedResource          uintptr
	CreateHeap                       uintptr
	CreatePlacedResource             uintptr
	CreateReservedResource           uintptr
	CreateSharedHandle               uintptr
	OpenSharedHandle                 uintptr
	OpenSharedHandleByName           uintptr
	MakeResident                     uintptr
	Evict                            uintptr
	CreateFence                      uintptr
	GetDeviceRemovedReason           uintptr
	GetCopyableFootprints            uintptr
	CreateQueryHeap                  uintptr
	SetStablePowerState              uintptr
	CreateCommandSignature           uintptr
	GetResourceTiling                uintptr
	GetAdapterLuid                   uintptr
}

type iD3D12Device struct {
	vtbl *iD3D12DeviceVtbl
}

type iD3D12DeviceChildVtbl struct {
	iD3D12ObjectVtbl

	GetDevice uintptr
}

type iD3D12PipelineStateVtbl struct {
	iD3D12DeviceChildVtbl

	GetCachedBlob uintptr
}

type iD3D12PipelineState struct {
	vtbl *iD3D12PipelineStateVtbl
}

type iD3DBlobVtbl struct {
	iUnknownVtbl

	GetBufferPointer uintptr
	GetBufferSize    uintptr
}

type iD3DBlob struct {
	vtbl *iD3DBlobVtbl
}

// iidID3D12PipelineState is IID_ID3D12PipelineState,
// {765A30F3-F624-4C6F-A828-ACE948622445}.
var iidID3D12PipelineState = windows.GUID{
	Data1: 0x765A30F3,
	Data2: 0xF624,
	Data3: 0x4C6F,
	Data4: [8]byte{0xA8, 0x28, 0xAC, 0xE9, 0x48, 0x62, 0x24, 0x45},
}
