// Package dx12 provides typed builders for Direct3D 12 pipeline-state
// objects.
//
// # Overview
//
// dx12 sits between application code and the D3D12 pipeline-state creation
// entry points. It replaces hand-assembled flat descriptor structs with
// composable, typed sub-descriptors (blend, rasterizer, depth-stencil,
// input layout, stream output) and two builders, one for graphics and one
// for compute pipelines. Descriptor assembly, pointer lifetime, and COM
// reference ownership are handled by the library; validation stays with
// the device.
//
// The package never creates a device. The host hands in a Device (see
// backend/d3d12 for the Windows implementation over a real ID3D12Device),
// and every Build call goes through it. Tests substitute an in-process
// double.
//
// # Quick Start
//
//	import "github.com/gogpu/dx12"
//
//	b := dx12.NewGraphicsPipelineStateBuilder(rootSig)
//	b.VS = dx12.NewVertexShader(vsBytecode)
//	b.PS = dx12.NewPixelShader(psBytecode)
//	b.RTVFormats[0] = dx12.FormatR8G8B8A8Unorm
//	b.InputLayout.Add(dx12.InputElementDesc{
//		SemanticName: "POSITION",
//		Format:       dx12.FormatR32G32B32Float,
//	})
//
//	ps, err := b.Build(dev)
//	if err != nil {
//		return err
//	}
//	defer ps.Release()
//
// # Architecture
//
// The library is organized into:
//   - Public API: builders, sub-descriptors, PipelineState, CacheBlob,
//     SharedHandle, PipelineCache
//   - raw: exact flat ABI struct layouts consumed by the device
//   - backend/d3d12: Windows implementation over ID3D12Device (build-tagged;
//     the rest of the module is portable)
//   - cmd/hlslprep: WGSL to HLSL translation for offline shader compilation
//
// # Resource Ownership
//
// Pipeline states and cache blobs returned by the device carry exactly one
// COM reference, owned through a SharedHandle. Clone acquires an additional
// reference; each owner releases independently and release is idempotent
// per owner. Root signatures and shader bytecode are borrowed, never owned.
//
// # Caching
//
// Two caching layers are available. PipelineState.Cached extracts the
// device's cached blob for persistence across processes; assigning it to a
// builder's Cache field seeds a later build. PipelineCache removes repeated
// creation calls within one process by keying built states on a hash of the
// builder configuration.
package dx12

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
