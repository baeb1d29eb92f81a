// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"
)

// PipelineCache caches built pipeline-state objects keyed by a hash of
// the builder configuration. Pipeline creation is expensive (driver-side
// shader compilation and validation); the cache turns repeated builds of
// identical configurations into a map lookup.
//
// This complements, not replaces, the device-level cache-blob round-trip:
// the blob accelerates creation across processes, the cache removes the
// creation call entirely within one.
//
// Thread Safety:
// PipelineCache is safe for concurrent use. It uses RWMutex with
// double-check locking for efficient reads and safe writes.
//
// The cache owns one reference to every stored state; callers receive a
// clone and release it independently. Close releases everything.
type PipelineCache struct {
	mu sync.RWMutex

	graphics map[uint64]*GraphicsPipelineState
	compute  map[uint64]*ComputePipelineState

	// hits counts cache hits (atomic for lock-free reads).
	hits uint64

	// misses counts cache misses (atomic for lock-free reads).
	misses uint64
}

// NewPipelineCache creates an empty pipeline cache.
func NewPipelineCache() *PipelineCache {
	return &PipelineCache{
		graphics: make(map[uint64]*GraphicsPipelineState),
		compute:  make(map[uint64]*ComputePipelineState),
	}
}

// GetOrBuildGraphics returns a cached state for the builder's current
// configuration or builds a new one. The returned state is owned by the
// caller and must be released.
func (c *PipelineCache) GetOrBuildGraphics(dev Device, b *GraphicsPipelineStateBuilder) (*GraphicsPipelineState, error) {
	key := HashGraphicsConfig(b)

	// Fast path: read lock. The clone is taken while the lock is held so
	// a concurrent Close cannot release the entry under us.
	c.mu.RLock()
	var clone *GraphicsPipelineState
	if st, ok := c.graphics[key]; ok {
		clone = st.Clone()
	}
	c.mu.RUnlock()
	if clone != nil {
		atomic.AddUint64(&c.hits, 1)
		return clone, nil
	}

	// Slow path: write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.graphics[key]; ok {
		if clone := st.Clone(); clone != nil {
			atomic.AddUint64(&c.hits, 1)
			return clone, nil
		}
		// The entry was released behind the cache's back; drop it and
		// rebuild.
		delete(c.graphics, key)
	}

	st, err := b.Build(dev)
	if err != nil {
		return nil, err
	}
	c.graphics[key] = st
	atomic.AddUint64(&c.misses, 1)

	return st.Clone(), nil
}

// GetOrBuildCompute is the compute counterpart of GetOrBuildGraphics.
func (c *PipelineCache) GetOrBuildCompute(dev Device, b *ComputePipelineStateBuilder) (*ComputePipelineState, error) {
	key := HashComputeConfig(b)

	c.mu.RLock()
	var clone *ComputePipelineState
	if st, ok := c.compute[key]; ok {
		clone = st.Clone()
	}
	c.mu.RUnlock()
	if clone != nil {
		atomic.AddUint64(&c.hits, 1)
		return clone, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.compute[key]; ok {
		if clone := st.Clone(); clone != nil {
			atomic.AddUint64(&c.hits, 1)
			return clone, nil
		}
		delete(c.compute, key)
	}

	st, err := b.Build(dev)
	if err != nil {
		return nil, err
	}
	c.compute[key] = st
	atomic.AddUint64(&c.misses, 1)

	return st.Clone(), nil
}

// Stats returns the hit and miss counters.
func (c *PipelineCache) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses)
}

// Len returns the number of cached pipeline states.
func (c *PipelineCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.graphics) + len(c.compute)
}

// Close releases the cache's reference to every stored state and empties
// the cache. States already handed to callers stay valid until those
// owners release them.
func (c *PipelineCache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, st := range c.graphics {
		st.Release()
		delete(c.graphics, k)
	}
	for k, st := range c.compute {
		st.Release()
		delete(c.compute, k)
	}
}

// HashGraphicsConfig computes an FNV-1a hash over every field of the
// builder configuration that reaches the flat descriptor, including full
// shader bytecode and the root-signature identity. The cache hint is
// excluded: it accelerates creation but does not change the resulting
// state. Identical hashes mean identical descriptors, up to hash
// collisions.
func HashGraphicsConfig(b *GraphicsPipelineStateBuilder) uint64 {
	h := fnv.New64a()

	hashWriteUintptr(h, uintptr(b.RootSignature.Pointer()))

	hashWriteBytes(h, b.VS.bytes())
	hashWriteBytes(h, b.PS.bytes())
	hashWriteBytes(h, b.DS.bytes())
	hashWriteBytes(h, b.HS.bytes())
	hashWriteBytes(h, b.GS.bytes())

	hashWriteUint32(h, uint32(len(b.StreamOutput.Entries)))
	for i := range b.StreamOutput.Entries {
		e := &b.StreamOutput.Entries[i]
		hashWriteUint32(h, e.Stream)
		hashWriteString(h, e.SemanticName)
		hashWriteUint32(h, e.SemanticIndex)
		hashWriteUint32(h, uint32(e.StartComponent)<<16|uint32(e.ComponentCount)<<8|uint32(e.OutputSlot))
	}
	hashWriteUint32(h, uint32(len(b.StreamOutput.BufferStrides)))
	for _, s := range b.StreamOutput.BufferStrides {
		hashWriteUint32(h, s)
	}
	hashWriteUint32(h, b.StreamOutput.RasterizedStream)

	blend := b.BlendState.ToRaw()
	hashWriteUint32(h, blend.AlphaToCoverageEnable)
	hashWriteUint32(h, blend.IndependentBlendEnable)
	for i := range blend.RenderTarget {
		rt := &blend.RenderTarget[i]
		hashWriteUint32(h, rt.BlendEnable)
		hashWriteUint32(h, rt.LogicOpEnable)
		hashWriteUint32(h, rt.SrcBlend)
		hashWriteUint32(h, rt.DestBlend)
		hashWriteUint32(h, rt.BlendOp)
		hashWriteUint32(h, rt.SrcBlendAlpha)
		hashWriteUint32(h, rt.DestBlendAlpha)
		hashWriteUint32(h, rt.BlendOpAlpha)
		hashWriteUint32(h, rt.LogicOp)
		hashWriteUint32(h, uint32(rt.RenderTargetWriteMask))
	}

	hashWriteUint32(h, b.SampleMask)

	rast := b.RasterizerState.ToRaw()
	hashWriteUint32(h, rast.FillMode)
	hashWriteUint32(h, rast.CullMode)
	hashWriteUint32(h, rast.FrontCounterClockwise)
	hashWriteUint32(h, uint32(rast.DepthBias))
	hashWriteFloat32(h, rast.DepthBiasClamp)
	hashWriteFloat32(h, rast.SlopeScaledDepthBias)
	hashWriteUint32(h, rast.DepthClipEnable)
	hashWriteUint32(h, rast.MultisampleEnable)
	hashWriteUint32(h, rast.AntialiasedLineEnable)
	hashWriteUint32(h, rast.ForcedSampleCount)
	hashWriteUint32(h, rast.ConservativeRaster)

	ds := b.DepthStencilState.ToRaw()
	hashWriteUint32(h, ds.DepthEnable)
	hashWriteUint32(h, ds.DepthWriteMask)
	hashWriteUint32(h, ds.DepthFunc)
	hashWriteUint32(h, ds.StencilEnable)
	hashWriteUint32(h, uint32(ds.StencilReadMask)<<8|uint32(ds.StencilWriteMask))
	for _, face := range [2]StencilOpDesc{b.DepthStencilState.FrontFace, b.DepthStencilState.BackFace} {
		hashWriteUint32(h, uint32(face.StencilFailOp))
		hashWriteUint32(h, uint32(face.StencilDepthFailOp))
		hashWriteUint32(h, uint32(face.StencilPassOp))
		hashWriteUint32(h, uint32(face.StencilFunc))
	}

	hashWriteUint32(h, uint32(len(b.InputLayout.Elements)))
	for i := range b.InputLayout.Elements {
		e := &b.InputLayout.Elements[i]
		hashWriteString(h, e.SemanticName)
		hashWriteUint32(h, e.SemanticIndex)
		hashWriteUint32(h, uint32(e.Format))
		hashWriteUint32(h, e.InputSlot)
		hashWriteUint32(h, e.AlignedByteOffset)
		hashWriteUint32(h, uint32(e.InputSlotClass))
		hashWriteUint32(h, e.InstanceDataStepRate)
	}

	hashWriteUint32(h, uint32(b.StripCutValue))
	hashWriteUint32(h, uint32(b.PrimitiveTopologyType))
	hashWriteUint32(h, b.NumRenderTargets)
	for _, f := range b.RTVFormats {
		hashWriteUint32(h, uint32(f))
	}
	hashWriteUint32(h, uint32(b.DSVFormat))
	hashWriteUint32(h, b.SampleDesc.Count)
	hashWriteUint32(h, b.SampleDesc.Quality)
	hashWriteUint32(h, b.NodeMask)
	hashWriteUint32(h, uint32(b.Flags))

	return h.Sum64()
}

// HashComputeConfig is the compute counterpart of HashGraphicsConfig.
func HashComputeConfig(b *ComputePipelineStateBuilder) uint64 {
	h := fnv.New64a()
	hashWriteUintptr(h, uintptr(b.RootSignature.Pointer()))
	hashWriteBytes(h, b.CS.bytes())
	hashWriteUint32(h, b.NodeMask)
	hashWriteUint32(h, uint32(b.Flags))
	return h.Sum64()
}

func hashWriteUint32(h hash.Hash64, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = h.Write(buf[:]) // fnv.Write never returns an error
}

func hashWriteUintptr(h hash.Hash64, v uintptr) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, _ = h.Write(buf[:])
}

func hashWriteFloat32(h hash.Hash64, v float32) {
	hashWriteUint32(h, math.Float32bits(v))
}

func hashWriteBytes(h hash.Hash64, b []byte) {
	hashWriteUint32(h, uint32(len(b)))
	_, _ = h.Write(b)
}

func hashWriteString(h hash.Hash64, s string) {
	hashWriteUint32(h, uint32(len(s)))
	_, _ = h.Write([]byte(s))
}
