// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package dx12

import (
	"errors"
	"sync"
	"testing"
	"unsafe"
)

func TestPipelineCacheHitMiss(t *testing.T) {
	dev := &fakeDevice{}
	cache := NewPipelineCache()
	defer cache.Close()

	b := NewGraphicsPipelineStateBuilder(nil)
	b.VS = NewVertexShader([]byte{1, 2, 3})

	first, err := cache.GetOrBuildGraphics(dev, b)
	if err != nil {
		t.Fatalf("GetOrBuildGraphics() = %v", err)
	}
	defer first.Release()

	second, err := cache.GetOrBuildGraphics(dev, b)
	if err != nil {
		t.Fatalf("GetOrBuildGraphics() = %v", err)
	}
	defer second.Release()

	if len(dev.created) != 1 {
		t.Errorf("device created %d states, want 1", len(dev.created))
	}
	if hits, misses := cache.Stats(); hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d/%d, want 1 hit, 1 miss", hits, misses)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestPipelineCacheDistinctConfigs(t *testing.T) {
	dev := &fakeDevice{}
	cache := NewPipelineCache()
	defer cache.Close()

	b := NewGraphicsPipelineStateBuilder(nil)
	first, err := cache.GetOrBuildGraphics(dev, b)
	if err != nil {
		t.Fatalf("GetOrBuildGraphics() = %v", err)
	}
	defer first.Release()

	b.RasterizerState.CullMode = CullModeNone
	second, err := cache.GetOrBuildGraphics(dev, b)
	if err != nil {
		t.Fatalf("GetOrBuildGraphics() = %v", err)
	}
	defer second.Release()

	if len(dev.created) != 2 {
		t.Errorf("device created %d states, want 2 for distinct configs", len(dev.created))
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}
}

func TestPipelineCacheBuildFailureNotCached(t *testing.T) {
	dev := &fakeDevice{status: StatusInvalidArg}
	cache := NewPipelineCache()
	defer cache.Close()

	b := NewComputePipelineStateBuilder(nil)
	_, err := cache.GetOrBuildCompute(dev, b)
	var ce *CreationError
	if !errors.As(err, &ce) {
		t.Fatalf("GetOrBuildCompute() = %v, want *CreationError", err)
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, failures must not be cached", cache.Len())
	}

	// The device recovers; the next call builds.
	dev.status = StatusOK
	ps, err := cache.GetOrBuildCompute(dev, b)
	if err != nil {
		t.Fatalf("GetOrBuildCompute() after recovery = %v", err)
	}
	ps.Release()
}

func TestPipelineCacheCloseReleasesStates(t *testing.T) {
	dev := &fakeDevice{}
	cache := NewPipelineCache()

	b := NewComputePipelineStateBuilder(nil)
	b.CS = NewComputeShader([]byte{7})
	ps, err := cache.GetOrBuildCompute(dev, b)
	if err != nil {
		t.Fatalf("GetOrBuildCompute() = %v", err)
	}

	// Two references live: the cache's and the caller's clone.
	res := dev.created[0]
	if res.refs.Load() != 2 {
		t.Fatalf("refs = %d, want 2", res.refs.Load())
	}

	cache.Close()
	if res.destroyed() {
		t.Fatal("Close destroyed a state still held by a caller")
	}
	if cache.Len() != 0 {
		t.Errorf("Len() after Close = %d, want 0", cache.Len())
	}

	ps.Release()
	if !res.destroyed() {
		t.Error("state not destroyed after last owner released")
	}
}

func TestPipelineCacheRebuildsReleasedEntry(t *testing.T) {
	dev := &fakeDevice{}
	cache := NewPipelineCache()
	defer cache.Close()

	b := NewGraphicsPipelineStateBuilder(nil)
	first, err := cache.GetOrBuildGraphics(dev, b)
	if err != nil {
		t.Fatalf("GetOrBuildGraphics() = %v", err)
	}
	first.Release()

	// Drop the cache's own reference behind its back. The next lookup
	// finds an entry whose handle is spent and must rebuild instead of
	// handing out a nil state.
	cache.mu.Lock()
	for _, st := range cache.graphics {
		st.Release()
	}
	cache.mu.Unlock()

	ps, err := cache.GetOrBuildGraphics(dev, b)
	if err != nil {
		t.Fatalf("GetOrBuildGraphics() = %v", err)
	}
	if ps == nil {
		t.Fatal("GetOrBuildGraphics() returned a nil state with a nil error")
	}
	ps.Release()

	if len(dev.created) != 2 {
		t.Errorf("device created %d states, want 2 (stale entry rebuilt)", len(dev.created))
	}
}

func TestPipelineCacheCloseRace(t *testing.T) {
	dev := &fakeDevice{}
	cache := NewPipelineCache()
	defer cache.Close()

	b := NewComputePipelineStateBuilder(nil)
	b.CS = NewComputeShader([]byte{1})

	// Close racing GetOrBuild must never surface a nil state without an
	// error.
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				ps, err := cache.GetOrBuildCompute(dev, b)
				if err != nil {
					t.Errorf("GetOrBuildCompute() = %v", err)
					return
				}
				if ps == nil {
					t.Error("GetOrBuildCompute() returned a nil state with a nil error")
					return
				}
				ps.Release()
			}
		}()
	}
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				cache.Close()
			}
		}()
	}
	wg.Wait()
}

func TestPipelineCacheConcurrent(t *testing.T) {
	dev := &fakeDevice{}
	cache := NewPipelineCache()
	defer cache.Close()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := NewGraphicsPipelineStateBuilder(nil)
			b.VS = NewVertexShader([]byte{1, 2, 3})
			ps, err := cache.GetOrBuildGraphics(dev, b)
			if err != nil {
				t.Errorf("GetOrBuildGraphics() = %v", err)
				return
			}
			ps.Release()
		}()
	}
	wg.Wait()

	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after concurrent identical builds", cache.Len())
	}
}

func TestHashGraphicsConfigSensitivity(t *testing.T) {
	base := func() *GraphicsPipelineStateBuilder {
		b := NewGraphicsPipelineStateBuilder(nil)
		b.VS = NewVertexShader([]byte{1, 2, 3})
		b.InputLayout.Add(InputElementDesc{SemanticName: "POSITION", Format: FormatR32G32B32Float})
		return b
	}

	ref := HashGraphicsConfig(base())
	if got := HashGraphicsConfig(base()); got != ref {
		t.Fatal("identical configurations must hash equal")
	}

	mutations := map[string]func(*GraphicsPipelineStateBuilder){
		"root signature": func(b *GraphicsPipelineStateBuilder) {
			b.RootSignature = RootSignatureFromPointer(unsafe.Pointer(new(int)))
		},
		"shader bytecode": func(b *GraphicsPipelineStateBuilder) { b.VS = NewVertexShader([]byte{1, 2, 4}) },
		"pixel stage":     func(b *GraphicsPipelineStateBuilder) { b.PS = NewPixelShader([]byte{1}) },
		"blend state":     func(b *GraphicsPipelineStateBuilder) { b.BlendState.RenderTarget[0].BlendEnable = true },
		"cull mode":       func(b *GraphicsPipelineStateBuilder) { b.RasterizerState.CullMode = CullModeNone },
		"depth func":      func(b *GraphicsPipelineStateBuilder) { b.DepthStencilState.DepthFunc = ComparisonAlways },
		"semantic name":   func(b *GraphicsPipelineStateBuilder) { b.InputLayout.Elements[0].SemanticName = "NORMAL" },
		"rtv format":      func(b *GraphicsPipelineStateBuilder) { b.RTVFormats[0] = FormatB8G8R8A8Unorm },
		"sample count":    func(b *GraphicsPipelineStateBuilder) { b.SampleDesc.Count = 4 },
		"node mask":       func(b *GraphicsPipelineStateBuilder) { b.NodeMask = 1 },
		"flags":           func(b *GraphicsPipelineStateBuilder) { b.Flags = PipelineStateFlagToolDebug },
	}
	for name, mutate := range mutations {
		b := base()
		mutate(b)
		if HashGraphicsConfig(b) == ref {
			t.Errorf("%s mutation did not change the hash", name)
		}
	}
}

func TestHashComputeConfigSensitivity(t *testing.T) {
	b := NewComputePipelineStateBuilder(nil)
	b.CS = NewComputeShader([]byte{1, 2, 3})
	ref := HashComputeConfig(b)

	b.CS = NewComputeShader([]byte{1, 2, 4})
	if HashComputeConfig(b) == ref {
		t.Error("bytecode mutation did not change the hash")
	}

	b.CS = NewComputeShader([]byte{1, 2, 3})
	b.NodeMask = 1
	if HashComputeConfig(b) == ref {
		t.Error("node mask mutation did not change the hash")
	}

	b.NodeMask = 0
	b.RootSignature = RootSignatureFromPointer(unsafe.Pointer(new(int)))
	if HashComputeConfig(b) == ref {
		t.Error("root signature mutation did not change the hash")
	}
}

func TestPipelineCacheDistinctRootSignatures(t *testing.T) {
	dev := &fakeDevice{}
	cache := NewPipelineCache()
	defer cache.Close()

	// Identical configuration over two distinct root signatures must
	// never share a cached state: the root signature defines the binding
	// layout the pipeline was compiled against.
	sigA := unsafe.Pointer(new(int))
	sigB := unsafe.Pointer(new(int))

	b := NewGraphicsPipelineStateBuilder(RootSignatureFromPointer(sigA))
	b.VS = NewVertexShader([]byte{1, 2, 3})

	first, err := cache.GetOrBuildGraphics(dev, b)
	if err != nil {
		t.Fatalf("GetOrBuildGraphics() = %v", err)
	}
	defer first.Release()
	if dev.lastGraphics.RootSignature != sigA {
		t.Fatal("first build does not carry root signature A")
	}

	b.RootSignature = RootSignatureFromPointer(sigB)
	second, err := cache.GetOrBuildGraphics(dev, b)
	if err != nil {
		t.Fatalf("GetOrBuildGraphics() = %v", err)
	}
	defer second.Release()

	if len(dev.created) != 2 {
		t.Fatalf("device created %d states, want 2 for distinct root signatures", len(dev.created))
	}
	if dev.lastGraphics.RootSignature != sigB {
		t.Error("second build does not carry root signature B")
	}
}

func TestHashConfigNilStages(t *testing.T) {
	// Hashing must tolerate nil shader slots.
	g := NewGraphicsPipelineStateBuilder(nil)
	HashGraphicsConfig(g)

	c := NewComputePipelineStateBuilder(nil)
	HashComputeConfig(c)
}
