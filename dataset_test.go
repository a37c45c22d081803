// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fishhash

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// TestDatasetItemDeterminism ensures dataset items are a pure function of the
// cache and index, including across separately constructed hashers.
func TestDatasetItemDeterminism(t *testing.T) {
	ctx := lightContext(t)

	indexes := []uint32{0, 1, 2, 511, 512, 1000000, FullDatasetNumItems - 1}
	for _, index := range indexes {
		first := calculateDatasetItem(newKeccak512Hasher(), ctx.lightCache,
			index)
		second := calculateDatasetItem(newKeccak512Hasher(), ctx.lightCache,
			index)
		if first != second {
			t.Errorf("item %d differs across computations:\nfirst: %s"+
				"second: %s", index, spew.Sdump(first), spew.Sdump(second))
		}
	}
}

// TestLookupLight ensures light-context lookups always recompute the item and
// match the generator byte for byte.
func TestLookupLight(t *testing.T) {
	ctx := lightContext(t)
	keccak512 := newKeccak512Hasher()

	for _, index := range []uint32{0, 7, 123456} {
		want := calculateDatasetItem(newKeccak512Hasher(), ctx.lightCache,
			index)
		got := ctx.lookup(keccak512, index)
		if got != want {
			t.Errorf("lookup(%d) does not match generator", index)
		}
	}
}

// TestLookupFullLazy ensures full-context lookups materialize the item on
// first access, return the cached bytes afterwards, and that both match the
// generator.  A small dataset stands in for the full allocation; the lookup
// path only dereferences the requested index.
func TestLookupFullLazy(t *testing.T) {
	light := lightContext(t)
	ctx := &Context{
		lightCache:  light.lightCache,
		fullDataset: make([]Hash1024, 16),
	}
	keccak512 := newKeccak512Hasher()

	const index = 5
	want := calculateDatasetItem(newKeccak512Hasher(), ctx.lightCache, index)

	var zero Hash1024
	if ctx.fullDataset[index] != zero {
		t.Fatal("dataset item unexpectedly materialized before lookup")
	}
	if got := ctx.lookup(keccak512, index); got != want {
		t.Fatal("first lookup does not match generator")
	}
	if ctx.fullDataset[index] != want {
		t.Fatal("lookup did not store the materialized item")
	}
	if got := ctx.lookup(keccak512, index); got != want {
		t.Fatal("cached lookup does not match generator")
	}
}

// TestBuildDatasetPartitioning ensures the parallel dataset build covers
// every index exactly once and produces bytes identical to the sequential
// path for a variety of thread counts, including counts that do not evenly
// divide the length.
func TestBuildDatasetPartitioning(t *testing.T) {
	ctx := lightContext(t)

	const numItems = 96
	want := make([]Hash1024, numItems)
	buildDatasetSegment(ctx.lightCache, want, 0)

	for _, numThreads := range []uint32{1, 2, 7, 8, 9} {
		got := make([]Hash1024, numItems)
		buildDataset(ctx.lightCache, got, numThreads)
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("threads %d: item %d differs from sequential "+
					"build", numThreads, i)
			}
		}
	}
}

// TestPrebuildLightContext ensures prebuilding a light context is a no-op
// rather than a panic or an allocation.
func TestPrebuildLightContext(t *testing.T) {
	ctx := lightContext(t)
	ctx.Prebuild(8)
	if ctx.fullDataset != nil {
		t.Fatal("prebuild allocated a dataset on a light context")
	}
}

// BenchmarkCalculateDatasetItem measures single dataset item generation,
// the dominant cost of light-mode hashing.
func BenchmarkCalculateDatasetItem(b *testing.B) {
	testCtxOnce.Do(func() {
		testCtx = NewContext(false)
	})
	keccak512 := newKeccak512Hasher()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculateDatasetItem(keccak512, testCtx.lightCache, uint32(i))
	}
}
