// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fishhash

import (
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// FullDatasetNumItems is the number of 128-byte items in the full
	// dataset.
	FullDatasetNumItems = 37748717

	// fullDatasetItemParents is the number of light cache parents combined
	// into each half of a dataset item.
	fullDatasetItemParents = 512

	// fnvPrime is the 32-bit FNV prime.
	fnvPrime = 0x01000193
)

// fnv1 folds v into u with one round of the 32-bit FNV-1 hash.  The multiply
// wraps modulo 2^32.
func fnv1(u, v uint32) uint32 {
	return u*fnvPrime ^ v
}

// fnv1Hash512 combines two 512-bit buffers word by word with fnv1.
func fnv1Hash512(u, v *Hash512) Hash512 {
	var r Hash512
	for i := 0; i < 16; i++ {
		r.SetWord32(i, fnv1(u.Word32(i), v.Word32(i)))
	}
	return r
}

// calculateDatasetItem computes the 128-byte dataset item at the given index
// from the light cache alone.  Each half of the item starts from a seeded
// cache entry and then walks fullDatasetItemParents cache parents selected by
// an FNV chain, bracketed by Keccak-512 permutations.
//
// The result is a pure function of the cache contents and the index, which is
// what makes lazy and eager dataset materialization interchangeable.
func calculateDatasetItem(keccak512 hasher, cache []Hash512, index uint32) Hash1024 {
	numItems := uint32(len(cache))

	seed0 := index * 2
	seed1 := seed0 + 1

	mix0 := cache[seed0%numItems]
	mix1 := cache[seed1%numItems]

	mix0.SetWord32(0, mix0.Word32(0)^seed0)
	mix1.SetWord32(0, mix1.Word32(0)^seed1)

	keccak512(mix0[:], mix0[:])
	keccak512(mix1[:], mix1[:])

	for j := uint32(0); j < fullDatasetItemParents; j++ {
		t0 := fnv1(seed0^j, mix0.Word32(int(j%16)))
		t1 := fnv1(seed1^j, mix1.Word32(int(j%16)))
		mix0 = fnv1Hash512(&mix0, &cache[t0%numItems])
		mix1 = fnv1Hash512(&mix1, &cache[t1%numItems])
	}

	keccak512(mix0[:], mix0[:])
	keccak512(mix1[:], mix1[:])

	return newHash1024(&mix0, &mix1)
}

// buildDatasetSegment sequentially materializes every item of a contiguous
// dataset segment.  The offset is the dataset index of the first item in the
// segment.
func buildDatasetSegment(cache []Hash512, segment []Hash1024, offset uint32) {
	keccak512 := newKeccak512Hasher()
	for i := range segment {
		segment[i] = calculateDatasetItem(keccak512, cache, offset+uint32(i))
	}
}

// buildDataset materializes every item of the dataset, splitting the work
// across the requested number of goroutines.  Each worker owns a disjoint
// contiguous segment while sharing the read-only cache, so no synchronization
// beyond the final join is needed.
func buildDataset(cache []Hash512, dataset []Hash1024, numThreads uint32) {
	if numThreads <= 1 {
		buildDatasetSegment(cache, dataset, 0)
		return
	}

	var g errgroup.Group
	batchSize := len(dataset) / int(numThreads)
	for i := 0; i < int(numThreads); i++ {
		start := i * batchSize
		end := start + batchSize
		if i == int(numThreads)-1 {
			// The final worker absorbs the remainder.
			end = len(dataset)
		}
		segment := dataset[start:end]
		offset := uint32(start)
		g.Go(func() error {
			buildDatasetSegment(cache, segment, offset)
			return nil
		})
	}
	g.Wait()
}

// Prebuild eagerly materializes the entire dataset using the given number of
// worker goroutines, removing the lazy generation cost from subsequent Hash
// calls.  It blocks until every item is built, has no effect on light
// contexts, and is idempotent since rebuilding produces identical bytes.
func (ctx *Context) Prebuild(numThreads uint32) {
	if ctx.fullDataset == nil {
		return
	}

	log.Debugf("Building dataset (%d items, %d threads)", len(ctx.fullDataset),
		numThreads)
	start := time.Now()
	buildDataset(ctx.lightCache, ctx.fullDataset, numThreads)
	log.Infof("Built dataset in %v", time.Since(start))
}
