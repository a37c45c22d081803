// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fishhash implements the FishHash proof-of-work hash function.
//
// FishHash maps an arbitrary-length header to a 256-bit digest through a
// large read-mostly dataset.  The dataset is derived in three layers: a
// ~75 MiB light cache built from a fixed seed, a ~4.5 GiB full dataset whose
// 128-byte items are each computable from the cache alone, and a 32-round
// mixing kernel that folds dataset items into the final digest.
//
// Verifiers typically run in light mode, where dataset items are recomputed
// from the cache on every access.  Producers that need throughput construct a
// full context and optionally prebuild the dataset so the kernel reads
// materialized items instead.  Both modes produce identical digests for the
// same header.
package fishhash

import (
	"time"

	"lukechampine.com/blake3"
)

// Context holds the derived state needed to hash headers: the light cache and
// optionally the full dataset.  A context is immutable from the caller's
// perspective once constructed and may be used for any number of Hash calls.
//
// Lazily materializing dataset items during concurrent Hash calls on a shared
// full context races on item writes.  The race is benign in the sense that
// every writer stores identical bytes, but callers that need strictly
// race-free execution should either Prebuild the dataset first or hash
// through a light context.
type Context struct {
	lightCache  []Hash512
	fullDataset []Hash1024
}

// NewContext creates a hashing context, eagerly building the light cache.
// When full is true, the dataset is also allocated (zeroed, about 4.5 GiB)
// and its items are materialized lazily as Hash touches them, or eagerly by
// Prebuild.
func NewContext(full bool) *Context {
	start := time.Now()
	lightCache := make([]Hash512, LightCacheNumItems)
	buildLightCache(lightCache)
	log.Debugf("Built light cache in %v", time.Since(start))

	ctx := &Context{lightCache: lightCache}
	if full {
		ctx.fullDataset = make([]Hash1024, FullDatasetNumItems)
	}
	return ctx
}

// lookup returns the dataset item at the given index.  Full contexts cache
// the item on first access, using an all-zero leading word as the
// not-yet-materialized sentinel.  A legitimately zero-leading item is simply
// recomputed on every access and still yields the correct value.  Light
// contexts always recompute.
func (ctx *Context) lookup(keccak512 hasher, index uint32) Hash1024 {
	if ctx.fullDataset == nil {
		return calculateDatasetItem(keccak512, ctx.lightCache, index)
	}

	item := &ctx.fullDataset[index]
	if item.Word64(0) == 0 {
		*item = calculateDatasetItem(keccak512, ctx.lightCache, index)
	}
	return *item
}

// Hash computes the FishHash digest of header into output.  The digest
// depends only on the header bytes; light and full contexts produce identical
// results.
func Hash(output *[32]byte, ctx *Context, header []byte) {
	// Derive the 64-byte kernel seed from the header with the BLAKE3
	// extendable output.
	var seed Hash512
	h := blake3.New(64, nil)
	h.Write(header)
	h.XOF().Read(seed[:])

	keccak512 := newKeccak512Hasher()
	mixHash := fishhashKernel(ctx, keccak512, &seed)

	// Compress the seed and the mix digest down to the final 32 bytes.
	var final [96]byte
	copy(final[:64], seed[:])
	copy(final[64:], mixHash[:])
	*output = blake3.Sum256(final[:])
}

// Sum returns the FishHash digest of header.
func (ctx *Context) Sum(header []byte) [32]byte {
	var digest [32]byte
	Hash(&digest, ctx, header)
	return digest
}
