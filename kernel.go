// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fishhash

// numDatasetAccesses is the number of mixing rounds performed by the kernel.
// Each round fetches three dataset items, so a single hash touches 96 items.
const numDatasetAccesses = 32

// fishhashKernel collapses the 64-byte seed into a 32-byte mix digest by
// repeatedly folding dataset items into a 128-byte mix.  All uint32 and
// uint64 arithmetic wraps.
func fishhashKernel(ctx *Context, keccak512 hasher, seed *Hash512) Hash256 {
	mix := newHash1024(seed, seed)

	for i := 0; i < numDatasetAccesses; i++ {
		p0 := mix.Word32(0) % FullDatasetNumItems
		p1 := mix.Word32(4) % FullDatasetNumItems
		p2 := mix.Word32(8) % FullDatasetNumItems

		fetch0 := ctx.lookup(keccak512, p0)
		fetch1 := ctx.lookup(keccak512, p1)
		fetch2 := ctx.lookup(keccak512, p2)

		for j := 0; j < 32; j++ {
			fetch1.SetWord32(j, fnv1(mix.Word32(j), fetch1.Word32(j)))
			fetch2.SetWord32(j, mix.Word32(j)^fetch2.Word32(j))
		}

		for j := 0; j < 16; j++ {
			mix.SetWord64(j, fetch0.Word64(j)*fetch1.Word64(j)+
				fetch2.Word64(j))
		}
	}

	// Collapse the 32-word mix into 8 words, folding each group of four
	// words down with an FNV chain.
	var mixHash Hash256
	for i := 0; i < 32; i += 4 {
		h := fnv1(mix.Word32(i), mix.Word32(i+1))
		h = fnv1(h, mix.Word32(i+2))
		h = fnv1(h, mix.Word32(i+3))
		mixHash.SetWord32(i/4, h)
	}
	return mixHash
}
