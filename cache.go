// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fishhash

const (
	// LightCacheNumItems is the number of 64-byte items in the light cache.
	LightCacheNumItems = 1179641

	// lightCacheRounds is the number of bit-mixing passes applied to the
	// light cache after the initial sequential fill.
	lightCacheRounds = 3
)

// cacheSeed is the fixed seed every light cache is derived from.  The cache
// contents are a pure function of this value, so two independently built
// caches are always byte-identical.
var cacheSeed = [32]byte{
	0xeb, 0x01, 0x63, 0xae, 0xf2, 0xab, 0x1c, 0x5a,
	0x66, 0x31, 0x0c, 0x1c, 0x14, 0xd6, 0x0f, 0x42,
	0x55, 0xa9, 0xb3, 0x9b, 0x0e, 0xdf, 0x26, 0x53,
	0x98, 0x44, 0xf1, 0x17, 0xad, 0x67, 0x21, 0x19,
}

// buildLightCache fills cache with the deterministic item sequence derived
// from the fixed seed.  The first item is the Keccak-512 digest of the seed
// and each subsequent item is the Keccak-512 digest of its predecessor.  The
// sequence is then strengthened with a low-round version of RandMemoHash.
//
// The mixing passes intentionally update the cache in place, so items
// modified earlier in a pass are observed by later iterations through both
// lookup indexes.
func buildLightCache(cache []Hash512) {
	keccak512 := newKeccak512Hasher()

	var item Hash512
	keccak512(item[:], cacheSeed[:])
	cache[0] = item
	for i := 1; i < len(cache); i++ {
		keccak512(item[:], item[:])
		cache[i] = item
	}

	numItems := uint32(len(cache))
	for round := 0; round < lightCacheRounds; round++ {
		for i := range cache {
			// First index: 4 first bytes of the item viewed as a
			// little-endian integer.
			v := cache[i].Word32(0) % numItems

			// Second index: previous item, wrapping around at the
			// front of the cache.
			w := (len(cache) + i - 1) % len(cache)

			var x Hash512
			for k := 0; k < 8; k++ {
				x.SetWord64(k, cache[v].Word64(k)^cache[w].Word64(k))
			}
			keccak512(cache[i][:], x[:])
		}
	}
}
