// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fishhash

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// hasher is a repetitive hasher allowing the same hash data structures to be
// reused between hash runs instead of requiring new ones to be created.
type hasher func(dest []byte, data []byte)

// makeHasher creates a repetitive hasher, allowing the same hash data
// structures to be reused between hash runs instead of requiring new ones to
// be created.  The returned function is not safe for concurrent use.
func makeHasher(h hash.Hash) hasher {
	// sha3 state supports Read to get the sum, use it to avoid the overhead
	// of Sum.  Read alters the state but the hash is reset before every
	// operation.
	type readerHash interface {
		hash.Hash
		Read([]byte) (int, error)
	}
	rh, ok := h.(readerHash)
	if !ok {
		panic("can't find Read method on hash")
	}
	outputLen := rh.Size()
	return func(dest []byte, data []byte) {
		rh.Reset()
		rh.Write(data)
		rh.Read(dest[:outputLen])
	}
}

// newKeccak512Hasher returns a reusable hasher for the original Keccak-512
// function.  The pre-standard 0x01 padding byte is required here, so the
// legacy construction is used rather than the FIPS 202 variant, which pads
// with 0x06 and produces entirely different digests.
func newKeccak512Hasher() hasher {
	return makeHasher(sha3.NewLegacyKeccak512())
}
