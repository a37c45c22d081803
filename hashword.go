// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fishhash

import (
	"encoding/binary"
)

// Hash256, Hash512, and Hash1024 are fixed-size byte buffers the algorithm
// operates on.  In addition to plain byte access, each buffer can be read and
// written as 32-bit or 64-bit words.  All word access is little endian
// regardless of the host byte order so that results are identical on every
// platform.
type (
	// Hash256 is a 256-bit buffer viewable as 8 uint32 or 4 uint64 words.
	Hash256 [32]byte

	// Hash512 is a 512-bit buffer viewable as 16 uint32 or 8 uint64 words.
	Hash512 [64]byte

	// Hash1024 is a 1024-bit buffer viewable as 32 uint32 or 16 uint64
	// words.
	Hash1024 [128]byte
)

// Word32 returns the little-endian uint32 at word offset i.
func (h *Hash256) Word32(i int) uint32 {
	return binary.LittleEndian.Uint32(h[i*4:])
}

// SetWord32 stores v as a little-endian uint32 at word offset i.
func (h *Hash256) SetWord32(i int, v uint32) {
	binary.LittleEndian.PutUint32(h[i*4:], v)
}

// Word64 returns the little-endian uint64 at word offset i.
func (h *Hash256) Word64(i int) uint64 {
	return binary.LittleEndian.Uint64(h[i*8:])
}

// SetWord64 stores v as a little-endian uint64 at word offset i.
func (h *Hash256) SetWord64(i int, v uint64) {
	binary.LittleEndian.PutUint64(h[i*8:], v)
}

// Word32 returns the little-endian uint32 at word offset i.
func (h *Hash512) Word32(i int) uint32 {
	return binary.LittleEndian.Uint32(h[i*4:])
}

// SetWord32 stores v as a little-endian uint32 at word offset i.
func (h *Hash512) SetWord32(i int, v uint32) {
	binary.LittleEndian.PutUint32(h[i*4:], v)
}

// Word64 returns the little-endian uint64 at word offset i.
func (h *Hash512) Word64(i int) uint64 {
	return binary.LittleEndian.Uint64(h[i*8:])
}

// SetWord64 stores v as a little-endian uint64 at word offset i.
func (h *Hash512) SetWord64(i int, v uint64) {
	binary.LittleEndian.PutUint64(h[i*8:], v)
}

// Word32 returns the little-endian uint32 at word offset i.
func (h *Hash1024) Word32(i int) uint32 {
	return binary.LittleEndian.Uint32(h[i*4:])
}

// SetWord32 stores v as a little-endian uint32 at word offset i.
func (h *Hash1024) SetWord32(i int, v uint32) {
	binary.LittleEndian.PutUint32(h[i*4:], v)
}

// Word64 returns the little-endian uint64 at word offset i.
func (h *Hash1024) Word64(i int) uint64 {
	return binary.LittleEndian.Uint64(h[i*8:])
}

// SetWord64 stores v as a little-endian uint64 at word offset i.
func (h *Hash1024) SetWord64(i int, v uint64) {
	binary.LittleEndian.PutUint64(h[i*8:], v)
}

// newHash1024 returns a Hash1024 whose first half is a and second half is b.
func newHash1024(a, b *Hash512) Hash1024 {
	var h Hash1024
	copy(h[:64], a[:])
	copy(h[64:], b[:])
	return h
}
