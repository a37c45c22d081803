// Copyright (c) 2025 The Vigil Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fishhash

import (
	"bytes"
	"testing"
)

// TestHashWordLittleEndian ensures the word views read and write bytes with
// little-endian semantics at the expected offsets regardless of the host byte
// order.
func TestHashWordLittleEndian(t *testing.T) {
	var h Hash512
	for i := range h {
		h[i] = byte(i)
	}

	// Reading word i must return the integer whose least significant byte
	// is at byte offset i*4 (or i*8 for 64-bit words).
	if got, want := h.Word32(0), uint32(0x03020100); got != want {
		t.Errorf("Word32(0): got %#08x, want %#08x", got, want)
	}
	if got, want := h.Word32(15), uint32(0x3f3e3d3c); got != want {
		t.Errorf("Word32(15): got %#08x, want %#08x", got, want)
	}
	if got, want := h.Word64(1), uint64(0x0f0e0d0c0b0a0908); got != want {
		t.Errorf("Word64(1): got %#016x, want %#016x", got, want)
	}

	// Writing must be the inverse of reading.
	h.SetWord32(2, 0xdeadbeef)
	want := [4]byte{0xef, 0xbe, 0xad, 0xde}
	if !bytes.Equal(h[8:12], want[:]) {
		t.Errorf("SetWord32(2): got %x, want %x", h[8:12], want)
	}
	h.SetWord64(7, 0x0102030405060708)
	want8 := [8]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(h[56:64], want8[:]) {
		t.Errorf("SetWord64(7): got %x, want %x", h[56:64], want8)
	}
}

// TestHashWordZeroValue ensures a freshly constructed Hash1024 is all zero.
func TestHashWordZeroValue(t *testing.T) {
	var h1024 Hash1024
	for i := 0; i < 16; i++ {
		if h1024.Word64(i) != 0 {
			t.Fatalf("word %d of zero value is %#x", i, h1024.Word64(i))
		}
	}
}

// TestNewHash1024 ensures composing a 1024-bit buffer from two 512-bit halves
// places the halves at the expected offsets.
func TestNewHash1024(t *testing.T) {
	var a, b Hash512
	for i := range a {
		a[i] = 0xaa
		b[i] = 0xbb
	}

	h := newHash1024(&a, &b)
	if !bytes.Equal(h[:64], a[:]) {
		t.Errorf("first half mismatch: got %x", h[:64])
	}
	if !bytes.Equal(h[64:], b[:]) {
		t.Errorf("second half mismatch: got %x", h[64:])
	}
}
