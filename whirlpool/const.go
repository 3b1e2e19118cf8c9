package whirlpool

import (
	"math/bits"

	"git.gammaspectra.live/P2Pool/whirlpool/utils"
)

// This file generates the Whirlpool circulant tables and round constants - 16472 bytes of initialized data.

// https://web.archive.org/web/20171129084214/http://www.larc.usp.br/~pbarreto/WhirlpoolPage.html

// Whirlpool works over GF(2⁸) with the irreducible polynomial x⁸ + x⁴ + x³ + x² + 1.
// Reducing mod poly corresponds to binary xor with poly every
// time a 0x100 bit appears.
const poly = 1<<8 | 1<<4 | 1<<3 | 1<<2 | 1<<0 // x⁸ + x⁴ + x³ + x² + 1

const rounds = 10

// sbox is the tweaked Whirlpool S-box (version 3.0).
var sbox = [256]byte{
	0x18, 0x23, 0xc6, 0xe8, 0x87, 0xb8, 0x01, 0x4f, 0x36, 0xa6, 0xd2, 0xf5, 0x79, 0x6f, 0x91, 0x52,
	0x60, 0xbc, 0x9b, 0x8e, 0xa3, 0x0c, 0x7b, 0x35, 0x1d, 0xe0, 0xd7, 0xc2, 0x2e, 0x4b, 0xfe, 0x57,
	0x15, 0x77, 0x37, 0xe5, 0x9f, 0xf0, 0x4a, 0xda, 0x58, 0xc9, 0x29, 0x0a, 0xb1, 0xa0, 0x6b, 0x85,
	0xbd, 0x5d, 0x10, 0xf4, 0xcb, 0x3e, 0x05, 0x67, 0xe4, 0x27, 0x41, 0x8b, 0xa7, 0x7d, 0x95, 0xd8,
	0xfb, 0xee, 0x7c, 0x66, 0xdd, 0x17, 0x47, 0x9e, 0xca, 0x2d, 0xbf, 0x07, 0xad, 0x5a, 0x83, 0x33,
	0x63, 0x02, 0xaa, 0x71, 0xc8, 0x19, 0x49, 0xd9, 0xf2, 0xe3, 0x5b, 0x88, 0x9a, 0x26, 0x32, 0xb0,
	0xe9, 0x0f, 0xd5, 0x80, 0xbe, 0xcd, 0x34, 0x48, 0xff, 0x7a, 0x90, 0x5f, 0x20, 0x68, 0x1a, 0xae,
	0xb4, 0x54, 0x93, 0x22, 0x64, 0xf1, 0x73, 0x12, 0x40, 0x08, 0xc3, 0xec, 0xdb, 0xa1, 0x8d, 0x3d,
	0x97, 0x00, 0xcf, 0x2b, 0x76, 0x82, 0xd6, 0x1b, 0xb5, 0xaf, 0x6a, 0x50, 0x45, 0xf3, 0x30, 0xef,
	0x3f, 0x55, 0xa2, 0xea, 0x65, 0xba, 0x2f, 0xc0, 0xde, 0x1c, 0xfd, 0x4d, 0x92, 0x75, 0x06, 0x8a,
	0xb2, 0xe6, 0x0e, 0x1f, 0x62, 0xd4, 0xa8, 0x96, 0xf9, 0xc5, 0x25, 0x59, 0x84, 0x72, 0x39, 0x4c,
	0x5e, 0x78, 0x38, 0x8c, 0xd1, 0xa5, 0xe2, 0x61, 0xb3, 0x21, 0x9c, 0x1e, 0x43, 0xc7, 0xfc, 0x04,
	0x51, 0x99, 0x6d, 0x0d, 0xfa, 0xdf, 0x7e, 0x24, 0x3b, 0xab, 0xce, 0x11, 0x8f, 0x4e, 0xb7, 0xeb,
	0x3c, 0x81, 0x94, 0xf7, 0xb9, 0x13, 0x2c, 0xd3, 0xe7, 0x6e, 0xc4, 0x03, 0x56, 0x44, 0x7f, 0xa9,
	0x2a, 0xbb, 0xc1, 0x53, 0xdc, 0x0b, 0x9d, 0x6c, 0x31, 0x74, 0xf6, 0x46, 0xac, 0x89, 0x14, 0xe1,
	0x16, 0x3a, 0x69, 0x09, 0x70, 0xb6, 0xd0, 0xed, 0xcc, 0x42, 0x98, 0xa4, 0x28, 0x5c, 0xf8, 0x86,
}

// mulX multiplies b by x in GF(2⁸) modulo poly
func mulX(b uint32) uint32 {
	b <<= 1
	if b&0x100 != 0 {
		b ^= poly
	}
	return b
}

// Multiply b and c as GF(2) polynomials modulo poly
func gfMul(b, c uint32) uint32 {
	i := b
	j := c
	s := uint32(0)
	for k := uint32(1); k < 0x100 && j != 0; k <<= 1 {
		// Invariant: k == 1<<n, i == b * xⁿ

		if j&k != 0 {
			// s += i in GF(2); xor in binary
			s ^= i
			j ^= k // turn off bit to end loop early
		}

		// i *= x in GF(2) modulo the polynomial
		i = mulX(i)
	}
	return s
}

// tables holds the material shared by the round function and the key schedule.
// c[t][x] is S[x] multiplied by the diffusion row cir(1, 1, 4, 1, 8, 5, 2, 9),
// rotated right by t bytes. rc[r] is the lane 0 round constant of round r; rc[0] is unused.
type tables struct {
	c  [8][256]uint64
	rc [rounds + 1]uint64
}

// constants is built once and only read afterwards, so engines share it without locking.
var constants = func() (t tables) {
	for x := range 256 {
		v1 := uint32(sbox[x])
		v2 := mulX(v1)
		v4 := mulX(v2)
		v5 := v4 ^ v1
		v8 := mulX(v4)
		v9 := v8 ^ v1

		// C[0][x] = S[x].[1, 1, 4, 1, 8, 5, 2, 9]
		t.c[0][x] = uint64(v1)<<56 | uint64(v1)<<48 | uint64(v4)<<40 | uint64(v1)<<32 |
			uint64(v8)<<24 | uint64(v5)<<16 | uint64(v2)<<8 | uint64(v9)

		for i := 1; i < 8; i++ {
			t.c[i][x] = bits.RotateLeft64(t.c[i-1][x], -8)
		}
	}

	for r := 1; r <= rounds; r++ {
		i := 8 * (r - 1)
		t.rc[r] = t.c[0][i+0]&0xff00000000000000 ^
			t.c[1][i+1]&0x00ff000000000000 ^
			t.c[2][i+2]&0x0000ff0000000000 ^
			t.c[3][i+3]&0x000000ff00000000 ^
			t.c[4][i+4]&0x00000000ff000000 ^
			t.c[5][i+5]&0x0000000000ff0000 ^
			t.c[6][i+6]&0x000000000000ff00 ^
			t.c[7][i+7]&0x00000000000000ff
	}

	utils.Debugf("whirlpool", "built %d circulant tables and %d round constants", len(t.c), rounds)

	return t
}()
