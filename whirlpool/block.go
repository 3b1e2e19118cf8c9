package whirlpool

import (
	"encoding/binary"
)

// blockWords maps a 64-byte block onto eight big-endian words.
func blockWords(dst *[8]uint64, p []byte) {
	_ = p[BlockSize-1]
	for i := range dst {
		dst[i] = binary.BigEndian.Uint64(p[i*8:])
	}
}

// rho is the round function: substitution, cyclic permutation and diffusion in one pass.
// Output lane i takes byte t of input lane (i - t) mod 8 through table t.
func rho(t *tables, dst, src *[8]uint64) {
	for i := range 8 {
		dst[i] = t.c[0][byte(src[i]>>56)] ^
			t.c[1][byte(src[(i+7)&7]>>48)] ^
			t.c[2][byte(src[(i+6)&7]>>40)] ^
			t.c[3][byte(src[(i+5)&7]>>32)] ^
			t.c[4][byte(src[(i+4)&7]>>24)] ^
			t.c[5][byte(src[(i+3)&7]>>16)] ^
			t.c[6][byte(src[(i+2)&7]>>8)] ^
			t.c[7][byte(src[(i+1)&7])]
	}
}

// compress runs the Whirlpool block cipher keyed by hash over block, and feeds
// the result forward into hash (Miyaguchi-Preneel).
func compress(t *tables, hash *[8]uint64, block *[8]uint64) {
	var k, state, l [8]uint64

	// K^0 and the initial key addition
	k = *hash
	for i := range 8 {
		state[i] = block[i] ^ k[i]
	}

	for r := 1; r <= rounds; r++ {
		// K^r = rho(K^(r-1)) ^ rc[r]
		rho(t, &l, &k)
		l[0] ^= t.rc[r]
		k = l

		rho(t, &l, &state)
		for i := range 8 {
			state[i] = l[i] ^ k[i]
		}
	}

	for i := range 8 {
		hash[i] ^= state[i] ^ block[i]
	}
}

// compressBlocks compresses every block of p, which must be a multiple of BlockSize long.
func compressBlocks(t *tables, hash *[8]uint64, p []byte) {
	var block [8]uint64
	for len(p) >= BlockSize {
		blockWords(&block, p)
		compress(t, hash, &block)
		p = p[BlockSize:]
	}
}
