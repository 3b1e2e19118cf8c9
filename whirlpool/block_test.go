package whirlpool

import (
	"encoding/binary"
	"math/rand/v2"
	"testing"
)

// matrix is the 8x8 byte state of the cipher, row i being word i.
type matrix [8][8]byte

func toMatrix(w *[8]uint64) (m matrix) {
	for i := range 8 {
		binary.BigEndian.PutUint64(m[i][:], w[i])
	}
	return m
}

func fromMatrix(m *matrix) (w [8]uint64) {
	for i := range 8 {
		w[i] = binary.BigEndian.Uint64(m[i][:])
	}
	return w
}

// referenceRound applies gamma, pi, theta and sigma[key] one step at a time, without tables.
func referenceRound(a, key matrix) (out matrix) {
	var g, p matrix
	for i := range 8 {
		for j := range 8 {
			g[i][j] = sbox[a[i][j]]
		}
	}
	// column j shifts down by j
	for i := range 8 {
		for j := range 8 {
			p[i][j] = g[(i-j+8)%8][j]
		}
	}
	for i := range 8 {
		for j := range 8 {
			var v uint32
			for k := range 8 {
				v ^= gfMul(uint32(p[i][k]), circulant[(j-k+8)%8])
			}
			out[i][j] = byte(v) ^ key[i][j]
		}
	}
	return out
}

func referenceCompress(hash *[8]uint64, block *[8]uint64) {
	k := toMatrix(hash)
	var plain [8]uint64
	for i := range 8 {
		plain[i] = block[i] ^ hash[i]
	}
	state := toMatrix(&plain)

	for r := 1; r <= rounds; r++ {
		var rc matrix
		copy(rc[0][:], sbox[8*(r-1):8*r])
		k = referenceRound(k, rc)
		state = referenceRound(state, k)
	}

	cipher := fromMatrix(&state)
	for i := range 8 {
		hash[i] ^= cipher[i] ^ block[i]
	}
}

func TestCompressMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(0x5748, 0x4952))

	for n := range 32 {
		var hash, block [8]uint64
		if n > 0 {
			for i := range 8 {
				hash[i] = rng.Uint64()
				block[i] = rng.Uint64()
			}
		}

		expected := hash
		referenceCompress(&expected, &block)

		result := hash
		compress(&constants, &result, &block)

		if result != expected {
			t.Fatalf("#%d: compress(%016x, %016x) = %016x, want %016x", n, hash, block, result, expected)
		}
	}
}

func TestCompressBlocks(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	buf := make([]byte, BlockSize*3)
	for i := range buf {
		buf[i] = byte(rng.Uint32())
	}

	var expected, result [8]uint64
	var block [8]uint64
	for i := 0; i < len(buf); i += BlockSize {
		blockWords(&block, buf[i:])
		referenceCompress(&expected, &block)
	}

	compressBlocks(&constants, &result, buf)
	if result != expected {
		t.Fatalf("got %016x, want %016x", result, expected)
	}
}

func BenchmarkCompress(b *testing.B) {
	var hash, block [8]uint64
	b.SetBytes(BlockSize)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		compress(&constants, &hash, &block)
	}
}
