// Package whirlpool implements the ISO/IEC 10118-3:2004 Whirlpool hash function.
package whirlpool

import (
	"encoding/binary"
	"errors"
	"hash"

	"git.gammaspectra.live/P2Pool/whirlpool/types"
	"git.gammaspectra.live/P2Pool/whirlpool/utils"
	"lukechampine.com/uint128"
)

// Size The size of a Whirlpool digest in bytes.
const Size = types.HashSize

// SizeBits The size of a Whirlpool digest in bits.
const SizeBits = Size * 8

// BlockSize The block size of the hash algorithm in bytes.
const BlockSize = 64

// lengthBytes is the size of the bit length field closing the last block.
const lengthBytes = 32

var ErrFinalized = errors.New("whirlpool: digest already finalized")

type status uint8

const (
	statusIdle status = iota
	statusAccumulating
	statusFinalized
)

// bitLength counts hashed bits modulo 2²⁵⁶.
type bitLength struct {
	hi, lo uint128.Uint128
}

func (l *bitLength) add(n int) {
	lo := l.lo.AddWrap(uint128.New(uint64(n)<<3, uint64(n)>>61))
	if lo.Cmp(l.lo) < 0 {
		l.hi = l.hi.AddWrap64(1)
	}
	l.lo = lo
}

// putBytes writes the counter as a 256-bit big-endian integer
func (l *bitLength) putBytes(b []byte) {
	l.hi.PutBytesBE(b[:16])
	l.lo.PutBytesBE(b[16:lengthBytes])
}

// Digest is the incremental Whirlpool state. The zero value is ready to use.
// A Digest must not be used from several goroutines at once.
type Digest struct {
	hash   [8]uint64
	length bitLength
	buf    [BlockSize]byte
	nbuf   int
	status status
	sum    types.Hash
}

var _ hash.Hash = (*Digest)(nil)

func New() *Digest {
	return new(Digest)
}

// Reset clears state, buffer and bit counter. Valid in every state.
func (d *Digest) Reset() {
	*d = Digest{}
}

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return BlockSize }

// Write absorbs p. It returns ErrFinalized once Finalize has been called, until Reset.
func (d *Digest) Write(p []byte) (n int, err error) {
	if d.status == statusFinalized {
		return 0, ErrFinalized
	}
	d.status = statusAccumulating
	d.length.add(len(p))
	d.write(p)
	return len(p), nil
}

// write buffers p and compresses every completed block, without counting it.
func (d *Digest) write(p []byte) {
	if d.nbuf > 0 {
		nn := copy(d.buf[d.nbuf:], p)
		d.nbuf += nn
		if d.nbuf == BlockSize {
			compressBlocks(&constants, &d.hash, d.buf[:])
			d.nbuf = 0
		}
		p = p[nn:]
	}
	if len(p) >= BlockSize {
		nn := len(p) &^ (BlockSize - 1)
		compressBlocks(&constants, &d.hash, p[:nn])
		p = p[nn:]
	}
	if len(p) > 0 {
		d.nbuf = copy(d.buf[:], p)
	}
}

// Finalize pads the message, processes the last block(s) and returns the digest.
// Calling it again before Reset returns ErrFinalized.
func (d *Digest) Finalize() (types.Hash, error) {
	if d.status == statusFinalized {
		return types.ZeroHash, ErrFinalized
	}
	d.sum = d.checkSum()
	d.status = statusFinalized
	return d.sum, nil
}

// Sum appends the digest of the data written so far to in, leaving d untouched.
// On a finalized Digest it appends the digest returned by Finalize.
func (d *Digest) Sum(in []byte) []byte {
	if d.status == statusFinalized {
		return append(in, d.sum[:]...)
	}
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *Digest) checkSum() (sum types.Hash) {
	// length is taken before padding is written
	var length [lengthBytes]byte
	d.length.putBytes(length[:])

	var tmp [BlockSize * 2]byte
	tmp[0] = 0x80

	// one bit, then zeros up to the length field; spills into an extra block
	// when the length field no longer fits
	padLen := BlockSize - lengthBytes - d.nbuf
	if padLen <= 0 {
		padLen += BlockSize
	}
	d.write(tmp[:padLen])
	d.write(length[:])

	if d.nbuf != 0 {
		utils.Panicf("whirlpool: padding failed, %d bytes left in buffer", d.nbuf)
	}

	for i := range d.hash {
		binary.BigEndian.PutUint64(sum[i*8:], d.hash[i])
	}
	return sum
}
