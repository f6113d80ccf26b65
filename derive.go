package aes256bf

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/aes256bf/aes256bf/internal/lcg"
)

// Derive expands a 32-bit counter into a 32-byte candidate key under the
// given mode (spec.md §4.2). For Factory / FactoryReversed, lcgKind must be
// LCGBSDRand; any other value is a programmer error the caller is expected
// to have rejected during SearchConfig.Validate.
func Derive(mode DerivationMode, counter uint32, lcgKind LCGKind) Key256 {
	switch mode {
	case AsciiHex:
		return deriveAsciiHex(counter)
	case RawLittleEndian:
		return deriveRawLittleEndian(counter)
	case Factory:
		return deriveFactory(counter, false)
	case FactoryReversed:
		return deriveFactory(counter, true)
	default:
		panic("aes256bf: unrecognized derivation mode")
	}
}

// deriveAsciiHex formats counter as 8 lowercase hex ASCII bytes and repeats
// that 8-byte seed four times across the 32-byte key.
func deriveAsciiHex(counter uint32) Key256 {
	var seed [8]byte
	hex.Encode(seed[:], []byte{
		byte(counter >> 24), byte(counter >> 16), byte(counter >> 8), byte(counter),
	})

	var key Key256
	for i := 0; i < 4; i++ {
		copy(key[8*i:8*i+8], seed[:])
	}
	return key
}

// deriveRawLittleEndian stores bswap32(counter) little-endian eight times
// across the key, so each 4-byte lane holds the counter's bytes
// most-significant first (0x01234567 gives lanes 01 23 45 67).
func deriveRawLittleEndian(counter uint32) Key256 {
	var lane [4]byte
	binary.LittleEndian.PutUint32(lane[:], bits32Swap(counter))

	var key Key256
	for i := 0; i < 8; i++ {
		copy(key[4*i:4*i+4], lane[:])
	}
	return key
}

// deriveFactory seeds the pinned LCG with counter and takes eight
// successive 32-bit outputs. reversed byte-swaps each output before
// storage (spec.md §4.2 FactoryReversed).
func deriveFactory(counter uint32, reversed bool) Key256 {
	gen := lcg.NewBSDRand(counter)

	var key Key256
	for i := 0; i < 8; i++ {
		v := gen.Next()
		if reversed {
			v = bits32Swap(v)
		}
		binary.LittleEndian.PutUint32(key[4*i:4*i+4], v)
	}
	return key
}

// bits32Swap reverses the byte order of a 32-bit value.
func bits32Swap(v uint32) uint32 {
	return (v&0x000000ff)<<24 | (v&0x0000ff00)<<8 | (v&0x00ff0000)>>8 | (v&0xff000000)>>24
}
