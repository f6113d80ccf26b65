package aes256bf

// PrngTable is the fixed 255-byte constant sequence spec.md §6 requires
// verbatim. It is a permutation of 255 of the 256 possible byte values; the
// value 0x00 is absent (spec.md §4.3 invariant, checked by
// SearchConfig.Validate / ValidatePrngTable).
var PrngTable = [255]byte{
	0x8a, 0x5c, 0x6a, 0xdd, 0x1f, 0xea, 0x6e, 0xe2, 0x10, 0xfc, 0x3c, 0x58, 0x55, 0xd2, 0x09, 0xb8,
	0xd4, 0xa7, 0x3e, 0xc9, 0xdc, 0xd9, 0x20, 0xe5, 0x78, 0xb0, 0xaa, 0xb9, 0x12, 0x6d, 0xb5, 0x53,
	0x7c, 0x8f, 0xa5, 0xaf, 0x40, 0xd7, 0xf0, 0x7d, 0x49, 0x6f, 0x24, 0xda, 0x77, 0xa6, 0xf8, 0x03,
	0x57, 0x43, 0x80, 0xb3, 0xfd, 0xfa, 0x92, 0xde, 0x48, 0xa9, 0xee, 0x51, 0xed, 0x06, 0xae, 0x86,
	0x1d, 0x7b, 0xe7, 0xe9, 0x39, 0xa1, 0x90, 0x4f, 0xc1, 0xa2, 0xc7, 0x0c, 0x41, 0x11, 0x3a, 0xf6,
	0xd3, 0xcf, 0x72, 0x5f, 0x3d, 0x9e, 0x9f, 0x59, 0x93, 0x18, 0x82, 0x22, 0x74, 0xf1, 0xbb, 0x83,
	0xe4, 0xbe, 0x7a, 0x21, 0x23, 0xb2, 0x3b, 0x30, 0x19, 0x44, 0xe8, 0xff, 0x6b, 0x1b, 0xd5, 0x61,
	0xf4, 0x42, 0x46, 0x79, 0x76, 0x60, 0x32, 0x88, 0xcd, 0xe3, 0xd6, 0x36, 0xb7, 0xc2, 0xf5, 0x84,
	0x8c, 0xf2, 0xec, 0xc0, 0x64, 0x0d, 0x87, 0xdb, 0xb1, 0x6c, 0x73, 0x99, 0xf7, 0x15, 0x05, 0xf9,
	0xc5, 0x9d, 0xc8, 0x1a, 0x13, 0xab, 0x7f, 0xd8, 0xe6, 0x2f, 0xf3, 0x2a, 0x0a, 0xef, 0x97, 0x27,
	0x8d, 0x34, 0x26, 0x4b, 0xfe, 0xad, 0xd1, 0x5e, 0xfb, 0x54, 0x14, 0xc3, 0x33, 0x4e, 0x07, 0x68,
	0x4c, 0x96, 0xe1, 0x47, 0xbf, 0xbc, 0xeb, 0xa8, 0x28, 0x9b, 0x66, 0x9c, 0x0e, 0xd0, 0x98, 0x31,
	0xdf, 0x8e, 0x63, 0x65, 0xcb, 0x4d, 0x50, 0x2b, 0xcc, 0x25, 0x1c, 0xbd, 0x2d, 0x62, 0xa3, 0x01,
	0xc6, 0xca, 0x8b, 0x9a, 0xa0, 0x56, 0x85, 0x4a, 0x38, 0x67, 0x5a, 0xc4, 0x5b, 0x02, 0x91, 0x89,
	0x0b, 0x29, 0x5d, 0xac, 0x17, 0x94, 0x70, 0xce, 0xb4, 0x95, 0xb6, 0x04, 0x3f, 0x0f, 0x16, 0x52,
	0xba, 0x45, 0x2e, 0x35, 0xe0, 0x81, 0x75, 0x37, 0x71, 0x08, 0x7e, 0x1e, 0x2c, 0xa4, 0x69,
}

// ValidatePrngTable checks invariant #4 from spec.md §8: the table must
// have length exactly 255 and must not contain 0x00.
func ValidatePrngTable(table []byte) error {
	if len(table) != 255 {
		return NewInternalInvariantError("prng_table_length", ErrPrngTableLength.Error())
	}
	for _, b := range table {
		if b == 0x00 {
			return NewInternalInvariantError("prng_table_no_zero", ErrPrngTableZero.Error())
		}
	}
	return nil
}

// Mask combines a 32-byte base key with PrngTable at the given state,
// per spec.md §4.3:
//
//	K'[i] = K[i] XOR P[(s + 31 - i) mod 255]   for i in [0, 32)
//
// When useMask is false, Mask is the identity (spec.md §4.3 "degenerate"
// rule, also invariant #5 in spec.md §8).
func Mask(key Key256, state int, useMask bool) Key256 {
	if !useMask {
		return key
	}

	var masked Key256
	for i := 0; i < Key256Size; i++ {
		idx := (state + 31 - i) % 255
		masked[i] = key[i] ^ PrngTable[idx]
	}
	return masked
}
