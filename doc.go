// Package aes256bf implements a parallel brute-force key-recovery search
// against AES-256 ciphertexts produced by a narrow family of weak
// key-derivation schemes.
//
// # Overview
//
// Given a single 16-byte ciphertext assumed to be the AES-256 encryption of
// the all-zero plaintext block under a key derived from a 32-bit counter,
// Run exhaustively enumerates the full 2^32 counter space — optionally
// multiplied by a 255-state PRNG mask — performing one AES-256 key schedule
// and one block decrypt per candidate, and reports every candidate key whose
// decryption yields the zero block.
//
// # Components
//
//   - The AES-256 primitive (ScheduleFull, ScheduleEncryptOnly, EncryptBlock,
//     DecryptBlock) is bit-exact with FIPS-197.
//   - Key derivation (Derive) expands a counter into a 32-byte key under one
//     of four modes: AsciiHex, RawLittleEndian, Factory, FactoryReversed.
//   - The PRNG mask (Mask, PrngTable) XOR-combines a derived key with a fixed
//     255-byte sequence at a given state offset.
//   - The search driver (Run) partitions the counter space across a pool of
//     worker goroutines and reports hits through a Sink.
//
// # Basic usage
//
//	ciphertext, _ := aes256bf.ParseCiphertextHex("fb6d283dff82ee3d19b31dd0420e6587")
//	cfg := aes256bf.NewSearchConfig(aes256bf.AsciiHex, ciphertext)
//	sink := aes256bf.NewHexSink(os.Stdout)
//	err := aes256bf.Run(context.Background(), cfg, sink)
//
// # Security considerations
//
// The derivation path is not audited for timing side channels; this is a
// recovery tool for a known-weak scheme, not a hardened cryptographic
// primitive. Factory and FactoryReversed modes require an explicit LCG
// binding (LCGBSDRand): a platform-dependent rand() is never silently
// guessed.
//
// # Non-goals
//
// No AES-128 / AES-192 variants, no streaming/CBC/CTR modes (raw
// single-block ECB only), no plaintexts other than the all-zero oracle, no
// distributed execution across hosts.
package aes256bf
