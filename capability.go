package aes256bf

import "golang.org/x/sys/cpu"

// cpuHasHardwareAES reports whether the host CPU exposes the AES round
// instructions the primitive is modeled on (AES-NI on amd64, the crypto
// extension on arm64) — spec.md §9's SIMD abstraction note. This rendition
// always runs the portable software round functions in aes256.go (the
// fallback spec.md §9 explicitly allows); the capability is reported purely
// for the startup log line, not used to pick a code path.
func cpuHasHardwareAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES
}
