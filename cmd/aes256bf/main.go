// Command aes256bf recovers AES-256 keys produced by a weak counter-derived
// scheme by brute-force search over the 32-bit counter space.
package main

func main() {
	Execute()
}
