// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seed14

// Coin domain-separates key derivation for wallets that share the same
// 14-word phrase format but must never derive the same key from it. It
// has no effect on the encoded phrase or its checksum; the 154-bit wire
// payload is unchanged from the base design. This mirrors the sibling
// polyseed design's Coin type, adapted from a wire-format field (there,
// XORed into a polynomial coefficient) to a pure key-derivation input
// (here, folded into the Argon2id salt), since this format's payload has
// no room for a coin field.
type Coin uint16

const (
	// CoinDefault is used when the caller does not care about domain
	// separation. The key Generate and Parse derive (Seed.Key) is the
	// CoinDefault key.
	CoinDefault Coin = 0
)
