// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package seed14

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/crypto/argon2"
)

const (
	// NumWords is the number of words in the mnemonic phrase.
	NumWords = numWords

	// erasureMarker is the literal token standing in for one missing word.
	erasureMarker = "xxxx"

	// Argon2id parameters, fixed constants per the format: no key-
	// stretching negotiation is supported.
	argonTime    = 3
	argonMemory  = 256 * 1024 // KiB, i.e. 256 MiB
	argonThreads = 1
	argonKeyLen  = 32

	// saltPrefix is the fixed text prefix of the Argon2id salt. Its
	// length (19 bytes) leaves byte offset 19 as an always-NUL
	// terminator once copied into the 25-byte salt buffer, ahead of the
	// version byte at offset 20 and the little-endian quantized date at
	// offsets 21..24. This exact layout is load-bearing: a phrase
	// generated by one implementation must derive the same key on
	// another.
	saltPrefix = "Monero 14-word seed"
)

// Seed owns a 14-word mnemonic's decoded state: the codeword polynomial,
// the 128-bit secret, the derived 256-bit key, and the decoded metadata.
// A Seed is only ever observed by its caller after a successful Generate
// or Parse; there is no partially-constructed state to leak on failure.
type Seed struct {
	message *polynomial

	secret [16]byte
	key    [32]byte

	version       uint8
	reserved      uint8
	date          time.Time
	quantizedDate uint16

	correction    string
	hasCorrection bool
}

// memzero overwrites b with zeros. The 16-byte seed and 32-byte key are
// sensitive material: Seed.Free zeroes both, and the raw Argon2id output
// is zeroed once copied into the key.
func memzero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func getRandomBytes(b []byte) error {
	_, err := rand.Read(b)
	return err
}

// baseSalt builds the 25-byte Argon2id salt for a given version and
// quantized date, per the fixed layout above.
func baseSalt(version uint8, quantizedDate uint16) []byte {
	salt := make([]byte, 25)
	copy(salt, saltPrefix)
	salt[20] = version
	binary.LittleEndian.PutUint32(salt[21:25], uint32(quantizedDate))
	return salt
}

// deriveKeyWithSalt runs Argon2id over secret with the given salt. The
// argon2 package itself never returns an error, but a panic during its
// ~256 MiB allocation (e.g. under memory pressure) is recovered and
// reported as StatusKdfFailure so callers see it through the same error
// channel as every other failure mode.
func deriveKeyWithSalt(secret, salt []byte) (key [32]byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = StatusKdfFailure
		}
	}()
	raw := argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	copy(key[:], raw)
	memzero(raw)
	return key, nil
}

func deriveKey(secret []byte, version uint8, quantizedDate uint16) ([32]byte, error) {
	return deriveKeyWithSalt(secret, baseSalt(version, quantizedDate))
}

// Generate creates a new seed dated dateCreated, drawing 128 bits of
// secret material from the platform CSPRNG.
func Generate(dateCreated time.Time) (*Seed, error) {
	ts := dateCreated.Unix()
	if ts < 0 {
		return nil, StatusDateBeforeEpoch
	}
	return generateAt(uint64(ts))
}

// GenerateNow creates a new seed dated now.
func GenerateNow() (*Seed, error) {
	return Generate(time.Now().UTC())
}

func generateAt(ts uint64) (*Seed, error) {
	if ts < epoch {
		return nil, StatusDateBeforeEpoch
	}
	quantized := quantizeDate(ts)

	var secret [16]byte
	if err := getRandomBytes(secret[:]); err != nil {
		return nil, StatusEntropyUnavailable
	}

	p := &payload{version: 0, reserved: 0, date: quantized, seed: secret}
	msg := newPolynomial()
	packPayload(msg, p)
	theCode.encode(msg)
	msg.degree = numWords - 1

	key, err := deriveKey(secret[:], p.version, quantized)
	if err != nil {
		memzero(secret[:])
		return nil, err
	}

	return &Seed{
		message:       msg,
		secret:        secret,
		key:           key,
		version:       p.version,
		reserved:      p.reserved,
		date:          time.Unix(int64(dateFromQuantized(quantized)), 0).UTC(),
		quantizedDate: quantized,
	}, nil
}

// splitPhrase tokenizes a mnemonic phrase on single ASCII spaces. No
// leading, trailing, or repeated whitespace is tolerated; the phrase
// format is case-sensitive.
func splitPhrase(phrase string) []string {
	return strings.Split(phrase, " ")
}

// Parse decodes a mnemonic phrase, optionally recovering one erasure
// marked by the literal token "xxxx".
func Parse(phrase string) (*Seed, error) {
	tokens := splitPhrase(phrase)
	if len(tokens) != numWords {
		return nil, StatusWrongTokenCount
	}

	msg := newPolynomial()
	erasurePos := -1
	for i, tok := range tokens {
		idx := englishWordlist.Index(tok)
		if idx < 0 {
			if tok != erasureMarker {
				return nil, StatusUnknownWord
			}
			if erasurePos >= 0 {
				return nil, StatusTooManyErasures
			}
			erasurePos = i
			continue
		}
		msg.setCoeff(i, gfElem(idx))
	}
	msg.degree = numWords - 1

	var correction string
	haveCorrection := false
	if erasurePos >= 0 {
		v, ok := theCode.correctErasure(msg, erasurePos)
		if !ok {
			return nil, StatusChecksumMismatch
		}
		msg.setCoeff(erasurePos, v)
		correction = englishWordlist.Word(int(v))
		haveCorrection = true
	} else if !theCode.verify(msg) {
		return nil, StatusChecksumMismatch
	}

	p := unpackPayload(msg)

	key, err := deriveKey(p.seed[:], p.version, p.date)
	if err != nil {
		return nil, err
	}

	return &Seed{
		message:       msg,
		secret:        p.seed,
		key:           key,
		version:       p.version,
		reserved:      p.reserved,
		date:          time.Unix(int64(dateFromQuantized(p.date)), 0).UTC(),
		quantizedDate: p.date,
		correction:    correction,
		hasCorrection: haveCorrection,
	}, nil
}

// String renders the seed's 14-word mnemonic phrase.
func (s *Seed) String() string {
	words := make([]string, numWords)
	for i := 0; i < numWords; i++ {
		words[i] = englishWordlist.Word(int(s.message.coeffAt(i)))
	}
	return strings.Join(words, " ")
}

// KeyHex renders the derived key as 64 lowercase hex characters,
// most-significant byte first.
func (s *Seed) KeyHex() string {
	return hex.EncodeToString(s.key[:])
}

// Key returns the 256-bit key derived under CoinDefault.
func (s *Seed) Key() [32]byte {
	return s.key
}

// SecretSeed returns the 128-bit secret backing this Seed.
func (s *Seed) SecretSeed() [16]byte {
	return s.secret
}

// Version returns the payload's version field (currently always 0).
func (s *Seed) Version() uint8 {
	return s.version
}

// Reserved returns the payload's reserved field (currently always 0).
func (s *Seed) Reserved() uint8 {
	return s.reserved
}

// Date returns the quantized creation date, expanded back to a full
// timestamp.
func (s *Seed) Date() time.Time {
	return s.date
}

// Correction returns the word recovered during erasure correction, and
// whether a correction actually occurred.
func (s *Seed) Correction() (string, bool) {
	return s.correction, s.hasCorrection
}

// Keygen derives a 256-bit key domain-separated by coin. CoinDefault
// returns the same key as Key; any other value re-runs Argon2id with the
// coin folded into the salt, so seeds shared across coin-specific wallets
// never collide on key material. This does not touch the encoded phrase
// or its checksum.
func (s *Seed) Keygen(coin Coin) ([32]byte, error) {
	if coin == CoinDefault {
		return s.key, nil
	}
	salt := baseSalt(s.version, s.quantizedDate)
	coinBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(coinBytes, uint16(coin))
	salt = append(salt, coinBytes...)
	return deriveKeyWithSalt(s.secret[:], salt)
}

// Free securely erases the seed's secret material.
func (s *Seed) Free() {
	memzero(s.secret[:])
	memzero(s.key[:])
}
