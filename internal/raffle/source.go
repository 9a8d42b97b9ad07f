package raffle

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
)

// Source names stored on a raffle record.
const (
	SourceCrypto = "crypto"
	SourceSeeded = "seeded"
)

// RandomSource yields uniformly distributed integers in [0, n).
type RandomSource interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. The zero value is ready to use and
// safe for concurrent callers.
type CryptoSource struct{}

// Intn picks one integer in [0, n) using crypto/rand.
func (CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("range must be > 0")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read crypto random: %w", err)
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic ChaCha8 stream keyed by a disclosed seed.
// Anyone holding the seed and the participant list can replay the draw.
// Not safe for concurrent use; create one per draw.
type SeededSource struct {
	rng *mathrand.Rand
}

// NewSeededSource keys the stream with sha256(seed).
func NewSeededSource(seed string) (*SeededSource, error) {
	if seed == "" {
		return nil, errors.New("seed must not be empty")
	}
	key := sha256.Sum256([]byte(seed))
	return &SeededSource{rng: mathrand.New(mathrand.NewChaCha8(key))}, nil
}

// Intn picks the next integer in [0, n) from the stream.
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("range must be > 0")
	}
	return s.rng.IntN(n), nil
}

// NewSeed returns 32 random bytes, hex encoded.
func NewSeed() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate seed: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Commitment is published before a seeded draw runs. It is sha256 of the
// stream key, so it can be checked against the revealed seed without
// exposing the key itself.
func Commitment(seed string) string {
	key := sha256.Sum256([]byte(seed))
	sum := sha256.Sum256(key[:])
	return hex.EncodeToString(sum[:])
}

// VerifyCommitment reports whether seed matches a published commitment.
func VerifyCommitment(seed, commitment string) bool {
	return seed != "" && Commitment(seed) == commitment
}
