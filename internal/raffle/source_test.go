package raffle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoSourceRange(t *testing.T) {
	var src CryptoSource
	for i := 0; i < 200; i++ {
		v, err := src.Intn(7)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	_, err := src.Intn(0)
	assert.Error(t, err)
}

func TestSeededSourceRange(t *testing.T) {
	src, err := NewSeededSource("abc")
	require.NoError(t, err)
	_, err = src.Intn(-1)
	assert.Error(t, err)
	v, err := src.Intn(1)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestCommitment(t *testing.T) {
	seed := "sheexcels-2025"
	c := Commitment(seed)
	assert.Len(t, c, 64)
	assert.True(t, VerifyCommitment(seed, c))
	assert.False(t, VerifyCommitment("other", c))
	assert.False(t, VerifyCommitment("", c))
}
