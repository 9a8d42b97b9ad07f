package owners

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacySource = `// generated snapshot
export const PERMANENT_NFT_OWNERS: string[] = [
  "0x00ab",
  "0x00CD", // second
  "0x00ab",
  "not-an-address"
];

export const OTHER = ["0xffff"];
`

func TestExtractLegacy(t *testing.T) {
	list, err := ExtractLegacy(legacySource)
	require.NoError(t, err)
	assert.Equal(t, []string{"0x00ab", "0x00CD", "0x00ab"}, list)

	_, err = ExtractLegacy("export const X = []")
	assert.ErrorIs(t, err, ErrLegacyNotFound)
}

func TestNormalizeAll(t *testing.T) {
	list, err := NormalizeAll([]string{" 0xABC ", "0x01"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0xabc", "0x01"}, list)

	_, err = NormalizeAll([]string{"0xabc", "abc"})
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = NormalizeAll([]string{"0x" + strings.Repeat("a", 65)})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestDedupe(t *testing.T) {
	unique, dups := Dedupe([]string{"a", "b", "a", "c", "b"})
	assert.Equal(t, []string{"a", "b", "c"}, unique)
	assert.Equal(t, []string{"a", "b"}, dups)
}

func TestParseFormats(t *testing.T) {
	list, err := Parse(strings.NewReader(`{"owners": ["0x1", "0x2"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"0x1", "0x2"}, list)

	list, err = Parse(strings.NewReader(`  ["0x3"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"0x3"}, list)

	_, err = Parse(strings.NewReader(`{"owners": 3}`))
	assert.Error(t, err)
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "owners.json")
	require.NoError(t, SaveFile(path, []string{"0xaa", "0xbb"}))

	list, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"0xaa", "0xbb"}, list)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"owners"`)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	r := Verify([]string{"0xAA", "0xaa", "0xbb", "zz"}, 2)
	assert.Equal(t, 4, r.Total)
	assert.Equal(t, 2, r.Unique)
	assert.Equal(t, []string{"0xaa"}, r.Duplicates)
	assert.Equal(t, []string{"zz"}, r.Invalid)
	assert.True(t, r.CountMatches)
	assert.False(t, r.OK())

	clean := Verify([]string{"0x1", "0x2"}, 0)
	assert.True(t, clean.OK())

	short := Verify([]string{"0x1"}, DefaultExpected)
	assert.False(t, short.CountMatches)
}
