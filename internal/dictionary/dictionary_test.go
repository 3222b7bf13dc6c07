package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDict(t *testing.T, lines string) *Dictionary {
	t.Helper()
	d, err := Parse(strings.NewReader(lines))
	require.NoError(t, err)
	return d
}

func TestParse(t *testing.T) {
	t.Parallel()

	d := testDict(t, "The 500\n\nthis 200\nbroken\npi 3.5\nneg -4\n")

	assert.True(t, d.IsKnown("the"), "words are lowercased on load")
	assert.True(t, d.IsKnown("this"))
	assert.Equal(t, 500, d.Frequency("the"))
	assert.Equal(t, 3, d.Frequency("pi"), "float counts are truncated")
	assert.False(t, d.IsKnown("broken"), "lines without a count are skipped")
	assert.False(t, d.IsKnown("neg"), "negative counts are rejected")
	assert.Equal(t, 3, d.Len())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello 10\nworld 5\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.True(t, d.IsKnown("hello"))
}

func TestLoad_MissingOrEmpty(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = Load(empty)
	require.Error(t, err)
}

func TestBestCorrection(t *testing.T) {
	t.Parallel()

	d := testDict(t, "the 500\nthis 200\ntest 150\ncap 90\ncat 10")

	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "known word returns itself", word: "test", want: "test"},
		{name: "adjacent transpose", word: "teh", want: "the"},
		{name: "missing letter", word: "tst", want: "test"},
		{name: "frequency breaks distance ties", word: "caz", want: "cap"},
		{name: "higher frequency wins among distance-1 neighbours", word: "ths", want: "the"},
		{name: "no neighbour returns input unchanged", word: "zzzzzz", want: "zzzzzz"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.BestCorrection(tt.word))
		})
	}
}

func TestBestCorrection_LexicographicTieBreak(t *testing.T) {
	t.Parallel()

	d := testDict(t, "aaab 10\naaac 10")
	assert.Equal(t, "aaab", d.BestCorrection("aaaa"))
}

func TestBestCorrection_DistanceTwoFallback(t *testing.T) {
	t.Parallel()

	d := testDict(t, "spelling 10")
	assert.Equal(t, "spelling", d.BestCorrection("spelin"))
}

func TestUnknown(t *testing.T) {
	t.Parallel()

	d := testDict(t, "the 500\ncat 10")

	got := d.Unknown([]string{"the", "zzz", "cat", "qqq"})
	assert.Equal(t, map[string]bool{"zzz": true, "qqq": true}, got)

	assert.Empty(t, d.Unknown(nil))
}

func TestCustomWords(t *testing.T) {
	t.Parallel()

	d := testDict(t, "the 500")

	d.AddCustom("Gopher")
	assert.True(t, d.IsKnown("gopher"))
	assert.Equal(t, "gopher", d.BestCorrection("gophr"))

	d.RemoveCustom("Gopher")
	assert.False(t, d.IsKnown("gopher"))
}
