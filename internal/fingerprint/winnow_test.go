package fingerprint

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenText(seed string, n int) []byte {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("tok_%s_%d", seed, i)
	}
	return []byte(strings.Join(parts, " + "))
}

func asStrings(tokens [][]byte) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = string(t)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"separators only", " \t+-(){};\n", []string{}},
		{"simple", "fn main() { let x_1 = 42; }", []string{"fn", "main", "let", "x_1", "42"}},
		{"leading and trailing token", "abc.def", []string{"abc", "def"}},
		{"case preserved", "Foo foo FOO", []string{"Foo", "foo", "FOO"}},
		{"non ascii is a separator", "héllo", []string{"h", "llo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, asStrings(Tokenize([]byte(tt.in))))
		})
	}
}

func TestTokenize_BinaryInput(t *testing.T) {
	data := []byte{0x00, 'a', 0xff, 0xfe, 'b', 'c', 0x00, 0xc3, 0x28}
	assert.NotPanics(t, func() {
		assert.Equal(t, []string{"a", "bc"}, asStrings(Tokenize(data)))
	})
}

func TestWinnow_ShortInputIsEmpty(t *testing.T) {
	assert.Empty(t, Winnow(nil))
	assert.Empty(t, Winnow(tokenText("a", K-1)))
}

func TestWinnow_ExactlyK(t *testing.T) {
	fp := Winnow(tokenText("a", K))
	assert.Len(t, fp, 1, "one shingle is returned verbatim")
}

func TestWinnow_FewerThanWindowReturnsAll(t *testing.T) {
	// K+2 tokens give three shingles, one short of a full window.
	data := tokenText("a", K+2)
	shingles := Shingles(Tokenize(data))
	require.Len(t, shingles, W-1)
	assert.Equal(t, shingles, Winnow(data))
}

func TestWinnow_Deterministic(t *testing.T) {
	data := tokenText("seed", 100)
	first := Winnow(data)
	require.NotEmpty(t, first)
	assert.Equal(t, first, Winnow(append([]byte{}, data...)))
}

func TestWinnow_DifferentContentDiffers(t *testing.T) {
	assert.NotEqual(t, Winnow(tokenText("a", 100)), Winnow(tokenText("b", 100)))
}

func TestWinnow_Bounded(t *testing.T) {
	data := tokenText("a", 200)
	shingles := Shingles(Tokenize(data))
	fp := Winnow(data)
	assert.LessOrEqual(t, len(fp), len(shingles)-W+1)
	assert.GreaterOrEqual(t, len(fp), len(shingles)/W)
}

func TestWinnow_BinaryDoesNotPanic(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i * 31)
	}
	assert.NotPanics(t, func() { Winnow(data) })
}

func TestHashShingle_TokenBoundaries(t *testing.T) {
	a := hashShingle([][]byte{[]byte("ab"), []byte("c")})
	b := hashShingle([][]byte{[]byte("a"), []byte("bc")})
	assert.NotEqual(t, a, b)
}

func TestWinnowHashes(t *testing.T) {
	tests := []struct {
		name   string
		hashes []uint64
		want   []uint64
	}{
		{"empty", nil, []uint64{}},
		{"fewer than window", []uint64{9, 3, 7}, []uint64{9, 3, 7}},
		{"single window", []uint64{5, 2, 8, 6}, []uint64{2}},
		// Windows [5 2 8 6] [2 8 6 9] pick the same position once, then [8 6 9 1] picks 1.
		{"repeat pick suppressed", []uint64{5, 2, 8, 6, 9, 1}, []uint64{2, 1}},
		// Every window picks its rightmost element, so each window emits.
		{"rightmost tie", []uint64{4, 4, 4, 4, 4, 4}, []uint64{4, 4, 4}},
		{"descending", []uint64{9, 8, 7, 6, 5}, []uint64{6, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WinnowHashes(tt.hashes))
		})
	}
}

func randomTokens(r *rand.Rand, prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, r.Intn(1_000_000))
	}
	return out
}

// A run of K+W-1 tokens yields W shingles, one full window, so any two
// documents containing it select at least one common fingerprint.
func TestWinnow_SharedRunYieldsCommonFingerprint(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		shared := randomTokens(r, "s", K+W-1)
		doc := func(side string) []byte {
			tokens := randomTokens(r, side, r.Intn(60))
			tokens = append(tokens, shared...)
			tokens = append(tokens, randomTokens(r, side, r.Intn(60))...)
			return []byte(strings.Join(tokens, " "))
		}

		left, right := Winnow(doc("l")), Winnow(doc("r"))
		seen := make(map[uint64]bool, len(left))
		for _, fp := range left {
			seen[fp] = true
		}
		common := false
		for _, fp := range right {
			if seen[fp] {
				common = true
				break
			}
		}
		require.True(t, common, "trial %d: no common fingerprint", trial)
	}
}
