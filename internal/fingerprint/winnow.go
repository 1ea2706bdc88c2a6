package fingerprint

import "github.com/cespare/xxhash/v2"

const (
	// K is the number of tokens per shingle.
	K = 25
	// W is the number of shingle hashes per winnowing window.
	W = 4
)

// tokenTerminator follows every token in a shingle hash so that token
// boundaries are part of the hashed bytes. It never occurs in a token.
var tokenTerminator = []byte{0xff}

// hashShingle hashes one window of tokens.
func hashShingle(tokens [][]byte) uint64 {
	d := xxhash.New()
	for _, t := range tokens {
		d.Write(t)
		d.Write(tokenTerminator)
	}
	return d.Sum64()
}

// Shingles returns one hash per contiguous K-token window, or nil when there
// are fewer than K tokens.
func Shingles(tokens [][]byte) []uint64 {
	if len(tokens) < K {
		return nil
	}
	hashes := make([]uint64, len(tokens)-K+1)
	for i := range hashes {
		hashes[i] = hashShingle(tokens[i : i+K])
	}
	return hashes
}

// Winnow returns the Winnowing fingerprints of data. The result is empty when
// data has fewer than K tokens. Duplicate values may appear.
func Winnow(data []byte) []uint64 {
	return WinnowHashes(Shingles(Tokenize(data)))
}

// WinnowHashes selects fingerprints from a sequence of shingle hashes.
//
// Each window of W hashes picks its minimum, preferring the rightmost one on
// ties. A pick is emitted only when its position differs from the previous
// window's pick. Fewer than W hashes are returned unchanged.
func WinnowHashes(hashes []uint64) []uint64 {
	if len(hashes) == 0 {
		return []uint64{}
	}
	if len(hashes) < W {
		out := make([]uint64, len(hashes))
		copy(out, hashes)
		return out
	}

	out := make([]uint64, 0, len(hashes)/W+1)
	prev := -1
	for start := 0; start+W <= len(hashes); start++ {
		minPos := start
		for i := start + 1; i < start+W; i++ {
			if hashes[i] <= hashes[minPos] {
				minPos = i
			}
		}
		if minPos != prev {
			out = append(out, hashes[minPos])
			prev = minPos
		}
	}
	return out
}
