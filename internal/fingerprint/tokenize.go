// Package fingerprint turns file content into Winnowing fingerprints.
package fingerprint

// isTokenByte reports whether b belongs to a token (ASCII alphanumeric or underscore).
func isTokenByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// Tokenize splits data into maximal runs of token bytes. Every other byte is a
// separator. The returned tokens alias data.
func Tokenize(data []byte) [][]byte {
	var tokens [][]byte
	start := -1
	for i, b := range data {
		if isTokenByte(b) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, data[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, data[start:])
	}
	return tokens
}
