package scan

import (
	"bytes"
	"strings"

	"github.com/asynkron/dupscan/internal/model"
)

var (
	blockOpen  = []byte("/*")
	blockClose = []byte("*/")
)

// stripBlockComments blanks /* ... */ comments, keeping newlines so line
// numbers survive. An unterminated comment runs to the end of content.
func stripBlockComments(content []byte) []byte {
	out := bytes.Clone(content)
	for pos := 0; ; {
		open := bytes.Index(out[pos:], blockOpen)
		if open < 0 {
			return out
		}
		open += pos

		end := len(out)
		if n := bytes.Index(out[open+len(blockOpen):], blockClose); n >= 0 {
			end = open + len(blockOpen) + n + len(blockClose)
		}
		for i := open; i < end; i++ {
			if out[i] != '\n' {
				out[i] = ' '
			}
		}
		pos = end
	}
}

func isWhitespaceOnly(line string) bool {
	for _, r := range line {
		if r != ' ' && r != '\t' && r != '\r' {
			return false
		}
	}
	return true
}

func isCommentOnly(line, prefix string) bool {
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), prefix)
}

// CountCodeLines counts lines that are neither blank nor comment-only.
func CountCodeLines(content []byte, lang model.Language) int {
	if lang.BlockComments {
		content = stripBlockComments(content)
	}

	code := 0
	for _, line := range strings.Split(string(content), "\n") {
		if isWhitespaceOnly(line) || isCommentOnly(line, lang.LineComment) {
			continue
		}
		code++
	}
	return code
}
