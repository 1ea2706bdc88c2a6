package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asynkron/dupscan/internal/model"
)

func TestCountCodeLines(t *testing.T) {
	goLang, _ := model.LanguageForPath("x.go")
	pyLang, _ := model.LanguageForPath("x.py")
	jsonLang, _ := model.LanguageForPath("x.json")

	tests := []struct {
		name string
		lang model.Language
		src  string
		want int
	}{
		{"empty", goLang, "", 0},
		{"blank lines", goLang, "\n \n\t\n", 0},
		{"line comments", goLang, "// a\n  // b\nx := 1\n", 1},
		{"block comment", goLang, "/* one\ntwo\nthree */\nfunc f() {}\n", 1},
		{"code after block comment", goLang, "/* c */ x := 1\n", 1},
		{"unterminated block", goLang, "x := 1\n/* never closed\ny := 2\n", 1},
		{"hash comments", pyLang, "# c\nimport os\n\n", 1},
		{"slashes are code in python", pyLang, "a = 1 // 2\n", 1},
		{"no comment syntax", jsonLang, "{\n  \"a\": 1\n}\n", 3},
		{"crlf", goLang, "x := 1\r\n\r\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountCodeLines([]byte(tt.src), tt.lang))
		})
	}
}

func TestStripBlockComments_KeepsNewlines(t *testing.T) {
	in := []byte("a /* b\nc */ d")
	out := stripBlockComments(in)
	assert.Equal(t, "a     \n     d", string(out))
	assert.Equal(t, "a /* b\nc */ d", string(in), "input is not modified")
}

func TestStripBlockComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"none", "x := 1", "x := 1"},
		{"empty comment", "a/**/b", "a    b"},
		{"slash after open is not a close", "a /*/ b */c", "a         c"},
		{"two comments", "/*a*/x/*b*/", "     x     "},
		{"unterminated", "x /* y\nz", "x     \n "},
		{"close without open", "a */ b", "a */ b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(stripBlockComments([]byte(tt.in))))
		})
	}
}
