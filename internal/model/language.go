package model

import (
	"path"
	"strings"
)

// Language describes how source lines of one language are classified.
type Language struct {
	Name          string
	LineComment   string // empty when the language has none
	BlockComments bool   // supports /* ... */
}

// languages maps file extensions to languages.
var languages = map[string]Language{
	// C-style
	".go":    {"Go", "//", true},
	".c":     {"C", "//", true},
	".h":     {"C Header", "//", true},
	".cpp":   {"C++", "//", true},
	".hpp":   {"C++ Header", "//", true},
	".cc":    {"C++", "//", true},
	".cxx":   {"C++", "//", true},
	".java":  {"Java", "//", true},
	".js":    {"JavaScript", "//", true},
	".jsx":   {"JSX", "//", true},
	".ts":    {"TypeScript", "//", true},
	".tsx":   {"TSX", "//", true},
	".cs":    {"C#", "//", true},
	".swift": {"Swift", "//", true},
	".kt":    {"Kotlin", "//", true},
	".kts":   {"Kotlin", "//", true},
	".scala": {"Scala", "//", true},
	".rs":    {"Rust", "//", true},
	".php":   {"PHP", "//", true},
	".m":     {"Objective-C", "//", true},
	".mm":    {"Objective-C++", "//", true},
	".dart":  {"Dart", "//", true},
	".v":     {"V", "//", true},
	".zig":   {"Zig", "//", false},
	".css":   {"CSS", "", true},
	".scss":  {"Sass", "//", true},
	// Hash-style
	".py":    {"Python", "#", false},
	".rb":    {"Ruby", "#", false},
	".sh":    {"Shell", "#", false},
	".bash":  {"Shell", "#", false},
	".zsh":   {"Shell", "#", false},
	".pl":    {"Perl", "#", false},
	".pm":    {"Perl", "#", false},
	".r":     {"R", "#", false},
	".yaml":  {"YAML", "#", false},
	".yml":   {"YAML", "#", false},
	".toml":  {"TOML", "#", false},
	".tf":    {"HCL", "#", true},
	".cmake": {"CMake", "#", false},
	".mk":    {"Makefile", "#", false},
	".ps1":   {"PowerShell", "#", false},
	".nim":   {"Nim", "#", false},
	".jl":    {"Julia", "#", false},
	".ex":    {"Elixir", "#", false},
	".exs":   {"Elixir", "#", false},
	".cr":    {"Crystal", "#", false},
	// Double-dash style
	".sql":  {"SQL", "--", true},
	".lua":  {"Lua", "--", false},
	".hs":   {"Haskell", "--", false},
	".elm":  {"Elm", "--", false},
	".ada":  {"Ada", "--", false},
	".vhdl": {"VHDL", "--", false},
	// Semicolon style
	".lisp": {"Lisp", ";", false},
	".cl":   {"Lisp", ";", false},
	".scm":  {"Scheme", ";", false},
	".clj":  {"Clojure", ";", false},
	".cljs": {"ClojureScript", ";", false},
	".el":   {"Emacs Lisp", ";", false},
	".asm":  {"Assembly", ";", false},
	// Percent style
	".tex": {"TeX", "%", false},
	".erl": {"Erlang", "%", false},
	".hrl": {"Erlang", "%", false},
	// Apostrophe style
	".vb":  {"Visual Basic", "'", false},
	".bas": {"Visual Basic", "'", false},
	".vbs": {"VBScript", "'", false},
	// No line comments
	".json": {"JSON", "", false},
	".md":   {"Markdown", "", false},
	".html": {"HTML", "", false},
	".xml":  {"XML", "", false},
}

// LanguageForPath returns the language of a file by extension.
func LanguageForPath(p string) (Language, bool) {
	ext := path.Ext(p)
	if lang, ok := languages[ext]; ok {
		return lang, true
	}
	lang, ok := languages[strings.ToLower(ext)]
	return lang, ok
}
