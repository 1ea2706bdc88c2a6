package model

import "strings"

// RootModule is the module key of files at the top of the scan root.
const RootModule = "(root)"

// UnknownModule is used when a file has no module record.
const UnknownModule = "(unknown)"

// ModuleKey derives the grouping key for a relative path.
//
// Files directly under the root map to "(root)". When the first directory is
// one of moduleRoots the key keeps up to depth directory segments, otherwise
// it is just the first directory. The file name is never part of the key.
func ModuleKey(path string, moduleRoots []string, depth int) string {
	p := NormalizePath(path)

	slash := strings.LastIndexByte(p, '/')
	if slash < 0 {
		return RootModule
	}

	var dirs []string
	for _, seg := range strings.Split(p[:slash], "/") {
		if seg != "" && seg != "." {
			dirs = append(dirs, seg)
		}
	}
	if len(dirs) == 0 {
		return RootModule
	}

	first := dirs[0]
	isRoot := false
	for _, r := range moduleRoots {
		if r == first {
			isRoot = true
			break
		}
	}
	if !isRoot {
		return first
	}

	if depth < 1 {
		depth = 1
	}
	if depth > len(dirs) {
		depth = len(dirs)
	}
	return strings.Join(dirs[:depth], "/")
}
