package typedesc

import "strings"

// PackageOf returns the package part of a canonical name such as
// "java.util.List" or "github.com/foo/bar.User".
// It reports false when the name has no package.
func PackageOf(canonical string) (string, bool) {
	base := stripArgs(canonical)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return "", false
	}
	return base[:i], true
}

// SimpleName returns the last segment of a canonical name.
func SimpleName(canonical string) string {
	base := stripArgs(canonical)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i+1:]
	}
	return base
}

// stripArgs drops a rendered argument list so dots inside it are ignored.
func stripArgs(name string) string {
	if i := strings.IndexByte(name, '<'); i >= 0 {
		return name[:i]
	}
	return name
}
