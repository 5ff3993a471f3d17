package extract

import "strings"

// shortName returns the last `::`-separated segment of a fully-qualified
// name, stripping any trailing template-argument list so `Vec<float, 3>`
// yields `Vec`.
func shortName(qualifiedName string) string {
	name := qualifiedName
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	return name
}
