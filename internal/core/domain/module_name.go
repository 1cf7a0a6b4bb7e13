package domain

import (
	"regexp"
	"strings"
)

// AutomaticModuleNameOption is the compiler option that overrides the derived
// automatic module name of a source root.
const AutomaticModuleNameOption = "-XDautomatic-module-name:"

var (
	versionSuffix   = regexp.MustCompile(`-(\d+(\.|$))`)
	nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// AutomaticModuleName derives an automatic module name from a file base name
// (the file name without its extension). A trailing version suffix such as
// "-1.2.3" is dropped, each run of non-alphanumeric characters becomes a single
// dot and leading or trailing dots are removed. An empty result means the name
// cannot be derived.
func AutomaticModuleName(baseName string) string {
	name := baseName
	if loc := versionSuffix.FindStringIndex(name); loc != nil {
		name = name[:loc[0]]
	}
	name = nonAlphanumeric.ReplaceAllString(name, ".")
	return strings.Trim(name, ".")
}

// AutomaticModuleNameOverride returns the module name set through
// -XDautomatic-module-name in the given compiler options. The last occurrence wins.
func AutomaticModuleNameOverride(options []string) (string, bool) {
	var name string
	for _, opt := range options {
		if v, ok := strings.CutPrefix(opt, AutomaticModuleNameOption); ok {
			name = strings.TrimSpace(v)
		}
	}
	return name, name != ""
}

// PlatformModuleName returns the module name of a platform image root: the
// path segment between the last two slashes, e.g. "java.base" for
// "jrt:/java.base/".
func PlatformModuleName(root RootID) string {
	s := string(root)
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	end := len(s) - 1
	start := strings.LastIndex(s[:end], "/")
	if start < 0 {
		return ""
	}
	return s[start+1 : end]
}
