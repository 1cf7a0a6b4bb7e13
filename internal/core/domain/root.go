package domain

import (
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// RootKind classifies the locator form of a root identifier.
type RootKind uint8

const (
	// KindUnknown is a root whose form is not recognized.
	KindUnknown RootKind = iota
	// KindPlatform is a segment of a platform runtime image.
	KindPlatform
	// KindArchive is a JAR or ZIP archive.
	KindArchive
	// KindDirectory is a plain directory on disk.
	KindDirectory
)

// String returns the lowercase name of the kind.
func (k RootKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindArchive:
		return "archive"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

const (
	jarScheme   = "jar:"
	fileScheme  = "file:"
	jrtScheme   = "jrt:"
	nbjrtScheme = "nbjrt:"
	archiveSep  = "!/"
)

// archiveExtensions are the file extensions treated as archives when parsing plain paths.
var archiveExtensions = map[string]bool{
	".jar": true,
	".zip": true,
}

// RootID is an immutable, URL-like locator for a classpath root.
// It is comparable and used as the cache key for module name resolution.
type RootID string

// ArchiveRoot returns the identifier of the archive at the given path.
func ArchiveRoot(p string) RootID {
	return RootID(jarScheme + fileScheme + toURIPath(p) + archiveSep)
}

// DirectoryRoot returns the identifier of the directory at the given path.
func DirectoryRoot(p string) RootID {
	uri := toURIPath(p)
	if !strings.HasSuffix(uri, "/") {
		uri += "/"
	}
	return RootID(fileScheme + uri)
}

// PlatformRoot returns the identifier of a platform image module segment.
func PlatformRoot(module string) RootID {
	return RootID(jrtScheme + "/" + module + "/")
}

// ParseRootID parses either a root URL (jar:, file:, jrt:, nbjrt:) or a plain
// filesystem path into a RootID. Plain paths ending in .jar or .zip are archives,
// everything else is a directory.
func ParseRootID(s string) (RootID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", zerr.With(ErrInvalidRoot, "root", s)
	}

	switch {
	case strings.HasPrefix(s, jrtScheme), strings.HasPrefix(s, nbjrtScheme):
		if PlatformModuleName(RootID(s)) == "" {
			return "", zerr.With(ErrInvalidRoot, "root", s)
		}
		if !strings.HasSuffix(s, "/") {
			s += "/"
		}
		return RootID(s), nil
	case strings.HasPrefix(s, jarScheme):
		inner := strings.TrimPrefix(s, jarScheme)
		idx := strings.Index(inner, archiveSep)
		if idx < 0 || !strings.HasPrefix(inner, fileScheme) {
			return "", zerr.With(ErrInvalidRoot, "root", s)
		}
		return ArchiveRoot(fromURIPath(strings.TrimPrefix(inner[:idx], fileScheme))), nil
	case strings.HasPrefix(s, fileScheme):
		p := fromURIPath(strings.TrimPrefix(s, fileScheme))
		if archiveExtensions[strings.ToLower(filepath.Ext(strings.TrimSuffix(p, "/")))] {
			return ArchiveRoot(p), nil
		}
		return DirectoryRoot(p), nil
	}

	abs, err := filepath.Abs(s)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrInvalidRoot.Error()), "root", s)
	}
	if archiveExtensions[strings.ToLower(filepath.Ext(abs))] {
		return ArchiveRoot(abs), nil
	}
	return DirectoryRoot(abs), nil
}

// Kind returns the kind of root the identifier denotes.
func (r RootID) Kind() RootKind {
	s := string(r)
	switch {
	case strings.HasPrefix(s, jrtScheme), strings.HasPrefix(s, nbjrtScheme):
		return KindPlatform
	case strings.HasPrefix(s, jarScheme+fileScheme) && strings.HasSuffix(s, archiveSep):
		return KindArchive
	case strings.HasPrefix(s, fileScheme):
		return KindDirectory
	default:
		return KindUnknown
	}
}

// Path returns the filesystem path of an archive or directory root.
// It returns an empty string for platform and unknown roots.
func (r RootID) Path() string {
	s := string(r)
	switch r.Kind() {
	case KindArchive:
		inner := strings.TrimSuffix(strings.TrimPrefix(s, jarScheme+fileScheme), archiveSep)
		return fromURIPath(inner)
	case KindDirectory:
		return fromURIPath(strings.TrimPrefix(s, fileScheme))
	default:
		return ""
	}
}

// BaseName returns the last path element of the root without its extension.
// For an archive "lib/foo-1.2.3.jar" it returns "foo-1.2.3".
func (r RootID) BaseName() string {
	p := r.Path()
	if p == "" {
		return ""
	}
	base := filepath.Base(p)
	if r.Kind() == KindArchive {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}

// String returns the URL form of the identifier.
func (r RootID) String() string {
	return string(r)
}

func toURIPath(p string) string {
	uri := filepath.ToSlash(filepath.Clean(p))
	if !strings.HasPrefix(uri, "/") {
		uri = "/" + uri
	}
	return uri
}

func fromURIPath(uri string) string {
	cleaned := path.Clean("/" + strings.TrimLeft(uri, "/"))
	return filepath.FromSlash(cleaned)
}
