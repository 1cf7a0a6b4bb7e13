package archive

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"strings"

	"go.trai.ch/jmod/internal/core/domain"
	"go.trai.ch/zerr"
)

// AutomaticModuleNameAttr is the manifest attribute naming an automatic module.
const AutomaticModuleNameAttr = "Automatic-Module-Name"

// Manifest holds the main section attributes of a JAR manifest.
type Manifest map[string]string

// Get returns the value of an attribute. Attribute names are case-insensitive.
func (m Manifest) Get(name string) string {
	if v, ok := m[name]; ok {
		return v
	}
	for k, v := range m {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// ReadManifest parses the main section of a manifest. Lines starting with a
// single space continue the previous value; the first empty line ends the section.
func ReadManifest(r io.Reader) (Manifest, error) {
	m := make(Manifest)
	scanner := bufio.NewScanner(r)

	var key string
	var value strings.Builder
	flush := func() {
		if key != "" {
			m[key] = value.String()
		}
		key = ""
		value.Reset()
	}

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if line == "" {
			break
		}

		if strings.HasPrefix(line, " ") {
			if key == "" {
				return nil, zerr.With(domain.ErrManifestMalformed, "line", lineNo)
			}
			value.WriteString(line[1:])
			continue
		}

		flush()

		name, val, ok := strings.Cut(line, ":")
		if !ok || name == "" || strings.ContainsAny(name, " \t") {
			return nil, zerr.With(domain.ErrManifestMalformed, "line", lineNo)
		}
		key = name
		value.WriteString(strings.TrimPrefix(val, " "))
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	return m, nil
}

// ReadRootManifest reads META-INF/MANIFEST.MF from fsys.
func ReadRootManifest(fsys fs.FS) (Manifest, error) {
	data, err := ReadEntry(fsys, domain.ManifestPath)
	if err != nil {
		return nil, err
	}
	return ReadManifest(bytes.NewReader(data))
}
