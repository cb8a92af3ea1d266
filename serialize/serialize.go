// Package serialize writes the checked tree to the output artifact
// format spec.md §6.2 describes: a text document round-tripping the
// tagged unions of §3, preserving field names and sequence order
// exactly.
package serialize

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/polyglotc/pgc/ast"
)

// Extension is the output artifact's document-format extension, replacing
// whatever extension the input path carried.
const Extension = ".pg.yml"

// ArtifactPath replaces path's extension with Extension.
func ArtifactPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + Extension
}

// Marshal renders prog as the output document. yaml.v3's Marshal already
// walks struct field order depth-first, which is exactly what spec.md
// §6.2 requires: sequences (Tuple elements, Struct literal fields in
// source order, function bodies) come out in the order they were
// appended, never resorted.
func Marshal(prog *ast.Program) ([]byte, error) {
	out, err := yaml.Marshal(prog)
	if err != nil {
		return nil, errors.Wrap(err, "marshal checked tree")
	}
	return out, nil
}

// WriteArtifact marshals prog and writes it to ArtifactPath(srcPath).
func WriteArtifact(srcPath string, prog *ast.Program) (string, error) {
	out, err := Marshal(prog)
	if err != nil {
		return "", err
	}
	dst := ArtifactPath(srcPath)
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return "", errors.Wrapf(err, "write artifact %s", dst)
	}
	return dst, nil
}
