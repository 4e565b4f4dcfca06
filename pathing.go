package sessfile

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/desertwitch/sessfile/codec"
)

// supportedTypes are the file types contents are dispatched for without
// [Options.AllowAny]. Alternate spellings count as their canonical type.
//
//nolint:gochecknoglobals
var supportedTypes = []string{
	"txt", "doc", "docx", "pdf", "html", "htm", "xml",
	"js", "css", "md", "json", "csv", "yaml", "yml",
	"toml", "pickle", "pkl", "log", "xht", "xhtml", "shtml",
}

// SupportedTypes returns the file types contents are dispatched for without
// [Options.AllowAny].
func SupportedTypes() []string {
	return slices.Clone(supportedTypes)
}

// isSupportedType reports whether a canonical file type is dispatchable.
func isSupportedType(fileType string) bool {
	return slices.Contains(supportedTypes, fileType)
}

// baseName derives the base name of a path, with backslashes stripped.
func baseName(path string) string {
	return strings.ReplaceAll(filepath.Base(path), `\`, "")
}

// Path returns the absolute path the session is bound to, or the empty
// string after [Session.Delete].
func (s *Session) Path() string {
	return s.path
}

// Name returns the file's base name, including its extension.
func (s *Session) Name() string {
	return baseName(s.path)
}

// Stem returns the file's base name without its extension.
func (s *Session) Stem() string {
	name := baseName(s.path)

	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Ext returns the file's extension, including the leading dot.
func (s *Session) Ext() string {
	return filepath.Ext(s.path)
}

// Dir returns the directory the file resides in.
func (s *Session) Dir() string {
	return filepath.Dir(s.path)
}

// Type returns the canonical file type derived from the current extension.
// It is recomputed on every call and never cached across renames.
func (s *Session) Type() string {
	return codec.Normalize(s.Ext())
}
