// Package codec implements the serialization formats that file sessions
// dispatch their contents through. Formats are resolved from file extensions
// into a [Format], each serializing [Format] binding to exactly one [Codec]
// in an explicit registry.
package codec

import (
	"io"
	"reflect"
	"strings"
)

// DefaultJSONIndent is the width JSON output is indented with when no
// explicit indent is requested through [WriteOptions].
const DefaultJSONIndent = 4

// Format enumerates the serialization formats known to this package. The
// zero value is [FormatRaw], which performs no serialization at all.
type Format uint8

const (
	// FormatRaw passes contents through verbatim, as text or bytes.
	FormatRaw Format = iota

	// FormatJSON (de-)serializes JSON documents with mapping roots.
	FormatJSON

	// FormatCSV (de-)serializes CSV records as string matrices.
	FormatCSV

	// FormatYAML (de-)serializes arbitrary YAML documents.
	FormatYAML

	// FormatTOML (de-)serializes TOML documents with mapping roots.
	FormatTOML

	// FormatGob (de-)serializes binary object graphs in Go's gob encoding.
	FormatGob
)

// String implements [fmt.Stringer] for a [Format].
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatGob:
		return "gob"
	case FormatRaw:
		return "raw"
	default:
		return "raw"
	}
}

// A Codec decodes serialized contents into Go values and encodes Go values
// back into serialized contents.
type Codec interface {
	// Decode reads one serialized value from r.
	Decode(r io.Reader, opts *ReadOptions) (any, error)

	// Encode writes the serialized form of v to w.
	Encode(w io.Writer, v any, opts *WriteOptions) error
}

// ReadOptions hold the tunables honored while decoding. A nil *ReadOptions
// is valid and means the documented defaults.
type ReadOptions struct {
	// Comma is the field delimiter for CSV records. The zero value means
	// the comma character.
	Comma rune
}

// WriteOptions hold the tunables honored while encoding. A nil
// *WriteOptions is valid and means the documented defaults.
type WriteOptions struct {
	// Indent is the width JSON documents are indented with. The zero value
	// means [DefaultJSONIndent], negative values emit compact output.
	Indent int

	// Comma is the field delimiter for CSV records. The zero value means
	// the comma character.
	Comma rune
}

// aliases maps alternate spellings of a file type to their canonical name.
//
//nolint:gochecknoglobals
var aliases = map[string]string{
	"yml": "yaml",
	"pkl": "pickle",
}

// formats maps canonical file types to their serializing [Format].
//
//nolint:gochecknoglobals
var formats = map[string]Format{
	"json":   FormatJSON,
	"csv":    FormatCSV,
	"yaml":   FormatYAML,
	"toml":   FormatTOML,
	"pickle": FormatGob,
}

// codecs is the registry binding each serializing [Format] to its [Codec].
// [FormatRaw] is deliberately absent; callers handle it as their default
// case with a [Raw] codec of the suitable flavor.
//
//nolint:gochecknoglobals
var codecs = map[Format]Codec{
	FormatJSON: JSON{},
	FormatCSV:  CSV{},
	FormatYAML: YAML{},
	FormatTOML: TOML{},
	FormatGob:  Gob{},
}

// Normalize derives the canonical file type for an extension: any leading
// dot is stripped, the remainder lowercased and alternate spellings folded
// into their canonical name.
func Normalize(ext string) string {
	fileType := strings.ToLower(strings.TrimPrefix(ext, "."))
	if canonical, ok := aliases[fileType]; ok {
		return canonical
	}

	return fileType
}

// Detect resolves a file extension to its serializing [Format]. Extensions
// without a dedicated codec resolve to [FormatRaw].
func Detect(ext string) Format {
	return formats[Normalize(ext)]
}

// ForFormat returns the registered [Codec] for a [Format]. The boolean is
// false when no dedicated codec exists, in which case contents pass through
// a [Raw] codec.
func ForFormat(f Format) (Codec, bool) {
	c, ok := codecs[f]

	return c, ok
}

// IsMapping reports whether v is a mapping with string keys, the only
// document root JSON and TOML contents are written from.
func IsMapping(v any) bool {
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}
