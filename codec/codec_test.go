package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/desertwitch/sessfile/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		ext  string
		want string
	}{
		{"Success_Plain", "json", "json"},
		{"Success_LeadingDot", ".json", "json"},
		{"Success_MixedCase", ".JsOn", "json"},
		{"Success_YamlAlias", ".yml", "yaml"},
		{"Success_PickleAlias", "PKL", "pickle"},
		{"Success_Unknown", ".csharp", "csharp"},
		{"Success_Empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, codec.Normalize(tc.ext))
		})
	}
}

func TestDetect_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		ext  string
		want codec.Format
	}{
		{"Success_JSON", ".json", codec.FormatJSON},
		{"Success_CSV", "csv", codec.FormatCSV},
		{"Success_YAML", ".yaml", codec.FormatYAML},
		{"Success_YAMLAlias", ".YML", codec.FormatYAML},
		{"Success_TOML", ".toml", codec.FormatTOML},
		{"Success_Pickle", ".pickle", codec.FormatGob},
		{"Success_PickleAlias", ".pkl", codec.FormatGob},
		{"Success_TextIsRaw", ".txt", codec.FormatRaw},
		{"Success_UnknownIsRaw", ".csharp", codec.FormatRaw},
		{"Success_EmptyIsRaw", "", codec.FormatRaw},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, codec.Detect(tc.ext))
		})
	}
}

func TestForFormat_RegistryCoverage(t *testing.T) {
	t.Parallel()

	for _, f := range []codec.Format{
		codec.FormatJSON, codec.FormatCSV, codec.FormatYAML,
		codec.FormatTOML, codec.FormatGob,
	} {
		c, ok := codec.ForFormat(f)
		assert.True(t, ok, "expected a registered codec for %s", f)
		assert.NotNil(t, c)
	}

	c, ok := codec.ForFormat(codec.FormatRaw)
	assert.False(t, ok, "raw must stay the unregistered default case")
	assert.Nil(t, c)
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "json", codec.FormatJSON.String())
	assert.Equal(t, "csv", codec.FormatCSV.String())
	assert.Equal(t, "yaml", codec.FormatYAML.String())
	assert.Equal(t, "toml", codec.FormatTOML.String())
	assert.Equal(t, "gob", codec.FormatGob.String())
	assert.Equal(t, "raw", codec.FormatRaw.String())
}

func TestJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	doc := map[string]any{"test": "123", "check": "ok"}

	require.NoError(t, codec.JSON{}.Encode(&buf, doc, nil))

	got, err := codec.JSON{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestJSON_Encode_DefaultIndent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, codec.JSON{}.Encode(&buf, map[string]any{"a": "b"}, nil))

	assert.Equal(t, "{\n    \"a\": \"b\"\n}\n", buf.String())
}

func TestJSON_Encode_CustomIndent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, codec.JSON{}.Encode(&buf, map[string]any{"a": "b"}, &codec.WriteOptions{Indent: 2}))

	assert.Equal(t, "{\n  \"a\": \"b\"\n}\n", buf.String())
}

func TestJSON_Encode_CompactIndent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, codec.JSON{}.Encode(&buf, map[string]any{"a": "b"}, &codec.WriteOptions{Indent: -1}))

	assert.Equal(t, "{\"a\":\"b\"}\n", buf.String())
}

func TestJSON_Encode_RejectsNonMapping(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := codec.JSON{}.Encode(&buf, []string{"not", "a", "mapping"}, nil)
	require.ErrorIs(t, err, codec.ErrInvalidContent)

	err = codec.JSON{}.Encode(&buf, nil, nil)
	require.ErrorIs(t, err, codec.ErrInvalidContent)

	assert.Zero(t, buf.Len())
}

func TestJSON_Decode_Malformed(t *testing.T) {
	t.Parallel()

	_, err := codec.JSON{}.Decode(strings.NewReader("{not json"), nil)
	require.ErrorIs(t, err, codec.ErrFormat)
}

func TestJSON_Decode_Empty(t *testing.T) {
	t.Parallel()

	_, err := codec.JSON{}.Decode(strings.NewReader(""), nil)
	require.ErrorIs(t, err, codec.ErrFormat)
}

func TestCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	records := [][]string{{"test", "123"}, {"check", "ok"}}

	require.NoError(t, codec.CSV{}.Encode(&buf, records, nil))
	assert.Equal(t, "test,123\ncheck,ok\n", buf.String())

	got, err := codec.CSV{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestCSV_RoundTrip_CustomComma(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	records := [][]string{{"a", "b"}, {"c", "d"}}

	require.NoError(t, codec.CSV{}.Encode(&buf, records, &codec.WriteOptions{Comma: ';'}))
	assert.Equal(t, "a;b\nc;d\n", buf.String())

	got, err := codec.CSV{}.Decode(&buf, &codec.ReadOptions{Comma: ';'})
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestCSV_Decode_RaggedRecords(t *testing.T) {
	t.Parallel()

	got, err := codec.CSV{}.Decode(strings.NewReader("a,b,c\nd\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d"}}, got)
}

func TestCSV_Decode_Malformed(t *testing.T) {
	t.Parallel()

	_, err := codec.CSV{}.Decode(strings.NewReader("a,\"b\nc,d\n"), nil)
	require.ErrorIs(t, err, codec.ErrFormat)
}

func TestCSV_Encode_RejectsNonRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := codec.CSV{}.Encode(&buf, "not records", nil)
	require.ErrorIs(t, err, codec.ErrInvalidContent)
	assert.Zero(t, buf.Len())
}

func TestYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	doc := map[string]any{"test": "123", "check": "ok"}

	require.NoError(t, codec.YAML{}.Encode(&buf, doc, nil))
	assert.NotContains(t, buf.String(), "{", "expected block style output")

	got, err := codec.YAML{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestYAML_RoundTrip_Scalar(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, codec.YAML{}.Encode(&buf, "hello", nil))

	got, err := codec.YAML{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestYAML_Decode_Empty(t *testing.T) {
	t.Parallel()

	got, err := codec.YAML{}.Decode(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestYAML_Decode_Malformed(t *testing.T) {
	t.Parallel()

	_, err := codec.YAML{}.Decode(strings.NewReader("a:\n\tb: tabs are not allowed\n"), nil)
	require.ErrorIs(t, err, codec.ErrFormat)
}

func TestTOML_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	doc := map[string]any{"test": "123", "check": "ok"}

	require.NoError(t, codec.TOML{}.Encode(&buf, doc, nil))

	got, err := codec.TOML{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestTOML_Decode_Types(t *testing.T) {
	t.Parallel()

	got, err := codec.TOML{}.Decode(strings.NewReader("count = 3\nname = \"x\"\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"count": int64(3), "name": "x"}, got)
}

func TestTOML_Decode_Empty(t *testing.T) {
	t.Parallel()

	got, err := codec.TOML{}.Decode(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, got)
}

func TestTOML_Decode_Malformed(t *testing.T) {
	t.Parallel()

	_, err := codec.TOML{}.Decode(strings.NewReader("= not toml"), nil)
	require.ErrorIs(t, err, codec.ErrFormat)
}

func TestTOML_Encode_RejectsNonMapping(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := codec.TOML{}.Encode(&buf, []int{1, 2, 3}, nil)
	require.ErrorIs(t, err, codec.ErrInvalidContent)
	assert.Zero(t, buf.Len())
}

func TestGob_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	doc := map[string]any{"test": "123", "check": "ok"}

	require.NoError(t, codec.Gob{}.Encode(&buf, doc, nil))

	got, err := codec.Gob{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestGob_RoundTrip_Scalar(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, codec.Gob{}.Encode(&buf, "hello", nil))

	got, err := codec.Gob{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestGob_Decode_ReturnsStreamHead(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, codec.Gob{}.Encode(&buf, "first", nil))
	require.NoError(t, codec.Gob{}.Encode(&buf, "second", nil))

	got, err := codec.Gob{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestGob_Decode_Malformed(t *testing.T) {
	t.Parallel()

	_, err := codec.Gob{}.Decode(strings.NewReader("definitely not gob"), nil)
	require.ErrorIs(t, err, codec.ErrFormat)

	_, err = codec.Gob{}.Decode(strings.NewReader(""), nil)
	require.ErrorIs(t, err, codec.ErrFormat)
}

func TestRaw_RoundTrip_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	raw := codec.Raw{}

	require.NoError(t, raw.Encode(&buf, "Hello World!", nil))

	got, err := raw.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", got)
}

func TestRaw_RoundTrip_Binary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	raw := codec.Raw{Binary: true}

	require.NoError(t, raw.Encode(&buf, []byte{0x00, 0xFF, 0x10}, nil))

	got, err := raw.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0x10}, got)
}

func TestRaw_Encode_FlavorMismatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := codec.Raw{}.Encode(&buf, []byte("bytes into text"), nil)
	require.ErrorIs(t, err, codec.ErrInvalidContent)

	err = codec.Raw{Binary: true}.Encode(&buf, "text into bytes", nil)
	require.ErrorIs(t, err, codec.ErrInvalidContent)

	assert.Zero(t, buf.Len())
}

func TestIsMapping_Table(t *testing.T) {
	t.Parallel()

	assert.True(t, codec.IsMapping(map[string]any{}))
	assert.True(t, codec.IsMapping(map[string]string{"a": "b"}))
	assert.False(t, codec.IsMapping(map[int]any{}))
	assert.False(t, codec.IsMapping([]string{"a"}))
	assert.False(t, codec.IsMapping("a"))
	assert.False(t, codec.IsMapping(nil))
}
