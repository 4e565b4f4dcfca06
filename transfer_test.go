package sessfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/sessfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopy_Basic(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)
	require.NoError(t, s.Write("payload", "w", nil))

	dest := t.TempDir()

	dst, err := s.Copy(dest, nil)
	require.NoError(t, err)
	defer dst.Close()

	assert.Equal(t, filepath.Join(dest, "notes.txt"), dst.Path())
	assert.True(t, dst.Closed())
	assert.True(t, s.Exists())

	got, err := dst.Read("r", nil)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)
}

func TestCopy_CreatesDestination(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)
	dest := filepath.Join(t.TempDir(), "archive", "2026")

	dst, err := s.Copy(dest, nil)
	require.NoError(t, err)

	assert.True(t, dst.Created())
	assert.DirExists(t, dest)
}

func TestCopy_NumericSuffixCollisions(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)
	require.NoError(t, s.Write("payload", "w", nil))

	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "notes.txt"), nil, 0o666))

	first, err := s.Copy(dest, nil)
	require.NoError(t, err)
	assert.Equal(t, "notes_1.txt", first.Name())

	second, err := s.Copy(dest, nil)
	require.NoError(t, err)
	assert.Equal(t, "notes_2.txt", second.Name())
}

func TestCopy_TextSuffixCollisions(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)

	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "notes.txt"), nil, 0o666))

	first, err := s.Copy(dest, &sessfile.CopyOptions{Suffix: "copy"})
	require.NoError(t, err)
	assert.Equal(t, "notes_copy.txt", first.Name())

	second, err := s.Copy(dest, &sessfile.CopyOptions{Suffix: "copy"})
	require.NoError(t, err)
	assert.Equal(t, "notes_copy_1.txt", second.Name())
}

func TestCopy_CustomFilename(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)
	require.NoError(t, s.Write("payload", "w", nil))

	dst, err := s.Copy(t.TempDir(), &sessfile.CopyOptions{Filename: "backup"})
	require.NoError(t, err)

	assert.Equal(t, "backup.txt", dst.Name())
}

func TestCopy_CustomFilenameCollision(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)

	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "backup.txt"), nil, 0o666))

	dst, err := s.Copy(dest, &sessfile.CopyOptions{Filename: "backup"})
	require.NoError(t, err)

	assert.Equal(t, "backup_1.txt", dst.Name())
}

func TestCopy_FilenameWithExtension(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)

	_, err := s.Copy(t.TempDir(), &sessfile.CopyOptions{Filename: "backup.txt"})
	require.ErrorIs(t, err, sessfile.ErrInvalidArgument)
}

func TestCopy_DestinationWithExtension(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)

	_, err := s.Copy(filepath.Join(t.TempDir(), "target.txt"), nil)
	require.ErrorIs(t, err, sessfile.ErrInvalidDestination)
}

func TestCopy_NonPositiveNumericSuffix(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)

	_, err := s.Copy(t.TempDir(), &sessfile.CopyOptions{Suffix: "0"})
	require.ErrorIs(t, err, sessfile.ErrInvalidArgument)
}

func TestCopy_InheritsEncoding(t *testing.T) {
	t.Parallel()

	s := newSession(t, "legacy.txt", &sessfile.Options{Encoding: "latin1"})
	require.NoError(t, s.Write("café", "w", nil))

	dst, err := s.Copy(t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, "latin1", dst.Encoding())

	data, err := os.ReadFile(dst.Path())
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9}, data)
}

func TestCopy_StructuredContents(t *testing.T) {
	t.Parallel()

	s := newSession(t, "report.json", nil)
	require.NoError(t, s.Write(map[string]any{"alpha": "a"}, "", nil))

	dst, err := s.Copy(t.TempDir(), nil)
	require.NoError(t, err)
	defer dst.Close()

	got, err := dst.Content()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"alpha": "a"}, got)
}

func TestCopy_SameDirectorySuffixes(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)
	require.NoError(t, s.Write("payload", "w", nil))

	dst, err := s.Copy(s.Dir(), nil)
	require.NoError(t, err)

	assert.Equal(t, "notes_1.txt", dst.Name())
	assert.Equal(t, s.Dir(), dst.Dir())
}

func TestCopy_InheritsAllowAny(t *testing.T) {
	t.Parallel()

	s := newSession(t, "tool.bin", &sessfile.Options{AllowAny: true})
	require.NoError(t, s.Write([]byte{0x01, 0x02}, "wb", nil))

	dst, err := s.Copy(t.TempDir(), nil)
	require.NoError(t, err)
	defer dst.Close()

	got, err := dst.Read("rb", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, got)
}

func TestMove_Basic(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)
	require.NoError(t, s.Write("payload", "w", nil))

	source := s.Path()
	dest := t.TempDir()

	require.NoError(t, s.Move(dest))

	assert.NoFileExists(t, source)
	assert.Equal(t, filepath.Join(dest, "notes.txt"), s.Path())
	assert.True(t, s.Closed())
	assert.Equal(t, "w+", s.Mode())

	got, err := s.Read("r", nil)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)
}

func TestMove_SameDirectory(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)

	require.ErrorIs(t, s.Move(s.Dir()), sessfile.ErrSameLocation)
	assert.True(t, s.Exists())
}

func TestMove_CollisionResolved(t *testing.T) {
	t.Parallel()

	s := newSession(t, "notes.txt", nil)
	require.NoError(t, s.Write("payload", "w", nil))

	dest := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dest, "notes.txt"), nil, 0o666))

	require.NoError(t, s.Move(dest))

	assert.Equal(t, "notes_1.txt", s.Name())
}
