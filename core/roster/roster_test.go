package roster

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/torotation/core/rotation"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TO_List.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	in := "--- Team A ---\n  Alice  \n\nBob\n   \n---\nCarol\n\tDave\t\n"
	names, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carol", "Dave"}, names)
}

func TestParseKeepsDuplicatesAndOrder(t *testing.T) {
	names, err := Parse(strings.NewReader("Bob\nAlice\nBob\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Alice", "Bob"}, names)
}

func TestParseSeparatorOnlyAtLineStart(t *testing.T) {
	// Indented dashes are not a separator; the trimmed line is kept.
	names, err := Parse(strings.NewReader(" ---x\nname---\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"---x", "name---"}, names)
}

func TestParseEmpty(t *testing.T) {
	names, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []string{"Alice", "Bob"}, Normalize([]string{" Alice", "", "  ", "Bob "}))
	assert.Empty(t, Normalize(nil))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrOwnerSourceNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveInlineWins(t *testing.T) {
	path := writeFile(t, "Zed\n")
	src, names, err := Resolve([]string{"Alice", " Bob "}, path)
	require.NoError(t, err)
	assert.Equal(t, SourceInline, src)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestResolveFallsBackToFile(t *testing.T) {
	path := writeFile(t, "Alice\nBob\n")
	src, names, err := Resolve([]string{" "}, path)
	require.NoError(t, err)
	assert.Equal(t, SourceFile, src)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestResolveEmptyFile(t *testing.T) {
	path := writeFile(t, "---\n\n")
	_, _, err := Resolve(nil, path)
	if !errors.Is(err, rotation.ErrEmptyOwnerList) {
		t.Fatalf("expected ErrEmptyOwnerList, got %v", err)
	}
}

func TestResolveMissingFile(t *testing.T) {
	_, _, err := Resolve(nil, filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrOwnerSourceNotFound)
}
