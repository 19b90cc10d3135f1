// Package roster acquires the ordered owner list fed to the rotation
// generator, either from names given on the command line or from a
// line-oriented text file.
package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/kilianp07/torotation/core/rotation"
)

// DefaultFile is the owner list read when no names are given inline.
const DefaultFile = "TO_List.txt"

// separatorPrefix marks lines ignored in owner files.
const separatorPrefix = "---"

// ErrOwnerSourceNotFound is returned when the owner file does not exist and
// no inline names were provided.
var ErrOwnerSourceNotFound = errors.New("owner source not found")

// Source identifies where the owner list came from.
type Source string

const (
	// SourceInline means the names were given on the command line or in config.
	SourceInline Source = "inline"
	// SourceFile means the names were read from the owner file.
	SourceFile Source = "file"
)

// Normalize trims every name and drops empty entries. Order and duplicates
// are preserved.
func Normalize(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Parse reads one name per line from r. Blank lines and lines starting
// with "---" are skipped; remaining lines are trimmed.
func Parse(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, separatorPrefix) {
			continue
		}
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// LoadFile parses the owner file at path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrOwnerSourceNotFound, path, err)
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()
	names, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return names, nil
}

// Resolve returns the owner list to rotate. Inline names win when at least
// one remains after normalisation; otherwise the file at path is read.
func Resolve(inline []string, path string) (Source, []string, error) {
	if names := Normalize(inline); len(names) > 0 {
		return SourceInline, names, nil
	}
	if path == "" {
		path = DefaultFile
	}
	names, err := LoadFile(path)
	if err != nil {
		return SourceFile, nil, err
	}
	if len(names) == 0 {
		return SourceFile, nil, fmt.Errorf("%w: no names found in %s", rotation.ErrEmptyOwnerList, path)
	}
	return SourceFile, names, nil
}
