package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/torotation/core/rotation"
)

func sample() rotation.Schedule {
	d := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	return rotation.Schedule{
		{Date: d, Primary: "Alice", Backup: ""},
		{Date: d.AddDate(0, 0, 7), Primary: "Bob", Backup: "Alice"},
		{Date: d.AddDate(0, 0, 14), Primary: "Carol Ann", Backup: "Bob"},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sample()))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, []string{"Date", "TO", "1", "TO", "2"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2025-01-08", "Alice", "N/A"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2025-01-15", "Bob", "Alice"}, strings.Fields(lines[2]))
	assert.True(t, strings.HasPrefix(lines[3], "2025-01-22"))
	assert.Contains(t, lines[3], "Carol Ann")

	// Columns are aligned.
	assert.Equal(t, strings.Index(lines[0], "TO 1"), strings.Index(lines[2], "Bob"))
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, nil))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestWriteBlocks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBlocks(&buf, sample()[:2]))
	want := "# Jan 08\nTO 1: Alice\nTO 2: N/A\n\n# Jan 15\nTO 1: Bob\nTO 2: Alice\n\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample()))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"date", "to_1", "to_2"}, rows[0])
	assert.Equal(t, []string{"2025-01-08", "Alice", ""}, rows[1])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample()))
	var got []Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Records(sample()), got)
	assert.Contains(t, buf.String(), `"to_1": "Alice"`)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sample()))
	var got []Record
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Records(sample()), got)
}

func TestWriteDispatch(t *testing.T) {
	for _, f := range []Format{FormatTable, FormatBlocks, FormatCSV, FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, sample()), f)
		assert.Contains(t, buf.String(), "Alice", f)
	}
	assert.ErrorIs(t, Write(&bytes.Buffer{}, Format("xml"), sample()), ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{"": FormatTable, "TABLE": FormatTable, "blocks": FormatBlocks, "yml": FormatYAML, " json ": FormatJSON}
	for in, want := range cases {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
