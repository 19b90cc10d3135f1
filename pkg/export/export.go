// Package export renders rotation schedules. The table format is the
// persisted TO_Rotation.txt layout; blocks reproduces the historical
// per-week layout; csv, json and yaml serve other tooling.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/torotation/core/rotation"
)

// Format selects a renderer.
type Format string

const (
	FormatTable  Format = "table"
	FormatBlocks Format = "blocks"
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// Column headers for the primary and backup owners.
const (
	HeaderPrimary = "TO 1"
	HeaderBackup  = "TO 2"
)

// MissingBackup replaces an empty backup in text formats.
const MissingBackup = "N/A"

// ErrUnknownFormat is returned by ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates s. An empty string selects FormatTable.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatBlocks, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Record is the serialised form of an assignment.
type Record struct {
	Date    string `json:"date" yaml:"date"`
	Primary string `json:"to_1" yaml:"to_1"`
	Backup  string `json:"to_2" yaml:"to_2"`
}

// Records converts a schedule to its serialised form.
func Records(s rotation.Schedule) []Record {
	out := make([]Record, 0, len(s))
	for _, a := range s {
		out = append(out, Record{
			Date:    a.Date.Format(rotation.DateLayout),
			Primary: a.Primary,
			Backup:  a.Backup,
		})
	}
	return out
}

// Write renders s to w in format f.
func Write(w io.Writer, f Format, s rotation.Schedule) error {
	switch f {
	case FormatTable, "":
		return WriteTable(w, s)
	case FormatBlocks:
		return WriteBlocks(w, s)
	case FormatCSV:
		return WriteCSV(w, s)
	case FormatJSON:
		return WriteJSON(w, s)
	case FormatYAML:
		return WriteYAML(w, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteTable writes a header line followed by one tab-aligned line per
// assignment.
func WriteTable(w io.Writer, s rotation.Schedule) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Date\t%s\t%s\n", HeaderPrimary, HeaderBackup); err != nil {
		return err
	}
	for _, a := range s {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Date.Format(rotation.DateLayout), a.Primary, backupText(a.Backup)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteBlocks writes each week as a "# Jan 02" heading followed by the
// two owner lines and a blank separator.
func WriteBlocks(w io.Writer, s rotation.Schedule) error {
	for _, a := range s {
		if _, err := fmt.Fprintf(w, "# %s\n%s: %s\n%s: %s\n\n",
			a.Date.Format("Jan 02"), HeaderPrimary, a.Primary, HeaderBackup, backupText(a.Backup)); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV writes the schedule with a date,to_1,to_2 header.
func WriteCSV(w io.Writer, s rotation.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "to_1", "to_2"}); err != nil {
		return err
	}
	for _, r := range Records(s) {
		if err := cw.Write([]string{r.Date, r.Primary, r.Backup}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the schedule as an indented JSON array.
func WriteJSON(w io.Writer, s rotation.Schedule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Records(s))
}

// WriteYAML writes the schedule as a YAML sequence.
func WriteYAML(w io.Writer, s rotation.Schedule) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Records(s)); err != nil {
		return err
	}
	return enc.Close()
}

func backupText(b string) string {
	if b == "" {
		return MissingBackup
	}
	return b
}
