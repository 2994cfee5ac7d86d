package table

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/duke-git/lancet/v2/fileutil"
)

const outputFilePermissions = 0o600 // Generated tables may contain audited plaintexts

// Format identifies an on-disk table representation.
type Format string

// Supported output formats.
const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for output formats outside the supported set.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ErrOutputExists is returned when the destination file already exists and
// overwriting was not explicitly permitted.
var ErrOutputExists = errors.New("output file already exists")

// ParseFormat maps a case-insensitive format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "txt", "text":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Write serializes a finished table to the destination path in the given
// format. An existing destination is refused unless overwrite is set.
func Write(t *Table, path string, format Format, overwrite bool) error {
	if fileutil.IsExist(path) && !overwrite {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFilePermissions)
	if err != nil {
		return fmt.Errorf("couldn't create output file: %w", err)
	}
	defer file.Close() //nolint:errcheck // Write errors are caught via the flush below

	writer := bufio.NewWriter(file)

	switch format {
	case FormatText:
		err = writeText(writer, t)
	case FormatCSV:
		err = writeCSV(writer, t)
	case FormatJSON:
		err = writeJSON(writer, t)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return err
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("couldn't flush output file: %w", err)
	}

	return file.Close()
}

// writeText emits one digest:plaintext pair per line.
func writeText(w *bufio.Writer, t *Table) error {
	for digest, plaintext := range t.Entries() {
		if _, err := fmt.Fprintf(w, "%s:%s\n", digest, plaintext); err != nil {
			return fmt.Errorf("couldn't write table entry: %w", err)
		}
	}

	return nil
}

// writeCSV emits a header row followed by digest,plaintext records.
func writeCSV(w *bufio.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"digest", "plaintext"}); err != nil {
		return fmt.Errorf("couldn't write CSV header: %w", err)
	}

	for digest, plaintext := range t.Entries() {
		if err := cw.Write([]string{digest, plaintext}); err != nil {
			return fmt.Errorf("couldn't write CSV record: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("couldn't flush CSV output: %w", err)
	}

	return nil
}

// writeJSON emits the whole table as a single digest->plaintext object.
func writeJSON(w *bufio.Writer, t *Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(t.Entries()); err != nil {
		return fmt.Errorf("couldn't encode table as JSON: %w", err)
	}

	return nil
}
