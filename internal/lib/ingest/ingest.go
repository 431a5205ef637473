// Package ingest normalizes bulk-upload payloads before they reach the
// pools: clients send lists under any of several historical field names,
// or upload CSV/XLSX files with equally varied column headers.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Default alias lists. The order matters for JSON probing: the first key
// present in the payload wins.
var (
	DefaultParticipantAliases = []string{"numeros", "numero", "hommes", "homme", "participants", "participant"}
	DefaultGiftAliases        = []string{"gifts", "gift"}
)

var (
	ErrNoAliasField   = errors.New("no known list field in payload")
	ErrNoAliasColumn  = errors.New("no known column in file")
	ErrNoValues       = errors.New("no usable values")
	ErrUnsupportedExt = errors.New("unsupported file format")
)

// ColumnError carries the headers the file actually had when none of them
// matched an alias. Unwraps to ErrNoAliasColumn.
type ColumnError struct {
	Found []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("no known column in file, got: %s", strings.Join(e.Found, ", "))
}

func (e *ColumnError) Unwrap() error { return ErrNoAliasColumn }

// FromJSON scans the raw body for the first alias key holding a JSON array
// and returns its values as trimmed strings. Keys bound to non-arrays are
// skipped, nulls and blank strings are dropped.
func FromJSON(body map[string]json.RawMessage, aliases []string) ([]string, error) {
	for _, alias := range aliases {
		raw, ok := body[alias]
		if !ok {
			continue
		}

		var list []any
		if err := json.Unmarshal(raw, &list); err != nil {
			continue
		}

		values := cleanValues(list)
		if len(values) == 0 {
			return nil, ErrNoValues
		}
		return values, nil
	}

	return nil, ErrNoAliasField
}

// Scalar renders a single JSON value as a pool identifier, applying the
// same normalization as list ingestion. Nulls, arrays, objects and blank
// strings come back empty.
func Scalar(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}

	values := cleanValues([]any{v})
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Column reads the upload and returns the values of the first column whose
// header matches an alias (case-insensitive, trimmed). The format is picked
// by file extension.
func Column(filename string, r io.Reader, aliases []string) ([]string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		return csvColumn(r, aliases)
	case ".xlsx", ".xls":
		return sheetColumn(r, aliases)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExt, ext)
	}
}

func csvColumn(r io.Reader, aliases []string) ([]string, error) {
	const op = "ingest.csvColumn"

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return columnValues(rows, aliases)
}

func sheetColumn(r io.Reader, aliases []string) ([]string, error) {
	const op = "ingest.sheetColumn"

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoValues)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return columnValues(rows, aliases)
}

func columnValues(rows [][]string, aliases []string) ([]string, error) {
	if len(rows) == 0 {
		return nil, ErrNoValues
	}

	known := make(map[string]bool, len(aliases))
	for _, a := range aliases {
		known[strings.ToLower(strings.TrimSpace(a))] = true
	}

	col := -1
	headers := make([]string, 0, len(rows[0]))
	for i, header := range rows[0] {
		headers = append(headers, strings.TrimSpace(header))
		if col == -1 && known[strings.ToLower(strings.TrimSpace(header))] {
			col = i
		}
	}
	if col == -1 {
		return nil, &ColumnError{Found: headers}
	}

	var values []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[col]); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, ErrNoValues
	}

	return values, nil
}

func cleanValues(list []any) []string {
	var values []string
	for _, item := range list {
		var s string
		switch v := item.(type) {
		case nil:
			continue
		case string:
			s = strings.TrimSpace(v)
		case float64:
			s = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			s = strconv.FormatBool(v)
		default:
			continue
		}
		if s != "" {
			values = append(values, s)
		}
	}
	return values
}
