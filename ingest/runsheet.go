package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/dynoq/model"
)

// ErrMissingRPMColumn is returned for run sheets whose first column is not RPM.
var ErrMissingRPMColumn = errors.New("run sheet must start with an RPM column")

// ErrMalformedRow indicates a run sheet row with an unparseable number.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedRow struct {
	Line  int
	cause error
}

func (e *ErrMalformedRow) Error() string {
	return fmt.Sprintf("malformed run sheet row at line %d", e.Line)
}

func (e *ErrMalformedRow) Unwrap() error { return e.cause }

// ParseRunSheet parses a wide-format run sheet into records for the entry.
//
// The header must start with "RPM"; the remaining columns name attributes.
// Columns that are not catalog attributes are skipped, as are empty cells
// (the attribute was not recorded at that RPM). Rows may be ragged.
func ParseRunSheet(r io.Reader, key model.EntryKey) ([]model.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read run sheet header: %w", err)
	}
	if len(header) == 0 || !strings.EqualFold(strings.TrimSpace(header[0]), "RPM") {
		return nil, ErrMissingRPMColumn
	}

	cols := make([]model.Attribute, len(header))
	known := make([]bool, len(header))
	for i := 1; i < len(header); i++ {
		attr, err := model.ParseAttribute(strings.TrimSpace(header[i]))
		if err != nil {
			continue
		}
		cols[i] = attr
		known[i] = true
	}

	var records []model.Record
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read run sheet row: %w", err)
		}
		line++
		if len(row) == 0 {
			continue
		}

		rpm, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, &ErrMalformedRow{Line: line, cause: err}
		}

		for i := 1; i < len(row) && i < len(header); i++ {
			if !known[i] {
				continue
			}
			cell := strings.TrimSpace(row[i])
			if cell == "" {
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &ErrMalformedRow{Line: line, cause: err}
			}
			records = append(records, model.Record{
				Entry:     key,
				Attribute: cols[i],
				Value:     value,
				RPM:       rpm,
			})
		}
	}

	return records, nil
}
