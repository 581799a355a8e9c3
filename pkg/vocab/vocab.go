// Package vocab parses the TOEIC vocabulary table.
//
// The source file is a comma-separated UTF-8 table that may contain blank
// lines and ragged data rows: the free-text Chinese column directly after
// the English term sometimes holds unescaped commas, which splits one
// logical cell into several physical ones. ParseTable recovers a header
// and a set of uniform-width rows from such input.
package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// EnglishColumn is the header name of the join-key column. Its presence
// is the only schema requirement placed on the source table.
const EnglishColumn = "English"

var (
	// ErrEmptyHeader reports a source table with no non-blank line to
	// serve as a header.
	ErrEmptyHeader = errors.New("vocabulary table has no header row")

	// ErrNoEnglishColumn reports a header without the join-key column.
	ErrNoEnglishColumn = errors.New(`vocabulary table has no "English" column`)
)

// Table holds the parsed vocabulary source: an ordered header and data
// rows whose width always equals the header width.
type Table struct {
	Header []string
	Rows   [][]string
}

// ParseTable reads the vocabulary table from r.
//
// Leading blank (or all-whitespace) lines are skipped; the first line
// with any non-whitespace cell becomes the header. Subsequent blank
// lines are dropped entirely. Short rows are padded with empty cells on
// the right; long rows are repaired with repairOverflow. The returned
// rows therefore all have exactly len(Header) cells.
func ParseTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	// Ragged rows are expected input, not an error.
	reader.FieldsPerRecord = -1
	// The free-text column may carry stray quotes.
	reader.LazyQuotes = true

	var header []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil, ErrEmptyHeader
		}
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		if !isBlank(record) {
			header = record
			break
		}
	}

	table := &Table{Header: header}
	width := len(header)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if isBlank(record) {
			continue
		}

		switch {
		case len(record) < width:
			padded := make([]string, width)
			copy(padded, record)
			record = padded
		case len(record) > width:
			record = repairOverflow(record, width)
		}

		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// EnglishIndex returns the position of the "English" column in the
// header, or ErrNoEnglishColumn when the table cannot act as a join
// source.
func (t *Table) EnglishIndex() (int, error) {
	for i, name := range t.Header {
		if name == EnglishColumn {
			return i, nil
		}
	}
	return 0, ErrNoEnglishColumn
}

// repairOverflow shrinks an over-wide row back to the header width.
//
// The extra cells are assumed to come from unescaped commas inside the
// single free-text field right after column 0. The trailing
// width-2 columns are kept verbatim, and everything between column 0 and
// that tail is re-joined with commas into one cell:
//
//	header width 4, row [run | to |  move | Basic | 3]
//	-> [run | to, move | Basic | 3]
//
// This is a heuristic for one known ragged column, not general CSV
// repair: if another column ever legitimately held commas, the row would
// be recombined incorrectly and silently.
func repairOverflow(record []string, width int) []string {
	if width < 2 {
		// A one-column header leaves no room for a free-text field;
		// keep the first cell and drop the rest.
		return record[:width:width]
	}

	tail := width - 2
	freeText := strings.Join(record[1:len(record)-tail], ",")

	repaired := make([]string, 0, width)
	repaired = append(repaired, record[0], freeText)
	repaired = append(repaired, record[len(record)-tail:]...)
	return repaired
}

// isBlank reports whether every cell of record is empty or whitespace.
func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
