package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row maps a folded column name to the raw cell text for one record.
type Row map[string]string

// Table is a parsed tabular dataset: an ordered header plus its rows.
// Column names are case-folded and trimmed at parse time, so consumers
// never see "Debit " and "debit" as different columns.
type Table struct {
	Columns []string
	Rows    []Row
}

// Fold normalizes a column name the same way for headers and lookups.
func Fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ReadCSV parses a CSV export into a Table.
//
// Ragged rows are tolerated: short rows leave the trailing columns empty,
// long rows drop the extra cells. Only a missing or unreadable header is
// an error; a header-only file yields a Table with zero rows.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return Table{}, fmt.Errorf("empty file: no header row")
	}
	if err != nil {
		return Table{}, fmt.Errorf("reading header: %w", err)
	}

	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = Fold(h)
	}

	t := Table{Columns: cols}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("reading row %d: %w", len(t.Rows)+2, err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Has reports whether the table carries the given (already folded) column.
func (t Table) Has(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}
