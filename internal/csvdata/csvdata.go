// Package csvdata loads numeric columns from CSV files with a header row.
package csvdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Table is a CSV file read into memory.
type Table struct {
	Header []string
	Rows   [][]string
}

// Read parses CSV data whose first record names the columns.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvdata: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csvdata: missing header row")
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// ReadFile reads the CSV file at path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Index returns the position of the named column or -1.
func (t *Table) Index(name string) int {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Float returns the named column. Empty, missing or unparsable cells are
// NaN.
func (t *Table) Float(name string) ([]float64, error) {
	c := t.Index(name)
	if c < 0 {
		return nil, fmt.Errorf("csvdata: no column %q in %v", name, t.Header)
	}
	col := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = math.NaN()
		if c >= len(row) {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64); err == nil {
			col[i] = v
		}
	}
	return col, nil
}
