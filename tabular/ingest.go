package tabular

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/busted-ai/busted-predictor-frontend/data"
	"github.com/pkg/errors"
)

// ErrMalformedTable indicates input that could not be parsed into rows and
// columns at all. Dropping unusable columns is never an error.
var ErrMalformedTable = errors.New("tabular: malformed table")

// ReadCSV parses a CSV document with a header row into a fully numeric
// Table. Columns containing any unparseable value are removed; their names
// are returned so the caller can warn about them. Remaining missing values
// are replaced with the column median.
func ReadCSV(r io.Reader) (*data.Table, []string, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(ErrMalformedTable, err.Error())
	}
	if len(records) == 0 {
		return nil, nil, errors.Wrap(ErrMalformedTable, "no header row")
	}
	return Ingest(records[0], records[1:])
}

// Ingest builds a Table from a header and string-valued rows.
func Ingest(header []string, records [][]string) (*data.Table, []string, error) {
	if len(header) == 0 {
		return nil, nil, errors.Wrap(ErrMalformedTable, "empty header")
	}
	for _, rec := range records {
		if len(rec) != len(header) {
			return nil, nil, errors.Wrapf(ErrMalformedTable, "row has %d fields, header has %d", len(rec), len(header))
		}
	}

	t := &data.Table{Rows: make([][]float64, len(records))}
	for i := range t.Rows {
		t.Rows[i] = make([]float64, 0, len(header))
	}

	var dropped []string
	for j, name := range header {
		col, ok := numericColumn(records, j)
		if !ok {
			dropped = append(dropped, name)
			continue
		}
		t.Columns = append(t.Columns, strings.TrimSpace(name))
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], col[i])
		}
	}

	return t, dropped, nil
}

// numericColumn extracts column j as floats, imputing missing values with
// the column median. It reports false when the column has a value that is
// neither numeric nor missing, or has no numeric values to impute from.
func numericColumn(records [][]string, j int) ([]float64, bool) {
	col := make([]float64, len(records))
	var present []float64
	var missing []int

	for i, rec := range records {
		v := strings.TrimSpace(rec[j])
		if isMissing(v) {
			missing = append(missing, i)
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		col[i] = f
		present = append(present, f)
	}

	if len(missing) > 0 {
		if len(present) == 0 {
			return nil, false
		}
		m := median(present)
		for _, i := range missing {
			col[i] = m
		}
	}

	return col, true
}

func isMissing(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
