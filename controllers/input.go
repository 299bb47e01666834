package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/busted-ai/busted-predictor-frontend/data"
	"github.com/busted-ai/busted-predictor-frontend/tabular"
	"github.com/pkg/errors"
)

// readInputTable turns form input into a Table. A non-empty tableStr is
// parsed as CSV with a header row; otherwise a non-empty rowStr is parsed
// as one comma-separated row named after the schema's leading features.
// Both empty means no input was submitted; all three returns are nil.
func readInputTable(tableStr, rowStr string, schema []string) (*data.Table, []string, error) {
	if strings.TrimSpace(tableStr) != "" {
		return tabular.ReadCSV(strings.NewReader(tableStr))
	}
	if strings.TrimSpace(rowStr) != "" {
		t, err := manualRowTable(rowStr, schema)
		return t, nil, err
	}
	return nil, nil, nil
}

func manualRowTable(rowStr string, schema []string) (*data.Table, error) {
	var values []float64
	for _, part := range strings.Split(rowStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(tabular.ErrMalformedTable, "bad value %q", part)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, errors.Wrap(tabular.ErrMalformedTable, "empty row")
	}

	return &data.Table{Columns: schemaColumns(len(values), schema), Rows: [][]float64{values}}, nil
}

// schemaColumns names n columns after the schema's leading features,
// falling back to value_N past the schema's end.
func schemaColumns(n int, schema []string) []string {
	columns := make([]string, n)
	for i := range columns {
		if i < len(schema) {
			columns[i] = schema[i]
		} else {
			columns[i] = fmt.Sprintf("value_%d", i+1)
		}
	}
	return columns
}
