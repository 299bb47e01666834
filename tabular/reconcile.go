package tabular

import (
	"fmt"

	"github.com/busted-ai/busted-predictor-frontend/data"
)

// Reconcile adjusts a table to exactly width columns so it can be fed to a
// predictor of that input width. Extra columns are cut from the right;
// missing columns are appended as all-zero pad columns. A table already at
// width is returned unchanged. This is lossy by design: truncation discards
// features and padding fabricates them.
func Reconcile(t *data.Table, width int) *data.Table {
	if t.Width() == width {
		return t
	}

	if t.Width() > width {
		out := &data.Table{
			Columns: append([]string(nil), t.Columns[:width]...),
			Rows:    make([][]float64, len(t.Rows)),
		}
		for i, row := range t.Rows {
			out.Rows[i] = append([]float64(nil), row[:width]...)
		}
		return out
	}

	out := &data.Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]float64, len(t.Rows)),
	}
	used := make(map[string]bool, len(t.Columns))
	for _, name := range t.Columns {
		used[name] = true
	}
	for n := 1; out.Width() < width; n++ {
		// Input columns may themselves be named pad_N; skip those
		// suffixes so the padded header has no duplicates.
		name := fmt.Sprintf("pad_%d", n)
		if used[name] {
			continue
		}
		out.Columns = append(out.Columns, name)
	}
	for i, row := range t.Rows {
		out.Rows[i] = make([]float64, width)
		copy(out.Rows[i], row)
	}
	return out
}
