package tabular

import (
	"math"

	"github.com/busted-ai/busted-predictor-frontend/data"
	"gonum.org/v1/gonum/stat"
)

// Standardize rescales each column to zero mean and unit variance using
// statistics of the batch itself. Zero-variance columns, including every
// column of a single-row batch, come out as all zeros rather than dividing
// by zero.
func Standardize(t *data.Table) *data.Table {
	out := &data.Table{
		Columns: t.Columns,
		Rows:    make([][]float64, len(t.Rows)),
	}
	for i := range out.Rows {
		out.Rows[i] = make([]float64, t.Width())
	}

	for j := 0; j < t.Width(); j++ {
		col := t.Column(j)
		mean := stat.Mean(col, nil)
		std := stat.StdDev(col, nil)
		if len(col) < 2 || std == 0 || math.IsNaN(std) {
			continue
		}
		for i := range col {
			out.Rows[i][j] = (col[i] - mean) / std
		}
	}

	return out
}

// Scaler is a fitted per-feature standardization, computed once at
// model-preparation time and stored with the model artifact. Applying it
// gives stable scaling across calls, unlike refitting per batch.
type Scaler struct {
	Mean []float64
	Std  []float64
}

// Apply standardizes a table of matching width with the fitted statistics.
// Features whose fitted deviation is not positive come out as zero.
func (s *Scaler) Apply(t *data.Table) *data.Table {
	out := &data.Table{
		Columns: t.Columns,
		Rows:    make([][]float64, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = make([]float64, len(row))
		for j, v := range row {
			if s.Std[j] > 0 {
				out.Rows[i][j] = (v - s.Mean[j]) / s.Std[j]
			}
		}
	}
	return out
}
