package data

// Table is an ordered set of numeric columns sharing the same row count.
// Column order is significant; shape reconciliation works positionally.
type Table struct {
	Columns []string
	Rows    [][]float64
}

func (t *Table) Width() int {
	return len(t.Columns)
}

func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Column returns the values of column j across all rows.
func (t *Table) Column(j int) []float64 {
	col := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[j]
	}
	return col
}

// FraudPrediction is the row-aligned output of the fraud classifier,
// together with the reconciled (but unnormalized) table it was made from.
type FraudPrediction struct {
	Input         *Table
	Probabilities []float64
	Labels        []bool
}

// SegmentPrediction is the row-aligned output of the segmentation model.
// Each score vector has one affinity per segment.
type SegmentPrediction struct {
	Input  *Table
	Scores [][]float64
}

// Segments returns the number of segments scored per row.
func (p *SegmentPrediction) Segments() int {
	if len(p.Scores) == 0 {
		return 0
	}
	return len(p.Scores[0])
}

type ExampleTransactions []ExampleTransaction

type ExampleTransaction struct {
	Title  string
	Values []float64
}

type ExampleTransactionResult struct {
	ExampleTransaction
	Probability float64
	Label       bool
	ResultErr   error
}
