package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/busted-ai/busted-predictor-frontend/data"
	"github.com/pkg/errors"
)

// FraudCSV serializes a fraud prediction as CSV: the reconciled input
// columns plus probability and label, one row per input row. The artifact
// is built fully in memory so a failure leaves nothing partial behind.
func FraudCSV(p *data.FraudPrediction) ([]byte, error) {
	header := append(append([]string(nil), p.Input.Columns...), "probability", "label")

	records := make([][]string, 0, len(p.Input.Rows))
	for i, row := range p.Input.Rows {
		rec := formatRow(row)
		rec = append(rec, strconv.FormatFloat(p.Probabilities[i], 'f', -1, 64))
		if p.Labels[i] {
			rec = append(rec, "1")
		} else {
			rec = append(rec, "0")
		}
		records = append(records, rec)
	}

	return writeCSV(header, records)
}

// SegmentCSV serializes a segmentation prediction as CSV: the reconciled
// input columns plus segment_1..segment_k.
func SegmentCSV(p *data.SegmentPrediction) ([]byte, error) {
	header := append([]string(nil), p.Input.Columns...)
	for k := 1; k <= p.Segments(); k++ {
		header = append(header, fmt.Sprintf("segment_%d", k))
	}

	records := make([][]string, 0, len(p.Input.Rows))
	for i, row := range p.Input.Rows {
		rec := formatRow(row)
		for _, score := range p.Scores[i] {
			rec = append(rec, strconv.FormatFloat(score, 'f', -1, 64))
		}
		records = append(records, rec)
	}

	return writeCSV(header, records)
}

func formatRow(row []float64) []string {
	rec := make([]string, 0, len(row))
	for _, v := range row {
		rec = append(rec, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return rec
}

func writeCSV(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, errors.Wrap(err, "report couldn't write csv header")
	}
	if err := w.WriteAll(records); err != nil {
		return nil, errors.Wrap(err, "report couldn't write csv rows")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "report couldn't flush csv")
	}
	return buf.Bytes(), nil
}
