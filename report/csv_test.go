package report

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"

	"github.com/busted-ai/busted-predictor-frontend/data"
)

func TestFraudCSV(t *testing.T) {
	t.Parallel()

	p := &data.FraudPrediction{
		Input: &data.Table{
			Columns: []string{"amount", "ratio"},
			Rows:    [][]float64{{100, 0.5}, {250.25, 0.9}},
		},
		Probabilities: []float64{0.25, 0.75},
		Labels:        []bool{false, true},
	}

	body, err := FraudCSV(p)
	if err != nil {
		t.Fatalf("Unexpected error from FraudCSV: %s", err)
	}

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("Unexpected error parsing produced CSV: %s", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected a header plus 2 rows, got %d records", len(records))
	}
	if !reflect.DeepEqual(records[0], []string{"amount", "ratio", "probability", "label"}) {
		t.Errorf("Unexpected header: %v", records[0])
	}
	if !reflect.DeepEqual(records[1], []string{"100", "0.5", "0.25", "0"}) {
		t.Errorf("Unexpected first row: %v", records[1])
	}
	if !reflect.DeepEqual(records[2], []string{"250.25", "0.9", "0.75", "1"}) {
		t.Errorf("Unexpected second row: %v", records[2])
	}
}

func TestSegmentCSV(t *testing.T) {
	t.Parallel()

	p := &data.SegmentPrediction{
		Input: &data.Table{
			Columns: []string{"balance"},
			Rows:    [][]float64{{1200}},
		},
		Scores: [][]float64{{0.2, 0.8}},
	}

	body, err := SegmentCSV(p)
	if err != nil {
		t.Fatalf("Unexpected error from SegmentCSV: %s", err)
	}

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("Unexpected error parsing produced CSV: %s", err)
	}

	if !reflect.DeepEqual(records[0], []string{"balance", "segment_1", "segment_2"}) {
		t.Errorf("Unexpected header: %v", records[0])
	}
	if !reflect.DeepEqual(records[1], []string{"1200", "0.2", "0.8"}) {
		t.Errorf("Unexpected row: %v", records[1])
	}
}

func TestFraudCSV_RowCountPreserved(t *testing.T) {
	t.Parallel()

	rows := 7
	p := &data.FraudPrediction{
		Input:         &data.Table{Columns: []string{"v"}},
		Probabilities: make([]float64, rows),
		Labels:        make([]bool, rows),
	}
	for i := 0; i < rows; i++ {
		p.Input.Rows = append(p.Input.Rows, []float64{float64(i)})
	}

	body, err := FraudCSV(p)
	if err != nil {
		t.Fatalf("Unexpected error from FraudCSV: %s", err)
	}

	records, _ := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if len(records) != rows+1 {
		t.Errorf("Expected %d records including header, got %d", rows+1, len(records))
	}
}
