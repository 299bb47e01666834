package testhelpers

import (
	"context"
	"testing"

	"github.com/busted-ai/busted-predictor-frontend/tabular"
)

type Predictor struct {
	InputWidthFunc  func() int
	OutputWidthFunc func() int
	ScalerFunc      func() *tabular.Scaler
	PredictFunc     func(ctx context.Context, batch [][]float64) ([][]float64, error)
}

func NewPredictor(t *testing.T) *Predictor {
	return &Predictor{
		InputWidthFunc: func() int {
			t.Error("InputWidth should not be called")
			return 0
		},
		OutputWidthFunc: func() int {
			t.Error("OutputWidth should not be called")
			return 0
		},
		ScalerFunc: func() *tabular.Scaler {
			return nil
		},
		PredictFunc: func(ctx context.Context, batch [][]float64) ([][]float64, error) {
			t.Error("Predict should not be called")
			return nil, nil
		},
	}
}

func (p *Predictor) InputWidth() int {
	return p.InputWidthFunc()
}

func (p *Predictor) OutputWidth() int {
	return p.OutputWidthFunc()
}

func (p *Predictor) Scaler() *tabular.Scaler {
	return p.ScalerFunc()
}

func (p *Predictor) Predict(ctx context.Context, batch [][]float64) ([][]float64, error) {
	return p.PredictFunc(ctx, batch)
}
