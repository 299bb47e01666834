package inference

import (
	"context"

	"github.com/busted-ai/busted-predictor-frontend/data"
	"github.com/busted-ai/busted-predictor-frontend/tabular"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/pkg/errors"
)

// fraudThreshold converts a fraud probability to a boolean label;
// strictly greater than, so exactly 0.5 is not flagged.
const fraudThreshold = 0.5

// Engine runs the full per-request pipeline against two pre-loaded
// predictors: reconcile the table to the model width, scale it, and invoke
// the model. It holds no mutable state and is reentrant; the predictors
// are shared read-only for the process lifetime.
type Engine struct {
	Fraud   Predictor
	Segment Predictor
}

// PredictFraud returns one probability and label per input row, in input
// order, along with the reconciled unnormalized table that exports are
// built from.
func (e *Engine) PredictFraud(ctx context.Context, t *data.Table) (*data.FraudPrediction, error) {
	l := ctxlogrus.Get(ctx)
	l.Debugf("Predicting fraud for %d rows, width %d", t.RowCount(), t.Width())

	reconciled := tabular.Reconcile(t, e.Fraud.InputWidth())
	out, err := e.Fraud.Predict(ctx, scale(e.Fraud, reconciled).Rows)
	if err != nil {
		return nil, errors.Wrap(err, "predictFraud couldn't run the fraud model")
	}
	if len(out) != reconciled.RowCount() {
		return nil, errors.Errorf("predictFraud got %d outputs for %d rows", len(out), reconciled.RowCount())
	}

	p := &data.FraudPrediction{
		Input:         reconciled,
		Probabilities: make([]float64, len(out)),
		Labels:        make([]bool, len(out)),
	}
	for i, row := range out {
		if len(row) != 1 {
			return nil, errors.Errorf("predictFraud got %d values for row %d, want one probability", len(row), i)
		}
		p.Probabilities[i] = row[0]
		p.Labels[i] = row[0] > fraudThreshold
	}
	return p, nil
}

// PredictSegments returns one fixed-length affinity vector per input row,
// in input order.
func (e *Engine) PredictSegments(ctx context.Context, t *data.Table) (*data.SegmentPrediction, error) {
	l := ctxlogrus.Get(ctx)
	l.Debugf("Predicting segments for %d rows, width %d", t.RowCount(), t.Width())

	reconciled := tabular.Reconcile(t, e.Segment.InputWidth())
	out, err := e.Segment.Predict(ctx, scale(e.Segment, reconciled).Rows)
	if err != nil {
		return nil, errors.Wrap(err, "predictSegments couldn't run the segmentation model")
	}
	if len(out) != reconciled.RowCount() {
		return nil, errors.Errorf("predictSegments got %d outputs for %d rows", len(out), reconciled.RowCount())
	}

	k := e.Segment.OutputWidth()
	for i, row := range out {
		if len(row) != k {
			return nil, errors.Errorf("predictSegments got %d scores for row %d, want %d", len(row), i, k)
		}
	}

	return &data.SegmentPrediction{Input: reconciled, Scores: out}, nil
}

// scale applies the model's fitted scaler when it has one, and falls back
// to standardizing over the batch itself when it doesn't.
func scale(p Predictor, t *data.Table) *data.Table {
	if s := p.Scaler(); s != nil {
		return s.Apply(t)
	}
	return tabular.Standardize(t)
}
