package controllers

import (
	"context"
	"net/http"

	"github.com/busted-ai/busted-predictor-frontend/data"
)

type ContextMaker interface {
	MakeContext(r *http.Request) (context.Context, error)
}

type FraudPredictor interface {
	PredictFraud(ctx context.Context, t *data.Table) (*data.FraudPrediction, error)
}

type SegmentPredictor interface {
	PredictSegments(ctx context.Context, t *data.Table) (*data.SegmentPrediction, error)
}

type ExampleLister interface {
	GetExamples(ctx context.Context) (data.ExampleTransactions, error)
}
