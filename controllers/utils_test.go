package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/busted-ai/busted-predictor-frontend/data"
)

func newTestContextMaker(t *testing.T) *testContextMaker {
	return &testContextMaker{
		MakeContextFunc: func(r *http.Request) (context.Context, error) {
			t.Error("MakeContextFunc should not be called")
			return nil, nil
		},
	}
}

type testContextMaker struct {
	MakeContextFunc func(r *http.Request) (context.Context, error)
}

func (cm *testContextMaker) MakeContext(r *http.Request) (context.Context, error) {
	return cm.MakeContextFunc(r)
}

func newTestFraudPredictor(t *testing.T) *testFraudPredictor {
	return &testFraudPredictor{
		PredictFraudFunc: func(ctx context.Context, tbl *data.Table) (*data.FraudPrediction, error) {
			t.Error("PredictFraudFunc should not be called")
			return nil, nil
		},
	}
}

type testFraudPredictor struct {
	PredictFraudFunc func(ctx context.Context, t *data.Table) (*data.FraudPrediction, error)
}

func (p *testFraudPredictor) PredictFraud(ctx context.Context, t *data.Table) (*data.FraudPrediction, error) {
	return p.PredictFraudFunc(ctx, t)
}

func newTestSegmentPredictor(t *testing.T) *testSegmentPredictor {
	return &testSegmentPredictor{
		PredictSegmentsFunc: func(ctx context.Context, tbl *data.Table) (*data.SegmentPrediction, error) {
			t.Error("PredictSegmentsFunc should not be called")
			return nil, nil
		},
	}
}

type testSegmentPredictor struct {
	PredictSegmentsFunc func(ctx context.Context, t *data.Table) (*data.SegmentPrediction, error)
}

func (p *testSegmentPredictor) PredictSegments(ctx context.Context, t *data.Table) (*data.SegmentPrediction, error) {
	return p.PredictSegmentsFunc(ctx, t)
}

func newTestExampleLister(t *testing.T) *testExampleLister {
	return &testExampleLister{
		GetExamplesFunc: func(ctx context.Context) (data.ExampleTransactions, error) {
			t.Error("GetExamplesFunc should not be called")
			return nil, nil
		},
	}
}

type testExampleLister struct {
	GetExamplesFunc func(ctx context.Context) (data.ExampleTransactions, error)
}

func (l *testExampleLister) GetExamples(ctx context.Context) (data.ExampleTransactions, error) {
	return l.GetExamplesFunc(ctx)
}
