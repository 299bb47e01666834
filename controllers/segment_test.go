package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"testing"

	"github.com/busted-ai/busted-predictor-frontend/data"
)

func TestSegment_HandleFunc_ManualRow(t *testing.T) {
	t.Parallel()

	pm := newTestSegmentPredictor(t)

	var calledPredict bool
	pm.PredictSegmentsFunc = func(ctx context.Context, tbl *data.Table) (*data.SegmentPrediction, error) {
		calledPredict = true
		if !reflect.DeepEqual(tbl.Rows, [][]float64{{1200, 0.5}}) {
			t.Errorf("Unexpected table rows: %v", tbl.Rows)
		}
		if !reflect.DeepEqual(tbl.Columns, data.SegmentFeatures[:2]) {
			t.Errorf("Expected segment schema column names, got %v", tbl.Columns)
		}
		return &data.SegmentPrediction{
			Input:  tbl,
			Scores: [][]float64{{0.1, 0.9}},
		}, nil
	}

	calledOnResult := false
	r := newTestWebSegmentResponder(t)
	r.OnResultFunc = func(w http.ResponseWriter, result *SegmentResult) {
		calledOnResult = true
		if result.Prediction == nil {
			t.Fatal("Expected a prediction, got nil")
		}
		if result.Prediction.Scores[0][1] != 0.9 {
			t.Error("Unexpected prediction scores")
		}
	}

	cm := newTestContextMaker(t)
	cm.MakeContextFunc = func(r *http.Request) (context.Context, error) {
		return context.Background(), nil
	}

	c := &Segment{PredictionMaker: pm}
	handler := c.HandleFunc(cm, r)
	formValues := make(url.Values)
	formValues.Add("row", "1200,0.5")
	handler(nil, &http.Request{Form: formValues})

	if !calledPredict {
		t.Error("Expected predict to be called, was not called")
	}
	if !calledOnResult {
		t.Error("Expected responder's OnResult method to be called, was not called")
	}
}

func TestSegment_HandleFunc_NoInput(t *testing.T) {
	t.Parallel()

	pm := newTestSegmentPredictor(t)

	calledOnResult := false
	r := newTestWebSegmentResponder(t)
	r.OnResultFunc = func(w http.ResponseWriter, result *SegmentResult) {
		calledOnResult = true
		if result.Prediction != nil {
			t.Error("Expected nil prediction for empty input")
		}
		if result.PredictionErr != nil {
			t.Errorf("Expected nil prediction error, got %s", result.PredictionErr)
		}
	}

	cm := newTestContextMaker(t)
	cm.MakeContextFunc = func(r *http.Request) (context.Context, error) {
		return context.Background(), nil
	}

	c := &Segment{PredictionMaker: pm}
	handler := c.HandleFunc(cm, r)
	handler(nil, &http.Request{})

	if !calledOnResult {
		t.Error("Expected responder's OnResult method to be called, was not called")
	}
}

func TestSegment_HandleFunc_PredictErr(t *testing.T) {
	t.Parallel()

	pm := newTestSegmentPredictor(t)
	pm.PredictSegmentsFunc = func(ctx context.Context, tbl *data.Table) (*data.SegmentPrediction, error) {
		return nil, errors.New("bluh")
	}

	calledOnResult := false
	r := newTestWebSegmentResponder(t)
	r.OnResultFunc = func(w http.ResponseWriter, result *SegmentResult) {
		calledOnResult = true
		if result.PredictionErr == nil {
			t.Error("Expected prediction error to be surfaced, got nil")
		}
	}

	cm := newTestContextMaker(t)
	cm.MakeContextFunc = func(r *http.Request) (context.Context, error) {
		return context.Background(), nil
	}

	c := &Segment{PredictionMaker: pm}
	handler := c.HandleFunc(cm, r)
	formValues := make(url.Values)
	formValues.Add("row", "1,2")
	handler(nil, &http.Request{Form: formValues})

	if !calledOnResult {
		t.Error("Expected responder's OnResult method to be called, was not called")
	}
}

func TestSegment_HandleFunc_ContextError(t *testing.T) {
	t.Parallel()

	pm := newTestSegmentPredictor(t)

	calledOnContextError := false
	r := newTestWebSegmentResponder(t)
	r.OnContextErrorFunc = func(w http.ResponseWriter, err error) {
		calledOnContextError = true
		if err == nil {
			t.Error("Expected non-nil error in OnContextError, got nil error")
		}
	}

	cm := newTestContextMaker(t)
	cm.MakeContextFunc = func(r *http.Request) (context.Context, error) {
		return nil, errors.New("bluh")
	}

	c := &Segment{PredictionMaker: pm}
	handler := c.HandleFunc(cm, r)
	handler(nil, &http.Request{})

	if !calledOnContextError {
		t.Error("Expected responder's OnContextError method to be called, was not called")
	}
}

type testWebSegmentResponder struct {
	OnContextErrorFunc func(w http.ResponseWriter, err error)
	OnResultFunc       func(w http.ResponseWriter, r *SegmentResult)
}

func newTestWebSegmentResponder(t *testing.T) *testWebSegmentResponder {
	return &testWebSegmentResponder{
		OnContextErrorFunc: func(w http.ResponseWriter, err error) {
			t.Error("OnContextErrorFunc should not be called")
		},
		OnResultFunc: func(w http.ResponseWriter, result *SegmentResult) {
			t.Error("OnResultFunc should not be called")
		},
	}
}

func (r *testWebSegmentResponder) OnContextError(w http.ResponseWriter, err error) {
	r.OnContextErrorFunc(w, err)
}

func (r *testWebSegmentResponder) OnResult(w http.ResponseWriter, result *SegmentResult) {
	r.OnResultFunc(w, result)
}
