package controllers

import (
	"context"
	"net/http"

	"github.com/busted-ai/busted-predictor-frontend/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
)

type Segment struct {
	PredictionMaker SegmentPredictor
}

type SegmentInput struct {
	TableStr string
	RowStr   string
}

type SegmentResult struct {
	TableStr       string
	RowStr         string
	DroppedColumns []string
	Prediction     *data.SegmentPrediction
	PredictionErr  error
}

type WebSegmentResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *SegmentResult)
}

func (c *Segment) HandleFunc(cm ContextMaker, resp WebSegmentResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		input := &SegmentInput{
			TableStr: r.FormValue("table"),
			RowStr:   r.FormValue("row"),
		}
		result := c.handle(ctx, input)
		resp.OnResult(w, result)
	}
}

func (c *Segment) handle(ctx context.Context, input *SegmentInput) *SegmentResult {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Segment",
	})
	l := ctxlogrus.Get(ctx)

	result := &SegmentResult{
		TableStr: input.TableStr,
		RowStr:   input.RowStr,
	}

	t, dropped, err := readInputTable(input.TableStr, input.RowStr, data.SegmentFeatures)
	if err != nil {
		result.PredictionErr = err
		l.Errorf("Unable to read submitted table: %s", err)
	}
	if len(dropped) > 0 {
		result.DroppedColumns = dropped
		l.Warnf("Dropped non-numeric columns: %v", dropped)
	}

	if err == nil && t != nil && t.RowCount() > 0 {
		result.Prediction, result.PredictionErr = c.PredictionMaker.PredictSegments(ctx, t)
		if result.PredictionErr != nil {
			l.Errorf("Unable to generate requested segmentation: %s", result.PredictionErr)
		}
	}

	return result
}
