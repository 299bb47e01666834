package controllers

import (
	"context"
	"net/http"

	"github.com/busted-ai/busted-predictor-frontend/data"
	"github.com/jbeshir/moonbird-auth-frontend/ctxlogrus"
	"github.com/sirupsen/logrus"
)

type Analyze struct {
	PredictionMaker FraudPredictor
	ExampleLister   ExampleLister
}

type AnalyzeInput struct {
	TableStr string
	RowStr   string
}

type AnalyzeResult struct {
	TableStr       string
	RowStr         string
	DroppedColumns []string
	Prediction     *data.FraudPrediction
	PredictionErr  error
	ExampleList    []data.ExampleTransactionResult
	ExampleListErr error
}

type WebAnalyzeResponder interface {
	OnContextError(w http.ResponseWriter, err error)
	OnResult(w http.ResponseWriter, r *AnalyzeResult)
}

func (c *Analyze) HandleFunc(cm ContextMaker, resp WebAnalyzeResponder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := cm.MakeContext(r)
		if err != nil {
			resp.OnContextError(w, err)
			return
		}

		input := &AnalyzeInput{
			TableStr: r.FormValue("table"),
			RowStr:   r.FormValue("row"),
		}
		result := c.handle(ctx, input)
		resp.OnResult(w, result)
	}
}

func (c *Analyze) handle(ctx context.Context, input *AnalyzeInput) *AnalyzeResult {
	ctx = ctxlogrus.WithFields(ctx, logrus.Fields{
		"controller": "Analyze",
	})
	l := ctxlogrus.Get(ctx)

	result := &AnalyzeResult{
		TableStr: input.TableStr,
		RowStr:   input.RowStr,
	}

	t, dropped, err := readInputTable(input.TableStr, input.RowStr, data.FraudFeatures)
	if err != nil {
		result.PredictionErr = err
		l.Errorf("Unable to read submitted table: %s", err)
	}
	if len(dropped) > 0 {
		result.DroppedColumns = dropped
		l.Warnf("Dropped non-numeric columns: %v", dropped)
	}

	if err == nil && t != nil && t.RowCount() > 0 {
		result.Prediction, result.PredictionErr = c.PredictionMaker.PredictFraud(ctx, t)
		if result.PredictionErr != nil {
			l.Errorf("Unable to generate requested prediction: %s", result.PredictionErr)
		}
	}

	examples, listErr := c.ExampleLister.GetExamples(ctx)
	if listErr == nil {
		for _, example := range examples {
			exampleResult := data.ExampleTransactionResult{ExampleTransaction: example}
			p, predictErr := c.PredictionMaker.PredictFraud(ctx, exampleTable(example))
			if predictErr != nil {
				exampleResult.ResultErr = predictErr
			} else {
				exampleResult.Probability = p.Probabilities[0]
				exampleResult.Label = p.Labels[0]
			}
			result.ExampleList = append(result.ExampleList, exampleResult)
		}
	} else {
		result.ExampleListErr = listErr
		l.Errorf("Unable to get example transactions: %s", listErr)
	}

	return result
}

func exampleTable(example data.ExampleTransaction) *data.Table {
	return &data.Table{
		Columns: schemaColumns(len(example.Values), data.FraudFeatures),
		Rows:    [][]float64{example.Values},
	}
}
