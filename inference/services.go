package inference

import (
	"context"

	"github.com/busted-ai/busted-predictor-frontend/tabular"
)

// Predictor is an opaque pre-trained model. Implementations must be safe
// for concurrent read-only use; the engine never mutates them.
type Predictor interface {
	InputWidth() int
	OutputWidth() int
	// Scaler returns the fitted feature scaler prepared with the model,
	// or nil if the model expects per-batch standardization.
	Scaler() *tabular.Scaler
	Predict(ctx context.Context, batch [][]float64) ([][]float64, error)
}
