package inference

import (
	"context"
	"encoding/json"
	"math"
	"os"

	"github.com/busted-ai/busted-predictor-frontend/tabular"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// artifact is the on-disk JSON form of a pre-trained model.
type artifact struct {
	Kind      string      `json:"kind"`
	Weights   [][]float64 `json:"weights"`
	Bias      []float64   `json:"bias"`
	Centroids [][]float64 `json:"centroids"`
	Scaler    *struct {
		Mean []float64 `json:"mean"`
		Std  []float64 `json:"std"`
	} `json:"scaler"`
}

// LoadModel reads a model artifact from path. It supports two kinds:
// "logistic" (weights + bias, sigmoid outputs) and "centroids" (per-row
// affinity to each centroid). Models are immutable once loaded.
func LoadModel(path string) (Predictor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loadModel couldn't read artifact %s", path)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, errors.Wrapf(err, "loadModel couldn't decode artifact %s", path)
	}

	var scaler *tabular.Scaler
	if a.Scaler != nil {
		scaler = &tabular.Scaler{Mean: a.Scaler.Mean, Std: a.Scaler.Std}
	}

	var p Predictor
	switch a.Kind {
	case "logistic":
		p, err = newLogisticModel(a.Weights, a.Bias, scaler)
	case "centroids":
		p, err = newCentroidModel(a.Centroids, scaler)
	default:
		return nil, errors.Errorf("loadModel got unknown model kind %q in %s", a.Kind, path)
	}
	if err != nil {
		return nil, err
	}

	if scaler != nil && (len(scaler.Mean) != p.InputWidth() || len(scaler.Std) != p.InputWidth()) {
		return nil, errors.Errorf("loadModel got scaler widths %d/%d for model width %d in %s",
			len(scaler.Mean), len(scaler.Std), p.InputWidth(), path)
	}
	return p, nil
}

// LogisticModel computes sigmoid(Wx + b) per row.
type LogisticModel struct {
	weights *mat.Dense
	bias    []float64
	inputs  int
	scaler  *tabular.Scaler
}

func newLogisticModel(weights [][]float64, bias []float64, scaler *tabular.Scaler) (*LogisticModel, error) {
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, errors.New("logistic model needs a non-empty weight matrix")
	}
	if len(bias) != len(weights) {
		return nil, errors.Errorf("logistic model has %d bias terms for %d outputs", len(bias), len(weights))
	}

	inputs := len(weights[0])
	w := mat.NewDense(len(weights), inputs, nil)
	for i, row := range weights {
		if len(row) != inputs {
			return nil, errors.Errorf("logistic model weight row %d has width %d, want %d", i, len(row), inputs)
		}
		w.SetRow(i, row)
	}

	return &LogisticModel{
		weights: w,
		bias:    append([]float64(nil), bias...),
		inputs:  inputs,
		scaler:  scaler,
	}, nil
}

func (m *LogisticModel) InputWidth() int { return m.inputs }
func (m *LogisticModel) OutputWidth() int { r, _ := m.weights.Dims(); return r }
func (m *LogisticModel) Scaler() *tabular.Scaler { return m.scaler }

func (m *LogisticModel) Predict(_ context.Context, batch [][]float64) ([][]float64, error) {
	if len(batch) == 0 {
		return [][]float64{}, nil
	}
	x, err := batchMatrix(batch, m.inputs)
	if err != nil {
		return nil, err
	}

	outputs, _ := m.weights.Dims()
	var scores mat.Dense
	scores.Mul(x, m.weights.T())

	out := make([][]float64, len(batch))
	for i := range out {
		out[i] = make([]float64, outputs)
		for k := 0; k < outputs; k++ {
			out[i][k] = sigmoid(scores.At(i, k) + m.bias[k])
		}
	}
	return out, nil
}

// CentroidModel scores each row's affinity to a set of centroids as
// 1/(1+d), with d the Euclidean distance. Closer centroids score higher.
type CentroidModel struct {
	centroids [][]float64
	scaler    *tabular.Scaler
}

func newCentroidModel(centroids [][]float64, scaler *tabular.Scaler) (*CentroidModel, error) {
	if len(centroids) == 0 || len(centroids[0]) == 0 {
		return nil, errors.New("centroid model needs at least one non-empty centroid")
	}
	width := len(centroids[0])
	copied := make([][]float64, len(centroids))
	for i, c := range centroids {
		if len(c) != width {
			return nil, errors.Errorf("centroid %d has width %d, want %d", i, len(c), width)
		}
		copied[i] = append([]float64(nil), c...)
	}
	return &CentroidModel{centroids: copied, scaler: scaler}, nil
}

func (m *CentroidModel) InputWidth() int { return len(m.centroids[0]) }
func (m *CentroidModel) OutputWidth() int { return len(m.centroids) }
func (m *CentroidModel) Scaler() *tabular.Scaler { return m.scaler }

func (m *CentroidModel) Predict(_ context.Context, batch [][]float64) ([][]float64, error) {
	if _, err := batchMatrix(batch, m.InputWidth()); err != nil {
		return nil, err
	}

	out := make([][]float64, len(batch))
	for i, row := range batch {
		out[i] = make([]float64, len(m.centroids))
		for k, c := range m.centroids {
			var sum float64
			for j := range c {
				d := row[j] - c[j]
				sum += d * d
			}
			out[i][k] = 1 / (1 + math.Sqrt(sum))
		}
	}
	return out, nil
}

// batchMatrix packs a non-empty batch into a dense matrix, rejecting rows
// that don't match the model's width. An empty batch yields a nil matrix;
// callers return an empty result before touching it.
func batchMatrix(batch [][]float64, width int) (*mat.Dense, error) {
	if len(batch) == 0 {
		return nil, nil
	}
	x := mat.NewDense(len(batch), width, nil)
	for i, row := range batch {
		if len(row) != width {
			return nil, errors.Errorf("input row %d has width %d, model expects %d", i, len(row), width)
		}
		x.SetRow(i, row)
	}
	return x, nil
}

func sigmoid(v float64) float64 {
	return 1 / (1 + math.Exp(-v))
}
