package pipeline

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// BaselineEngine is a small deterministic engine: ordinary least squares for
// regression and nearest-centroid for classification. It exists so the
// pipeline is usable and testable without an external training framework;
// models persist as JSON files under the engine's directory.
type BaselineEngine struct {
	dir string
}

// NewBaselineEngine creates an engine storing saved models under dir.
func NewBaselineEngine(dir string) *BaselineEngine {
	return &BaselineEngine{dir: dir}
}

// NewModel creates an untrained model for the task.
func (e *BaselineEngine) NewModel(task TaskSpec) (Model, error) {
	switch task.Kind {
	case TaskRegression:
		return &regressionModel{}, nil
	case TaskClassification:
		return &classifierModel{}, nil
	default:
		return nil, fmt.Errorf("unknown task kind %q", task.Kind)
	}
}

type centroid struct {
	Label  float64   `json:"label"`
	Center []float64 `json:"center"`
}

// modelFile is the JSON persistence shape for both model kinds.
type modelFile struct {
	Task      TaskKind   `json:"task"`
	Weights   []float64  `json:"weights,omitempty"`
	Centroids []centroid `json:"centroids,omitempty"`
}

func (e *BaselineEngine) path(name string) string {
	return filepath.Join(e.dir, name+".json")
}

// Save persists the model under name.
func (e *BaselineEngine) Save(model Model, name string) error {
	var file modelFile
	switch m := model.(type) {
	case *regressionModel:
		if m.weights == nil {
			return fmt.Errorf("cannot save unfitted regression model")
		}
		file = modelFile{Task: TaskRegression, Weights: m.weights}
	case *classifierModel:
		if m.centroids == nil {
			return fmt.Errorf("cannot save unfitted classification model")
		}
		file = modelFile{Task: TaskClassification, Centroids: m.centroids}
	default:
		return fmt.Errorf("unsupported model type %T", model)
	}

	if e.dir != "" {
		if err := os.MkdirAll(e.dir, 0o755); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
	}
	data, err := json.Marshal(file)
	if err != nil {
		return err
	}
	return os.WriteFile(e.path(name), data, 0o644)
}

// Load restores a previously saved model.
func (e *BaselineEngine) Load(name string) (Model, error) {
	data, err := os.ReadFile(e.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read model %q: %w", name, err)
	}
	var file modelFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode model %q: %w", name, err)
	}

	switch file.Task {
	case TaskRegression:
		return &regressionModel{weights: file.Weights}, nil
	case TaskClassification:
		return &classifierModel{centroids: file.Centroids}, nil
	default:
		return nil, fmt.Errorf("model %q has unknown task kind %q", name, file.Task)
	}
}

// regressionModel fits a linear model with intercept by solving the normal
// equations. The closed form makes batch size and epochs irrelevant; they
// are accepted for interface parity.
type regressionModel struct {
	weights []float64 // intercept first
}

func (m *regressionModel) Fit(x [][]float64, y []float64, _, _ int) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("fit requires matching non-empty x and y, got %d and %d rows", len(x), len(y))
	}
	dim := len(x[0]) + 1

	// Normal equations: (X^T X) w = X^T y, with a leading intercept column.
	xtx := make([][]float64, dim)
	for i := range xtx {
		xtx[i] = make([]float64, dim)
	}
	xty := make([]float64, dim)

	for r, row := range x {
		if len(row) != dim-1 {
			return fmt.Errorf("row %d has %d features, want %d", r, len(row), dim-1)
		}
		augmented := append([]float64{1}, row...)
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				xtx[i][j] += augmented[i] * augmented[j]
			}
			xty[i] += augmented[i] * y[r]
		}
	}

	weights, err := solve(xtx, xty)
	if err != nil {
		return err
	}
	m.weights = weights
	return nil
}

func (m *regressionModel) Predict(x [][]float64) ([]float64, error) {
	if m.weights == nil {
		return nil, ErrNoModel
	}
	out := make([]float64, len(x))
	for r, row := range x {
		if len(row) != len(m.weights)-1 {
			return nil, fmt.Errorf("row %d has %d features, want %d", r, len(row), len(m.weights)-1)
		}
		v := m.weights[0]
		for i, feat := range row {
			v += m.weights[i+1] * feat
		}
		out[r] = v
	}
	return out, nil
}

func (m *regressionModel) Evaluate(x [][]float64, y []float64) ([]float64, error) {
	pred, err := m.Predict(x)
	if err != nil {
		return nil, err
	}
	if len(pred) != len(y) {
		return nil, fmt.Errorf("evaluate requires matching x and y, got %d and %d rows", len(pred), len(y))
	}
	var mse, mae float64
	for i := range pred {
		d := pred[i] - y[i]
		mse += d * d
		mae += math.Abs(d)
	}
	n := float64(len(pred))
	return []float64{mse / n, mae / n}, nil
}

// solve performs Gaussian elimination with partial pivoting.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("singular design matrix")
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]

		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	out := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		v := b[r]
		for c := r + 1; c < n; c++ {
			v -= a[r][c] * out[c]
		}
		out[r] = v / a[r][r]
	}
	return out, nil
}

// classifierModel predicts the label of the nearest class centroid.
type classifierModel struct {
	centroids []centroid
}

func (m *classifierModel) Fit(x [][]float64, y []float64, _, _ int) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("fit requires matching non-empty x and y, got %d and %d rows", len(x), len(y))
	}
	dim := len(x[0])

	sums := make(map[float64][]float64)
	counts := make(map[float64]int)
	labels := make([]float64, 0)
	for r, row := range x {
		if len(row) != dim {
			return fmt.Errorf("row %d has %d features, want %d", r, len(row), dim)
		}
		label := y[r]
		if _, ok := sums[label]; !ok {
			sums[label] = make([]float64, dim)
			labels = append(labels, label)
		}
		for i, feat := range row {
			sums[label][i] += feat
		}
		counts[label]++
	}

	centroids := make([]centroid, 0, len(labels))
	for _, label := range labels {
		center := sums[label]
		for i := range center {
			center[i] /= float64(counts[label])
		}
		centroids = append(centroids, centroid{Label: label, Center: center})
	}
	m.centroids = centroids
	return nil
}

func (m *classifierModel) Predict(x [][]float64) ([]float64, error) {
	if m.centroids == nil {
		return nil, ErrNoModel
	}
	out := make([]float64, len(x))
	for r, row := range x {
		best := 0
		bestDist := math.Inf(1)
		for i, c := range m.centroids {
			if len(row) != len(c.Center) {
				return nil, fmt.Errorf("row %d has %d features, want %d", r, len(row), len(c.Center))
			}
			var dist float64
			for j := range row {
				d := row[j] - c.Center[j]
				dist += d * d
			}
			if dist < bestDist {
				bestDist = dist
				best = i
			}
		}
		out[r] = m.centroids[best].Label
	}
	return out, nil
}

func (m *classifierModel) Evaluate(x [][]float64, y []float64) ([]float64, error) {
	pred, err := m.Predict(x)
	if err != nil {
		return nil, err
	}
	if len(pred) != len(y) {
		return nil, fmt.Errorf("evaluate requires matching x and y, got %d and %d rows", len(pred), len(y))
	}
	wrong := 0
	for i := range pred {
		if pred[i] != y[i] {
			wrong++
		}
	}
	n := float64(len(pred))
	errRate := float64(wrong) / n
	return []float64{errRate, 1 - errRate}, nil
}
