package pipeline

// Model is a trainable model produced by an engine.
type Model interface {
	// Fit trains the model on x/y.
	Fit(x [][]float64, y []float64, batchSize, epochs int) error

	// Evaluate scores the model on held-out x/y and returns the loss
	// followed by any task metrics.
	Evaluate(x [][]float64, y []float64) ([]float64, error)

	// Predict returns one prediction per row of x.
	Predict(x [][]float64) ([]float64, error)
}

// Engine creates, persists and restores models. The training semantics live
// entirely behind this interface; the pipeline only sequences the calls.
type Engine interface {
	NewModel(task TaskSpec) (Model, error)
	Save(model Model, name string) error
	Load(name string) (Model, error)
}
