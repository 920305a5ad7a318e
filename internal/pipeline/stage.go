package pipeline

// StageKind tags the active pipeline stage. Run dispatches over this tag, so
// the transition set stays explicit and exhaustively checkable.
type StageKind string

const (
	StageConfigure StageKind = "configure"
	StageFit       StageKind = "fit"
	StageEvaluate  StageKind = "evaluate"
	StagePredict   StageKind = "predict"
	StageSave      StageKind = "save"
	StageLoad      StageKind = "load"
)

// TaskKind selects the learning task a configure stage sets up.
type TaskKind string

const (
	TaskRegression     TaskKind = "regression"
	TaskClassification TaskKind = "classification"
)

// TaskSpec carries the configure-stage parameters.
type TaskSpec struct {
	Kind      TaskKind
	MaxTrials int
	Overwrite bool
	Loss      string
}

// Stage is one tagged variant of the pipeline state machine. Only the fields
// belonging to its kind are meaningful.
type Stage struct {
	Kind StageKind

	// configure
	Task TaskSpec

	// fit / evaluate / predict
	X         [][]float64
	Y         []float64
	BatchSize int
	Epochs    int

	// save / load
	ModelName string
}

// Configure returns a configure-task stage.
func Configure(task TaskSpec) Stage {
	return Stage{Kind: StageConfigure, Task: task}
}

// Fit returns a training stage over the given samples.
func Fit(x [][]float64, y []float64, batchSize, epochs int) Stage {
	return Stage{Kind: StageFit, X: x, Y: y, BatchSize: batchSize, Epochs: epochs}
}

// Evaluate returns an evaluation stage over held-out samples.
func Evaluate(x [][]float64, y []float64, batchSize int) Stage {
	return Stage{Kind: StageEvaluate, X: x, Y: y, BatchSize: batchSize}
}

// Predict returns a prediction stage over the given samples.
func Predict(x [][]float64, batchSize int) Stage {
	return Stage{Kind: StagePredict, X: x, BatchSize: batchSize}
}

// Save returns a terminal stage persisting the current model under name.
func Save(name string) Stage {
	return Stage{Kind: StageSave, ModelName: name}
}

// Load returns a stage restoring a previously saved model.
func Load(name string) Stage {
	return Stage{Kind: StageLoad, ModelName: name}
}
