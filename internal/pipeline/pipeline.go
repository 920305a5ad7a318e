package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Result keys in the shared results mapping.
const (
	KeyModel      = "model"
	KeyEvaluation = "evaluation"
	KeyPrediction = "prediction"
)

// ErrNoModel is returned when a stage needs a model but no configure or load
// stage has run yet.
var ErrNoModel = errors.New("no model configured")

// Pipeline holds the active stage and the shared results mapping. Unlike the
// collection product, results are read by key without being consumed: a
// failed Run leaves every previously stored key intact, and each stage only
// ever writes its own key. State transitions are caller-driven: assign a new
// stage with SetStage and call Run again.
type Pipeline struct {
	engine  Engine
	stage   Stage
	results map[string]any
	runID   string
}

// New creates a pipeline with the given engine and initial stage.
func New(engine Engine, stage Stage) *Pipeline {
	return &Pipeline{
		engine:  engine,
		stage:   stage,
		results: make(map[string]any),
		runID:   uuid.NewString(),
	}
}

// RunID identifies this pipeline instance in logs.
func (p *Pipeline) RunID() string {
	return p.runID
}

// Stage returns the active stage.
func (p *Pipeline) Stage() Stage {
	return p.stage
}

// SetStage installs the next stage to run.
func (p *Pipeline) SetStage(s Stage) {
	p.stage = s
}

// Results returns the shared results mapping. It is live: later stages keep
// writing into it.
func (p *Pipeline) Results() map[string]any {
	return p.results
}

// Result returns the value stored under key, or nil.
func (p *Pipeline) Result(key string) any {
	return p.results[key]
}

func (p *Pipeline) model() (Model, error) {
	m, ok := p.results[KeyModel].(Model)
	if !ok || m == nil {
		return nil, ErrNoModel
	}
	return m, nil
}

// Run executes the active stage, dispatching on its kind. A stage failure is
// fatal to this Run only; results stored by earlier stages stay readable.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	slog.Debug("running pipeline stage",
		"run_id", p.runID,
		"stage", string(p.stage.Kind))

	switch p.stage.Kind {
	case StageConfigure:
		model, err := p.engine.NewModel(p.stage.Task)
		if err != nil {
			return err
		}
		p.results[KeyModel] = model
		return nil

	case StageFit:
		model, err := p.model()
		if err != nil {
			return err
		}
		return model.Fit(p.stage.X, p.stage.Y, p.stage.BatchSize, p.stage.Epochs)

	case StageEvaluate:
		model, err := p.model()
		if err != nil {
			return err
		}
		evaluation, err := model.Evaluate(p.stage.X, p.stage.Y)
		if err != nil {
			return err
		}
		p.results[KeyEvaluation] = evaluation
		return nil

	case StagePredict:
		model, err := p.model()
		if err != nil {
			return err
		}
		prediction, err := model.Predict(p.stage.X)
		if err != nil {
			return err
		}
		p.results[KeyPrediction] = prediction
		return nil

	case StageSave:
		model, err := p.model()
		if err != nil {
			return err
		}
		return p.engine.Save(model, p.stage.ModelName)

	case StageLoad:
		model, err := p.engine.Load(p.stage.ModelName)
		if err != nil {
			return err
		}
		p.results[KeyModel] = model
		return nil

	default:
		return fmt.Errorf("unknown stage kind %q", p.stage.Kind)
	}
}
