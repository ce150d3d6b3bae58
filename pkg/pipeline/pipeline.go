package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sreekona1935/medical-insurance-costs/pkg/data"
	"github.com/sreekona1935/medical-insurance-costs/pkg/dataprep"
)

// Step is one in-place cleaning stage applied to a table.
type Step interface {
	Name() string
	Apply(t *data.Table) error
}

// StepFunc adapts a function to the Step interface.
type StepFunc struct {
	StepName string
	Fn       func(t *data.Table) error
}

func (s StepFunc) Name() string { return s.StepName }
func (s StepFunc) Apply(t *data.Table) error { return s.Fn(t) }

// Pipeline chains steps over a table.
type Pipeline struct {
	steps  []Step
	logger zerolog.Logger
}

func NewPipeline(logger zerolog.Logger, steps ...Step) *Pipeline {
	return &Pipeline{steps: steps, logger: logger}
}

// Run applies each step in order and stops at the first error.
func (p *Pipeline) Run(t *data.Table) error {
	for _, step := range p.steps {
		before := t.Len()
		if err := step.Apply(t); err != nil {
			p.logger.Debug().Str("step", step.Name()).Err(err).Msg("step failed")
			return err
		}
		p.logger.Debug().
			Str("step", step.Name()).
			Int("rows_in", before).
			Int("rows_out", t.Len()).
			Msg("step done")
	}
	return nil
}

// CleaningSteps returns the standard cleaning chain: drop duplicates,
// normalize categoricals, derive and validate smoker_flag, derive log_charges.
func CleaningSteps() []Step {
	return []Step{
		StepFunc{"drop_duplicates", func(t *data.Table) error {
			dataprep.DropDuplicates(t)
			return nil
		}},
		StepFunc{"normalize_categorical", func(t *data.Table) error {
			dataprep.NormalizeCategorical(t)
			return nil
		}},
		StepFunc{"smoker_flag", dataprep.DeriveSmokerFlag},
		StepFunc{"log_charges", dataprep.DeriveLogCharges},
	}
}

// Option configures a Preparer.
type Option func(*Preparer)

// WithLogger sets the logger used for step diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Preparer) { p.logger = l }
}

// Preparer turns an insurance dataset file into a feature matrix, a
// log_charges target and the cleaned table. It holds no per-call state and
// is safe for concurrent use.
type Preparer struct {
	cfg    Config
	logger zerolog.Logger
}

// New returns a Preparer for cfg.
func New(cfg Config, opts ...Option) (*Preparer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Columns = cfg.Columns.WithDefaults()
	p := &Preparer{cfg: cfg, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With().Str("component", "preparer").Logger()
	return p, nil
}

// Config returns the configuration the Preparer was built with.
func (p *Preparer) Config() Config { return p.cfg }

// BuildXY loads sourcePath and returns the feature matrix, the target and
// the cleaned table. Any failure returns only the error.
func (p *Preparer) BuildXY(sourcePath string, includeInteraction bool) (*dataprep.FeatureMatrix, []float64, *data.Table, error) {
	log := p.logger.With().Str("source", sourcePath).Logger()

	tbl, err := data.Load(sourcePath, p.cfg.LoadOptions())
	if err != nil {
		return nil, nil, nil, err
	}
	log.Debug().Int("rows", tbl.Len()).Strs("extra_columns", tbl.ExtraColumns).Msg("dataset loaded")

	if err := NewPipeline(log, CleaningSteps()...).Run(tbl); err != nil {
		return nil, nil, nil, err
	}

	X, err := dataprep.BuildFeatures(tbl, includeInteraction)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build features: %w", err)
	}
	y, err := dataprep.Target(tbl)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("build target: %w", err)
	}

	log.Debug().
		Int("rows", X.Rows()).
		Strs("features", X.Columns).
		Bool("interaction", includeInteraction).
		Msg("design matrix built")
	return X, y, tbl, nil
}

// Prepare is BuildXY with the interaction flag taken from the config.
func (p *Preparer) Prepare(sourcePath string) (*dataprep.FeatureMatrix, []float64, *data.Table, error) {
	return p.BuildXY(sourcePath, p.cfg.IncludeInteraction)
}

var defaultPreparer = mustNew(DefaultConfig())

func mustNew(cfg Config, opts ...Option) *Preparer {
	p, err := New(cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("pipeline: invalid preparer config: %v", err))
	}
	return p
}

// BuildXY prepares a dataset with the standard column names.
func BuildXY(sourcePath string, includeInteraction bool) (*dataprep.FeatureMatrix, []float64, *data.Table, error) {
	return defaultPreparer.BuildXY(sourcePath, includeInteraction)
}
