package train

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/data"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/dataprep"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/loader"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/logging"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/model"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/pipeline"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/plotting"
)

// Target pairs a clean-dataset column with the tag used in output file names.
type Target struct {
	Column string
	Tag    string
}

// Targets are fitted in this order.
var Targets = []Target{
	{Column: "thrust_kN", Tag: "thrust"},
	{Column: "TSFC", Tag: "tsfc"},
}

// Features are the model inputs, in column order.
var Features = []string{"mode_pct", "BPR", "OPR", "year"}

// Schema is the training view of the clean dataset.
func Schema() pipeline.Schema {
	names := make([]string, len(Targets))
	for i, t := range Targets {
		names[i] = t.Column
	}
	return pipeline.Schema{FeatureNames: Features, TargetNames: names}
}

// Hyperparameters are fixed; there is no search.
type Hyperparameters struct {
	NEstimators  int     `yaml:"n_estimators"`
	MaxDepth     int     `yaml:"max_depth"`
	LearningRate float64 `yaml:"learning_rate"`
	TestRatio    float64 `yaml:"test_ratio"`
	Seed         int64   `yaml:"seed"`
}

// DefaultHyperparameters: 400 depth-3 trees, 80/20 split, seed 42.
func DefaultHyperparameters() Hyperparameters {
	return Hyperparameters{
		NEstimators:  400,
		MaxDepth:     3,
		LearningRate: 0.1,
		TestRatio:    0.2,
		Seed:         42,
	}
}

// Options configures Run.
type Options struct {
	CleanCSV  string
	OutputDir string
	Params    Hyperparameters
	Stdout    io.Writer // metric lines; nil means os.Stdout
}

// Run loads the clean dataset, imputes feature means, and fits, reports,
// plots and persists one model per target. Any failure stops the run.
func Run(ctx context.Context, opts Options) (*Report, error) {
	log := logging.FromContext(ctx)
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	frame, err := data.LoadCSV(opts.CleanCSV, Schema())
	if err != nil {
		return nil, err
	}
	log.Info("clean dataset loaded", "path", opts.CleanCSV, "rows", frame.Rows())

	imputer := dataprep.NewMeanImputer()
	X := pipeline.NewPipeline(imputer).FitTransform(frame.X, nil)
	for j, name := range frame.FeatureNames {
		log.Debug("feature imputed", "feature", name, "mean", imputer.Means[j], "filled", imputer.Filled[j])
	}

	trainIdx, testIdx := loader.SplitIndices(len(X), opts.Params.TestRatio, opts.Params.Seed)
	log.Info("train/test split", "train", len(trainIdx), "test", len(testIdx), "seed", opts.Params.Seed)

	report := newReport(frame.Rows(), len(trainIdx), len(testIdx), opts.Params)
	for _, target := range Targets {
		res, err := trainAndReport(ctx, X, frame.Targets[target.Column], trainIdx, testIdx, target, opts)
		if err != nil {
			return nil, err
		}
		report.Targets = append(report.Targets, res)
	}

	report.Path = filepath.Join(opts.OutputDir, ReportFile)
	if err := report.Write(report.Path); err != nil {
		return nil, err
	}
	log.Info("training report written", "path", report.Path)
	return report, nil
}

func trainAndReport(ctx context.Context, X [][]float64, y []float64, trainIdx, testIdx []int, target Target, opts Options) (TargetResult, error) {
	log := logging.FromContext(ctx).With("target", target.Tag)
	start := time.Now()

	Xtr, ytr := loader.Take(X, y, trainIdx)
	Xts, yts := loader.Take(X, y, testIdx)

	reg := model.NewGradientBoostingRegressor(
		model.WithNEstimators(opts.Params.NEstimators),
		model.WithEstimatorDepth(opts.Params.MaxDepth),
		model.WithLearningRate(opts.Params.LearningRate),
		model.WithSeed(opts.Params.Seed),
	)
	if err := reg.Fit(Xtr, ytr); err != nil {
		return TargetResult{}, fmt.Errorf("fit %s (%s): %w", target.Tag, target.Column, err)
	}
	ypred := reg.Predict(Xts)

	res := TargetResult{
		Tag:    target.Tag,
		Column: target.Column,
		R2:     model.R2(yts, ypred),
		RMSE:   model.RMSE(yts, ypred),
		MAE:    model.MAE(yts, ypred),
	}
	fmt.Fprintf(opts.Stdout, "%-6s  R² = %.3f   RMSE = %.4f\n", target.Tag, res.R2, res.RMSE)

	res.PlotPath = filepath.Join(opts.OutputDir, "residuals_"+target.Tag+".png")
	residuals := model.Residuals(yts, ypred)
	if err := plotting.SaveResidualHistogram(res.PlotPath, residuals, plotting.DefaultHistogramOptions("Residuals - "+target.Tag)); err != nil {
		return TargetResult{}, fmt.Errorf("plot residuals %s: %w", target.Tag, err)
	}

	res.ModelPath = filepath.Join(opts.OutputDir, target.Tag+"_model.gob")
	if err := model.SaveGob(res.ModelPath, reg); err != nil {
		return TargetResult{}, fmt.Errorf("save model %s: %w", target.Tag, err)
	}

	log.Info("model trained",
		"r2", res.R2,
		"rmse", res.RMSE,
		"elapsed", time.Since(start),
		"model", res.ModelPath,
		"plot", res.PlotPath,
	)
	return res, nil
}
