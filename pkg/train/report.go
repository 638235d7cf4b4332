package train

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ReportFile is written into the output directory after every run.
const ReportFile = "train_report.yaml"

// Report records one trainer run.
type Report struct {
	RunID     string          `yaml:"run_id"`
	CreatedAt time.Time       `yaml:"created_at"`
	Rows      int             `yaml:"rows"`
	TrainRows int             `yaml:"train_rows"`
	TestRows  int             `yaml:"test_rows"`
	Features  []string        `yaml:"features"`
	Params    Hyperparameters `yaml:"hyperparameters"`
	Targets   []TargetResult  `yaml:"targets"`
	Path      string          `yaml:"-"`
}

// TargetResult holds held-out metrics and artifact paths for one target.
type TargetResult struct {
	Tag       string  `yaml:"tag"`
	Column    string  `yaml:"column"`
	R2        float64 `yaml:"r2"`
	RMSE      float64 `yaml:"rmse"`
	MAE       float64 `yaml:"mae"`
	ModelPath string  `yaml:"model_path"`
	PlotPath  string  `yaml:"plot_path"`
}

func newReport(rows, train, test int, params Hyperparameters) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Rows:      rows,
		TrainRows: train,
		TestRows:  test,
		Features:  append([]string(nil), Features...),
		Params:    params,
	}
}

// Write marshals the report as YAML to path, replacing any existing file.
func (r *Report) Write(path string) error {
	out, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// ReadReport loads a report written by Write.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	r.Path = path
	return &r, nil
}
