package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/config"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/logging"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/train"
)

func main() {
	var (
		configPath = flag.String("config", "", "HCL config file (default ./"+config.DefaultFile+" when present)")
		dataPath   = flag.String("data", "", "Clean dataset CSV (default <out>/"+config.DefaultCleanCSV+")")
		outDir     = flag.String("out", "", "Output directory for models, plots and report (default "+config.DefaultOutputDir+")")
		logLevel   = flag.String("log-level", "", "Log level: debug|info|warn|error")
		logFormat  = flag.String("log-format", "", "Log format: text|json")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [--data output/clean_engine_perf.csv] [--out output]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}
	if *dataPath != "" {
		cfg.CleanCSV = *dataPath
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx := logging.WithLogger(context.Background(), logger)

	if _, err := train.Run(ctx, train.Options{
		CleanCSV:  cfg.CleanCSVPath(),
		OutputDir: cfg.OutputDir,
		Params:    train.DefaultHyperparameters(),
		Stdout:    os.Stdout,
	}); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "train_model failed: %v\n", err)
	os.Exit(1)
}
