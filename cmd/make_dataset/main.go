package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/config"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/emissions"
	"github.com/BlackVenus2003/Jet-Engine-Performance-Prediction/pkg/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "HCL config file (default ./"+config.DefaultFile+" when present)")
		input      = flag.String("input", "", "Raw emissions CSV (default "+config.DefaultRawCSV+")")
		outDir     = flag.String("out", "", "Output directory (default "+config.DefaultOutputDir+")")
		parquet    = flag.Bool("parquet", false, "Also write a Parquet copy of the clean dataset")
		logLevel   = flag.String("log-level", "", "Log level: debug|info|warn|error")
		logFormat  = flag.String("log-format", "", "Log format: text|json")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [--input data/emissions.csv] [--out output]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(err)
	}
	if *input != "" {
		cfg.RawCSV = *input
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *parquet {
		cfg.WriteParquet = true
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

	res, err := emissions.MakeDataset(ctx, emissions.Options{
		RawCSV:      cfg.RawCSV,
		CleanCSV:    cfg.CleanCSVPath(),
		ParquetPath: cfg.ParquetPath(),
	})
	if err != nil {
		fail(err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Clean dataset saved -> %s  (%d rows)\n", res.CleanCSV, res.Rows)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "make_dataset failed: %v\n", err)
	os.Exit(1)
}
