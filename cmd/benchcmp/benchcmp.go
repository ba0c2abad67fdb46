package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"github.com/wavesplatform/valuecodec/pkg/benchcmp"
	"github.com/wavesplatform/valuecodec/pkg/logging"
	"go.uber.org/zap"
)

const regressionMarker = "regression_detected"

var version string

var errRegression = errors.New("performance regression detected")

type options struct {
	base      string
	pr        string
	threshold float64
	output    string
}

func main() {
	var showHelp bool
	var showVersion bool
	var opts options
	var lp logging.Parameters

	flag.StringVar(&opts.base, "base", "", "Path to baseline benchmark results JSON")
	flag.StringVar(&opts.pr, "pr", "", "Path to PR benchmark results JSON")
	flag.Float64VarP(&opts.threshold, "threshold", "t", benchcmp.DefaultThreshold, "Regression threshold, 0.10 means 10%")
	flag.StringVarP(&opts.output, "output", "o", "comparison.md", "Output Markdown file path")
	flag.BoolVarP(&showHelp, "help", "h", false, "Print usage information (this message) and quit")
	flag.BoolVarP(&showVersion, "version", "v", false, "Print version information and quit")
	lp.Initialize(flag.CommandLine)
	flag.Usage = showUsageAndExit
	flag.Parse()

	if showHelp {
		showUsageAndExit()
	}
	if showVersion {
		showVersionAndExit()
	}
	if opts.base == "" || opts.pr == "" || opts.threshold < 0 {
		showUsageAndExit()
	}
	if err := lp.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		showUsageAndExit()
	}
	logger, log := logging.Setup(lp)
	defer func() { _ = logger.Sync() }()

	if err := run(afero.NewOsFs(), logger, opts); err != nil {
		if !errors.Is(err, errRegression) {
			log.Errorf("Failed: %v", err)
		}
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(fs afero.Fs, logger *zap.Logger, opts options) error {
	log := logger.Sugar()
	base, err := benchcmp.Load(fs, opts.base)
	if err != nil {
		return err
	}
	pr, err := benchcmp.Load(fs, opts.pr)
	if err != nil {
		return err
	}
	if len(base) == 0 {
		log.Warn("No benchmarks found in base results")
	}
	if len(pr) == 0 {
		log.Warn("No benchmarks found in PR results")
	}

	c := benchcmp.Compare(base, pr, opts.threshold)
	if err := afero.WriteFile(fs, opts.output, []byte(benchcmp.Report(c)), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write report %q", opts.output)
	}
	log.Infof("Report written to %s", opts.output)

	pct := opts.threshold * 100
	if c.HasRegressions() {
		if err := afero.WriteFile(fs, regressionMarker, nil, 0o644); err != nil {
			return errors.Wrapf(err, "failed to create %q", regressionMarker)
		}
		log.Errorf("REGRESSION DETECTED: %d benchmark(s) slower than %.0f%% threshold", len(c.Regressions), pct)
		for _, r := range c.Regressions {
			log.Errorf("  - %s: +%.1f%%", r.Name, r.Change*100)
		}
		return errRegression
	}
	log.Infof("No significant regressions detected (threshold: %.0f%%)", pct)
	log.Infof("  - Improvements: %d", len(c.Improvements))
	log.Infof("  - Unchanged: %d", len(c.Unchanged))
	return nil
}

func showUsageAndExit() {
	fmt.Println("usage: benchcmp --base <file> --pr <file> [flags]")
	flag.PrintDefaults()
	os.Exit(0)
}

func showVersionAndExit() {
	fmt.Printf("benchcmp %s\n", version)
	os.Exit(0)
}
