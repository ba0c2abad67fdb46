package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"github.com/wavesplatform/valuecodec/pkg/codec"
	"github.com/wavesplatform/valuecodec/pkg/corpus"
	"github.com/wavesplatform/valuecodec/pkg/logging"
	"go.uber.org/zap"
)

var version string

type options struct {
	output   string
	format   corpus.Format
	manifest bool
	verify   bool
	check    bool
}

func main() {
	var showHelp bool
	var showVersion bool
	var format string
	var opts options
	var lp logging.Parameters

	flag.StringVarP(&opts.output, "output", "o", "corpus", "Output directory of the generated corpus")
	flag.StringVarP(&format, "format", "f", corpus.FormatRaw.String(), "Layout of seed files: \"raw\" or \"gofuzz\"")
	flag.BoolVarP(&opts.manifest, "manifest", "m", false, "Write MANIFEST.json with sizes, hashes and expected outcomes")
	flag.BoolVar(&opts.verify, "verify", false, "Compare the existing output directory with the cases instead of writing it")
	flag.BoolVar(&opts.check, "check", false, "Decode every case and fail if an outcome differs from the expected one")
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
	if err := lp.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		showUsageAndExit()
	}
	f, err := corpus.ParseFormat(format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		showUsageAndExit()
	}
	opts.format = f

	logger, log := logging.Setup(lp)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, afero.NewOsFs(), logger, opts); err != nil {
		log.Errorf("Failed: %v", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, fs afero.Fs, logger *zap.Logger, opts options) error {
	log := logger.Sugar()
	cases := corpus.Cases()
	g := corpus.NewGenerator(fs, opts.output, corpus.WithFormat(opts.format), corpus.WithLogger(logger.Named("corpus")))

	if opts.check {
		mm := corpus.Check(codec.Decoder{}, cases)
		for _, m := range mm {
			log.Errorf("Case %s: expected %s, got %s: %v", m.Case, m.Case.Expect, m.Got, m.Err)
		}
		if len(mm) > 0 {
			return errors.Errorf("%d of %d cases do not match expectations", len(mm), len(cases))
		}
		log.Infof("All %d cases match expectations", len(cases))
	}

	if opts.verify {
		drifts, err := corpus.Verify(fs, opts.output, g.Build(cases))
		if err != nil {
			return err
		}
		for _, d := range drifts {
			log.Warnf("Drift: %s", d)
		}
		if len(drifts) > 0 {
			return errors.Errorf("%d of %d files in %q differ from the cases", len(drifts), len(cases), opts.output)
		}
		log.Infof("All %d files in %s are up to date", len(cases), opts.output)
		return nil
	}

	m, err := g.Generate(ctx, cases)
	if err != nil {
		return err
	}
	if opts.manifest {
		if err := corpus.WriteManifest(fs, opts.output, m); err != nil {
			return err
		}
		log.Debugf("Manifest written to %s", opts.output)
	}
	log.Infof("Total: %d seed files", len(m.Entries))
	return nil
}

func showUsageAndExit() {
	fmt.Println("usage: corpusgen [flags]")
	flag.PrintDefaults()
	os.Exit(0)
}

func showVersionAndExit() {
	fmt.Printf("corpusgen %s\n", version)
	os.Exit(0)
}
