package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"github.com/wavesplatform/valuecodec/pkg/codec"
	"github.com/wavesplatform/valuecodec/pkg/corpus"
)

var version string

type options struct {
	as       corpus.Target
	maxDepth int
	offset   int
}

func main() {
	var showHelp bool
	var showVersion bool
	var as string
	var opts options

	flag.StringVarP(&as, "as", "a", corpus.TargetValue.String(), "Decode the input as a \"value\" or a \"container\"")
	flag.IntVarP(&opts.maxDepth, "max-depth", "d", codec.DefaultMaxDepth, "Maximum nesting depth of containers and arrays")
	flag.IntVar(&opts.offset, "offset", 0, "Offset in the file to start decoding at")
	flag.BoolVarP(&showHelp, "help", "h", false, "Print usage information (this message) and quit")
	flag.BoolVarP(&showVersion, "version", "v", false, "Print version information and quit")
	flag.Usage = showUsageAndExit
	flag.Parse()

	if showHelp {
		showUsageAndExit()
	}
	if showVersion {
		showVersionAndExit()
	}
	if flag.NArg() != 1 {
		showUsageAndExit()
	}
	if err := opts.as.UnmarshalText([]byte(as)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		showUsageAndExit()
	}
	if err := run(afero.NewOsFs(), flag.Arg(0), opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fs afero.Fs, path string, opts options, w io.Writer) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", path)
	}
	d := codec.Decoder{MaxDepth: opts.maxDepth}
	var n int
	switch opts.as {
	case corpus.TargetContainer:
		var c codec.Container
		c, n, err = d.DecodeContainer(data, opts.offset)
		if err == nil {
			err = codec.DumpContainerTo(w, c)
		}
	default:
		var v codec.Value
		v, n, err = d.DecodeValue(data, opts.offset)
		if err == nil {
			err = codec.DumpTo(w, v)
		}
	}
	if err != nil {
		return errors.Errorf("%s: %v", corpus.Classify(err), err)
	}
	if rest := len(data) - n; rest > 0 {
		_, err = fmt.Fprintf(w, "%d trailing bytes after offset %d\n", rest, n)
	}
	return err
}

func showUsageAndExit() {
	fmt.Println("usage: valuedump [flags] <file>")
	flag.PrintDefaults()
	os.Exit(0)
}

func showVersionAndExit() {
	fmt.Printf("valuedump %s\n", version)
	os.Exit(0)
}
