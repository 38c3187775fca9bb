package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	cssFile string
	verbose bool
}

// resolveFlags holds all flags for the resolve command.
type resolveFlags struct {
	common         commonFlags
	onlyPath       bool
	cacheBuster    bool
	cacheBusterSet bool // --cache-buster given explicitly
}

// evalFlags holds all flags for the eval command.
type evalFlags struct {
	common    commonFlags
	functions []string
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config name or path (.yaml, .yml, .star)")
	fs.StringVar(&f.cssFile, "css-file", "", "stylesheet being emitted, for relative URLs")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log resolution details to stderr")
}

// newFlagSet returns a flag set that reports errors instead of printing them.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}

func parseResolveFlags(args []string) (*resolveFlags, []string, error) {
	fs := newFlagSet("resolve")
	f := &resolveFlags{}

	addCommonFlags(fs, &f.common)
	fs.BoolVarP(&f.onlyPath, "only-path", "p", false, "print the bare path instead of url('...')")
	fs.BoolVar(&f.cacheBuster, "cache-buster", false, "append a cache buster (default: on for fonts and images)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}
	f.cacheBusterSet = fs.Changed("cache-buster")

	return f, fs.Args(), nil
}

func parseEvalFlags(args []string) (*evalFlags, []string, error) {
	fs := newFlagSet("eval")
	f := &evalFlags{}

	addCommonFlags(fs, &f.common)
	fs.StringSliceVar(&f.functions, "functions", nil, "functions to enable (default: all)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, wrapFlagError(err)
	}

	return f, fs.Args(), nil
}

func wrapFlagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}

// hasVerboseFlag reports whether args request verbose output. It runs
// before command parsing so GOMAXPROCS logging can follow the flag.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		switch {
		case a == "--":
			return false
		case a == "-v", a == "--verbose", a == "--verbose=true":
			return true
		case strings.HasPrefix(a, "-") && !strings.HasPrefix(a, "--") && strings.Contains(a[1:], "v"):
			// combined short flags such as -pv
			return true
		}
	}
	return false
}
