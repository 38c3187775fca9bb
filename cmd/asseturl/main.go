package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	args := os.Args[1:]

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if hasVerboseFlag(args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(args, DefaultDeps()))
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	var err error
	switch args[0] {
	case "resolve":
		err = runResolve(args[1:], deps)
	case "eval":
		err = runEval(args[1:], deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "asseturl %s\n", Version)
	case "help", "-h", "--help":
		runHelp(args[1:], deps)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v%s\n", err, hintFor(err))
		if errors.Is(err, ErrUnknownCommand) {
			printUsage(deps.Stderr)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}
