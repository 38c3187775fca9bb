package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
	"go.starlark.net/starlark"

	"github.com/alnah/go-asseturl/internal/builtins"
)

// runEval evaluates Starlark expressions against the asset functions and
// prints one result per line. Strings are printed unquoted.
func runEval(args []string, deps *Dependencies) error {
	f, exprs, err := parseEvalFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printEvalUsage(deps.Stdout)
		return nil
	}
	if err != nil {
		return err
	}
	if len(exprs) == 0 {
		return fmt.Errorf("%w: eval needs at least one expression", ErrMissingArgs)
	}

	eng, err := loadEngine(&f.common, deps)
	if err != nil {
		return err
	}
	env, err := builtins.Register(eng, f.functions...)
	if err != nil {
		return err
	}
	sc, err := styleContext(f.common.cssFile)
	if err != nil {
		return err
	}

	thread := &starlark.Thread{Name: "eval"}
	builtins.SetCSSFilename(thread, sc.CSSFilename)

	for _, expr := range exprs {
		v, err := starlark.Eval(thread, "<expr>", expr, env)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrEval, expr, err)
		}
		if s, ok := v.(starlark.String); ok {
			fmt.Fprintln(deps.Stdout, string(s))
		} else {
			fmt.Fprintln(deps.Stdout, v.String())
		}
	}
	return nil
}
