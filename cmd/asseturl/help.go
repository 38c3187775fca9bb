package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: asseturl <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  resolve    Print the URL of an asset")
	fmt.Fprintln(w, "  eval       Evaluate asset function calls")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'asseturl help <command>' for details on a specific command.")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "  -c, --config <name>       Config name or path (.yaml, .yml, .star)")
	fmt.Fprintln(w, "      --css-file <path>     Stylesheet being emitted (relative assets)")
	fmt.Fprintln(w, "  -v, --verbose             Log resolution details to stderr")
}

// printResolveUsage prints usage for the resolve command.
func printResolveUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: asseturl resolve <type> <path> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the public URL of an asset.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  type    stylesheet, font, image, generated_image")
	fmt.Fprintln(w, "  path    Asset path as written in the stylesheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonFlags(w)
	fmt.Fprintln(w, "  -p, --only-path           Print the bare path instead of url('...')")
	fmt.Fprintln(w, "      --cache-buster[=bool] Append a cache buster")
	fmt.Fprintln(w, "                            Default: on for font and image, off otherwise")
}

// printEvalUsage prints usage for the eval command.
func printEvalUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: asseturl eval <expr>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Evaluate Starlark expressions calling the asset functions:")
	fmt.Fprintln(w, "  stylesheet_url(path, only_path=False)")
	fmt.Fprintln(w, "  font_url(path, only_path=False, cache_buster=True)")
	fmt.Fprintln(w, "  image_url(path, only_path=False, cache_buster=True)")
	fmt.Fprintln(w, "  generated_image_url(path, cache_buster=False)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	printCommonFlags(w)
	fmt.Fprintln(w, "      --functions <list>    Functions to enable, comma-separated (default: all)")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "resolve":
		printResolveUsage(deps.Stdout)
	case "eval":
		printEvalUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: asseturl version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: asseturl help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
