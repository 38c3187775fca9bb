package main

import (
	"io"
	"os"
)

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
