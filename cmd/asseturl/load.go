package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/go-logr/stdr"

	asseturl "github.com/alnah/go-asseturl"
	"github.com/alnah/go-asseturl/internal/config"
	"github.com/alnah/go-asseturl/internal/fileutil"
	"github.com/alnah/go-asseturl/internal/starcfg"
)

// defaultConfigName is looked up when --config is not given.
const defaultConfigName = "asseturl"

// loadEngine builds the engine described by the common flags.
func loadEngine(f *commonFlags, deps *Dependencies) (*asseturl.Engine, error) {
	cfg, err := loadEngineConfig(f.config)
	if err != nil {
		return nil, err
	}

	opts := []asseturl.Option{asseturl.WithWarningWriter(deps.Stderr)}
	if f.verbose {
		stdr.SetVerbosity(1)
		opts = append(opts, asseturl.WithLogger(stdr.New(log.New(deps.Stderr, "", 0))))
	}

	eng, err := asseturl.New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating engine: %w", err)
	}
	return eng, nil
}

// loadEngineConfig loads a Starlark (.star) or YAML config. Without a name,
// ./asseturl.star or the asseturl YAML config is used when present, and the
// defaults rooted at the working directory otherwise.
func loadEngineConfig(nameOrPath string) (asseturl.Config, error) {
	if nameOrPath == "" {
		if fileutil.FileExists(defaultConfigName + ".star") {
			return loadStarlark(defaultConfigName + ".star")
		}
		cfg, err := config.LoadConfig(defaultConfigName)
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg = config.DefaultConfig()
		} else if err != nil {
			return asseturl.Config{}, fmt.Errorf("loading config: %w", err)
		}
		return cfg.EngineConfig()
	}

	if fileutil.HasExtension(nameOrPath, ".star") {
		return loadStarlark(nameOrPath)
	}

	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		return asseturl.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg.EngineConfig()
}

func loadStarlark(path string) (asseturl.Config, error) {
	cfg, err := starcfg.Load(path, starcfg.DefaultTimeout)
	if err != nil {
		return asseturl.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// styleContext turns --css-file into an absolute stylesheet path.
func styleContext(cssFile string) (asseturl.StyleContext, error) {
	if cssFile == "" {
		return asseturl.StyleContext{}, nil
	}
	abs, err := filepath.Abs(cssFile)
	if err != nil {
		return asseturl.StyleContext{}, fmt.Errorf("resolving --css-file: %w", err)
	}
	return asseturl.StyleContext{CSSFilename: abs}, nil
}
