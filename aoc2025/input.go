package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

const defaultConfigFile = "aoc2025.ini"

// config is the optional ini file describing where puzzle inputs live.
//
//	inputdir = inputs
//	verbose = true
//
//	[1]
//	input = dial.txt
//
// Keys in a day's section override the global defaults for that day.
type config struct {
	file     ini.File
	inputDir string
	verbose  bool
}

// loadConfig reads the config at path. If path is empty, the default config
// file is used when it exists.
func loadConfig(path string) (*config, error) {
	cfg := &config{inputDir: "."}
	if path == "" {
		path = defaultConfigFile
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}
	f, err := ini.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	cfg.file = f
	if dir, ok := f.Get("", "inputdir"); ok && dir != "" {
		cfg.inputDir = dir
	}
	if v, ok := f.Get("", "verbose"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("config %s: bad verbose value %q", path, v)
		}
		cfg.verbose = b
	}
	return cfg, nil
}

// inputPath returns the input file for the named day.
func (c *config) inputPath(day string) string {
	if p, ok := c.file.Get(day, "input"); ok && p != "" {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(c.inputDir, p)
	}
	return filepath.Join(c.inputDir, day+".input")
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input: %w", err)
	}
	return f, nil
}
