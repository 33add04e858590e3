// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	ConsoleFormat = "console"
	JSONFormat    = "json"
)

var errUnknownFormat = errors.New("unknown log format")

// RotatingWriterConfig describes the files a logger writes to when a log
// directory is set.
type RotatingWriterConfig struct {
	// Directory logs are written to. Empty disables file logging.
	Directory string `json:"directory"`
	// MaxSize is the size in megabytes a file reaches before it is rotated.
	MaxSize int `json:"maxSize"`
	// MaxFiles rotated files are kept. Zero keeps every file.
	MaxFiles int `json:"maxFiles"`
	// MaxAge is the number of days a rotated file is kept. Zero keeps every
	// file.
	MaxAge   int  `json:"maxAge"`
	Compress bool `json:"compress"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	LogLevel         Level     `json:"logLevel"`
	DisplayHighlight Highlight `json:"displayHighlight"`
	Format           string    `json:"format"`
}

// DefaultConfig returns a console logger at the Info level
func DefaultConfig() Config {
	return Config{
		RotatingWriterConfig: RotatingWriterConfig{
			MaxSize:  8,
			MaxFiles: 7,
		},
		LogLevel:         Info,
		DisplayHighlight: Plain,
		Format:           ConsoleFormat,
	}
}

// Encoder returns the zap encoder described by [c]
func (c Config) Encoder() (zapcore.Encoder, error) {
	switch strings.ToLower(c.Format) {
	case "", ConsoleFormat:
		return c.DisplayHighlight.ConsoleEncoder(), nil
	case JSONFormat:
		return JSONEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, c.Format)
	}
}
