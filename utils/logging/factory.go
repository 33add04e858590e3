// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/natefinch/lumberjack.v2"
)

var _ Factory = (*factory)(nil)

// Factory creates new instances of different types of Logger
type Factory interface {
	// Make creates a new logger with name [name]
	Make(name string) (Logger, error)

	// SetLogLevel sets the log level of the logger with name [name]
	SetLogLevel(name string, level Level) error

	// GetLoggerNames returns the names of all logs created by this factory
	GetLoggerNames() []string

	// Close stops and clears all of a Factory's instantiated loggers
	Close()
}

// factory implements the Factory interface
type factory struct {
	config Config
	writer io.WriteCloser
	lock   sync.RWMutex

	// For each logger created by this factory:
	// Logger name --> the logger.
	loggers map[string]Logger
}

// NewFactory returns a new instance of a Factory producing loggers configured
// with the values set in the [config] parameter. Loggers write to stdout.
func NewFactory(config Config) Factory {
	return NewFactoryWithWriter(config, nopCloser{Writer: os.Stdout})
}

// NewFactoryWithWriter returns a Factory whose loggers all write to [writer].
// If a log directory is configured, each logger also writes JSON to its own
// rotating file in that directory.
func NewFactoryWithWriter(config Config, writer io.WriteCloser) Factory {
	return &factory{
		config:  config,
		writer:  writer,
		loggers: make(map[string]Logger),
	}
}

// Make implements the Factory interface
func (f *factory) Make(name string) (Logger, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if _, ok := f.loggers[name]; ok {
		return nil, fmt.Errorf("logger with name %q already exists", name)
	}
	encoder, err := f.config.Encoder()
	if err != nil {
		return nil, err
	}
	cores := []WrappedCore{NewWrappedCore(f.config.LogLevel, f.writer, encoder)}
	if dir := f.config.Directory; dir != "" {
		rotater := &lumberjack.Logger{
			Filename:   filepath.Join(dir, name+".log"),
			MaxSize:    f.config.MaxSize,
			MaxBackups: f.config.MaxFiles,
			MaxAge:     f.config.MaxAge,
			Compress:   f.config.Compress,
		}
		cores = append(cores, NewWrappedCore(f.config.LogLevel, rotater, JSONEncoder()))
	}
	l := NewLogger(name, cores...)
	f.loggers[name] = l
	return l, nil
}

// SetLogLevel implements the Factory interface
func (f *factory) SetLogLevel(name string, level Level) error {
	f.lock.RLock()
	defer f.lock.RUnlock()

	logger, ok := f.loggers[name]
	if !ok {
		return fmt.Errorf("logger with name %q not found", name)
	}
	logger.SetLevel(level)
	return nil
}

// GetLoggerNames implements the Factory interface
func (f *factory) GetLoggerNames() []string {
	f.lock.RLock()
	defer f.lock.RUnlock()

	names := maps.Keys(f.loggers)
	slices.Sort(names)
	return names
}

// Close implements the Factory interface
func (f *factory) Close() {
	f.lock.Lock()
	defer f.lock.Unlock()

	for _, logger := range f.loggers {
		logger.Stop()
	}
	f.loggers = nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
