// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
}

func (*bufferCloser) Close() error { return nil }

func TestLog(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.ConsoleEncoder()))

	recovered := new(bool)
	panicFunc := func() {
		panic("DON'T PANIC!")
	}
	exitFunc := func() {
		*recovered = true
	}
	log.RecoverAndExit(panicFunc, exitFunc)

	require.True(t, *recovered)
}

func TestLogLevels(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("test", NewWrappedCore(Trace, buf, Plain.ConsoleEncoder()))

	log.Debug("hidden")
	require.Zero(buf.Len())

	log.Trace("shown", zap.Uint32("collection", 7))
	require.Contains(buf.String(), "TRACE")
	require.Contains(buf.String(), "shown")
	require.Contains(buf.String(), `"collection": 7`)

	buf.Reset()
	log.SetLevel(Error)
	require.False(log.Enabled(Warn))
	log.Warn("hidden")
	require.Zero(buf.Len())

	// Fatal must not terminate the process
	log.Fatal("still running")
	require.Contains(buf.String(), "FATAL")
}

func TestLogWith(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Info, buf, JSONEncoder()))

	log.With(zap.String("extension", "psp02")).Info("called")
	require.Contains(buf.String(), `"extension":"psp02"`)
	require.Contains(buf.String(), `"level":"INFO"`)
}

func TestFactory(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	f := NewFactoryWithWriter(DefaultConfig(), buf)
	defer f.Close()

	_, err := f.Make("b")
	require.NoError(err)
	a, err := f.Make("a")
	require.NoError(err)

	_, err = f.Make("a")
	require.ErrorContains(err, "already exists")

	require.Equal([]string{"a", "b"}, f.GetLoggerNames())

	require.NoError(f.SetLogLevel("a", Off))
	a.Fatal("dropped")
	require.Zero(buf.Len())

	require.ErrorContains(f.SetLogLevel("c", Info), "not found")
}

func TestFactoryLogDirectory(t *testing.T) {
	require := require.New(t)

	config := DefaultConfig()
	config.Directory = t.TempDir()
	buf := &bufferCloser{}
	f := NewFactoryWithWriter(config, buf)

	log, err := f.Make("uniques")
	require.NoError(err)
	log.Info("minted", zap.Uint32("item", 7))
	f.Close()

	contents, err := os.ReadFile(filepath.Join(config.Directory, "uniques.log"))
	require.NoError(err)
	require.Contains(string(contents), `"msg":"minted"`)
	require.Contains(string(contents), `"item":7`)
	require.Contains(buf.String(), "minted")
}

func TestNoLog(t *testing.T) {
	var l Logger = NoLog{}
	require.False(t, l.With(zap.Int("k", 1)).Enabled(Fatal))
}
