// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// Highlighting modes available
const (
	Plain Highlight = iota
	Colors
)

var errUnknownHighlight = errors.New("unknown highlight")

// Highlight mode to apply to displayed logs
type Highlight int

// Color is an ANSI escape sequence used to colorize the level of a log line
type Color string

const (
	Black       Color = "\033[0;30m"
	DarkGray    Color = "\033[1;30m"
	Red         Color = "\033[0;31m"
	LightRed    Color = "\033[1;31m"
	Green       Color = "\033[0;32m"
	LightGreen  Color = "\033[1;32m"
	Orange      Color = "\033[0;33m"
	Yellow      Color = "\033[1;33m"
	Blue        Color = "\033[0;34m"
	LightBlue   Color = "\033[1;34m"
	Purple      Color = "\033[0;35m"
	LightPurple Color = "\033[1;35m"
	Cyan        Color = "\033[0;36m"
	LightCyan   Color = "\033[1;36m"
	LightGray   Color = "\033[0;37m"
	White       Color = "\033[1;37m"

	Reset Color = "\033[0;0m"
)

// Wrap returns [text] surrounded by the escape codes of [c]
func (c Color) Wrap(text string) string {
	return string(c) + text + string(Reset)
}

// ToHighlight chooses a highlighting mode
func ToHighlight(h string, fd uintptr) (Highlight, error) {
	switch strings.ToUpper(h) {
	case "PLAIN":
		return Plain, nil
	case "COLORS":
		return Colors, nil
	case "AUTO":
		if !term.IsTerminal(int(fd)) {
			return Plain, nil
		}
		return Colors, nil
	default:
		return Plain, fmt.Errorf("%w: %s", errUnknownHighlight, h)
	}
}

func (h Highlight) MarshalJSON() ([]byte, error) {
	switch h {
	case Plain:
		return []byte(`"PLAIN"`), nil
	case Colors:
		return []byte(`"COLORS"`), nil
	default:
		return nil, errUnknownHighlight
	}
}

func (h Highlight) levelEncoder() zapcore.LevelEncoder {
	if h == Colors {
		return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			level := Level(l)
			enc.AppendString(level.Color().Wrap(level.AlignedString()))
		}
	}
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(Level(l).AlignedString())
	}
}

func jsonLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format("01-02|15:04:05.000") + "]")
}

// ConsoleEncoder returns a human readable encoder using this highlight mode
func (h Highlight) ConsoleEncoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    h.levelEncoder(),
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	return zapcore.NewConsoleEncoder(config)
}

// JSONEncoder returns a machine readable encoder. Highlighting is ignored.
func JSONEncoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    jsonLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	return zapcore.NewJSONEncoder(config)
}
