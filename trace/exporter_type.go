// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ExporterType selects where spans are sent. The zero value disables
// tracing.
type ExporterType byte

const (
	NoOp ExporterType = iota
	GRPC
	HTTP
)

var (
	errUnknownExporterType = errors.New("unknown exporter type")
	errInvalidFormat       = errors.New("invalid format")

	exporterTypeNames = map[ExporterType]string{
		NoOp: "",
		GRPC: "grpc",
		HTTP: "http",
	}
)

// ExporterTypeFromString accepts the names printed by String. "null" is an
// alias for NoOp.
func ExporterTypeFromString(s string) (ExporterType, error) {
	s = strings.ToLower(s)
	if s == "null" {
		return NoOp, nil
	}
	for exporterType, name := range exporterTypeNames {
		if name == s {
			return exporterType, nil
		}
	}
	return NoOp, fmt.Errorf("%w: %q", errUnknownExporterType, s)
}

func (t ExporterType) String() string {
	if name, ok := exporterTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

func (t ExporterType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *ExporterType) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("%w: %s", errInvalidFormat, b)
	}
	exporterType, err := ExporterTypeFromString(s)
	if err != nil {
		return err
	}
	*t = exporterType
	return nil
}
