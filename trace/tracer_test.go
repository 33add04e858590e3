// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNoop(t *testing.T) {
	require := require.New(t)

	tracer, err := New(Config{})
	require.NoError(err)
	require.Equal(Noop, tracer)

	_, span := tracer.Start(context.Background(), "noop")
	require.False(span.SpanContext().IsValid())
	span.End()
	require.NoError(tracer.Close())
}

func TestNewHTTPExporter(t *testing.T) {
	require := require.New(t)

	tracer, err := New(Config{
		ExporterConfig: ExporterConfig{
			Type:     HTTP,
			Endpoint: "localhost:4318",
			Insecure: true,
		},
		TraceSampleRate: 1,
	})
	require.NoError(err)

	_, span := tracer.Start(context.Background(), "sampled")
	require.True(span.SpanContext().IsValid())
	span.End()
}

func TestExporterTypeJSON(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		expected    ExporterType
		expectedErr error
	}{
		{
			name:     "grpc",
			in:       `"grpc"`,
			expected: GRPC,
		},
		{
			name:     "http upper case",
			in:       `"HTTP"`,
			expected: HTTP,
		},
		{
			name:     "null",
			in:       `"null"`,
			expected: NoOp,
		},
		{
			name:        "unknown",
			in:          `"zipkin"`,
			expectedErr: errUnknownExporterType,
		},
		{
			name:        "unquoted",
			in:          `grpc`,
			expectedErr: errInvalidFormat,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			var exporterType ExporterType
			err := exporterType.UnmarshalJSON([]byte(test.in))
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}
			require.Equal(test.expected, exporterType)

			b, err := json.Marshal(exporterType)
			require.NoError(err)
			require.Equal(`"`+exporterType.String()+`"`, string(b))
		})
	}
}
