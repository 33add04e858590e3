// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainext

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	oteltrace "go.opentelemetry.io/otel/trace"
)

var (
	_ Extension   = (*tracedExtension)(nil)
	_ Environment = (*tracedEnv)(nil)
)

type tracedExtension struct {
	Extension
	callTag string
	tracer  oteltrace.Tracer
}

// NewTracedExtension wraps every call of [ext] in a span named after [name].
func NewTracedExtension(ext Extension, name string, tracer oteltrace.Tracer) Extension {
	return &tracedExtension{
		Extension: ext,
		callTag:   fmt.Sprintf("%s.call", name),
		tracer:    tracer,
	}
}

func (t *tracedExtension) Call(env Environment) (RetVal, error) {
	ctx, span := t.tracer.Start(env.Context(), t.callTag, oteltrace.WithAttributes(
		attribute.Int("extID", int(env.ExtID())),
		attribute.String("funcID", FuncLabel(env.FuncID())),
		attribute.Stringer("caller", env.Caller()),
		attribute.Int("inputLen", len(env.Input())),
	))
	defer span.End()

	retVal, err := t.Extension.Call(&tracedEnv{
		Environment: env,
		ctx:         ctx,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return retVal, err
	}
	span.SetAttributes(
		attribute.Int64("status", int64(retVal.Flags)),
		attribute.Bool("diverging", retVal.Diverging),
	)
	return retVal, nil
}

// tracedEnv hands the span's context to the wrapped extension.
type tracedEnv struct {
	Environment
	ctx context.Context
}

func (e *tracedEnv) Context() context.Context {
	return e.ctx
}
