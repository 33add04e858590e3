// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wasmvm runs wasm contracts with access to the chain extensions of
// a registry through the seal0 host module.
package wasmvm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/logging"
	"github.com/ava-labs/nftext/vms/chainext"
)

const (
	HostModuleName         = "seal0"
	CallChainExtensionName = "seal_call_chain_extension"
)

var (
	ErrNoMemory      = errors.New("module doesn't export memory")
	ErrOutOfBounds   = errors.New("memory access out of bounds")
	ErrMissingExport = errors.New("missing export")

	errMissingCallContext = errors.New("missing call context")
)

type callContextKey struct{}

// callContext is the per call state the host functions need.
type callContext struct {
	caller ids.ID
	meter  chainext.Meter
}

// Runtime compiles and instantiates contracts. It is safe for concurrent use.
type Runtime struct {
	log      logging.Logger
	registry *chainext.Registry
	runtime  wazero.Runtime
}

func NewRuntime(ctx context.Context, registry *chainext.Registry, log logging.Logger) (*Runtime, error) {
	r := &Runtime{
		log:      log,
		registry: registry,
		runtime: wazero.NewRuntimeWithConfig(
			ctx,
			wazero.NewRuntimeConfig().WithCloseOnContextDone(true),
		),
	}

	_, err := r.runtime.NewHostModuleBuilder(HostModuleName).
		NewFunctionBuilder().
		WithFunc(r.callChainExtension).
		Export(CallChainExtensionName).
		Instantiate(ctx)
	if err != nil {
		_ = r.runtime.Close(ctx)
		return nil, fmt.Errorf("couldn't instantiate %s host module: %w", HostModuleName, err)
	}
	return r, nil
}

// Instantiate compiles [wasm] and returns a new instance of it.
func (r *Runtime) Instantiate(ctx context.Context, wasm []byte) (*Contract, error) {
	compiled, err := r.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, fmt.Errorf("couldn't compile contract: %w", err)
	}

	module, err := r.runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		return nil, fmt.Errorf("couldn't instantiate contract: %w", err)
	}
	if module.Memory() == nil {
		_ = module.Close(ctx)
		return nil, ErrNoMemory
	}
	return &Contract{module: module}, nil
}

func (r *Runtime) Close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}

// callChainExtension implements seal_call_chain_extension. It reads the
// input from guest memory, runs the registry and writes the output back to
// [outPtr] and its length to [outLenPtr]. [outLenPtr] holds the output
// capacity on entry. Any failure traps the guest.
func (r *Runtime) callChainExtension(
	ctx context.Context,
	module api.Module,
	id uint32,
	inPtr uint32,
	inLen uint32,
	outPtr uint32,
	outLenPtr uint32,
) uint32 {
	call, ok := ctx.Value(callContextKey{}).(*callContext)
	if !ok {
		panic(errMissingCallContext)
	}

	mem := module.Memory()
	if mem == nil {
		panic(ErrNoMemory)
	}
	input, ok := mem.Read(inPtr, inLen)
	if !ok {
		panic(fmt.Errorf("%w: reading %d bytes of input at %d", ErrOutOfBounds, inLen, inPtr))
	}
	outCap, ok := mem.ReadUint32Le(outLenPtr)
	if !ok {
		panic(fmt.Errorf("%w: reading output length at %d", ErrOutOfBounds, outLenPtr))
	}

	env := chainext.NewEnvironment(
		ctx,
		id,
		append([]byte(nil), input...),
		outCap,
		call.caller,
		call.meter,
	)
	retVal, err := r.registry.Call(env)
	if err != nil {
		r.log.Debug("chain extension call trapped",
			zap.Uint32("id", id),
			zap.Stringer("caller", call.caller),
			zap.Error(err),
		)
		panic(err)
	}

	output := env.Output()
	if !mem.Write(outPtr, output) {
		panic(fmt.Errorf("%w: writing %d bytes of output at %d", ErrOutOfBounds, len(output), outPtr))
	}
	if !mem.WriteUint32Le(outLenPtr, uint32(len(output))) {
		panic(fmt.Errorf("%w: writing output length at %d", ErrOutOfBounds, outLenPtr))
	}
	return retVal.Flags
}
