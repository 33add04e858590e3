// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wasmvm

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/vms/chainext"
)

// Contract is an instantiated contract. It isn't safe for concurrent use.
type Contract struct {
	module api.Module
}

// Call runs the exported function [name] on behalf of [caller]. Chain
// extension weight is charged to [meter].
func (c *Contract) Call(
	ctx context.Context,
	caller ids.ID,
	meter chainext.Meter,
	name string,
	params ...uint64,
) ([]uint64, error) {
	fn := c.module.ExportedFunction(name)
	if fn == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingExport, name)
	}

	ctx = context.WithValue(ctx, callContextKey{}, &callContext{
		caller: caller,
		meter:  meter,
	})
	return fn.Call(ctx, params...)
}

// WriteMemory copies [data] into the contract's memory at [offset].
func (c *Contract) WriteMemory(offset uint32, data []byte) error {
	if !c.module.Memory().Write(offset, data) {
		return fmt.Errorf("%w: writing %d bytes at %d", ErrOutOfBounds, len(data), offset)
	}
	return nil
}

// ReadMemory returns a copy of [length] bytes of the contract's memory at
// [offset].
func (c *Contract) ReadMemory(offset uint32, length uint32) ([]byte, error) {
	b, ok := c.module.Memory().Read(offset, length)
	if !ok {
		return nil, fmt.Errorf("%w: reading %d bytes at %d", ErrOutOfBounds, length, offset)
	}
	return append([]byte(nil), b...), nil
}

func (c *Contract) Close(ctx context.Context) error {
	return c.module.Close(ctx)
}
