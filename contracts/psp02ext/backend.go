// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package psp02ext

import (
	"context"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/vms/chainext"
)

// DefaultOutputCap is the size of the output buffer handed to the runtime.
const DefaultOutputCap = 16 * 1024

var _ Backend = (*RegistryBackend)(nil)

// RegistryBackend runs chain extension calls in process against a registry,
// on behalf of [caller] and charged to [meter].
type RegistryBackend struct {
	ctx      context.Context
	registry *chainext.Registry
	caller   ids.ID
	meter    chainext.Meter
}

func NewRegistryBackend(
	ctx context.Context,
	registry *chainext.Registry,
	caller ids.ID,
	meter chainext.Meter,
) *RegistryBackend {
	return &RegistryBackend{
		ctx:      ctx,
		registry: registry,
		caller:   caller,
		meter:    meter,
	}
}

func (b *RegistryBackend) CallChainExtension(id uint32, input []byte) (uint32, []byte, error) {
	env := chainext.NewEnvironment(b.ctx, id, input, DefaultOutputCap, b.caller, b.meter)
	retVal, err := b.registry.Call(env)
	if err != nil {
		return 0, nil, err
	}
	return retVal.Flags, env.Output(), nil
}
