// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package psp02

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/logging"
	"github.com/ava-labs/nftext/vms/chainext"
	"github.com/ava-labs/nftext/vms/components/gas"
	"github.com/ava-labs/nftext/vms/uniques"
)

// Status codes returned to the calling contract.
const (
	StatusSuccess        uint32 = 0
	StatusTransferFailed uint32 = 1
)

var _ chainext.Extension = (*extension)(nil)

// TokenModule is the part of the native NFT module exposed to contracts.
type TokenModule interface {
	// Owner returns false if the item doesn't exist.
	Owner(collection uniques.CollectionID, item uniques.ItemID) (ids.ID, bool, error)
	Transfer(origin ids.ID, collection uniques.CollectionID, item uniques.ItemID, dest ids.ID) error
}

type WeightInfo interface {
	Transfer() gas.Gas
}

type Schedule interface {
	HostFnOverhead() gas.Gas
}

type extension struct {
	log      logging.Logger
	module   TokenModule
	weights  WeightInfo
	schedule Schedule
}

// New returns the PSP-02 extension backed by [module].
func New(
	log logging.Logger,
	module TokenModule,
	weights WeightInfo,
	schedule Schedule,
) chainext.Extension {
	return &extension{
		log:      log,
		module:   module,
		weights:  weights,
		schedule: schedule,
	}
}

func (e *extension) Call(env chainext.Environment) (chainext.RetVal, error) {
	funcID, err := ParseFuncID(env.FuncID())
	if err != nil {
		e.log.Error("called unregistered function",
			zap.String("funcID", chainext.FuncLabel(env.FuncID())),
		)
		return chainext.RetVal{}, err
	}

	switch funcID {
	case QueryOwner:
		return e.queryOwner(env)
	case Transfer:
		return e.transfer(env)
	default:
		return chainext.RetVal{}, fmt.Errorf("%w: %s", ErrUnregisteredFuncID, funcID)
	}
}

func (e *extension) queryOwner(env chainext.Environment) (chainext.RetVal, error) {
	q, err := ParseOwnerQuery(env.Input())
	if err != nil {
		return chainext.RetVal{}, err
	}

	owner, ok, err := e.module.Owner(q.Collection, q.Item)
	if err != nil {
		return chainext.RetVal{}, err
	}

	e.log.Verbo("queried owner",
		zap.Uint32("collection", uint32(q.Collection)),
		zap.Uint32("item", uint32(q.Item)),
		zap.Bool("found", ok),
	)
	if err := env.Write(EncodeOwner(owner, ok)); err != nil {
		return chainext.RetVal{}, err
	}
	return chainext.Converging(StatusSuccess), nil
}

func (e *extension) transfer(env chainext.Environment) (chainext.RetVal, error) {
	weight := e.weights.Transfer().SaturatingAdd(e.schedule.HostFnOverhead())
	if _, err := env.ChargeWeight(weight); err != nil {
		return chainext.RetVal{}, err
	}

	r, err := ParseTransferRequest(env.Input())
	if err != nil {
		return chainext.RetVal{}, err
	}

	caller := env.Caller()
	if err := e.module.Transfer(caller, r.Collection, r.Item, r.Dest); err != nil {
		e.log.Debug("transfer failed",
			zap.Stringer("caller", caller),
			zap.Uint32("collection", uint32(r.Collection)),
			zap.Uint32("item", uint32(r.Item)),
			zap.Stringer("dest", r.Dest),
			zap.Error(err),
		)
		return chainext.Converging(StatusTransferFailed), nil
	}
	return chainext.Converging(StatusSuccess), nil
}
