// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package psp02

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ava-labs/nftext/api"
	"github.com/ava-labs/nftext/contracts/psp02ext"
	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/json"
	"github.com/ava-labs/nftext/utils/logging"
	"github.com/ava-labs/nftext/vms/chainext"
	"github.com/ava-labs/nftext/vms/components/gas"
	"github.com/ava-labs/nftext/vms/uniques"
)

// Service is the API service for the PSP-02 extension and its token module.
// Owner queries and transfers go through the chain extension registry the
// same way a contract call does.
type Service struct {
	log      logging.Logger
	registry *chainext.Registry
	module   *uniques.Module
	weights  uniques.WeightInfo
	gasLimit gas.Gas
}

func NewService(
	log logging.Logger,
	registry *chainext.Registry,
	module *uniques.Module,
	weights uniques.WeightInfo,
	gasLimit gas.Gas,
) *Service {
	return &Service{
		log:      log,
		registry: registry,
		module:   module,
		weights:  weights,
		gasLimit: gasLimit,
	}
}

func (s *Service) extension(r *http.Request, caller ids.ID, meter chainext.Meter) *psp02ext.Extension {
	return psp02ext.NewExtension(psp02ext.NewRegistryBackend(r.Context(), s.registry, caller, meter))
}

// GetOwnerReply is the response from calling GetOwner
type GetOwnerReply struct {
	Found bool   `json:"found"`
	Owner ids.ID `json:"owner"`
}

// GetOwner returns the owner of an item
func (s *Service) GetOwner(r *http.Request, args *api.ItemArgs, reply *GetOwnerReply) error {
	s.log.Debug("API called",
		zap.String("service", "psp02"),
		zap.String("method", "getOwner"),
		zap.Uint32("collection", uint32(args.Collection)),
		zap.Uint32("item", uint32(args.Item)),
	)

	ext := s.extension(r, ids.Empty, gas.NewMeter(s.gasLimit))
	owner, err := ext.GetOwner(uint32(args.Item), uint32(args.Collection))
	switch {
	case errors.Is(err, psp02ext.ErrOperationFailed):
		reply.Found = false
		return nil
	case err != nil:
		return err
	default:
		reply.Found = true
		reply.Owner = owner
		return nil
	}
}

// TransferArgs are the arguments to Transfer
type TransferArgs struct {
	api.FromArgs
	api.ItemArgs
	Dest ids.ID `json:"dest"`
}

// Transfer moves an item from its owner to [Dest]. Success is false if the
// token module rejected the transfer. The weight is charged either way.
func (s *Service) Transfer(r *http.Request, args *TransferArgs, reply *api.MeteredResponse) error {
	s.log.Debug("API called",
		zap.String("service", "psp02"),
		zap.String("method", "transfer"),
		zap.Stringer("from", args.From),
		zap.Uint32("collection", uint32(args.Collection)),
		zap.Uint32("item", uint32(args.Item)),
		zap.Stringer("dest", args.Dest),
	)

	meter := gas.NewMeter(s.gasLimit)
	ext := s.extension(r, args.From, meter)
	err := ext.TransferNFT(uint32(args.Item), args.Dest, uint32(args.Collection))
	if err != nil && !errors.Is(err, psp02ext.ErrOperationFailed) {
		return err
	}
	reply.Success = err == nil
	reply.GasUsed = json.Uint64(meter.Consumed())
	return nil
}

// CreateCollectionArgs are the arguments to CreateCollection
type CreateCollectionArgs struct {
	api.FromArgs
	Collection json.Uint32 `json:"collection"`
}

// CreateCollection creates a collection administered by [From]
func (s *Service) CreateCollection(_ *http.Request, args *CreateCollectionArgs, reply *api.MeteredResponse) error {
	s.log.Debug("API called",
		zap.String("service", "psp02"),
		zap.String("method", "createCollection"),
		zap.Stringer("from", args.From),
		zap.Uint32("collection", uint32(args.Collection)),
	)

	return s.metered(reply, s.weights.CreateCollection(), func() error {
		return s.module.CreateCollection(args.From, uniques.CollectionID(args.Collection))
	})
}

// MintArgs are the arguments to Mint
type MintArgs struct {
	api.FromArgs
	api.ItemArgs
	Owner ids.ID `json:"owner"`
}

// Mint creates an item owned by [Owner]. [From] must administer the
// collection.
func (s *Service) Mint(_ *http.Request, args *MintArgs, reply *api.MeteredResponse) error {
	s.log.Debug("API called",
		zap.String("service", "psp02"),
		zap.String("method", "mint"),
		zap.Stringer("from", args.From),
		zap.Uint32("collection", uint32(args.Collection)),
		zap.Uint32("item", uint32(args.Item)),
		zap.Stringer("owner", args.Owner),
	)

	return s.metered(reply, s.weights.Mint(), func() error {
		return s.module.Mint(
			args.From,
			uniques.CollectionID(args.Collection),
			uniques.ItemID(args.Item),
			args.Owner,
		)
	})
}

// BurnArgs are the arguments to Burn
type BurnArgs struct {
	api.FromArgs
	api.ItemArgs
}

// Burn destroys an item owned by [From]
func (s *Service) Burn(_ *http.Request, args *BurnArgs, reply *api.MeteredResponse) error {
	s.log.Debug("API called",
		zap.String("service", "psp02"),
		zap.String("method", "burn"),
		zap.Stringer("from", args.From),
		zap.Uint32("collection", uint32(args.Collection)),
		zap.Uint32("item", uint32(args.Item)),
	)

	return s.metered(reply, s.weights.Burn(), func() error {
		return s.module.Burn(
			args.From,
			uniques.CollectionID(args.Collection),
			uniques.ItemID(args.Item),
		)
	})
}

// ItemActionArgs are the arguments to calls where [From] acts on a single
// item
type ItemActionArgs struct {
	api.FromArgs
	api.ItemArgs
}

// Freeze disallows transfers of an item. [From] must administer the
// collection.
func (s *Service) Freeze(_ *http.Request, args *ItemActionArgs, reply *api.MeteredResponse) error {
	s.log.Debug("API called",
		zap.String("service", "psp02"),
		zap.String("method", "freeze"),
		zap.Stringer("from", args.From),
		zap.Uint32("collection", uint32(args.Collection)),
		zap.Uint32("item", uint32(args.Item)),
	)

	return s.metered(reply, s.weights.Freeze(), func() error {
		return s.module.Freeze(
			args.From,
			uniques.CollectionID(args.Collection),
			uniques.ItemID(args.Item),
		)
	})
}

// Thaw re-allows transfers of a frozen item. It costs the same as Freeze.
func (s *Service) Thaw(_ *http.Request, args *ItemActionArgs, reply *api.MeteredResponse) error {
	s.log.Debug("API called",
		zap.String("service", "psp02"),
		zap.String("method", "thaw"),
		zap.Stringer("from", args.From),
		zap.Uint32("collection", uint32(args.Collection)),
		zap.Uint32("item", uint32(args.Item)),
	)

	return s.metered(reply, s.weights.Freeze(), func() error {
		return s.module.Thaw(
			args.From,
			uniques.CollectionID(args.Collection),
			uniques.ItemID(args.Item),
		)
	})
}

// ApproveTransferArgs are the arguments to ApproveTransfer
type ApproveTransferArgs struct {
	api.FromArgs
	api.ItemArgs
	Delegate ids.ID `json:"delegate"`
}

// ApproveTransfer lets [Delegate] transfer an item owned by [From] once
func (s *Service) ApproveTransfer(_ *http.Request, args *ApproveTransferArgs, reply *api.MeteredResponse) error {
	s.log.Debug("API called",
		zap.String("service", "psp02"),
		zap.String("method", "approveTransfer"),
		zap.Stringer("from", args.From),
		zap.Uint32("collection", uint32(args.Collection)),
		zap.Uint32("item", uint32(args.Item)),
		zap.Stringer("delegate", args.Delegate),
	)

	return s.metered(reply, s.weights.ApproveTransfer(), func() error {
		return s.module.ApproveTransfer(
			args.From,
			uniques.CollectionID(args.Collection),
			uniques.ItemID(args.Item),
			args.Delegate,
		)
	})
}

// CancelApproval removes the delegate of an item owned by [From]. It costs
// the same as ApproveTransfer.
func (s *Service) CancelApproval(_ *http.Request, args *ItemActionArgs, reply *api.MeteredResponse) error {
	s.log.Debug("API called",
		zap.String("service", "psp02"),
		zap.String("method", "cancelApproval"),
		zap.Stringer("from", args.From),
		zap.Uint32("collection", uint32(args.Collection)),
		zap.Uint32("item", uint32(args.Item)),
	)

	return s.metered(reply, s.weights.ApproveTransfer(), func() error {
		return s.module.CancelApproval(
			args.From,
			uniques.CollectionID(args.Collection),
			uniques.ItemID(args.Item),
		)
	})
}

// GetCollectionArgs are the arguments to GetCollection
type GetCollectionArgs struct {
	Collection json.Uint32 `json:"collection"`
}

// GetCollectionReply is the response from calling GetCollection
type GetCollectionReply struct {
	Owner ids.ID        `json:"owner"`
	Items []json.Uint32 `json:"items"`
}

// GetCollection returns the admin and the items of a collection
func (s *Service) GetCollection(_ *http.Request, args *GetCollectionArgs, reply *GetCollectionReply) error {
	s.log.Debug("API called",
		zap.String("service", "psp02"),
		zap.String("method", "getCollection"),
		zap.Uint32("collection", uint32(args.Collection)),
	)

	collection, err := s.module.Collection(uniques.CollectionID(args.Collection))
	if err != nil {
		return err
	}
	items, err := s.module.Items(uniques.CollectionID(args.Collection))
	if err != nil {
		return err
	}

	reply.Owner = collection.Owner
	reply.Items = make([]json.Uint32, len(items))
	for i, item := range items {
		reply.Items[i] = json.Uint32(item)
	}
	return nil
}

// metered charges [weight] to a fresh meter and runs [op] if the charge
// succeeds.
func (s *Service) metered(reply *api.MeteredResponse, weight gas.Gas, op func() error) error {
	meter := gas.NewMeter(s.gasLimit)
	if _, err := meter.Charge(weight); err != nil {
		return err
	}
	if err := op(); err != nil {
		return err
	}
	reply.Success = true
	reply.GasUsed = json.Uint64(meter.Consumed())
	return nil
}
