// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package uniques

import "github.com/ava-labs/nftext/vms/components/gas"

var (
	_ WeightInfo = Weights{}

	// DefaultWeights are flat per-operation costs for the reference module.
	DefaultWeights = Weights{
		CreateCollectionCost: 32_000,
		MintCost:             39_000,
		BurnCost:             41_000,
		TransferCost:         37_000,
		FreezeCost:           27_000,
		ApproveTransferCost:  26_000,
	}
)

// WeightInfo declares the base weight of each module operation.
type WeightInfo interface {
	CreateCollection() gas.Gas
	Mint() gas.Gas
	Burn() gas.Gas
	Transfer() gas.Gas
	Freeze() gas.Gas
	ApproveTransfer() gas.Gas
}

// Weights is a WeightInfo with a constant cost per operation. Thaw costs the
// same as Freeze and CancelApproval the same as ApproveTransfer.
type Weights struct {
	CreateCollectionCost gas.Gas `json:"createCollection"`
	MintCost             gas.Gas `json:"mint"`
	BurnCost             gas.Gas `json:"burn"`
	TransferCost         gas.Gas `json:"transfer"`
	FreezeCost           gas.Gas `json:"freeze"`
	ApproveTransferCost  gas.Gas `json:"approveTransfer"`
}

func (w Weights) CreateCollection() gas.Gas {
	return w.CreateCollectionCost
}

func (w Weights) Mint() gas.Gas {
	return w.MintCost
}

func (w Weights) Burn() gas.Gas {
	return w.BurnCost
}

func (w Weights) Transfer() gas.Gas {
	return w.TransferCost
}

func (w Weights) Freeze() gas.Gas {
	return w.FreezeCost
}

func (w Weights) ApproveTransfer() gas.Gas {
	return w.ApproveTransferCost
}
