// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package psp02ext is the contract side of the PSP-02 chain extension. It
// turns NFT owner queries and transfers into chain extension calls and
// decodes their results.
package psp02ext

import (
	"errors"
	"fmt"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/vms/chainext/psp02"
	"github.com/ava-labs/nftext/vms/uniques"
)

const (
	ExtensionID    uint16 = 2
	GetOwnerFuncID uint16 = 0x162d
	TransferFuncID uint16 = 0xdb20

	// Selectors are the full 32 bit chain extension call ids.
	GetOwnerSelector uint32 = uint32(ExtensionID)<<16 | uint32(GetOwnerFuncID)
	TransferSelector uint32 = uint32(ExtensionID)<<16 | uint32(TransferFuncID)
)

// ErrOperationFailed is the only error the extension reports.
var ErrOperationFailed = errors.New("operation failed")

// Backend performs chain extension calls for the contract.
type Backend interface {
	// CallChainExtension returns the status code and output of the call
	// named by [id]. An error means the call was aborted.
	CallChainExtension(id uint32, input []byte) (status uint32, output []byte, err error)
}

// FromStatusCode maps a status code returned by the runtime to an error.
// Codes outside the known set are a defect and panic.
func FromStatusCode(status uint32) error {
	switch status {
	case psp02.StatusSuccess:
		return nil
	case psp02.StatusTransferFailed:
		return ErrOperationFailed
	default:
		panic(fmt.Sprintf("encountered unknown status code %d", status))
	}
}

// Extension exposes the PSP-02 functions as Go calls.
type Extension struct {
	backend Backend
}

func NewExtension(backend Backend) *Extension {
	return &Extension{backend: backend}
}

// GetOwner returns the owner of item [assetID] in [collectionID]. An item
// without an owner is reported as ErrOperationFailed.
func (e *Extension) GetOwner(assetID uint32, collectionID uint32) (ids.ID, error) {
	query := psp02.OwnerQuery{
		Collection: uniques.CollectionID(collectionID),
		Item:       uniques.ItemID(assetID),
	}
	status, output, err := e.backend.CallChainExtension(GetOwnerSelector, query.Bytes())
	if err != nil {
		return ids.Empty, err
	}
	if err := FromStatusCode(status); err != nil {
		return ids.Empty, err
	}

	owner, ok, err := psp02.ParseOwner(output)
	if err != nil {
		panic(fmt.Sprintf("encountered unexpected invalid encoding: %s", err))
	}
	if !ok {
		return ids.Empty, ErrOperationFailed
	}
	return owner, nil
}

// TransferNFT moves item [assetID] of [collectionID] from the contract's
// caller to [dest].
func (e *Extension) TransferNFT(assetID uint32, dest ids.ID, collectionID uint32) error {
	request := psp02.TransferRequest{
		Collection: uniques.CollectionID(collectionID),
		Item:       uniques.ItemID(assetID),
		Dest:       dest,
	}
	status, _, err := e.backend.CallChainExtension(TransferSelector, request.Bytes())
	if err != nil {
		return err
	}
	return FromStatusCode(status)
}
