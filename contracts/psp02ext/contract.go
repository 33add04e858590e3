// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package psp02ext

import (
	"errors"
	"fmt"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/wrappers"
)

// Message selectors of the contract.
const (
	GetOwnerMessage    uint32 = 0x3d261bd4
	TransferNFTMessage uint32 = 0xdb20f9f5
)

const (
	resultOk  byte = 0
	resultErr byte = 1

	// operationFailedIndex is the position of ErrOperationFailed in the
	// contract's error enumeration.
	operationFailedIndex byte = 0
)

var ErrUnknownMessage = errors.New("unknown message")

// Contract dispatches contract messages to the extension. Message outputs
// are encoded results: 0x00 followed by the value, or 0x01 followed by the
// error index.
type Contract struct {
	ext *Extension
}

func NewContract(ext *Extension) *Contract {
	return &Contract{ext: ext}
}

// HandleMessage runs the message named by [selector]. An error means the
// message couldn't be run. Failures of the message itself are encoded in the
// returned output.
func (c *Contract) HandleMessage(selector uint32, input []byte) ([]byte, error) {
	p := wrappers.Packer{Bytes: input}
	switch selector {
	case GetOwnerMessage:
		assetID := p.UnpackInt()
		collectionID := p.UnpackInt()
		p.ExpectEOF()
		if p.Err != nil {
			return nil, fmt.Errorf("couldn't parse get_owner arguments: %w", p.Err)
		}

		owner, err := c.ext.GetOwner(assetID, collectionID)
		return encodeResult(owner[:], err)
	case TransferNFTMessage:
		assetID := p.UnpackInt()
		var dest ids.ID
		copy(dest[:], p.UnpackFixedBytes(ids.IDLen))
		collectionID := p.UnpackInt()
		p.ExpectEOF()
		if p.Err != nil {
			return nil, fmt.Errorf("couldn't parse transfer_nft arguments: %w", p.Err)
		}

		err := c.ext.TransferNFT(assetID, dest, collectionID)
		return encodeResult(nil, err)
	default:
		return nil, fmt.Errorf("%w: 0x%08x", ErrUnknownMessage, selector)
	}
}

func encodeResult(value []byte, err error) ([]byte, error) {
	switch {
	case errors.Is(err, ErrOperationFailed):
		return []byte{resultErr, operationFailedIndex}, nil
	case err != nil:
		return nil, err
	default:
		return append([]byte{resultOk}, value...), nil
	}
}
