// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package psp02 exposes the NFT owner query and transfer operations of a
// token module to contracts through the chain extension interface.
package psp02

import (
	"errors"
	"fmt"
)

// ExtensionID is the id PSP-02 is registered under.
const ExtensionID uint16 = 2

const (
	QueryOwner FuncID = 0x162d
	Transfer   FuncID = 0xdb20
)

var ErrUnregisteredFuncID = errors.New("unregistered function id")

type FuncID uint16

// ParseFuncID returns [id] if it names a PSP-02 function.
func ParseFuncID(id uint16) (FuncID, error) {
	switch funcID := FuncID(id); funcID {
	case QueryOwner, Transfer:
		return funcID, nil
	default:
		return 0, fmt.Errorf("%w: 0x%04x", ErrUnregisteredFuncID, id)
	}
}

func (f FuncID) String() string {
	switch f {
	case QueryOwner:
		return "queryOwner"
	case Transfer:
		return "transfer"
	default:
		return fmt.Sprintf("unknown(0x%04x)", uint16(f))
	}
}
