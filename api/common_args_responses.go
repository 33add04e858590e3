// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/json"
)

// This file contains structs used in arguments and responses in services

// SuccessResponse indicates success of an API call
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ItemArgs names an item of a collection
type ItemArgs struct {
	Collection json.Uint32 `json:"collection"`
	Item       json.Uint32 `json:"item"`
}

// FromArgs is the account an API call acts on behalf of
type FromArgs struct {
	From ids.ID `json:"from"`
}

// MeteredResponse reports the weight a call consumed
type MeteredResponse struct {
	SuccessResponse
	GasUsed json.Uint64 `json:"gasUsed"`
}
