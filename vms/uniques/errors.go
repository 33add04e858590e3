// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package uniques

import "errors"

var (
	ErrAlreadyExists     = errors.New("already exists")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownItem       = errors.New("unknown item")
	ErrNoPermission      = errors.New("origin has no permission")
	ErrFrozen            = errors.New("item is frozen")
	ErrNoDelegate        = errors.New("item has no approved delegate")
)
