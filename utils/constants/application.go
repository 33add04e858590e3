// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// Const variables to be exported
const (
	AppName = "nftext"
	Version = "v0.1.0"

	// DefaultGasLimit is the weight budget handed to a single extension call
	// when none is configured.
	DefaultGasLimit uint64 = 1_000_000

	EnvPrefix = "NFTEXT"
)
