// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chainext routes calls made by contracts into native runtime
// extensions. A 32 bit call id names the extension in its upper 16 bits and
// the function within the extension in its lower 16 bits.
package chainext

import "github.com/ava-labs/nftext/vms/components/gas"

// Extension handles every call routed to its extension id.
type Extension interface {
	// Call returns an error if the call must be aborted. Failures the calling
	// contract is expected to handle are reported through the RetVal.
	Call(env Environment) (RetVal, error)
}

// RetVal is the result of a call that wasn't aborted.
type RetVal struct {
	// Flags is the status code returned to the contract when the call
	// converges, or the return flags of the contract when it diverges.
	Flags uint32
	// Data is returned as the contract's output when the call diverges.
	Data []byte
	// Diverging calls end the calling contract's execution.
	Diverging bool
}

// Converging returns [status] to the calling contract, which then continues.
func Converging(status uint32) RetVal {
	return RetVal{Flags: status}
}

// Schedule holds the costs of the contract VM host functions.
type Schedule struct {
	// Overhead approximates the cost of crossing from the contract into the
	// runtime.
	Overhead gas.Gas `json:"overhead"`
}

// DefaultSchedule is the schedule used unless configured otherwise.
var DefaultSchedule = Schedule{
	Overhead: 1_024,
}

func (s Schedule) HostFnOverhead() gas.Gas {
	return s.Overhead
}
