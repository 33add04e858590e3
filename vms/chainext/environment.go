// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainext

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/vms/components/gas"
)

var (
	_ Environment = (*BufferEnv)(nil)

	ErrOutputTooSmall = errors.New("output buffer too small")
)

// Environment is everything an extension can see of, and do to, the call
// that invoked it.
type Environment interface {
	// ExtID is the upper 16 bits of the call id.
	ExtID() uint16
	// FuncID is the lower 16 bits of the call id.
	FuncID() uint16
	// Input is the raw call payload.
	Input() []byte
	// Write replaces the output returned to the caller. It fails with
	// ErrOutputTooSmall if [data] doesn't fit in the caller's buffer.
	Write(data []byte) error
	// ChargeWeight charges [amount] against the caller's budget and returns
	// the charged amount.
	ChargeWeight(amount gas.Gas) (gas.Gas, error)
	// Caller is the account that made the call.
	Caller() ids.ID
	Context() context.Context
}

// Meter is the budget a call's weight is charged against.
type Meter interface {
	Charge(amount gas.Gas) (gas.Gas, error)
}

// BufferEnv is an Environment over an in-memory input and output buffer.
type BufferEnv struct {
	ctx    context.Context
	id     uint32
	input  []byte
	output []byte
	outCap uint32
	caller ids.ID
	meter  Meter
}

func NewEnvironment(
	ctx context.Context,
	id uint32,
	input []byte,
	outCap uint32,
	caller ids.ID,
	meter Meter,
) *BufferEnv {
	return &BufferEnv{
		ctx:    ctx,
		id:     id,
		input:  input,
		outCap: outCap,
		caller: caller,
		meter:  meter,
	}
}

func (e *BufferEnv) ExtID() uint16 {
	extID, _ := SplitID(e.id)
	return extID
}

func (e *BufferEnv) FuncID() uint16 {
	_, funcID := SplitID(e.id)
	return funcID
}

func (e *BufferEnv) Input() []byte {
	return e.input
}

func (e *BufferEnv) Write(data []byte) error {
	if len(data) > int(e.outCap) {
		return fmt.Errorf("%w: writing %d bytes with capacity %d", ErrOutputTooSmall, len(data), e.outCap)
	}
	e.output = slices.Clone(data)
	return nil
}

// Output is the last value passed to Write.
func (e *BufferEnv) Output() []byte {
	return e.output
}

func (e *BufferEnv) ChargeWeight(amount gas.Gas) (gas.Gas, error) {
	return e.meter.Charge(amount)
}

func (e *BufferEnv) Caller() ids.ID {
	return e.caller
}

func (e *BufferEnv) Context() context.Context {
	return e.ctx
}
