// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gas

import (
	"errors"
	"fmt"

	safemath "github.com/ava-labs/nftext/utils/math"
)

var ErrOutOfGas = errors.New("out of gas")

// Meter tracks the gas consumed by a single call against a fixed limit. A
// Meter is not safe for concurrent use.
type Meter struct {
	limit    Gas
	consumed Gas
}

func NewMeter(limit Gas) *Meter {
	return &Meter{limit: limit}
}

// Charge consumes [amount] and returns it. If [amount] exceeds the remaining
// budget nothing is consumed and ErrOutOfGas is returned.
func (m *Meter) Charge(amount Gas) (Gas, error) {
	consumed, err := safemath.Add(m.consumed, amount)
	if err != nil || consumed > m.limit {
		return 0, fmt.Errorf("%w: charging %d with %d remaining", ErrOutOfGas, amount, m.Remaining())
	}
	m.consumed = consumed
	return amount, nil
}

func (m *Meter) Consumed() Gas {
	return m.consumed
}

func (m *Meter) Remaining() Gas {
	return m.limit - m.consumed
}

func (m *Meter) Limit() Gas {
	return m.limit
}
