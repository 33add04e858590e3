// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMeterCharge(t *testing.T) {
	tests := []struct {
		name              string
		limit             Gas
		charges           []Gas
		expectedErr       error
		expectedConsumed  Gas
		expectedRemaining Gas
	}{
		{
			name:              "no charges",
			limit:             100,
			expectedConsumed:  0,
			expectedRemaining: 100,
		},
		{
			name:              "exact limit",
			limit:             100,
			charges:           []Gas{40, 60},
			expectedConsumed:  100,
			expectedRemaining: 0,
		},
		{
			name:              "out of gas consumes nothing",
			limit:             100,
			charges:           []Gas{40, 61},
			expectedErr:       ErrOutOfGas,
			expectedConsumed:  40,
			expectedRemaining: 60,
		},
		{
			name:              "overflow",
			limit:             math.MaxUint64,
			charges:           []Gas{1, math.MaxUint64},
			expectedErr:       ErrOutOfGas,
			expectedConsumed:  1,
			expectedRemaining: math.MaxUint64 - 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			meter := NewMeter(test.limit)
			var err error
			for _, charge := range test.charges {
				var charged Gas
				charged, err = meter.Charge(charge)
				if err != nil {
					require.Zero(charged)
					break
				}
				require.Equal(charge, charged)
			}
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expectedConsumed, meter.Consumed())
			require.Equal(test.expectedRemaining, meter.Remaining())
			require.Equal(test.limit, meter.Limit())
		})
	}
}

func TestGasSaturatingAdd(t *testing.T) {
	require := require.New(t)

	require.Equal(Gas(3), Gas(1).SaturatingAdd(2))
	require.Equal(Gas(math.MaxUint64), Gas(math.MaxUint64).SaturatingAdd(1))
}
