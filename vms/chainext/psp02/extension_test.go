// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package psp02_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftext/database/memdb"
	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/logging"
	"github.com/ava-labs/nftext/utils/wrappers"
	"github.com/ava-labs/nftext/vms/chainext"
	"github.com/ava-labs/nftext/vms/chainext/chainextmock"
	"github.com/ava-labs/nftext/vms/chainext/psp02"
	"github.com/ava-labs/nftext/vms/chainext/psp02/psp02mock"
	"github.com/ava-labs/nftext/vms/components/gas"
	"github.com/ava-labs/nftext/vms/uniques"
)

var (
	errTest = errors.New("non-nil error")

	alice = ids.FromSeed("alice")
	bob   = ids.FromSeed("bob")

	transferWeight = uniques.DefaultWeights.Transfer().SaturatingAdd(chainext.DefaultSchedule.HostFnOverhead())
)

func newEnv(funcID psp02.FuncID, input []byte, caller ids.ID, meter chainext.Meter) *chainext.BufferEnv {
	return chainext.NewEnvironment(
		context.Background(),
		chainext.JoinID(psp02.ExtensionID, uint16(funcID)),
		input,
		psp02.MaxOwnerResultLen,
		caller,
		meter,
	)
}

func TestParseFuncID(t *testing.T) {
	tests := []struct {
		id          uint16
		expected    psp02.FuncID
		expectedErr error
	}{
		{
			id:       0x162d,
			expected: psp02.QueryOwner,
		},
		{
			id:       0xdb20,
			expected: psp02.Transfer,
		},
		{
			id:          0x0000,
			expectedErr: psp02.ErrUnregisteredFuncID,
		},
		{
			id:          0x162e,
			expectedErr: psp02.ErrUnregisteredFuncID,
		},
	}
	for _, test := range tests {
		t.Run(chainext.FuncLabel(test.id), func(t *testing.T) {
			require := require.New(t)

			funcID, err := psp02.ParseFuncID(test.id)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expected, funcID)
		})
	}
}

func TestUnregisteredFuncID(t *testing.T) {
	for _, id := range []uint16{0x0000, 0x162c, 0x162e, 0xdb1f, 0xdb21, 0xbeef} {
		t.Run(chainext.FuncLabel(id), func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			// The module, weights and schedule have no expectations, so any
			// call on them fails the test.
			ext := psp02.New(
				logging.NoLog{},
				psp02mock.NewTokenModule(ctrl),
				psp02mock.NewWeightInfo(ctrl),
				psp02mock.NewSchedule(ctrl),
			)

			env := chainextmock.NewEnvironment(ctrl)
			env.EXPECT().FuncID().Return(id).AnyTimes()

			_, err := ext.Call(env)
			require.ErrorIs(err, psp02.ErrUnregisteredFuncID)
		})
	}
}

func TestQueryOwner(t *testing.T) {
	tests := []struct {
		name           string
		owner          ids.ID
		found          bool
		moduleErr      error
		expectedOutput []byte
		expectedErr    error
	}{
		{
			name:           "owned",
			owner:          alice,
			found:          true,
			expectedOutput: append([]byte{0x01}, alice[:]...),
		},
		{
			name:           "no owner",
			expectedOutput: []byte{0x00},
		},
		{
			name:        "storage failure",
			moduleErr:   errTest,
			expectedErr: errTest,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			module := psp02mock.NewTokenModule(ctrl)
			module.EXPECT().Owner(uniques.CollectionID(1), uniques.ItemID(7)).Return(test.owner, test.found, test.moduleErr)

			// Owner queries aren't metered.
			meter := gas.NewMeter(0)
			ext := psp02.New(logging.NoLog{}, module, uniques.DefaultWeights, chainext.DefaultSchedule)
			env := newEnv(psp02.QueryOwner, psp02.OwnerQuery{Collection: 1, Item: 7}.Bytes(), bob, meter)

			retVal, err := ext.Call(env)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}
			require.Equal(chainext.Converging(psp02.StatusSuccess), retVal)
			require.Equal(test.expectedOutput, env.Output())
			require.Zero(meter.Consumed())
		})
	}
}

func TestQueryOwnerMalformedInput(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	ext := psp02.New(logging.NoLog{}, psp02mock.NewTokenModule(ctrl), uniques.DefaultWeights, chainext.DefaultSchedule)
	env := newEnv(psp02.QueryOwner, []byte{0x01, 0x00, 0x00}, bob, gas.NewMeter(0))

	_, err := ext.Call(env)
	require.ErrorIs(err, wrappers.ErrInsufficientLength)
}

func TestTransferChargesBeforeTransfer(t *testing.T) {
	tests := []struct {
		name           string
		moduleErr      error
		expectedStatus uint32
	}{
		{
			name:           "accepted",
			expectedStatus: psp02.StatusSuccess,
		},
		{
			name:           "rejected",
			moduleErr:      uniques.ErrNoPermission,
			expectedStatus: psp02.StatusTransferFailed,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			weights := psp02mock.NewWeightInfo(ctrl)
			weights.EXPECT().Transfer().Return(gas.Gas(37_000))
			schedule := psp02mock.NewSchedule(ctrl)
			schedule.EXPECT().HostFnOverhead().Return(gas.Gas(1_000))
			module := psp02mock.NewTokenModule(ctrl)

			input := psp02.TransferRequest{Collection: 1, Item: 7, Dest: bob}.Bytes()
			env := chainextmock.NewEnvironment(ctrl)
			env.EXPECT().FuncID().Return(uint16(psp02.Transfer)).AnyTimes()
			gomock.InOrder(
				env.EXPECT().ChargeWeight(gas.Gas(38_000)).Return(gas.Gas(38_000), nil),
				env.EXPECT().Input().Return(input),
				env.EXPECT().Caller().Return(alice),
				module.EXPECT().Transfer(alice, uniques.CollectionID(1), uniques.ItemID(7), bob).Return(test.moduleErr),
			)

			ext := psp02.New(logging.NoLog{}, module, weights, schedule)
			retVal, err := ext.Call(env)
			require.NoError(err)
			require.Equal(chainext.Converging(test.expectedStatus), retVal)
		})
	}
}

func TestTransferOutOfGas(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	meter := gas.NewMeter(transferWeight - 1)
	ext := psp02.New(logging.NoLog{}, psp02mock.NewTokenModule(ctrl), uniques.DefaultWeights, chainext.DefaultSchedule)
	env := newEnv(psp02.Transfer, psp02.TransferRequest{Collection: 1, Item: 7, Dest: bob}.Bytes(), alice, meter)

	_, err := ext.Call(env)
	require.ErrorIs(err, gas.ErrOutOfGas)
	require.Zero(meter.Consumed())
}

func TestTransferMalformedInputKeepsCharge(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	meter := gas.NewMeter(transferWeight)
	ext := psp02.New(logging.NoLog{}, psp02mock.NewTokenModule(ctrl), uniques.DefaultWeights, chainext.DefaultSchedule)
	input := append(psp02.TransferRequest{Collection: 1, Item: 7, Dest: bob}.Bytes(), 0x00)
	env := newEnv(psp02.Transfer, input, alice, meter)

	_, err := ext.Call(env)
	require.ErrorIs(err, wrappers.ErrTrailingBytes)
	require.Equal(transferWeight, meter.Consumed())
}

func TestTransferWithModule(t *testing.T) {
	require := require.New(t)

	module := uniques.New(memdb.New(), logging.NoLog{})
	require.NoError(module.CreateCollection(alice, 1))
	require.NoError(module.Mint(alice, 1, 7, alice))

	ext := psp02.New(logging.NoLog{}, module, uniques.DefaultWeights, chainext.DefaultSchedule)
	input := psp02.TransferRequest{Collection: 1, Item: 7, Dest: bob}.Bytes()

	// bob doesn't own the item
	meter := gas.NewMeter(2 * transferWeight)
	retVal, err := ext.Call(newEnv(psp02.Transfer, input, bob, meter))
	require.NoError(err)
	require.Equal(chainext.Converging(psp02.StatusTransferFailed), retVal)
	require.Equal(transferWeight, meter.Consumed())

	owner, ok, err := module.Owner(1, 7)
	require.NoError(err)
	require.True(ok)
	require.Equal(alice, owner)

	retVal, err = ext.Call(newEnv(psp02.Transfer, input, alice, meter))
	require.NoError(err)
	require.Equal(chainext.Converging(psp02.StatusSuccess), retVal)
	require.Equal(2*transferWeight, meter.Consumed())

	owner, ok, err = module.Owner(1, 7)
	require.NoError(err)
	require.True(ok)
	require.Equal(bob, owner)

	env := newEnv(psp02.QueryOwner, psp02.OwnerQuery{Collection: 1, Item: 7}.Bytes(), alice, meter)
	_, err = ext.Call(env)
	require.NoError(err)
	require.Equal(append([]byte{0x01}, bob[:]...), env.Output())
}
