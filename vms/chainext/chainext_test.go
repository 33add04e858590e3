// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainext_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/logging"
	"github.com/ava-labs/nftext/vms/chainext"
	"github.com/ava-labs/nftext/vms/chainext/chainextmock"
	"github.com/ava-labs/nftext/vms/components/gas"
)

var errTest = errors.New("non-nil error")

func TestSplitJoinID(t *testing.T) {
	tests := []struct {
		name   string
		id     uint32
		extID  uint16
		funcID uint16
	}{
		{
			name:   "query owner",
			id:     0x0002162d,
			extID:  2,
			funcID: 0x162d,
		},
		{
			name:   "transfer",
			id:     0x0002db20,
			extID:  2,
			funcID: 0xdb20,
		},
		{
			name:   "max",
			id:     0xffffffff,
			extID:  0xffff,
			funcID: 0xffff,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			extID, funcID := chainext.SplitID(test.id)
			require.Equal(test.extID, extID)
			require.Equal(test.funcID, funcID)
			require.Equal(test.id, chainext.JoinID(extID, funcID))
		})
	}
}

func TestBufferEnv(t *testing.T) {
	require := require.New(t)

	caller := ids.GenerateTestID()
	meter := gas.NewMeter(100)
	env := chainext.NewEnvironment(context.Background(), 0x0002db20, []byte{0x01}, 2, caller, meter)

	require.Equal(uint16(2), env.ExtID())
	require.Equal(uint16(0xdb20), env.FuncID())
	require.Equal([]byte{0x01}, env.Input())
	require.Equal(caller, env.Caller())
	require.NotNil(env.Context())

	require.NoError(env.Write([]byte{0x01, 0x02}))
	require.Equal([]byte{0x01, 0x02}, env.Output())

	err := env.Write([]byte{0x01, 0x02, 0x03})
	require.ErrorIs(err, chainext.ErrOutputTooSmall)
	require.Equal([]byte{0x01, 0x02}, env.Output())

	charged, err := env.ChargeWeight(60)
	require.NoError(err)
	require.Equal(gas.Gas(60), charged)

	_, err = env.ChargeWeight(41)
	require.ErrorIs(err, gas.ErrOutOfGas)
	require.Equal(gas.Gas(60), meter.Consumed())
}

func TestRegistry(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	ext := chainextmock.NewExtension(ctrl)
	registry := chainext.NewRegistry(logging.NoLog{})

	require.NoError(registry.Register(7, ext))
	require.NoError(registry.Register(2, ext))
	err := registry.Register(2, ext)
	require.ErrorIs(err, chainext.ErrDuplicateExtension)
	require.Equal([]uint16{2, 7}, registry.IDs())

	env := chainext.NewEnvironment(context.Background(), chainext.JoinID(2, 1), nil, 0, ids.Empty, gas.NewMeter(0))
	ext.EXPECT().Call(env).Return(chainext.Converging(1), nil)

	retVal, err := registry.Call(env)
	require.NoError(err)
	require.Equal(chainext.Converging(1), retVal)

	// No extension is called for an unknown id.
	env = chainext.NewEnvironment(context.Background(), chainext.JoinID(3, 1), nil, 0, ids.Empty, gas.NewMeter(0))
	_, err = registry.Call(env)
	require.ErrorIs(err, chainext.ErrUnknownExtension)
}

func TestMeteredExtension(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	inner := chainextmock.NewExtension(ctrl)
	reg := prometheus.NewRegistry()
	ext, err := chainext.NewMeteredExtension(inner, "psp02", reg)
	require.NoError(err)

	env := chainextmock.NewEnvironment(ctrl)
	env.EXPECT().FuncID().Return(uint16(0xdb20)).AnyTimes()
	gomock.InOrder(
		inner.EXPECT().Call(env).Return(chainext.Converging(0), nil),
		inner.EXPECT().Call(env).Return(chainext.Converging(1), nil),
		inner.EXPECT().Call(env).Return(chainext.RetVal{}, errTest),
	)

	_, err = ext.Call(env)
	require.NoError(err)
	_, err = ext.Call(env)
	require.NoError(err)
	_, err = ext.Call(env)
	require.ErrorIs(err, errTest)

	count, err := testutil.GatherAndCount(reg, "psp02_calls")
	require.NoError(err)
	require.Equal(2, count) // one series per status

	count, err = testutil.GatherAndCount(reg, "psp02_call_errors")
	require.NoError(err)
	require.Equal(1, count)

	// Registering the same namespace twice fails.
	_, err = chainext.NewMeteredExtension(inner, "psp02", reg)
	require.Error(err)
}

func TestTracedExtension(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := provider.Tracer("test")

	inner := chainextmock.NewExtension(ctrl)
	ext := chainext.NewTracedExtension(inner, "psp02", tracer)

	env := chainext.NewEnvironment(context.Background(), 0x0002162d, []byte{0x01}, 33, ids.Empty, gas.NewMeter(0))
	gomock.InOrder(
		inner.EXPECT().Call(gomock.Any()).DoAndReturn(func(env chainext.Environment) (chainext.RetVal, error) {
			// The wrapped environment forwards everything but the context.
			require.Equal(uint16(0x162d), env.FuncID())
			require.NotEqual(context.Background(), env.Context())
			return chainext.Converging(0), nil
		}),
		inner.EXPECT().Call(gomock.Any()).Return(chainext.RetVal{}, errTest),
	)

	_, err := ext.Call(env)
	require.NoError(err)
	_, err = ext.Call(env)
	require.ErrorIs(err, errTest)

	spans := recorder.Ended()
	require.Len(spans, 2)
	require.Equal("psp02.call", spans[0].Name())
	require.Equal(codes.Unset, spans[0].Status().Code)
	require.Equal(codes.Error, spans[1].Status().Code)
}
