// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package node

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftext/api"
	"github.com/ava-labs/nftext/config"
	"github.com/ava-labs/nftext/database/factory"
	"github.com/ava-labs/nftext/database/memdb"
	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/trace"
	"github.com/ava-labs/nftext/utils/json"
	"github.com/ava-labs/nftext/utils/logging"
	"github.com/ava-labs/nftext/vms/chainext"
	"github.com/ava-labs/nftext/vms/chainext/psp02"
	"github.com/ava-labs/nftext/vms/uniques"
	"github.com/ava-labs/nftext/vms/wasmvm"

	psp02api "github.com/ava-labs/nftext/api/psp02"
	wasmapi "github.com/ava-labs/nftext/api/wasm"
)

var (
	alice = ids.FromSeed("alice")
	bob   = ids.FromSeed("bob")
)

func testConfig() *config.Config {
	return &config.Config{
		LoggingConfig: logging.Config{
			LogLevel: logging.Off,
			Format:   logging.JSONFormat,
		},
		DatabaseConfig: factory.DatabaseConfig{
			Name: memdb.Name,
		},
		HTTPHost:           "127.0.0.1",
		HTTPAllowedOrigins: []string{"*"},
		GasLimit:           1_000_000,
		Schedule:           chainext.DefaultSchedule,
		Weights:            uniques.DefaultWeights,
		GenesisCollections: []uniques.GenesisCollection{{
			ID:    1,
			Owner: alice,
			Items: []uniques.ItemID{7},
		}},
		TraceConfig: trace.Config{
			ExporterConfig: trace.ExporterConfig{
				Type: trace.NoOp,
			},
		},
	}
}

func newTestNode(t *testing.T, c *config.Config) (*Node, error) {
	t.Helper()

	logFactory := logging.NewFactory(c.LoggingConfig)
	t.Cleanup(logFactory.Close)
	log, err := logFactory.Make("main")
	require.NoError(t, err)
	return New(c, logFactory, log)
}

func TestNodeServesPSP02(t *testing.T) {
	require := require.New(t)

	n, err := newTestNode(t, testConfig())
	require.NoError(err)

	dispatchErr := make(chan error, 1)
	go func() {
		dispatchErr <- n.Dispatch()
	}()

	uri := fmt.Sprintf("http://%s", n.Addr())
	client := psp02api.NewClient(uri)
	ctx := context.Background()

	owner, found, err := client.GetOwner(ctx, 1, 7)
	require.NoError(err)
	require.True(found)
	require.Equal(alice, owner)

	ok, gasUsed, err := client.Transfer(ctx, alice, 1, 7, bob)
	require.NoError(err)
	require.True(ok)
	require.Equal(
		uint64(uniques.DefaultWeights.Transfer()+chainext.DefaultSchedule.HostFnOverhead()),
		gasUsed,
	)

	owner, found, err = client.GetOwner(ctx, 1, 7)
	require.NoError(err)
	require.True(found)
	require.Equal(bob, owner)

	resp, err := http.Get(uri + "/ext/metrics")
	require.NoError(err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Equal(http.StatusOK, resp.StatusCode)
	require.Contains(string(body), "nftext_psp02_calls")

	n.Shutdown(0)
	require.NoError(<-dispatchErr)
	require.Zero(n.ExitCode())
}

func TestNodeRunsContracts(t *testing.T) {
	require := require.New(t)

	n, err := newTestNode(t, testConfig())
	require.NoError(err)

	dispatchErr := make(chan error, 1)
	go func() {
		dispatchErr <- n.Dispatch()
	}()

	uri := fmt.Sprintf("http://%s", n.Addr())
	client := wasmapi.NewClient(uri)
	ctx := context.Background()

	contractID, err := client.Deploy(ctx, wasmvm.ForwarderWasm)
	require.NoError(err)

	input := psp02.TransferRequest{Collection: 1, Item: 7, Dest: bob}.Bytes()
	reply, err := client.Call(ctx, &wasmapi.CallArgs{
		FromArgs:   api.FromArgs{From: alice},
		ContractID: contractID,
		Function:   "call",
		Params: []json.Uint64{
			json.Uint64(chainext.JoinID(psp02.ExtensionID, uint16(psp02.Transfer))),
			0,
			json.Uint64(len(input)),
			512,
			1024,
		},
		Writes: []wasmapi.MemoryWrite{
			{Offset: 0, Data: input},
			{Offset: 1024, Data: binary.LittleEndian.AppendUint32(nil, 0)},
		},
	})
	require.NoError(err)
	require.Equal([]json.Uint64{json.Uint64(psp02.StatusSuccess)}, reply.Results)

	owner, found, err := psp02api.NewClient(uri).GetOwner(ctx, 1, 7)
	require.NoError(err)
	require.True(found)
	require.Equal(bob, owner)

	n.Shutdown(0)
	require.NoError(<-dispatchErr)
}

func TestNodeInvalidDatabase(t *testing.T) {
	c := testConfig()
	c.DatabaseConfig.Name = "unknown"

	_, err := newTestNode(t, c)
	require.ErrorContains(t, err, "problem initializing database")
}

func TestNodeShutdownBeforeDispatch(t *testing.T) {
	require := require.New(t)

	n, err := newTestNode(t, testConfig())
	require.NoError(err)

	n.Shutdown(2)
	n.Shutdown(3)
	require.ErrorIs(n.Dispatch(), errShuttingDown)
	require.Equal(2, n.ExitCode())
}
