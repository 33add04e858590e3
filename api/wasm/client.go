// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wasm

import (
	"context"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/rpc"
)

var _ Client = (*client)(nil)

// Client interface for interacting with the wasm endpoint
type Client interface {
	Deploy(ctx context.Context, code []byte, options ...rpc.Option) (ids.ID, error)
	Call(ctx context.Context, args *CallArgs, options ...rpc.Option) (*CallReply, error)
}

type client struct {
	requester rpc.EndpointRequester
}

func NewClient(uri string) Client {
	return &client{requester: rpc.NewEndpointRequester(
		uri + "/ext/" + Endpoint,
	)}
}

func (c *client) Deploy(ctx context.Context, code []byte, options ...rpc.Option) (ids.ID, error) {
	res := &DeployReply{}
	err := c.requester.SendRequest(ctx, "wasm.deploy", &DeployArgs{
		Code: code,
	}, res, options...)
	return res.ContractID, err
}

func (c *client) Call(ctx context.Context, args *CallArgs, options ...rpc.Option) (*CallReply, error) {
	res := &CallReply{}
	err := c.requester.SendRequest(ctx, "wasm.call", args, res, options...)
	return res, err
}
