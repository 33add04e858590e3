// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package psp02

import (
	"context"

	"github.com/ava-labs/nftext/api"
	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/json"
	"github.com/ava-labs/nftext/utils/rpc"
)

var _ Client = (*client)(nil)

// Client interface for interacting with the psp02 endpoint
type Client interface {
	// GetOwner returns the owner of [item] of [collection], and false if the
	// item has no owner.
	GetOwner(ctx context.Context, collection, item uint32, options ...rpc.Option) (ids.ID, bool, error)
	// Transfer returns false if the token module rejected the transfer.
	Transfer(ctx context.Context, from ids.ID, collection, item uint32, dest ids.ID, options ...rpc.Option) (bool, uint64, error)
	CreateCollection(ctx context.Context, from ids.ID, collection uint32, options ...rpc.Option) (uint64, error)
	Mint(ctx context.Context, from ids.ID, collection, item uint32, owner ids.ID, options ...rpc.Option) (uint64, error)
	Burn(ctx context.Context, from ids.ID, collection, item uint32, options ...rpc.Option) (uint64, error)
	Freeze(ctx context.Context, from ids.ID, collection, item uint32, options ...rpc.Option) (uint64, error)
	Thaw(ctx context.Context, from ids.ID, collection, item uint32, options ...rpc.Option) (uint64, error)
	ApproveTransfer(ctx context.Context, from ids.ID, collection, item uint32, delegate ids.ID, options ...rpc.Option) (uint64, error)
	CancelApproval(ctx context.Context, from ids.ID, collection, item uint32, options ...rpc.Option) (uint64, error)
	GetCollection(ctx context.Context, collection uint32, options ...rpc.Option) (ids.ID, []uint32, error)
}

// Client implementation for interacting with the psp02 endpoint
type client struct {
	requester rpc.EndpointRequester
}

// NewClient returns a Client for interacting with the psp02 endpoint of the
// node at [uri]
func NewClient(uri string) Client {
	return &client{requester: rpc.NewEndpointRequester(
		uri + "/ext/" + Endpoint,
	)}
}

func (c *client) GetOwner(ctx context.Context, collection, item uint32, options ...rpc.Option) (ids.ID, bool, error) {
	res := &GetOwnerReply{}
	err := c.requester.SendRequest(ctx, "psp02.getOwner", &api.ItemArgs{
		Collection: json.Uint32(collection),
		Item:       json.Uint32(item),
	}, res, options...)
	return res.Owner, res.Found, err
}

func (c *client) Transfer(ctx context.Context, from ids.ID, collection, item uint32, dest ids.ID, options ...rpc.Option) (bool, uint64, error) {
	res := &api.MeteredResponse{}
	err := c.requester.SendRequest(ctx, "psp02.transfer", &TransferArgs{
		FromArgs: api.FromArgs{From: from},
		ItemArgs: api.ItemArgs{
			Collection: json.Uint32(collection),
			Item:       json.Uint32(item),
		},
		Dest: dest,
	}, res, options...)
	return res.Success, uint64(res.GasUsed), err
}

func (c *client) CreateCollection(ctx context.Context, from ids.ID, collection uint32, options ...rpc.Option) (uint64, error) {
	res := &api.MeteredResponse{}
	err := c.requester.SendRequest(ctx, "psp02.createCollection", &CreateCollectionArgs{
		FromArgs:   api.FromArgs{From: from},
		Collection: json.Uint32(collection),
	}, res, options...)
	return uint64(res.GasUsed), err
}

func (c *client) Mint(ctx context.Context, from ids.ID, collection, item uint32, owner ids.ID, options ...rpc.Option) (uint64, error) {
	res := &api.MeteredResponse{}
	err := c.requester.SendRequest(ctx, "psp02.mint", &MintArgs{
		FromArgs: api.FromArgs{From: from},
		ItemArgs: api.ItemArgs{
			Collection: json.Uint32(collection),
			Item:       json.Uint32(item),
		},
		Owner: owner,
	}, res, options...)
	return uint64(res.GasUsed), err
}

func (c *client) Burn(ctx context.Context, from ids.ID, collection, item uint32, options ...rpc.Option) (uint64, error) {
	res := &api.MeteredResponse{}
	err := c.requester.SendRequest(ctx, "psp02.burn", &BurnArgs{
		FromArgs: api.FromArgs{From: from},
		ItemArgs: api.ItemArgs{
			Collection: json.Uint32(collection),
			Item:       json.Uint32(item),
		},
	}, res, options...)
	return uint64(res.GasUsed), err
}

func (c *client) Freeze(ctx context.Context, from ids.ID, collection, item uint32, options ...rpc.Option) (uint64, error) {
	return c.sendItemRequest(ctx, "psp02.freeze", from, collection, item, options...)
}

func (c *client) Thaw(ctx context.Context, from ids.ID, collection, item uint32, options ...rpc.Option) (uint64, error) {
	return c.sendItemRequest(ctx, "psp02.thaw", from, collection, item, options...)
}

func (c *client) ApproveTransfer(ctx context.Context, from ids.ID, collection, item uint32, delegate ids.ID, options ...rpc.Option) (uint64, error) {
	res := &api.MeteredResponse{}
	err := c.requester.SendRequest(ctx, "psp02.approveTransfer", &ApproveTransferArgs{
		FromArgs: api.FromArgs{From: from},
		ItemArgs: api.ItemArgs{
			Collection: json.Uint32(collection),
			Item:       json.Uint32(item),
		},
		Delegate: delegate,
	}, res, options...)
	return uint64(res.GasUsed), err
}

func (c *client) CancelApproval(ctx context.Context, from ids.ID, collection, item uint32, options ...rpc.Option) (uint64, error) {
	return c.sendItemRequest(ctx, "psp02.cancelApproval", from, collection, item, options...)
}

// sendItemRequest calls a metered [method] whose arguments are only the
// caller and the item.
func (c *client) sendItemRequest(ctx context.Context, method string, from ids.ID, collection, item uint32, options ...rpc.Option) (uint64, error) {
	res := &api.MeteredResponse{}
	err := c.requester.SendRequest(ctx, method, &ItemActionArgs{
		FromArgs: api.FromArgs{From: from},
		ItemArgs: api.ItemArgs{
			Collection: json.Uint32(collection),
			Item:       json.Uint32(item),
		},
	}, res, options...)
	return uint64(res.GasUsed), err
}

func (c *client) GetCollection(ctx context.Context, collection uint32, options ...rpc.Option) (ids.ID, []uint32, error) {
	res := &GetCollectionReply{}
	err := c.requester.SendRequest(ctx, "psp02.getCollection", &GetCollectionArgs{
		Collection: json.Uint32(collection),
	}, res, options...)
	items := make([]uint32, len(res.Items))
	for i, item := range res.Items {
		items[i] = uint32(item)
	}
	return res.Owner, items, err
}
