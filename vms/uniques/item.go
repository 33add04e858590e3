// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package uniques

import (
	"fmt"

	"github.com/ava-labs/nftext/database"
	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/wrappers"
)

const (
	collectionPrefix byte = iota
	itemPrefix

	collectionLen = ids.IDLen + wrappers.IntLen
	// owner, frozen, approval tag and an optional approved delegate
	maxItemLen = ids.IDLen + 2*wrappers.BoolLen + ids.IDLen
)

type (
	CollectionID uint32
	ItemID       uint32
)

// Collection is the stored state of a collection.
type Collection struct {
	Owner ids.ID `json:"owner"`
	Items uint32 `json:"items"`
}

// Item is the stored state of a single NFT.
type Item struct {
	Owner    ids.ID  `json:"owner"`
	Frozen   bool    `json:"frozen"`
	Approved *ids.ID `json:"approved,omitempty"`
}

func collectionKey(collection CollectionID) []byte {
	p := wrappers.Packer{MaxSize: 1 + wrappers.IntLen}
	p.PackByte(collectionPrefix)
	p.PackFixedBytes(database.PackUInt32(uint32(collection)))
	return p.Bytes
}

func itemKey(collection CollectionID, item ItemID) []byte {
	p := wrappers.Packer{MaxSize: 1 + 2*wrappers.IntLen}
	p.PackByte(itemPrefix)
	p.PackFixedBytes(database.PackUInt32(uint32(collection)))
	p.PackFixedBytes(database.PackUInt32(uint32(item)))
	return p.Bytes
}

// itemsPrefix is the key prefix shared by every item of [collection].
func itemsPrefix(collection CollectionID) []byte {
	p := wrappers.Packer{MaxSize: 1 + wrappers.IntLen}
	p.PackByte(itemPrefix)
	p.PackFixedBytes(database.PackUInt32(uint32(collection)))
	return p.Bytes
}

// parseItemKey returns the item id of a key built by itemKey. Ids are
// big-endian in keys so a collection's items iterate in id order.
func parseItemKey(key []byte) (ItemID, error) {
	if len(key) != 1+2*wrappers.IntLen {
		return 0, fmt.Errorf("%w: item key of length %d", wrappers.ErrInsufficientLength, len(key))
	}
	item, err := database.ParseUInt32(key[1+wrappers.IntLen:])
	return ItemID(item), err
}

func (c *Collection) Bytes() []byte {
	p := wrappers.Packer{MaxSize: collectionLen}
	p.PackFixedBytes(c.Owner[:])
	p.PackInt(c.Items)
	return p.Bytes
}

func parseCollection(b []byte) (*Collection, error) {
	p := wrappers.Packer{Bytes: b}
	c := &Collection{}
	copy(c.Owner[:], p.UnpackFixedBytes(ids.IDLen))
	c.Items = p.UnpackInt()
	p.ExpectEOF()
	if p.Err != nil {
		return nil, fmt.Errorf("couldn't parse collection: %w", p.Err)
	}
	return c, nil
}

func (i *Item) Bytes() []byte {
	p := wrappers.Packer{MaxSize: maxItemLen}
	p.PackFixedBytes(i.Owner[:])
	p.PackBool(i.Frozen)
	p.PackBool(i.Approved != nil)
	if i.Approved != nil {
		p.PackFixedBytes(i.Approved[:])
	}
	return p.Bytes
}

func parseItem(b []byte) (*Item, error) {
	p := wrappers.Packer{Bytes: b}
	i := &Item{}
	copy(i.Owner[:], p.UnpackFixedBytes(ids.IDLen))
	i.Frozen = p.UnpackBool()
	if p.UnpackBool() {
		var approved ids.ID
		copy(approved[:], p.UnpackFixedBytes(ids.IDLen))
		i.Approved = &approved
	}
	p.ExpectEOF()
	if p.Err != nil {
		return nil, fmt.Errorf("couldn't parse item: %w", p.Err)
	}
	return i, nil
}
