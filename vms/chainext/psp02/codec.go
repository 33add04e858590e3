// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package psp02

import (
	"errors"
	"fmt"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/wrappers"
	"github.com/ava-labs/nftext/vms/uniques"
)

const (
	optionNone byte = 0
	optionSome byte = 1

	// OwnerQueryLen is the encoded size of an OwnerQuery.
	OwnerQueryLen = 2 * wrappers.IntLen
	// TransferRequestLen is the encoded size of a TransferRequest.
	TransferRequestLen = OwnerQueryLen + ids.IDLen
	// MaxOwnerResultLen is the largest encoded owner query result.
	MaxOwnerResultLen = wrappers.ByteLen + ids.IDLen
)

var ErrInvalidOption = errors.New("invalid option tag")

// OwnerQuery names the item whose owner is requested.
type OwnerQuery struct {
	Collection uniques.CollectionID
	Item       uniques.ItemID
}

func (q OwnerQuery) Bytes() []byte {
	p := wrappers.Packer{
		Bytes:   make([]byte, 0, OwnerQueryLen),
		MaxSize: OwnerQueryLen,
	}
	q.pack(&p)
	return p.Bytes
}

func (q OwnerQuery) pack(p *wrappers.Packer) {
	p.PackInt(uint32(q.Collection))
	p.PackInt(uint32(q.Item))
}

func (q *OwnerQuery) unpack(p *wrappers.Packer) {
	q.Collection = uniques.CollectionID(p.UnpackInt())
	q.Item = uniques.ItemID(p.UnpackInt())
}

// ParseOwnerQuery decodes [b], which must hold exactly one OwnerQuery.
func ParseOwnerQuery(b []byte) (OwnerQuery, error) {
	var (
		q OwnerQuery
		p = wrappers.Packer{Bytes: b}
	)
	q.unpack(&p)
	p.ExpectEOF()
	if p.Err != nil {
		return OwnerQuery{}, fmt.Errorf("couldn't parse owner query: %w", p.Err)
	}
	return q, nil
}

// TransferRequest moves an item to Dest.
type TransferRequest struct {
	Collection uniques.CollectionID
	Item       uniques.ItemID
	Dest       ids.ID
}

func (r TransferRequest) Bytes() []byte {
	p := wrappers.Packer{
		Bytes:   make([]byte, 0, TransferRequestLen),
		MaxSize: TransferRequestLen,
	}
	p.PackInt(uint32(r.Collection))
	p.PackInt(uint32(r.Item))
	p.PackFixedBytes(r.Dest[:])
	return p.Bytes
}

// ParseTransferRequest decodes [b], which must hold exactly one
// TransferRequest.
func ParseTransferRequest(b []byte) (TransferRequest, error) {
	var (
		r TransferRequest
		p = wrappers.Packer{Bytes: b}
	)
	r.Collection = uniques.CollectionID(p.UnpackInt())
	r.Item = uniques.ItemID(p.UnpackInt())
	copy(r.Dest[:], p.UnpackFixedBytes(ids.IDLen))
	p.ExpectEOF()
	if p.Err != nil {
		return TransferRequest{}, fmt.Errorf("couldn't parse transfer request: %w", p.Err)
	}
	return r, nil
}

// EncodeOwner encodes the result of an owner query.
func EncodeOwner(owner ids.ID, ok bool) []byte {
	if !ok {
		return []byte{optionNone}
	}
	b := make([]byte, 0, MaxOwnerResultLen)
	b = append(b, optionSome)
	return append(b, owner[:]...)
}

// ParseOwner decodes the result of an owner query.
func ParseOwner(b []byte) (ids.ID, bool, error) {
	p := wrappers.Packer{Bytes: b}
	tag := p.UnpackByte()
	if p.Err != nil {
		return ids.Empty, false, fmt.Errorf("couldn't parse owner: %w", p.Err)
	}

	var (
		owner ids.ID
		ok    bool
	)
	switch tag {
	case optionNone:
	case optionSome:
		copy(owner[:], p.UnpackFixedBytes(ids.IDLen))
		ok = true
	default:
		return ids.Empty, false, fmt.Errorf("%w: %d", ErrInvalidOption, tag)
	}
	p.ExpectEOF()
	if p.Err != nil {
		return ids.Empty, false, fmt.Errorf("couldn't parse owner: %w", p.Err)
	}
	return owner, ok, nil
}
