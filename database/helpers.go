// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Uint32Size is the length of a packed uint32.
const Uint32Size = 4

var ErrWrongSize = errors.New("value has unexpected size")

// PackUInt32 encodes [val] big endian so that packed values sort in numeric
// order when used as keys.
func PackUInt32(val uint32) []byte {
	return binary.BigEndian.AppendUint32(make([]byte, 0, Uint32Size), val)
}

func ParseUInt32(b []byte) (uint32, error) {
	if len(b) != Uint32Size {
		return 0, fmt.Errorf("%w: expected %d bytes but got %d", ErrWrongSize, Uint32Size, len(b))
	}
	return binary.BigEndian.Uint32(b), nil
}
