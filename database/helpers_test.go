// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUInt32(t *testing.T) {
	require := require.New(t)

	packed := PackUInt32(0xdb20)
	require.Equal([]byte{0x00, 0x00, 0xdb, 0x20}, packed)

	got, err := ParseUInt32(packed)
	require.NoError(err)
	require.Equal(uint32(0xdb20), got)
}

func TestPackUInt32Sorts(t *testing.T) {
	require.Negative(t, bytes.Compare(PackUInt32(255), PackUInt32(256)))
}

func TestParseUInt32WrongSize(t *testing.T) {
	_, err := ParseUInt32([]byte{0x01})
	require.ErrorIs(t, err, ErrWrongSize)
}
