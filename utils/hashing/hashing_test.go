// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeHash256(t *testing.T) {
	require := require.New(t)

	expected, err := hex.DecodeString("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	require.NoError(err)
	require.Equal(expected, ComputeHash256(nil))
}

func TestComputeBlake2b256Array(t *testing.T) {
	require := require.New(t)

	expected, err := hex.DecodeString("e11d814979372c883b50bdb0ffadb1eaf0898bf54fd4fbf298af126fbabbda4c")
	require.NoError(err)
	hash := ComputeBlake2b256Array([]byte("alice"))
	require.Equal(expected, hash[:])
}

func TestChecksum(t *testing.T) {
	require := require.New(t)

	hash := ComputeHash256(nil)
	require.Equal(hash[28:], Checksum(nil, 4))
}

func TestToHash256(t *testing.T) {
	require := require.New(t)

	_, err := ToHash256(make([]byte, 31))
	require.ErrorIs(err, ErrInvalidHashLen)

	in := make([]byte, HashLen)
	in[0] = 1
	hash, err := ToHash256(in)
	require.NoError(err)
	require.Equal(in, hash[:])
}
