// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cb58

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test encoding bytes to a string and decoding back to bytes
func TestEncodeDecode(t *testing.T) {
	require := require.New(t)

	type test struct {
		bytes []byte
		str   string
	}

	id := [32]byte{24}
	tests := []test{
		{
			nil,
			"45PJLL",
		},
		{
			[]byte{},
			"45PJLL",
		},
		{
			[]byte{0},
			"1c7hwa",
		},
		{
			[]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 255},
			"1NVSVezva3bAtJesnUj",
		},
		{
			id[:],
			"Ba3mm8Ra8JYYebeZ9p7zw1ayorDbeD1euwxhgzSLsncKqGoNt",
		},
	}

	for _, test := range tests {
		// Encode the bytes
		strResult, err := Encode(test.bytes)
		require.NoError(err)
		// Make sure the string repr. is what we expected
		require.Equal(test.str, strResult)
		// Decode the string
		bytesResult, err := Decode(strResult)
		require.NoError(err)
		// Make sure we got the same bytes back
		require.Equal(len(test.bytes), len(bytesResult))
		if len(test.bytes) > 0 {
			require.Equal(test.bytes, bytesResult)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		in          string
		expectedErr error
	}{
		{"", ErrBase58Decoding},
		{"foo", ErrMissingChecksum},
		{"foobar", ErrBadChecksum},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			_, err := Decode(test.in)
			require.ErrorIs(t, err, test.expectedErr)
		})
	}
}
