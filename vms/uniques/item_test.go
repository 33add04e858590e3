// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package uniques

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/wrappers"
)

func TestItemBytes(t *testing.T) {
	delegate := ids.GenerateTestID()
	tests := []struct {
		name string
		item *Item
	}{
		{
			name: "plain",
			item: &Item{Owner: ids.GenerateTestID()},
		},
		{
			name: "frozen with delegate",
			item: &Item{
				Owner:    ids.GenerateTestID(),
				Frozen:   true,
				Approved: &delegate,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			parsed, err := parseItem(test.item.Bytes())
			require.NoError(err)
			require.Equal(test.item, parsed)
		})
	}
}

func TestParseItemErrors(t *testing.T) {
	require := require.New(t)

	i := &Item{Owner: ids.GenerateTestID()}
	b := i.Bytes()

	_, err := parseItem(b[:len(b)-1])
	require.ErrorIs(err, wrappers.ErrInsufficientLength)

	_, err = parseItem(append(b, 0x00))
	require.ErrorIs(err, wrappers.ErrTrailingBytes)
}

func TestCollectionBytes(t *testing.T) {
	require := require.New(t)

	c := &Collection{Owner: ids.GenerateTestID(), Items: 3}
	b := c.Bytes()
	require.Len(b, collectionLen)

	parsed, err := parseCollection(b)
	require.NoError(err)
	require.Equal(c, parsed)
}

func TestItemKey(t *testing.T) {
	require := require.New(t)

	key := itemKey(0x01020304, 0x0a0b0c0d)
	require.Equal([]byte{itemPrefix, 0x01, 0x02, 0x03, 0x04, 0x0a, 0x0b, 0x0c, 0x0d}, key)

	item, err := parseItemKey(key)
	require.NoError(err)
	require.Equal(ItemID(0x0a0b0c0d), item)

	_, err = parseItemKey(key[:5])
	require.ErrorIs(err, wrappers.ErrInsufficientLength)
}
