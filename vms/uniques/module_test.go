// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package uniques

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftext/database/memdb"
	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/logging"
)

var (
	alice   = ids.FromSeed("alice")
	bob     = ids.FromSeed("bob")
	charlie = ids.FromSeed("charlie")
)

func newTestModule(t *testing.T) *Module {
	t.Helper()

	m := New(memdb.New(), logging.NoLog{})
	require.NoError(t, m.CreateCollection(alice, 1))
	require.NoError(t, m.Mint(alice, 1, 7, alice))
	return m
}

func TestCreateCollection(t *testing.T) {
	require := require.New(t)

	m := New(memdb.New(), logging.NoLog{})

	_, exists, err := m.CollectionOwner(1)
	require.NoError(err)
	require.False(exists)

	require.NoError(m.CreateCollection(alice, 1))

	owner, exists, err := m.CollectionOwner(1)
	require.NoError(err)
	require.True(exists)
	require.Equal(alice, owner)

	err = m.CreateCollection(bob, 1)
	require.ErrorIs(err, ErrAlreadyExists)

	owner, _, err = m.CollectionOwner(1)
	require.NoError(err)
	require.Equal(alice, owner)
}

func TestMint(t *testing.T) {
	tests := []struct {
		name        string
		origin      ids.ID
		collection  CollectionID
		item        ItemID
		expectedErr error
	}{
		{
			name:       "admin mints",
			origin:     alice,
			collection: 1,
			item:       8,
		},
		{
			name:        "unknown collection",
			origin:      alice,
			collection:  2,
			item:        8,
			expectedErr: ErrUnknownCollection,
		},
		{
			name:        "not the admin",
			origin:      bob,
			collection:  1,
			item:        8,
			expectedErr: ErrNoPermission,
		},
		{
			name:        "duplicate item",
			origin:      alice,
			collection:  1,
			item:        7,
			expectedErr: ErrAlreadyExists,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			m := newTestModule(t)
			err := m.Mint(test.origin, test.collection, test.item, bob)
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}

			owner, exists, err := m.Owner(test.collection, test.item)
			require.NoError(err)
			require.True(exists)
			require.Equal(bob, owner)

			c, err := m.Collection(test.collection)
			require.NoError(err)
			require.Equal(uint32(2), c.Items)
		})
	}
}

func TestOwnerMissing(t *testing.T) {
	require := require.New(t)

	m := newTestModule(t)

	_, exists, err := m.Owner(1, 8)
	require.NoError(err)
	require.False(exists)

	_, exists, err = m.Owner(2, 7)
	require.NoError(err)
	require.False(exists)
}

func TestTransfer(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(*require.Assertions, *Module)
		origin        ids.ID
		item          ItemID
		expectedErr   error
		expectedOwner ids.ID
	}{
		{
			name:          "owner transfers",
			origin:        alice,
			item:          7,
			expectedOwner: bob,
		},
		{
			name:          "stranger rejected",
			origin:        charlie,
			item:          7,
			expectedErr:   ErrNoPermission,
			expectedOwner: alice,
		},
		{
			name:        "unknown item",
			origin:      alice,
			item:        9,
			expectedErr: ErrUnknownItem,
		},
		{
			name: "frozen item rejected",
			setup: func(require *require.Assertions, m *Module) {
				require.NoError(m.Freeze(alice, 1, 7))
			},
			origin:        alice,
			item:          7,
			expectedErr:   ErrFrozen,
			expectedOwner: alice,
		},
		{
			name: "thawed item transfers",
			setup: func(require *require.Assertions, m *Module) {
				require.NoError(m.Freeze(alice, 1, 7))
				require.NoError(m.Thaw(alice, 1, 7))
			},
			origin:        alice,
			item:          7,
			expectedOwner: bob,
		},
		{
			name: "approved delegate transfers",
			setup: func(require *require.Assertions, m *Module) {
				require.NoError(m.ApproveTransfer(alice, 1, 7, charlie))
			},
			origin:        charlie,
			item:          7,
			expectedOwner: bob,
		},
		{
			name: "cancelled delegate rejected",
			setup: func(require *require.Assertions, m *Module) {
				require.NoError(m.ApproveTransfer(alice, 1, 7, charlie))
				require.NoError(m.CancelApproval(alice, 1, 7))
			},
			origin:        charlie,
			item:          7,
			expectedErr:   ErrNoPermission,
			expectedOwner: alice,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			m := newTestModule(t)
			if test.setup != nil {
				test.setup(require, m)
			}

			err := m.Transfer(test.origin, 1, test.item, bob)
			require.ErrorIs(err, test.expectedErr)

			owner, _, err := m.Owner(1, test.item)
			require.NoError(err)
			require.Equal(test.expectedOwner, owner)
		})
	}
}

func TestTransferClearsApproval(t *testing.T) {
	require := require.New(t)

	m := newTestModule(t)
	require.NoError(m.ApproveTransfer(alice, 1, 7, charlie))
	require.NoError(m.Transfer(alice, 1, 7, bob))

	i, err := m.Item(1, 7)
	require.NoError(err)
	require.Nil(i.Approved)

	err = m.Transfer(charlie, 1, 7, charlie)
	require.ErrorIs(err, ErrNoPermission)
}

func TestPermissions(t *testing.T) {
	require := require.New(t)

	m := newTestModule(t)
	require.NoError(m.Transfer(alice, 1, 7, bob))

	// bob owns the item but alice is still the admin
	require.ErrorIs(m.Freeze(bob, 1, 7), ErrNoPermission)
	require.ErrorIs(m.Thaw(bob, 1, 7), ErrNoPermission)
	require.ErrorIs(m.ApproveTransfer(alice, 1, 7, charlie), ErrNoPermission)
	require.ErrorIs(m.CancelApproval(bob, 1, 7), ErrNoDelegate)
	require.ErrorIs(m.Burn(alice, 1, 7), ErrNoPermission)
	require.ErrorIs(m.Freeze(alice, 1, 8), ErrUnknownItem)
}

func TestBurn(t *testing.T) {
	require := require.New(t)

	m := newTestModule(t)
	require.NoError(m.Mint(alice, 1, 8, alice))
	require.NoError(m.Burn(alice, 1, 7))

	_, exists, err := m.Owner(1, 7)
	require.NoError(err)
	require.False(exists)

	items, err := m.Items(1)
	require.NoError(err)
	require.Equal([]ItemID{8}, items)

	c, err := m.Collection(1)
	require.NoError(err)
	require.Equal(uint32(1), c.Items)

	require.ErrorIs(m.Burn(alice, 1, 7), ErrUnknownItem)
}

func TestItemsOrdered(t *testing.T) {
	require := require.New(t)

	m := newTestModule(t)
	require.NoError(m.CreateCollection(bob, 2))
	for _, item := range []ItemID{300, 2, 1 << 20} {
		require.NoError(m.Mint(bob, 2, item, bob))
	}

	items, err := m.Items(2)
	require.NoError(err)
	require.Equal([]ItemID{2, 300, 1 << 20}, items)

	items, err = m.Items(1)
	require.NoError(err)
	require.Equal([]ItemID{7}, items)
}

func TestInitGenesis(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	m := New(db, logging.NoLog{})
	genesis := []GenesisCollection{
		{ID: 1, Owner: alice, Items: []ItemID{1, 2}},
		{ID: 2, Owner: bob},
	}
	require.NoError(m.InitGenesis(genesis))

	owner, exists, err := m.Owner(1, 2)
	require.NoError(err)
	require.True(exists)
	require.Equal(alice, owner)

	require.NoError(m.Transfer(alice, 1, 2, bob))

	// Restarting on the same database keeps the existing state.
	m = New(db, logging.NoLog{})
	require.NoError(m.InitGenesis(genesis))

	owner, _, err = m.Owner(1, 2)
	require.NoError(err)
	require.Equal(bob, owner)
}
