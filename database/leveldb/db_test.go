// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package leveldb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftext/database"
	"github.com/ava-labs/nftext/database/dbtest"
	"github.com/ava-labs/nftext/utils/logging"
)

func TestInterface(t *testing.T) {
	for name, test := range dbtest.Tests {
		t.Run(name, func(t *testing.T) {
			folder := t.TempDir()
			db, err := New(folder, logging.NoLog{})
			require.NoError(t, err)

			test(t, db)

			// The database may have been closed by the test, so we don't care if it
			// errors here.
			_ = db.Close()
		})
	}
}

func TestReopen(t *testing.T) {
	require := require.New(t)

	folder := t.TempDir()
	db, err := New(folder, logging.NoLog{})
	require.NoError(err)
	require.NoError(db.Put([]byte("owner"), []byte("alice")))
	require.NoError(db.Close())

	db, err = New(folder, logging.NoLog{})
	require.NoError(err)
	defer db.Close()

	v, err := db.Get([]byte("owner"))
	require.NoError(err)
	require.Equal([]byte("alice"), v)

	_, err = db.Get([]byte("missing"))
	require.ErrorIs(err, database.ErrNotFound)
}
