// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/nftext/database/leveldb"
	"github.com/ava-labs/nftext/database/memdb"
	"github.com/ava-labs/nftext/utils/logging"
)

func TestNewDatabase(t *testing.T) {
	tests := []struct {
		name      string
		config    DatabaseConfig
		expectErr bool
	}{
		{
			name:   "memdb",
			config: DatabaseConfig{Name: memdb.Name},
		},
		{
			name:   "leveldb",
			config: DatabaseConfig{Name: leveldb.Name, Path: t.TempDir()},
		},
		{
			name:      "unknown",
			config:    DatabaseConfig{Name: "rocksdb"},
			expectErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			db, err := NewDatabase(test.config, logging.NoLog{})
			if test.expectErr {
				require.Error(err)
				return
			}
			require.NoError(err)
			require.NoError(db.Put([]byte("k"), []byte("v")))
			require.NoError(db.Close())
		})
	}
}
