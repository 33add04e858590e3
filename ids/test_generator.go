// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/ava-labs/nftext/utils/hashing"
)

var offset atomic.Uint64

// GenerateTestID returns a new ID that should only be used for testing
func GenerateTestID() ID {
	return hashing.ComputeHash256Array(binary.BigEndian.AppendUint64(nil, offset.Add(1)))
}
