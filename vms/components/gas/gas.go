// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gas

import safemath "github.com/ava-labs/nftext/utils/math"

// Gas is the unit a call's weight is measured and charged in.
type Gas uint64

// SaturatingAdd returns g + other. If overflow would occur, MaxUint64 is
// returned.
func (g Gas) SaturatingAdd(other Gas) Gas {
	return safemath.SaturatingAdd(g, other)
}
