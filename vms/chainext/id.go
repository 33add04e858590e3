// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainext

import "fmt"

// SplitID splits a 32 bit call id into the extension id, the upper 16 bits,
// and the function id, the lower 16 bits.
func SplitID(id uint32) (extID uint16, funcID uint16) {
	return uint16(id >> 16), uint16(id)
}

// JoinID is the inverse of SplitID.
func JoinID(extID uint16, funcID uint16) uint32 {
	return uint32(extID)<<16 | uint32(funcID)
}

// FuncLabel formats a function id the way it is reported in logs and metrics.
func FuncLabel(funcID uint16) string {
	return fmt.Sprintf("0x%04x", funcID)
}
