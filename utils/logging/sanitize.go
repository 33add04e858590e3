// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"strings"

	"go.uber.org/zap"
)

// UserString constructs a field for a string that came from an untrusted
// source, such as an RPC argument.
func UserString(key, val string) zap.Field {
	return zap.String(key, Sanitize(val))
}

func Sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
