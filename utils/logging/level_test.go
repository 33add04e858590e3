// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var allLevels = []Level{Off, Fatal, Error, Warn, Info, Trace, Debug, Verbo}

func TestAlignedString(t *testing.T) {
	require := require.New(t)

	for _, l := range allLevels {
		as := l.AlignedString()
		require.Len(as, alignedStringLen)
		s := l.String()
		switch {
		case len(s) >= alignedStringLen:
			require.Equal(s[:alignedStringLen], as)
		default:
			require.Equal(s, as[:len(s)])
			require.Equal(strings.Repeat(" ", alignedStringLen-len(s)), as[len(s):])
		}
	}
}

func TestToLevel(t *testing.T) {
	require := require.New(t)

	for _, l := range allLevels {
		parsed, err := ToLevel(strings.ToLower(l.String()))
		require.NoError(err)
		require.Equal(l, parsed)
	}

	_, err := ToLevel("loud")
	require.ErrorContains(err, "unknown log level")
}

func TestLevelOrdering(t *testing.T) {
	require := require.New(t)

	// Levels are sorted from least to most verbose in [allLevels]
	for i := 1; i < len(allLevels); i++ {
		require.Greater(int(allLevels[i-1]), int(allLevels[i]))
	}
}

func TestLevelJSON(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(Trace)
	require.NoError(err)
	require.Equal(`"TRACE"`, string(b))

	var l Level
	require.NoError(json.Unmarshal(b, &l))
	require.Equal(Trace, l)
}
