// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrOverflow = errors.New("overflow")

// MaxUint returns the maximum value of an unsigned integer of type T.
func MaxUint[T constraints.Unsigned]() T {
	return ^T(0)
}

// Add returns a + b, or an error if it overflows T.
func Add[T constraints.Unsigned](a, b T) (T, error) {
	if a > MaxUint[T]()-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// SaturatingAdd returns a + b, clamped to the maximum value of T.
func SaturatingAdd[T constraints.Unsigned](a, b T) T {
	sum, err := Add(a, b)
	if err != nil {
		return MaxUint[T]()
	}
	return sum
}
