// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package psp02ext

//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/backend.go -mock_names=Backend=Backend . Backend
