// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package psp02

//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/token_module.go -mock_names=TokenModule=TokenModule . TokenModule
//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/weight_info.go -mock_names=WeightInfo=WeightInfo . WeightInfo
//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/schedule.go -mock_names=Schedule=Schedule . Schedule
