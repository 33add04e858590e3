// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainext

//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/environment.go -mock_names=Environment=Environment . Environment
//go:generate mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/extension.go -mock_names=Extension=Extension . Extension
