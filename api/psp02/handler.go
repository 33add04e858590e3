// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package psp02

import (
	"net/http"

	"github.com/gorilla/rpc/v2"

	"github.com/ava-labs/nftext/utils/json"
)

// Endpoint is the route the service is served at, relative to /ext/.
const Endpoint = "psp02"

// NewHandler returns the JSON-RPC handler serving [service] under the
// "psp02" namespace.
func NewHandler(service *Service) (http.Handler, error) {
	server := rpc.NewServer()
	codec := json.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(service, Endpoint)
}
