// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wasm

import (
	"net/http"

	"github.com/gorilla/rpc/v2"

	"github.com/ava-labs/nftext/utils/json"
)

const Endpoint = "wasm"

func NewHandler(service *Service) (http.Handler, error) {
	server := rpc.NewServer()
	codec := json.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(service, Endpoint)
}
