// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/rpc/v2/json2"
)

var (
	_ EndpointRequester = (*endpointRequester)(nil)

	errBadStatus = errors.New("received status code")
)

type EndpointRequester interface {
	SendRequest(ctx context.Context, method string, params interface{}, reply interface{}, options ...Option) error
}

type endpointRequester struct {
	uri    string
	client *http.Client
}

// NewEndpointRequester sends requests to the JSON-RPC service at [uri].
// Methods are namespaced by the service name, e.g. "psp02.getOwner".
func NewEndpointRequester(uri string) EndpointRequester {
	return &endpointRequester{
		uri:    uri,
		client: http.DefaultClient,
	}
}

func (e *endpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
	options ...Option,
) error {
	uri, err := url.Parse(e.uri)
	if err != nil {
		return fmt.Errorf("couldn't parse %q: %w", e.uri, err)
	}
	ops := NewOptions(options)
	uri.RawQuery = ops.QueryParams().Encode()

	body, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("failed to encode client params: %w", err)
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, uri.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	request.Header = ops.Headers()
	request.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to issue request: %w", err)
	}
	defer CleanlyCloseBody(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", errBadStatus, resp.StatusCode)
	}
	if err := json2.DecodeClientResponse(resp.Body, reply); err != nil {
		return fmt.Errorf("failed to decode client response: %w", err)
	}
	return nil
}

// CleanlyCloseBody reads the rest of [body] before closing it so the
// connection can be reused.
func CleanlyCloseBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
