// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

const Null = "null"

var _ rpc.Codec = (*codec)(nil)

type codec struct {
	*json2.Codec
}

// NewCodec returns a new json2 codec that will convert the first character of
// the method to uppercase, so "psp02.getOwner" dispatches to GetOwner.
func NewCodec() rpc.Codec {
	return codec{json2.NewCodec()}
}

func (c codec) NewRequest(r *http.Request) rpc.CodecRequest {
	return &request{c.Codec.NewRequest(r)}
}

type request struct {
	rpc.CodecRequest
}

func (r *request) Method() (string, error) {
	method, err := r.CodecRequest.Method()
	methodSections := strings.SplitN(method, ".", 2)
	if len(methodSections) != 2 || err != nil {
		return method, err
	}
	class, function := methodSections[0], methodSections[1]
	firstRune, runeLen := utf8.DecodeRuneInString(function)
	if firstRune == utf8.RuneError {
		return method, nil
	}
	uppercaseRune := string(unicode.ToUpper(firstRune))
	return fmt.Sprintf("%s.%s%s", class, uppercaseRune, function[runeLen:]), nil
}
