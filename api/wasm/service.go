// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package wasm serves deployment of wasm contracts and calls into them over
// JSON-RPC.
package wasm

import (
	"errors"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/ava-labs/nftext/api"
	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/hashing"
	"github.com/ava-labs/nftext/utils/json"
	"github.com/ava-labs/nftext/utils/logging"
	"github.com/ava-labs/nftext/vms/components/gas"
	"github.com/ava-labs/nftext/vms/wasmvm"
)

var (
	errEmptyCode       = errors.New("empty contract code")
	errUnknownContract = errors.New("unknown contract")
)

// Service deploys contracts to a wasm runtime and calls them. Deployed
// contracts live until the runtime is closed.
type Service struct {
	log      logging.Logger
	runtime  *wasmvm.Runtime
	gasLimit gas.Gas

	lock      sync.Mutex
	contracts map[ids.ID]*wasmvm.Contract
}

func NewService(log logging.Logger, runtime *wasmvm.Runtime, gasLimit gas.Gas) *Service {
	return &Service{
		log:       log,
		runtime:   runtime,
		gasLimit:  gasLimit,
		contracts: make(map[ids.ID]*wasmvm.Contract),
	}
}

// DeployArgs are the arguments to Deploy
type DeployArgs struct {
	Code []byte `json:"code"`
}

// DeployReply is the response from calling Deploy
type DeployReply struct {
	ContractID ids.ID `json:"contractID"`
}

// Deploy instantiates [Code]. The contract id is the hash of the code, so
// deploying the same code again returns the existing instance.
func (s *Service) Deploy(r *http.Request, args *DeployArgs, reply *DeployReply) error {
	if len(args.Code) == 0 {
		return errEmptyCode
	}

	contractID := ids.ID(hashing.ComputeHash256Array(args.Code))
	s.log.Debug("API called",
		zap.String("service", "wasm"),
		zap.String("method", "deploy"),
		zap.Stringer("contractID", contractID),
		zap.Int("codeLen", len(args.Code)),
	)

	s.lock.Lock()
	defer s.lock.Unlock()

	reply.ContractID = contractID
	if _, ok := s.contracts[contractID]; ok {
		return nil
	}

	contract, err := s.runtime.Instantiate(r.Context(), args.Code)
	if err != nil {
		return err
	}
	s.contracts[contractID] = contract

	s.log.Info("deployed contract",
		zap.Stringer("contractID", contractID),
	)
	return nil
}

// MemoryWrite is copied into contract memory at [Offset]
type MemoryWrite struct {
	Offset json.Uint32 `json:"offset"`
	Data   []byte      `json:"data"`
}

// MemoryRange is a region of contract memory
type MemoryRange struct {
	Offset json.Uint32 `json:"offset"`
	Length json.Uint32 `json:"length"`
}

// CallArgs are the arguments to Call
type CallArgs struct {
	api.FromArgs
	ContractID ids.ID        `json:"contractID"`
	Function   string        `json:"function"`
	Params     []json.Uint64 `json:"params"`
	// Writes are applied in order before the call
	Writes []MemoryWrite `json:"writes"`
	// Reads are taken after the call
	Reads []MemoryRange `json:"reads"`
}

// CallReply is the response from calling Call
type CallReply struct {
	Results []json.Uint64 `json:"results"`
	Reads   [][]byte      `json:"reads"`
	GasUsed json.Uint64   `json:"gasUsed"`
}

// Call runs the exported [Function] of a deployed contract on behalf of
// [From]. Chain extension weight is charged against a fresh meter with the
// configured gas limit. A trap fails the call.
func (s *Service) Call(r *http.Request, args *CallArgs, reply *CallReply) error {
	s.log.Debug("API called",
		zap.String("service", "wasm"),
		zap.String("method", "call"),
		zap.Stringer("from", args.From),
		zap.Stringer("contractID", args.ContractID),
		zap.String("function", args.Function),
	)

	s.lock.Lock()
	defer s.lock.Unlock()

	contract, ok := s.contracts[args.ContractID]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownContract, args.ContractID)
	}

	for _, w := range args.Writes {
		if err := contract.WriteMemory(uint32(w.Offset), w.Data); err != nil {
			return err
		}
	}

	params := make([]uint64, len(args.Params))
	for i, param := range args.Params {
		params[i] = uint64(param)
	}

	meter := gas.NewMeter(s.gasLimit)
	results, err := contract.Call(r.Context(), args.From, meter, args.Function, params...)
	if err != nil {
		return err
	}

	reply.Results = make([]json.Uint64, len(results))
	for i, result := range results {
		reply.Results[i] = json.Uint64(result)
	}
	reply.Reads = make([][]byte, len(args.Reads))
	for i, rng := range args.Reads {
		reply.Reads[i], err = contract.ReadMemory(uint32(rng.Offset), uint32(rng.Length))
		if err != nil {
			return err
		}
	}
	reply.GasUsed = json.Uint64(meter.Consumed())
	return nil
}
