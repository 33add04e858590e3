// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainext

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/nftext/utils/logging"
)

var (
	ErrUnknownExtension   = errors.New("unknown extension")
	ErrDuplicateExtension = errors.New("duplicate extension")
)

// Registry dispatches calls to the extension registered under the call's
// extension id.
type Registry struct {
	log logging.Logger

	lock       sync.RWMutex
	extensions map[uint16]Extension
}

func NewRegistry(log logging.Logger) *Registry {
	return &Registry{
		log:        log,
		extensions: make(map[uint16]Extension),
	}
}

func (r *Registry) Register(id uint16, ext Extension) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.extensions[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateExtension, id)
	}
	r.extensions[id] = ext

	r.log.Info("registered chain extension",
		zap.Uint16("extensionID", id),
	)
	return nil
}

func (r *Registry) Call(env Environment) (RetVal, error) {
	extID := env.ExtID()

	r.lock.RLock()
	ext, ok := r.extensions[extID]
	r.lock.RUnlock()

	if !ok {
		r.log.Debug("call to unknown chain extension",
			zap.Uint16("extensionID", extID),
			zap.String("funcID", FuncLabel(env.FuncID())),
		)
		return RetVal{}, fmt.Errorf("%w: %d", ErrUnknownExtension, extID)
	}
	return ext.Call(env)
}

// IDs returns the registered extension ids in ascending order.
func (r *Registry) IDs() []uint16 {
	r.lock.RLock()
	defer r.lock.RUnlock()

	extIDs := maps.Keys(r.extensions)
	slices.Sort(extIDs)
	return extIDs
}
