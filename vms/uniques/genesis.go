// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package uniques

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/nftext/ids"
)

// GenesisCollection is a collection, and the items minted to its admin, that
// exists from the first start of a node.
type GenesisCollection struct {
	ID    CollectionID `json:"id"`
	Owner ids.ID       `json:"owner"`
	Items []ItemID     `json:"items"`
}

// InitGenesis creates every collection of [genesis] that doesn't exist yet.
// Collections that already exist are left untouched so that a node can be
// restarted on a persistent database.
func (m *Module) InitGenesis(genesis []GenesisCollection) error {
	for _, g := range genesis {
		_, exists, err := m.CollectionOwner(g.ID)
		if err != nil {
			return err
		}
		if exists {
			m.log.Debug("skipping existing genesis collection",
				zap.Uint32("collection", uint32(g.ID)),
			)
			continue
		}

		if err := m.CreateCollection(g.Owner, g.ID); err != nil {
			return fmt.Errorf("couldn't create genesis collection %d: %w", g.ID, err)
		}
		for _, item := range g.Items {
			if err := m.Mint(g.Owner, g.ID, item, g.Owner); err != nil {
				return fmt.Errorf("couldn't mint genesis item %d of collection %d: %w", item, g.ID, err)
			}
		}
	}
	return nil
}
