// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package uniques is a native non-fungible token module. Every item belongs to
// a collection, has exactly one owner and may name a single delegate that is
// approved to transfer it.
package uniques

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ava-labs/nftext/database"
	"github.com/ava-labs/nftext/database/prefixdb"
	"github.com/ava-labs/nftext/ids"
	"github.com/ava-labs/nftext/utils/logging"
)

var statePrefix = []byte("uniques")

// Module owns the collection and item state. Mutations are serialized and
// every mutation is committed with a single batch.
type Module struct {
	log logging.Logger

	lock sync.RWMutex
	db   database.Database
}

// New returns a module storing its state under its own prefix of [db].
func New(db database.Database, log logging.Logger) *Module {
	return &Module{
		log: log,
		db:  prefixdb.New(statePrefix, db),
	}
}

// CreateCollection registers [collection] with [owner] as its admin.
func (m *Module) CreateCollection(owner ids.ID, collection CollectionID) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	key := collectionKey(collection)
	has, err := m.db.Has(key)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: collection %d", ErrAlreadyExists, collection)
	}

	c := &Collection{Owner: owner}
	if err := m.db.Put(key, c.Bytes()); err != nil {
		return err
	}

	m.log.Debug("created collection",
		zap.Uint32("collection", uint32(collection)),
		zap.Stringer("owner", owner),
	)
	return nil
}

// CollectionOwner returns the admin of [collection]. The bool is false if the
// collection doesn't exist.
func (m *Module) CollectionOwner(collection CollectionID) (ids.ID, bool, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	c, err := m.getCollection(collection)
	switch {
	case errors.Is(err, ErrUnknownCollection):
		return ids.Empty, false, nil
	case err != nil:
		return ids.Empty, false, err
	default:
		return c.Owner, true, nil
	}
}

// Collection returns the stored state of [collection].
func (m *Module) Collection(collection CollectionID) (*Collection, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.getCollection(collection)
}

// Items returns the ids of every item in [collection] in ascending order.
func (m *Module) Items(collection CollectionID) ([]ItemID, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	it := m.db.NewIteratorWithPrefix(itemsPrefix(collection))
	defer it.Release()

	var items []ItemID
	for it.Next() {
		item, err := parseItemKey(it.Key())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, it.Error()
}

// Mint creates [item] in [collection], owned by [owner]. Only the collection
// admin may mint.
func (m *Module) Mint(origin ids.ID, collection CollectionID, item ItemID, owner ids.ID) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	c, err := m.getCollection(collection)
	if err != nil {
		return err
	}
	if c.Owner != origin {
		return fmt.Errorf("%w: %s is not the admin of collection %d", ErrNoPermission, origin, collection)
	}

	key := itemKey(collection, item)
	has, err := m.db.Has(key)
	if err != nil {
		return err
	}
	if has {
		return fmt.Errorf("%w: item %d of collection %d", ErrAlreadyExists, item, collection)
	}

	c.Items++
	i := &Item{Owner: owner}

	batch := m.db.NewBatch()
	if err := batch.Put(key, i.Bytes()); err != nil {
		return err
	}
	if err := batch.Put(collectionKey(collection), c.Bytes()); err != nil {
		return err
	}
	if err := batch.Write(); err != nil {
		return err
	}

	m.log.Debug("minted item",
		zap.Uint32("collection", uint32(collection)),
		zap.Uint32("item", uint32(item)),
		zap.Stringer("owner", owner),
	)
	return nil
}

// Burn destroys [item]. Only the item owner may burn it.
func (m *Module) Burn(origin ids.ID, collection CollectionID, item ItemID) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	c, err := m.getCollection(collection)
	if err != nil {
		return err
	}
	i, err := m.getItem(collection, item)
	if err != nil {
		return err
	}
	if i.Owner != origin {
		return fmt.Errorf("%w: %s doesn't own item %d of collection %d", ErrNoPermission, origin, item, collection)
	}

	c.Items--

	batch := m.db.NewBatch()
	if err := batch.Delete(itemKey(collection, item)); err != nil {
		return err
	}
	if err := batch.Put(collectionKey(collection), c.Bytes()); err != nil {
		return err
	}
	if err := batch.Write(); err != nil {
		return err
	}

	m.log.Debug("burned item",
		zap.Uint32("collection", uint32(collection)),
		zap.Uint32("item", uint32(item)),
	)
	return nil
}

// Owner returns the owner of [item]. The bool is false if the collection or
// the item doesn't exist.
func (m *Module) Owner(collection CollectionID, item ItemID) (ids.ID, bool, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	i, err := m.getItem(collection, item)
	switch {
	case errors.Is(err, ErrUnknownItem):
		return ids.Empty, false, nil
	case err != nil:
		return ids.Empty, false, err
	default:
		return i.Owner, true, nil
	}
}

// Item returns the stored state of [item].
func (m *Module) Item(collection CollectionID, item ItemID) (*Item, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.getItem(collection, item)
}

// Transfer moves [item] to [dest]. [origin] must be the owner or the approved
// delegate and the item must not be frozen. Any approval is cleared.
func (m *Module) Transfer(origin ids.ID, collection CollectionID, item ItemID, dest ids.ID) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	i, err := m.getItem(collection, item)
	if err != nil {
		return err
	}
	if i.Frozen {
		return fmt.Errorf("%w: item %d of collection %d", ErrFrozen, item, collection)
	}
	if i.Owner != origin && (i.Approved == nil || *i.Approved != origin) {
		return fmt.Errorf("%w: %s can't transfer item %d of collection %d", ErrNoPermission, origin, item, collection)
	}

	from := i.Owner
	i.Owner = dest
	i.Approved = nil
	if err := m.putItem(collection, item, i); err != nil {
		return err
	}

	m.log.Debug("transferred item",
		zap.Uint32("collection", uint32(collection)),
		zap.Uint32("item", uint32(item)),
		zap.Stringer("from", from),
		zap.Stringer("to", dest),
	)
	return nil
}

// Freeze disallows transfers of [item]. Only the collection admin may freeze.
func (m *Module) Freeze(origin ids.ID, collection CollectionID, item ItemID) error {
	return m.setFrozen(origin, collection, item, true)
}

// Thaw re-allows transfers of [item]. Only the collection admin may thaw.
func (m *Module) Thaw(origin ids.ID, collection CollectionID, item ItemID) error {
	return m.setFrozen(origin, collection, item, false)
}

func (m *Module) setFrozen(origin ids.ID, collection CollectionID, item ItemID, frozen bool) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	c, err := m.getCollection(collection)
	if err != nil {
		return err
	}
	if c.Owner != origin {
		return fmt.Errorf("%w: %s is not the admin of collection %d", ErrNoPermission, origin, collection)
	}
	i, err := m.getItem(collection, item)
	if err != nil {
		return err
	}

	i.Frozen = frozen
	return m.putItem(collection, item, i)
}

// ApproveTransfer allows [delegate] to transfer [item] once. Only the item
// owner may approve. A previous approval is replaced.
func (m *Module) ApproveTransfer(origin ids.ID, collection CollectionID, item ItemID, delegate ids.ID) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	i, err := m.getItem(collection, item)
	if err != nil {
		return err
	}
	if i.Owner != origin {
		return fmt.Errorf("%w: %s doesn't own item %d of collection %d", ErrNoPermission, origin, item, collection)
	}

	i.Approved = &delegate
	return m.putItem(collection, item, i)
}

// CancelApproval removes the approved delegate of [item]. Only the item owner
// may cancel.
func (m *Module) CancelApproval(origin ids.ID, collection CollectionID, item ItemID) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	i, err := m.getItem(collection, item)
	if err != nil {
		return err
	}
	if i.Owner != origin {
		return fmt.Errorf("%w: %s doesn't own item %d of collection %d", ErrNoPermission, origin, item, collection)
	}
	if i.Approved == nil {
		return fmt.Errorf("%w: item %d of collection %d", ErrNoDelegate, item, collection)
	}

	i.Approved = nil
	return m.putItem(collection, item, i)
}

func (m *Module) getCollection(collection CollectionID) (*Collection, error) {
	b, err := m.db.Get(collectionKey(collection))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCollection, collection)
	}
	if err != nil {
		return nil, err
	}
	return parseCollection(b)
}

func (m *Module) getItem(collection CollectionID, item ItemID) (*Item, error) {
	b, err := m.db.Get(itemKey(collection, item))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: item %d of collection %d", ErrUnknownItem, item, collection)
	}
	if err != nil {
		return nil, err
	}
	return parseItem(b)
}

func (m *Module) putItem(collection CollectionID, item ItemID, i *Item) error {
	return m.db.Put(itemKey(collection, item), i.Bytes())
}
