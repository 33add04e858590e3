// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package memdb

import (
	"strings"
	"sync"

	"github.com/google/btree"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/nftext/database"
)

const (
	// Name is the name of this database for database switches
	Name = "memdb"

	degree = 32
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iterator)(nil)
)

type entry struct {
	key   string
	value []byte
}

func lessEntry(a, b entry) bool {
	return a.key < b.key
}

// Database is an ephemeral key-value store. Pairs are kept in a btree so
// that iterators only visit the range they cover.
type Database struct {
	lock sync.RWMutex
	// nil once the database is closed
	entries *btree.BTreeG[entry]
}

func New() *Database {
	return &Database{entries: btree.NewG(degree, lessEntry)}
}

func (db *Database) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.entries == nil {
		return database.ErrClosed
	}
	db.entries = nil
	return nil
}

func (db *Database) isClosed() bool {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.entries == nil
}

func (db *Database) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.entries == nil {
		return false, database.ErrClosed
	}
	return db.entries.Has(entry{key: string(key)}), nil
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.entries == nil {
		return nil, database.ErrClosed
	}
	if e, ok := db.entries.Get(entry{key: string(key)}); ok {
		return slices.Clone(e.value), nil
	}
	return nil, database.ErrNotFound
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.entries == nil {
		return database.ErrClosed
	}
	db.put(string(key), value)
	return nil
}

func (db *Database) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.entries == nil {
		return database.ErrClosed
	}
	db.entries.Delete(entry{key: string(key)})
	return nil
}

// put assumes the write lock is held.
func (db *Database) put(key string, value []byte) {
	db.entries.ReplaceOrInsert(entry{
		key:   key,
		value: append([]byte{}, value...),
	})
}

func (db *Database) NewBatch() database.Batch {
	return &batch{db: db}
}

func (db *Database) NewIterator() database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, nil)
}

func (db *Database) NewIteratorWithStart(start []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(start, nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, prefix)
}

// NewIteratorWithStartAndPrefix iterates over a snapshot of the matching
// pairs taken when it is called.
func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.entries == nil {
		return &database.IteratorError{
			Err: database.ErrClosed,
		}
	}

	prefixString := string(prefix)
	pivot := entry{key: max(string(start), prefixString)}
	it := &iterator{db: db}
	db.entries.AscendGreaterOrEqual(pivot, func(e entry) bool {
		if !strings.HasPrefix(e.key, prefixString) {
			return false
		}
		it.entries = append(it.entries, e)
		return true
	})
	return it
}

type batch struct {
	database.BatchOps

	db *Database
}

func (b *batch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()

	if b.db.entries == nil {
		return database.ErrClosed
	}
	for _, op := range b.Ops {
		if op.Delete {
			b.db.entries.Delete(entry{key: string(op.Key)})
		} else {
			b.db.put(string(op.Key), op.Value)
		}
	}
	return nil
}

func (b *batch) Inner() database.Batch {
	return b
}

type iterator struct {
	db      *Database
	next    int
	entries []entry
	err     error
}

func (it *iterator) Next() bool {
	if it.db.isClosed() {
		it.Release()
		it.err = database.ErrClosed
		return false
	}
	if it.next >= len(it.entries) {
		// Exhausted iterators report no pair.
		it.next = len(it.entries) + 1
		return false
	}
	it.next++
	return true
}

func (it *iterator) Error() error {
	return it.err
}

func (it *iterator) current() (entry, bool) {
	if it.next == 0 || it.next > len(it.entries) {
		return entry{}, false
	}
	return it.entries[it.next-1], true
}

func (it *iterator) Key() []byte {
	if e, ok := it.current(); ok {
		return []byte(e.key)
	}
	return nil
}

func (it *iterator) Value() []byte {
	if e, ok := it.current(); ok {
		return slices.Clone(e.value)
	}
	return nil
}

func (it *iterator) Release() {
	it.next = 0
	it.entries = nil
}
