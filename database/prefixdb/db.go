// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prefixdb

import (
	"sync"

	"github.com/ava-labs/nftext/database"
	"github.com/ava-labs/nftext/utils/hashing"
)

var (
	_ database.Database = (*Database)(nil)
	_ database.Batch    = (*batch)(nil)
	_ database.Iterator = (*iterator)(nil)
)

// Database partitions a database by prepending the hash of a prefix to every
// key. Closing a Database doesn't close the database it wraps.
type Database struct {
	dbPrefix []byte

	lock   sync.RWMutex
	db     database.Database
	closed bool
}

// New returns the partition of [db] named by [prefix]. Nesting partitions
// hashes the joined prefixes once instead of stacking wrappers.
func New(prefix []byte, db database.Database) *Database {
	if inner, ok := db.(*Database); ok {
		joined := append(append([]byte{}, inner.dbPrefix...), prefix...)
		return &Database{
			dbPrefix: hashing.ComputeHash256(joined),
			db:       inner.db,
		}
	}
	return &Database{
		dbPrefix: hashing.ComputeHash256(prefix),
		db:       db,
	}
}

// prefix returns a copy of [key] with this partition's prefix prepended.
func (db *Database) prefix(key []byte) []byte {
	prefixed := make([]byte, 0, len(db.dbPrefix)+len(key))
	prefixed = append(prefixed, db.dbPrefix...)
	return append(prefixed, key...)
}

func (db *Database) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return false, database.ErrClosed
	}
	return db.db.Has(db.prefix(key))
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return nil, database.ErrClosed
	}
	return db.db.Get(db.prefix(key))
}

func (db *Database) Put(key, value []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Put(db.prefix(key), value)
}

func (db *Database) Delete(key []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Delete(db.prefix(key))
}

func (db *Database) NewBatch() database.Batch {
	return &batch{
		inner: db.db.NewBatch(),
		db:    db,
	}
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

func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return &database.IteratorError{
			Err: database.ErrClosed,
		}
	}
	return &iterator{
		Iterator:  db.db.NewIteratorWithStartAndPrefix(db.prefix(start), db.prefix(prefix)),
		db:        db,
		prefixLen: len(db.dbPrefix),
	}
}

func (db *Database) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.closed {
		return database.ErrClosed
	}
	db.closed = true
	return nil
}

func (db *Database) isClosed() bool {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.closed
}

// batch records the unprefixed operations for Replay and forwards the
// prefixed ones to a batch of the wrapped database.
type batch struct {
	database.BatchOps

	inner database.Batch
	db    *Database
}

func (b *batch) Put(key, value []byte) error {
	if err := b.BatchOps.Put(key, value); err != nil {
		return err
	}
	return b.inner.Put(b.db.prefix(key), value)
}

func (b *batch) Delete(key []byte) error {
	if err := b.BatchOps.Delete(key); err != nil {
		return err
	}
	return b.inner.Delete(b.db.prefix(key))
}

func (b *batch) Write() error {
	b.db.lock.RLock()
	defer b.db.lock.RUnlock()

	if b.db.closed {
		return database.ErrClosed
	}
	return b.inner.Write()
}

func (b *batch) Reset() {
	b.BatchOps.Reset()
	b.inner.Reset()
}

func (b *batch) Inner() database.Batch {
	return b.inner
}

// iterator strips the partition prefix from the keys of the wrapped
// iterator.
type iterator struct {
	database.Iterator

	db        *Database
	prefixLen int
	err       error
}

func (it *iterator) Next() bool {
	if it.db.isClosed() {
		it.err = database.ErrClosed
		return false
	}
	return it.Iterator.Next()
}

func (it *iterator) Key() []byte {
	if it.err != nil {
		return nil
	}
	key := it.Iterator.Key()
	if len(key) < it.prefixLen {
		return nil
	}
	return key[it.prefixLen:]
}

func (it *iterator) Value() []byte {
	if it.err != nil {
		return nil
	}
	return it.Iterator.Value()
}

func (it *iterator) Error() error {
	if it.err != nil {
		return it.err
	}
	return it.Iterator.Error()
}
