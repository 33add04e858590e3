// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dbtest is the conformance suite every database implementation runs.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/nftext/database"
)

// Tests is a list of all database tests
var Tests = map[string]func(t *testing.T, db database.Database){
	"SimpleKeyValue":       TestSimpleKeyValue,
	"KeyEmptyValue":        TestKeyEmptyValue,
	"SimpleKeyValueClosed": TestSimpleKeyValueClosed,
	"MemorySafetyDatabase": TestMemorySafetyDatabase,
	"BatchPut":             TestBatchPut,
	"BatchDelete":          TestBatchDelete,
	"BatchReset":           TestBatchReset,
	"BatchReplay":          TestBatchReplay,
	"BatchInner":           TestBatchInner,
	"Iterator":             TestIterator,
	"IteratorStart":        TestIteratorStart,
	"IteratorPrefix":       TestIteratorPrefix,
	"IteratorClosed":       TestIteratorClosed,
}

// TestSimpleKeyValue tests to make sure that simple Put + Get + Delete + Has
// calls return the expected values.
func TestSimpleKeyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Delete(key))
	require.NoError(db.Put(key, value))

	has, err = db.Has(key)
	require.NoError(err)
	require.True(has)

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)

	require.NoError(db.Delete(key))

	has, err = db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Delete(key))
}

func TestKeyEmptyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	val := []byte(nil)

	_, err := db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Put(key, val))

	value, err := db.Get(key)
	require.NoError(err)
	require.Empty(value)
}

// TestSimpleKeyValueClosed tests to make sure that Put + Get + Delete + Has
// calls return the correct error when the database has been closed.
func TestSimpleKeyValueClosed(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))
	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)

	require.NoError(db.Close())

	_, err = db.Has(key)
	require.ErrorIs(err, database.ErrClosed)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrClosed)

	require.ErrorIs(db.Put(key, value), database.ErrClosed)
	require.ErrorIs(db.Delete(key), database.ErrClosed)
	require.ErrorIs(db.Close(), database.ErrClosed)
}

// TestMemorySafetyDatabase ensures it is safe to modify a key or value after
// passing it to Put, and to modify a value returned by Get.
func TestMemorySafetyDatabase(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("1key")
	value := []byte("value")
	require.NoError(db.Put(key, value))

	key[0] = '2'
	value[0] = 'V'

	got, err := db.Get([]byte("1key"))
	require.NoError(err)
	require.Equal([]byte("value"), got)

	got[0] = 'X'
	got, err = db.Get([]byte("1key"))
	require.NoError(err)
	require.Equal([]byte("value"), got)

	has, err := db.Has([]byte("2key"))
	require.NoError(err)
	require.False(has)
}

// TestBatchPut tests to make sure that batched writes work as expected.
func TestBatchPut(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	batch := db.NewBatch()
	require.NotNil(batch)

	require.NoError(batch.Put(key, value))
	require.Positive(batch.Size())

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	require.NoError(batch.Write())

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)

	batch = db.NewBatch()
	require.NoError(batch.Put(key, value))
	require.NoError(db.Close())
	require.ErrorIs(batch.Write(), database.ErrClosed)
}

// TestBatchDelete tests to make sure that batched deletes work as expected.
func TestBatchDelete(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))

	batch := db.NewBatch()
	require.NoError(batch.Delete(key))
	require.NoError(batch.Write())

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, database.ErrNotFound)
}

// TestBatchReset tests to make sure that a batch drops un-written operations
// when it is reset.
func TestBatchReset(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))

	batch := db.NewBatch()
	require.NoError(batch.Delete(key))

	batch.Reset()
	require.Zero(batch.Size())
	require.NoError(batch.Write())

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)
}

// TestBatchReplay tests to make sure that batches will correctly replay their
// contents.
func TestBatchReplay(t *testing.T, db database.Database) {
	require := require.New(t)

	key1 := []byte("hello1")
	value1 := []byte("world1")
	key2 := []byte("hello2")

	batch := db.NewBatch()
	require.NoError(batch.Put(key1, value1))
	require.NoError(batch.Delete(key2))

	recorder := &recordingWriter{}
	require.NoError(batch.Replay(recorder))
	require.Equal([]string{"put hello1", "delete hello2"}, recorder.ops)
}

// TestBatchInner tests to make sure that writing to the inner batch commits
// the operations.
func TestBatchInner(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	batch := db.NewBatch()
	require.NoError(batch.Put(key, value))
	require.NoError(batch.Inner().Write())

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)
}

// TestIterator tests to make sure the database iterates over all the
// key-value pairs in lexicographic order.
func TestIterator(t *testing.T, db database.Database) {
	require := require.New(t)

	key1 := []byte("hello1")
	value1 := []byte("world1")
	key2 := []byte("hello2")
	value2 := []byte("world2")

	require.NoError(db.Put(key2, value2))
	require.NoError(db.Put(key1, value1))

	iterator := db.NewIterator()
	defer iterator.Release()

	require.True(iterator.Next())
	require.Equal(key1, iterator.Key())
	require.Equal(value1, iterator.Value())

	require.True(iterator.Next())
	require.Equal(key2, iterator.Key())
	require.Equal(value2, iterator.Value())

	require.False(iterator.Next())
	require.Nil(iterator.Key())
	require.Nil(iterator.Value())
	require.NoError(iterator.Error())
}

// TestIteratorStart tests to make sure the iterator can be configured to
// start mid way through the database.
func TestIteratorStart(t *testing.T, db database.Database) {
	require := require.New(t)

	key1 := []byte("hello1")
	key2 := []byte("hello2")
	value2 := []byte("world2")

	require.NoError(db.Put(key1, []byte("world1")))
	require.NoError(db.Put(key2, value2))

	iterator := db.NewIteratorWithStart(key2)
	defer iterator.Release()

	require.True(iterator.Next())
	require.Equal(key2, iterator.Key())
	require.Equal(value2, iterator.Value())

	require.False(iterator.Next())
	require.NoError(iterator.Error())
}

// TestIteratorPrefix tests to make sure the iterator can be configured to skip
// keys missing the provided prefix.
func TestIteratorPrefix(t *testing.T, db database.Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("hello"), []byte("world1")))
	require.NoError(db.Put([]byte("goodbye"), []byte("world2")))
	require.NoError(db.Put([]byte("joy"), []byte("world3")))

	iterator := db.NewIteratorWithPrefix([]byte("h"))
	defer iterator.Release()

	var keys []string
	for iterator.Next() {
		keys = append(keys, string(iterator.Key()))
	}
	require.NoError(iterator.Error())
	require.Equal([]string{"hello"}, keys)

	iterator = db.NewIteratorWithStartAndPrefix([]byte("j"), nil)
	defer iterator.Release()

	keys = keys[:0]
	for iterator.Next() {
		keys = append(keys, string(iterator.Key()))
	}
	require.NoError(iterator.Error())
	require.True(slices.Equal([]string{"joy"}, keys))
}

// TestIteratorClosed tests to make sure that an iterator that was created with
// a closed database will report a closed error correctly.
func TestIteratorClosed(t *testing.T, db database.Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("hello1"), []byte("world1")))
	require.NoError(db.Close())

	iterator := db.NewIterator()
	defer iterator.Release()

	require.False(iterator.Next())
	require.Nil(iterator.Key())
	require.Nil(iterator.Value())
	require.ErrorIs(iterator.Error(), database.ErrClosed)
}

type recordingWriter struct {
	ops []string
}

func (r *recordingWriter) Put(key, _ []byte) error {
	r.ops = append(r.ops, "put "+string(key))
	return nil
}

func (r *recordingWriter) Delete(key []byte) error {
	r.ops = append(r.ops, "delete "+string(key))
	return nil
}
