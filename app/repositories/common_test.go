package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := Open(t.TempDir())
	assert.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestGetNextID(t *testing.T) {
	db := openTestDB(t)

	t.Run("first ID", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, PostSeqKey)
			assert.NoError(t, err)
			assert.Equal(t, 1, id)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("sequential IDs", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			for want := 2; want <= 5; want++ {
				id, err := getNextID(txn, PostSeqKey)
				assert.NoError(t, err)
				assert.Equal(t, want, id)
			}
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("independent sequences", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, UserSeqKey)
			assert.NoError(t, err)
			assert.Equal(t, 1, id)
			return nil
		})
		assert.NoError(t, err)
	})
}

func TestKeyOrdering(t *testing.T) {
	// Zero-padded keys must iterate in insertion order even past
	// single-digit IDs.
	assert.Less(t, string(postKey(2)), string(postKey(10)))
	assert.Less(t, string(postKey(99)), string(postKey(100)))
	assert.Less(t, string(userKey(9)), string(userKey(11)))
}
