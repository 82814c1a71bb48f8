package sources

import (
	"github.com/dgraph-io/badger/v4"
)

// DocCache persists fetched topology documents on disk so a restarted
// process skips the network entirely.
type DocCache struct {
	db *badger.DB
}

func OpenDocCache(path string) (*DocCache, error) {
	opts := badger.DefaultOptions(path)
	// Decrease logging verbosity
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &DocCache{db: db}, nil
}

func (c *DocCache) Close() error {
	return c.db.Close()
}

func (c *DocCache) Get(key string) ([]byte, bool) {
	var val []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *DocCache) Put(key string, val []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), val)
	})
}
