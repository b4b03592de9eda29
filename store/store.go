// Package store persists study records and preferences in a BoltDB file
package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/studytimer/studytimer/internal/osutil"
)

const bucketName = "studytimer"

// Client is a BoltDB database client. All keys live in a single bucket.
type Client struct {
	*bolt.DB
}

// Get returns a copy of the value stored under key.
func (c *Client) Get(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v != nil {
			// bolt values are only valid for the life of the transaction
			value = append([]byte{}, v...)
		}

		return nil
	})

	return value, err
}

func (c *Client) Put(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), value)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// another process holds the file lock
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, errOpenDB.Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()

		return nil, errOpenDB.Wrap(err)
	}

	return &Client{
		db,
	}, nil
}
