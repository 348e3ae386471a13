package router

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/umbracle/ethgo"
	bolt "go.etcd.io/bbolt"
)

// InstanceStore is the local mirror of the router instances managed by this tool
type InstanceStore interface {
	// Put inserts or overwrites the instance
	Put(instance *RouterInstance) error
	// Get returns the instance deployed at addr on the given network
	Get(network string, addr ethgo.Address) (*RouterInstance, error)
	// List returns every instance of the given network
	List(network string) ([]*RouterInstance, error)
	// Update loads the instance, applies fn and stores the result if fn succeeds.
	// Updates are serialized so concurrent callers never lose a mutation.
	Update(network string, addr ethgo.Address, fn func(*RouterInstance) error) error
}

var (
	routersBucket = []byte("routers")

	_ InstanceStore = (*BoltStore)(nil)
)

// BoltStore keeps instances in a bbolt file, with one nested bucket per network
// keyed by the router address. Instances are never deleted.
type BoltStore struct {
	db   *bolt.DB
	lock sync.Mutex
}

func NewBoltStore(dbFilePath string) (*BoltStore, error) {
	store := &BoltStore{}

	if err := store.init(dbFilePath); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *BoltStore) init(dbFilePath string) (err error) {
	if s.db, err = bolt.Open(dbFilePath, 0600, nil); err != nil {
		return fmt.Errorf("failed to open state db %s: %w", dbFilePath, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(routersBucket)

		return err
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Put(instance *RouterInstance) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		return putInstance(tx, instance)
	})
}

func (s *BoltStore) Get(network string, addr ethgo.Address) (result *RouterInstance, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		result, err = getInstance(tx, network, addr)

		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *BoltStore) List(network string) ([]*RouterInstance, error) {
	var result []*RouterInstance

	if err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(routersBucket).Bucket([]byte(network))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(_, value []byte) error {
			instance := &RouterInstance{}
			if err := json.Unmarshal(value, instance); err != nil {
				return err
			}

			instance.ensureMaps()
			result = append(result, instance)

			return nil
		})
	}); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *BoltStore) Update(network string, addr ethgo.Address, fn func(*RouterInstance) error) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		instance, err := getInstance(tx, network, addr)
		if err != nil {
			return err
		}

		if err := fn(instance); err != nil {
			return err
		}

		return putInstance(tx, instance)
	})
}

func putInstance(tx *bolt.Tx, instance *RouterInstance) error {
	bucket, err := tx.Bucket(routersBucket).CreateBucketIfNotExists([]byte(instance.Network.Name))
	if err != nil {
		return err
	}

	value, err := json.Marshal(instance)
	if err != nil {
		return err
	}

	return bucket.Put(instance.Address[:], value)
}

func getInstance(tx *bolt.Tx, network string, addr ethgo.Address) (*RouterInstance, error) {
	var value []byte

	if bucket := tx.Bucket(routersBucket).Bucket([]byte(network)); bucket != nil {
		value = bucket.Get(addr[:])
	}

	if value == nil {
		return nil, fmt.Errorf("%w: %s on %s", ErrInstanceNotFound, addr, network)
	}

	instance := &RouterInstance{}
	if err := json.Unmarshal(value, instance); err != nil {
		return nil, err
	}

	instance.ensureMaps()

	return instance, nil
}
