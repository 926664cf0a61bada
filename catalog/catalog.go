// SPDX-License-Identifier: MIT

package catalog

import (
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

var (
	// ErrClosed is returned by every operation on a closed Catalog.
	ErrClosed = errors.New("catalog: closed")

	// ErrReadOnly is returned by TryAdd on a catalog opened with ReadOnly.
	ErrReadOnly = errors.New("catalog: read-only")

	// ErrBadOptions indicates an unusable Options combination.
	ErrBadOptions = errors.New("catalog: bad options")

	// ErrEmptyForm is returned when a nil or empty form is offered.
	ErrEmptyForm = errors.New("catalog: empty form")
)

// formPrefix namespaces form keys so other records may share the store later.
const formPrefix byte = 'F'

// inMemoryTableSize keeps throwaway catalogs small; forms are a few hundred bytes.
const inMemoryTableSize = 16 << 20

// maxConflictRetries bounds TryAdd retries after badger.ErrConflict.
const maxConflictRetries = 8

// Options configures Open.
type Options struct {
	// Path is the Badger directory. Empty implies InMemory.
	Path string

	// InMemory keeps all data in RAM; Path is ignored.
	InMemory bool

	// ReadOnly opens an existing on-disk catalog for lookups only.
	ReadOnly bool
}

// Catalog is a set of canonical forms. It is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	db       *badger.DB
	readOnly bool
}

// Open opens (or creates) a catalog.
func Open(opts Options) (*Catalog, error) {
	inMemory := opts.InMemory || opts.Path == ""
	if inMemory && opts.ReadOnly {
		return nil, errors.Wrap(ErrBadOptions, "read-only catalog needs a Path")
	}

	var dbOpts badger.Options
	if inMemory {
		dbOpts = badger.DefaultOptions("").WithInMemory(true).WithMemTableSize(inMemoryTableSize)
	} else {
		dbOpts = badger.DefaultOptions(opts.Path).WithReadOnly(opts.ReadOnly)
	}
	dbOpts = dbOpts.WithLogger(nil)

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: opening %q", opts.Path)
	}
	klog.V(2).Infof("catalog: opened (in-memory=%v, read-only=%v)", inMemory, opts.ReadOnly)

	return &Catalog{db: db, readOnly: opts.ReadOnly}, nil
}

func formKey(form []byte) []byte {
	key := make([]byte, 0, len(form)+1)
	key = append(key, formPrefix)

	return append(key, form...)
}

// TryAdd inserts form and reports whether it was absent before.
func (c *Catalog) TryAdd(form []byte) (bool, error) {
	if len(form) == 0 {
		return false, ErrEmptyForm
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return false, ErrClosed
	}
	if c.readOnly {
		return false, ErrReadOnly
	}

	key := formKey(form)
	for attempt := 0; ; attempt++ {
		fresh := false
		err := c.db.Update(func(txn *badger.Txn) error {
			_, err := txn.Get(key)
			if err == nil {
				return nil
			}
			if err != badger.ErrKeyNotFound {
				return err
			}
			fresh = true

			return txn.Set(key, nil)
		})
		if err == badger.ErrConflict && attempt < maxConflictRetries {
			continue
		}
		if err != nil {
			return false, errors.Wrap(err, "catalog: add")
		}

		return fresh, nil
	}
}

// Has reports whether form is present.
func (c *Catalog) Has(form []byte) (bool, error) {
	if len(form) == 0 {
		return false, ErrEmptyForm
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return false, ErrClosed
	}

	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(formKey(form))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		found = err == nil

		return err
	})
	if err != nil {
		return false, errors.Wrap(err, "catalog: lookup")
	}

	return found, nil
}

// Len counts the stored forms.
func (c *Catalog) Len() (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.db == nil {
		return 0, ErrClosed
	}

	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: false,
			Prefix:         []byte{formPrefix},
		})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "catalog: count")
	}

	return n, nil
}

// Close releases the store. Calling Close twice is a no-op.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil

	return errors.Wrap(err, "catalog: close")
}
