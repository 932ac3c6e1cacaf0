// Package storage keeps projects in a local bbolt database under the
// appdraft home directory. One bucket holds the serialized documents, a
// second the per-project metadata.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/appdraft/appdraft/common"
	"github.com/appdraft/appdraft/document"
	"github.com/appdraft/appdraft/pathlib"
	bolt "go.etcd.io/bbolt"
)

var (
	ErrProjectExists  = errors.New("project already exists")
	ErrProjectMissing = errors.New("project not found")
	bucketProjects    = []byte("projects")
	bucketMeta        = []byte("meta")
	openTimeout       = 2 * time.Second
)

// Meta is the local bookkeeping the document itself does not carry.
type Meta struct {
	Description string `json:"description"`
	RemoteID    string `json:"remote_id,omitempty"`
	Fingerprint string `json:"fingerprint"`
	UpdatedAt   int64  `json:"updated_at"`
}

type Summary struct {
	Name        string
	Description string
	RemoteID    string
	Fingerprint string
	Screens     int
	UpdatedAt   time.Time
}

type Store struct {
	db     *bolt.DB
	unlock func()
}

// Open claims the editor lock and opens the project database, creating the
// home directory and buckets on first use.
func Open() (*Store, error) {
	unlock, err := claimLock()
	if err != nil {
		return nil, err
	}
	_, err = pathlib.EnsureParentDirectory(common.StoreFile())
	if err != nil {
		unlock()
		return nil, err
	}
	db, err := bolt.Open(common.StoreFile(), 0o640, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		unlock()
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketProjects, bucketMeta} {
			if _, failure := tx.CreateBucketIfNotExists(name); failure != nil {
				return failure
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		unlock()
		return nil, err
	}
	common.Trace("Project store open at %q", common.StoreFile())
	return &Store{db: db, unlock: unlock}, nil
}

func (it *Store) Close() error {
	defer it.unlock()
	return it.db.Close()
}

// Save writes the document and its metadata under the project name,
// stamping fingerprint and update time.
func (it *Store) Save(name string, doc *document.Document, meta Meta) error {
	blob, err := document.Encode(doc)
	if err != nil {
		return err
	}
	meta.Fingerprint = document.Fingerprint(doc)
	meta.UpdatedAt = time.Now().Unix()
	side, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return it.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketProjects).Put([]byte(name), blob); err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put([]byte(name), side)
	})
}

// Load reads one project back; the document is schema decoded, not just
// unmarshalled, so a damaged store entry surfaces as a schema error.
func (it *Store) Load(name string) (*document.Document, Meta, error) {
	var blob, side []byte
	err := it.db.View(func(tx *bolt.Tx) error {
		if value := tx.Bucket(bucketProjects).Get([]byte(name)); value != nil {
			blob = append(blob, value...)
		}
		if value := tx.Bucket(bucketMeta).Get([]byte(name)); value != nil {
			side = append(side, value...)
		}
		return nil
	})
	if err != nil {
		return nil, Meta{}, err
	}
	if blob == nil {
		return nil, Meta{}, fmt.Errorf("%w: %q", ErrProjectMissing, name)
	}
	doc, err := document.Decode(blob)
	if err != nil {
		return nil, Meta{}, err
	}
	meta := Meta{}
	if side != nil {
		if err := json.Unmarshal(side, &meta); err != nil {
			return nil, Meta{}, err
		}
	}
	return doc, meta, nil
}

func (it *Store) Has(name string) bool {
	found := false
	it.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(bucketProjects).Get([]byte(name)) != nil
		return nil
	})
	return found
}

// List summarizes every stored project in key order.
func (it *Store) List() ([]Summary, error) {
	result := []Summary{}
	err := it.db.View(func(tx *bolt.Tx) error {
		metas := tx.Bucket(bucketMeta)
		return tx.Bucket(bucketProjects).ForEach(func(key, value []byte) error {
			entry := Summary{Name: string(key)}
			if doc, err := document.Decode(value); err == nil {
				entry.Screens = len(doc.Screens)
			}
			if side := metas.Get(key); side != nil {
				meta := Meta{}
				if err := json.Unmarshal(side, &meta); err == nil {
					entry.Description = meta.Description
					entry.RemoteID = meta.RemoteID
					entry.Fingerprint = meta.Fingerprint
					entry.UpdatedAt = time.Unix(meta.UpdatedAt, 0)
				}
			}
			result = append(result, entry)
			return nil
		})
	})
	return result, err
}

// Delete drops a project; deleting a missing one is a harmless no-op.
func (it *Store) Delete(name string) error {
	return it.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketProjects).Delete([]byte(name)); err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Delete([]byte(name))
	})
}

// Rename moves a project to a new name, refusing to clobber an existing
// one.
func (it *Store) Rename(oldName, newName string) error {
	return it.db.Update(func(tx *bolt.Tx) error {
		projects := tx.Bucket(bucketProjects)
		metas := tx.Bucket(bucketMeta)
		blob := projects.Get([]byte(oldName))
		if blob == nil {
			return fmt.Errorf("%w: %q", ErrProjectMissing, oldName)
		}
		if projects.Get([]byte(newName)) != nil {
			return fmt.Errorf("%w: %q", ErrProjectExists, newName)
		}
		if err := projects.Put([]byte(newName), blob); err != nil {
			return err
		}
		if side := metas.Get([]byte(oldName)); side != nil {
			if err := metas.Put([]byte(newName), side); err != nil {
				return err
			}
		}
		if err := projects.Delete([]byte(oldName)); err != nil {
			return err
		}
		return metas.Delete([]byte(oldName))
	})
}
