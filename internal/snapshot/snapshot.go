// Package snapshot records content digests of the computed tables so a
// regenerated build can be checked against the last known-good output.
package snapshot

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/hailam/attacktables"
	"github.com/hailam/attacktables/internal/codegen"
)

// Storage keys
const (
	keyLatest      = "latest"
	keySnapshotFmt = "snapshot:%s"
)

// ErrNoSnapshot is returned when the requested snapshot does not exist.
var ErrNoSnapshot = errors.New("no snapshot recorded")

// Digest fingerprints the content of one table.
type Digest struct {
	Entries int    `json:"entries"`
	Sum     string `json:"sum"` // xxhash64 of the entries in emission order
}

// Snapshot fingerprints the full output of one generator run.
type Snapshot struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Tables    map[string]Digest `json:"tables"`
}

// Capture fingerprints the given tables under a fresh snapshot ID.
func Capture(tables []codegen.Table) *Snapshot {
	snap := &Snapshot{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Tables:    make(map[string]Digest, len(tables)),
	}
	for _, t := range tables {
		snap.Tables[t.Key] = digest(t)
	}
	return snap
}

func digest(t codegen.Table) Digest {
	h := xxhash.New()
	var buf [8]byte
	n := 0
	sum := func(entries []attacktables.Bitboard) {
		for _, e := range entries {
			binary.LittleEndian.PutUint64(buf[:], uint64(e))
			h.Write(buf[:])
			n++
		}
	}
	if t.Grid != nil {
		for _, row := range t.Grid {
			sum(row)
		}
	} else {
		sum(t.Flat)
	}
	return Digest{Entries: n, Sum: fmt.Sprintf("%016x", h.Sum64())}
}

// Diff returns the sorted table keys whose digests differ between two
// snapshots, including keys present in only one of them.
func Diff(a, b *Snapshot) []string {
	keys := make(map[string]bool)
	for k := range a.Tables {
		keys[k] = true
	}
	for k := range b.Tables {
		keys[k] = true
	}

	var out []string
	for k := range keys {
		da, oka := a.Tables[k]
		db, okb := b.Tables[k]
		if !oka || !okb || da != db {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Store persists snapshots in a BadgerDB directory.
type Store struct {
	db *badger.DB
}

// Open opens the snapshot store in dir, creating it if needed.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put saves a snapshot and marks it as the latest.
func (s *Store) Put(snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(fmt.Sprintf(keySnapshotFmt, snap.ID)), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyLatest), []byte(snap.ID))
	})
}

// Get loads a snapshot by ID.
func (s *Store) Get(id string) (*Snapshot, error) {
	var snap Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(fmt.Sprintf(keySnapshotFmt, id)))
		if err == badger.ErrKeyNotFound {
			return ErrNoSnapshot
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

// Latest loads the most recently recorded snapshot.
func (s *Store) Latest() (*Snapshot, error) {
	var id string

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyLatest))
		if err == badger.ErrKeyNotFound {
			return ErrNoSnapshot
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			id = string(val)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}
