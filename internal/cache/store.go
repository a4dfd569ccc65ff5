package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Data kinds stored in the cache
const (
	KindScheduleToday    = "schedule_today"
	KindScheduleTomorrow = "schedule_tomorrow"
	KindVerse            = "verse"
	KindHadith           = "hadith"
)

// File and open constants
const (
	FileMode    = 0600
	OpenTimeout = time.Second
)

var bucketPayloads = []byte("payloads")

// ErrMiss means no entry is stored for the requested kind
var ErrMiss = errors.New("cache miss")

// entry wraps a cached payload with the time it was fetched
type entry struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Payload   json.RawMessage `json:"payload"`
}

// Store persists the last successfully fetched payload per data kind so the
// widget can render immediately on start and survive offline periods.
// Last write wins; there is no eviction.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the cache file at path
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, FileMode, &bolt.Options{Timeout: OpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPayloads)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores v as the payload for kind, replacing any previous entry
func (s *Store) Put(kind string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}

	data, err := json.Marshal(entry{FetchedAt: time.Now(), Payload: payload})
	if err != nil {
		return fmt.Errorf("encode %s entry: %w", kind, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketPayloads).Put([]byte(kind), data)
	})
}

// Get loads the payload for kind into v and returns when it was fetched.
// Returns ErrMiss when nothing is stored for kind.
func (s *Store) Get(kind string, v any) (time.Time, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketPayloads).Get([]byte(kind))
		if data != nil {
			raw = append(raw, data...)
		}
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}

	if raw == nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrMiss, kind)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return time.Time{}, fmt.Errorf("decode %s entry: %w", kind, err)
	}
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return time.Time{}, fmt.Errorf("decode %s payload: %w", kind, err)
	}

	return e.FetchedAt, nil
}
