package recent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	apperrors "aitools/backend/pkg/errors"
)

const boltBackend = "bolt"

var recentBucket = []byte("recent_tools")

// BoltStore keeps lists in a single bbolt file, one key per client
type BoltStore struct {
	db *bolt.DB
}

// OpenBoltStore opens or creates the database at path
func OpenBoltStore(path string) (*BoltStore, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("recent store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return nil, fmt.Errorf("ensure recent store dir: %w", err)
	}

	db, err := bolt.Open(trimmed, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, apperrors.NewStorageFailed(boltBackend, "open", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recentBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, apperrors.NewStorageFailed(boltBackend, "init", err)
	}
	return &BoltStore{db: db}, nil
}

// Close releases the file lock
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) Get(_ context.Context, clientID string) ([]string, error) {
	ids := []string{}
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(recentBucket).Get([]byte(clientID))
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &ids)
	})
	if err != nil {
		return nil, apperrors.NewStorageFailed(boltBackend, "get", err)
	}
	return ids, nil
}

func (s *BoltStore) Set(_ context.Context, clientID string, ids []string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(recentBucket)
		if len(ids) == 0 {
			return bucket.Delete([]byte(clientID))
		}
		raw, err := json.Marshal(ids)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(clientID), raw)
	})
	if err != nil {
		return apperrors.NewStorageFailed(boltBackend, "set", err)
	}
	return nil
}
