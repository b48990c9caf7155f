package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// revisionsFile is the sidecar holding the per-key write counters. It
// lives next to the collection documents so revisions survive restarts
// and change polling stays truthful across them.
const revisionsFile = ".revisions.json"

// FileStore persists each collection as <dir>/<key>.json. Writes go through
// a temp file and rename so a crash never leaves a half-written document.
// The process is the single writer; a mutex serializes access and the
// last write wins.
type FileStore struct {
	dir       string
	mu        sync.Mutex
	revisions map[string]int64
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	revisions := make(map[string]int64)
	raw, err := os.ReadFile(filepath.Join(dir, revisionsFile))
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &revisions); err != nil {
			return nil, fmt.Errorf("decode revisions: %w", err)
		}
	case os.IsNotExist(err):
		// fresh store
	default:
		return nil, fmt.Errorf("read revisions: %w", err)
	}

	return &FileStore{dir: dir, revisions: revisions}, nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, ".") ||
		strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid store key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

func (s *FileStore) Read(_ context.Context, key string, out interface{}) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	raw, err := os.ReadFile(p)
	s.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Write(_ context.Context, key string, value interface{}) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeFile(p, key, raw); err != nil {
		return err
	}
	s.bumpRevision(key)
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.bumpRevision(key)
	return nil
}

func (s *FileStore) Revision(_ context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revisions[key], nil
}

// writeFile atomically replaces p with raw. Callers hold the mutex.
func (s *FileStore) writeFile(p, key string, raw []byte) error {
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// bumpRevision increments the key's counter and persists the sidecar.
// A sidecar write failure does not fail the data write; the counter
// catches up on the next one. Callers hold the mutex.
func (s *FileStore) bumpRevision(key string) {
	s.revisions[key]++
	raw, err := json.Marshal(s.revisions)
	if err != nil {
		return
	}
	_ = s.writeFile(filepath.Join(s.dir, revisionsFile), "revisions", raw)
}
