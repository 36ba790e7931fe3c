// Package kvstore is the persistent key-value collaborator used for
// session persistence. It mirrors a browser localStorage contract:
// get/set/remove on string keys under a single namespace.
package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is the minimal persistence contract the state container needs.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// FileStore keeps all pairs in one JSON file, rewritten atomically on
// every mutation. Good enough for a handful of session records.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// OpenFile loads the store at path, creating parent directories as
// needed. A missing file yields an empty store; a corrupt file is an
// error so bad data is never silently truncated.
func OpenFile(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	fs := &FileStore{path: path, data: map[string]string{}}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fs.data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return fs, nil
}

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return f.persist()
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.persist()
}

// persist writes to a temp file and renames so readers never see a
// half-written store. Caller holds f.mu.
func (f *FileStore) persist() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Memory is an in-memory Store for tests and ephemeral sessions.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: map[string]string{}}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type prefixed struct {
	inner  Store
	prefix string
}

// WithPrefix returns a view of s where every key is namespaced, so each
// shopping session can persist under the same fixed key without
// colliding with the others.
func WithPrefix(s Store, prefix string) Store {
	return prefixed{inner: s, prefix: prefix}
}

func (p prefixed) Get(key string) (string, bool) { return p.inner.Get(p.prefix + key) }
func (p prefixed) Set(key, value string) error   { return p.inner.Set(p.prefix+key, value) }
func (p prefixed) Remove(key string) error       { return p.inner.Remove(p.prefix + key) }
