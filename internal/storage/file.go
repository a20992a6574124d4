package storage

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileStore persists each key as a file under a single directory.
// Writes go through a temp file plus rename, so a crash mid-write leaves
// the previous value intact rather than a torn one.
type FileStore struct {
	dir string
	lg  *zap.Logger
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the backing directory if needed and returns a store
// rooted there. Directory creation failure is swallowed like any other
// storage failure: the store stays usable, reads report absence.
func NewFileStore(dir string, lg *zap.Logger) *FileStore {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		lg.Warn("storage directory unavailable", zap.String("dir", dir), zap.Error(err))
	}
	return &FileStore{dir: dir, lg: lg}
}

// path maps a key to its file. Keys are flat identifiers; path separators
// are replaced so a hostile key cannot escape the storage directory.
func (s *FileStore) path(key string) string {
	key = strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.lg.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (s *FileStore) GetJSON(key string, v any) bool {
	data, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := decodeJSON(data, v); err != nil {
		s.lg.Warn("storage value undecodable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *FileStore) Set(key string, value []byte) {
	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		s.lg.Warn("storage write failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := os.Rename(tmp, target); err != nil {
		s.lg.Warn("storage write failed", zap.String("key", key), zap.Error(err))
		_ = os.Remove(tmp)
	}
}

func (s *FileStore) SetJSON(key string, v any) {
	data, err := encodeJSON(v)
	if err != nil {
		s.lg.Warn("storage value unencodable", zap.String("key", key), zap.Error(err))
		return
	}
	s.Set(key, data)
}

func (s *FileStore) GetString(key string) string {
	var v string
	if !s.GetJSON(key, &v) {
		return ""
	}
	return v
}

func (s *FileStore) SetString(key, value string) {
	s.SetJSON(key, value)
}

func (s *FileStore) Has(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

func (s *FileStore) Remove(key string) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.lg.Warn("storage remove failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *FileStore) Clear() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.lg.Warn("storage clear failed", zap.String("dir", s.dir), zap.Error(err))
		return
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			s.lg.Warn("storage clear failed", zap.String("entry", e.Name()), zap.Error(err))
		}
	}
}
