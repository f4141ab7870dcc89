package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every key in a single JSON file on disk, the way the
// original kept everything in one browser storage area. Writes go
// through a temp file + rename so a crash never leaves a half-written
// store behind.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// OpenFileStore loads (or creates) the store file at path. A missing or
// unreadable file starts the store empty rather than failing: corrupted
// state degrades to defaults, it does not brick the program.
func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	if err := json.Unmarshal(raw, &fs.data); err != nil {
		// Corrupted store: keep the broken file aside and start fresh.
		_ = os.Rename(path, path+".corrupt")
		fs.data = make(map[string]json.RawMessage)
	}
	return fs, nil
}

// Read never fails at the backend level: the data is already in memory,
// so only missing keys and corrupted values occur, and both degrade to
// the caller's default.
func (fs *FileStore) Read(key string, dest any) (bool, error) {
	fs.mu.Lock()
	raw, ok := fs.data[key]
	fs.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (fs *FileStore) Write(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.data[key] = raw
	return fs.flushLocked()
}

// flushLocked writes the whole map out atomically. Callers hold fs.mu.
func (fs *FileStore) flushLocked() error {
	blob, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return err
	}

	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// Backup copies the current store file to dst. Used by the periodic
// backup worker.
func (fs *FileStore) Backup(dst string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	src, err := os.Open(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // nothing written yet
		}
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
