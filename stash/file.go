package stash

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// File stores one file per key under a data directory. This is the
// closest server-side analog of the browser's local storage: a flat
// namespace of JSON strings that survives restarts.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	// Keys contain ':' separators; keep filenames flat.
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(f.dir, name)
}

func (f *File) Load(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (f *File) Save(_ context.Context, key string, data []byte) error {
	return os.WriteFile(f.path(key), data, 0o644)
}

func (f *File) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
