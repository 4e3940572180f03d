package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileRecordStorage keeps the selection list in a single JSON file. Every save
// rewrites the whole file through a uniquely named temp file and a rename, so
// concurrent savers on one path end with the last rename winning.
type FileRecordStorage struct {
	Path string
}

func (s *FileRecordStorage) Load(_ context.Context) ([]*Selection, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*Selection{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}

	selections, err := decodeRecords(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return selections, nil
}

func (s *FileRecordStorage) Save(_ context.Context, selections []*Selection) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	b, err := encodeRecords(selections)
	if err != nil {
		return err
	}

	// Each save gets its own temp file so overlapping writers on one path
	// never rename each other's file away.
	f, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create tmp file: %w", err)
	}
	tmp := f.Name()

	fail := func(format string, err error) error {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf(format, err)
	}

	if err := f.Chmod(0o644); err != nil {
		return fail("chmod tmp file: %w", err)
	}

	if _, err := f.Write(b); err != nil {
		return fail("write tmp file: %w", err)
	}

	if err := f.Sync(); err != nil {
		return fail("fsync tmp file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close tmp file: %w", err)
	}

	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename tmp file: %w", err)
	}

	if dirF, err := os.Open(dir); err == nil {
		_ = dirF.Sync()
		_ = dirF.Close()
	}

	return nil
}
