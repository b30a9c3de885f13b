package objstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// FSStore keeps objects as files under a root directory. Keys are opaque
// and never contain path separators, so a flat layout is enough.
type FSStore struct {
	root string
}

func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}

	return &FSStore{root: root}, nil
}

func (s *FSStore) Put(_ context.Context, key string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = io.Copy(f, r); err != nil {
		return err
	}

	return f.Sync()
}

func (s *FSStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}

		return nil, err
	}

	return f, nil
}

func (s *FSStore) Delete(_ context.Context, key string) error {
	err := os.Remove(filepath.Join(s.root, key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
