package assets

import (
	"path"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

type file []byte

func (file) close() error { return nil }

// FilePath returns an Option that sets the default path for raw files.
//
func FilePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.filePath = name
	})
}

func loadFile(fs ofs.FileSystem, name string) (asset, error) {
	data, err := readAll(fs, name)
	if err != nil {
		return nil, err
	}
	return file(data), nil
}

// PreloadFile queues the named raw file for loading.
//
func (m *Manager) PreloadFile(name string) {
	m.preload(path.Join(m.cfg.filePath, name), loadFile)
}

// File returns the contents of the named raw file. The returned slice is
// shared and must not be modified.
//
func (m *Manager) File(name string) ([]byte, error) {
	name = path.Join(m.cfg.filePath, name)
	a, err := m.get(name, loadFile)
	if err != nil {
		return nil, err
	}
	data, ok := a.(file)
	if !ok {
		return nil, errors.Errorf("asset %s is not a raw file", name)
	}
	return data, nil
}

// DiscardFile removes the named file from the cache.
//
func (m *Manager) DiscardFile(name string) error {
	return m.discard(path.Join(m.cfg.filePath, name))
}
