package assets

import (
	"path"

	"github.com/db47h/chasecam/mesh"
	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

type pointCloud mesh.PointCloud

func (*pointCloud) close() error { return nil }

// MeshPath returns an Option that sets the default mesh path.
//
func MeshPath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.meshPath = name
	})
}

func loadMesh(fs ofs.FileSystem, name string) (asset, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pc, err := mesh.ReadOBJ(f)
	if err != nil {
		return nil, err
	}
	if pc.Name == "" {
		pc.Name = path.Base(name)
	}
	return (*pointCloud)(pc), nil
}

// PreloadMesh queues the named OBJ mesh for loading.
//
func (m *Manager) PreloadMesh(name string) {
	m.preload(path.Join(m.cfg.meshPath, name), loadMesh)
}

// Mesh returns the named mesh as a point cloud. The point cloud is shared by
// all callers; use Clone before modifying it.
//
func (m *Manager) Mesh(name string) (*mesh.PointCloud, error) {
	name = path.Join(m.cfg.meshPath, name)
	a, err := m.get(name, loadMesh)
	if err != nil {
		return nil, err
	}
	pc, ok := a.(*pointCloud)
	if !ok {
		return nil, errors.Errorf("asset %s is not a mesh", name)
	}
	return (*mesh.PointCloud)(pc), nil
}

// DiscardMesh removes the named mesh from the cache.
//
func (m *Manager) DiscardMesh(name string) error {
	return m.discard(path.Join(m.cfg.meshPath, name))
}
