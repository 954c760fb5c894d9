package assets

import (
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"path"

	"github.com/db47h/chasecam/texture"
	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

// texImage is a decoded image waiting for a GL context to be uploaded.
//
type texImage struct {
	img image.Image
}

func (*texImage) close() error { return nil }

type tex texture.Texture

func (t *tex) close() error {
	(*texture.Texture)(t).Delete()
	return nil
}

// TexturePath returns an Option that sets the default texture path.
//
func TexturePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.texturePath = name
	})
}

func loadTexture(fs ofs.FileSystem, name string) (asset, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return &texImage{src}, nil
}

// PreloadTexture queues the named image for decoding. Decoding happens in the
// background; the GL texture is created by the first call to Texture.
//
func (m *Manager) PreloadTexture(name string) {
	m.preload(path.Join(m.cfg.texturePath, name), loadTexture)
}

// Image returns the decoded image of a texture asset that has not been
// uploaded yet.
//
func (m *Manager) Image(name string) (image.Image, error) {
	name = path.Join(m.cfg.texturePath, name)
	a, err := m.get(name, loadTexture)
	if err != nil {
		return nil, err
	}
	t, ok := a.(*texImage)
	if !ok {
		return nil, errors.Errorf("asset %s is not a pending texture image", name)
	}
	return t.img, nil
}

// Texture returns the named texture, uploading it to the GPU on first use
// with the given parameters. Parameters passed to later calls are applied to
// the existing texture.
//
// Texture must be called from the goroutine owning the GL context.
//
func (m *Manager) Texture(name string, params ...texture.Parameter) (*texture.Texture, error) {
	name = path.Join(m.cfg.texturePath, name)
	a, err := m.get(name, loadTexture)
	if err != nil {
		return nil, err
	}
	m.m.Lock()
	defer m.m.Unlock()
	// the asset may have been replaced or discarded while unlocked
	if cur, ok := m.assets[name]; ok {
		a = cur
	}
	switch t := a.(type) {
	case *tex:
		tx := (*texture.Texture)(t)
		tx.Parameters(params...)
		return tx, nil
	case *texImage:
		tx := texture.FromImage(t.img, params...)
		m.assets[name] = (*tex)(tx)
		return tx, nil
	default:
		return nil, errors.Errorf("asset %s is not a texture", name)
	}
}

// DiscardTexture removes the named texture from the asset cache along with any
// associated resources.
//
func (m *Manager) DiscardTexture(name string) error {
	return m.discard(path.Join(m.cfg.texturePath, name))
}
