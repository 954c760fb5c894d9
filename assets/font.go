package assets

import (
	"path"

	"github.com/db47h/chasecam/text"
	"github.com/db47h/chasecam/texture"
	"github.com/db47h/ofs"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
)

type fnt struct {
	name string
	f    *truetype.Font
	ds   map[fntOpts]*text.Drawer
}

func (f *fnt) close() error {
	var errs errorList
	for opts, d := range f.ds {
		if err := d.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "%s: face %v", f.name, opts))
		}
	}
	if errs != nil {
		return errs
	}
	return nil
}

type fntOpts struct {
	sz float64
	h  text.Hinting
	mf texture.FilterMode
}

// FontPath returns an Option that sets the default font path.
//
func FontPath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.fontPath = name
	})
}

func loadFont(fs ofs.FileSystem, name string) (asset, error) {
	data, err := readAll(fs, name)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &fnt{name, ttf, make(map[fntOpts]*text.Drawer)}, nil
}

// PreloadFont queues the named TrueType font for loading.
//
func (m *Manager) PreloadFont(name string) {
	m.preload(path.Join(m.cfg.fontPath, name), loadFont)
}

func (m *Manager) font(name string) (*fnt, error) {
	a, err := m.get(name, loadFont)
	if err != nil {
		return nil, err
	}
	f, ok := a.(*fnt)
	if !ok {
		return nil, errors.Errorf("asset %s is not a font", name)
	}
	return f, nil
}

// Font returns the named font asset.
//
func (m *Manager) Font(name string) (*truetype.Font, error) {
	f, err := m.font(path.Join(m.cfg.fontPath, name))
	if err != nil {
		return nil, err
	}
	return f.f, nil
}

// FontDrawer returns a new text.Drawer configured for the given font face (with
// a default DPI of 72).
//
// Note that this function caches any text.Drawer created. The only way to clean
// the cache is to discard the corresponding font asset. If an application
// needs to be able to discard drawers, it should use Font() instead and manage
// font.Face and text.Drawer creation and caching manually.
//
// FontDrawer must be called from the goroutine owning the GL context.
//
func (m *Manager) FontDrawer(name string, size float64, hinting text.Hinting, magFilter texture.FilterMode) (*text.Drawer, error) {
	f, err := m.font(path.Join(m.cfg.fontPath, name))
	if err != nil {
		return nil, err
	}
	m.m.Lock()
	defer m.m.Unlock()
	opts := fntOpts{size, hinting, magFilter}
	if d := f.ds[opts]; d != nil {
		return d, nil
	}
	d := text.NewDrawer(truetype.NewFace(f.f, &truetype.Options{
		Size:       size,
		Hinting:    font.Hinting(hinting),
		DPI:        72,
		SubPixelsX: text.SubPixelsX,
	}), magFilter)
	f.ds[opts] = d
	return d, nil
}

// DiscardFont removes the named font from the cache along with any text.Drawer
// created for it.
//
func (m *Manager) DiscardFont(name string) error {
	return m.discard(path.Join(m.cfg.fontPath, name))
}
