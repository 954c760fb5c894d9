// Package assets provides asynchronous loading and caching of the files used
// by the demos: meshes, fonts, textures and raw files.
//
// Assets are read from an ofs.FileSystem, which lets applications overlay
// several asset directories. Preload* functions queue an asset for loading by
// a pool of worker goroutines and return immediately. The matching getter
// waits for a pending load to complete, or loads the asset synchronously if it
// was never preloaded.
//
package assets

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/db47h/ofs"
	"github.com/pkg/errors"
)

var errMissingAsset = errors.New("asset not found")

type errorList []error

func (e errorList) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// asset is implemented by all cached values.
//
type asset interface {
	close() error
}

type loader func(fs ofs.FileSystem, name string) (asset, error)

type loadState int

const (
	stateMissing loadState = iota
	statePending
	stateLoaded
	stateError
)

type config struct {
	meshPath    string
	texturePath string
	fontPath    string
	filePath    string
	workers     int
}

// Option is implemented by option functions passed as arguments to NewManager.
//
type Option interface {
	set(*config)
}

type cfn func(*config)

func (f cfn) set(cfg *config) {
	f(cfg)
}

// Workers sets the number of goroutines loading preloaded assets.
//
func Workers(n int) Option {
	return cfn(func(cfg *config) {
		cfg.workers = n
	})
}

// A Manager manages asynchronous (pre)loading and caching of assets.
//
type Manager struct {
	fs      ofs.FileSystem
	cfg     config
	m       sync.Mutex
	cond    *sync.Cond
	assets  map[string]asset
	errs    map[string]error
	pending map[string]struct{}
	cs      chan func()
	wg      sync.WaitGroup
}

// NewManager returns a new asset Manager reading from fs.
//
func NewManager(fs ofs.FileSystem, options ...Option) *Manager {
	cfg := config{workers: 4}
	for _, o := range options {
		o.set(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	m := &Manager{
		fs:      fs,
		cfg:     cfg,
		assets:  make(map[string]asset),
		errs:    make(map[string]error),
		pending: make(map[string]struct{}),
		cs:      make(chan func(), 4096),
	}
	m.cond = sync.NewCond(&m.m)
	m.wg.Add(cfg.workers)
	for i := 0; i < cfg.workers; i++ {
		go func() {
			defer m.wg.Done()
			for f := range m.cs {
				f()
			}
		}()
	}
	return m
}

// readAll reads the named file from fs.
//
func readAll(fs ofs.FileSystem, name string) ([]byte, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// loadStart marks name as pending. It returns false if the asset is already
// loaded or being loaded. A previous load error is cleared.
//
func (m *Manager) loadStart(name string) bool {
	m.m.Lock()
	defer m.m.Unlock()
	if _, ok := m.pending[name]; ok {
		return false
	}
	if _, ok := m.assets[name]; ok {
		return false
	}
	delete(m.errs, name)
	m.pending[name] = struct{}{}
	return true
}

func (m *Manager) loadComplete(name string, a asset) {
	m.m.Lock()
	m.assets[name] = a
	delete(m.pending, name)
	m.cond.Broadcast()
	m.m.Unlock()
}

func (m *Manager) loadError(name string, err error) {
	m.m.Lock()
	m.errs[name] = errors.Wrap(err, name)
	delete(m.pending, name)
	m.cond.Broadcast()
	m.m.Unlock()
}

// preload queues an asynchronous load of the named asset.
//
func (m *Manager) preload(name string, load loader) {
	if !m.loadStart(name) {
		return
	}
	m.cs <- func() {
		a, err := load(m.fs, name)
		if err != nil {
			m.loadError(name, err)
		} else {
			m.loadComplete(name, a)
		}
	}
}

func (m *Manager) assetNoLock(name string) (asset, error, loadState) {
	if a, ok := m.assets[name]; ok {
		return a, nil, stateLoaded
	}
	if _, ok := m.pending[name]; ok {
		return nil, nil, statePending
	}
	if err, ok := m.errs[name]; ok {
		return nil, err, stateError
	}
	return nil, nil, stateMissing
}

// syncLoadNoLock loads an asset from the calling goroutine. The lock is
// released while loading.
//
func (m *Manager) syncLoadNoLock(name string, load loader) (asset, error) {
	m.pending[name] = struct{}{}
	m.m.Unlock()
	a, err := load(m.fs, name)
	m.m.Lock()
	delete(m.pending, name)
	m.cond.Broadcast()
	if err != nil {
		err = errors.Wrap(err, name)
		m.errs[name] = err
		return nil, err
	}
	m.assets[name] = a
	return a, nil
}

// get returns the named asset, waiting for a pending load or loading it
// synchronously if needed.
//
func (m *Manager) get(name string, load loader) (asset, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for {
		a, err, s := m.assetNoLock(name)
		switch s {
		case stateMissing:
			return m.syncLoadNoLock(name, load)
		case stateLoaded:
			return a, nil
		case stateError:
			return nil, err
		}
		m.cond.Wait()
	}
}

// discard removes the named asset from the cache and releases its resources.
//
func (m *Manager) discard(name string) error {
	m.m.Lock()
	for {
		a, _, s := m.assetNoLock(name)
		switch s {
		case stateLoaded:
			delete(m.assets, name)
			m.m.Unlock()
			return a.close()
		case stateMissing, stateError:
			delete(m.errs, name)
			m.m.Unlock()
			return errors.Wrap(errMissingAsset, name)
		}
		m.cond.Wait()
	}
}

// QueueSize returns the number of assets being loaded.
//
func (m *Manager) QueueSize() int {
	m.m.Lock()
	s := len(m.pending)
	m.m.Unlock()
	return s
}

// Wait waits for all pending loads to complete and returns the errors of all
// failed loads, sorted by asset name.
//
func (m *Manager) Wait() error {
	m.m.Lock()
	defer m.m.Unlock()
	for len(m.pending) > 0 {
		m.cond.Wait()
	}
	if len(m.errs) == 0 {
		return nil
	}
	names := make([]string, 0, len(m.errs))
	for k := range m.errs {
		names = append(names, k)
	}
	sort.Strings(names)
	errs := make(errorList, 0, len(names))
	for _, k := range names {
		errs = append(errs, m.errs[k])
	}
	return errs
}

// Close waits for pending loads, stops the workers and discards all assets.
// The Manager must not be used afterwards.
//
func (m *Manager) Close() error {
	close(m.cs)
	m.wg.Wait()
	m.m.Lock()
	defer m.m.Unlock()
	var errs errorList
	for name, a := range m.assets {
		if err := a.close(); err != nil {
			errs = append(errs, errors.Wrap(err, name))
		}
		delete(m.assets, name)
	}
	if errs != nil {
		return errs
	}
	return nil
}
