package web

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/corey/operator-gui/internal/ports"
)

var errIsDir = errors.New("page path is a directory")

// Page serves a single HTML file from disk.
//
// Once Watch succeeds the bytes are cached and dropped whenever the file's
// directory reports a change. Without a watch every request reads the disk.
// A missing file falls through to http.ServeFile, which answers 404. A
// directory at the page path is answered with 404 too; it is never listed.
type Page struct {
	path string

	mu      sync.RWMutex
	watched bool
	gen     uint64 // bumped on every invalidation
	body    []byte
	modTime time.Time
}

// NewPage creates a responder for the file at path.
func NewPage(path string) *Page {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Page{path: path}
}

// Path returns the absolute path of the served file.
func (p *Page) Path() string {
	return p.path
}

// Watch subscribes the cache to changes in the page's directory.
func (p *Page) Watch(w ports.Watcher) error {
	if err := w.Watch(filepath.Dir(p.path), p.onChange); err != nil {
		return err
	}
	p.mu.Lock()
	p.watched = true
	p.mu.Unlock()
	return nil
}

// Invalidate drops the cached bytes.
func (p *Page) Invalidate() {
	p.mu.Lock()
	p.gen++
	p.body = nil
	p.mu.Unlock()
}

func (p *Page) onChange(changed string) {
	if filepath.Base(changed) == filepath.Base(p.path) {
		p.Invalidate()
	}
}

func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, modTime, err := p.load()
	if errors.Is(err, errIsDir) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.ServeFile(w, r, p.path)
		return
	}
	http.ServeContent(w, r, filepath.Base(p.path), modTime, bytes.NewReader(body))
}

// load returns the page bytes, from cache when watched.
func (p *Page) load() ([]byte, time.Time, error) {
	p.mu.RLock()
	if p.watched && p.body != nil {
		body, modTime := p.body, p.modTime
		p.mu.RUnlock()
		return body, modTime, nil
	}
	gen := p.gen
	p.mu.RUnlock()

	info, err := os.Stat(p.path)
	if err != nil {
		return nil, time.Time{}, err
	}
	if info.IsDir() {
		return nil, time.Time{}, errIsDir
	}
	body, err := os.ReadFile(p.path)
	if err != nil {
		return nil, time.Time{}, err
	}

	p.mu.Lock()
	// A change that raced the read leaves the cache empty.
	if p.watched && p.gen == gen {
		p.body = body
		p.modTime = info.ModTime()
	}
	p.mu.Unlock()
	return body, info.ModTime(), nil
}
