// ABOUTME: Local photo association storage keyed by pet id
// ABOUTME: Exists because the remote pet update model has no photo upload field

package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

const photosFile = "pet_photos.json"

// Photos maps pet ids to local image URIs. Pure key-value, last write wins.
type Photos struct {
	mu     sync.Mutex
	dir    string
	assoc  map[string]string
	loaded bool
}

// NewPhotos creates a photo association store rooted at the given config directory
func NewPhotos(configDir string) *Photos {
	return &Photos{dir: configDir}
}

func (p *Photos) file() string {
	return filepath.Join(p.dir, photosFile)
}

func (p *Photos) load() {
	if p.loaded {
		return
	}
	p.loaded = true
	p.assoc = map[string]string{}
	raw, err := os.ReadFile(p.file())
	if err != nil {
		return
	}
	if err := json.Unmarshal(raw, &p.assoc); err != nil {
		p.assoc = map[string]string{}
	}
}

func (p *Photos) save() error {
	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(p.assoc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p.file(), raw, 0644)
}

// Save associates a local image URI with a pet, overwriting any previous one
func (p *Photos) Save(petID int64, uri string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.load()
	p.assoc[strconv.FormatInt(petID, 10)] = uri
	return p.save()
}

// Get returns the associated URI for a pet, if any
func (p *Photos) Get(petID int64) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.load()
	uri, ok := p.assoc[strconv.FormatInt(petID, 10)]
	return uri, ok
}

// Delete removes the association for a pet
func (p *Photos) Delete(petID int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.load()
	delete(p.assoc, strconv.FormatInt(petID, 10))
	return p.save()
}
