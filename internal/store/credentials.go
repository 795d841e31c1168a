// ABOUTME: Device-local credential storage for auth tokens and resolved identity
// ABOUTME: Persists to a JSON file in the config directory, cleared atomically on logout

package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const credentialsFile = "credentials.json"

// Credentials stores the auth token, refresh token and resolved user
// identity. All operations are synchronous and local; staleness of a token
// is only discovered when an API call rejects it.
type Credentials struct {
	mu     sync.Mutex
	dir    string
	data   credentialData
	loaded bool
}

type credentialData struct {
	AuthToken    string `json:"auth_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       int64  `json:"user_id"`
	Email        string `json:"user_email"`
	Name         string `json:"user_name"`
}

// NewCredentials creates a credential store rooted at the given config directory
func NewCredentials(configDir string) *Credentials {
	return &Credentials{dir: configDir}
}

func (c *Credentials) file() string {
	return filepath.Join(c.dir, credentialsFile)
}

// load reads the file into memory once. Missing or corrupt files start fresh.
// Callers must hold the mutex.
func (c *Credentials) load() {
	if c.loaded {
		return
	}
	c.loaded = true
	raw, err := os.ReadFile(c.file())
	if err != nil {
		return
	}
	if err := json.Unmarshal(raw, &c.data); err != nil {
		c.data = credentialData{}
	}
}

// save writes the in-memory state to disk. Callers must hold the mutex.
func (c *Credentials) save() error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(c.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.file(), raw, 0600)
}

// SaveToken persists the auth and refresh tokens. Subsequent requests built
// through the API gateway pick up the new token immediately.
func (c *Credentials) SaveToken(token, refreshToken string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	c.data.AuthToken = token
	c.data.RefreshToken = refreshToken
	return c.save()
}

// SaveIdentity persists the resolved user identity. A userID of 0 marks an
// unresolved identity and is a valid persisted state.
func (c *Credentials) SaveIdentity(userID int64, email, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	c.data.UserID = userID
	c.data.Email = email
	c.data.Name = name
	return c.save()
}

// Token returns the stored auth token, or empty if not logged in
func (c *Credentials) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return c.data.AuthToken
}

// RefreshToken returns the stored refresh token, or empty
func (c *Credentials) RefreshToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return c.data.RefreshToken
}

// UserID returns the resolved user id. Zero means unresolved; callers must
// not use it for owner-scoped API calls.
func (c *Credentials) UserID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	if c.data.UserID <= 0 {
		return 0
	}
	return c.data.UserID
}

// Email returns the stored login email
func (c *Credentials) Email() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return c.data.Email
}

// Name returns the stored display name
func (c *Credentials) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	return c.data.Name
}

// IsAuthenticated reports whether an auth token is present
func (c *Credentials) IsAuthenticated() bool {
	return c.Token() != ""
}

// Logout clears all stored credentials. Calling it on an already-cleared
// store is a no-op.
func (c *Credentials) Logout() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = true
	c.data = credentialData{}
	err := os.Remove(c.file())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
