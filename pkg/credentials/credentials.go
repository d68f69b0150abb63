package credentials

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	json "github.com/json-iterator/go"
	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/config"
)

// Credentials is what survives between runs: the bearer token and the
// user object returned at login.
type Credentials struct {
	Token   string    `json:"token"`
	User    api.User  `json:"user"`
	SavedAt time.Time `json:"saved_at"`
}

// Store persists credentials in a single file.
type Store struct {
	path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Default returns the store at the configured credentials path.
func Default() *Store {
	return NewStore(config.GetCredentialsPath())
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load loads credentials from disk. Missing credentials are not an
// error: it returns nil, nil.
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// Save saves credentials to disk
func (s *Store) Save(creds *Credentials) error {
	if creds.SavedAt.IsZero() {
		creds.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	// Owner read/write only
	return os.WriteFile(s.path, data, 0600)
}

// Delete deletes credentials from disk. Deleting absent credentials is
// not an error.
func (s *Store) Delete() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ExpiresAt reads the exp claim of the token without verifying it.
// ok is false when the token carries no exp.
func (c *Credentials) ExpiresAt() (exp time.Time, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.Token, claims); err != nil {
		return time.Time{}, false
	}
	date, err := claims.GetExpirationTime()
	if err != nil || date == nil {
		return time.Time{}, false
	}
	return date.Time, true
}

// IsExpired checks if the token is past its exp claim. Tokens without
// one never expire.
func (c *Credentials) IsExpired() bool {
	exp, ok := c.ExpiresAt()
	return ok && time.Now().After(exp)
}

// IsValid checks if credentials can open a session
func (c *Credentials) IsValid() bool {
	return c.Token != "" && c.User.Email != "" && !c.IsExpired()
}
