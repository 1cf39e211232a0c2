package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// Identity is the anonymous session the server issued to this client.
type Identity struct {
	SessionID uuid.UUID `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type IdentityProvider interface {
	// Identity returns the current session, creating one on first use.
	Identity(ctx context.Context) (*Identity, error)
	// Forget drops the session so the next call starts a new one.
	Forget() error
}

type SessionStarter interface {
	StartSession(ctx context.Context) (*Identity, error)
}

// FileIdentity keeps the session in a file. An empty path keeps it in memory only.
type FileIdentity struct {
	path    string
	starter SessionStarter
	now     func() time.Time

	mu      sync.Mutex
	current *Identity
}

func NewFileIdentity(path string, starter SessionStarter) *FileIdentity {
	return &FileIdentity{
		path:    path,
		starter: starter,
		now:     time.Now,
	}
}

func (fi *FileIdentity) Identity(ctx context.Context) (*Identity, error) {
	fi.mu.Lock()
	defer fi.mu.Unlock()

	if fi.usable(fi.current) {
		return fi.current, nil
	}
	if stored, err := fi.load(); err == nil && fi.usable(stored) {
		fi.current = stored
		return stored, nil
	}
	if fi.starter == nil {
		return nil, errors.New("identity error: no session starter")
	}
	started, err := fi.starter.StartSession(ctx)
	if err != nil {
		return nil, err
	}
	if err := fi.store(started); err != nil {
		return nil, errors.New("identity error: " + err.Error())
	}
	fi.current = started
	return started, nil
}

func (fi *FileIdentity) Forget() error {
	fi.mu.Lock()
	defer fi.mu.Unlock()
	fi.current = nil
	if fi.path == "" {
		return nil
	}
	if err := os.Remove(fi.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.New("identity error: " + err.Error())
	}
	return nil
}

func (fi *FileIdentity) usable(id *Identity) bool {
	return id != nil && id.Token != "" && id.SessionID != uuid.Nil && fi.now().Before(id.ExpiresAt)
}

func (fi *FileIdentity) load() (*Identity, error) {
	if fi.path == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(fi.path)
	if err != nil {
		return nil, err
	}
	var id Identity
	if err := sonic.Unmarshal(data, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

func (fi *FileIdentity) store(id *Identity) error {
	if fi.path == "" {
		return nil
	}
	data, err := sonic.Marshal(id)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fi.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(fi.path, data, 0o600)
}
