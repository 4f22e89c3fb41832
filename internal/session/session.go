// Package session owns the current user of the client and its durable copy.
//
// [Manager] is the single reader and writer of the current user: flows call Get to read it and Set to replace it,
// and every Set is written through to a [Store] slot so the next process start can [Manager.Load] it back.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/applyx/internal/models"
	"github.com/desertthunder/applyx/internal/shared"
)

// UserKey is the durable slot holding the JSON-encoded current user.
const UserKey = "currentUser"

// Store is a string-keyed durable slot (implemented by repositories.SettingsRepository).
//
// Get must return an error wrapping [shared.ErrNotFound] when the key is absent.
type Store interface {
	Get(key string) (string, error)
	Put(key, value string) error
	Delete(key string) error
}

// Manager holds at most one current user.
type Manager struct {
	mu     sync.RWMutex
	store  Store
	user   *models.User
	logger *log.Logger
}

// NewManager creates a [Manager] backed by store. The session starts empty until [Manager.Load] is called.
func NewManager(store Store, logger *log.Logger) *Manager {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Manager{store: store, logger: shared.WithLogger(logger, "component", "session")}
}

// Load reads the durable slot into memory.
//
// It returns (nil, nil) when nothing is stored or the slot holds JSON null, and an error wrapping
// [shared.ErrDeserialization] when the stored value cannot be decoded or has no email. The in-memory session is left
// empty in all of these cases.
func (m *Manager) Load() (*models.User, error) {
	raw, err := m.store.Get(UserKey)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stored user: %w", err)
	}

	var user *models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrDeserialization, err)
	}
	if user == nil {
		return nil, nil
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: stored user has no email", shared.ErrDeserialization)
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()

	m.logger.Debug("loaded stored user", "id", user.ID, "email", user.Email)
	return m.Get(), nil
}

// Get returns a copy of the current user, or nil when there is none.
func (m *Manager) Get() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// Set replaces the current user and writes it to the durable slot.
//
// The in-memory value is updated even when the write fails so the running session stays consistent with the backend.
func (m *Manager) Set(user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()

	if err := m.store.Put(UserKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}

	m.logger.Debug("saved user", "id", user.ID, "email", user.Email)
	return nil
}

// Clear drops the current user and empties the durable slot.
func (m *Manager) Clear() error {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	if err := m.store.Delete(UserKey); err != nil {
		return fmt.Errorf("failed to clear stored user: %w", err)
	}
	return nil
}
