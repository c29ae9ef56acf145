package authclient

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/goliatone/go-errors"
)

// Storage keys, kept stable so existing client installs survive upgrades.
const (
	storeKeyToken = "auth_token"
	storeKeyUser  = "current_user"
)

// SessionStore is the durable backing for the session: the raw credential
// and the serialized identity. It holds no validation logic; a store that
// hands back garbage is treated upstream as an absent session.
type SessionStore interface {
	Read(ctx context.Context) (SessionSnapshot, error)
	Write(ctx context.Context, credential string, identity Identity) error
	Clear(ctx context.Context) error
}

// MemoryStore is a process-local SessionStore for tests and ephemeral runs.
// It serializes the identity the same way the durable store does, so parse
// failures behave identically.
type MemoryStore struct {
	mu         sync.Mutex
	credential string
	identity   []byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Read returns the persisted snapshot, or an absent snapshot when nothing is
// stored or the identity fails to parse.
func (m *MemoryStore) Read(ctx context.Context) (SessionSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return snapshotFromStored(m.credential, m.identity), nil
}

// Write persists the credential and identity.
func (m *MemoryStore) Write(ctx context.Context, credential string, identity Identity) error {
	data, err := marshalIdentity(identity)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.credential = credential
	m.identity = data
	return nil
}

// Clear removes both slots.
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.credential = ""
	m.identity = nil
	return nil
}

// snapshotFromStored rebuilds a snapshot from persisted values, degrading to
// absent/absent when either half is missing or unreadable. The snapshot
// invariant (credential and identity present together) is enforced here.
func snapshotFromStored(credential string, identityJSON []byte) SessionSnapshot {
	if credential == "" || len(identityJSON) == 0 {
		return SessionSnapshot{}
	}

	var identity Identity
	if err := json.Unmarshal(identityJSON, &identity); err != nil {
		return SessionSnapshot{}
	}

	return SessionSnapshot{Credential: credential, Identity: &identity}
}

func marshalIdentity(identity Identity) ([]byte, error) {
	data, err := json.Marshal(identity)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to serialize identity")
	}
	return data, nil
}
