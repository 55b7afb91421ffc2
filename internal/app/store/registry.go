package store

import (
	"strings"
	"sync"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

const defaultAvatar = "/avatars/default.png"

// MemoryCredentialStore is the mock user registry. Passwords are held
// plaintext on purpose: this is demo auth, not real auth.
type MemoryCredentialStore struct {
	mu    sync.RWMutex
	users []domain.Credentials
}

var _ ports.CredentialStore = (*MemoryCredentialStore)(nil)

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{
		users: []domain.Credentials{
			{
				User: domain.User{
					ID:     "1",
					Name:   "John Doe",
					Email:  "john@example.com",
					Avatar: defaultAvatar,
				},
				Password: "password123",
			},
		},
	}
}

func (r *MemoryCredentialStore) Lookup(email, password string) (domain.User, bool) {
	email = normalizeEmail(email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, creds := range r.users {
		if normalizeEmail(creds.User.Email) == email && creds.Password == password {
			return creds.User, true
		}
	}
	return domain.User{}, false
}

func (r *MemoryCredentialStore) Exists(email string) bool {
	email = normalizeEmail(email)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, creds := range r.users {
		if normalizeEmail(creds.User.Email) == email {
			return true
		}
	}
	return false
}

func (r *MemoryCredentialStore) Create(creds domain.Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if normalizeEmail(existing.User.Email) == normalizeEmail(creds.User.Email) {
			return domain.ErrDuplicateUser
		}
	}
	r.users = append(r.users, creds)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
