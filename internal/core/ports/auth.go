package ports

import (
	"context"

	"taskplanner/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, name, email, password string) (domain.User, error)
	Logout(ctx context.Context) error
	Session() (domain.User, bool)
}

// CredentialStore is the pluggable user registry behind the auth service. The
// in-memory implementation is the only one shipped; a real backend would
// satisfy the same contract.
type CredentialStore interface {
	Lookup(email, password string) (domain.User, bool)
	Exists(email string) bool
	Create(creds domain.Credentials) error
}
