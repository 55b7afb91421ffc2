package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskplanner/internal/core/domain"
	"taskplanner/internal/core/ports"
)

// AuthService tracks the current session against a pluggable credential
// store. The delay models the network round trip the client's loading state
// expects; tests run it at zero.
type AuthService struct {
	mu      sync.RWMutex
	session *domain.User

	users ports.CredentialStore
	kv    ports.KVStore
	delay time.Duration
	newID func() string
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(users ports.CredentialStore, kv ports.KVStore, delay time.Duration) *AuthService {
	return &AuthService{
		users: users,
		kv:    kv,
		delay: delay,
		newID: uuid.NewString,
	}
}

// Restore loads a persisted session from durable storage without
// re-validating credentials.
func (s *AuthService) Restore(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, ports.KeyUser)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	var record userRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return err
	}

	user := fromUserRecord(record)

	s.mu.Lock()
	s.session = &user
	s.mu.Unlock()

	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return domain.User{}, err
	}

	user, ok := s.users.Lookup(email, password)
	if !ok {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	s.establishSession(ctx, user)
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return domain.User{}, err
	}

	if s.users.Exists(email) {
		return domain.User{}, domain.ErrDuplicateUser
	}

	user := domain.User{
		ID:     s.newID(),
		Name:   name,
		Email:  normalizeEmail(email),
		Avatar: defaultAvatar,
	}
	if err := s.users.Create(domain.Credentials{User: user, Password: password}); err != nil {
		return domain.User{}, err
	}

	s.establishSession(ctx, user)
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	if err := s.kv.Delete(ctx, ports.KeyUser); err != nil {
		zap.L().Warn("failed to clear persisted session", zap.Error(err))
	}
	return nil
}

func (s *AuthService) Session() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return domain.User{}, false
	}
	return *s.session, true
}

func (s *AuthService) establishSession(ctx context.Context, user domain.User) {
	s.mu.Lock()
	s.session = &user
	s.mu.Unlock()

	payload, err := json.Marshal(toUserRecord(user))
	if err != nil {
		zap.L().Warn("failed to encode session for mirror", zap.Error(err))
		return
	}
	if err := s.kv.Put(ctx, ports.KeyUser, string(payload)); err != nil {
		zap.L().Warn("failed to mirror session", zap.Error(err))
	}
}

func (s *AuthService) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
