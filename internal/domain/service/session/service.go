package session

import (
	"PocketFormsBot/internal/domain/repository"
	"PocketFormsBot/internal/domain/schema"
	"context"
	"sync"
)

// Service holds each chat's logged-in user in process memory. Login and
// Logout are the only mutation entry points; everything else reads. State
// is lost on restart, which just means re-login.
type Service struct {
	backend repository.FormsBackend

	mu    sync.RWMutex
	users map[int64]schema.User
}

func New(backend repository.FormsBackend) *Service {
	return &Service{backend: backend, users: make(map[int64]schema.User)}
}

// Login authenticates against the backend and, only on success, stores the
// returned user for this chat. A failed login leaves session state as it was.
func (s *Service) Login(ctx context.Context, userID int64, email, password string) (schema.User, error) {
	u, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return schema.User{}, err
	}
	s.mu.Lock()
	s.users[userID] = u
	s.mu.Unlock()
	return u, nil
}

// Signup creates an account. It does not log the user in; the original flow
// switches back to login after a successful signup.
func (s *Service) Signup(ctx context.Context, email, password string) error {
	return s.backend.Signup(ctx, email, password)
}

func (s *Service) Logout(userID int64) {
	s.mu.Lock()
	delete(s.users, userID)
	s.mu.Unlock()
}

func (s *Service) Current(userID int64) (schema.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	return u, ok
}
