package auth

import (
	"context"
	"errors"
	"time"

	"zapstore/internal/domain"
)

// ErrInvalidCredentials is returned when email/password match neither the
// admin credentials nor a demo client.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DeniedMessage is shown to the user on ErrInvalidCredentials.
const DeniedMessage = "Acesso negado. Verifique seu e-mail e senha."

// ClientPassword is the shared password of every demo client account.
const ClientPassword = "cliente"

// SessionStore is the part of the state container the login flow touches.
type SessionStore interface {
	AdminCredentials() domain.AdminCredentials
	SetUser(ctx context.Context, u *domain.User)
	Logout(ctx context.Context)
	ResetAdminCredentials(ctx context.Context)
}

// Service runs the mock login flow. Nothing here is meant to be secure.
type Service struct {
	store SessionStore
	users []domain.User
	delay time.Duration
}

func New(store SessionStore, delay time.Duration) *Service {
	return &Service{store: store, users: domain.MockUsers(), delay: delay}
}

// Login resolves after the configured delay on a timer goroutine and reports
// the outcome to done. On success the user becomes the session user. The
// returned func cancels a pending attempt and reports whether it did so.
func (s *Service) Login(ctx context.Context, email, password string, done func(*domain.User, error)) (cancel func() bool) {
	ctx = context.WithoutCancel(ctx)
	timer := time.AfterFunc(s.delay, func() {
		u, err := s.authenticate(email, password)
		if err == nil {
			s.store.SetUser(ctx, u)
		}
		done(u, err)
	})
	return timer.Stop
}

// LoginWait blocks until Login resolves or ctx ends. A cancelled attempt never
// changes the session.
func (s *Service) LoginWait(ctx context.Context, email, password string) (*domain.User, error) {
	type result struct {
		user *domain.User
		err  error
	}
	ch := make(chan result, 1)
	cancel := s.Login(ctx, email, password, func(u *domain.User, err error) {
		ch <- result{user: u, err: err}
	})

	select {
	case r := <-ch:
		return r.user, r.err
	case <-ctx.Done():
		if cancel() {
			return nil, ctx.Err()
		}
		r := <-ch
		return r.user, r.err
	}
}

func (s *Service) Logout(ctx context.Context) {
	s.store.Logout(ctx)
}

// ResetCredentials restores the default admin login.
func (s *Service) ResetCredentials(ctx context.Context) {
	s.store.ResetAdminCredentials(ctx)
}

func (s *Service) authenticate(email, password string) (*domain.User, error) {
	creds := s.store.AdminCredentials()
	if email == creds.Email && password == creds.Password {
		for _, u := range s.users {
			if u.Role == domain.RoleAdmin {
				return &u, nil
			}
		}
		return &domain.User{ID: "admin-main", Email: creds.Email, Name: "Administrador", Role: domain.RoleAdmin}, nil
	}

	for _, u := range s.users {
		if u.Email == email && u.Role == domain.RoleClient && password == ClientPassword {
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}
