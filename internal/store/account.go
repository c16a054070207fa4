package store

import (
	"context"

	"zapstore/internal/domain"
)

// SaveSettings replaces the settings wholesale; no field is validated.
func (s *Store) SaveSettings(ctx context.Context, settings domain.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.persist.SaveSettings(ctx, s.settings)
}

// SetUser starts a session. A nil user is the same as Logout.
func (s *Store) SetUser(ctx context.Context, u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = cloneUser(u)
	s.persist.SaveUser(ctx, s.user)
}

func (s *Store) Logout(ctx context.Context) {
	s.SetUser(ctx, nil)
}

func (s *Store) UpdateAdminCredentials(ctx context.Context, creds domain.AdminCredentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	s.persist.SaveAdminCredentials(ctx, s.creds)
}

// ResetAdminCredentials restores admin@zap.com / 1234 and drops the stored override.
func (s *Store) ResetAdminCredentials(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = domain.DefaultAdminCredentials()
	s.persist.ClearAdminCredentials(ctx)
}
