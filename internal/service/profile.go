package service

import (
	"context"
	"strings"

	"tripbook/internal/domain"
	"tripbook/internal/repository"
)

// ProfileService handles the single user profile.
type ProfileService struct {
	acc    *repository.Accessors
	seeder *Seeder
}

// NewProfileService creates a new ProfileService.
func NewProfileService(acc *repository.Accessors, seeder *Seeder) *ProfileService {
	return &ProfileService{acc: acc, seeder: seeder}
}

// Get returns the profile, seeding a default on first use.
func (s *ProfileService) Get(ctx context.Context) domain.Profile {
	return loadOrSeedDocument(ctx, s.seeder, s.acc.Profile, defaultProfile())
}

// Save overwrites the whole profile.
func (s *ProfileService) Save(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if !s.acc.Profile.Set(ctx, p) {
		return p, ErrNotPersisted
	}
	return p, nil
}

// SetAvatar replaces only the avatar, rewriting the whole profile object.
func (s *ProfileService) SetAvatar(ctx context.Context, uri string) (domain.Profile, error) {
	p := s.Get(ctx)
	p.AvatarURI = uri
	return s.Save(ctx, p)
}
