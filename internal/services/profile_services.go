package services

import (
	"context"
	"errors"
	"strings"

	"github.com/caffeinepub/cupcakemc/internal/cache"
	"github.com/caffeinepub/cupcakemc/internal/model"
)

// ProfileService serves the caller's profile and the admin check backing the
// privileged screens.
type ProfileService struct {
	Backend Backend
	Cache   *cache.Store
}

func NewProfileService(b Backend, c *cache.Store) *ProfileService {
	return &ProfileService{Backend: b, Cache: c}
}

// Profile returns nil for identities that have not completed profile setup.
func (s *ProfileService) Profile(ctx context.Context, principal string) (*model.UserProfile, error) {
	return cache.Fetch(ctx, s.Cache, profileKey(principal), s.Backend.GetCallerUserProfile, identityScopedOpts(principal != ""))
}

// Save creates or updates the caller's profile.
func (s *ProfileService) Save(ctx context.Context, principal string, profile model.UserProfile) error {
	if strings.TrimSpace(profile.Name) == "" || strings.TrimSpace(profile.MinecraftUsername) == "" {
		return errors.New("display name and Minecraft username are required")
	}
	return cache.Mutate(ctx, s.Cache, func(ctx context.Context) error {
		return s.Backend.SaveCallerUserProfile(ctx, profile)
	}, profileKey(principal))
}

// IsAdmin is the cached privileged-view gate. Anonymous callers are never
// admins and cause no remote call; a failed check degrades to "not admin"
// rather than an error page.
func (s *ProfileService) IsAdmin(ctx context.Context, principal string) bool {
	isAdmin, err := cache.Fetch(ctx, s.Cache, adminKey(principal), s.Backend.IsCallerAdmin, adminCheckOpts(principal != ""))
	if err != nil {
		return false
	}
	return isAdmin
}
