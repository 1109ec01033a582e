package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caffeinepub/cupcakemc/internal/cache"
	"github.com/caffeinepub/cupcakemc/internal/model"
)

// ConfigService serves the two singleton configs. The website config is
// public; the UPI config is only fetched for authenticated callers since it
// only matters once a checkout starts.
type ConfigService struct {
	Backend Backend
	Cache   *cache.Store
}

func NewConfigService(b Backend, c *cache.Store) *ConfigService {
	return &ConfigService{Backend: b, Cache: c}
}

func (s *ConfigService) Website(ctx context.Context) (model.WebsiteConfig, error) {
	return cache.Fetch(ctx, s.Cache, keyWebsiteConfig, s.Backend.GetWebsiteConfig, websiteConfigOpts)
}

func (s *ConfigService) UPI(ctx context.Context, principal string) (model.UPIConfig, error) {
	return cache.Fetch(ctx, s.Cache, keyUPIConfig, s.Backend.GetUPIConfig, upiConfigOpts(principal != ""))
}

func validateWebsiteConfig(cfg model.WebsiteConfig) error {
	for _, raw := range cfg.VotePageUrls {
		if !model.IsValidImageURL(raw) {
			return fmt.Errorf("vote page URL %q is not a valid http(s) URL", raw)
		}
	}
	switch cfg.Logo.Kind {
	case model.LogoURL:
		if cfg.Logo.URL != "" && !model.IsValidImageURL(cfg.Logo.URL) {
			return fmt.Errorf("logo URL %q is not a valid http(s) URL", cfg.Logo.URL)
		}
	case model.LogoUpload:
		if cfg.Logo.Upload == nil || cfg.Logo.Upload.URL == "" {
			return errors.New("uploaded logo is missing its asset URL")
		}
	default:
		return fmt.Errorf("unknown logo kind %q", cfg.Logo.Kind)
	}
	switch cfg.Background.Kind {
	case model.BackgroundColor:
		if cfg.Background.Color != "" && !model.IsValidHexColor(cfg.Background.Color) {
			return fmt.Errorf("background color %q is not a valid hex color", cfg.Background.Color)
		}
	case model.BackgroundImage:
		if cfg.Background.ImageURL != "" && !model.IsValidImageURL(cfg.Background.ImageURL) {
			return fmt.Errorf("background image %q is not a valid http(s) URL", cfg.Background.ImageURL)
		}
	default:
		return fmt.Errorf("unknown background kind %q", cfg.Background.Kind)
	}
	return nil
}

// UpdateWebsite validates before any remote call, then invalidates the
// config so every screen picks up the new appearance.
func (s *ConfigService) UpdateWebsite(ctx context.Context, cfg model.WebsiteConfig) error {
	if err := validateWebsiteConfig(cfg); err != nil {
		return err
	}
	return cache.Mutate(ctx, s.Cache, func(ctx context.Context) error {
		return s.Backend.UpdateWebsiteConfig(ctx, cfg)
	}, keyWebsiteConfig)
}

func (s *ConfigService) UpdateUPI(ctx context.Context, upiID, merchantName string) error {
	if strings.TrimSpace(upiID) == "" || strings.TrimSpace(merchantName) == "" {
		return errors.New("UPI id and merchant name are required")
	}
	return cache.Mutate(ctx, s.Cache, func(ctx context.Context) error {
		return s.Backend.UpdateUPIConfig(ctx, upiID, merchantName)
	}, keyUPIConfig)
}
