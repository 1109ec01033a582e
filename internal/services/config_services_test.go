package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffeinepub/cupcakemc/internal/cache"
	"github.com/caffeinepub/cupcakemc/internal/model"
)

func validWebsiteConfig() model.WebsiteConfig {
	return model.WebsiteConfig{
		HomeTagline:       "Welcome to CupCakeMC",
		DiscordInviteLink: "https://discord.gg/cupcake",
		VotePageUrls:      []string{"https://vote.example.com/cupcake"},
		ServerIP:          "play.cupcakemc.net",
		Logo:              model.Logo{Kind: model.LogoURL, URL: "https://cdn.example.com/logo.png"},
		Background:        model.BackgroundSetting{Kind: model.BackgroundColor, Color: "#1a1a1a"},
	}
}

func newConfigFixture() (*ConfigService, *fakeBackend) {
	f := newFakeBackend()
	f.website = validWebsiteConfig()
	f.upi = model.UPIConfig{UPIID: "cupcake@upi", MerchantName: "CupCake MC"}
	return NewConfigService(f, cache.NewStore(nil)), f
}

func TestWebsiteConfigCached(t *testing.T) {
	svc, f := newConfigFixture()
	ctx := context.Background()

	cfg, err := svc.Website(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to CupCakeMC", cfg.HomeTagline)

	_, err = svc.Website(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.calls("getWebsiteConfig"))
}

func TestUPIConfigRequiresAuthentication(t *testing.T) {
	svc, f := newConfigFixture()
	ctx := context.Background()

	cfg, err := svc.UPI(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, cfg.UPIID)
	assert.Equal(t, 0, f.calls("getUPIConfig"), "anonymous callers must not fetch the payment target")

	cfg, err = svc.UPI(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "cupcake@upi", cfg.UPIID)
}

func TestUpdateWebsiteValidatesBeforeRemoteCall(t *testing.T) {
	svc, f := newConfigFixture()
	ctx := context.Background()

	bad := validWebsiteConfig()
	bad.VotePageUrls = []string{"not a url"}
	assert.Error(t, svc.UpdateWebsite(ctx, bad))

	bad = validWebsiteConfig()
	bad.Background = model.BackgroundSetting{Kind: model.BackgroundColor, Color: "dark red"}
	assert.Error(t, svc.UpdateWebsite(ctx, bad))

	bad = validWebsiteConfig()
	bad.Logo = model.Logo{Kind: "gradient"}
	assert.Error(t, svc.UpdateWebsite(ctx, bad))

	bad = validWebsiteConfig()
	bad.Logo = model.Logo{Kind: model.LogoUpload}
	assert.Error(t, svc.UpdateWebsite(ctx, bad))

	assert.Equal(t, 0, f.calls("updateWebsiteConfig"))
}

func TestUpdateWebsiteInvalidates(t *testing.T) {
	svc, f := newConfigFixture()
	ctx := context.Background()

	_, err := svc.Website(ctx)
	require.NoError(t, err)

	updated := validWebsiteConfig()
	updated.HomeTagline = "Season 5 is live"
	require.NoError(t, svc.UpdateWebsite(ctx, updated))

	cfg, err := svc.Website(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Season 5 is live", cfg.HomeTagline)
	assert.Equal(t, 2, f.calls("getWebsiteConfig"))
}

func TestUpdateUPIRequiresBothFields(t *testing.T) {
	svc, f := newConfigFixture()
	ctx := context.Background()

	assert.Error(t, svc.UpdateUPI(ctx, "", "CupCake MC"))
	assert.Error(t, svc.UpdateUPI(ctx, "cupcake@upi", "  "))
	assert.Equal(t, 0, f.calls("updateUPIConfig"))

	require.NoError(t, svc.UpdateUPI(ctx, "new@upi", "CupCake MC"))

	cfg, err := svc.UPI(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "new@upi", cfg.UPIID)
}
