package model

import (
	"net/url"
	"regexp"
)

// DefaultLogoPath is served when no logo is configured or the configured one
// is unusable.
const DefaultLogoPath = "/assets/cupcakemc-logo.png"

// DefaultBackgroundColor is the dark fallback used when the background
// setting is empty or invalid.
const DefaultBackgroundColor = "#1a1a1a"

// LogoKind tags the Logo sum type.
type LogoKind string

const (
	LogoURL    LogoKind = "url"
	LogoUpload LogoKind = "upload"
)

// LogoAsset is an admin-uploaded logo image hosted on the media CDN.
type LogoAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// Logo is either an external URL or an uploaded asset. Consumers must switch
// on Kind exhaustively; Src centralizes that.
type Logo struct {
	Kind   LogoKind   `json:"kind"`
	URL    string     `json:"url,omitempty"`
	Upload *LogoAsset `json:"upload,omitempty"`
}

// Src resolves the logo to a displayable URL, falling back to the stock logo.
func (l Logo) Src() string {
	switch l.Kind {
	case LogoURL:
		if l.URL != "" {
			return l.URL
		}
	case LogoUpload:
		if l.Upload != nil && l.Upload.URL != "" {
			return l.Upload.URL
		}
	}
	return DefaultLogoPath
}

// BackgroundKind tags the BackgroundSetting sum type.
type BackgroundKind string

const (
	BackgroundColor BackgroundKind = "color"
	BackgroundImage BackgroundKind = "image"
)

// BackgroundSetting is either a solid color or a cover image.
type BackgroundSetting struct {
	Kind     BackgroundKind `json:"kind"`
	Color    string         `json:"color,omitempty"`
	ImageURL string         `json:"imageUrl,omitempty"`
}

// ResolvedBackground is the presentation-ready form of a BackgroundSetting.
type ResolvedBackground struct {
	Color    string `json:"color,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Resolve applies fallbacks: invalid colors become the default dark color,
// invalid image URLs fall back to the default color as well.
func (b BackgroundSetting) Resolve() ResolvedBackground {
	switch b.Kind {
	case BackgroundColor:
		if IsValidHexColor(b.Color) {
			return ResolvedBackground{Color: b.Color}
		}
	case BackgroundImage:
		if IsValidImageURL(b.ImageURL) {
			return ResolvedBackground{ImageURL: b.ImageURL}
		}
	}
	return ResolvedBackground{Color: DefaultBackgroundColor}
}

var hexColorRe = regexp.MustCompile(`(?i)^#([0-9A-F]{3}|[0-9A-F]{6})$`)

// IsValidHexColor reports whether color is a #RGB or #RRGGBB value.
func IsValidHexColor(color string) bool {
	return hexColorRe.MatchString(color)
}

// IsValidImageURL reports whether raw parses as an absolute http(s) URL.
func IsValidImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// WebsiteConfig is the singleton site configuration: admin-mutable, globally
// readable.
type WebsiteConfig struct {
	HomeTagline        string            `json:"homeTagline"`
	DiscordInviteLink  string            `json:"discordInviteLink"`
	VotePageUrls       []string          `json:"votePageUrls"`
	ServerIP           string            `json:"serverIp"`
	ServerOnlineStatus bool              `json:"serverOnlineStatus"`
	ServerMemberCount  int64             `json:"serverMemberCount"`
	Logo               Logo              `json:"logo"`
	Background         BackgroundSetting `json:"background"`
}

// UPIConfig is the singleton payment target the QR code is built from.
type UPIConfig struct {
	UPIID        string `json:"upiId"`
	MerchantName string `json:"merchantName"`
}
