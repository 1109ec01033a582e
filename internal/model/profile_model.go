package model

// UserProfile is created once per identity after first login and never
// deleted by the client.
type UserProfile struct {
	Name              string `json:"name"`
	MinecraftUsername string `json:"minecraftUsername"`
}
