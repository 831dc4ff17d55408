// Package models defines the records exchanged with the VidWave services.
// They are owned by the server; the client only decodes and displays them.
package models

// User is the profile of the logged-in account.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Bio         string `json:"bio,omitempty"`

	// IsAuthor flips to true once the user has created a channel.
	IsAuthor bool `json:"is_author"`
}

// AuthResult is returned by login and registration.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// AuthorResult is returned when a user becomes an author.
type AuthorResult struct {
	OK        bool   `json:"ok"`
	ChannelID string `json:"channel_id"`
}
