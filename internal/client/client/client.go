package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/vidwave/internal/client/models"
)

// Service names one of the backends the client can reach.
type Service string

const (
	ServiceAuth      Service = "auth"
	ServiceDashboard Service = "dashboard"
	ServiceThumbnail Service = "thumbnail"
)

// Endpoints maps each service to its base URL.
type Endpoints struct {
	Auth      string
	Dashboard string
	Thumbnail string
}

func (e Endpoints) baseURL(s Service) (string, bool) {
	switch s {
	case ServiceAuth:
		return e.Auth, true
	case ServiceDashboard:
		return e.Dashboard, true
	case ServiceThumbnail:
		return e.Thumbnail, true
	}
	return "", false
}

// Client is the contract the services layer depends on.
type Client interface {
	Request(ctx context.Context, service Service, path, method string, body any, requiresAuth bool) (json.RawMessage, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, email, password, username, displayName string) (*models.AuthResult, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	BecomeAuthor(ctx context.Context, channelName, description string) (*models.AuthorResult, error)
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	UploadVideo(ctx context.Context, title, description, thumbnailURL, category string) (*models.UploadResult, error)
	GenerateThumbnail(ctx context.Context, prompt string) (*models.Thumbnail, error)
}
