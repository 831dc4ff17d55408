package services

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/vidwave/internal/client/client"
	"github.com/dmitrijs2005/vidwave/internal/client/models"
)

// fakeClient implements client.Client and records the calls made to it.
type fakeClient struct {
	calls []string

	LoginRes *models.AuthResult
	LoginErr error

	RegisterRes *models.AuthResult
	RegisterErr error

	LogoutErr error

	CurrentUserRes *models.User
	CurrentUserErr error

	BecomeAuthorErr error

	StatsRes *models.DashboardStats
	StatsErr error

	UploadErr error
	ThumbRes  *models.Thumbnail

	LastRegister []string
	LastUpload   []string
	LastPrompt   string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Request(_ context.Context, service client.Service, path, method string, _ any, _ bool) (json.RawMessage, error) {
	f.calls = append(f.calls, method+" "+string(service)+path)
	return json.RawMessage(`{}`), nil
}

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.AuthResult, error) {
	f.calls = append(f.calls, "login")
	return f.LoginRes, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, email, password, username, displayName string) (*models.AuthResult, error) {
	f.calls = append(f.calls, "register")
	f.LastRegister = []string{email, password, username, displayName}
	return f.RegisterRes, f.RegisterErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	return f.LogoutErr
}

func (f *fakeClient) CurrentUser(context.Context) (*models.User, error) {
	f.calls = append(f.calls, "me")
	return f.CurrentUserRes, f.CurrentUserErr
}

func (f *fakeClient) BecomeAuthor(_ context.Context, channelName, description string) (*models.AuthorResult, error) {
	f.calls = append(f.calls, "become-author")
	if f.BecomeAuthorErr != nil {
		return nil, f.BecomeAuthorErr
	}
	return &models.AuthorResult{OK: true, ChannelID: "ch"}, nil
}

func (f *fakeClient) DashboardStats(context.Context) (*models.DashboardStats, error) {
	f.calls = append(f.calls, "stats")
	return f.StatsRes, f.StatsErr
}

func (f *fakeClient) UploadVideo(_ context.Context, title, description, thumbnailURL, category string) (*models.UploadResult, error) {
	f.calls = append(f.calls, "upload")
	f.LastUpload = []string{title, description, thumbnailURL, category}
	if f.UploadErr != nil {
		return nil, f.UploadErr
	}
	return &models.UploadResult{OK: true, VideoID: "v1"}, nil
}

func (f *fakeClient) GenerateThumbnail(_ context.Context, prompt string) (*models.Thumbnail, error) {
	f.calls = append(f.calls, "thumbnail")
	f.LastPrompt = prompt
	return f.ThumbRes, nil
}
