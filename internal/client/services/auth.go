// Package services contains the calling layer of the VidWave CLI: input
// validation, the cached session state and the author studio helpers.
package services

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/vidwave/internal/client/client"
	"github.com/dmitrijs2005/vidwave/internal/client/models"
	"github.com/dmitrijs2005/vidwave/internal/common"
)

// State is the session view-state.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	}
	return "unauthenticated"
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Username    string `json:"username" validate:"required,max=50"`
	DisplayName string `json:"display_name" validate:"max=100"`
}

type BecomeAuthorInput struct {
	ChannelName string `json:"channel_name" validate:"required,max=100"`
	Description string `json:"description"`
}

// AuthService tracks who is logged in.
//
// Contract:
//   - Restore: load the user behind a previously stored token.
//   - Login, Register: validate, authenticate and cache the user.
//   - Logout: end the session; the cached user is dropped even on failure.
//   - BecomeAuthor: create a channel, then refresh the cached user.
//   - User, State, IsAuthor: read the cache without network I/O.
type AuthService interface {
	Restore(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, in LoginInput) (*models.User, error)
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Logout(ctx context.Context) error
	BecomeAuthor(ctx context.Context, in BecomeAuthorInput) (*models.User, error)
	User() *models.User
	State() State
	IsAuthor() bool
}

type authService struct {
	client client.Client

	mu    sync.RWMutex
	user  *models.User
	state State
}

// NewAuthService constructs an AuthService on top of the given API client.
func NewAuthService(c client.Client) AuthService {
	return &authService{client: c}
}

func (a *authService) setUser(u *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = u
	if u == nil {
		a.state = StateUnauthenticated
	} else {
		a.state = StateAuthenticated
	}
}

// begin marks an authentication attempt and returns a func that restores the
// previous state if the attempt fails.
func (a *authService) begin() (rollback func()) {
	a.mu.Lock()
	prevUser, prevState := a.user, a.state
	a.state = StateAuthenticating
	a.mu.Unlock()

	return func() {
		a.mu.Lock()
		a.user, a.state = prevUser, prevState
		a.mu.Unlock()
	}
}

func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	u, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.setUser(nil)
		return nil, err
	}
	a.setUser(u)
	return u, nil
}

func (a *authService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	rollback := a.begin()
	res, err := a.client.Login(ctx, in.Email, in.Password)
	if err != nil {
		rollback()
		return nil, err
	}

	u := res.User
	a.setUser(&u)
	return &u, nil
}

func (a *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	in.DisplayName = strings.TrimSpace(in.DisplayName)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.DisplayName == "" {
		in.DisplayName = in.Username
	}

	rollback := a.begin()
	res, err := a.client.Register(ctx, in.Email, in.Password, in.Username, in.DisplayName)
	if err != nil {
		rollback()
		return nil, err
	}

	u := res.User
	a.setUser(&u)
	return &u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	defer a.setUser(nil)
	return a.client.Logout(ctx)
}

// BecomeAuthor does not trust the mutation response for the new role; it
// re-reads the profile with a separate CurrentUser call.
func (a *authService) BecomeAuthor(ctx context.Context, in BecomeAuthorInput) (*models.User, error) {
	in.ChannelName = strings.TrimSpace(in.ChannelName)
	in.Description = strings.TrimSpace(in.Description)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if a.User() == nil {
		return nil, common.ErrNotLoggedIn
	}

	if _, err := a.client.BecomeAuthor(ctx, in.ChannelName, in.Description); err != nil {
		return nil, err
	}

	u, err := a.Restore(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrNotLoggedIn
	}
	return u, nil
}

func (a *authService) User() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user
}

func (a *authService) State() State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *authService) IsAuthor() bool {
	u := a.User()
	return u != nil && u.IsAuthor
}
