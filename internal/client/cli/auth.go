package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vidwave/internal/client/services"
	"github.com/dmitrijs2005/vidwave/internal/common"
)

// Prompt indirections, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getChoice     = GetChoice
)

// Register prompts for the account fields and creates the account. An empty
// display name falls back to the username.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	displayName, err := getSimpleText(a.reader, "Enter display name (empty to use username)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Register(ctx, services.RegisterInput{
		Email:       email,
		Password:    string(password),
		Username:    username,
		DisplayName: displayName,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", u.DisplayName)
	return nil
}

// Login prompts for credentials and authenticates. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Login(ctx, services.LoginInput{Email: email, Password: string(password)})
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "logged in", "username", u.Username)
	fmt.Fprintf(a.out, "Logged in as %s\n", u.Username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(context.Context) error {
	u := a.authService.User()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	role := "viewer"
	if u.IsAuthor {
		role = "author"
	}
	fmt.Fprintf(a.out, "%s (@%s) <%s>, %s\n", u.DisplayName, u.Username, u.Email, role)
	if u.Bio != "" {
		fmt.Fprintln(a.out, u.Bio)
	}
	return nil
}

// BecomeAuthor creates a channel. The channel name defaults to the user's
// display name.
func (a *App) BecomeAuthor(ctx context.Context) error {
	u := a.authService.User()
	if u == nil {
		return common.ErrNotLoggedIn
	}
	fallback := u.DisplayName
	if fallback == "" {
		fallback = u.Username
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Channel name (empty for %q)", fallback), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = fallback
	}

	description, err := getSimpleText(a.reader, "Channel description (optional)", a.out)
	if err != nil {
		return err
	}

	if _, err := a.authService.BecomeAuthor(ctx, services.BecomeAuthorInput{
		ChannelName: name,
		Description: description,
	}); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Channel %q created. You can now use stats and upload.\n", name)
	return nil
}
