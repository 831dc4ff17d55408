package common

import "errors"

var (
	// ErrNotLoggedIn is returned by operations that need a cached user.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotAuthor is returned when an author-only action is attempted by a viewer.
	ErrNotAuthor = errors.New("author account required")

	// ErrUnsupportedMethod is returned for HTTP methods other than GET and POST.
	ErrUnsupportedMethod = errors.New("unsupported method")

	// ErrUnknownService is returned when a request targets an unconfigured service.
	ErrUnknownService = errors.New("unknown service")
)
