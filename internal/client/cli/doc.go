// Package cli provides the interactive VidWave command-line client.
//
// It wires configuration, the local session database, the API client and
// services, and runs a REPL. A session stored by a previous run is restored
// on start, so users stay logged in across restarts.
//
// Key features:
//   - Register / Login / Logout / whoami
//   - become-author: create a channel and turn the account into an author
//   - stats: earnings dashboard with source shares and a monthly chart
//   - upload: publish a video
//   - thumbnail: generate a cover image from a text prompt
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
