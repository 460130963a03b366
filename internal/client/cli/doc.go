// Package cli provides the interactive gophnotes command-line client.
//
// The CLI is a thin presentation layer: each command makes one call through
// client.Client and prints the resulting common.Result as a single toast
// line ("Share request sent successfully", "Error: ..."), followed by any
// data the command lists. A background watcher pings the server and shows
// online/offline in the prompt.
//
// The session token issued by the identity provider is read from
// GOPHNOTES_SESSION_TOKEN at start-up or pasted at the login prompt, where it
// is not echoed.
package cli
