// Package cli provides the interactive NovaBiz command-line client.
//
// It wires configuration, the local store, domain services, and an
// interactive REPL. All state lives in a local SQLite-backed key-value
// store; the only external collaborator is the chat assistant.
//
// Key features:
//   - Register / Login / Logout against the local user directory
//   - Chat with the Nova assistant (with canned quick prompts)
//   - Track tasks: add, toggle, delete, filtered listing
//   - Community feed: post, like, comment
//   - Profile editing with interest categories
//   - A seeded market-news panel
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
