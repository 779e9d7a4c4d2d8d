// Package cli provides the interactive Haven command-line client.
//
// It wires configuration, the local key-value store, and the identity, chat,
// and report services into a REPL. Typical flow: restore any persisted
// session, then execute user commands until exit.
//
// Key features:
//   - Register / Login (captcha-gated) / Logout
//   - Support chat with a scripted counselor responder
//   - Incident reports: file, edit, delete, change status
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
