// Package cli provides the interactive voyage command-line client.
//
// It wires configuration, the two storage scopes, the credential client and
// the session store, then runs a REPL. Guests can register or log in;
// signed-in users can view and edit their profile, set an avatar and log
// out. A remembered login is restored on the next start.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
