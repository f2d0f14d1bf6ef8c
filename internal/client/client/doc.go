// Package client contains the credential service boundary of the Voyage
// client.
//
// # Overview
//
// The session store never talks to a backend directly. It depends on the
// Client interface (Authenticate, CreateAccount, UpdateProfile, SignOut), so
// a networked implementation can replace the bundled one without touching
// store logic.
//
// MockClient is the bundled implementation. It performs no credential check:
// every email/password pair is accepted after a fixed, configurable delay,
// standing in for backend latency.
//
// # Error Handling
//
// Implementations report conditions through sentinel errors matched with
// errors.Is: ErrUnavailable and ErrUnauthorized. MockClient only fails when
// the caller's context ends before the delay elapses.
//
// # Concurrency & Contexts
//
// Implementations must be safe for concurrent use and honor context
// cancellation.
package client
