// Package session holds the client-side session store: who is logged in, a
// loading indicator, and the four operations that change either.
//
// A Store is built once with New and handed to its consumers. It is the only
// writer of session state and of the "user" key in both storage scopes.
// Consumers read snapshots (State, CurrentUser) and may Subscribe to be told
// when something changed.
//
// Operations are serialized: an invocation made while another is pending
// waits for it and then runs against the committed result. Once started an
// operation is not cancelled by its caller's context; it always completes and
// either commits a full record or leaves the previous state untouched.
package session
