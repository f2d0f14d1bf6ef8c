// Package migrations embeds the SQL schema of the client-side storage scopes.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
