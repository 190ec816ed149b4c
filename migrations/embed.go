// Package migrations holds the SQL schema migrations applied with goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
