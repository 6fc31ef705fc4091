// Package migrations embeds the goose SQL migrations for the key server
// database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
