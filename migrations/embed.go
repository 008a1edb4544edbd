// Package migrations embeds the SQL schema so the server can bootstrap
// the database without the migration files present on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
