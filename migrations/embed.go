// Package migrations embeds the SQL migration files so the goose
// programmatic API can apply them at server startup and in test TestMains.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time, so the
// running binary never depends on a filesystem path for its schema.
//
//go:embed *.sql
var FS embed.FS
