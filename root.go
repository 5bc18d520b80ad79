// Package fundscout exposes module-level assets, currently the embedded
// database migrations applied by the migrate subcommand and tests.
package fundscout

import "embed"

// Migrations contains the goose SQL migrations for the discovery schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
