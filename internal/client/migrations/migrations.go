// Package migrations embeds the device SQLite schema for goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
