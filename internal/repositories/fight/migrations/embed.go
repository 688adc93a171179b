package migrations

import "embed"

// FS contains the embedded SQLite migrations for fights and participants.
//
//go:embed *.sql
var FS embed.FS
