package migrations

import "embed"

// FS SQL-миграции схемы, применяются через cmd/migrate
//
//go:embed *.sql
var FS embed.FS
