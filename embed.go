package healthconnect

import "embed"

// MigrationsFS holds the embedded database migrations.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
