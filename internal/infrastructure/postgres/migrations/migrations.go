// Package migrations embute os arquivos SQL versionados do goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
