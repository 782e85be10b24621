// Package db はスキーママイグレーションファイルを保持する。
package db

import "embed"

//go:embed migrations/*.sql
var MigrationsFS embed.FS
