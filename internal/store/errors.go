package store

import "errors"

var (
	// ErrValkeyUnavailable はValkeyへの接続が利用不可能な場合のエラー
	ErrValkeyUnavailable = errors.New("valkey unavailable")

	// ErrPostgresUnavailable はPostgreSQLへの接続またはクエリが失敗した場合のエラー
	ErrPostgresUnavailable = errors.New("postgres unavailable")
)
