package config

import "time"

// PostgreSQL接続設定
const (
	DBConnectTimeout = 3 * time.Second
	DBQueryTimeout   = 2 * time.Second
	DBPoolMaxConns   = 10
)

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyPoolSize       = 10
	ValkeyMaxRetries     = 3
	ValkeyMinRetryDelay  = 8 * time.Millisecond
	ValkeyMaxRetryDelay  = 512 * time.Millisecond
)

// Circuit Breaker設定（ルールストア保護）
const (
	CBName             = "rule-store"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// サーバーシャットダウン設定
const (
	ShutdownTimeout = 5 * time.Second
)
