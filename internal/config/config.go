package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// PostgreSQL接続設定（VLANルール・監査ログ）
	DBHost string `envconfig:"DB_HOST" default:"localhost"`
	DBPort string `envconfig:"DB_PORT" default:"5432"`
	DBName string `envconfig:"DB_NAME" default:"radius"`
	DBUser string `envconfig:"DB_USER" default:"radius_user"`
	DBPass string `envconfig:"DB_PASS" default:"radius_password"`

	// Valkey接続設定（RADIUSクライアントSecret）。
	// REDIS_HOSTが空の場合はRADIUS_SECRETのみで動作する。
	RedisHost string `envconfig:"REDIS_HOST"`
	RedisPort string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPass string `envconfig:"REDIS_PASS"`

	// RADIUS設定。
	// RadiusSecretは全クライアント共通のワイルドカードSecret。
	RadiusSecret   string `envconfig:"RADIUS_SECRET"`
	AuthListenAddr string `envconfig:"AUTH_LISTEN_ADDR" default:":1812"`
	AcctListenAddr string `envconfig:"ACCT_LISTEN_ADDR" default:":1813"`

	// ログ設定
	LogFile    string `envconfig:"LOG_FILE"`
	LogMaskMAC bool   `envconfig:"LOG_MASK_MAC" default:"false"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// PostgresDSN はPostgreSQL接続文字列を返す
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

// ValkeyAddr はValkey接続アドレスを "host:port" 形式で返す
func (c *Config) ValkeyAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// HasValkey はクライアントSecret用のValkeyが設定されているかを返す
func (c *Config) HasValkey() bool {
	return c.RedisHost != ""
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	// Secret解決手段が1つもないと全リクエストを破棄することになる
	if c.RadiusSecret == "" && c.RedisHost == "" {
		return fmt.Errorf("either RADIUS_SECRET or REDIS_HOST must be set")
	}
	return nil
}
