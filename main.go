// Package main はMAC認証RADIUSサーバーのエントリーポイント。
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/oyaguma3/macauth-radius-server/internal/audit"
	"github.com/oyaguma3/macauth-radius-server/internal/config"
	"github.com/oyaguma3/macauth-radius-server/internal/engine"
	"github.com/oyaguma3/macauth-radius-server/internal/server"
	"github.com/oyaguma3/macauth-radius-server/internal/store"
	"github.com/oyaguma3/macauth-radius-server/internal/vlan"
	"layeh.com/radius"
)

func main() {
	// 1. 環境変数読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("設定読み込み失敗", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化（JSON形式、INFO以上）
	logWriter := io.Writer(os.Stdout)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("ログファイルオープン失敗", "path", cfg.LogFile, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logWriter = io.MultiWriter(os.Stdout, f)
	}
	logger := slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With("app", "macauth-radius-server")
	slog.SetDefault(logger)

	slog.Info("macauth-radius-server起動開始",
		"auth_listen_addr", cfg.AuthListenAddr,
		"acct_listen_addr", cfg.AcctListenAddr,
		"db_host", cfg.DBHost,
	)

	// 3. PostgreSQLクライアント初期化
	pgClient, err := store.NewPostgresClient(cfg)
	if err != nil {
		slog.Error("PostgreSQL接続失敗",
			"event_id", "PG_CONN_ERR",
			"error", err,
		)
		os.Exit(1)
	}
	defer pgClient.Close()

	// 4. スキーママイグレーション適用
	if err := pgClient.Migrate(cfg.PostgresDSN()); err != nil {
		slog.Error("マイグレーション失敗",
			"event_id", "PG_MIGRATE_ERR",
			"error", err,
		)
		os.Exit(1)
	}

	slog.Info("PostgreSQL接続完了", "db_name", cfg.DBName)

	// 5. RADIUS Secret解決（Valkey登録 or ワイルドカードSecret）
	var secretSource radius.SecretSource
	if cfg.HasValkey() {
		valkeyClient, err := store.NewValkeyClient(cfg)
		if err != nil {
			slog.Error("Valkey接続失敗",
				"event_id", "VALKEY_CONN_ERR",
				"error", err,
			)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		slog.Info("Valkey接続完了", "addr", cfg.ValkeyAddr())
		secretSource = server.NewSecretSource(store.NewClientStore(valkeyClient), cfg.RadiusSecret)
	} else {
		secretSource = radius.StaticSecretSource([]byte(cfg.RadiusSecret))
	}

	// 6. Store層生成
	ruleStore := store.NewRuleStore(pgClient)
	auditStore := store.NewAuditStore(pgClient)

	// 7. VLAN解決器・監査レコーダ
	resolver := vlan.NewResolver(ruleStore)
	auditor := audit.NewAuditor(auditStore)

	// 8. 認証判定エンジン
	authEngine := engine.NewEngine(resolver, auditor, cfg)

	// 9. RADIUSハンドラ（認証・アカウンティング）
	authHandler := server.NewHandler(authEngine)
	acctHandler := server.NewAcctHandler()

	// 10. UDPサーバー
	authSrv := server.NewServer("auth", cfg.AuthListenAddr, authHandler, secretSource)
	acctSrv := server.NewServer("acct", cfg.AcctListenAddr, acctHandler, secretSource)

	// 11. サーバー起動（goroutine）
	for _, srv := range []*server.Server{authSrv, acctSrv} {
		go func(s *server.Server) {
			if err := s.ListenAndServe(); err != nil {
				slog.Error("サーバーエラー", "error", err)
			}
		}(srv)
	}

	// 12. シグナル待機 → Graceful Shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigCh
	slog.Info("シグナル受信、シャットダウン開始", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := authSrv.Shutdown(ctx); err != nil {
		slog.Warn("シャットダウンエラー", "role", "auth", "error", err)
	}
	if err := acctSrv.Shutdown(ctx); err != nil {
		slog.Warn("シャットダウンエラー", "role", "acct", "error", err)
	}

	slog.Info("macauth-radius-server停止完了")
}
