package server

import (
	"context"
	"log/slog"

	"layeh.com/radius"
)

// Server はRADIUS UDPサーバーのラッパー。
// 認証ロールとアカウンティングロールで1つずつ起動される。
type Server struct {
	role string
	ps   *radius.PacketServer
}

// NewServer は新しいServerを生成する。
// roleはログ識別用のロール名（"auth" / "acct"）。
func NewServer(role, addr string, handler radius.Handler, secretSource radius.SecretSource) *Server {
	return &Server{
		role: role,
		ps: &radius.PacketServer{
			Addr:         addr,
			SecretSource: secretSource,
			Handler:      handler,
		},
	}
}

// ListenAndServe はUDPサーバーを起動する
func (s *Server) ListenAndServe() error {
	slog.Info("RADIUSサーバー起動",
		"event_id", "SRV_START",
		"role", s.role,
		"addr", s.ps.Addr,
	)
	return s.ps.ListenAndServe()
}

// Shutdown はサーバーをグレースフルに停止する
func (s *Server) Shutdown(ctx context.Context) error {
	return s.ps.Shutdown(ctx)
}
