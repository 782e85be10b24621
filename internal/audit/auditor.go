package audit

import (
	"context"
	"log/slog"
)

// Auditor は認証試行の監査記録をベストエフォートで永続化する。
// 記録の失敗は認証判定に影響させない（警告ログのみで処理を継続する）。
type Auditor struct {
	store Store
}

// NewAuditor は新しいAuditorを生成する
func NewAuditor(store Store) *Auditor {
	return &Auditor{store: store}
}

// Record は監査記録を1件追記し、成否を返す。
// 永続化に失敗してもエラーは伝播させず、falseを返すのみとする。
func (a *Auditor) Record(ctx context.Context, rec *Record) bool {
	if err := a.store.InsertAuditRecord(ctx, rec); err != nil {
		slog.Warn("監査記録の書き込み失敗",
			"event_id", "AUDIT_WRITE_ERR",
			"username", rec.Username,
			"response_type", rec.ResponseType,
			"error", err,
		)
		return false
	}
	return true
}
