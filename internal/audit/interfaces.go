package audit

import "context"

// Store は監査記録の永続化を定義する
type Store interface {
	// InsertAuditRecord は監査記録を1件追記する
	InsertAuditRecord(ctx context.Context, rec *Record) error
}
