package store

import (
	"context"
	"fmt"

	"github.com/oyaguma3/macauth-radius-server/internal/audit"
	"github.com/oyaguma3/macauth-radius-server/internal/config"
)

const queryInsertAudit = `INSERT INTO radius_logs
	(username, nas_ip_address, nas_port_id, called_station_id, calling_station_id,
	 request_type, response_type, reason)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// auditStore はaudit.StoreインターフェースのPostgreSQL実装。
// 監査書き込みはベストエフォートのためCircuit Breakerを経由しない。
type auditStore struct {
	pc *PostgresClient
}

// NewAuditStore は新しい監査ログStoreを生成する。
func NewAuditStore(pc *PostgresClient) audit.Store {
	return &auditStore{pc: pc}
}

// InsertAuditRecord は監査レコードを1件挿入する。
func (s *auditStore) InsertAuditRecord(ctx context.Context, rec *audit.Record) error {
	qctx, cancel := context.WithTimeout(ctx, config.DBQueryTimeout)
	defer cancel()

	_, err := s.pc.Pool().Exec(qctx, queryInsertAudit,
		rec.Username,
		rec.NasIPAddress,
		rec.NasPort,
		rec.CalledStationID,
		rec.CallingStationID,
		rec.RequestType,
		rec.ResponseType,
		rec.Reason,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostgresUnavailable, err)
	}
	return nil
}
