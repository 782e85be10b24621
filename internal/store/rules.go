package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/oyaguma3/macauth-radius-server/internal/config"
	"github.com/oyaguma3/macauth-radius-server/internal/macaddr"
	"github.com/oyaguma3/macauth-radius-server/internal/vlan"
)

// VLANルール参照クエリ
const (
	queryDeviceVlan = `SELECT value FROM radreply
		WHERE username = $1 AND attribute = 'Tunnel-Private-Group-ID' LIMIT 1`
	queryPrefixVlan = `SELECT vlan_id FROM mac_prefixes
		WHERE prefix = $1 LIMIT 1`
	queryDefaultVlan = `SELECT vlan_id FROM default_vlan_config
		WHERE enabled = TRUE ORDER BY id DESC LIMIT 1`
)

// ruleStore はvlan.RuleStoreインターフェースのPostgreSQL実装。
type ruleStore struct {
	pc *PostgresClient
}

// NewRuleStore は新しいRuleStoreを生成する。
func NewRuleStore(pc *PostgresClient) vlan.RuleStore {
	return &ruleStore{pc: pc}
}

// FindDeviceVlan は端末MACアドレスに紐づくVLAN IDを検索する。
func (s *ruleStore) FindDeviceVlan(ctx context.Context, mac macaddr.MacAddress) (int, bool, error) {
	raw, found, err := s.queryString(ctx, queryDeviceVlan, mac.String())
	if err != nil || !found {
		return 0, false, err
	}
	vlanID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: invalid vlan value %q for %s", ErrPostgresUnavailable, raw, mac)
	}
	return vlanID, true, nil
}

// FindPrefixVlan はOUIプレフィックスに紐づくVLAN IDを検索する。
func (s *ruleStore) FindPrefixVlan(ctx context.Context, prefix string) (int, bool, error) {
	return s.queryInt(ctx, queryPrefixVlan, prefix)
}

// FindEnabledDefaultVlan は有効なデフォルトVLAN設定を検索する。
// 複数有効な場合は最新（id最大）の設定を採用する。
func (s *ruleStore) FindEnabledDefaultVlan(ctx context.Context) (int, bool, error) {
	return s.queryInt(ctx, queryDefaultVlan)
}

// queryInt は単一int列のクエリをCircuit Breaker経由で実行する。
// 該当行なしはCB失敗に含めない。
func (s *ruleStore) queryInt(ctx context.Context, query string, args ...any) (int, bool, error) {
	result, err := s.pc.execute(func() (any, error) {
		qctx, cancel := context.WithTimeout(ctx, config.DBQueryTimeout)
		defer cancel()

		var vlanID int
		if err := s.pc.Pool().QueryRow(qctx, query, args...).Scan(&vlanID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %v", ErrPostgresUnavailable, err)
		}
		return vlanID, nil
	})
	if err != nil {
		return 0, false, err
	}
	if result == nil {
		return 0, false, nil
	}
	return result.(int), true, nil
}

// queryString は単一string列のクエリをCircuit Breaker経由で実行する。
func (s *ruleStore) queryString(ctx context.Context, query string, args ...any) (string, bool, error) {
	result, err := s.pc.execute(func() (any, error) {
		qctx, cancel := context.WithTimeout(ctx, config.DBQueryTimeout)
		defer cancel()

		var value string
		if err := s.pc.Pool().QueryRow(qctx, query, args...).Scan(&value); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: %v", ErrPostgresUnavailable, err)
		}
		return value, nil
	})
	if err != nil {
		return "", false, err
	}
	if result == nil {
		return "", false, nil
	}
	return result.(string), true, nil
}
