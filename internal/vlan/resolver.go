package vlan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oyaguma3/macauth-radius-server/internal/macaddr"
)

// Resolver はMACアドレスに対するVLAN割り当てを階層的に解決する。
// 優先順位は 完全一致 → プレフィックス一致 → デフォルトVLAN の順で、
// 最初に一致した階層の結果を採用する（マージは行わない）。
type Resolver struct {
	rules RuleStore
}

// NewResolver は新しいResolverを生成する
func NewResolver(rules RuleStore) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve は正規化済みMACアドレスのVLAN割り当てを解決する。
// どの階層にも一致しない場合はErrNoAssignment、
// ストア障害時はErrStoreUnavailableを返す。
// リトライは行わない（再接続は接続プール層の責務）。
func (r *Resolver) Resolve(ctx context.Context, mac macaddr.MacAddress) (*Assignment, error) {
	// 1. デバイス個別ルール（完全一致）
	vlanID, found, err := r.rules.FindDeviceVlan(ctx, mac)
	if err != nil {
		return nil, fmt.Errorf("%w: device rule lookup: %v", ErrStoreUnavailable, err)
	}
	if found {
		slog.Info("VLAN解決: 完全一致",
			"event_id", "VLAN_MATCH_EXACT",
			"mac", mac.String(),
			"vlan_id", vlanID,
		)
		return &Assignment{VlanID: vlanID, Match: MatchExact}, nil
	}

	// 2. 製造元プレフィックスルール
	prefix := mac.Prefix()
	vlanID, found, err = r.rules.FindPrefixVlan(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: prefix rule lookup: %v", ErrStoreUnavailable, err)
	}
	if found {
		slog.Info("VLAN解決: プレフィックス一致",
			"event_id", "VLAN_MATCH_PREFIX",
			"prefix", prefix,
			"vlan_id", vlanID,
		)
		return &Assignment{VlanID: vlanID, Match: MatchPrefix}, nil
	}

	// 3. デフォルトVLAN（有効時のみ）
	vlanID, found, err = r.rules.FindEnabledDefaultVlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: default vlan lookup: %v", ErrStoreUnavailable, err)
	}
	if found {
		slog.Info("VLAN解決: デフォルト割り当て",
			"event_id", "VLAN_MATCH_DEFAULT",
			"mac", mac.String(),
			"vlan_id", vlanID,
		)
		return &Assignment{VlanID: vlanID, Match: MatchDefault}, nil
	}

	// 4. 割り当てなし
	return nil, ErrNoAssignment
}
