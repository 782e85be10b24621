package vlan

import (
	"context"

	"github.com/oyaguma3/macauth-radius-server/internal/macaddr"
)

// RuleStore はVLAN割り当てルールへのアクセスを定義する。
// 各メソッドはルールが存在しない場合に(0, false, nil)を返し、
// ストア障害時のみ非nilエラーを返す。
type RuleStore interface {
	// FindDeviceVlan はMAC完全一致ルールのVLAN IDを検索する
	FindDeviceVlan(ctx context.Context, mac macaddr.MacAddress) (int, bool, error)

	// FindPrefixVlan は製造元プレフィックスルールのVLAN IDを検索する
	FindPrefixVlan(ctx context.Context, prefix string) (int, bool, error)

	// FindEnabledDefaultVlan は有効なデフォルトVLAN設定を検索する。
	// 有効な行が複数ある場合は最新（idが最大）の行が優先される。
	FindEnabledDefaultVlan(ctx context.Context) (int, bool, error)
}
