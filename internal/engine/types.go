// Package engine はMAC認証の判定エンジンを提供する。
package engine

import (
	"context"

	"github.com/oyaguma3/macauth-radius-server/internal/audit"
	"github.com/oyaguma3/macauth-radius-server/internal/macaddr"
	"github.com/oyaguma3/macauth-radius-server/internal/vlan"
)

// Request は受信パケットから抽出された認証リクエスト。
// ワイヤフォーマットには依存せず、判定に必要な属性のみを持つ。
type Request struct {
	// TraceID はリクエスト追跡用ID
	TraceID string
	// SrcIP はパケット送信元IPアドレス
	SrcIP string
	// UserName はUser-Name属性値（未設定時は空）
	UserName string
	// CallingStationID はCalling-Station-Id属性値（未設定時は空）
	CallingStationID string
	// CalledStationID はCalled-Station-Id属性値（未設定時は空）
	CalledStationID string
	// NasIPAddress はNAS-IP-Address属性値（未設定時は送信元IPを充当）
	NasIPAddress string
	// NasPort はNAS-Port属性の文字列表現（未設定時は空）
	NasPort string
}

// Action は判定結果の種別
type Action int

const (
	// ActionAccept は認証許可（VLAN割り当てあり）
	ActionAccept Action = iota
	// ActionReject は認証拒否
	ActionReject
)

// Result は認証判定の結果。
// 1リクエストにつき必ず1件生成される。
type Result struct {
	// Action は応答種別
	Action Action
	// VlanID は割り当てるVLAN ID（Accept時のみ有効）
	VlanID int
	// Match は割り当てを決定したルール階層（Accept時のみ有効）
	Match vlan.MatchKind
	// Reason はどの分岐で確定したかを示す可読文字列（監査記録用）
	Reason string
}

// VlanResolver はVLAN割り当ての解決を定義する
type VlanResolver interface {
	Resolve(ctx context.Context, mac macaddr.MacAddress) (*vlan.Assignment, error)
}

// RequestAuditor は監査記録の追記を定義する
type RequestAuditor interface {
	Record(ctx context.Context, rec *audit.Record) bool
}
