package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oyaguma3/macauth-radius-server/internal/audit"
	"github.com/oyaguma3/macauth-radius-server/internal/config"
	"github.com/oyaguma3/macauth-radius-server/internal/logging"
	"github.com/oyaguma3/macauth-radius-server/internal/macaddr"
	"github.com/oyaguma3/macauth-radius-server/internal/vlan"
)

// 判定理由の文字列。監査記録にそのまま記録される。
const (
	ReasonNoIdentity       = "no identity present"
	ReasonMalformedMac     = "malformed identity"
	ReasonNoAssignment     = "no VLAN assignment"
	ReasonStoreUnavailable = "store unavailable"
	ReasonInternalError    = "internal error"
)

// Engine はMAC認証の判定エンジン。
// 識別子抽出 → MAC正規化 → VLAN解決 の順で判定し、
// 終端状態ごとに必ず1件の監査記録を残す。
// リクエスト間で共有する可変状態は持たない。
type Engine struct {
	resolver VlanResolver
	auditor  RequestAuditor
	cfg      *config.Config
}

// NewEngine は新しい判定エンジンを生成する
func NewEngine(resolver VlanResolver, auditor RequestAuditor, cfg *config.Config) *Engine {
	return &Engine{
		resolver: resolver,
		auditor:  auditor,
		cfg:      cfg,
	}
}

// Process は認証リクエストを判定し、必ず1件のResultを返す。
// 内部で予期しない障害が発生した場合もpanicさせず、
// Rejectの結果と監査記録1件を生成して返す。
func (e *Engine) Process(ctx context.Context, req *Request) (result *Result) {
	audited := false

	defer func() {
		if r := recover(); r != nil {
			slog.Error("判定エンジン内部エラー",
				"event_id", "ENGINE_PANIC",
				"trace_id", req.TraceID,
				"panic", fmt.Sprint(r),
			)
			result = &Result{Action: ActionReject, Reason: ReasonInternalError}
			if !audited {
				e.recordAudit(ctx, req, "unknown", audit.ResponseTypeReject, ReasonInternalError)
			}
		}
	}()

	// 1. 識別子抽出: Calling-Station-Id優先、なければUser-Name
	identity := req.CallingStationID
	if identity == "" {
		identity = req.UserName
	}
	if identity == "" {
		slog.Warn("識別子なしのリクエスト",
			"event_id", "AUTH_NO_IDENTITY",
			"trace_id", req.TraceID,
			"src_ip", req.SrcIP,
		)
		audited = true
		e.recordAudit(ctx, req, "unknown", audit.ResponseTypeReject, ReasonNoIdentity)
		return &Result{Action: ActionReject, Reason: ReasonNoIdentity}
	}

	// 2. MAC正規化
	mac, err := macaddr.Normalize(identity)
	if err != nil {
		slog.Warn("MACアドレス形式不正",
			"event_id", "AUTH_MALFORMED_MAC",
			"trace_id", req.TraceID,
			"identity", identity,
		)
		audited = true
		e.recordAudit(ctx, req, identity, audit.ResponseTypeReject, ReasonMalformedMac)
		return &Result{Action: ActionReject, Reason: ReasonMalformedMac}
	}

	maskedMac := logging.MaskMAC(mac.String(), e.cfg.LogMaskMAC)

	// 3. VLAN解決（完全一致 → プレフィックス → デフォルト）
	assignment, err := e.resolver.Resolve(ctx, mac)
	if err != nil {
		switch {
		case errors.Is(err, vlan.ErrNoAssignment):
			// 正当なポリシー判定としての拒否
			slog.Info("VLAN割り当てなしのため拒否",
				"event_id", "AUTH_NO_ASSIGNMENT",
				"trace_id", req.TraceID,
				"mac", maskedMac,
			)
			audited = true
			e.recordAudit(ctx, req, mac.String(), audit.ResponseTypeReject, ReasonNoAssignment)
			return &Result{Action: ActionReject, Reason: ReasonNoAssignment}

		case errors.Is(err, vlan.ErrStoreUnavailable):
			// インフラ障害による拒否。ポリシー判定とは区別して記録する
			slog.Error("ストア障害のため拒否",
				"event_id", "AUTH_STORE_UNAVAILABLE",
				"trace_id", req.TraceID,
				"mac", maskedMac,
				"error", err,
			)
			audited = true
			e.recordAudit(ctx, req, mac.String(), audit.ResponseTypeReject, ReasonStoreUnavailable)
			return &Result{Action: ActionReject, Reason: ReasonStoreUnavailable}

		default:
			slog.Error("VLAN解決で予期しないエラー",
				"event_id", "AUTH_RESOLVE_ERR",
				"trace_id", req.TraceID,
				"mac", maskedMac,
				"error", err,
			)
			audited = true
			e.recordAudit(ctx, req, mac.String(), audit.ResponseTypeReject, ReasonInternalError)
			return &Result{Action: ActionReject, Reason: ReasonInternalError}
		}
	}

	// 4. 認証許可
	reason := fmt.Sprintf("VLAN %d assigned via %s match", assignment.VlanID, assignment.Match)
	slog.Info("認証許可",
		"event_id", "AUTH_ACCEPT",
		"trace_id", req.TraceID,
		"mac", maskedMac,
		"vlan_id", assignment.VlanID,
		"match", assignment.Match.String(),
	)
	audited = true
	e.recordAudit(ctx, req, mac.String(), audit.ResponseTypeAccept, reason)
	return &Result{
		Action: ActionAccept,
		VlanID: assignment.VlanID,
		Match:  assignment.Match,
		Reason: reason,
	}
}

// recordAudit は監査記録を1件追記する。失敗しても判定は変えない。
func (e *Engine) recordAudit(ctx context.Context, req *Request, username, responseType, reason string) {
	nasIP := req.NasIPAddress
	if nasIP == "" {
		nasIP = req.SrcIP
	}
	e.auditor.Record(ctx, &audit.Record{
		Username:         username,
		NasIPAddress:     nasIP,
		NasPort:          req.NasPort,
		CalledStationID:  req.CalledStationID,
		CallingStationID: req.CallingStationID,
		RequestType:      audit.RequestTypeAccess,
		ResponseType:     responseType,
		Reason:           reason,
	})
}
