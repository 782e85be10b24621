package server

import (
	"context"

	"log/slog"

	"github.com/google/uuid"
	"github.com/oyaguma3/macauth-radius-server/internal/engine"
	radiuspkg "github.com/oyaguma3/macauth-radius-server/internal/radius"
	"layeh.com/radius"
	"layeh.com/radius/rfc2869"
)

// AuthProcessor は認証判定エンジンを抽象化する
type AuthProcessor interface {
	Process(ctx context.Context, req *engine.Request) *engine.Result
}

// Handler は認証ロール（ポート1812）のRADIUSリクエストを処理するハンドラ。
// layeh.com/radius.Handlerインターフェースの実装。
type Handler struct {
	engine AuthProcessor
}

// NewHandler は新しいHandlerを生成する
func NewHandler(engine AuthProcessor) *Handler {
	return &Handler{engine: engine}
}

// ServeRADIUS はRADIUSリクエストを処理する
func (h *Handler) ServeRADIUS(w radius.ResponseWriter, r *radius.Request) {
	traceID := uuid.New().String()
	srcIP := extractIP(r.RemoteAddr)

	slog.Info("RADIUSパケット受信",
		"event_id", "PKT_RECV",
		"trace_id", traceID,
		"src_ip", srcIP,
		"code", r.Code,
	)

	switch r.Code {
	case radius.CodeAccessRequest:
		h.handleAccessRequest(w, r, traceID, srcIP)

	case radius.CodeStatusServer:
		h.handleStatusServer(w, r, traceID, srcIP)

	default:
		slog.Warn("未対応のRADIUS Code",
			"event_id", "PKT_UNKNOWN_CODE",
			"trace_id", traceID,
			"code", r.Code,
		)
		// 応答なし
	}
}

// handleAccessRequest はAccess-Requestを処理する。
// 判定エンジンは必ず1件の結果を返すため、ここでは結果種別に応じた
// 応答パケットの構築と送信のみを行う。
func (h *Handler) handleAccessRequest(w radius.ResponseWriter, r *radius.Request, traceID, srcIP string) {
	secret := r.Packet.Secret

	// Message-Authenticator検証（属性が存在する場合のみ。
	// MAC認証クライアントは付与しないことが多い）
	if _, err := rfc2869.MessageAuthenticator_Lookup(r.Packet); err == nil {
		if !radiuspkg.VerifyMessageAuthenticator(r.Packet, secret) {
			slog.Warn("Message-Authenticator検証失敗",
				"event_id", "PKT_MA_INVALID",
				"trace_id", traceID,
				"src_ip", srcIP,
			)
			return // 応答なし
		}
	}

	// RADIUS属性抽出
	userName, _ := radiuspkg.GetUserName(r.Packet)
	callingStation, _ := radiuspkg.GetCallingStationID(r.Packet)
	calledStation, _ := radiuspkg.GetCalledStationID(r.Packet)
	nasPort, _ := radiuspkg.GetNASPort(r.Packet)

	var nasIP string
	if ip, ok := radiuspkg.GetNASIPAddress(r.Packet); ok {
		nasIP = ip.String()
	}

	// 判定リクエスト構築
	req := &engine.Request{
		TraceID:          traceID,
		SrcIP:            srcIP,
		UserName:         userName,
		CallingStationID: callingStation,
		CalledStationID:  calledStation,
		NasIPAddress:     nasIP,
		NasPort:          nasPort,
	}

	// 判定エンジン処理
	ctx := context.Background()
	result := h.engine.Process(ctx, req)

	// ProxyState抽出
	proxyStates := radiuspkg.ExtractProxyStates(r.Packet)

	// 結果に基づいてRADIUS応答を構築
	var resp *radius.Packet
	switch result.Action {
	case engine.ActionAccept:
		resp = radiuspkg.BuildAccessAccept(r.Packet, secret, &radiuspkg.AcceptParams{
			VlanID:      result.VlanID,
			ProxyStates: proxyStates,
		})

	case engine.ActionReject:
		resp = radiuspkg.BuildAccessReject(r.Packet, secret, &radiuspkg.RejectParams{
			ProxyStates: proxyStates,
		})
	}

	if resp == nil {
		return
	}

	// 判定・監査は完了済みのため、送信失敗は配送障害として記録するのみ
	if err := w.Write(resp); err != nil {
		slog.Error("RADIUS応答送信失敗",
			"event_id", "PKT_SEND_ERR",
			"trace_id", traceID,
			"error", err,
		)
	}
}

// handleStatusServer はStatus-Serverリクエストに応答する。
// Message-Authenticator検証を行い、失敗時は無応答（破棄）とする。
func (h *Handler) handleStatusServer(w radius.ResponseWriter, r *radius.Request, traceID, srcIP string) {
	resp := radiuspkg.HandleStatusServer(r.Packet, r.Packet.Secret, radius.CodeAccessAccept, srcIP, traceID)
	if resp == nil {
		return // Message-Authenticator検証失敗 → 無応答
	}

	if err := w.Write(resp); err != nil {
		slog.Error("Status-Server応答送信失敗",
			"event_id", "PKT_SEND_ERR",
			"trace_id", traceID,
			"error", err,
		)
	}
}
