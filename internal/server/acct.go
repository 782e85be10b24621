package server

import (
	"log/slog"

	"github.com/google/uuid"
	radiuspkg "github.com/oyaguma3/macauth-radius-server/internal/radius"
	"layeh.com/radius"
)

// AcctHandler はアカウンティングロール（ポート1813）のRADIUSリクエストを処理するハンドラ。
// Accounting-RequestはAuthenticator検証後、業務処理なしで無条件に受理する。
type AcctHandler struct{}

// NewAcctHandler は新しいAcctHandlerを生成する
func NewAcctHandler() *AcctHandler {
	return &AcctHandler{}
}

// ServeRADIUS はRADIUSリクエストを処理する
func (h *AcctHandler) ServeRADIUS(w radius.ResponseWriter, r *radius.Request) {
	traceID := uuid.New().String()
	srcIP := extractIP(r.RemoteAddr)

	switch r.Code {
	case radius.CodeAccountingRequest:
		h.handleAccountingRequest(w, r, traceID, srcIP)

	case radius.CodeStatusServer:
		resp := radiuspkg.HandleStatusServer(r.Packet, r.Packet.Secret, radius.CodeAccountingResponse, srcIP, traceID)
		if resp == nil {
			return
		}
		if err := w.Write(resp); err != nil {
			slog.Error("Status-Server応答送信失敗",
				"event_id", "PKT_SEND_ERR",
				"trace_id", traceID,
				"error", err,
			)
		}

	default:
		slog.Warn("未対応のRADIUS Code",
			"event_id", "PKT_UNKNOWN_CODE",
			"trace_id", traceID,
			"src_ip", srcIP,
			"code", r.Code,
		)
	}
}

// handleAccountingRequest はAccounting-Requestを無条件受理する
func (h *AcctHandler) handleAccountingRequest(w radius.ResponseWriter, r *radius.Request, traceID, srcIP string) {
	// Request Authenticator検証（RFC 2866）
	if !radiuspkg.VerifyAccountingAuthenticator(r.Packet, r.Packet.Secret) {
		slog.Warn("Accounting Authenticator検証失敗",
			"event_id", "ACCT_AUTH_ERR",
			"trace_id", traceID,
			"src_ip", srcIP,
		)
		return // パケット破棄
	}

	slog.Info("Accounting-Request受理",
		"event_id", "ACCT_RECV",
		"trace_id", traceID,
		"src_ip", srcIP,
	)

	resp := radiuspkg.BuildAccountingResponse(r.Packet)
	if err := w.Write(resp); err != nil {
		slog.Error("Accounting-Response送信失敗",
			"event_id", "PKT_SEND_ERR",
			"trace_id", traceID,
			"error", err,
		)
	}
}
