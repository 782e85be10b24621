// Package audit は認証リクエストごとの監査記録を提供する。
package audit

// リクエスト種別・応答種別の定数
const (
	RequestTypeAccess = "Access-Request"

	ResponseTypeAccept = "Access-Accept"
	ResponseTypeReject = "Access-Reject"
)

// Record は1件の認証試行の監査記録。
// リクエストごとに1件生成される追記専用のデータで、
// 更新・削除はこのコアでは行わない（保持期間の管理は外部の責務）。
type Record struct {
	// Username は認証対象の識別子（正規化済みMAC、取得できない場合は"unknown"）
	Username string
	// NasIPAddress はリクエスト元NASのIPアドレス
	NasIPAddress string
	// NasPort はNASポート番号（文字列表現、未取得時は空）
	NasPort string
	// CalledStationID はCalled-Station-Id属性値
	CalledStationID string
	// CallingStationID はCalling-Station-Id属性値
	CallingStationID string
	// RequestType はリクエスト種別（Access-Request）
	RequestType string
	// ResponseType は応答種別（Access-Accept / Access-Reject）
	ResponseType string
	// Reason は判定理由（どの分岐で確定したかを示す可読文字列）
	Reason string
}
