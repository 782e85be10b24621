package radius

import (
	"strconv"

	"layeh.com/radius"
	"layeh.com/radius/rfc2868"
)

// AcceptParams はAccess-Accept生成に必要なパラメータ
type AcceptParams struct {
	// VlanID は割り当てるVLAN ID
	VlanID int
	// ProxyStates はリクエストから抽出されたProxy-State属性
	ProxyStates *ProxyStates
}

// RejectParams はAccess-Reject生成に必要なパラメータ
type RejectParams struct {
	// ProxyStates はリクエストから抽出されたProxy-State属性
	ProxyStates *ProxyStates
}

// BuildAccessAccept はVLAN割り当て付きのAccess-Acceptパケットを構築する。
// Tunnel-Type=13(VLAN), Tunnel-Medium-Type=6(IEEE 802),
// Tunnel-Private-Group-IdにVLAN IDの文字列表現を設定する。
func BuildAccessAccept(request *radius.Packet, secret []byte, params *AcceptParams) *radius.Packet {
	resp := request.Response(radius.CodeAccessAccept)

	// Tunnel AVP（VLAN割り当て）
	// Tag=0: タグなし。VLAN(13)はrfc2868パッケージに定数未定義のため直接指定。
	_ = rfc2868.TunnelType_Set(resp, 0, 13)
	_ = rfc2868.TunnelMediumType_Set(resp, 0, rfc2868.TunnelMediumType_Value_IEEE802)
	_ = rfc2868.TunnelPrivateGroupID_SetString(resp, 0, strconv.Itoa(params.VlanID))

	// Proxy-State
	params.ProxyStates.Apply(resp)

	// Message-Authenticator
	SetMessageAuthenticator(resp, secret, request.Authenticator)

	return resp
}

// BuildAccessReject はAccess-Rejectパケットを構築する。
// 診断情報は属性として載せない（詳細は監査ログのみに残す）。
func BuildAccessReject(request *radius.Packet, secret []byte, params *RejectParams) *radius.Packet {
	resp := request.Response(radius.CodeAccessReject)

	// Proxy-State
	params.ProxyStates.Apply(resp)

	// Message-Authenticator
	SetMessageAuthenticator(resp, secret, request.Authenticator)

	return resp
}

// BuildAccountingResponse はAccounting-Responseパケットを構築する（RFC 2866）。
// 属性は載せない。Response Authenticatorは送信時にライブラリが計算する。
func BuildAccountingResponse(request *radius.Packet) *radius.Packet {
	resp := request.Response(radius.CodeAccountingResponse)

	// Proxy-Stateエコーバック
	ExtractProxyStates(request).Apply(resp)

	return resp
}
