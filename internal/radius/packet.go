package radius

import (
	"net"
	"strconv"

	"layeh.com/radius"
	"layeh.com/radius/rfc2865"
)

// GetUserName はUser-Name属性を取得する。
// 属性が存在しない場合は("", false)を返す。
func GetUserName(p *radius.Packet) (string, bool) {
	val := rfc2865.UserName_GetString(p)
	if val == "" {
		return "", false
	}
	return val, true
}

// GetCallingStationID はCalling-Station-Id属性を取得する。
// 属性が存在しない場合は("", false)を返す。
func GetCallingStationID(p *radius.Packet) (string, bool) {
	val := rfc2865.CallingStationID_GetString(p)
	if val == "" {
		return "", false
	}
	return val, true
}

// GetCalledStationID はCalled-Station-Id属性を取得する。
// 属性が存在しない場合は("", false)を返す。
func GetCalledStationID(p *radius.Packet) (string, bool) {
	val := rfc2865.CalledStationID_GetString(p)
	if val == "" {
		return "", false
	}
	return val, true
}

// GetNASIPAddress はNAS-IP-Address属性を取得する。
// 属性が存在しない場合は(nil, false)を返す。
func GetNASIPAddress(p *radius.Packet) (net.IP, bool) {
	ip, err := rfc2865.NASIPAddress_Lookup(p)
	if err != nil {
		return nil, false
	}
	return ip, true
}

// GetNASPort はNAS-Port属性を10進文字列で取得する。
// 属性が存在しない場合は("", false)を返す。
func GetNASPort(p *radius.Packet) (string, bool) {
	port, err := rfc2865.NASPort_Lookup(p)
	if err != nil {
		return "", false
	}
	return strconv.Itoa(int(port)), true
}

// GetNASIdentifier はNAS-Identifier属性を取得する。
// 属性が存在しない場合は("", false)を返す。
func GetNASIdentifier(p *radius.Packet) (string, bool) {
	val := rfc2865.NASIdentifier_GetString(p)
	if val == "" {
		return "", false
	}
	return val, true
}
