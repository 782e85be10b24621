package logging

// MaskMAC は正規形MACアドレスのデバイス固有部をマスキングする。
// "aa:bb:cc:dd:ee:ff" → "aa:bb:cc:**:**:**"（製造元プレフィックスは残す）。
// enabled=falseまたは正規形でない文字列はそのまま返す。
func MaskMAC(mac string, enabled bool) string {
	if !enabled || len(mac) != 17 {
		return mac
	}
	return mac[:9] + "**:**:**"
}
