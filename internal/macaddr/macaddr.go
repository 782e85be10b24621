// Package macaddr はMACアドレスの正規化と正規形の操作を提供する。
package macaddr

import (
	"errors"
	"strings"
)

// ErrInvalidMac はMACアドレスとして解釈できない入力に対するエラー
var ErrInvalidMac = errors.New("invalid MAC address")

// hexDigits はMACアドレスの16進文字数（セパレータ除去後）
const hexDigits = 12

// MacAddress は正規化済みMACアドレス。
// 正規形は小文字16進2桁をコロンで連結した "aa:bb:cc:dd:ee:ff" 形式。
// Normalize経由でのみ生成され、生成後は変更されない。
type MacAddress string

// Normalize は任意表記のMACアドレスを正規形に変換する。
// コロン・ダッシュ・スペース区切りおよび区切りなしの表記を受け付ける。
// 英数字以外を除去→小文字化→12文字・全16進チェック→2文字ごとにコロン挿入。
// 変換できない入力にはErrInvalidMacを返す。
func Normalize(input string) (MacAddress, error) {
	var b strings.Builder
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}

	clean := b.String()
	if len(clean) != hexDigits {
		return "", ErrInvalidMac
	}
	for i := 0; i < hexDigits; i++ {
		c := clean[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", ErrInvalidMac
		}
	}

	var out strings.Builder
	out.Grow(hexDigits + 5)
	for i := 0; i < hexDigits; i += 2 {
		if i > 0 {
			out.WriteByte(':')
		}
		out.WriteString(clean[i : i+2])
	}
	return MacAddress(out.String()), nil
}

// String は正規形の文字列表現を返す
func (m MacAddress) String() string {
	return string(m)
}

// Prefix は製造元プレフィックス（先頭3オクテット）を "aa:bb:cc" 形式で返す
func (m MacAddress) Prefix() string {
	return string(m[:8])
}
