// Package vlan はMACアドレスに対するVLAN割り当ての解決を提供する。
package vlan

// MatchKind はVLAN割り当てがどのルール階層で決定したかを表す
type MatchKind int

const (
	// MatchExact はデバイス個別ルール（完全一致）による割り当て
	MatchExact MatchKind = iota
	// MatchPrefix は製造元プレフィックスルールによる割り当て
	MatchPrefix
	// MatchDefault はデフォルトVLAN設定による割り当て
	MatchDefault
)

// String はマッチ種別の文字列表現を返す
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	case MatchDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Assignment はVLAN解決の結果。
// リクエストごとに生成される一時的な値であり、永続化はされない。
type Assignment struct {
	// VlanID は割り当てるVLAN ID（正の整数）
	VlanID int
	// Match は割り当てを決定したルール階層
	Match MatchKind
}
