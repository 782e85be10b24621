package vlan

import "errors"

var (
	// ErrNoAssignment はどのルール階層にも一致しなかった場合のエラー（正当なポリシー判定）
	ErrNoAssignment = errors.New("no VLAN assignment")

	// ErrStoreUnavailable はストア接続またはクエリの失敗を表すエラー。
	// ErrNoAssignmentとは区別して扱い、監査ログ上も別理由として記録する。
	ErrStoreUnavailable = errors.New("store unavailable")
)
