package store

// Valkeyキープレフィックス
const (
	KeyPrefixClient = "client:" // RADIUSクライアント設定
)
