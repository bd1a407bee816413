package config

import "time"

// サーバー設定
const (
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 10 * time.Second
)

// プロファイル更新のロック設定
const (
	ProfileLockTimeout = 3 * time.Second
)

// Valkeyキー
const (
	KeyPrefixProfile = "profile:"
	KeyProfileIndex  = "idx:profiles"
)
