package config

import "time"

// Identity API接続設定
const (
	RequestTimeout = 5 * time.Second
)

// Circuit Breaker設定
const (
	CBName             = "identity-api"
	CBMaxRequests      = 3
	CBInterval         = 10 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 5
)

// エクスポート上限
const (
	MaxExportRows = 100000
)
