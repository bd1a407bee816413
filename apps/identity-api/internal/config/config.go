// Package config は環境変数から設定を読み込む。
package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/astrixforge/Device-Masker-sub000/pkg/valkey"
)

// Config はIdentity APIの設定を保持する。
type Config struct {
	// Valkey設定
	RedisHost string `envconfig:"REDIS_HOST" required:"true"`
	RedisPort string `envconfig:"REDIS_PORT" required:"true"`
	RedisPass string `envconfig:"REDIS_PASS" required:"true"`

	// サーバー設定
	ListenAddr         string `envconfig:"LISTEN_ADDR" default:":8080"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"INFO"`
	LogMaskIdentifiers bool   `envconfig:"LOG_MASK_IDENTIFIERS" default:"true"`
	GinMode            string `envconfig:"GIN_MODE" default:"release"`

	// 参照データ設定
	RefDataPath string `envconfig:"REFDATA_PATH"` // 組み込み参照データに重ねるYAMLファイル（空なら組み込みのみ）

	// 監査ログ設定
	AuditLogPath string `envconfig:"AUDIT_LOG_PATH"` // 空の場合は標準出力
}

// Load は環境変数から設定を読み込む。
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RedisAddr はValkey接続文字列を返す。
func (c *Config) RedisAddr() string {
	return valkey.JoinAddr(c.RedisHost, c.RedisPort)
}

func (c *Config) validate() error {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %q", c.LogLevel)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE: %q", c.GinMode)
	}
	return nil
}
