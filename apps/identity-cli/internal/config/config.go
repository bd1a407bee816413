// Package config は環境変数からCLIの設定を読み込む。
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config はIdentity CLIの設定を保持する。
type Config struct {
	// Identity API設定
	APIURL string `envconfig:"IDENTITY_API_URL" default:"http://localhost:8080"`

	// ログ設定
	LogLevel           string `envconfig:"LOG_LEVEL" default:"WARN"`
	LogMaskIdentifiers bool   `envconfig:"LOG_MASK_IDENTIFIERS" default:"true"`

	// 参照データ設定
	RefDataPath string `envconfig:"REFDATA_PATH"` // 組み込み参照データに重ねるYAMLファイル

	// エクスポート設定
	ExportWorkers int     `envconfig:"EXPORT_WORKERS" default:"4"` // リモート取得の同時実行数
	ExportRate    float64 `envconfig:"EXPORT_RATE" default:"20"`   // リモート取得の秒間リクエスト数（0なら無制限）
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

func (c *Config) validate() error {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %q", c.LogLevel)
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid IDENTITY_API_URL: %q", c.APIURL)
	}
	if c.ExportWorkers < 1 {
		return fmt.Errorf("invalid EXPORT_WORKERS: %d", c.ExportWorkers)
	}
	if c.ExportRate < 0 {
		return fmt.Errorf("invalid EXPORT_RATE: %v", c.ExportRate)
	}
	return nil
}
