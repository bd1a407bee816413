package store

import "github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/config"

// ProfileKey はプロファイルハッシュのキーを返す。
func ProfileKey(id string) string {
	return config.KeyPrefixProfile + id
}
