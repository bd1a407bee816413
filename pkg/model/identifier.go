package model

import "time"

// nowMillis は現在時刻（Unixミリ秒）を返す。テストで差し替える。
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// DeviceIdentifier は1つの偽装識別子の値と有効状態を表す。
// 値は不変で、更新は常に新しいコピーを返す。
type DeviceIdentifier struct {
	Type         SpoofType `json:"type" msgpack:"type"`                   // 識別子種別
	Value        *string   `json:"value" msgpack:"value"`                 // 値（nil = 未設定）
	Enabled      bool      `json:"enabled" msgpack:"enabled"`             // 有効フラグ
	LastModified int64     `json:"last_modified" msgpack:"last_modified"` // 最終更新時刻（Unixミリ秒）
}

// NewDefaultIdentifier は未設定・無効の識別子を生成する。
func NewDefaultIdentifier(t SpoofType) DeviceIdentifier {
	return DeviceIdentifier{
		Type:         t,
		Value:        nil,
		Enabled:      false,
		LastModified: nowMillis(),
	}
}

// WithValue は値を差し替えたコピーを返す。
func (d DeviceIdentifier) WithValue(v string) DeviceIdentifier {
	d.Value = &v
	d.LastModified = nowMillis()
	return d
}

// WithEnabled は有効フラグを差し替えたコピーを返す。
func (d DeviceIdentifier) WithEnabled(enabled bool) DeviceIdentifier {
	d.Enabled = enabled
	d.LastModified = nowMillis()
	return d
}

// HasValue は値が設定されているかを返す。
func (d DeviceIdentifier) HasValue() bool {
	return d.Value != nil
}

// ValueOr は値を返す。未設定の場合はdefを返す。
func (d DeviceIdentifier) ValueOr(def string) string {
	if d.Value == nil {
		return def
	}
	return *d.Value
}
