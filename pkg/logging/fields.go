package logging

import "log/slog"

// ログフィールド名の定数
const (
	FieldTraceID    = "trace_id"
	FieldEventID    = "event_id"
	FieldError      = "error"
	FieldSrcIP      = "src_ip"
	FieldLatencyMs  = "latency_ms"
	FieldHTTPStatus = "http_status"
	FieldProfileID  = "profile_id"
	FieldSpoofType  = "spoof_type"
	FieldGroup      = "group"
	FieldValue      = "value"
	FieldMCCMNC     = "mccmnc"
	FieldPresetID   = "preset_id"
	FieldCountry    = "country"
)

// WithTraceID はトレースIDのslog.Attrを返す。
func WithTraceID(traceID string) slog.Attr {
	return slog.String(FieldTraceID, traceID)
}

// WithEventID はイベントIDのslog.Attrを返す。
func WithEventID(eventID string) slog.Attr {
	return slog.String(FieldEventID, eventID)
}

// WithError はエラーのslog.Attrを返す。
func WithError(err error) slog.Attr {
	if err == nil {
		return slog.String(FieldError, "")
	}
	return slog.String(FieldError, err.Error())
}

// WithSrcIP はソースIPアドレスのslog.Attrを返す。
func WithSrcIP(ip string) slog.Attr {
	return slog.String(FieldSrcIP, ip)
}

// WithLatency はレイテンシ（ミリ秒）のslog.Attrを返す。
func WithLatency(ms int64) slog.Attr {
	return slog.Int64(FieldLatencyMs, ms)
}

// WithHTTPStatus はHTTPステータスコードのslog.Attrを返す。
func WithHTTPStatus(status int) slog.Attr {
	return slog.Int(FieldHTTPStatus, status)
}

// WithProfileID はプロファイルIDのslog.Attrを返す。
func WithProfileID(id string) slog.Attr {
	return slog.String(FieldProfileID, id)
}

// WithSpoofType は識別子種別のslog.Attrを返す。
func WithSpoofType(t string) slog.Attr {
	return slog.String(FieldSpoofType, t)
}

// WithGroup は相関グループのslog.Attrを返す。
func WithGroup(g string) slog.Attr {
	return slog.String(FieldGroup, g)
}

// CommonFields はマスキング設定を保持するログフィールド生成器。
type CommonFields struct {
	masker *Masker
}

// NewCommonFields は新しいCommonFieldsを生成する。
func NewCommonFields(masker *Masker) *CommonFields {
	if masker == nil {
		masker = NewMasker(false)
	}
	return &CommonFields{masker: masker}
}

// WithValue はマスキングされた識別子値のslog.Attrを返す。
func (cf *CommonFields) WithValue(kind, value string) slog.Attr {
	return slog.String(FieldValue, cf.masker.Identifier(kind, value))
}

// RegenLogFields は再生成ログ用の共通フィールドを返す。
func (cf *CommonFields) RegenLogFields(traceID, eventID, profileID string) []any {
	return []any{
		WithTraceID(traceID),
		WithEventID(eventID),
		WithProfileID(profileID),
	}
}
