package apperr

import "fmt"

// ValidationError はバリデーションエラーを表す。
type ValidationError struct {
	Field   string // エラーが発生したフィールド名
	Message string // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field=%s, message=%s", e.Field, e.Message)
}

// NewValidationError はValidationErrorを生成する。
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// InvariantError は生成値が参照オブジェクトと矛盾していることを表す。
type InvariantError struct {
	Type   string // 識別子種別（IMSI, ICCID等）
	Value  string // 検証に失敗した値
	Reason string // 失敗理由
}

// Error はerrorインターフェースを実装する。
func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation: type=%s, value=%s, reason=%s",
		e.Type, e.Value, e.Reason)
}

// Unwrap はErrInvariantViolationを返す。
func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}

// NewInvariantError はInvariantErrorを生成する。
func NewInvariantError(typ, value, reason string) *InvariantError {
	return &InvariantError{
		Type:   typ,
		Value:  value,
		Reason: reason,
	}
}

// LookupError は参照テーブルの検索失敗を表す。
type LookupError struct {
	Table string // 検索対象テーブル（carriers, presets等）
	Query string // 検索条件
	Cause error  // 根本原因
}

// Error はerrorインターフェースを実装する。
func (e *LookupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lookup error: table=%s, query=%s, cause=%v",
			e.Table, e.Query, e.Cause)
	}
	return fmt.Sprintf("lookup error: table=%s, query=%s", e.Table, e.Query)
}

// Unwrap は根本原因を返す。
func (e *LookupError) Unwrap() error {
	return e.Cause
}

// NewLookupError はLookupErrorを生成する。
func NewLookupError(table, query string, cause error) *LookupError {
	return &LookupError{
		Table: table,
		Query: query,
		Cause: cause,
	}
}

// ValkeyError はValkeyとの操作エラーを表す。
type ValkeyError struct {
	Operation string // 操作名（GET, SET, DEL等）
	Key       string // 操作対象のキー
	Cause     error  // 根本原因
}

// Error はerrorインターフェースを実装する。
func (e *ValkeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("valkey error: operation=%s, key=%s, cause=%v",
			e.Operation, e.Key, e.Cause)
	}
	return fmt.Sprintf("valkey error: operation=%s, key=%s", e.Operation, e.Key)
}

// Unwrap は根本原因を返す。
func (e *ValkeyError) Unwrap() error {
	return e.Cause
}

// NewValkeyError はValkeyErrorを生成する。
func NewValkeyError(operation, key string, cause error) *ValkeyError {
	return &ValkeyError{
		Operation: operation,
		Key:       key,
		Cause:     cause,
	}
}
