package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/httputil"
)

// センチネルエラー
var (
	// ErrCircuitOpen はCircuit BreakerがOpen状態の場合のエラー
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrInvalidResponse はIdentity APIからのレスポンスが不正な場合のエラー
	ErrInvalidResponse = errors.New("invalid response from identity api")
)

// APIError はIdentity APIが返したエラーレスポンスを表す。
// errors.Is(err, apperr.ErrIdentityAPI)で判定できる。
type APIError struct {
	StatusCode int
	Message    string
	Details    *httputil.ProblemDetail
}

func (e *APIError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("identity api error: %d %s - %s", e.StatusCode, e.Details.Title, e.Details.Detail)
	}
	return fmt.Sprintf("identity api error: %d %s", e.StatusCode, e.Message)
}

// Unwrap はErrIdentityAPIを返す。
func (e *APIError) Unwrap() error {
	return apperr.ErrIdentityAPI
}

// IsNotFound はリソース未登録エラーかどうかを判定する
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsConflict は同時更新による競合エラーかどうかを判定する
func (e *APIError) IsConflict() bool {
	return e.StatusCode == http.StatusConflict
}

// IsServerError はサーバーエラーかどうかを判定する
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// ConnectionError は接続エラーを表す
type ConnectionError struct {
	Cause error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}
