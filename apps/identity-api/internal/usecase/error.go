package usecase

import (
	"errors"
	"log/slog"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/httputil"
)

// ProblemError はビジネスロジックエラーを表す。
type ProblemError struct {
	Status  int
	Title   string
	Detail  string
	Message string // ログメッセージ
	EventID string
	Err     error // 原因エラー（定義済みエラーではnil）
}

// Error はerrorインターフェースを実装する。
func (e *ProblemError) Error() string {
	return e.Detail
}

// Unwrap は原因エラーを返す。
func (e *ProblemError) Unwrap() error {
	return e.Err
}

// ToProblemDetail はProblemDetailに変換する。
func (e *ProblemError) ToProblemDetail() *httputil.ProblemDetail {
	return httputil.NewProblemDetail(e.Status, e.Title, e.Detail)
}

// LogLevel はログレベルを返す。
func (e *ProblemError) LogLevel() slog.Level {
	switch {
	case e.Status >= 500:
		return slog.LevelError
	case e.Status == 404:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// 定義済みエラー
var (
	ErrInvalidRequestBody = &ProblemError{
		Status:  400,
		Title:   "Bad Request",
		Detail:  "Invalid request body",
		Message: "invalid request body",
		EventID: "REQUEST_ERR",
	}

	ErrProfileBusy = &ProblemError{
		Status:  409,
		Title:   "Conflict",
		Detail:  "Profile is being modified by another request",
		Message: "profile lock timeout",
		EventID: "PROFILE_LOCK_ERR",
	}
)

// newProblem は原因エラーをProblemErrorに変換する。
// 既にProblemErrorの場合はそのまま返す。
func newProblem(err error, eventID, message string) *ProblemError {
	var pe *ProblemError
	if errors.As(err, &pe) {
		return pe
	}
	pd := httputil.FromError(err)
	return &ProblemError{
		Status:  pd.Status,
		Title:   pd.Title,
		Detail:  pd.Detail,
		Message: message,
		EventID: eventIDFor(err, eventID),
		Err:     err,
	}
}

// eventIDFor はインフラ・設定起因のエラーに固有のイベントIDを割り当てる。
func eventIDFor(err error, def string) string {
	switch {
	case errors.Is(err, apperr.ErrEmptyResultSet):
		return "CONFIG_ERR"
	case errors.Is(err, apperr.ErrValkeyConnection):
		return "VALKEY_CONN_ERR"
	case errors.Is(err, apperr.ErrValkeyCommand):
		return "VALKEY_CMD_ERR"
	case errors.Is(err, apperr.ErrInvariantViolation):
		return "INVARIANT_ERR"
	default:
		return def
	}
}
