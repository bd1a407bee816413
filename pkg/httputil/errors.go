package httputil

import (
	"errors"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
)

// FromError はアプリケーションエラーを対応するProblemDetailに変換する。
// 未知のエラーは詳細を隠して500を返す。
func FromError(err error) *ProblemDetail {
	var validationErr *apperr.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return BadRequest(validationErr.Message)
	case errors.Is(err, apperr.ErrEmptyResultSet):
		return ConfigurationError(err.Error())
	case errors.Is(err, apperr.ErrProfileNotFound),
		errors.Is(err, apperr.ErrCarrierNotFound),
		errors.Is(err, apperr.ErrCountryNotFound),
		errors.Is(err, apperr.ErrPresetNotFound):
		return NotFound(err.Error())
	case errors.Is(err, apperr.ErrProfileExists):
		return Conflict(err.Error())
	case errors.Is(err, apperr.ErrInvalidRequest),
		errors.Is(err, apperr.ErrUnknownSpoofType),
		errors.Is(err, apperr.ErrUnknownGroup),
		errors.Is(err, apperr.ErrGroupMismatch),
		errors.Is(err, apperr.ErrMissingReference):
		return BadRequest(err.Error())
	case errors.Is(err, apperr.ErrValkeyConnection), errors.Is(err, apperr.ErrValkeyCommand):
		return ServiceUnavailable("Profile store is unavailable")
	case errors.Is(err, apperr.ErrInvariantViolation):
		return InternalServerError("Generated identifiers failed consistency check")
	default:
		return InternalServerError("An unexpected error occurred")
	}
}
