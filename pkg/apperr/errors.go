// Package apperr は共通エラー定義を提供する。
package apperr

import "errors"

// 参照データ関連エラー
var (
	// ErrEmptyResultSet は参照テーブルの絞り込み結果が空の場合のエラー
	ErrEmptyResultSet = errors.New("empty result set")
	// ErrCarrierNotFound はMCC/MNCに一致するキャリアが存在しない場合のエラー
	ErrCarrierNotFound = errors.New("carrier not found")
	// ErrCountryNotFound は国コードに一致する国が存在しない場合のエラー
	ErrCountryNotFound = errors.New("country not found")
	// ErrPresetNotFound はIDに一致するデバイスプリセットが存在しない場合のエラー
	ErrPresetNotFound = errors.New("device preset not found")
)

// 生成・再生成関連エラー
var (
	// ErrInvariantViolation は生成結果が相関不変条件を満たさない場合のエラー
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrMissingReference は文脈保持の再生成に参照オブジェクトがない場合のエラー
	ErrMissingReference = errors.New("missing reference object")
	// ErrUnknownSpoofType は未定義の識別子種別エラー
	ErrUnknownSpoofType = errors.New("unknown spoof type")
	// ErrUnknownGroup は未定義の相関グループエラー
	ErrUnknownGroup = errors.New("unknown correlation group")
	// ErrGroupMismatch は識別子種別と相関グループが一致しない場合のエラー
	ErrGroupMismatch = errors.New("spoof type does not belong to group")
)

// プロファイル関連エラー
var (
	// ErrProfileNotFound はプロファイルが見つからない場合のエラー
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists はプロファイルIDが重複している場合のエラー
	ErrProfileExists = errors.New("profile already exists")
)

// インフラ関連エラー
var (
	// ErrValkeyConnection はValkey接続エラー
	ErrValkeyConnection = errors.New("valkey connection error")
	// ErrValkeyCommand はValkeyコマンド実行エラー
	ErrValkeyCommand = errors.New("valkey command error")
	// ErrIdentityAPI はIdentity APIの呼び出しエラー
	ErrIdentityAPI = errors.New("identity API error")
)

// バリデーション関連エラー
var (
	// ErrInvalidRequest は不正なリクエストエラー
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidIMSI は不正なIMSI形式エラー
	ErrInvalidIMSI = errors.New("invalid IMSI format")
	// ErrInvalidIMEI は不正なIMEI形式エラー
	ErrInvalidIMEI = errors.New("invalid IMEI format")
	// ErrInvalidICCID は不正なICCID形式エラー
	ErrInvalidICCID = errors.New("invalid ICCID format")
)
