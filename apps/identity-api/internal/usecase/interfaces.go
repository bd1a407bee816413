// Package usecase は識別子生成とプロファイル管理のビジネスロジックを提供する。
package usecase

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=usecase

import (
	"context"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/dto"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
)

// ProfileRepository はプロファイル永続化のインターフェース。
type ProfileRepository interface {
	Get(ctx context.Context, id string) (*model.Profile, error)
	Exists(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, p *model.Profile) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}

// Locker はプロファイル単位の排他制御のインターフェース。
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// AuditLogger は監査ログ出力のインターフェース。
type AuditLogger interface {
	LogCreate(traceID, profileID string)
	LogDelete(traceID, profileID string)
	LogRegenerateField(traceID, profileID, spoofType, reference string)
	LogRegenerateGroup(traceID, profileID, group, reference string, explicit bool)
	LogEnable(traceID, profileID, spoofType string, enabled bool)
}

// IdentityUseCaseInterface は識別子生成と参照データ検索のユースケース。
type IdentityUseCaseInterface interface {
	Generate(spoofType string, q *dto.ReferenceQuery) (*dto.GenerateResponse, error)
	GenerateBundle(group string, q *dto.ReferenceQuery) (*dto.BundleResponse, error)
	Carriers(q *dto.CarrierQuery) (*dto.CarrierListResponse, error)
	Carrier(mccmnc string) (*dto.CarrierView, error)
	Country(iso string) (*dto.CountryView, error)
	Preset(id string) (*dto.PresetView, error)
}

// ProfileUseCaseInterface はプロファイル管理のユースケース。
type ProfileUseCaseInterface interface {
	Create(ctx context.Context, traceID string, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error)
	Get(ctx context.Context, id string) (*dto.ProfileResponse, error)
	List(ctx context.Context) (*dto.ProfileListResponse, error)
	Delete(ctx context.Context, traceID, id string) error
	RegenerateField(ctx context.Context, traceID, id, spoofType string) (*dto.ProfileResponse, error)
	RegenerateGroup(ctx context.Context, traceID, id, group string, ref *dto.ReferenceRequest) (*dto.ProfileResponse, error)
	SetEnabled(ctx context.Context, traceID, id, spoofType string, enabled bool) (*dto.ProfileResponse, error)
	Values(ctx context.Context, id string) (*dto.ValuesResponse, error)
}
