package usecase

import (
	"slices"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/dto"
	"github.com/astrixforge/Device-Masker-sub000/pkg/engine"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// IdentityUseCase は識別子生成と参照データ検索を実装する。
type IdentityUseCase struct {
	engine *engine.Engine
}

// NewIdentityUseCase は新しいIdentityUseCaseを生成する。
func NewIdentityUseCase(eng *engine.Engine) *IdentityUseCase {
	return &IdentityUseCase{engine: eng}
}

// Generate は識別子を1つ生成する。
func (u *IdentityUseCase) Generate(spoofType string, q *dto.ReferenceQuery) (*dto.GenerateResponse, error) {
	t, err := model.ParseSpoofType(spoofType)
	if err != nil {
		return nil, newProblem(err, "GENERATE_ERR", "invalid spoof type")
	}
	ref, err := u.reference(q)
	if err != nil {
		return nil, err
	}
	v, err := u.engine.Generate(t, ref)
	if err != nil {
		return nil, newProblem(err, "GENERATE_ERR", "identifier generation failed")
	}
	return &dto.GenerateResponse{Type: string(t), Group: string(t.Group()), Value: v}, nil
}

// GenerateBundle は相関グループ一式を生成する。
func (u *IdentityUseCase) GenerateBundle(group string, q *dto.ReferenceQuery) (*dto.BundleResponse, error) {
	g, err := model.ParseGroup(group)
	if err != nil {
		return nil, newProblem(err, "GENERATE_ERR", "invalid correlation group")
	}
	ref, err := u.reference(q)
	if err != nil {
		return nil, err
	}
	values, err := u.engine.GenerateBundle(g, ref)
	if err != nil {
		return nil, newProblem(err, "GENERATE_ERR", "bundle generation failed")
	}
	return &dto.BundleResponse{Group: string(g), Values: stringValues(values)}, nil
}

// Carriers はキャリア一覧を返す。国と名前の両方が指定された場合は両方に一致するものを返す。
func (u *IdentityUseCase) Carriers(q *dto.CarrierQuery) (*dto.CarrierListResponse, error) {
	reg := u.engine.Registry()
	var carriers []refdata.Carrier
	switch {
	case q != nil && q.Country != "":
		if _, err := reg.CountryByISO(q.Country); err != nil {
			return nil, newProblem(err, "LOOKUP_ERR", "country not found")
		}
		carriers = reg.CarriersByCountry(q.Country)
		if q.Name != "" {
			byName := reg.CarriersByName(q.Name)
			carriers = slices.DeleteFunc(carriers, func(c refdata.Carrier) bool {
				return !slices.ContainsFunc(byName, func(n refdata.Carrier) bool { return n.MCCMNC == c.MCCMNC })
			})
		}
	case q != nil && q.Name != "":
		carriers = reg.CarriersByName(q.Name)
	default:
		carriers = reg.Carriers()
	}

	resp := &dto.CarrierListResponse{Carriers: make([]dto.CarrierView, 0, len(carriers))}
	for _, c := range carriers {
		resp.Carriers = append(resp.Carriers, carrierView(c))
	}
	return resp, nil
}

// Carrier はMCC/MNCからキャリアを返す。
func (u *IdentityUseCase) Carrier(mccmnc string) (*dto.CarrierView, error) {
	c, err := u.engine.Registry().CarrierByMCCMNC(mccmnc)
	if err != nil {
		return nil, newProblem(err, "LOOKUP_ERR", "carrier not found")
	}
	v := carrierView(c)
	return &v, nil
}

// Country はISOコードから国を返す。位置情報の参照データがあればタイムゾーンとロケールも含める。
func (u *IdentityUseCase) Country(iso string) (*dto.CountryView, error) {
	reg := u.engine.Registry()
	c, err := reg.CountryByISO(iso)
	if err != nil {
		return nil, newProblem(err, "LOOKUP_ERR", "country not found")
	}
	v := &dto.CountryView{
		ISO:       c.ISO,
		Name:      c.Name,
		Emoji:     c.Emoji,
		PhoneCode: c.PhoneCode,
	}
	if loc, ok := reg.LocationFor(c.ISO); ok {
		v.Timezones = loc.Timezones
		v.Locales = loc.Locales
	}
	return v, nil
}

// Preset はIDから端末プリセットを返す。
func (u *IdentityUseCase) Preset(id string) (*dto.PresetView, error) {
	p, err := u.engine.Registry().PresetByID(id)
	if err != nil {
		return nil, newProblem(err, "LOOKUP_ERR", "preset not found")
	}
	return &dto.PresetView{
		ID:           p.ID,
		Name:         p.Name,
		Manufacturer: p.Manufacturer.String(),
		Brand:        p.Brand,
		Model:        p.Model,
		Device:       p.Device,
	}, nil
}

// reference はクエリパラメータから参照オブジェクトを解決する。
func (u *IdentityUseCase) reference(q *dto.ReferenceQuery) (*engine.Reference, error) {
	if q == nil {
		return &engine.Reference{}, nil
	}
	ref, err := engine.ResolveReference(u.engine.Registry(), q.Carrier, q.Preset, q.Country)
	if err != nil {
		return nil, newProblem(err, "REFERENCE_ERR", "reference lookup failed")
	}
	ref.Manufacturer = q.Manufacturer
	return ref, nil
}

func carrierView(c refdata.Carrier) dto.CarrierView {
	return dto.CarrierView{
		MCCMNC:      c.MCCMNC,
		MCC:         c.MCC(),
		MNC:         c.MNC(),
		Name:        c.DisplayName,
		CountryISO:  c.CountryISO,
		CountryCode: c.CountryCode,
	}
}

func stringValues(values map[model.SpoofType]string) map[string]string {
	out := make(map[string]string, len(values))
	for t, v := range values {
		out[string(t)] = v
	}
	return out
}
