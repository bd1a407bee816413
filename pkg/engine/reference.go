package engine

import (
	"fmt"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// Reference は相関グループの参照オブジェクト。
// nilのフィールドは「指定なし」を表し、生成時はランダムに選ばれる。
type Reference struct {
	Carrier      *refdata.Carrier             // SIM_CARDの参照キャリア
	Preset       *refdata.DeviceProfilePreset // DEVICE_HARDWAREの参照プリセット
	Country      *refdata.Country             // LOCATIONの参照国（SIM_CARDではキャリアの絞り込みに使う）
	Manufacturer string                       // プリセット未指定時のメーカー絞り込み（不正な名前は無視）
}

// Has はグループの参照オブジェクトが指定されているかを返す。
// 独立グループは参照オブジェクトを持たないため常にtrueを返す。
func (r *Reference) Has(g model.CorrelationGroup) bool {
	if !g.IsCorrelated() {
		return true
	}
	if r == nil {
		return false
	}
	switch g {
	case model.GroupSIMCard:
		return r.Carrier != nil
	case model.GroupDeviceHardware:
		return r.Preset != nil
	case model.GroupLocation:
		return r.Country != nil
	default:
		return true
	}
}

func (r *Reference) carrier() *refdata.Carrier {
	if r == nil {
		return nil
	}
	return r.Carrier
}

func (r *Reference) preset() *refdata.DeviceProfilePreset {
	if r == nil {
		return nil
	}
	return r.Preset
}

func (r *Reference) country() *refdata.Country {
	if r == nil {
		return nil
	}
	return r.Country
}

func (r *Reference) manufacturer() refdata.Manufacturer {
	if r == nil {
		return refdata.ManufacturerUnknown
	}
	return refdata.ParseManufacturer(r.Manufacturer)
}

// ResolveReference はキー（MCC/MNC、プリセットID、国ISO）から参照オブジェクトを解決する。
// 空のキーは指定なしとして扱う。
func ResolveReference(reg *refdata.Registry, mccmnc, presetID, iso string) (*Reference, error) {
	ref := &Reference{}
	if mccmnc != "" {
		c, err := reg.CarrierByMCCMNC(mccmnc)
		if err != nil {
			return nil, err
		}
		ref.Carrier = &c
	}
	if presetID != "" {
		p, err := reg.PresetByID(presetID)
		if err != nil {
			return nil, err
		}
		ref.Preset = &p
	}
	if iso != "" {
		c, err := reg.CountryByISO(iso)
		if err != nil {
			return nil, err
		}
		ref.Country = &c
	}
	return ref, nil
}

// ReferenceFromProfile はプロファイルの参照キーから参照オブジェクトを解決する。
func (e *Engine) ReferenceFromProfile(p *model.Profile) (*Reference, error) {
	ref, err := ResolveReference(e.reg, p.Anchors.CarrierMCCMNC, p.Anchors.PresetID, p.Anchors.CountryISO)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", p.ID, err)
	}
	return ref, nil
}

func missingReference(t model.SpoofType) error {
	return fmt.Errorf("%w: type=%s, group=%s", apperr.ErrMissingReference, t, t.Group())
}
