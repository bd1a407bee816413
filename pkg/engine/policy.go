package engine

import (
	"fmt"
	"strconv"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/profile"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// プロファイルに対する再生成ポリシー。
// どの操作も入力のプロファイルを変更せず、全フィールドを検証してから新しいプロファイルとして確定する。
// 同一プロファイルへの更新の直列化は呼び出し側の責務。

// NewProfile は全相関グループと独立識別子を生成済みの新しいプロファイルを返す。
// 全識別子は無効の状態で作成される。
func (e *Engine) NewProfile(id, name string) (*model.Profile, error) {
	p := model.NewProfile(id, name)
	for _, g := range model.AllGroups() {
		next, err := e.RegenerateGroup(p, g)
		if err != nil {
			return nil, err
		}
		p = next
	}
	return p, nil
}

// RegenerateIndependent は相関グループに属さない識別子を1つだけ再生成する。
func (e *Engine) RegenerateIndependent(p *model.Profile, t model.SpoofType) (*model.Profile, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %s", apperr.ErrUnknownSpoofType, t)
	}
	if t.IsCorrelated() {
		return nil, fmt.Errorf("%w: %s belongs to %s", apperr.ErrGroupMismatch, t, t.Group())
	}
	return p.WithValues(map[model.SpoofType]string{t: e.independent(t)}), nil
}

// RegenerateField は参照オブジェクトを保ったまま1フィールドだけを再生成する。
// 独立識別子はRegenerateIndependentと同じ。参照オブジェクトから決まる種別（キャリア名、
// DEVICE_PROFILEなど）と、参照キーがない、または整合していないグループはグループ全体を再生成する。
func (e *Engine) RegenerateField(p *model.Profile, t model.SpoofType) (*model.Profile, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %s", apperr.ErrUnknownSpoofType, t)
	}
	g := t.Group()
	if !g.IsCorrelated() {
		return e.RegenerateIndependent(p, t)
	}
	if t.IsReferenceDerived() || p.Anchors.For(g) == "" || p.GroupState(g) != model.GroupSynced {
		return e.RegenerateGroup(p, g)
	}

	ref, err := e.ReferenceFromProfile(p)
	if err != nil {
		return nil, err
	}

	var current *profile.LocationBundle
	if g == model.GroupLocation {
		b, err := e.locationFromProfile(p, *ref.Country)
		if err != nil {
			return nil, err
		}
		current = &b
		if t == model.TypeLocationLatitude || t == model.TypeLocationLongitude {
			loc, _ := e.reg.LocationFor(ref.Country.ISO)
			if !containsPoint(loc, b.Latitude, b.Longitude) {
				return e.ChangeReference(p, g, ref)
			}
		}
	}

	v, err := e.regenerateField(t, ref, current)
	if err != nil {
		return nil, err
	}
	next := p.WithValues(map[model.SpoofType]string{t: v})
	if err := e.VerifyGroup(next, g); err != nil {
		return nil, err
	}
	return next, nil
}

// RegenerateGroup は新しい参照オブジェクトをランダムに選び、グループ全体を再生成する。
func (e *Engine) RegenerateGroup(p *model.Profile, g model.CorrelationGroup) (*model.Profile, error) {
	return e.ChangeReference(p, g, nil)
}

// ChangeReference は指定された参照オブジェクトに基づいてグループ全体を再生成する。
// 全フィールドと参照キーは1回のコピーで確定し、途中の状態は外部に見えない。
func (e *Engine) ChangeReference(p *model.Profile, g model.CorrelationGroup, ref *Reference) (*model.Profile, error) {
	b, err := e.build(g, ref)
	if err != nil {
		return nil, err
	}
	return p.WithGroup(g, b.Anchor(), b.Values(), model.GroupSynced), nil
}

// VerifyGroup はグループの全フィールドが参照キーの参照オブジェクトと整合しているかを検証する。
// 不整合の場合はErrInvariantViolationを返す。
func (e *Engine) VerifyGroup(p *model.Profile, g model.CorrelationGroup) error {
	if !g.IsCorrelated() {
		return nil
	}
	ref, err := e.ReferenceFromProfile(p)
	if err != nil {
		return apperr.NewInvariantError(string(g), p.Anchors.For(g), err.Error())
	}

	var b bundle
	switch g {
	case model.GroupSIMCard:
		if ref.Carrier == nil {
			return apperr.NewInvariantError(string(g), "", "no reference carrier")
		}
		b = profile.SIMBundle{
			Carrier:           *ref.Carrier,
			IMSI:              raw(p, model.TypeIMSI),
			ICCID:             raw(p, model.TypeICCID),
			PhoneNumber:       raw(p, model.TypePhoneNumber),
			SIMCountryISO:     raw(p, model.TypeSIMCountryISO),
			NetworkCountryISO: raw(p, model.TypeNetworkCountryISO),
			SIMOperatorName:   raw(p, model.TypeSIMOperatorName),
			NetworkOperator:   raw(p, model.TypeNetworkOperator),
		}
	case model.GroupDeviceHardware:
		if ref.Preset == nil {
			return apperr.NewInvariantError(string(g), "", "no reference preset")
		}
		b = profile.HardwareBundle{
			Preset:       *ref.Preset,
			IMEI:         raw(p, model.TypeIMEI),
			Serial:       raw(p, model.TypeSerial),
			WifiMAC:      raw(p, model.TypeWifiMAC),
			BluetoothMAC: raw(p, model.TypeBluetoothMAC),
		}
	case model.GroupLocation:
		var country refdata.Country
		if ref.Country != nil {
			country = *ref.Country
		}
		lb, err := e.locationFromProfile(p, country)
		if err != nil {
			return err
		}
		b = lb
	}

	if err := b.Validate(e.reg); err != nil {
		return err
	}
	for t, want := range b.Values() {
		if got := raw(p, t); got != want {
			return apperr.NewInvariantError(string(t), got, "must equal "+want)
		}
	}
	return nil
}

// locationFromProfile はプロファイルの値から位置情報バンドルを復元する。
func (e *Engine) locationFromProfile(p *model.Profile, country refdata.Country) (profile.LocationBundle, error) {
	lat, err := strconv.ParseFloat(raw(p, model.TypeLocationLatitude), 64)
	if err != nil {
		return profile.LocationBundle{}, apperr.NewInvariantError(string(model.TypeLocationLatitude),
			raw(p, model.TypeLocationLatitude), "not a decimal coordinate")
	}
	lon, err := strconv.ParseFloat(raw(p, model.TypeLocationLongitude), 64)
	if err != nil {
		return profile.LocationBundle{}, apperr.NewInvariantError(string(model.TypeLocationLongitude),
			raw(p, model.TypeLocationLongitude), "not a decimal coordinate")
	}
	return profile.LocationBundle{
		CountryISO: country.ISO,
		Timezone:   raw(p, model.TypeTimezone),
		Locale:     raw(p, model.TypeLocale),
		Latitude:   lat,
		Longitude:  lon,
	}, nil
}

func containsPoint(loc refdata.LocationData, lat, lon float64) bool {
	if len(loc.Regions) == 0 {
		return refdata.GlobalRegion.Contains(lat, lon)
	}
	for _, r := range loc.Regions {
		if r.Contains(lat, lon) {
			return true
		}
	}
	return false
}

func raw(p *model.Profile, t model.SpoofType) string {
	v, _ := p.RawValue(t)
	return v
}
