package model

import "maps"

// GroupState は相関グループの整合状態を表す定数。
type GroupState string

const (
	// GroupSynced は全フィールドが参照オブジェクトから導出され整合している状態
	GroupSynced GroupState = "synced"
	// GroupDirty は未生成または再生成途中で整合が保証されない状態
	GroupDirty GroupState = "dirty"
)

// Anchors は相関グループごとの参照オブジェクトのキーを保持する。
type Anchors struct {
	CarrierMCCMNC string `json:"carrier_mccmnc,omitempty" msgpack:"carrier_mccmnc"` // SIM_CARDの参照キャリア
	PresetID      string `json:"preset_id,omitempty" msgpack:"preset_id"`           // DEVICE_HARDWAREの参照プリセット
	CountryISO    string `json:"country_iso,omitempty" msgpack:"country_iso"`       // LOCATIONの参照国
}

// For はグループの参照キーを返す。
func (a Anchors) For(g CorrelationGroup) string {
	switch g {
	case GroupSIMCard:
		return a.CarrierMCCMNC
	case GroupDeviceHardware:
		return a.PresetID
	case GroupLocation:
		return a.CountryISO
	default:
		return ""
	}
}

// With はグループの参照キーを差し替えたコピーを返す。
func (a Anchors) With(g CorrelationGroup, key string) Anchors {
	switch g {
	case GroupSIMCard:
		a.CarrierMCCMNC = key
	case GroupDeviceHardware:
		a.PresetID = key
	case GroupLocation:
		a.CountryISO = key
	}
	return a
}

// Profile は1つの偽装プロファイル（識別子値ストア）を表す。
// 更新操作は常に新しい*Profileを返し、元のプロファイルは変更しない。
// Valkeyキー: profile:{ID}
type Profile struct {
	ID          string                          `json:"id"`           // プロファイル識別子
	Name        string                          `json:"name"`         // 表示名
	Identifiers map[SpoofType]DeviceIdentifier  `json:"identifiers"`  // 識別子種別ごとの値
	Anchors     Anchors                         `json:"anchors"`      // 相関グループの参照キー
	GroupStates map[CorrelationGroup]GroupState `json:"group_states"` // 相関グループの整合状態
	CreatedAt   int64                           `json:"created_at"`   // 作成時刻（Unixミリ秒）
	UpdatedAt   int64                           `json:"updated_at"`   // 更新時刻（Unixミリ秒）
}

// NewProfile は全識別子が未設定・無効の新しいProfileを生成する。
func NewProfile(id, name string) *Profile {
	now := nowMillis()
	p := &Profile{
		ID:          id,
		Name:        name,
		Identifiers: make(map[SpoofType]DeviceIdentifier, len(allSpoofTypes)),
		GroupStates: make(map[CorrelationGroup]GroupState, len(allGroups)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, t := range allSpoofTypes {
		p.Identifiers[t] = NewDefaultIdentifier(t)
	}
	for _, g := range allGroups {
		if g.IsCorrelated() {
			p.GroupStates[g] = GroupDirty
		}
	}
	return p
}

// Clone はマップを含めて複製したProfileを返す。
func (p *Profile) Clone() *Profile {
	c := *p
	c.Identifiers = maps.Clone(p.Identifiers)
	c.GroupStates = maps.Clone(p.GroupStates)
	if c.Identifiers == nil {
		c.Identifiers = make(map[SpoofType]DeviceIdentifier)
	}
	if c.GroupStates == nil {
		c.GroupStates = make(map[CorrelationGroup]GroupState)
	}
	return &c
}

// Identifier は識別子を返す。存在しない場合は未設定の識別子を返す。
func (p *Profile) Identifier(t SpoofType) DeviceIdentifier {
	if d, ok := p.Identifiers[t]; ok {
		return d
	}
	return NewDefaultIdentifier(t)
}

// Value は有効かつ値が設定されている場合に値を返す。
// フック層から参照される取得口。
func (p *Profile) Value(t SpoofType) (string, bool) {
	d, ok := p.Identifiers[t]
	if !ok || !d.Enabled || d.Value == nil {
		return "", false
	}
	return *d.Value, true
}

// RawValue は有効フラグに関わらず値を返す。
func (p *Profile) RawValue(t SpoofType) (string, bool) {
	d, ok := p.Identifiers[t]
	if !ok || d.Value == nil {
		return "", false
	}
	return *d.Value, true
}

// EnabledValues は有効な識別子の値を返す。
func (p *Profile) EnabledValues() map[SpoofType]string {
	out := make(map[SpoofType]string)
	for t := range p.Identifiers {
		if v, ok := p.Value(t); ok {
			out[t] = v
		}
	}
	return out
}

// GroupState はグループの整合状態を返す。独立グループは常にGroupSynced。
func (p *Profile) GroupState(g CorrelationGroup) GroupState {
	if !g.IsCorrelated() {
		return GroupSynced
	}
	if s, ok := p.GroupStates[g]; ok {
		return s
	}
	return GroupDirty
}

// WithValues は複数の値を一括で差し替えたコピーを返す。有効フラグは維持される。
func (p *Profile) WithValues(values map[SpoofType]string) *Profile {
	c := p.Clone()
	for t, v := range values {
		c.Identifiers[t] = c.Identifier(t).WithValue(v)
	}
	c.UpdatedAt = nowMillis()
	return c
}

// WithEnabled は識別子の有効フラグを差し替えたコピーを返す。
func (p *Profile) WithEnabled(t SpoofType, enabled bool) *Profile {
	c := p.Clone()
	c.Identifiers[t] = c.Identifier(t).WithEnabled(enabled)
	c.UpdatedAt = nowMillis()
	return c
}

// WithGroup はグループの値・参照キー・整合状態を一括で差し替えたコピーを返す。
func (p *Profile) WithGroup(g CorrelationGroup, anchor string, values map[SpoofType]string, state GroupState) *Profile {
	c := p.WithValues(values)
	c.Anchors = c.Anchors.With(g, anchor)
	if g.IsCorrelated() {
		c.GroupStates[g] = state
	}
	return c
}
