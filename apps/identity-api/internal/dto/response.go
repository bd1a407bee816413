package dto

// GenerateResponse は単一識別子の生成結果を表す。
type GenerateResponse struct {
	Type  string `json:"type"`
	Group string `json:"group"`
	Value string `json:"value"`
}

// BundleResponse は相関グループ一式の生成結果を表す。
type BundleResponse struct {
	Group  string            `json:"group"`
	Values map[string]string `json:"values"`
}

// IdentifierView はプロファイル内の識別子を表す。
type IdentifierView struct {
	Type    string  `json:"type"`
	Group   string  `json:"group"`
	Value   *string `json:"value"`
	Enabled bool    `json:"enabled"`
}

// GroupView は相関グループの状態を表す。
// Syncedは保存状態がsyncedであり、かつ値が参照オブジェクトと整合している場合にtrue。
type GroupView struct {
	Group  string `json:"group"`
	Anchor string `json:"anchor,omitempty"`
	State  string `json:"state"`
	Synced bool   `json:"synced"`
}

// ProfileResponse はプロファイルの詳細を表す。
type ProfileResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Identifiers []IdentifierView `json:"identifiers"`
	Groups      []GroupView      `json:"groups"`
	CreatedAt   int64            `json:"created_at"`
	UpdatedAt   int64            `json:"updated_at"`
}

// ProfileListResponse はプロファイルID一覧を表す。
type ProfileListResponse struct {
	IDs []string `json:"ids"`
}

// ValuesResponse は有効な識別子の値のみを返すフック向けビュー。
type ValuesResponse struct {
	ID     string            `json:"id"`
	Values map[string]string `json:"values"`
}

// CarrierView はキャリア参照データを表す。
type CarrierView struct {
	MCCMNC      string `json:"mccmnc"`
	MCC         string `json:"mcc"`
	MNC         string `json:"mnc"`
	Name        string `json:"name"`
	CountryISO  string `json:"country_iso"`
	CountryCode string `json:"country_code"`
}

// CarrierListResponse はキャリア一覧を表す。
type CarrierListResponse struct {
	Carriers []CarrierView `json:"carriers"`
}

// CountryView は国参照データを表す。
type CountryView struct {
	ISO       string   `json:"iso"`
	Name      string   `json:"name"`
	Emoji     string   `json:"emoji"`
	PhoneCode string   `json:"phone_code"`
	Timezones []string `json:"timezones,omitempty"`
	Locales   []string `json:"locales,omitempty"`
}

// PresetView は端末プリセットを表す。
type PresetView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Device       string `json:"device"`
}

// HealthResponse はヘルスチェックレスポンスを表す。
type HealthResponse struct {
	Status string `json:"status"`
	Valkey string `json:"valkey"`
}
