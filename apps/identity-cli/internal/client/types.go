package client

import "net/url"

// Reference は相関グループの参照キーを表す。
// 空のフィールドは指定なしとして扱われる。
type Reference struct {
	Carrier      string `json:"carrier,omitempty"` // MCC/MNC
	Preset       string `json:"preset,omitempty"`  // 端末プリセットID
	Country      string `json:"country,omitempty"` // 国ISOコード
	Manufacturer string `json:"-"`                 // 生成時のメーカー絞り込み（クエリのみ）
}

// IsEmpty は参照キーが1つも指定されていないかを返す。
func (r *Reference) IsEmpty() bool {
	return r == nil || (r.Carrier == "" && r.Preset == "" && r.Country == "" && r.Manufacturer == "")
}

func (r *Reference) query() url.Values {
	if r.IsEmpty() {
		return nil
	}
	q := url.Values{}
	for key, value := range map[string]string{
		"carrier":      r.Carrier,
		"preset":       r.Preset,
		"country":      r.Country,
		"manufacturer": r.Manufacturer,
	} {
		if value != "" {
			q.Set(key, value)
		}
	}
	return q
}

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

// CreateProfileRequest はプロファイル作成リクエストを表す。
type CreateProfileRequest struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	Reference *Reference `json:"reference,omitempty"`
}

// Identifier はプロファイル内の識別子を表す。
type Identifier struct {
	Type    string  `json:"type"`
	Group   string  `json:"group"`
	Value   *string `json:"value"`
	Enabled bool    `json:"enabled"`
}

// Group は相関グループの状態を表す。
type Group struct {
	Group  string `json:"group"`
	Anchor string `json:"anchor,omitempty"`
	State  string `json:"state"`
	Synced bool   `json:"synced"`
}

// Profile はプロファイルの詳細を表す。
type Profile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Identifiers []Identifier `json:"identifiers"`
	Groups      []Group      `json:"groups"`
	CreatedAt   int64        `json:"created_at"`
	UpdatedAt   int64        `json:"updated_at"`
}

type profileListResponse struct {
	IDs []string `json:"ids"`
}

type valuesResponse struct {
	ID     string            `json:"id"`
	Values map[string]string `json:"values"`
}

type enabledRequest struct {
	Enabled bool `json:"enabled"`
}
