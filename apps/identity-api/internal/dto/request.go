// Package dto はリクエスト・レスポンスのデータ転送オブジェクトを定義する。
package dto

// ReferenceQuery は生成系APIのクエリパラメータを表す。
// いずれも省略可能で、省略されたグループの参照オブジェクトはランダムに選ばれる。
type ReferenceQuery struct {
	Carrier      string `form:"carrier"`      // MCC/MNC
	Preset       string `form:"preset"`       // 端末プリセットID
	Country      string `form:"country"`      // ISO 3166-1 alpha-2
	Manufacturer string `form:"manufacturer"` // メーカー名（不正な値は無視される）
}

// CarrierQuery はキャリア一覧APIのクエリパラメータを表す。
type CarrierQuery struct {
	Country string `form:"country"`
	Name    string `form:"name"`
}

// ReferenceRequest はグループ再生成時に指定する参照オブジェクトを表す。
type ReferenceRequest struct {
	Carrier string `json:"carrier,omitempty"`
	Preset  string `json:"preset,omitempty"`
	Country string `json:"country,omitempty"`
}

// IsEmpty は参照キーが1つも指定されていないかを返す。
func (r *ReferenceRequest) IsEmpty() bool {
	return r == nil || (r.Carrier == "" && r.Preset == "" && r.Country == "")
}

// CreateProfileRequest はプロファイル作成リクエストを表す。
// IDを省略した場合はUUIDが採番される。
type CreateProfileRequest struct {
	ID        string            `json:"id,omitempty"`
	Name      string            `json:"name" binding:"required"`
	Reference *ReferenceRequest `json:"reference,omitempty"`
}

// EnabledRequest は識別子の有効フラグ変更リクエストを表す。
type EnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
