// Package refdata は識別子生成に用いる参照データ（キャリア、国、位置情報、
// 端末プリセット、TAC・OUIプール）と、その索引付き検索を提供する。
package refdata

import "strings"

// Carrier はモバイルキャリアを表す。
type Carrier struct {
	MCCMNC          string `json:"mccmnc" yaml:"mccmnc"`
	CountryISO      string `json:"country_iso" yaml:"country_iso"`
	CountryCode     string `json:"country_code" yaml:"country_code"`
	ICCIDIssuerCode string `json:"iccid_issuer_code" yaml:"iccid_issuer_code"`
	DisplayName     string `json:"display_name" yaml:"display_name"`
}

// MCC はモバイル国コード（先頭3桁）を返す。
func (c Carrier) MCC() string {
	if len(c.MCCMNC) < 3 {
		return c.MCCMNC
	}
	return c.MCCMNC[:3]
}

// MNC はモバイルネットワークコード（2桁または3桁）を返す。
func (c Carrier) MNC() string {
	if len(c.MCCMNC) < 3 {
		return ""
	}
	return c.MCCMNC[3:]
}

// ICCIDCountryCode はICCIDの国コード欄（2桁）を返す。
// 1桁の国番号は先頭を0埋めし、3桁の国番号は先頭2桁を用いる。
func (c Carrier) ICCIDCountryCode() string {
	switch len(c.CountryCode) {
	case 0:
		return "00"
	case 1:
		return "0" + c.CountryCode
	default:
		return c.CountryCode[:2]
	}
}

// Country は国を表す。
type Country struct {
	ISO       string `json:"iso" yaml:"iso"`
	Name      string `json:"name" yaml:"name"`
	Emoji     string `json:"emoji" yaml:"emoji"`
	PhoneCode string `json:"phone_code" yaml:"phone_code"`
}

// Region は緯度経度の矩形領域を表す。
type Region struct {
	Name   string  `json:"name" yaml:"name"`
	MinLat float64 `json:"min_lat" yaml:"min_lat"`
	MaxLat float64 `json:"max_lat" yaml:"max_lat"`
	MinLon float64 `json:"min_lon" yaml:"min_lon"`
	MaxLon float64 `json:"max_lon" yaml:"max_lon"`
}

// Contains は座標が矩形内（境界含む）にあるかを返す。
func (r Region) Contains(lat, lon float64) bool {
	return lat >= r.MinLat && lat <= r.MaxLat && lon >= r.MinLon && lon <= r.MaxLon
}

// GlobalRegion は地球全体の有効範囲。
var GlobalRegion = Region{Name: "global", MinLat: -90, MaxLat: 90, MinLon: -180, MaxLon: 180}

// LocationData は国ごとの位置情報参照データ。
type LocationData struct {
	CountryISO string   `json:"country_iso" yaml:"country_iso"`
	Regions    []Region `json:"regions" yaml:"regions"`
	Timezones  []string `json:"timezones" yaml:"timezones"`
	Locales    []string `json:"locales" yaml:"locales"`
}

// DeviceProfilePreset は端末プリセットを表す。
type DeviceProfilePreset struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Manufacturer Manufacturer `json:"manufacturer" yaml:"manufacturer"`
	Brand        string       `json:"brand" yaml:"brand"`
	Model        string       `json:"model" yaml:"model"`
	Device       string       `json:"device" yaml:"device"`
	TACPrefixes  []string     `json:"tac_prefixes" yaml:"tac_prefixes"`
	OUIHints     []string     `json:"oui_hints" yaml:"oui_hints"`
}

// RouterVendor はWi-Fiアクセスポイントのベンダー情報。
type RouterVendor struct {
	Name          string   `json:"name" yaml:"name"`
	OUIs          []string `json:"ouis" yaml:"ouis"`
	SSIDTemplates []string `json:"ssid_templates" yaml:"ssid_templates"`
}

// Data は参照テーブル一式。Registryの構築元となる。
type Data struct {
	Countries       []Country
	Locations       []LocationData
	Carriers        []Carrier
	Presets         []DeviceProfilePreset
	TACs            map[Manufacturer][]string
	OUIs            map[Manufacturer][]string
	SerialTemplates map[Manufacturer][]string
	Routers         []RouterVendor
}

// FlagEmoji はISO 3166-1 alpha-2コードから国旗絵文字を返す。
func FlagEmoji(iso string) string {
	iso = strings.ToUpper(iso)
	if len(iso) != 2 || iso[0] < 'A' || iso[0] > 'Z' || iso[1] < 'A' || iso[1] > 'Z' {
		return ""
	}
	const base = 0x1F1E6
	return string([]rune{rune(base + int(iso[0]-'A')), rune(base + int(iso[1]-'A'))})
}
