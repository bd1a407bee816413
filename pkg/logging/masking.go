// Package logging はログ関連のユーティリティを提供する。
package logging

// MaskIMSI はIMSIをマスキングする。
// 先頭6桁（MCC+MNC） + マスク + 末尾1桁
// 例: 310260123456789 → 310260********9
// enabled=false の場合はマスキングせずにそのまま返す。
func MaskIMSI(imsi string, enabled bool) string {
	if !enabled {
		return imsi
	}
	return MaskPartial(imsi, 6, 1, '*')
}

// MaskIMEI はIMEIをマスキングする。
// 先頭8桁（TAC） + マスク + 末尾1桁（チェックディジット）
// 例: 353325101234563 → 35332510******3
func MaskIMEI(imei string, enabled bool) string {
	if !enabled {
		return imei
	}
	return MaskPartial(imei, 8, 1, '*')
}

// MaskICCID はICCIDをマスキングする。
// 先頭7桁（89 + 国コード + 発行者コード先頭） + マスク + 末尾1桁
func MaskICCID(iccid string, enabled bool) string {
	if !enabled {
		return iccid
	}
	return MaskPartial(iccid, 7, 1, '*')
}

// MaskPhone は電話番号をマスキングする。
// 例: +12125550123 → +121******23
func MaskPhone(phone string, enabled bool) string {
	if !enabled {
		return phone
	}
	return MaskPartial(phone, 4, 2, '*')
}

// MaskMAC はMACアドレスのNIC部分をマスキングする。
// OUI（先頭3オクテット）とコロンは保持する。
// 例: 3C:5A:B4:12:34:56 → 3C:5A:B4:**:**:**
func MaskMAC(mac string, enabled bool) string {
	if !enabled || len(mac) != 17 {
		return mac
	}
	b := []byte(mac)
	for i := 9; i < len(b); i++ {
		if b[i] != ':' {
			b[i] = '*'
		}
	}
	return string(b)
}

// MaskPartial は文字列の一部をマスキングする。
// keepPrefix: 先頭から保持する文字数
// keepSuffix: 末尾から保持する文字数
// maskChar: マスキングに使用する文字
func MaskPartial(s string, keepPrefix, keepSuffix int, maskChar rune) string {
	runes := []rune(s)
	length := len(runes)

	// 文字列が短すぎる場合はそのまま返す
	if length <= keepPrefix+keepSuffix {
		return s
	}

	result := make([]rune, length)
	copy(result, runes[:keepPrefix])
	for i := keepPrefix; i < length-keepSuffix; i++ {
		result[i] = maskChar
	}
	copy(result[length-keepSuffix:], runes[length-keepSuffix:])

	return string(result)
}

// Masker はマスキング設定を保持する構造体。
type Masker struct {
	enabled bool
}

// NewMasker は新しいMaskerを生成する。
func NewMasker(enabled bool) *Masker {
	return &Masker{enabled: enabled}
}

// IMSI はIMSIをマスキングする。
func (m *Masker) IMSI(imsi string) string {
	return MaskIMSI(imsi, m.enabled)
}

// IMEI はIMEIをマスキングする。
func (m *Masker) IMEI(imei string) string {
	return MaskIMEI(imei, m.enabled)
}

// ICCID はICCIDをマスキングする。
func (m *Masker) ICCID(iccid string) string {
	return MaskICCID(iccid, m.enabled)
}

// Phone は電話番号をマスキングする。
func (m *Masker) Phone(phone string) string {
	return MaskPhone(phone, m.enabled)
}

// MAC はMACアドレスをマスキングする。
func (m *Masker) MAC(mac string) string {
	return MaskMAC(mac, m.enabled)
}

// Identifier は識別子種別名に応じたマスキングを行う。
// 端末を特定しない値（タイムゾーン、ロケール等）はそのまま返す。
func (m *Masker) Identifier(kind, value string) string {
	if !m.enabled {
		return value
	}
	switch kind {
	case "IMSI":
		return m.IMSI(value)
	case "IMEI":
		return m.IMEI(value)
	case "ICCID":
		return m.ICCID(value)
	case "PHONE_NUMBER":
		return m.Phone(value)
	case "WIFI_MAC", "BLUETOOTH_MAC", "WIFI_BSSID":
		return m.MAC(value)
	case "SERIAL", "ANDROID_ID", "GSF_ID", "ADVERTISING_ID", "MEDIA_DRM_ID", "INSTANCE_ID":
		return MaskPartial(value, 4, 2, '*')
	case "LOCATION_LATITUDE", "LOCATION_LONGITUDE":
		return MaskPartial(value, 3, 0, '*')
	default:
		return value
	}
}

// IsEnabled はマスキングが有効かどうかを返す。
func (m *Masker) IsEnabled() bool {
	return m.enabled
}
