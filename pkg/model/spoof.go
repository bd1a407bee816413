// Package model は識別子・相関グループ・プロファイルのデータモデルを提供する。
package model

import (
	"fmt"
	"strings"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
)

// SpoofType は偽装対象の識別子種別を表す定数。
type SpoofType string

const (
	// SIMカード
	TypeIMSI              SpoofType = "IMSI"
	TypeICCID             SpoofType = "ICCID"
	TypePhoneNumber       SpoofType = "PHONE_NUMBER"
	TypeCarrierName       SpoofType = "CARRIER_NAME"
	TypeCarrierMCCMNC     SpoofType = "CARRIER_MCC_MNC"
	TypeSIMCountryISO     SpoofType = "SIM_COUNTRY_ISO"
	TypeNetworkCountryISO SpoofType = "NETWORK_COUNTRY_ISO"
	TypeSIMOperatorName   SpoofType = "SIM_OPERATOR_NAME"
	TypeNetworkOperator   SpoofType = "NETWORK_OPERATOR"

	// 端末ハードウェア
	TypeDeviceProfile SpoofType = "DEVICE_PROFILE"
	TypeIMEI          SpoofType = "IMEI"
	TypeSerial        SpoofType = "SERIAL"
	TypeWifiMAC       SpoofType = "WIFI_MAC"
	TypeBluetoothMAC  SpoofType = "BLUETOOTH_MAC"

	// 位置情報
	TypeTimezone          SpoofType = "TIMEZONE"
	TypeLocale            SpoofType = "LOCALE"
	TypeLocationLatitude  SpoofType = "LOCATION_LATITUDE"
	TypeLocationLongitude SpoofType = "LOCATION_LONGITUDE"

	// 独立
	TypeAndroidID     SpoofType = "ANDROID_ID"
	TypeGSFID         SpoofType = "GSF_ID"
	TypeAdvertisingID SpoofType = "ADVERTISING_ID"
	TypeMediaDRMID    SpoofType = "MEDIA_DRM_ID"
	TypeInstanceID    SpoofType = "INSTANCE_ID"
	TypeWifiSSID      SpoofType = "WIFI_SSID"
	TypeWifiBSSID     SpoofType = "WIFI_BSSID"
)

// CorrelationGroup は一緒に再生成しなければならない識別子の集合を表す。
type CorrelationGroup string

const (
	// GroupSIMCard はキャリアに相関するSIM関連の識別子
	GroupSIMCard CorrelationGroup = "SIM_CARD"
	// GroupDeviceHardware は端末プリセットに相関するハードウェア識別子
	GroupDeviceHardware CorrelationGroup = "DEVICE_HARDWARE"
	// GroupLocation は国に相関する位置情報
	GroupLocation CorrelationGroup = "LOCATION"
	// GroupNone は相関を持たない独立した識別子
	GroupNone CorrelationGroup = "NONE"
)

var allSpoofTypes = []SpoofType{
	TypeIMSI, TypeICCID, TypePhoneNumber, TypeCarrierName, TypeCarrierMCCMNC,
	TypeSIMCountryISO, TypeNetworkCountryISO, TypeSIMOperatorName, TypeNetworkOperator,
	TypeDeviceProfile, TypeIMEI, TypeSerial, TypeWifiMAC, TypeBluetoothMAC,
	TypeTimezone, TypeLocale, TypeLocationLatitude, TypeLocationLongitude,
	TypeAndroidID, TypeGSFID, TypeAdvertisingID, TypeMediaDRMID, TypeInstanceID,
	TypeWifiSSID, TypeWifiBSSID,
}

var allGroups = []CorrelationGroup{GroupSIMCard, GroupDeviceHardware, GroupLocation, GroupNone}

var spoofTypeInfo = map[SpoofType]struct {
	group   CorrelationGroup
	display string
}{
	TypeIMSI:              {GroupSIMCard, "IMSI"},
	TypeICCID:             {GroupSIMCard, "ICCID"},
	TypePhoneNumber:       {GroupSIMCard, "Phone Number"},
	TypeCarrierName:       {GroupSIMCard, "Carrier Name"},
	TypeCarrierMCCMNC:     {GroupSIMCard, "Carrier MCC/MNC"},
	TypeSIMCountryISO:     {GroupSIMCard, "SIM Country"},
	TypeNetworkCountryISO: {GroupSIMCard, "Network Country"},
	TypeSIMOperatorName:   {GroupSIMCard, "SIM Operator Name"},
	TypeNetworkOperator:   {GroupSIMCard, "Network Operator"},
	TypeDeviceProfile:     {GroupDeviceHardware, "Device Profile"},
	TypeIMEI:              {GroupDeviceHardware, "IMEI"},
	TypeSerial:            {GroupDeviceHardware, "Serial Number"},
	TypeWifiMAC:           {GroupDeviceHardware, "Wi-Fi MAC"},
	TypeBluetoothMAC:      {GroupDeviceHardware, "Bluetooth MAC"},
	TypeTimezone:          {GroupLocation, "Timezone"},
	TypeLocale:            {GroupLocation, "Locale"},
	TypeLocationLatitude:  {GroupLocation, "Latitude"},
	TypeLocationLongitude: {GroupLocation, "Longitude"},
	TypeAndroidID:         {GroupNone, "Android ID"},
	TypeGSFID:             {GroupNone, "GSF ID"},
	TypeAdvertisingID:     {GroupNone, "Advertising ID"},
	TypeMediaDRMID:        {GroupNone, "MediaDrm ID"},
	TypeInstanceID:        {GroupNone, "Instance ID"},
	TypeWifiSSID:          {GroupNone, "Wi-Fi SSID"},
	TypeWifiBSSID:         {GroupNone, "Wi-Fi BSSID"},
}

// AllSpoofTypes は全ての識別子種別を定義順に返す。
func AllSpoofTypes() []SpoofType {
	out := make([]SpoofType, len(allSpoofTypes))
	copy(out, allSpoofTypes)
	return out
}

// ParseSpoofType は文字列を識別子種別に変換する。
// 大文字小文字を区別せず、ハイフンはアンダースコアとして扱う。
func ParseSpoofType(s string) (SpoofType, error) {
	t := SpoofType(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_"))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", apperr.ErrUnknownSpoofType, s)
	}
	return t, nil
}

// IsValid は定義済みの識別子種別かどうかを返す。
func (t SpoofType) IsValid() bool {
	_, ok := spoofTypeInfo[t]
	return ok
}

// Group は識別子種別が属する相関グループを返す。
// 未定義の種別はGroupNoneを返す。
func (t SpoofType) Group() CorrelationGroup {
	if info, ok := spoofTypeInfo[t]; ok {
		return info.group
	}
	return GroupNone
}

// DisplayName は表示用の名前を返す。
func (t SpoofType) DisplayName() string {
	if info, ok := spoofTypeInfo[t]; ok {
		return info.display
	}
	return string(t)
}

// IsCorrelated は相関グループに属するかどうかを返す。
func (t SpoofType) IsCorrelated() bool {
	return t.Group() != GroupNone
}

// referenceDerived は参照オブジェクトそのものから決まる識別子種別。
var referenceDerived = map[SpoofType]bool{
	TypeCarrierName:       true,
	TypeCarrierMCCMNC:     true,
	TypeSIMCountryISO:     true,
	TypeNetworkCountryISO: true,
	TypeSIMOperatorName:   true,
	TypeNetworkOperator:   true,
	TypeDeviceProfile:     true,
}

// IsReferenceDerived は値が参照オブジェクト（キャリア・プリセット）から一意に決まる種別かどうかを返す。
// この種別を変えるには参照オブジェクトを選び直す、つまりグループ全体を再生成する必要がある。
func (t SpoofType) IsReferenceDerived() bool {
	return referenceDerived[t]
}

// AllGroups は全ての相関グループを返す。
func AllGroups() []CorrelationGroup {
	out := make([]CorrelationGroup, len(allGroups))
	copy(out, allGroups)
	return out
}

// ParseGroup は文字列を相関グループに変換する。
func ParseGroup(s string) (CorrelationGroup, error) {
	g := CorrelationGroup(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_"))
	for _, known := range allGroups {
		if g == known {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperr.ErrUnknownGroup, s)
}

// Types はグループに属する識別子種別を定義順に返す。
func (g CorrelationGroup) Types() []SpoofType {
	var out []SpoofType
	for _, t := range allSpoofTypes {
		if spoofTypeInfo[t].group == g {
			out = append(out, t)
		}
	}
	return out
}

// IsCorrelated は参照オブジェクトを持つグループかどうかを返す。
func (g CorrelationGroup) IsCorrelated() bool {
	return g == GroupSIMCard || g == GroupDeviceHardware || g == GroupLocation
}
