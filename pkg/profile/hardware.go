package profile

import (
	"regexp"
	"slices"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/generator"
	"github.com/astrixforge/Device-Masker-sub000/pkg/luhn"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

var macPattern = regexp.MustCompile(`^[0-9A-F]{2}(:[0-9A-F]{2}){5}$`)

// HardwareBundle は端末プリセットに相関したハードウェア識別子。
type HardwareBundle struct {
	Preset       refdata.DeviceProfilePreset `json:"preset"`
	IMEI         string                      `json:"imei"`
	Serial       string                      `json:"serial"`
	WifiMAC      string                      `json:"wifi_mac"`
	BluetoothMAC string                      `json:"bluetooth_mac"`
}

// Anchor は参照プリセットのIDを返す。
func (b HardwareBundle) Anchor() string {
	return b.Preset.ID
}

// Values は識別子種別ごとの値を返す。
func (b HardwareBundle) Values() map[model.SpoofType]string {
	return map[model.SpoofType]string{
		model.TypeDeviceProfile: b.Preset.ID,
		model.TypeIMEI:          b.IMEI,
		model.TypeSerial:        b.Serial,
		model.TypeWifiMAC:       b.WifiMAC,
		model.TypeBluetoothMAC:  b.BluetoothMAC,
	}
}

// Validate は全フィールドが参照プリセットと整合しているかを検証する。
func (b HardwareBundle) Validate(reg *refdata.Registry) error {
	if len(b.IMEI) != generator.IMEILength || !luhn.ValidIMEI(b.IMEI) {
		return apperr.NewInvariantError(string(model.TypeIMEI), b.IMEI, "must be 15 Luhn-valid digits")
	}
	if reg != nil {
		if _, err := reg.PresetByID(b.Preset.ID); err != nil {
			return apperr.NewInvariantError(string(model.TypeDeviceProfile), b.Preset.ID, "preset is not registered")
		}
		if !slices.Contains(reg.TACsFor(b.Preset.Manufacturer), b.IMEI[:generator.TACLength]) {
			return apperr.NewInvariantError(string(model.TypeIMEI), b.IMEI, "TAC does not belong to "+b.Preset.Manufacturer.String())
		}
	}
	if b.Serial == "" {
		return apperr.NewInvariantError(string(model.TypeSerial), b.Serial, "must not be empty")
	}
	if !macPattern.MatchString(b.WifiMAC) {
		return apperr.NewInvariantError(string(model.TypeWifiMAC), b.WifiMAC, "must be XX:XX:XX:XX:XX:XX")
	}
	if !macPattern.MatchString(b.BluetoothMAC) {
		return apperr.NewInvariantError(string(model.TypeBluetoothMAC), b.BluetoothMAC, "must be XX:XX:XX:XX:XX:XX")
	}
	return nil
}

// HardwareGenerator は端末プリセットに相関したハードウェアバンドルを生成する。
type HardwareGenerator struct {
	gen *generator.Generator
}

// NewHardwareGenerator はHardwareGeneratorを生成する。
func NewHardwareGenerator(gen *generator.Generator) *HardwareGenerator {
	return &HardwareGenerator{gen: gen}
}

// Generate はプリセットに相関したハードウェアバンドルを生成する。
// presetがnilの場合は全プリセットから一様に選ぶ。
func (g *HardwareGenerator) Generate(preset *refdata.DeviceProfilePreset) (HardwareBundle, error) {
	if preset == nil {
		p, err := g.gen.Registry().RandomPreset(g.gen.Rand())
		if err != nil {
			return HardwareBundle{}, err
		}
		preset = &p
	}
	p := *preset
	return HardwareBundle{
		Preset:       p,
		IMEI:         g.IMEI(p),
		Serial:       g.Serial(p),
		WifiMAC:      g.WifiMAC(p),
		BluetoothMAC: g.BluetoothMAC(),
	}, nil
}

// IMEI はプリセットのTACから、なければメーカーのTACプールからIMEIを生成する。
func (g *HardwareGenerator) IMEI(p refdata.DeviceProfilePreset) string {
	if len(p.TACPrefixes) > 0 {
		return g.gen.IMEIFromTACs(p.TACPrefixes)
	}
	return g.gen.IMEIFor(p.Manufacturer)
}

// Serial はメーカーのシリアル番号形式でシリアル番号を生成する。
func (g *HardwareGenerator) Serial(p refdata.DeviceProfilePreset) string {
	return g.gen.SerialFor(p.Manufacturer)
}

// WifiMAC はプリセットのOUIヒント（なければメーカーのOUI）を50%の確率で用いてMACアドレスを生成する。
func (g *HardwareGenerator) WifiMAC(p refdata.DeviceProfilePreset) string {
	ouis := p.OUIHints
	if len(ouis) == 0 {
		ouis = g.gen.Registry().OUIsFor(p.Manufacturer)
	}
	return g.gen.MACFromOUIs(ouis)
}

// BluetoothMAC はWi-Fi MACとは独立したローカル管理MACアドレスを生成する。
func (g *HardwareGenerator) BluetoothMAC() string {
	return g.gen.LocalMAC()
}

// Field は参照プリセットを保ったまま1フィールドだけを生成する。
func (g *HardwareGenerator) Field(t model.SpoofType, p refdata.DeviceProfilePreset) (string, bool) {
	switch t {
	case model.TypeDeviceProfile:
		return p.ID, true
	case model.TypeIMEI:
		return g.IMEI(p), true
	case model.TypeSerial:
		return g.Serial(p), true
	case model.TypeWifiMAC:
		return g.WifiMAC(p), true
	case model.TypeBluetoothMAC:
		return g.BluetoothMAC(), true
	default:
		return "", false
	}
}
