// Package generator はチェックサム付き識別子とプリミティブ識別子の生成を提供する。
//
// 生成関数は失敗しない。メーカー名が不正・未知の場合は汎用プールを用いる。
package generator

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/astrixforge/Device-Masker-sub000/pkg/luhn"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// 識別子の長さ
const (
	IMEILength         = 15
	TACLength          = 8
	ICCIDLength        = 19
	ICCIDPayloadLength = 18
	IMSILength         = 15
	AndroidIDLength    = 16
	GSFIDLength        = 16
	MediaDRMIDLength   = 64
	InstanceIDLength   = 32
)

// ICCIDPrefix はICCIDの業種識別子（電気通信）。
const ICCIDPrefix = "89"

// Generator はプリミティブ識別子の生成器。
type Generator struct {
	reg *refdata.Registry
	rnd *Rand
}

// New はGeneratorを生成する。reg, rnd がnilの場合は既定値を用いる。
func New(reg *refdata.Registry, rnd *Rand) *Generator {
	if reg == nil {
		reg = refdata.Default()
	}
	if rnd == nil {
		rnd = NewRand()
	}
	return &Generator{reg: reg, rnd: rnd}
}

// Registry は参照テーブルを返す。
func (g *Generator) Registry() *refdata.Registry {
	return g.reg
}

// Rand は乱数源を返す。
func (g *Generator) Rand() *Rand {
	return g.rnd
}

// IMEI はメーカー名で絞り込んだTACからIMEIを生成する。
func (g *Generator) IMEI(manufacturer string) string {
	return g.IMEIFor(refdata.ParseManufacturer(manufacturer))
}

// IMEIFor はメーカーのTACプールからIMEIを生成する。
func (g *Generator) IMEIFor(m refdata.Manufacturer) string {
	return g.IMEIFromTACs(g.reg.TACsFor(m))
}

// IMEIFromTACs は指定TACのいずれかを先頭に持つIMEIを生成する。
// tacsが空の場合は全TACプールを用いる。
func (g *Generator) IMEIFromTACs(tacs []string) string {
	if len(tacs) == 0 {
		tacs = g.reg.AllTACs()
	}
	tac := Pick(g.rnd, tacs)
	if len(tac) != TACLength {
		tac = g.rnd.Digits(TACLength)
	}
	return luhn.AppendIMEICheckDigit(tac + g.rnd.Digits(IMEILength-TACLength-1))
}

// ICCID はキャリアに対応するICCIDを生成する。
// 形式: "89" + 国コード(2桁) + 発行者コード + アカウント番号（計18桁） + チェックディジット
// carrierがnilの場合はランダムなキャリアを用いる。
func (g *Generator) ICCID(carrier *refdata.Carrier) string {
	if carrier == nil {
		c, err := g.reg.RandomCarrier(g.rnd)
		if err != nil {
			return luhn.AppendICCIDCheckDigit(ICCIDPrefix + g.rnd.Digits(ICCIDPayloadLength-len(ICCIDPrefix)))
		}
		carrier = &c
	}
	prefix := ICCIDPrefix + carrier.ICCIDCountryCode() + carrier.ICCIDIssuerCode
	if len(prefix) > ICCIDPayloadLength {
		prefix = prefix[:ICCIDPayloadLength]
	}
	return luhn.AppendICCIDCheckDigit(prefix + g.rnd.Digits(ICCIDPayloadLength-len(prefix)))
}

// IMSI はMCC/MNCに続く加入者番号をランダムに付加し15桁のIMSIを生成する。
func (g *Generator) IMSI(mccmnc string) string {
	if len(mccmnc) >= IMSILength {
		return mccmnc[:IMSILength]
	}
	return mccmnc + g.rnd.Digits(IMSILength-len(mccmnc))
}

// MAC はメーカーに応じたMACアドレスを生成する。
// メーカーのOUIがある場合は50%の確率で実在OUIを用い、それ以外はローカル管理アドレスを生成する。
func (g *Generator) MAC(manufacturer string) string {
	return g.MACFor(refdata.ParseManufacturer(manufacturer))
}

// MACFor はメーカーのOUI一覧を用いてMACアドレスを生成する。
func (g *Generator) MACFor(m refdata.Manufacturer) string {
	return g.MACFromOUIs(g.reg.OUIsFor(m))
}

// MACFromOUIs は50%の確率でouisのいずれかを先頭に持つMACアドレスを生成する。
// ouisが空の場合は常にローカル管理アドレスを生成する。
func (g *Generator) MACFromOUIs(ouis []string) string {
	if len(ouis) > 0 && g.rnd.Bool() {
		return g.macWithOUI(Pick(g.rnd, ouis))
	}
	return g.LocalMAC()
}

func (g *Generator) macWithOUI(oui string) string {
	b := g.rnd.Bytes(3)
	return fmt.Sprintf("%s:%02X:%02X:%02X", strings.ToUpper(oui), b[0], b[1], b[2])
}

// LocalMAC はローカル管理・ユニキャストのMACアドレスを生成する。
// 第1オクテットのbit0（マルチキャスト）をクリアし、bit1（ローカル管理）をセットする。
func (g *Generator) LocalMAC() string {
	b := g.rnd.Bytes(6)
	b[0] = (b[0] &^ 0x01) | 0x02
	return FormatMAC(b)
}

// FormatMAC は6バイトをXX:XX:XX:XX:XX:XX形式（大文字）に整形する。
func FormatMAC(b []byte) string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}

// Serial はメーカーのシリアル番号形式でシリアル番号を生成する。
func (g *Generator) Serial(manufacturer string) string {
	return g.SerialFor(refdata.ParseManufacturer(manufacturer))
}

// SerialFor はメーカーのシリアル番号テンプレートからシリアル番号を生成する。
func (g *Generator) SerialFor(m refdata.Manufacturer) string {
	return g.Render(Pick(g.rnd, g.reg.SerialTemplatesFor(m)))
}

// AndroidID は16桁の16進小文字のAndroid IDを生成する。
func (g *Generator) AndroidID() string {
	return g.hexString(AndroidIDLength)
}

// GSFID は16桁の16進小文字のGoogle Services Framework IDを生成する。
func (g *Generator) GSFID() string {
	return g.hexString(GSFIDLength)
}

// AdvertisingID はUUID v4形式の広告IDを生成する。
func (g *Generator) AdvertisingID() string {
	id, err := uuid.NewRandomFromReader(g.rnd)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// MediaDRMID は64桁の16進小文字のMediaDrmデバイスIDを生成する。
func (g *Generator) MediaDRMID() string {
	return g.hexString(MediaDRMIDLength)
}

// InstanceID は32桁の16進小文字のアプリインスタンスIDを生成する。
func (g *Generator) InstanceID() string {
	return g.hexString(InstanceIDLength)
}

func (g *Generator) hexString(n int) string {
	return hex.EncodeToString(g.rnd.Bytes(n / 2))
}

// WifiSSID はルーターベンダーの既定名に似たSSIDを生成する。
func (g *Generator) WifiSSID() string {
	tmpl := Pick(g.rnd, Pick(g.rnd, g.reg.Routers()).SSIDTemplates)
	if tmpl == "" {
		tmpl = "WiFi-%%%%"
	}
	return g.Render(tmpl)
}

// WifiBSSID は接続先アクセスポイントのBSSIDを生成する。
// ルーターベンダーのOUIを用い、登録がない場合はローカル管理アドレスを生成する。
func (g *Generator) WifiBSSID() string {
	routers := g.reg.Routers()
	if len(routers) == 0 {
		return g.LocalMAC()
	}
	ouis := Pick(g.rnd, routers).OUIs
	if len(ouis) == 0 {
		return g.LocalMAC()
	}
	return g.macWithOUI(Pick(g.rnd, ouis))
}
