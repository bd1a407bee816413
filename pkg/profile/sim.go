// Package profile は参照オブジェクトに相関した識別子の組（バンドル）を生成する。
package profile

import (
	"strings"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/generator"
	"github.com/astrixforge/Device-Masker-sub000/pkg/luhn"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// SIMBundle はキャリアに相関したSIM関連の識別子。
type SIMBundle struct {
	Carrier           refdata.Carrier `json:"carrier"`
	IMSI              string          `json:"imsi"`
	ICCID             string          `json:"iccid"`
	PhoneNumber       string          `json:"phone_number"`
	SIMCountryISO     string          `json:"sim_country_iso"`
	NetworkCountryISO string          `json:"network_country_iso"`
	SIMOperatorName   string          `json:"sim_operator_name"`
	NetworkOperator   string          `json:"network_operator"`
}

// Anchor は参照キャリアのMCC/MNCを返す。
func (b SIMBundle) Anchor() string {
	return b.Carrier.MCCMNC
}

// Values は識別子種別ごとの値を返す。
func (b SIMBundle) Values() map[model.SpoofType]string {
	return map[model.SpoofType]string{
		model.TypeIMSI:              b.IMSI,
		model.TypeICCID:             b.ICCID,
		model.TypePhoneNumber:       b.PhoneNumber,
		model.TypeCarrierName:       b.Carrier.DisplayName,
		model.TypeCarrierMCCMNC:     b.Carrier.MCCMNC,
		model.TypeSIMCountryISO:     b.SIMCountryISO,
		model.TypeNetworkCountryISO: b.NetworkCountryISO,
		model.TypeSIMOperatorName:   b.SIMOperatorName,
		model.TypeNetworkOperator:   b.NetworkOperator,
	}
}

// Validate は全フィールドが参照キャリアと整合しているかを検証する。
func (b SIMBundle) Validate(reg *refdata.Registry) error {
	c := b.Carrier
	if reg != nil {
		if _, err := reg.CarrierByMCCMNC(c.MCCMNC); err != nil {
			return apperr.NewInvariantError(string(model.TypeCarrierMCCMNC), c.MCCMNC, "carrier is not registered")
		}
	}
	if len(b.IMSI) != generator.IMSILength || !luhn.IsDigits(b.IMSI) || !strings.HasPrefix(b.IMSI, c.MCCMNC) {
		return apperr.NewInvariantError(string(model.TypeIMSI), b.IMSI, "must be 15 digits starting with "+c.MCCMNC)
	}
	prefix := generator.ICCIDPrefix + c.ICCIDCountryCode() + c.ICCIDIssuerCode
	if len(b.ICCID) != generator.ICCIDLength || !luhn.ValidICCID(b.ICCID) || !strings.HasPrefix(b.ICCID, prefix) {
		return apperr.NewInvariantError(string(model.TypeICCID), b.ICCID, "must be 19 Luhn-valid digits starting with "+prefix)
	}
	if !strings.HasPrefix(b.PhoneNumber, "+"+c.CountryCode) || !luhn.IsDigits(b.PhoneNumber[1:]) {
		return apperr.NewInvariantError(string(model.TypePhoneNumber), b.PhoneNumber, "must start with +"+c.CountryCode)
	}
	if !strings.EqualFold(b.SIMCountryISO, c.CountryISO) {
		return apperr.NewInvariantError(string(model.TypeSIMCountryISO), b.SIMCountryISO, "must equal "+c.CountryISO)
	}
	if !strings.EqualFold(b.NetworkCountryISO, c.CountryISO) {
		return apperr.NewInvariantError(string(model.TypeNetworkCountryISO), b.NetworkCountryISO, "must equal "+c.CountryISO)
	}
	if b.SIMOperatorName != c.DisplayName {
		return apperr.NewInvariantError(string(model.TypeSIMOperatorName), b.SIMOperatorName, "must equal "+c.DisplayName)
	}
	if b.NetworkOperator != c.MCCMNC {
		return apperr.NewInvariantError(string(model.TypeNetworkOperator), b.NetworkOperator, "must equal "+c.MCCMNC)
	}
	return nil
}

// SIMGenerator はキャリアに相関したSIMバンドルを生成する。
type SIMGenerator struct {
	gen *generator.Generator
}

// NewSIMGenerator はSIMGeneratorを生成する。
func NewSIMGenerator(gen *generator.Generator) *SIMGenerator {
	return &SIMGenerator{gen: gen}
}

// Generate はキャリアに相関したSIMバンドルを生成する。
// carrierがnilの場合は全キャリアから一様に選ぶ。
func (g *SIMGenerator) Generate(carrier *refdata.Carrier) (SIMBundle, error) {
	if carrier == nil {
		c, err := g.gen.Registry().RandomCarrier(g.gen.Rand())
		if err != nil {
			return SIMBundle{}, err
		}
		carrier = &c
	}
	return g.build(*carrier), nil
}

// GenerateForCountry は指定国のキャリアからSIMバンドルを生成する。
func (g *SIMGenerator) GenerateForCountry(iso string) (SIMBundle, error) {
	c, err := g.gen.Registry().RandomCarrierIn(g.gen.Rand(), iso)
	if err != nil {
		return SIMBundle{}, err
	}
	return g.build(c), nil
}

// GenerateForCarrierName は表示名に部分一致するキャリアからSIMバンドルを生成する。
func (g *SIMGenerator) GenerateForCarrierName(name string) (SIMBundle, error) {
	c, err := g.gen.Registry().RandomCarrierNamed(g.gen.Rand(), name)
	if err != nil {
		return SIMBundle{}, err
	}
	return g.build(c), nil
}

func (g *SIMGenerator) build(c refdata.Carrier) SIMBundle {
	iso := strings.ToLower(c.CountryISO)
	return SIMBundle{
		Carrier:           c,
		IMSI:              g.IMSI(c),
		ICCID:             g.ICCID(c),
		PhoneNumber:       g.PhoneNumber(c),
		SIMCountryISO:     iso,
		NetworkCountryISO: iso,
		SIMOperatorName:   c.DisplayName,
		NetworkOperator:   c.MCCMNC,
	}
}

// IMSI はキャリアのMCC/MNCで始まるIMSIを生成する。
func (g *SIMGenerator) IMSI(c refdata.Carrier) string {
	return g.gen.IMSI(c.MCCMNC)
}

// ICCID はキャリアの国コード・発行者コードを持つICCIDを生成する。
func (g *SIMGenerator) ICCID(c refdata.Carrier) string {
	return g.gen.ICCID(&c)
}

// PhoneNumber はキャリアの国番号で始まる電話番号を生成する。
func (g *SIMGenerator) PhoneNumber(c refdata.Carrier) string {
	return PhoneNumber(g.gen, c)
}

// Field は参照キャリアを保ったまま1フィールドだけを生成する。
// キャリアから決まるフィールドは同じ値を返す。
func (g *SIMGenerator) Field(t model.SpoofType, c refdata.Carrier) (string, bool) {
	switch t {
	case model.TypeIMSI:
		return g.IMSI(c), true
	case model.TypeICCID:
		return g.ICCID(c), true
	case model.TypePhoneNumber:
		return g.PhoneNumber(c), true
	case model.TypeCarrierName, model.TypeSIMOperatorName:
		return c.DisplayName, true
	case model.TypeCarrierMCCMNC, model.TypeNetworkOperator:
		return c.MCCMNC, true
	case model.TypeSIMCountryISO, model.TypeNetworkCountryISO:
		return strings.ToLower(c.CountryISO), true
	default:
		return "", false
	}
}
