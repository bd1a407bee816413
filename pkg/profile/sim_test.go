package profile

import (
	"errors"
	"strings"
	"testing"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/generator"
	"github.com/astrixforge/Device-Masker-sub000/pkg/luhn"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

func TestSIMGenerateCorrelation(t *testing.T) {
	gen := newTestGenerator(1)
	sg := NewSIMGenerator(gen)
	reg := gen.Registry()

	for _, c := range reg.Carriers() {
		c := c
		t.Run(c.MCCMNC, func(t *testing.T) {
			b, err := sg.Generate(&c)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if err := b.Validate(reg); err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if !strings.HasPrefix(b.IMSI, c.MCCMNC) || len(b.IMSI) != 15 {
				t.Errorf("IMSI = %q", b.IMSI)
			}
			if b.ICCID[2:4] != c.ICCIDCountryCode() || !luhn.ValidICCID(b.ICCID) {
				t.Errorf("ICCID = %q", b.ICCID)
			}
			if !strings.HasPrefix(b.PhoneNumber, "+"+c.CountryCode) {
				t.Errorf("PhoneNumber = %q", b.PhoneNumber)
			}
			if b.SIMCountryISO != strings.ToLower(c.CountryISO) || b.NetworkCountryISO != b.SIMCountryISO {
				t.Errorf("country ISO = %q/%q", b.SIMCountryISO, b.NetworkCountryISO)
			}
			if b.Anchor() != c.MCCMNC {
				t.Errorf("Anchor() = %q", b.Anchor())
			}
		})
	}
}

func TestSIMGenerateRandomCarrier(t *testing.T) {
	gen := newTestGenerator(2)
	sg := NewSIMGenerator(gen)
	for i := 0; i < 200; i++ {
		b, err := sg.Generate(nil)
		if err != nil {
			t.Fatalf("Generate(nil) error = %v", err)
		}
		if err := b.Validate(gen.Registry()); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
	}
}

func TestSIMGenerateForCountry(t *testing.T) {
	gen := newTestGenerator(3)
	sg := NewSIMGenerator(gen)

	t.Run("India", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			b, err := sg.GenerateForCountry("IN")
			if err != nil {
				t.Fatalf("GenerateForCountry(IN) error = %v", err)
			}
			if b.Carrier.CountryISO != "IN" {
				t.Fatalf("carrier country = %q", b.Carrier.CountryISO)
			}
			if !strings.HasPrefix(b.PhoneNumber, "+91") {
				t.Errorf("PhoneNumber = %q", b.PhoneNumber)
			}
			if b.ICCID[2:4] != "91" {
				t.Errorf("ICCID country field = %q", b.ICCID[2:4])
			}
			if mcc := b.IMSI[:3]; mcc != "404" && mcc != "405" {
				t.Errorf("IMSI MCC = %q", mcc)
			}
		}
	})

	t.Run("Unknown country", func(t *testing.T) {
		_, err := sg.GenerateForCountry("ZZ")
		if !errors.Is(err, apperr.ErrEmptyResultSet) {
			t.Errorf("error = %v, want ErrEmptyResultSet", err)
		}
	})
}

func TestSIMGenerateForCarrierName(t *testing.T) {
	sg := NewSIMGenerator(newTestGenerator(4))

	b, err := sg.GenerateForCarrierName("t-mobile")
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(b.Carrier.DisplayName, "T-Mobile") {
		t.Errorf("carrier = %q", b.Carrier.DisplayName)
	}

	if _, err := sg.GenerateForCarrierName("Nonexistent Telecom"); !errors.Is(err, apperr.ErrEmptyResultSet) {
		t.Errorf("error = %v, want ErrEmptyResultSet", err)
	}
}

func TestSIMGenerateEmptyRegistry(t *testing.T) {
	gen := generator.New(refdata.MustNewRegistry(refdata.Data{}), generator.NewSeededRand(5))
	if _, err := NewSIMGenerator(gen).Generate(nil); !errors.Is(err, apperr.ErrEmptyResultSet) {
		t.Errorf("error = %v, want ErrEmptyResultSet", err)
	}
}

func TestSIMValues(t *testing.T) {
	sg := NewSIMGenerator(newTestGenerator(6))
	c := mustCarrier("23415")
	b, _ := sg.Generate(&c)

	values := b.Values()
	if len(values) != len(model.GroupSIMCard.Types()) {
		t.Fatalf("Values() = %d entries, want %d", len(values), len(model.GroupSIMCard.Types()))
	}
	for _, typ := range model.GroupSIMCard.Types() {
		if _, ok := values[typ]; !ok {
			t.Errorf("Values() missing %s", typ)
		}
	}
	if values[model.TypeCarrierName] != "Vodafone UK" || values[model.TypeNetworkOperator] != "23415" {
		t.Errorf("carrier fields = %q/%q", values[model.TypeCarrierName], values[model.TypeNetworkOperator])
	}
}

func TestSIMValidateDetectsMismatch(t *testing.T) {
	sg := NewSIMGenerator(newTestGenerator(7))
	c := mustCarrier("310260")
	good, _ := sg.Generate(&c)

	tests := []struct {
		name   string
		mutate func(b *SIMBundle)
	}{
		{"IMSI prefix", func(b *SIMBundle) { b.IMSI = "23415" + b.IMSI[5:] }},
		{"ICCID check digit", func(b *SIMBundle) {
			last := b.ICCID[18]
			b.ICCID = b.ICCID[:18] + string(rune('0'+(int(last-'0')+1)%10))
		}},
		{"Phone country", func(b *SIMBundle) { b.PhoneNumber = "+44" + b.PhoneNumber[2:] }},
		{"SIM country", func(b *SIMBundle) { b.SIMCountryISO = "gb" }},
		{"Operator name", func(b *SIMBundle) { b.SIMOperatorName = "AT&T" }},
		{"Network operator", func(b *SIMBundle) { b.NetworkOperator = "310410" }},
		{"Unregistered carrier", func(b *SIMBundle) { b.Carrier.MCCMNC = "00101" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := good
			tt.mutate(&b)
			if err := b.Validate(refdata.Default()); !errors.Is(err, apperr.ErrInvariantViolation) {
				t.Errorf("Validate() error = %v, want ErrInvariantViolation", err)
			}
		})
	}
}

func TestSIMField(t *testing.T) {
	sg := NewSIMGenerator(newTestGenerator(8))
	c := mustCarrier("20801")

	for _, typ := range model.GroupSIMCard.Types() {
		v, ok := sg.Field(typ, c)
		if !ok || v == "" {
			t.Errorf("Field(%s) = %q, %v", typ, v, ok)
		}
	}
	if v, _ := sg.Field(model.TypeSIMCountryISO, c); v != "fr" {
		t.Errorf("Field(SIM_COUNTRY_ISO) = %q, want fr", v)
	}
	if _, ok := sg.Field(model.TypeIMEI, c); ok {
		t.Error("Field(IMEI) should not be handled by SIM generator")
	}
}
