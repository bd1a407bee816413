package model

import (
	"errors"
	"testing"

	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
)

func TestSpoofTypeGroups(t *testing.T) {
	tests := []struct {
		typ  SpoofType
		want CorrelationGroup
	}{
		{TypeIMSI, GroupSIMCard},
		{TypeICCID, GroupSIMCard},
		{TypePhoneNumber, GroupSIMCard},
		{TypeNetworkOperator, GroupSIMCard},
		{TypeIMEI, GroupDeviceHardware},
		{TypeSerial, GroupDeviceHardware},
		{TypeWifiMAC, GroupDeviceHardware},
		{TypeBluetoothMAC, GroupDeviceHardware},
		{TypeDeviceProfile, GroupDeviceHardware},
		{TypeTimezone, GroupLocation},
		{TypeLocationLatitude, GroupLocation},
		{TypeAndroidID, GroupNone},
		{TypeWifiBSSID, GroupNone},
		{SpoofType("BOGUS"), GroupNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.Group(); got != tt.want {
				t.Errorf("%s.Group() = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestEveryTypeBelongsToExactlyOneGroup(t *testing.T) {
	seen := make(map[SpoofType]CorrelationGroup)
	for _, g := range AllGroups() {
		for _, typ := range g.Types() {
			if prev, dup := seen[typ]; dup {
				t.Errorf("%s belongs to both %s and %s", typ, prev, g)
			}
			seen[typ] = g
		}
	}
	if len(seen) != len(AllSpoofTypes()) {
		t.Errorf("grouped types = %d, want %d", len(seen), len(AllSpoofTypes()))
	}
}

func TestParseSpoofType(t *testing.T) {
	tests := []struct {
		in      string
		want    SpoofType
		wantErr bool
	}{
		{"IMEI", TypeIMEI, false},
		{"imei", TypeIMEI, false},
		{"wifi-mac", TypeWifiMAC, false},
		{" phone_number ", TypePhoneNumber, false},
		{"UNKNOWN", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpoofType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, apperr.ErrUnknownSpoofType) {
					t.Errorf("ParseSpoofType(%q) error = %v, want ErrUnknownSpoofType", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSpoofType(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSpoofType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseGroup(t *testing.T) {
	g, err := ParseGroup("sim-card")
	if err != nil {
		t.Fatalf("ParseGroup error = %v", err)
	}
	if g != GroupSIMCard {
		t.Errorf("ParseGroup = %q, want %q", g, GroupSIMCard)
	}

	if _, err := ParseGroup("radio"); !errors.Is(err, apperr.ErrUnknownGroup) {
		t.Errorf("ParseGroup(radio) error = %v, want ErrUnknownGroup", err)
	}
}

func TestGroupIsCorrelated(t *testing.T) {
	for _, g := range []CorrelationGroup{GroupSIMCard, GroupDeviceHardware, GroupLocation} {
		if !g.IsCorrelated() {
			t.Errorf("%s.IsCorrelated() = false", g)
		}
	}
	if GroupNone.IsCorrelated() {
		t.Error("GroupNone.IsCorrelated() = true")
	}
	if TypeAndroidID.IsCorrelated() {
		t.Error("TypeAndroidID.IsCorrelated() = true")
	}
}

func TestIsReferenceDerived(t *testing.T) {
	tests := []struct {
		typ  SpoofType
		want bool
	}{
		{TypeCarrierName, true},
		{TypeCarrierMCCMNC, true},
		{TypeSIMCountryISO, true},
		{TypeNetworkCountryISO, true},
		{TypeSIMOperatorName, true},
		{TypeNetworkOperator, true},
		{TypeDeviceProfile, true},
		{TypeIMSI, false},
		{TypePhoneNumber, false},
		{TypeIMEI, false},
		{TypeTimezone, false},
		{TypeLocationLatitude, false},
		{TypeAdvertisingID, false},
		{SpoofType("BOGUS"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.IsReferenceDerived(); got != tt.want {
				t.Errorf("IsReferenceDerived() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := TypeWifiMAC.DisplayName(); got != "Wi-Fi MAC" {
		t.Errorf("DisplayName = %q", got)
	}
	if got := SpoofType("X").DisplayName(); got != "X" {
		t.Errorf("DisplayName = %q", got)
	}
}
