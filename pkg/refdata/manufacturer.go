package refdata

import "strings"

// Manufacturer は端末メーカーを表す列挙型。
// メーカー名はParseManufacturerで一度だけ列挙値に変換し、以降はこの値でTAC・OUI・シリアル形式を引く。
type Manufacturer int

// メーカー定義
const (
	ManufacturerUnknown Manufacturer = iota
	ManufacturerSamsung
	ManufacturerGoogle
	ManufacturerXiaomi
	ManufacturerOnePlus
	ManufacturerHuawei
	ManufacturerMotorola
	ManufacturerSony
	ManufacturerOppo
	ManufacturerVivo
	ManufacturerNokia
)

var manufacturerNames = map[Manufacturer]string{
	ManufacturerUnknown:  "unknown",
	ManufacturerSamsung:  "samsung",
	ManufacturerGoogle:   "google",
	ManufacturerXiaomi:   "xiaomi",
	ManufacturerOnePlus:  "oneplus",
	ManufacturerHuawei:   "huawei",
	ManufacturerMotorola: "motorola",
	ManufacturerSony:     "sony",
	ManufacturerOppo:     "oppo",
	ManufacturerVivo:     "vivo",
	ManufacturerNokia:    "nokia",
}

// manufacturerAliases はブランド名・サブブランド名からメーカーへの対応表。
var manufacturerAliases = map[string]Manufacturer{
	"samsung":  ManufacturerSamsung,
	"galaxy":   ManufacturerSamsung,
	"google":   ManufacturerGoogle,
	"pixel":    ManufacturerGoogle,
	"xiaomi":   ManufacturerXiaomi,
	"redmi":    ManufacturerXiaomi,
	"poco":     ManufacturerXiaomi,
	"oneplus":  ManufacturerOnePlus,
	"huawei":   ManufacturerHuawei,
	"motorola": ManufacturerMotorola,
	"moto":     ManufacturerMotorola,
	"sony":     ManufacturerSony,
	"xperia":   ManufacturerSony,
	"oppo":     ManufacturerOppo,
	"vivo":     ManufacturerVivo,
	"nokia":    ManufacturerNokia,
	"hmd":      ManufacturerNokia,
}

// ParseManufacturer はメーカー名を列挙値に変換する。
// 大文字小文字と記号を無視し、名前全体が別名に一致しなければ語単位（隣接2語の連結を含む）で
// 先頭から別名を探す。"Samsung Electronics Co., Ltd."はSamsungになる。
// どの別名も含まない名前はManufacturerUnknownを返す。
func ParseManufacturer(name string) Manufacturer {
	if m, ok := manufacturerAliases[normalizeName(name)]; ok {
		return m
	}
	words := nameTokens(name)
	for i, w := range words {
		if m, ok := manufacturerAliases[w]; ok {
			return m
		}
		if i+1 < len(words) {
			if m, ok := manufacturerAliases[w+words[i+1]]; ok {
				return m
			}
		}
	}
	return ManufacturerUnknown
}

func isNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if isNameRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// nameTokens は英数字以外で区切った小文字の語を返す。
func nameTokens(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !isNameRune(r)
	})
}

// String はメーカー名を返す。
func (m Manufacturer) String() string {
	if s, ok := manufacturerNames[m]; ok {
		return s
	}
	return manufacturerNames[ManufacturerUnknown]
}

// IsKnown は既知のメーカーかどうかを返す。
func (m Manufacturer) IsKnown() bool {
	_, ok := manufacturerNames[m]
	return ok && m != ManufacturerUnknown
}

// MarshalText はencoding.TextMarshalerを実装する。
func (m Manufacturer) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText はencoding.TextUnmarshalerを実装する。
func (m *Manufacturer) UnmarshalText(text []byte) error {
	*m = ParseManufacturer(string(text))
	return nil
}

// KnownManufacturers はUnknown以外の全メーカーを定義順に返す。
func KnownManufacturers() []Manufacturer {
	out := make([]Manufacturer, 0, len(manufacturerNames)-1)
	for m := ManufacturerSamsung; m <= ManufacturerNokia; m++ {
		out = append(out, m)
	}
	return out
}
