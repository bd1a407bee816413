package profile

import (
	"strings"

	"github.com/astrixforge/Device-Masker-sub000/pkg/generator"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// phoneRule は国番号ごとの携帯電話番号の桁数と先頭番号。
// digits は国番号を除いた加入者番号の桁数（先頭番号を含む）。
type phoneRule struct {
	digits int
	leads  []string
}

const defaultSubscriberDigits = 10

var phoneRules = map[string]phoneRule{
	"7":   {10, []string{"9"}},
	"27":  {9, []string{"6", "7", "8"}},
	"31":  {9, []string{"6"}},
	"33":  {9, []string{"6", "7"}},
	"34":  {9, []string{"6", "7"}},
	"39":  {10, []string{"3"}},
	"44":  {10, []string{"7"}},
	"46":  {9, []string{"7"}},
	"48":  {9, []string{"5", "6", "7", "8"}},
	"49":  {11, []string{"15", "16", "17"}},
	"52":  {10, nil},
	"55":  {11, nil},
	"61":  {9, []string{"4"}},
	"62":  {10, []string{"8"}},
	"63":  {10, []string{"9"}},
	"65":  {8, []string{"8", "9"}},
	"81":  {10, []string{"70", "80", "90"}},
	"82":  {10, []string{"10"}},
	"86":  {11, []string{"13", "15", "18"}},
	"90":  {10, []string{"5"}},
	"91":  {10, []string{"6", "7", "8", "9"}},
	"92":  {10, []string{"3"}},
	"971": {9, []string{"5"}},
}

// 北米の実在市外局番（NANP）
var (
	usAreaCodes = []string{
		"202", "206", "212", "213", "214", "303", "305", "310", "312", "404", "415", "480",
		"512", "602", "617", "619", "646", "650", "702", "713", "718", "773", "818", "917",
	}
	caAreaCodes = []string{
		"403", "416", "437", "438", "514", "587", "604", "613", "647", "778", "905",
	}
)

// PhoneNumber はキャリアの国番号に一致するE.164形式の電話番号を生成する。
// 米国・カナダは実在の市外局番を用いる。
func PhoneNumber(gen *generator.Generator, c refdata.Carrier) string {
	if c.CountryCode == "1" {
		return "+1" + nanpNumber(gen, c.CountryISO)
	}

	rule, ok := phoneRules[c.CountryCode]
	if !ok {
		rule = phoneRule{digits: defaultSubscriberDigits}
	}
	lead := generator.Pick(gen.Rand(), rule.leads)
	rest := rule.digits - len(lead)
	if rest < 0 {
		rest = 0
	}
	return "+" + c.CountryCode + lead + gen.Rand().Digits(rest)
}

// nanpNumber は市外局番(3桁) + 局番(3桁) + 加入者番号(4桁)を生成する。
// 局番は2-9で始まり、N11と555を避ける。
func nanpNumber(gen *generator.Generator, iso string) string {
	areas := usAreaCodes
	if strings.EqualFold(iso, "CA") {
		areas = caAreaCodes
	}
	rnd := gen.Rand()
	area := generator.Pick(rnd, areas)

	var exchange string
	for {
		exchange = string(rune('2'+rnd.IntN(8))) + rnd.Digits(2)
		if exchange[1:] != "11" && exchange != "555" {
			break
		}
	}
	return area + exchange + rnd.Digits(4)
}
