// Package luhn はIMEIおよびICCIDのチェックディジット計算を提供する。
//
// IMEIとICCIDはどちらもLuhnアルゴリズムを用いるが、倍加する桁の
// 数え方が異なるため関数を分けている。
package luhn

// IMEICheckDigit は14桁のIMEIペイロードからチェックディジットを計算する。
// 左端を0番目として奇数番目の桁を倍加する。
func IMEICheckDigit(payload string) int {
	sum := 0
	for i := 0; i < len(payload); i++ {
		d := int(payload[i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// ICCIDCheckDigit はICCIDペイロードからチェックディジットを計算する。
// チェックディジットを含めた全長を n として (n - idx) が偶数の桁を倍加する。
func ICCIDCheckDigit(payload string) int {
	n := len(payload) + 1
	sum := 0
	for i := 0; i < len(payload); i++ {
		d := int(payload[i] - '0')
		if (n-i)%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// ValidIMEI は15桁のIMEIのチェックディジットが正しいかを返す。
func ValidIMEI(imei string) bool {
	if len(imei) != 15 || !IsDigits(imei) {
		return false
	}
	return IMEICheckDigit(imei[:14]) == int(imei[14]-'0')
}

// ValidICCID はICCIDのチェックディジットが正しいかを返す。
// 長さは問わない（19桁、20桁の両方を受け付ける）。
func ValidICCID(iccid string) bool {
	if len(iccid) < 2 || !IsDigits(iccid) {
		return false
	}
	last := len(iccid) - 1
	return ICCIDCheckDigit(iccid[:last]) == int(iccid[last]-'0')
}

// AppendIMEICheckDigit はペイロードにIMEIチェックディジットを付加する。
func AppendIMEICheckDigit(payload string) string {
	return payload + string(rune('0'+IMEICheckDigit(payload)))
}

// AppendICCIDCheckDigit はペイロードにICCIDチェックディジットを付加する。
func AppendICCIDCheckDigit(payload string) string {
	return payload + string(rune('0'+ICCIDCheckDigit(payload)))
}

// IsDigits は文字列が1文字以上のASCII数字のみで構成されるかを返す。
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
