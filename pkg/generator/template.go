package generator

import "strings"

const (
	digitChars    = "0123456789"
	letterChars   = "ABCDEFGHJKLMNPRSTUVWXYZ"
	alnumChars    = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"
	upperHexChars = "0123456789ABCDEF"
	lowerHexChars = "0123456789abcdef"
)

// Render はテンプレートの記号をランダムな文字に置き換える。
//
//	# 数字, @ 英大文字(I/O/Q除く), * 英数字(I/O/Q除く), % 16進大文字, ~ 16進小文字
//
// 記号を文字として出力するには直前に\を置く。それ以外の文字はそのまま出力する。
func (g *Generator) Render(tmpl string) string {
	var b strings.Builder
	b.Grow(len(tmpl))
	escaped := false
	for _, c := range tmpl {
		if escaped {
			b.WriteRune(c)
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '#':
			b.WriteByte(digitChars[g.rnd.IntN(len(digitChars))])
		case '@':
			b.WriteByte(letterChars[g.rnd.IntN(len(letterChars))])
		case '*':
			b.WriteByte(alnumChars[g.rnd.IntN(len(alnumChars))])
		case '%':
			b.WriteByte(upperHexChars[g.rnd.IntN(len(upperHexChars))])
		case '~':
			b.WriteByte(lowerHexChars[g.rnd.IntN(len(lowerHexChars))])
		default:
			b.WriteRune(c)
		}
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}
