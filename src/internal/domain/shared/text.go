package shared

import "strings"

// Ellipsis 截斷文字後附加的標記
const Ellipsis = "..."

// TruncateRunes 取前 n 個字元（以 rune 計，不切斷多位元組字元）
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Excerpt 取前 n 個字元、去掉尾端空白並附加 "..."
func Excerpt(s string, n int) string {
	return strings.TrimRight(TruncateRunes(s, n), " \t\r\n") + Ellipsis
}
