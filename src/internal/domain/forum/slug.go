package forum

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ===========================
// Slug 值對象
// ===========================

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonWordRun    = regexp.MustCompile(`[^\w-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Slug URL 友善的問題識別字串
//
// 例如："An example title" → "an-example-title"
type Slug struct {
	value string
}

// NewSlugFromText 由任意文字產生 slug
//
// 步驟：
// 1. NFKD 分解並移除組合符號（"é" → "e"）
// 2. 轉小寫、去除前後空白
// 3. 連續空白 → "-"
// 4. 移除非 [A-Za-z0-9_-] 字元
// 5. "_" → "-"，連續 "-" 合併
// 6. 去除前後 "-"
func NewSlugFromText(text string) Slug {
	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	normalized, _, err := transform.String(stripMarks, text)
	if err != nil {
		normalized = text
	}

	s := strings.TrimSpace(strings.ToLower(normalized))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonWordRun.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "_", "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	return Slug{value: s}
}

// SlugFromString 還原已儲存的 slug（不再正規化）
func SlugFromString(value string) Slug {
	return Slug{value: value}
}

func (s Slug) String() string {
	return s.value
}

// Equals 比較兩個 slug
func (s Slug) Equals(other Slug) bool {
	return s.value == other.value
}

// IsEmpty 判斷 slug 是否為空（標題全由符號組成時）
func (s Slug) IsEmpty() bool {
	return s.value == ""
}
