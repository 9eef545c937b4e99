package forum_test

import (
	"testing"

	"github.com/jackyeh168/qa_forum/src/internal/domain/forum"
	"github.com/stretchr/testify/assert"
)

// Test 1: 由標題產生 slug
func TestNewSlugFromText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"基本", "Example question title", "example-question-title"},
		{"去除變音符號", "Pergunta sobre Ação e Café", "pergunta-sobre-acao-e-cafe"},
		{"前後空白", "  padded title  ", "padded-title"},
		{"連續空白", "many    spaces\there", "many-spaces-here"},
		{"標點符號", "What is Go?! (really)", "what-is-go-really"},
		{"底線轉連字號", "snake_case_title", "snake-case-title"},
		{"連續連字號", "a -- b", "a-b"},
		{"尾端連字號", "trailing -", "trailing"},
		{"開頭連字號", "- leading", "leading"},
		{"全角字元", "ＡＢＣ title", "abc-title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			slug := forum.NewSlugFromText(tt.input)

			// Assert
			assert.Equal(t, tt.want, slug.String())
		})
	}
}

// Test 2: 還原已儲存的 slug 不再正規化
func TestSlugFromString_KeepsValue(t *testing.T) {
	slug := forum.SlugFromString("Already-Stored")

	assert.Equal(t, "Already-Stored", slug.String())
	assert.True(t, slug.Equals(forum.SlugFromString("Already-Stored")))
}

// Test 3: 只有符號的標題產生空 slug
func TestNewSlugFromText_OnlySymbols(t *testing.T) {
	assert.True(t, forum.NewSlugFromText("?!?").IsEmpty())
}
