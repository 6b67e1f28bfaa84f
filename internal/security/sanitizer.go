package security

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// TextSanitizer удаляет из пользовательского текста всю разметку.
// Сам текст возвращается как есть, без HTML-экранирования.
type TextSanitizer struct {
	policy *bluemonday.Policy
}

func NewTextSanitizer() *TextSanitizer {
	return &TextSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *TextSanitizer) Sanitize(text string) string {
	return html.UnescapeString(s.policy.Sanitize(text))
}
