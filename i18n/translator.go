//go:generate go run go.uber.org/mock/mockgen -source=translator.go -destination=../mocks/mock_translator.go -package=mocks
package i18n

// Translator looks up the translation of a source string.
// Unknown strings are returned as is.
type Translator interface {
	Translate(text string) string
}

type CatalogTranslator struct {
	Locale   string
	messages map[string]string
	fallback map[string]string
}

func (c CatalogTranslator) Translate(text string) string {
	if value, ok := c.messages[text]; ok {
		return value
	}
	if value, ok := c.fallback[text]; ok {
		return value
	}
	return text
}

// Identity is the translator used when no catalog is configured.
type Identity struct{}

func (Identity) Translate(text string) string {
	return text
}
