package i18n_test

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, i18n.Validate())
}

func TestEveryLocaleNamesEveryKey(t *testing.T) {
	for _, lang := range i18n.Languages {
		tr := i18n.For(lang)
		for _, d := range models.Departments {
			assert.NotEmpty(t, tr.DepartmentName(d))
			assert.Contains(t, tr.Departments, d, "%s: %s", lang, d)
		}
		for _, s := range models.Shifts {
			assert.Contains(t, tr.Shifts, s, "%s: %s", lang, s)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	lang, ok := i18n.ParseLanguage(" FR ")
	assert.True(t, ok)
	assert.Equal(t, i18n.LanguageFrench, lang)

	lang, ok = i18n.ParseLanguage("de")
	assert.False(t, ok)
	assert.Equal(t, i18n.DefaultLanguage, lang)
}

func TestFor(t *testing.T) {
	assert.Equal(t, "Historique", i18n.For(i18n.LanguageFrench).History)
	assert.Equal(t, i18n.For(i18n.LanguageSpanish), i18n.For("xx"))
	assert.True(t, i18n.LanguageArabic.IsRTL())
	assert.False(t, i18n.LanguageSpanish.IsRTL())
}

func TestPromptName(t *testing.T) {
	assert.Equal(t, "Spanish", i18n.LanguageSpanish.PromptName())
	assert.Equal(t, "French", i18n.LanguageFrench.PromptName())
	assert.Equal(t, "Arabic", i18n.LanguageArabic.PromptName())
}
