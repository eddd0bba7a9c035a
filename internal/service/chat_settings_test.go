package service_test

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/repository"
	"absence-tracker-bot/internal/service"
	"absence-tracker-bot/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSettingsService(t *testing.T) {
	repo, err := repository.NewGormChatSettingsRepository(testutil.NewTestDB(t))
	require.NoError(t, err)
	svc := service.NewChatSettingsService(repo, i18n.LanguageFrench)

	assert.Equal(t, i18n.LanguageFrench, svc.Language(1), "default for unknown chat")

	require.NoError(t, svc.SetLanguage(1, "bob", i18n.LanguageArabic))
	assert.Equal(t, i18n.LanguageArabic, svc.Language(1))
	assert.Equal(t, i18n.LanguageFrench, svc.Language(2))
}
