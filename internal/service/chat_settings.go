package service

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/repository"
	"fmt"

	"github.com/sirupsen/logrus"
)

type ChatSettingsService struct {
	repo        repository.ChatSettingsRepository
	defaultLang i18n.Language
}

func NewChatSettingsService(repo repository.ChatSettingsRepository, defaultLang i18n.Language) *ChatSettingsService {
	return &ChatSettingsService{repo: repo, defaultLang: defaultLang}
}

// Language возвращает язык чата; при ошибке или отсутствии настроек - язык по умолчанию
func (s *ChatSettingsService) Language(chatID int64) i18n.Language {
	settings, err := s.repo.GetByChatID(chatID)
	if err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Warn("Failed to get chat settings")
		return s.defaultLang
	}
	if settings == nil {
		return s.defaultLang
	}

	lang, ok := i18n.ParseLanguage(settings.Language)
	if !ok {
		return s.defaultLang
	}
	return lang
}

// SetLanguage сохраняет выбранный язык чата
func (s *ChatSettingsService) SetLanguage(chatID int64, username string, lang i18n.Language) error {
	if err := s.repo.SetLanguage(chatID, username, string(lang)); err != nil {
		return fmt.Errorf("save language for chat %d: %w", chatID, err)
	}
	return nil
}
