package repository

import (
	"absence-tracker-bot/internal/models"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatSettingsRepository interface {
	GetByChatID(chatID int64) (*models.ChatSettings, error)
	SetLanguage(chatID int64, username, language string) error
}

type GormChatSettingsRepository struct {
	db *gorm.DB
}

func NewGormChatSettingsRepository(db *gorm.DB) (ChatSettingsRepository, error) {
	// Автомиграция - создает таблицу если ее нет
	if err := db.AutoMigrate(&models.ChatSettings{}); err != nil {
		return nil, err
	}
	return &GormChatSettingsRepository{db: db}, nil
}

func (r *GormChatSettingsRepository) GetByChatID(chatID int64) (*models.ChatSettings, error) {
	var settings models.ChatSettings
	result := r.db.Where("chat_id = ?", chatID).First(&settings)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &settings, nil
}

func (r *GormChatSettingsRepository) SetLanguage(chatID int64, username, language string) error {
	settings := models.ChatSettings{
		ChatID:   chatID,
		Username: username,
		Language: language,
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "language", "updated_at"}),
	}).Create(&settings).Error
}
