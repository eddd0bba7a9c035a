package models

import "time"

// ChatSettings - настройки чата (выбранный язык интерфейса)
type ChatSettings struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ChatID    int64     `gorm:"uniqueIndex;not null" json:"chat_id"`
	Username  string    `json:"username"`
	Language  string    `gorm:"type:varchar(8);not null;default:'es'" json:"language"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName задает имя таблицы в БД
func (ChatSettings) TableName() string {
	return "chat_settings"
}
