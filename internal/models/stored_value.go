package models

import "time"

// StoredValue - строка key/value, в которой хранится сериализованная коллекция записей
type StoredValue struct {
	Key       string    `gorm:"column:storage_key;primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StoredValue) TableName() string {
	return "stored_values"
}
