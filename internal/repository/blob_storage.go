package repository

import (
	"absence-tracker-bot/internal/models"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordsStorageKey - фиксированный ключ, под которым хранится коллекция записей
const RecordsStorageKey = "factory_absence_data_v1"

// BlobStorage - долговременное хранилище одного сериализованного значения
type BlobStorage interface {
	// Read возвращает ok=false, если значение еще не сохранялось
	Read() (data []byte, ok bool, err error)
	// Write заменяет предыдущее значение целиком
	Write(data []byte) error
}

type GormBlobStorage struct {
	db  *gorm.DB
	key string
}

func NewGormBlobStorage(db *gorm.DB, key string) (*GormBlobStorage, error) {
	// Автомиграция для таблицы stored_values
	if err := db.AutoMigrate(&models.StoredValue{}); err != nil {
		return nil, err
	}

	return &GormBlobStorage{db: db, key: key}, nil
}

func (s *GormBlobStorage) Read() ([]byte, bool, error) {
	var value models.StoredValue
	err := s.db.Where("storage_key = ?", s.key).First(&value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value.Value), true, nil
}

func (s *GormBlobStorage) Write(data []byte) error {
	value := models.StoredValue{
		Key:   s.key,
		Value: string(data),
	}

	// Upsert: заменяем значение, если ключ уже есть
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&value).Error
}
