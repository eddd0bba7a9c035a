package service

import (
	"absence-tracker-bot/internal/models"
	"absence-tracker-bot/internal/repository"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrPersist возвращается, когда коллекцию не удалось записать в хранилище.
// Изменение в памяти при этом откатывается.
var ErrPersist = errors.New("failed to persist records")

// ValidationError - некорректные данные новой записи
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RecordInput - данные формы ввода; id, createdAt и rate назначает хранилище
type RecordInput struct {
	Date       string
	Department models.Department
	Shift      models.Shift
	TotalStaff int
	Absences   int
}

// Validate проверяет обязательные поля и диапазоны
func (in RecordInput) Validate() error {
	if strings.TrimSpace(in.Date) == "" {
		return &ValidationError{Field: "date", Reason: "required"}
	}
	if !in.Department.IsValid() {
		return &ValidationError{Field: "department", Reason: fmt.Sprintf("unknown department %q", in.Department)}
	}
	if !in.Shift.IsValid() {
		return &ValidationError{Field: "shift", Reason: fmt.Sprintf("unknown shift %q", in.Shift)}
	}
	if in.TotalStaff < 0 {
		return &ValidationError{Field: "totalStaff", Reason: "must not be negative"}
	}
	if in.Absences < 0 {
		return &ValidationError{Field: "absences", Reason: "must not be negative"}
	}
	if in.Absences > in.TotalStaff {
		return &ValidationError{Field: "absences", Reason: "must not exceed total staff"}
	}
	return nil
}

// RecordStore владеет упорядоченной коллекцией записей (новые первыми)
// и сохраняет ее целиком после каждого изменения.
type RecordStore struct {
	mu      sync.RWMutex
	records []models.AbsenceRecord
	storage repository.BlobStorage
	clock   Clock
	ids     IDGenerator
	logger  *logrus.Logger
}

func NewRecordStore(storage repository.BlobStorage, clock Clock, ids IDGenerator) *RecordStore {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &RecordStore{
		records: []models.AbsenceRecord{},
		storage: storage,
		clock:   clock,
		ids:     ids,
		logger:  logger,
	}
}

// SetLogLevel задает уровень логирования хранилища
func (s *RecordStore) SetLogLevel(level logrus.Level) {
	s.logger.SetLevel(level)
}

// Load загружает сохраненную коллекцию. Ошибки чтения и разбора
// только логируются, коллекция в этом случае остается пустой.
func (s *RecordStore) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = []models.AbsenceRecord{}

	data, ok, err := s.storage.Read()
	if err != nil {
		s.logger.WithError(err).Error("Failed to read saved records")
		return
	}
	if !ok {
		s.logger.Debug("No saved records found")
		return
	}

	var records []models.AbsenceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.WithError(err).Error("Failed to parse saved records")
		return
	}
	if records != nil {
		s.records = records
	}

	s.logger.WithField("count", len(s.records)).Info("Records loaded")
}

// Add создает запись, добавляет ее в начало коллекции и сохраняет коллекцию
func (s *RecordStore) Add(in RecordInput) (models.AbsenceRecord, error) {
	if err := in.Validate(); err != nil {
		s.logger.WithError(err).Warn("Invalid record input")
		return models.AbsenceRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.AbsenceRecord{
		ID:         s.ids.New(),
		Date:       strings.TrimSpace(in.Date),
		Department: in.Department,
		Shift:      in.Shift,
		TotalStaff: in.TotalStaff,
		Absences:   in.Absences,
		Rate:       models.CalculateRate(in.Absences, in.TotalStaff),
		CreatedAt:  s.clock.Now().UnixMilli(),
	}

	next := make([]models.AbsenceRecord, 0, len(s.records)+1)
	next = append(next, record)
	next = append(next, s.records...)

	if err := s.commit(next); err != nil {
		return models.AbsenceRecord{}, err
	}

	s.logger.WithFields(logrus.Fields{
		"id":         record.ID,
		"date":       record.Date,
		"department": record.Department,
		"shift":      record.Shift,
	}).Debug("Record added")

	return record, nil
}

// Delete удаляет запись по id; отсутствие записи не считается ошибкой
func (s *RecordStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.AbsenceRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.ID != id {
			next = append(next, r)
		}
	}

	if err := s.commit(next); err != nil {
		return err
	}

	s.logger.WithField("id", id).Debug("Record deleted")
	return nil
}

// Clear удаляет все записи. Подтверждение - забота вызывающей стороны.
func (s *RecordStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commit([]models.AbsenceRecord{}); err != nil {
		return err
	}

	s.logger.Info("All records cleared")
	return nil
}

// Records возвращает копию коллекции (новые первыми)
func (s *RecordStore) Records() []models.AbsenceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.AbsenceRecord, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}

// Get возвращает запись по id
func (s *RecordStore) Get(id string) (models.AbsenceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return models.AbsenceRecord{}, false
}

// Len возвращает количество записей
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// commit сохраняет новую коллекцию и только после успешной записи
// делает ее текущей. Вызывается под s.mu.
func (s *RecordStore) commit(next []models.AbsenceRecord) error {
	data, err := json.Marshal(next)
	if err != nil {
		s.logger.WithError(err).Error("Failed to serialize records")
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	if err := s.storage.Write(data); err != nil {
		s.logger.WithError(err).Error("Failed to write records")
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	s.records = next
	return nil
}
