package service

import (
	"time"

	"github.com/google/uuid"
)

// Clock абстрагирует получение времени, чтобы тесты были детерминированными
type Clock interface {
	Now() time.Time
}

// RealClock возвращает текущее время
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator абстрагирует генерацию идентификаторов записей
type IDGenerator interface {
	New() string
}

// UUIDGenerator выдает случайные UUID
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }
