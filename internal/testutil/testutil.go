// Package testutil содержит фейки для тестов: хранилище в памяти, часы,
// генератор id, тестовую БД и отправителя сообщений Telegram.
package testutil

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryBlobStorage хранит значение в памяти. ReadErr/WriteErr позволяют
// имитировать сбои хранилища.
type MemoryBlobStorage struct {
	mu       sync.Mutex
	data     []byte
	ok       bool
	writes   int
	ReadErr  error
	WriteErr error
}

func NewMemoryBlobStorage() *MemoryBlobStorage {
	return &MemoryBlobStorage{}
}

func (m *MemoryBlobStorage) Read() ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, false, m.ReadErr
	}
	if !m.ok {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

func (m *MemoryBlobStorage) Write(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.data = append([]byte(nil), data...)
	m.ok = true
	m.writes++
	return nil
}

// Set подменяет сохраненное значение
func (m *MemoryBlobStorage) Set(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.ok = true
}

func (m *MemoryBlobStorage) Data() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

func (m *MemoryBlobStorage) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// FixedClock возвращает заданное время; Advance сдвигает его
type FixedClock struct {
	mu sync.Mutex
	t  time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// SequenceIDs выдает id-1, id-2, ...
type SequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (g *SequenceIDs) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// NewTestDB открывает SQLite во временном каталоге теста
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// FakeSender запоминает все отправленные сообщения и запросы
type FakeSender struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (s *FakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, nil
}

func (s *FakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// Messages возвращает отправленные текстовые сообщения
func (s *FakeSender) Messages() []tgbotapi.MessageConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	var messages []tgbotapi.MessageConfig
	for _, c := range s.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

// Texts возвращает тексты отправленных сообщений
func (s *FakeSender) Texts() []string {
	var texts []string
	for _, msg := range s.Messages() {
		texts = append(texts, msg.Text)
	}
	return texts
}

// LastText возвращает текст последнего сообщения
func (s *FakeSender) LastText() string {
	texts := s.Texts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

// Documents возвращает отправленные файлы
func (s *FakeSender) Documents() []tgbotapi.DocumentConfig {
	s.mu.Lock()
	defer s.mu.Unlock()

	var docs []tgbotapi.DocumentConfig
	for _, c := range s.sent {
		if doc, ok := c.(tgbotapi.DocumentConfig); ok {
			docs = append(docs, doc)
		}
	}
	return docs
}

// Reset забывает отправленные сообщения
func (s *FakeSender) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = nil
	s.requests = nil
}
