// Package insight запрашивает у внешнего сервиса генерации текста краткий
// анализ записей о неявках.
package insight

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/models"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Тексты, которые видит пользователь вместо ошибки
const (
	ErrorText = "Error generating insight."
	EmptyText = "Analysis failed"
)

// Generator - внешний сервис генерации текста
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State - текущее состояние анализа. Text заполнен для StatusReady
// (ответ сервиса) и StatusFailed (фиксированный текст ошибки).
type State struct {
	Status Status
	Text   string
}

// Loading сообщает, что запрос еще выполняется
func (s State) Loading() bool {
	return s.Status == StatusLoading
}

// Outcome - результат вызова Request
type Outcome int

const (
	Started Outcome = iota
	// Busy - предыдущий запрос еще выполняется, новый отклонен
	Busy
	// NoData - коллекция пуста, сервис не вызывался
	NoData
)

// Requester выполняет не более одного запроса анализа одновременно
type Requester struct {
	mu        sync.Mutex
	generator Generator
	timeout   time.Duration
	state     State
	logger    *logrus.Logger
}

// NewRequester создает Requester; timeout <= 0 - без ограничения по времени
func NewRequester(generator Generator, timeout time.Duration) *Requester {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Requester{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// SetLogLevel задает уровень логирования запросов анализа
func (r *Requester) SetLogLevel(level logrus.Level) {
	r.logger.SetLevel(level)
}

// State возвращает снимок состояния
func (r *Requester) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Reset сбрасывает готовый результат или ошибку; выполняющийся запрос не трогает
func (r *Requester) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Status != StatusLoading {
		r.state = State{}
	}
}

// Request запускает анализ снимка записей в фоне. Пока запрос выполняется,
// повторные вызовы отклоняются с Busy и состояние не меняют. После завершения
// вызывается done с итоговым состоянием (если done != nil).
func (r *Requester) Request(ctx context.Context, records []models.AbsenceRecord, lang i18n.Language, done func(State)) Outcome {
	r.mu.Lock()
	if r.state.Status == StatusLoading {
		r.mu.Unlock()
		return Busy
	}
	if len(records) == 0 {
		r.mu.Unlock()
		return NoData
	}

	snapshot := make([]models.AbsenceRecord, len(records))
	copy(snapshot, records)

	r.state = State{Status: StatusLoading}
	r.mu.Unlock()

	go r.run(ctx, snapshot, lang, done)

	return Started
}

func (r *Requester) run(ctx context.Context, records []models.AbsenceRecord, lang i18n.Language, done func(State)) {
	state := r.generate(ctx, records, lang)

	r.mu.Lock()
	r.state = state
	r.mu.Unlock()

	if done != nil {
		done(state)
	}
}

func (r *Requester) generate(ctx context.Context, records []models.AbsenceRecord, lang i18n.Language) State {
	prompt, err := BuildPrompt(records, lang)
	if err != nil {
		r.logger.WithError(err).Error("Failed to build insight prompt")
		return State{Status: StatusFailed, Text: ErrorText}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	started := time.Now()
	text, err := r.generator.Generate(ctx, prompt)
	if err != nil {
		r.logger.WithError(err).Error("AI insight request failed")
		return State{Status: StatusFailed, Text: ErrorText}
	}
	if text == "" {
		r.logger.Warn("AI insight response is empty")
		return State{Status: StatusFailed, Text: EmptyText}
	}

	r.logger.WithFields(logrus.Fields{
		"records":  len(records),
		"language": lang,
		"elapsed":  time.Since(started).String(),
	}).Info("AI insight generated")

	return State{Status: StatusReady, Text: text}
}

// BuildPrompt формирует инструкцию для сервиса: краткий вывод на нужном языке
// и полная коллекция записей в JSON.
func BuildPrompt(records []models.AbsenceRecord, lang i18n.Language) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal records: %w", err)
	}

	return fmt.Sprintf(
		"Analyze the following industrial absence data and provide a professional, "+
			"3-sentence summary of trends and potential actions in %s. Data: %s",
		lang.PromptName(), data,
	), nil
}
