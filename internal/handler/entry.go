package handler

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/service"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Шаги пошаговой формы ввода
type entryStep int

const (
	stepDate entryStep = iota
	stepDepartment
	stepShift
	stepTotalStaff
	stepAbsences
)

// entryDraft - незавершенная форма ввода в чате
type entryDraft struct {
	step  entryStep
	input service.RecordInput
}

const isoDate = "2006-01-02"

// startEntry начинает пошаговый ввод записи
func (h *Handler) startEntry(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	h.drafts[chatID] = &entryDraft{step: stepDate}

	tr := h.tr(chatID)
	h.sendText(chatID, "📝 "+tr.NewEntry+"\n\n"+tr.AskDate)
}

// newEntry обрабатывает /new: без аргументов - пошаговый ввод,
// с аргументами - ввод одной строкой
func (h *Handler) newEntry(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if strings.TrimSpace(args) == "" {
		h.startEntry(message)
		return
	}

	delete(h.drafts, chatID)
	tr := h.tr(chatID)

	input, err := h.parseEntryArgs(args)
	if err != nil {
		h.sendText(chatID, tr.InvalidEntry+": "+err.Error()+"\n"+tr.EntryUsage)
		return
	}

	h.saveEntry(chatID, input)
}

func (h *Handler) parseEntryArgs(args string) (service.RecordInput, error) {
	parts := strings.Fields(args)
	if len(parts) != 5 {
		return service.RecordInput{}, fmt.Errorf("expected 5 values, got %d", len(parts))
	}

	date, err := h.parseDate(parts[0])
	if err != nil {
		return service.RecordInput{}, err
	}

	department, ok := parseDepartment(parts[1])
	if !ok {
		return service.RecordInput{}, fmt.Errorf("unknown department %q", parts[1])
	}

	shift, ok := parseShift(parts[2])
	if !ok {
		return service.RecordInput{}, fmt.Errorf("unknown shift %q", parts[2])
	}

	totalStaff, err := parseCount(parts[3])
	if err != nil {
		return service.RecordInput{}, err
	}

	absences, err := parseCount(parts[4])
	if err != nil {
		return service.RecordInput{}, err
	}

	return service.RecordInput{
		Date:       date,
		Department: department,
		Shift:      shift,
		TotalStaff: totalStaff,
		Absences:   absences,
	}, nil
}

// handleDraftInput обрабатывает текстовый ответ на текущем шаге формы
func (h *Handler) handleDraftInput(message *tgbotapi.Message, draft *entryDraft) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)
	tr := h.tr(chatID)

	switch draft.step {
	case stepDate:
		date, err := h.parseDate(text)
		if err != nil {
			h.sendText(chatID, tr.InvalidEntry+": "+err.Error()+"\n"+tr.AskDate)
			return
		}
		draft.input.Date = date
		draft.step = stepDepartment
		h.askDepartment(chatID, tr)

	case stepDepartment:
		department, ok := parseDepartment(text)
		if !ok {
			h.askDepartment(chatID, tr)
			return
		}
		h.handleDraftChoice(chatID, callbackDepartment, string(department))

	case stepShift:
		shift, ok := parseShift(text)
		if !ok {
			h.askShift(chatID, tr)
			return
		}
		h.handleDraftChoice(chatID, callbackShift, string(shift))

	case stepTotalStaff:
		totalStaff, err := parseCount(text)
		if err != nil {
			h.sendText(chatID, tr.InvalidNumber)
			return
		}
		draft.input.TotalStaff = totalStaff
		draft.step = stepAbsences
		h.sendText(chatID, tr.AskAbsences)

	case stepAbsences:
		absences, err := parseCount(text)
		if err != nil {
			h.sendText(chatID, tr.InvalidNumber)
			return
		}
		draft.input.Absences = absences

		// Удаляем состояние: запись либо сохранена, либо отклонена
		delete(h.drafts, chatID)
		h.saveEntry(chatID, draft.input)
	}
}

// handleDraftChoice применяет выбор отдела или смены (кнопкой или текстом)
func (h *Handler) handleDraftChoice(chatID int64, action, value string) {
	draft, exists := h.drafts[chatID]
	if !exists {
		return
	}
	tr := h.tr(chatID)

	switch {
	case action == callbackDepartment && draft.step == stepDepartment:
		department, ok := parseDepartment(value)
		if !ok {
			h.askDepartment(chatID, tr)
			return
		}
		draft.input.Department = department
		draft.step = stepShift
		h.askShift(chatID, tr)

	case action == callbackShift && draft.step == stepShift:
		shift, ok := parseShift(value)
		if !ok {
			h.askShift(chatID, tr)
			return
		}
		draft.input.Shift = shift
		draft.step = stepTotalStaff
		h.sendText(chatID, tr.AskTotalStaff)
	}
}

func (h *Handler) askDepartment(chatID int64, tr *i18n.Translations) {
	msg := tgbotapi.NewMessage(chatID, tr.AskDepartment)
	msg.ReplyMarkup = departmentKeyboard(tr)
	h.send(msg)
}

func (h *Handler) askShift(chatID int64, tr *i18n.Translations) {
	msg := tgbotapi.NewMessage(chatID, tr.AskShift)
	msg.ReplyMarkup = shiftKeyboard(tr)
	h.send(msg)
}

// saveEntry сохраняет запись и переключает чат на панель за дату записи
func (h *Handler) saveEntry(chatID int64, input service.RecordInput) {
	tr := h.tr(chatID)

	record, err := h.store.Add(input)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			h.sendText(chatID, tr.InvalidEntry+": "+validationErr.Error())
			return
		}

		logrus.WithError(err).Error("Failed to add record")
		h.sendText(chatID, tr.SaveFailed+": "+err.Error())
		return
	}

	logrus.WithFields(logrus.Fields{
		"chat_id":    chatID,
		"record_id":  record.ID,
		"department": record.Department,
		"shift":      record.Shift,
	}).Info("Absence record saved")

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s\n📅 %s | %s | %s | %d/%d (%.2f%%)",
		tr.Saved,
		record.Date,
		tr.DepartmentName(record.Department),
		tr.ShiftName(record.Shift),
		record.Absences,
		record.TotalStaff,
		record.Rate,
	))
	msg.ReplyMarkup = mainKeyboard(tr)
	h.send(msg)

	h.showDashboard(chatID, record.Date)
}

// parseDate приводит дату к виду YYYY-MM-DD
func (h *Handler) parseDate(dateStr string) (string, error) {
	dateStr = strings.TrimSpace(dateStr)
	now := h.clock.Now()

	if isToday(dateStr) {
		return now.Format(isoDate), nil
	}

	// Пробуем разные форматы
	formats := []string{
		isoDate,
		"02.01.2006",
		"02-01-2006",
		"02.01",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			// Если указан только день и месяц, добавляем текущий год
			if !strings.Contains(format, "2006") {
				month, day := t.Month(), t.Day()
				t = time.Date(now.Year(), month, day, 0, 0, 0, 0, time.UTC)
				// 29.02 в невисокосный год
				if t.Month() != month || t.Day() != day {
					break
				}
			}
			return t.Format(isoDate), nil
		}
	}

	return "", fmt.Errorf("invalid date %q, use YYYY-MM-DD or DD.MM.YYYY", dateStr)
}

func isToday(s string) bool {
	if strings.EqualFold(s, "today") {
		return true
	}
	for _, lang := range i18n.Languages {
		if strings.EqualFold(s, i18n.For(lang).PeriodToday) {
			return true
		}
	}
	return false
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return n, nil
}
