package handler

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/models"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// view - один из трех экранов бота
type view int

const (
	viewEntry view = iota
	viewDashboard
	viewHistory
)

// Префиксы данных inline кнопок
const (
	callbackLanguage   = "lang"
	callbackDepartment = "dept"
	callbackShift      = "shift"
	callbackClear      = "clear"
	callbackInsight    = "insight"
	callbackHistory    = "history"

	clearConfirm = "confirm"
	clearCancel  = "cancel"
)

func callbackData(action, value string) string {
	if value == "" {
		return action
	}
	return action + ":" + value
}

func splitCallbackData(data string) (string, string) {
	action, value, _ := strings.Cut(data, ":")
	return action, value
}

// mainKeyboard - клавиатура выбора экрана
func mainKeyboard(tr *i18n.Translations) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📝 "+tr.NewEntry),
			tgbotapi.NewKeyboardButton("📊 "+tr.Dashboard),
			tgbotapi.NewKeyboardButton("🗂️ "+tr.History),
		),
	)
	keyboard.ResizeKeyboard = true
	return keyboard
}

// viewForButton определяет экран по тексту кнопки на любом из языков
func viewForButton(text string) (view, bool) {
	for _, lang := range i18n.Languages {
		tr := i18n.For(lang)
		switch text {
		case "📝 " + tr.NewEntry:
			return viewEntry, true
		case "📊 " + tr.Dashboard:
			return viewDashboard, true
		case "🗂️ " + tr.History:
			return viewHistory, true
		}
	}
	return 0, false
}

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(i18n.Languages))
	for _, lang := range i18n.Languages {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			strings.ToUpper(string(lang)),
			callbackData(callbackLanguage, string(lang)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func departmentKeyboard(tr *i18n.Translations) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(models.Departments))
	for _, d := range models.Departments {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(tr.DepartmentName(d), callbackData(callbackDepartment, string(d))),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func shiftKeyboard(tr *i18n.Translations) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(models.Shifts))
	for _, s := range models.Shifts {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(tr.ShiftName(s), callbackData(callbackShift, string(s))))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func confirmClearKeyboard(tr *i18n.Translations) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(tr.Yes, callbackData(callbackClear, clearConfirm)),
			tgbotapi.NewInlineKeyboardButtonData(tr.No, callbackData(callbackClear, clearCancel)),
		),
	)
}

// historyKeyboard - кнопки листания истории; nil, если страница одна
func historyKeyboard(page, pages int) *tgbotapi.InlineKeyboardMarkup {
	if pages <= 1 {
		return nil
	}

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if page > 1 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️", callbackData(callbackHistory, strconv.Itoa(page-1))))
	}
	if page < pages {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("▶️", callbackData(callbackHistory, strconv.Itoa(page+1))))
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(row)
	return &keyboard
}

func insightKeyboard(tr *i18n.Translations) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✨ "+tr.AIAnalysis, callbackData(callbackInsight, "")),
		),
	)
}

// parseDepartment принимает ключ отдела или его название на любом языке
func parseDepartment(s string) (models.Department, bool) {
	s = strings.TrimSpace(s)
	if d := models.Department(strings.ToLower(s)); d.IsValid() {
		return d, true
	}
	for _, lang := range i18n.Languages {
		for d, name := range i18n.For(lang).Departments {
			if strings.EqualFold(name, s) {
				return d, true
			}
		}
	}
	return "", false
}

// parseShift принимает ключ смены или ее название на любом языке
func parseShift(s string) (models.Shift, bool) {
	s = strings.TrimSpace(s)
	if sh := models.Shift(strings.ToLower(s)); sh.IsValid() {
		return sh, true
	}
	for _, lang := range i18n.Languages {
		for sh, name := range i18n.For(lang).Shifts {
			if strings.EqualFold(name, s) {
				return sh, true
			}
		}
	}
	return "", false
}
