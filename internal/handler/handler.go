package handler

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/insight"
	"absence-tracker-bot/internal/service"
	"absence-tracker-bot/pkg/telegram"
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	ctx      context.Context
	sender   telegram.Sender
	store    *service.RecordStore
	settings *service.ChatSettingsService
	insights *insight.Requester
	clock    service.Clock
	drafts   map[int64]*entryDraft
}

func NewHandler(
	ctx context.Context,
	sender telegram.Sender,
	store *service.RecordStore,
	settings *service.ChatSettingsService,
	insights *insight.Requester,
	clock service.Clock,
) *Handler {
	return &Handler{
		ctx:      ctx,
		sender:   sender,
		store:    store,
		settings: settings,
		insights: insights,
		clock:    clock,
		drafts:   make(map[int64]*entryDraft),
	}
}

// HandleUpdates обрабатывает обновления до закрытия канала
func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		h.HandleUpdate(update)
	}
}

// HandleUpdate обрабатывает одно обновление
func (h *Handler) HandleUpdate(update tgbotapi.Update) {
	// Обработка callback query (для inline кнопок)
	if update.CallbackQuery != nil {
		h.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	h.handleMessage(update.Message)
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	username := ""
	if message.From != nil {
		username = message.From.UserName
	}
	logrus.Infof("[%s] %s", username, message.Text)

	chatID := message.Chat.ID

	// Обработка команд
	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	// Пользователь заполняет форму ввода
	if draft, exists := h.drafts[chatID]; exists {
		h.handleDraftInput(message, draft)
		return
	}

	// Кнопки основной клавиатуры
	switch view, ok := viewForButton(message.Text); {
	case ok && view == viewEntry:
		h.startEntry(message)
	case ok && view == viewDashboard:
		h.showDashboard(chatID, "")
	case ok && view == viewHistory:
		h.showHistory(chatID, 1)
	default:
		h.sendText(chatID, h.tr(chatID).UnknownCommand)
	}
}

// handleCallbackQuery обрабатывает inline кнопки
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	// Отвечаем на callback (убираем "часики" у кнопки)
	defer func() {
		if _, err := h.sender.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
			logrus.WithError(err).Debug("Failed to answer callback")
		}
	}()

	if callback.Message == nil {
		return
	}

	chatID := callback.Message.Chat.ID
	action, value := splitCallbackData(callback.Data)

	switch action {
	case callbackLanguage:
		h.removeInlineKeyboard(callback)
		h.applyLanguage(chatID, callback.From, value)
	case callbackDepartment, callbackShift:
		h.removeInlineKeyboard(callback)
		h.handleDraftChoice(chatID, action, value)
	case callbackClear:
		h.removeInlineKeyboard(callback)
		h.handleClearCallback(chatID, value)
	case callbackInsight:
		h.requestInsight(chatID)
	case callbackHistory:
		h.removeInlineKeyboard(callback)
		h.showHistory(chatID, parsePage(value))
	default:
		logrus.WithField("data", callback.Data).Warn("Unknown callback data")
	}
}

func (h *Handler) removeInlineKeyboard(callback *tgbotapi.CallbackQuery) {
	editMsg := tgbotapi.NewEditMessageReplyMarkup(
		callback.Message.Chat.ID,
		callback.Message.MessageID,
		tgbotapi.NewInlineKeyboardMarkup(),
	)
	if _, err := h.sender.Request(editMsg); err != nil {
		logrus.WithError(err).Debug("Failed to remove inline keyboard")
	}
}

// tr возвращает строки на языке чата
func (h *Handler) tr(chatID int64) *i18n.Translations {
	return i18n.For(h.settings.Language(chatID))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	// Для арабского текст начинается с RLM, чтобы клиент выравнивал его справа
	if msg, ok := c.(tgbotapi.MessageConfig); ok && h.settings.Language(msg.ChatID).IsRTL() {
		msg.Text = rtlMark + msg.Text
		c = msg
	}
	if _, err := h.sender.Send(c); err != nil {
		logrus.WithError(err).Error("Failed to send message")
	}
}

// rtlMark - U+200F RIGHT-TO-LEFT MARK
const rtlMark = "\u200f"

func (h *Handler) sendText(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}
