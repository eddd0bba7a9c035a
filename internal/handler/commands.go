package handler

import (
	"absence-tracker-bot/internal/i18n"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()
	chatID := message.Chat.ID

	// Любая команда прерывает незавершенную форму ввода
	if command != "new" {
		delete(h.drafts, chatID)
	}

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)
	case "lang", "language":
		h.changeLanguage(message, args)

	// Экран ввода
	case "new", "add":
		h.newEntry(message, args)
	case "cancel":
		h.sendText(chatID, h.tr(chatID).Cancelled)

	// Панель и история
	case "dashboard", "stats":
		h.showDashboard(chatID, args)
	case "history":
		h.showHistory(chatID, parsePage(args))
	case "delete":
		h.deleteRecord(message, args)
	case "clear":
		h.confirmClear(message)

	// Выгрузка и анализ
	case "export":
		h.exportCSV(chatID)
	case "exportxlsx":
		h.exportXLSX(chatID)
	case "insight", "ai":
		h.requestInsight(chatID)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	tr := h.tr(message.Chat.ID)

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏭 "+tr.Title+"\n\n"+tr.Welcome)
	msg.ReplyMarkup = mainKeyboard(tr)
	h.send(msg)
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	tr := h.tr(message.Chat.ID)

	msg := tgbotapi.NewMessage(message.Chat.ID, tr.Help)
	msg.ReplyMarkup = mainKeyboard(tr)
	h.send(msg)
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.sendText(message.Chat.ID, h.tr(message.Chat.ID).UnknownCommand)
}

// changeLanguage меняет язык чата или показывает селектор языка
func (h *Handler) changeLanguage(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if args == "" {
		msg := tgbotapi.NewMessage(chatID, h.tr(chatID).ChooseLanguage)
		msg.ReplyMarkup = languageKeyboard()
		h.send(msg)
		return
	}

	h.applyLanguage(chatID, message.From, args)
}

func (h *Handler) applyLanguage(chatID int64, from *tgbotapi.User, code string) {
	lang, ok := i18n.ParseLanguage(code)
	if !ok {
		msg := tgbotapi.NewMessage(chatID, h.tr(chatID).ChooseLanguage)
		msg.ReplyMarkup = languageKeyboard()
		h.send(msg)
		return
	}

	username := ""
	if from != nil {
		username = from.UserName
	}

	if err := h.settings.SetLanguage(chatID, username, lang); err != nil {
		logrus.WithError(err).Error("Failed to change language")
		h.sendText(chatID, h.tr(chatID).SaveFailed)
		return
	}

	tr := i18n.For(lang)
	msg := tgbotapi.NewMessage(chatID, tr.LanguageChanged)
	msg.ReplyMarkup = mainKeyboard(tr)
	h.send(msg)
}
