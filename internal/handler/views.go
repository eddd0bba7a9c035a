package handler

import (
	"absence-tracker-bot/internal/insight"
	"absence-tracker-bot/internal/service"
	"bytes"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// showDashboard показывает статистику. args: пусто или all - все записи,
// today или дата - один день, две даты - диапазон.
func (h *Handler) showDashboard(chatID int64, args string) {
	tr := h.tr(chatID)

	filter, period, err := h.parsePeriod(args)
	if err != nil {
		h.sendText(chatID, tr.InvalidEntry+": "+err.Error())
		return
	}
	if period == "" {
		period = tr.PeriodAll
	}

	records := h.store.Records()
	stats := service.Aggregate(records, filter)
	text := service.FormatDashboard(stats, tr, period)

	state := h.insights.State()
	switch state.Status {
	case insight.StatusLoading:
		text += "\n\n" + tr.InsightLoading
	case insight.StatusReady, insight.StatusFailed:
		text += "\n\n✨ " + tr.AIAnalysis + "\n" + state.Text
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if len(records) > 0 {
		msg.ReplyMarkup = insightKeyboard(tr)
	}
	h.send(msg)
}

func (h *Handler) parsePeriod(args string) (service.Filter, string, error) {
	parts := strings.Fields(args)

	switch {
	case len(parts) == 0 || (len(parts) == 1 && strings.EqualFold(parts[0], "all")):
		return service.AllDates(), "", nil

	case len(parts) == 1:
		date, err := h.parseDate(parts[0])
		if err != nil {
			return nil, "", err
		}
		return service.OnDate(date), date, nil

	default:
		from, err := h.parseDate(parts[0])
		if err != nil {
			return nil, "", err
		}
		to, err := h.parseDate(parts[1])
		if err != nil {
			return nil, "", err
		}
		return service.Between(from, to), from + " — " + to, nil
	}
}

// showHistory показывает страницу списка записей (новые первыми)
func (h *Handler) showHistory(chatID int64, page int) {
	tr := h.tr(chatID)
	records := h.store.Records()

	pages := service.HistoryPages(len(records))
	page = min(max(page, 1), pages)

	msg := tgbotapi.NewMessage(chatID, service.FormatHistory(records, tr, page))
	if keyboard := historyKeyboard(page, pages); keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	h.send(msg)
}

// parsePage разбирает номер страницы; пустое или неверное значение - первая страница
func parsePage(s string) int {
	page, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// deleteRecord удаляет запись по id
func (h *Handler) deleteRecord(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	tr := h.tr(chatID)

	id := strings.TrimSpace(args)
	if id == "" {
		h.sendText(chatID, tr.DeleteUsage)
		return
	}

	if _, ok := h.store.Get(id); !ok {
		h.sendText(chatID, tr.NotFound)
		return
	}

	if err := h.store.Delete(id); err != nil {
		logrus.WithError(err).WithField("id", id).Error("Failed to delete record")
		h.sendText(chatID, tr.SaveFailed+": "+err.Error())
		return
	}

	h.sendText(chatID, tr.Deleted)
}

// confirmClear запрашивает подтверждение удаления всех записей
func (h *Handler) confirmClear(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	tr := h.tr(chatID)

	msg := tgbotapi.NewMessage(chatID, "⚠️ "+tr.ConfirmClear)
	msg.ReplyMarkup = confirmClearKeyboard(tr)
	h.send(msg)
}

func (h *Handler) handleClearCallback(chatID int64, value string) {
	tr := h.tr(chatID)

	if value != clearConfirm {
		h.sendText(chatID, tr.Cancelled)
		return
	}

	if err := h.store.Clear(); err != nil {
		logrus.WithError(err).Error("Failed to clear records")
		h.sendText(chatID, tr.SaveFailed+": "+err.Error())
		return
	}
	h.insights.Reset()

	h.sendText(chatID, tr.Cleared)
}

// exportCSV отправляет всю коллекцию файлом CSV
func (h *Handler) exportCSV(chatID int64) {
	tr := h.tr(chatID)

	var buf bytes.Buffer
	if err := service.ExportCSV(&buf, h.store.Records(), tr); err != nil {
		logrus.WithError(err).Error("Failed to export CSV")
		h.sendText(chatID, tr.SaveFailed+": "+err.Error())
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  service.ReportFileName(h.clock.Now().UTC(), "csv"),
		Bytes: buf.Bytes(),
	})
	doc.Caption = tr.Export
	h.send(doc)
}

// exportXLSX отправляет всю коллекцию книгой Excel
func (h *Handler) exportXLSX(chatID int64) {
	tr := h.tr(chatID)

	data, err := service.ExportXLSX(h.store.Records(), tr)
	if err != nil {
		logrus.WithError(err).Error("Failed to export XLSX")
		h.sendText(chatID, tr.SaveFailed+": "+err.Error())
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  service.ReportFileName(h.clock.Now().UTC(), "xlsx"),
		Bytes: data,
	})
	doc.Caption = tr.ExportXLSX
	h.send(doc)
}

// requestInsight запускает анализ; результат придет отдельным сообщением
func (h *Handler) requestInsight(chatID int64) {
	lang := h.settings.Language(chatID)
	tr := h.tr(chatID)

	outcome := h.insights.Request(h.ctx, h.store.Records(), lang, func(state insight.State) {
		h.sendText(chatID, "✨ "+tr.AIAnalysis+"\n\n"+state.Text)
	})

	switch outcome {
	case insight.Started:
		h.sendText(chatID, tr.InsightLoading)
	case insight.Busy:
		h.sendText(chatID, tr.InsightBusy)
	case insight.NoData:
		h.sendText(chatID, tr.InsightEmpty)
	}
}
