package service_test

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/models"
	"absence-tracker-bot/internal/service"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDashboard(t *testing.T) {
	tr := i18n.For(i18n.LanguageFrench)

	t.Run("empty shows no data", func(t *testing.T) {
		text := service.FormatDashboard(service.Aggregate(nil, nil), tr, tr.PeriodAll)
		assert.Contains(t, text, tr.NoData)
	})

	t.Run("shows metrics and no-data shifts", func(t *testing.T) {
		records := []models.AbsenceRecord{
			record("2026-03-14", models.DepartmentProduction, models.ShiftMorning, 20, 4),
			record("2026-03-14", models.DepartmentLogistics, models.ShiftNight, 10, 0),
		}
		text := service.FormatDashboard(service.Aggregate(records, nil), tr, "2026-03-14")

		assert.Contains(t, text, "13.33%")
		assert.Contains(t, text, "Matin: 20.00%")
		assert.Contains(t, text, "Après-midi: —")
		assert.Contains(t, text, "Production: 4 (100.00%)")
	})
}

func TestFormatHistory(t *testing.T) {
	tr := i18n.For(i18n.LanguageSpanish)
	records := []models.AbsenceRecord{
		record("2026-03-14", models.DepartmentQuality, models.ShiftNight, 4, 1),
	}
	records[0].ID = "abc"

	text := service.FormatHistory(records, tr, 1)
	assert.Contains(t, text, "Calidad")
	assert.Contains(t, text, "/delete abc")
	assert.Contains(t, text, "25.00%")

	assert.Contains(t, service.FormatHistory(nil, tr, 1), tr.NoData)
}

func TestFormatHistory_Pages(t *testing.T) {
	tr := i18n.For(i18n.LanguageSpanish)

	records := make([]models.AbsenceRecord, 0, 45)
	for i := range 45 {
		r := record("2026-03-14", models.DepartmentProduction, models.ShiftMorning, 10, 1)
		r.ID = fmt.Sprintf("rec-%d", i)
		records = append(records, r)
	}

	assert.Equal(t, 1, service.HistoryPages(0))
	assert.Equal(t, 1, service.HistoryPages(service.HistoryPageSize))
	assert.Equal(t, 3, service.HistoryPages(len(records)))

	var all strings.Builder
	for page := 1; page <= 3; page++ {
		text := service.FormatHistory(records, tr, page)
		assert.Contains(t, text, fmt.Sprintf("%d/3", page))
		assert.Less(t, len([]rune(text)), 4096)
		all.WriteString(text)
	}
	for _, r := range records {
		assert.Contains(t, all.String(), "/delete "+r.ID+"\n")
	}

	t.Run("out of range is clamped", func(t *testing.T) {
		assert.Equal(t, service.FormatHistory(records, tr, 3), service.FormatHistory(records, tr, 99))
		assert.Equal(t, service.FormatHistory(records, tr, 1), service.FormatHistory(records, tr, 0))
	})
}
