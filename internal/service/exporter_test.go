package service_test

import (
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/models"
	"absence-tracker-bot/internal/service"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportCSV(t *testing.T) {
	tr := i18n.For(i18n.LanguageSpanish)

	t.Run("empty collection has only the header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, service.ExportCSV(&buf, nil, tr))

		assert.Equal(t, "\uFEFFFecha,Departamento,Turno,Personal Total,Ausencias,Tasa de Ausentismo\n", buf.String())
	})

	t.Run("rows follow collection order with localized names", func(t *testing.T) {
		records := []models.AbsenceRecord{
			record("2026-03-15", models.DepartmentQuality, models.ShiftNight, 3, 1),
			record("2026-03-14", models.DepartmentProduction, models.ShiftMorning, 20, 4),
		}

		var buf bytes.Buffer
		require.NoError(t, service.ExportCSV(&buf, records, tr))

		out := buf.String()
		require.True(t, strings.HasPrefix(out, "\uFEFF"))
		lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "\uFEFF"), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "2026-03-15,Calidad,Noche,3,1,33.33%", lines[1])
		assert.Equal(t, "2026-03-14,Producción,Mañana,20,4,20.00%", lines[2])
	})

	t.Run("labels follow the language", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, service.ExportCSV(&buf, nil, i18n.For(i18n.LanguageFrench)))
		assert.Contains(t, buf.String(), "Date,Département,Équipe,Effectif Total,Absences")
	})
}

func TestExportXLSX(t *testing.T) {
	tr := i18n.For(i18n.LanguageSpanish)
	records := []models.AbsenceRecord{
		record("2026-03-14", models.DepartmentLogistics, models.ShiftAfternoon, 8, 2),
	}

	data, err := service.ExportXLSX(records, tr)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Fecha", rows[0][0])
	assert.Equal(t, []string{"2026-03-14", "Logística", "Tarde", "8", "2", "25.00%"}, rows[1])
}

func TestReportFileName(t *testing.T) {
	now := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "absence_report_2026-10-16.csv", service.ReportFileName(now, "csv"))
	assert.Equal(t, "absence_report_2026-10-16.xlsx", service.ReportFileName(now, "xlsx"))
}
