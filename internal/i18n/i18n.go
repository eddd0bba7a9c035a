// Package i18n содержит типизированные таблицы строк для поддерживаемых языков.
package i18n

import (
	"fmt"
	"reflect"
	"strings"

	"absence-tracker-bot/internal/models"
)

// Language - поддерживаемый язык интерфейса
type Language string

const (
	LanguageSpanish Language = "es"
	LanguageFrench  Language = "fr"
	LanguageArabic  Language = "ar"
)

// DefaultLanguage используется для новых чатов и неизвестных кодов
const DefaultLanguage = LanguageSpanish

// Languages - все языки в порядке отображения в селекторе
var Languages = []Language{LanguageSpanish, LanguageFrench, LanguageArabic}

// ParseLanguage разбирает код языка (регистр не важен)
func ParseLanguage(code string) (Language, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	for _, known := range Languages {
		if lang == known {
			return lang, true
		}
	}
	return DefaultLanguage, false
}

// IsRTL сообщает, пишется ли язык справа налево
func (l Language) IsRTL() bool {
	return l == LanguageArabic
}

// PromptName - название языка для инструкции внешнему сервису анализа
func (l Language) PromptName() string {
	switch l {
	case LanguageFrench:
		return "French"
	case LanguageArabic:
		return "Arabic"
	default:
		return "Spanish"
	}
}

// Translations - полный набор подписей одного языка.
// Все строковые поля обязательны, см. Validate.
type Translations struct {
	Title            string
	Dashboard        string
	NewEntry         string
	History          string
	Date             string
	Department       string
	Shift            string
	TotalStaff       string
	Absences         string
	Save             string
	Clear            string
	Export           string
	Delete           string
	AbsenceRate      string
	Summary          string
	AvgShiftRate     string
	DeptDistribution string
	AIAnalysis       string
	NoData           string
	ConfirmClear     string

	Welcome         string
	Help            string
	UnknownCommand  string
	ChooseLanguage  string
	LanguageChanged string
	AskDate         string
	AskDepartment   string
	AskShift        string
	AskTotalStaff   string
	AskAbsences     string
	InvalidNumber   string
	InvalidEntry    string
	EntryUsage      string
	Saved           string
	SaveFailed      string
	Deleted         string
	NotFound        string
	DeleteUsage     string
	Cleared         string
	Cancelled       string
	Yes             string
	No              string
	Records         string
	InsightLoading  string
	InsightBusy     string
	InsightEmpty    string
	ExportXLSX      string
	PeriodAll       string
	PeriodToday     string

	Departments map[models.Department]string
	Shifts      map[models.Shift]string
}

// DepartmentName возвращает локализованное название отдела
func (t *Translations) DepartmentName(d models.Department) string {
	if name, ok := t.Departments[d]; ok {
		return name
	}
	return string(d)
}

// ShiftName возвращает локализованное название смены
func (t *Translations) ShiftName(s models.Shift) string {
	if name, ok := t.Shifts[s]; ok {
		return name
	}
	return string(s)
}

// For возвращает таблицу строк для языка, для неизвестного - таблицу по умолчанию
func For(lang Language) *Translations {
	if t, ok := catalog[lang]; ok {
		return t
	}
	return catalog[DefaultLanguage]
}

// Validate проверяет, что каждый язык содержит все подписи,
// все отделы и все смены.
func Validate() error {
	for _, lang := range Languages {
		t, ok := catalog[lang]
		if !ok {
			return fmt.Errorf("language %q has no translations", lang)
		}

		v := reflect.ValueOf(*t)
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i)
			if field.Type.Kind() != reflect.String {
				continue
			}
			if v.Field(i).String() == "" {
				return fmt.Errorf("language %q: missing label %s", lang, field.Name)
			}
		}

		for _, d := range models.Departments {
			if t.Departments[d] == "" {
				return fmt.Errorf("language %q: missing department %s", lang, d)
			}
		}
		for _, s := range models.Shifts {
			if t.Shifts[s] == "" {
				return fmt.Errorf("language %q: missing shift %s", lang, s)
			}
		}
	}
	return nil
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}
