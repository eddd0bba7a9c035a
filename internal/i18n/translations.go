package i18n

import "absence-tracker-bot/internal/models"

var catalog = map[Language]*Translations{
	LanguageSpanish: {
		Title:            "Control de Ausentismo Industrial",
		Dashboard:        "Panel de Control",
		NewEntry:         "Nueva Entrada",
		History:          "Historial",
		Date:             "Fecha",
		Department:       "Departamento",
		Shift:            "Turno",
		TotalStaff:       "Personal Total",
		Absences:         "Ausencias",
		Save:             "Guardar Registro",
		Clear:            "Borrar Datos",
		Export:           "Exportar CSV",
		Delete:           "Eliminar",
		AbsenceRate:      "Tasa de Ausentismo",
		Summary:          "Resumen Diario",
		AvgShiftRate:     "Tasa Media por Turno",
		DeptDistribution: "Distribución por Depto.",
		AIAnalysis:       "Análisis Inteligente",
		NoData:           "No hay datos disponibles para el periodo seleccionado.",
		ConfirmClear:     "¿Estás seguro de que quieres borrar todos los datos del día?",

		Welcome: "👋 Bienvenido. Use el teclado para registrar ausencias, ver el panel o el historial.",
		Help: `📋 Comandos:
/new - nueva entrada (paso a paso)
/new AAAA-MM-DD departamento turno personal ausencias
/dashboard [all|today|AAAA-MM-DD|desde hasta]
/history - historial
/delete ID - eliminar registro
/clear - borrar todos los datos
/export - exportar CSV
/exportxlsx - exportar Excel
/insight - análisis inteligente
/lang es|fr|ar - idioma`,
		UnknownCommand:  "❌ Comando desconocido. Use /help.",
		ChooseLanguage:  "🌐 Elija el idioma:",
		LanguageChanged: "✅ Idioma cambiado.",
		AskDate:         "📅 Envíe la fecha (AAAA-MM-DD) o «today»:",
		AskDepartment:   "🏭 Elija el departamento:",
		AskShift:        "🕒 Elija el turno:",
		AskTotalStaff:   "👥 Envíe el personal total:",
		AskAbsences:     "🚫 Envíe el número de ausencias:",
		InvalidNumber:   "❌ Introduzca un número entero no negativo.",
		InvalidEntry:    "❌ Datos no válidos",
		EntryUsage:      "Formato: /new AAAA-MM-DD departamento turno personal ausencias",
		Saved:           "✅ Registro guardado.",
		SaveFailed:      "❌ No se pudo guardar",
		Deleted:         "🗑️ Registro eliminado.",
		NotFound:        "❓ Registro no encontrado.",
		DeleteUsage:     "Formato: /delete ID",
		Cleared:         "🗑️ Todos los datos han sido borrados.",
		Cancelled:       "❌ Cancelado.",
		Yes:             "✅ Sí",
		No:              "❌ No",
		Records:         "Registros",
		InsightLoading:  "⏳ Analizando datos...",
		InsightBusy:     "⏳ El análisis ya está en curso.",
		InsightEmpty:    "No hay datos para analizar.",
		ExportXLSX:      "Exportar Excel",
		PeriodAll:       "Todo el periodo",
		PeriodToday:     "Hoy",

		Departments: map[models.Department]string{
			models.DepartmentProduction:  "Producción",
			models.DepartmentLogistics:   "Logística",
			models.DepartmentMaintenance: "Mantenimiento",
			models.DepartmentQuality:     "Calidad",
		},
		Shifts: map[models.Shift]string{
			models.ShiftMorning:   "Mañana",
			models.ShiftAfternoon: "Tarde",
			models.ShiftNight:     "Noche",
		},
	},
	LanguageFrench: {
		Title:            "Contrôle d'Absentéisme Industriel",
		Dashboard:        "Tableau de Bord",
		NewEntry:         "Nouvelle Entrée",
		History:          "Historique",
		Date:             "Date",
		Department:       "Département",
		Shift:            "Équipe",
		TotalStaff:       "Effectif Total",
		Absences:         "Absences",
		Save:             "Enregistrer",
		Clear:            "Effacer",
		Export:           "Exporter CSV",
		Delete:           "Supprimer",
		AbsenceRate:      "Taux d'Absentéisme",
		Summary:          "Résumé Quotidien",
		AvgShiftRate:     "Taux Moyen par Équipe",
		DeptDistribution: "Distribution par Dépt.",
		AIAnalysis:       "Analyse IA",
		NoData:           "Aucune donnée disponible pour cette période.",
		ConfirmClear:     "Voulez-vous vraiment effacer toutes les données du jour?",

		Welcome: "👋 Bienvenue. Utilisez le clavier pour saisir les absences, voir le tableau de bord ou l'historique.",
		Help: `📋 Commandes:
/new - nouvelle entrée (pas à pas)
/new AAAA-MM-JJ département équipe effectif absences
/dashboard [all|today|AAAA-MM-JJ|début fin]
/history - historique
/delete ID - supprimer un enregistrement
/clear - effacer toutes les données
/export - exporter CSV
/exportxlsx - exporter Excel
/insight - analyse IA
/lang es|fr|ar - langue`,
		UnknownCommand:  "❌ Commande inconnue. Utilisez /help.",
		ChooseLanguage:  "🌐 Choisissez la langue:",
		LanguageChanged: "✅ Langue modifiée.",
		AskDate:         "📅 Envoyez la date (AAAA-MM-JJ) ou «today»:",
		AskDepartment:   "🏭 Choisissez le département:",
		AskShift:        "🕒 Choisissez l'équipe:",
		AskTotalStaff:   "👥 Envoyez l'effectif total:",
		AskAbsences:     "🚫 Envoyez le nombre d'absences:",
		InvalidNumber:   "❌ Saisissez un entier positif ou nul.",
		InvalidEntry:    "❌ Données invalides",
		EntryUsage:      "Format: /new AAAA-MM-JJ département équipe effectif absences",
		Saved:           "✅ Enregistrement sauvegardé.",
		SaveFailed:      "❌ Échec de l'enregistrement",
		Deleted:         "🗑️ Enregistrement supprimé.",
		NotFound:        "❓ Enregistrement introuvable.",
		DeleteUsage:     "Format: /delete ID",
		Cleared:         "🗑️ Toutes les données ont été effacées.",
		Cancelled:       "❌ Annulé.",
		Yes:             "✅ Oui",
		No:              "❌ Non",
		Records:         "Enregistrements",
		InsightLoading:  "⏳ Analyse en cours...",
		InsightBusy:     "⏳ Une analyse est déjà en cours.",
		InsightEmpty:    "Aucune donnée à analyser.",
		ExportXLSX:      "Exporter Excel",
		PeriodAll:       "Toute la période",
		PeriodToday:     "Aujourd'hui",

		Departments: map[models.Department]string{
			models.DepartmentProduction:  "Production",
			models.DepartmentLogistics:   "Logistique",
			models.DepartmentMaintenance: "Maintenance",
			models.DepartmentQuality:     "Qualité",
		},
		Shifts: map[models.Shift]string{
			models.ShiftMorning:   "Matin",
			models.ShiftAfternoon: "Après-midi",
			models.ShiftNight:     "Nuit",
		},
	},
	LanguageArabic: {
		Title:            "مراقب الغياب الصناعي",
		Dashboard:        "لوحة القيادة",
		NewEntry:         "إدخال جديد",
		History:          "السجل",
		Date:             "التاريخ",
		Department:       "القسم",
		Shift:            "الفوج",
		TotalStaff:       "إجمالي الموظفين",
		Absences:         "الغيابات",
		Save:             "حفظ السجل",
		Clear:            "مسح البيانات",
		Export:           "تصدير CSV",
		Delete:           "حذف",
		AbsenceRate:      "نسبة الغياب",
		Summary:          "الملخص اليومي",
		AvgShiftRate:     "متوسط النسبة حسب الفوج",
		DeptDistribution: "توزيع الغيابات حسب القسم",
		AIAnalysis:       "تحليل الذكاء الاصطناعي",
		NoData:           "لا توجد بيانات متاحة للفترة المختارة.",
		ConfirmClear:     "هل أنت متأكد من مسح جميع بيانات اليوم؟",

		Welcome: "👋 مرحبا. استخدم لوحة المفاتيح لتسجيل الغيابات أو عرض لوحة القيادة أو السجل.",
		Help: `📋 الأوامر:
/new - إدخال جديد (خطوة بخطوة)
/new YYYY-MM-DD القسم الفوج الموظفين الغيابات
/dashboard [all|today|YYYY-MM-DD|من إلى]
/history - السجل
/delete ID - حذف سجل
/clear - مسح جميع البيانات
/export - تصدير CSV
/exportxlsx - تصدير Excel
/insight - تحليل الذكاء الاصطناعي
/lang es|fr|ar - اللغة`,
		UnknownCommand:  "❌ أمر غير معروف. استخدم /help.",
		ChooseLanguage:  "🌐 اختر اللغة:",
		LanguageChanged: "✅ تم تغيير اللغة.",
		AskDate:         "📅 أرسل التاريخ (YYYY-MM-DD) أو «today»:",
		AskDepartment:   "🏭 اختر القسم:",
		AskShift:        "🕒 اختر الفوج:",
		AskTotalStaff:   "👥 أرسل إجمالي الموظفين:",
		AskAbsences:     "🚫 أرسل عدد الغيابات:",
		InvalidNumber:   "❌ أدخل عددا صحيحا غير سالب.",
		InvalidEntry:    "❌ بيانات غير صالحة",
		EntryUsage:      "الصيغة: /new YYYY-MM-DD القسم الفوج الموظفين الغيابات",
		Saved:           "✅ تم حفظ السجل.",
		SaveFailed:      "❌ تعذر الحفظ",
		Deleted:         "🗑️ تم حذف السجل.",
		NotFound:        "❓ السجل غير موجود.",
		DeleteUsage:     "الصيغة: /delete ID",
		Cleared:         "🗑️ تم مسح جميع البيانات.",
		Cancelled:       "❌ تم الإلغاء.",
		Yes:             "✅ نعم",
		No:              "❌ لا",
		Records:         "السجلات",
		InsightLoading:  "⏳ جار تحليل البيانات...",
		InsightBusy:     "⏳ التحليل قيد التنفيذ بالفعل.",
		InsightEmpty:    "لا توجد بيانات للتحليل.",
		ExportXLSX:      "تصدير Excel",
		PeriodAll:       "كل الفترة",
		PeriodToday:     "اليوم",

		Departments: map[models.Department]string{
			models.DepartmentProduction:  "الإنتاج",
			models.DepartmentLogistics:   "اللوجستيك",
			models.DepartmentMaintenance: "الصيانة",
			models.DepartmentQuality:     "الجودة",
		},
		Shifts: map[models.Shift]string{
			models.ShiftMorning:   "الصباح",
			models.ShiftAfternoon: "المساء",
			models.ShiftNight:     "الليل",
		},
	},
}
