package main

import (
	"absence-tracker-bot/internal/config"
	"absence-tracker-bot/internal/handler"
	"absence-tracker-bot/internal/i18n"
	"absence-tracker-bot/internal/insight"
	"absence-tracker-bot/internal/repository"
	"absence-tracker-bot/internal/service"
	"absence-tracker-bot/pkg/telegram"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.SetLevel(cfg.LogLevel)
	logrus.Info("Config initialized...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем SQLite базу данных
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	// Хранилище коллекции записей под фиксированным ключом
	blobStorage, err := repository.NewGormBlobStorage(db, repository.RecordsStorageKey)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create records storage")
	}

	chatSettingsRepo, err := repository.NewGormChatSettingsRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create chat settings repository")
	}

	store := service.NewRecordStore(blobStorage, service.RealClock{}, service.UUIDGenerator{})
	store.SetLogLevel(cfg.LogLevel)
	store.Load()

	defaultLang, ok := i18n.ParseLanguage(cfg.DefaultLanguage)
	if !ok {
		logrus.Warnf("Unknown default language %q, using %q", cfg.DefaultLanguage, defaultLang)
	}
	chatSettingsService := service.NewChatSettingsService(chatSettingsRepo, defaultLang)

	// Генератор анализа: без ключа API запросы завершаются фиксированной ошибкой
	var generator insight.Generator = insight.DisabledGenerator{}
	gemini, err := insight.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logrus.WithError(err).Warn("AI insight is disabled")
	} else {
		generator = gemini
	}
	insights := insight.NewRequester(generator, cfg.InsightTimeout)
	insights.SetLogLevel(cfg.LogLevel)

	// Создаем клиент Telegram
	client, err := telegram.NewClient(cfg.TelegramToken, cfg.BotDebug)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		ctx,
		client.Bot,
		store,
		chatSettingsService,
		insights,
		service.RealClock{},
	)

	// Настраиваем канал обновлений
	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Запускаем обработку сообщений
	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	client.Bot.StopReceivingUpdates()
	cancel()

	// Закрываем соединение с БД
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
