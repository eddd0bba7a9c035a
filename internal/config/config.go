package config

import (
	"errors"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type BotConfig struct {
	TelegramToken   string
	BotDebug        bool
	DatabaseURL     string
	GeminiAPIKey    string
	GeminiModel     string
	InsightTimeout  time.Duration
	DefaultLanguage string
	LogLevel        logrus.Level
}

var instance *BotConfig
var once sync.Once

// GetBotConfig загружает конфиг из окружения (и .env, если он есть) один раз
func GetBotConfig() *BotConfig {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			logrus.Infof("no .env file loaded: %s", err.Error())
		}

		cfg, err := Load(os.LookupEnv)
		if err != nil {
			logrus.Fatal(err)
		}
		instance = cfg
	})

	return instance
}

// Load собирает конфиг из функции поиска переменных окружения
func Load(lookup func(string) (string, bool)) (*BotConfig, error) {
	cfg := &BotConfig{}

	cfg.TelegramToken = getEnv(lookup, "TELEGRAM_BOT_TOKEN", "")
	if cfg.TelegramToken == "" {
		return nil, errors.New("could not get bot token")
	}

	cfg.BotDebug = getEnvAsBool(lookup, "BOT_DEBUG", false)

	cfg.DatabaseURL = getEnv(lookup, "DATABASE_URL", "absence.db")
	if cfg.DatabaseURL == "" {
		return nil, errors.New("could not get db url")
	}

	cfg.GeminiAPIKey = getEnv(lookup, "GEMINI_API_KEY", "")
	cfg.GeminiModel = getEnv(lookup, "GEMINI_MODEL", "")
	cfg.InsightTimeout = time.Duration(getEnvAsInt(lookup, "INSIGHT_TIMEOUT_SECONDS", 60)) * time.Second
	cfg.DefaultLanguage = getEnv(lookup, "DEFAULT_LANGUAGE", "es")

	level, err := logrus.ParseLevel(getEnv(lookup, "LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

func getEnv(lookup func(string) (string, bool), key string, defaultVal string) string {
	if value, exists := lookup(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(lookup func(string) (string, bool), name string, defaultVal bool) bool {
	valStr := getEnv(lookup, name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(lookup func(string) (string, bool), name string, defaultVal int64) int64 {
	valStr := getEnv(lookup, name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
