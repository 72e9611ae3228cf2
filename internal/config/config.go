package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MatchWeights - веса эвристики подбора круга. Значения по умолчанию взяты
// из продуктовой настройки и не являются инвариантами.
type MatchWeights struct {
	SweetSpot       int     // 2-4 участника
	LonelyMember    int     // ровно один участник
	TagOverlap      int     // за каждый совпавший тег
	Facilitator     int     // в круге есть фасилитатор
	HelpfulnessMult float64 // множитель для averageHelpfulnessScore
}

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// Matching Config
	MatchWeights      MatchWeights
	MatchMaxRetries   int `env:"MATCH_MAX_RETRIES" envDefault:"3"`
	CircleMaxMembers  int `env:"CIRCLE_MAX_MEMBERS" envDefault:"5"`
	MatchCandidateCap int `env:"MATCH_CANDIDATE_CAP" envDefault:"5"`

	// Gemini Config (опциональное семантическое обогащение подбора)
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiModel   string        `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"3s"`

	// Realtime Config
	TypingTTL      time.Duration `env:"TYPING_TTL" envDefault:"3s"`
	MessageMaxLen  int           `env:"MESSAGE_MAX_LEN" envDefault:"2000"`
	ClientSendBuf  int           `env:"WS_CLIENT_SEND_BUF" envDefault:"64"`
	WriteWait      time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	PongWait       time.Duration `env:"WS_PONG_WAIT" envDefault:"60s"`
	AllowedOrigins []string      `env:"WS_ALLOWED_ORIGINS"`

	// Badge Webhook Config (уведомление коллаборатора о событиях для бейджей)
	BadgeWebhookURL     string        `env:"BADGE_WEBHOOK_URL"`
	BadgeWebhookSecret  string        `env:"BADGE_WEBHOOK_SECRET"`
	BadgeWebhookTimeout time.Duration `env:"BADGE_WEBHOOK_TIMEOUT" envDefault:"5s"`
	BadgeMaxRetries     int           `env:"BADGE_MAX_RETRIES" envDefault:"3"`
	BadgeBaseDelay      time.Duration `env:"BADGE_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBMaxConns:    int32(getEnvAsInt("DB_MAX_CONNS", 0)),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize: getEnvAsInt("REDIS_POOL_SIZE", 10),

		MatchWeights: MatchWeights{
			SweetSpot:       getEnvAsInt("MATCH_WEIGHT_SWEET_SPOT", 30),
			LonelyMember:    getEnvAsInt("MATCH_WEIGHT_LONELY", 20),
			TagOverlap:      getEnvAsInt("MATCH_WEIGHT_TAG", 10),
			Facilitator:     getEnvAsInt("MATCH_WEIGHT_FACILITATOR", 15),
			HelpfulnessMult: getEnvAsFloat("MATCH_WEIGHT_HELPFULNESS", 5),
		},
		MatchMaxRetries:   getEnvAsInt("MATCH_MAX_RETRIES", 3),
		CircleMaxMembers:  getEnvAsInt("CIRCLE_MAX_MEMBERS", 5),
		MatchCandidateCap: getEnvAsInt("MATCH_CANDIDATE_CAP", 5),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTimeout: getEnvAsDuration("GEMINI_TIMEOUT", 3*time.Second),

		TypingTTL:     getEnvAsDuration("TYPING_TTL", 3*time.Second),
		MessageMaxLen: getEnvAsInt("MESSAGE_MAX_LEN", 2000),
		ClientSendBuf: getEnvAsInt("WS_CLIENT_SEND_BUF", 64),
		WriteWait:     getEnvAsDuration("WS_WRITE_WAIT", 10*time.Second),
		PongWait:      getEnvAsDuration("WS_PONG_WAIT", 60*time.Second),

		BadgeWebhookURL:     os.Getenv("BADGE_WEBHOOK_URL"),
		BadgeWebhookSecret:  os.Getenv("BADGE_WEBHOOK_SECRET"),
		BadgeWebhookTimeout: getEnvAsDuration("BADGE_WEBHOOK_TIMEOUT", 5*time.Second),
		BadgeMaxRetries:     getEnvAsInt("BADGE_MAX_RETRIES", 3),
		BadgeBaseDelay:      getEnvAsDuration("BADGE_BASE_DELAY", time.Second),
	}

	cfg.AllowedOrigins = getEnvAsList("WS_ALLOWED_ORIGINS")
	cfg.APIKeys = getEnvAsList("API_KEYS")

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList возвращает значение переменной окружения как список строк, разделенных запятыми
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
