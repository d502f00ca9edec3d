package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// OpenAI provider settings. Model, voice and base URL are fixed
	// configuration; requests never override them.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	ChatModel     string
	TTSModel      string
	TTSVoice      string

	// MySQLDSN switches persistence from the local sqlite file to MySQL.
	MySQLDSN string

	AppEnv       string
	IsProduction bool

	JWTSecret string
	Port      string

	// runtime tunables
	RateLimitWindowSeconds int
	RateLimitCapacity      int
)

// loadAppEnv loads .env for non-production environments. Production reads
// from the host environment only.
func loadAppEnv() {
	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "production" {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}
	AppEnv = os.Getenv("APP_ENV")
}

func init() {
	loadAppEnv()

	IsProduction = AppEnv == "production"

	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
	if OpenAIBaseURL == "" {
		OpenAIBaseURL = "https://api.openai.com/v1"
	}
	ChatModel = os.Getenv("CHAT_MODEL")
	if ChatModel == "" {
		ChatModel = "gpt-4-turbo"
	}
	TTSModel = os.Getenv("TTS_MODEL")
	if TTSModel == "" {
		TTSModel = "tts-1"
	}
	TTSVoice = os.Getenv("TTS_VOICE")
	if TTSVoice == "" {
		TTSVoice = "alloy"
	}

	MySQLDSN = os.Getenv("MYSQL_DSN")

	JWTSecret = os.Getenv("JWT_SECRET_KEY")
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	// Tunables with defaults
	RateLimitWindowSeconds = atoiOr(os.Getenv("RATE_LIMIT_WINDOW_SECONDS"), 10)
	RateLimitCapacity = atoiOr(os.Getenv("RATE_LIMIT_CAPACITY"), 5)

	// production without a signing key cannot issue sessions
	if IsProduction && JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY must be set in production")
	}

	log.Printf("[config] AppEnv=%s IsProduction=%v", AppEnv, IsProduction)
	log.Printf("[config] OpenAIKeyPresent=%v ChatModel=%s TTSModel=%s TTSVoice=%s", OpenAIAPIKey != "", ChatModel, TTSModel, TTSVoice)
	log.Printf("[config] RateLimit window=%ds capacity=%d", RateLimitWindowSeconds, RateLimitCapacity)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
