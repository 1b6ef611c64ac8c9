package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Keys  APIKeys
	Ai    AIConfig
	Data  DataConfig
	Voice VoiceConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type APIKeys struct {
	Groq string
}

type AIConfig struct {
	Provider     string // "groq"
	Model        string // e.g. "llama-3.3-70b-versatile"
	BaseURL      string // override for tests / proxies
	MaxRetries   int
	Temperatures map[string]float64 // per generation role
}

type DataConfig struct {
	RubricsDir    string
	ExemplarsFile string
	QuestionsFile string
	PersonasDir   string
	DefaultRubric string
	Pageant       string
}

type VoiceConfig struct {
	STTModel string
	TTSModel string
	TTSVoice string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Keys: APIKeys{
			Groq: getEnv("GROQ_API_KEY", ""),
		},
		Ai: AIConfig{
			Provider:   getEnv("LLM_PROVIDER", "groq"),
			Model:      getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
			BaseURL:    getEnv("LLM_BASE_URL", ""),
			MaxRetries: getEnvAsInt("LLM_MAX_RETRIES", 3),
			// Scoring stays near-deterministic, showcase output runs hotter
			Temperatures: map[string]float64{
				"question_analysis": getEnvAsFloat("TEMP_QUESTION_ANALYSIS", 0.2),
				"drafting":          getEnvAsFloat("TEMP_DRAFTING", 0.7),
				"critic":            getEnvAsFloat("TEMP_CRITIC", 0.1),
				"rewrite":           getEnvAsFloat("TEMP_REWRITE", 0.6),
				"exemplar":          getEnvAsFloat("TEMP_EXEMPLAR", 0.75),
			},
		},
		Data: DataConfig{
			RubricsDir:    getEnv("RUBRICS_DIR", "data/rubrics"),
			ExemplarsFile: getEnv("EXEMPLARS_FILE", "data/exemplars/exemplar_library.json"),
			QuestionsFile: getEnv("QUESTIONS_FILE", "data/questions/question_bank.json"),
			PersonasDir:   getEnv("PERSONAS_DIR", "data/personas"),
			DefaultRubric: getEnv("DEFAULT_RUBRIC", "miss_universe"),
			Pageant:       getEnv("DEFAULT_PAGEANT", "Miss Universe"),
		},
		Voice: VoiceConfig{
			STTModel: getEnv("STT_MODEL", "whisper-large-v3-turbo"),
			TTSModel: getEnv("TTS_MODEL", "canopylabs/orpheus-v1-english"),
			TTSVoice: getEnv("TTS_VOICE", "hannah"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
