package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	UploadsDir  string
	Port        string

	// NLP Configuration
	NLPProvider   string // "openai", "groq", "ollama", or "none"
	NLPModel      string // preferred (full) model, e.g. "gpt-4o"
	NLPLightModel string // fallback (lightweight) model, e.g. "gpt-4o-mini"
	NLPAPIKey     string // OpenAI or Groq API key

	// Retrieval-augmented extraction is attempted only when this key is present
	OpenAIAPIKey string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		log.Println("Attempting to load from parent directory...")
		err = godotenv.Load("../../.env")
		if err != nil {
			log.Println("Warning: Could not load .env file, using environment variables")
		}
	}

	// NLP configuration
	nlpProvider := os.Getenv("NLP_PROVIDER")
	if nlpProvider == "" {
		nlpProvider = "openai" // default
	}

	nlpModel := os.Getenv("NLP_MODEL")
	if nlpModel == "" {
		nlpModel = "gpt-4o" // default full model
	}

	nlpLightModel := os.Getenv("NLP_LIGHT_MODEL")
	if nlpLightModel == "" {
		nlpLightModel = "gpt-4o-mini" // default lightweight model
	}

	// Get API key based on provider
	nlpAPIKey := ""
	if nlpProvider == "openai" {
		nlpAPIKey = os.Getenv("OPENAI_API_KEY")
	} else if nlpProvider == "groq" {
		nlpAPIKey = os.Getenv("GROQ_API_KEY")
	}

	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = os.TempDir()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		UploadsDir:    uploadsDir,
		Port:          port,
		NLPProvider:   nlpProvider,
		NLPModel:      nlpModel,
		NLPLightModel: nlpLightModel,
		NLPAPIKey:     nlpAPIKey,
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
	}
}
