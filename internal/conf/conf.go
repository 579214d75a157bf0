package conf

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents application configuration
type Config struct {
	// Graph Send API configuration
	Graph GraphConfig

	// OpenAI configuration
	OpenAI OpenAIConfig

	// Webhook configuration
	Webhook WebhookConfig

	// Salon business constants
	Salon SalonConfig

	// Prompts configuration (loaded from YAML)
	Prompts *PromptsConfig

	// Request timeout for the generation backend
	Timeout time.Duration

	// HTTP listen port
	Port int

	// Debug mode
	Debug bool
}

// GraphConfig contains Meta Graph API configuration
type GraphConfig struct {
	APIVersion  string
	AccessToken string // Page token connected to the IG professional account
}

// OpenAIConfig contains generation backend configuration
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Optional, for OpenAI-compatible backends
}

// WebhookConfig contains webhook verification configuration
type WebhookConfig struct {
	VerifyToken string
	AppSecret   string // Optional, enables signature verification
}

// SalonConfig contains the business constants used in the policy prompt
type SalonConfig struct {
	Name        string
	BookingLink string
	Address     string
	MapLink     string
	Hours       string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	port := 8000
	if val := os.Getenv("PORT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			port = parsed
		}
	}

	timeoutSecs := 16.0
	if val := os.Getenv("TIMEOUT_SECS"); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			timeoutSecs = parsed
		}
	}

	// Load prompts from YAML; an unparseable file must not leave the
	// process without a policy prompt
	promptsConfig, err := LoadPromptsConfig(os.Getenv("PROMPTS_CONFIG_PATH"))
	if err != nil {
		fmt.Printf("[Config] Failed to load prompts, using defaults: %v\n", err)
		promptsConfig = DefaultPromptsConfig()
	}

	return &Config{
		Graph: GraphConfig{
			APIVersion:  getenvDefault("GRAPH_API_VERSION", "v21.0"),
			AccessToken: os.Getenv("PAGE_ACCESS_TOKEN"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
		Webhook: WebhookConfig{
			VerifyToken: getenvDefault("VERIFY_TOKEN", "verify_me"),
			AppSecret:   os.Getenv("APP_SECRET"),
		},
		Salon: SalonConfig{
			Name:        getenvDefault("SALON_NAME", "Yelena Heal Aura Studio"),
			BookingLink: getenvDefault("BOOKING_LINK", "https://dikidi.net/946726?p=0.pi-po"),
			Address:     os.Getenv("SALON_ADDRESS"),
			MapLink:     os.Getenv("SALON_MAP_LINK"),
			Hours:       os.Getenv("SALON_HOURS"),
		},
		Prompts: promptsConfig,
		Timeout: time.Duration(timeoutSecs * float64(time.Second)),
		Port:    port,
		Debug:   os.Getenv("DEBUG") == "true",
	}
}

func getenvDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return &ConfigError{Field: "OPENAI_API_KEY", Message: "required"}
	}
	if c.Graph.AccessToken == "" {
		return &ConfigError{Field: "PAGE_ACCESS_TOKEN", Message: "required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
