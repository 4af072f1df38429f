package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the DIAL gateway settings for a demo run. It is populated once
// at process start and treated as immutable afterwards.
type Config struct {
	// DIAL gateway credentials and endpoint.
	DIALAPIKey     string
	DIALAPIURL     string
	DIALAPIVersion string

	// Model parameters forwarded to the gateway.
	ModelName   string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration

	// Azure-specific overrides. When set they take precedence over the DIAL
	// endpoint and API version during client construction.
	AzureEndpoint   string
	AzureAPIVersion string

	LogLevel  string
	LogFormat string

	SearchMaxResults int
}

const (
	defaultAPIVersion       = "2024-02-15-preview"
	defaultModelName        = "gpt-4"
	defaultTemperature      = 0.0
	defaultMaxTokens        = 1000
	defaultTimeoutSeconds   = 30
	defaultLogLevel         = "info"
	defaultLogFormat        = "text"
	defaultSearchMaxResults = 5
)

// Load loads configuration from environment variables.
func Load() (Config, error) {
	return LoadFromEnv(os.Getenv)
}

// LoadDotenv loads variables from the given .env file into the process
// environment. A missing file is not an error; the variables may already be
// set in the environment and LoadFromEnv reports what is actually absent.
func LoadDotenv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// LoadFromEnv loads configuration from a getenv-like function.
func LoadFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		DIALAPIKey:       strings.TrimSpace(getenv("DIAL_API_KEY")),
		DIALAPIURL:       strings.TrimSpace(getenv("DIAL_API_URL")),
		DIALAPIVersion:   getOrDefault(getenv, "DIAL_API_VERSION", defaultAPIVersion),
		ModelName:        getOrDefault(getenv, "MODEL_NAME", defaultModelName),
		Temperature:      getFloatOrDefault(getenv, "TEMPERATURE", defaultTemperature),
		MaxTokens:        getIntOrDefault(getenv, "MAX_TOKENS", defaultMaxTokens),
		Timeout:          time.Duration(getIntOrDefault(getenv, "TIMEOUT_SECONDS", defaultTimeoutSeconds)) * time.Second,
		AzureEndpoint:    strings.TrimSpace(getenv("AZURE_ENDPOINT")),
		AzureAPIVersion:  strings.TrimSpace(getenv("AZURE_API_VERSION")),
		LogLevel:         getOrDefault(getenv, "LOG_LEVEL", defaultLogLevel),
		LogFormat:        getOrDefault(getenv, "LOG_FORMAT", defaultLogFormat),
		SearchMaxResults: getIntOrDefault(getenv, "SEARCH_MAX_RESULTS", defaultSearchMaxResults),
	}

	// Template placeholders left in a copied .env count as unset.
	if isPlaceholder(cfg.DIALAPIKey) {
		cfg.DIALAPIKey = ""
	}
	if isPlaceholder(cfg.DIALAPIURL) {
		cfg.DIALAPIURL = ""
	}

	if cfg.DIALAPIKey == "" {
		return Config{}, errors.New("DIAL_API_KEY is required, set it in .env")
	}
	if cfg.DIALAPIURL == "" {
		return Config{}, errors.New("DIAL_API_URL is required, set it in .env")
	}
	return cfg, nil
}

// Endpoint returns the gateway endpoint, honoring the Azure override.
func (c Config) Endpoint() string {
	if c.AzureEndpoint != "" {
		return c.AzureEndpoint
	}
	return c.DIALAPIURL
}

// APIVersion returns the gateway API version, honoring the Azure override.
func (c Config) APIVersion() string {
	if c.AzureAPIVersion != "" {
		return c.AzureAPIVersion
	}
	return c.DIALAPIVersion
}

func isPlaceholder(value string) bool {
	return strings.HasPrefix(value, "your-") && strings.HasSuffix(value, "-here")
}

func getOrDefault(getenv func(string) string, key, def string) string {
	val := getenv(key)
	if val == "" {
		return def
	}
	return val
}

func getIntOrDefault(getenv func(string) string, key string, def int) int {
	val := getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return parsed
}

func getFloatOrDefault(getenv func(string) string, key string, def float64) float64 {
	val := getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return def
	}
	return parsed
}
