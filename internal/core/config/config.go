package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"3000"`

	// Line holds the LINE Messaging API credentials.
	Line LineConfig `mapstructure:",squash"`

	// AI holds the language-model configuration for FAQ answering.
	AI AIConfig `mapstructure:",squash"`

	// Tracking holds the upstream tracking API configuration.
	Tracking TrackingConfig `mapstructure:",squash"`

	// Knowledge holds the FAQ document and cache settings.
	Knowledge KnowledgeConfig `mapstructure:",squash"`

	// Intent holds classifier tuning knobs.
	Intent IntentConfig `mapstructure:",squash"`
}

// LineConfig holds the LINE channel credentials used by the webhook transport.
type LineConfig struct {
	// ChannelSecret validates webhook signatures.
	ChannelSecret string `mapstructure:"LINE_CHANNEL_SECRET" required:"true"`
	// ChannelAccessToken authorizes reply and push calls.
	ChannelAccessToken string `mapstructure:"LINE_CHANNEL_ACCESS_TOKEN" required:"true"`
}

// AIConfig holds the OpenAI connection details for the knowledge answerer.
type AIConfig struct {
	// APIKey is the OpenAI API key. May be empty when TestMode is on.
	APIKey string `mapstructure:"OPENAI_API_KEY"`
	// Model is the chat model used to answer FAQ questions.
	Model string `mapstructure:"OPENAI_MODEL" default:"gpt-4o-mini"`
	// TestMode swaps the OpenAI answerer for canned responses.
	TestMode bool `mapstructure:"TEST_MODE" default:"false"`
}

// TrackingConfig holds the upstream shipment-status API settings.
type TrackingConfig struct {
	// APIEnabled selects the live upstream; when false a deterministic
	// mock provider serves synthetic shipments.
	APIEnabled bool `mapstructure:"TRACKING_API_ENABLED" default:"false"`
	// APIEndpoint is the base URL of the tracking API.
	APIEndpoint string `mapstructure:"TRACKING_API_ENDPOINT" default:"https://api.mysave.cc/tracking"`
}

// KnowledgeConfig holds FAQ document settings.
type KnowledgeConfig struct {
	// FAQPath is the path to the FAQ markdown document.
	FAQPath string `mapstructure:"FAQ_FILE_PATH" default:"data/faq.md"`
	// RedisURL is the cache backend for FAQ content. Empty disables the
	// shared cache and the repository reads the file every time.
	RedisURL string `mapstructure:"REDIS_URL"`
}

// IntentConfig holds classifier tuning knobs.
type IntentConfig struct {
	// ConfidenceThreshold is advisory: it is logged with every
	// classification but does not gate routing.
	ConfidenceThreshold float64 `mapstructure:"INTENT_CONFIDENCE_THRESHOLD" default:"0.7"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	default:
		return v.IsZero()
	}
}
