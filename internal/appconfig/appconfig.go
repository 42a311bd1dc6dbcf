// internal/appconfig/appconfig.go
// Package appconfig defines the localingo configuration and its defaults.
package appconfig

import (
	"strings"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultHost is the local Ollama endpoint used when no host is configured.
	DefaultHost = "http://localhost:11434"
	// DefaultModel is the generation model used when no model is configured.
	DefaultModel = "gemma2:2b"
	// defaultLogFile is used when the config omits logFile.
	defaultLogFile = "localingo.log"
)

// Config represents the top-level application configuration.
type Config struct {
	Host              string     `json:"host" mapstructure:"host"`
	Model             string     `json:"model" mapstructure:"model"`
	Debug             bool       `json:"debug" mapstructure:"debug"`
	LogFile           string     `json:"logFile,omitempty" mapstructure:"logFile"`
	ParameterTemplate string     `json:"parameterTemplate,omitempty" mapstructure:"parameterTemplate"`
	Parameters        Parameters `json:"parameters" mapstructure:"parameters"`
	ConfigPath        string     `json:"-" mapstructure:"-"`
}

// Parameters defines the optional sampling options forwarded to the model.
// Unset fields are not sent.
type Parameters struct {
	Temperature      *float64 `json:"temperature,omitempty" mapstructure:"temperature"`
	TopK             *int     `json:"top_k,omitempty" mapstructure:"top_k"`
	TopP             *float64 `json:"top_p,omitempty" mapstructure:"top_p"`
	MinP             *float64 `json:"min_p,omitempty" mapstructure:"min_p"`
	RepeatLastN      *int     `json:"repeat_last_n,omitempty" mapstructure:"repeat_last_n"`
	RepeatPenalty    *float64 `json:"repeat_penalty,omitempty" mapstructure:"repeat_penalty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty" mapstructure:"presence_penalty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty" mapstructure:"frequency_penalty"`
	Seed             *int     `json:"seed,omitempty" mapstructure:"seed"`
}

// Defaults returns the configuration used when neither a file nor flags say otherwise.
func Defaults() Config {
	return Config{
		Host:    DefaultHost,
		Model:   DefaultModel,
		LogFile: defaultLogFile,
	}
}

// HostURL returns the configured host without a trailing slash, falling back to DefaultHost.
func (c Config) HostURL() string {
	host := strings.TrimSpace(c.Host)
	if host == "" {
		return DefaultHost
	}
	return strings.TrimRight(host, "/")
}

// ModelName returns the configured model, falling back to DefaultModel.
func (c Config) ModelName() string {
	if model := strings.TrimSpace(c.Model); model != "" {
		return model
	}
	return DefaultModel
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return defaultLogFile
}

// Options converts the configured parameters to the Ollama "options" object.
// It returns nil when nothing is set so the request carries no options at all.
func (p Parameters) Options() map[string]any {
	options := map[string]any{}
	if p.Temperature != nil {
		options["temperature"] = *p.Temperature
	}
	if p.TopK != nil {
		options["top_k"] = *p.TopK
	}
	if p.TopP != nil {
		options["top_p"] = *p.TopP
	}
	if p.MinP != nil {
		options["min_p"] = *p.MinP
	}
	if p.RepeatLastN != nil {
		options["repeat_last_n"] = *p.RepeatLastN
	}
	if p.RepeatPenalty != nil {
		options["repeat_penalty"] = *p.RepeatPenalty
	}
	if p.PresencePenalty != nil {
		options["presence_penalty"] = *p.PresencePenalty
	}
	if p.FrequencyPenalty != nil {
		options["frequency_penalty"] = *p.FrequencyPenalty
	}
	if p.Seed != nil {
		options["seed"] = *p.Seed
	}
	if len(options) == 0 {
		return nil
	}
	return options
}
