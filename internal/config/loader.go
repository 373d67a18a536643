package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envVarPattern matches ${VAR_NAME} patterns in strings.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnvVars replaces ${VAR} patterns with environment variable values.
// Unset variables are left unchanged.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

// expandSensitiveFields processes environment variable references in
// credential fields so the service token can be stored as ${ENV_VAR}.
func expandSensitiveFields(cfg *Config) {
	cfg.Service.Token = expandEnvVars(cfg.Service.Token)
}

// Load reads the config file, applies environment overrides, and returns
// a merged Config. Missing files produce defaults only.
func Load(path string) (Config, error) {
	cfg := Defaults()

	// A .env in the working directory supplements the process environment.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			expandSensitiveFields(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ConfigError{Message: "failed to parse config: " + err.Error()}
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	expandSensitiveFields(&cfg)
	return cfg, nil
}

// LoadRaw reads the config file into a generic map for path-based access.
func LoadRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Message: "failed to parse config: " + err.Error()}
	}
	return raw, nil
}

// SaveRaw writes a generic map back to a YAML config file.
func SaveRaw(path string, raw map[string]any) error {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// applyDefaults fills zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	def := Defaults()
	if cfg.Service.BaseURL == "" {
		cfg.Service.BaseURL = def.Service.BaseURL
	}
	if cfg.Service.Origin == "" {
		cfg.Service.Origin = def.Service.Origin
	}
	if cfg.Service.UserAgent == "" {
		cfg.Service.UserAgent = def.Service.UserAgent
	}
	if cfg.Service.BotAgent == "" {
		cfg.Service.BotAgent = def.Service.BotAgent
	}
	if cfg.Service.BotID == "" {
		cfg.Service.BotID = def.Service.BotID
	}
	if cfg.Service.Locale == "" {
		cfg.Service.Locale = def.Service.Locale
	}
	if cfg.Service.Timezone == "" {
		cfg.Service.Timezone = def.Service.Timezone
	}
	if cfg.Chat.BackLabel == "" {
		cfg.Chat.BackLabel = def.Chat.BackLabel
	}
	if cfg.Chat.QuitLabel == "" {
		cfg.Chat.QuitLabel = def.Chat.QuitLabel
	}
	// KeepaliveSeconds is deliberately not re-defaulted: unmarshal starts
	// from Defaults(), so an absent key keeps 20 while an explicit 0 turns
	// keepalive off.
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}

// applyEnvOverrides reads BOTLINE_* environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BOTLINE_BASE_URL"); v != "" {
		cfg.Service.BaseURL = v
	}
	if v := os.Getenv("BOTLINE_TOKEN"); v != "" {
		cfg.Service.Token = v
	}
	if v := os.Getenv("BOTLINE_BOT_ID"); v != "" {
		cfg.Service.BotID = v
	}
	if v := os.Getenv("BOTLINE_KEEPALIVE_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.Chat.KeepaliveSeconds = secs
		}
	}
	if v := os.Getenv("BOTLINE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}
