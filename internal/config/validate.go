package config

import (
	"fmt"
	"net/url"
	"slices"
)

// ValidationIssue describes a problem with a config value.
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Config for issues. Returns nil if valid.
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.Service.BaseURL == "" {
		issues = append(issues, ValidationIssue{
			Path:    "service.baseUrl",
			Message: "base URL is required",
		})
	} else if u, err := url.Parse(cfg.Service.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		issues = append(issues, ValidationIssue{
			Path:    "service.baseUrl",
			Message: fmt.Sprintf("must be an absolute URL, got %q", cfg.Service.BaseURL),
		})
	}

	if cfg.Service.Token == "" {
		issues = append(issues, ValidationIssue{
			Path:    "service.token",
			Message: "token is required (set BOTLINE_TOKEN or service.token)",
		})
	}

	if cfg.Service.BotID == "" {
		issues = append(issues, ValidationIssue{
			Path:    "service.botId",
			Message: "bot id is required",
		})
	}

	if cfg.Chat.KeepaliveSeconds < 0 {
		issues = append(issues, ValidationIssue{
			Path:    "chat.keepaliveSeconds",
			Message: fmt.Sprintf("must be >= 0, got %d", cfg.Chat.KeepaliveSeconds),
		})
	}

	validLogLevels := []string{"silent", "fatal", "error", "warn", "info", "debug", "trace"}
	if cfg.Logging.Level != "" && !slices.Contains(validLogLevels, cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Logging.Level),
		})
	}

	return issues
}
