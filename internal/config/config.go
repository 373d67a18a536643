package config

import "fmt"

// ConfigError represents a configuration error.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Defaults returns a Config pointed at the Hallo-UT Direct Line deployment.
func Defaults() Config {
	return Config{
		Service: ServiceConfig{
			BaseURL:   "https://directline.botframework.com/v3/directline",
			Origin:    "https://hallo-ut.ut.ac.id",
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36 Edg/127.0.0.0",
			BotAgent:  "DirectLine/3.0 (directlinejs; WebChat/4.17.0 (Full) 0.15.5)",
			BotID:     "ut-root-main-bot",
			Locale:    "id",
			Timezone:  "Asia/Jakarta",
		},
		Chat: ChatConfig{
			BackLabel:        "Kembali",
			QuitLabel:        "Quit",
			KeepaliveSeconds: 20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
