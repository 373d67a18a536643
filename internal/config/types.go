package config

// Config is the root configuration for botline.
type Config struct {
	Service ServiceConfig `yaml:"service,omitempty"`
	Chat    ChatConfig    `yaml:"chat,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// ServiceConfig describes the Direct Line endpoint and the identity the
// agent service expects from a webchat client.
type ServiceConfig struct {
	BaseURL   string `yaml:"baseUrl,omitempty"`   // REST base, e.g. https://directline.botframework.com/v3/directline
	Token     string `yaml:"token,omitempty"`     // bearer token; supports ${ENV_VAR} expansion
	Origin    string `yaml:"origin,omitempty"`    // Origin/Referer the service expects
	UserAgent string `yaml:"userAgent,omitempty"` // browser-style User-Agent
	BotAgent  string `yaml:"botAgent,omitempty"`  // X-Ms-Bot-Agent value
	BotID     string `yaml:"botId,omitempty"`     // sender id of the agent; other senders are ignored
	Locale    string `yaml:"locale,omitempty"`
	Timezone  string `yaml:"timezone,omitempty"`
}

// ChatConfig controls the interactive session.
type ChatConfig struct {
	BackLabel        string `yaml:"backLabel,omitempty"`        // sentinel choice meaning "go back"
	QuitLabel        string `yaml:"quitLabel,omitempty"`        // sentinel choice meaning "quit"
	KeepaliveSeconds int    `yaml:"keepaliveSeconds,omitempty"` // empty-frame interval on the stream; 0 disables
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // "silent" | "fatal" | "error" | "warn" | "info" | "debug" | "trace"
}
