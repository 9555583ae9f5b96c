package app

import "os"

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.AssistantName == "" {
		cfg.AssistantName = os.Getenv("PLATOCONV_ASSISTANT")
	}
	if cfg.From == "" {
		cfg.From = os.Getenv("PLATOCONV_FROM")
	}
	if cfg.To == "" {
		cfg.To = os.Getenv("PLATOCONV_TO")
	}
}
