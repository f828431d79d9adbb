package config

import "github.com/ariel-frischer/notificator/internal/notify"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"default_message": "Notificator",
		"http_timeout":    0,
		"beep_interval":   int(notify.DefaultBeepInterval.Milliseconds()),
		"line_endpoint":   notify.DefaultLineEndpoint,
		"slack_url":       "",
		"discord_url":     "",
		"line_token":      "",
		"log_level":       "warn",
		"log_format":      "text",
		"show_progress":   false,
		"pushgateway_url": "",
		"metrics_job":     "notificator",
	}
}
