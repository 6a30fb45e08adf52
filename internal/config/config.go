package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	// Timezone is the IANA zone used to render message timestamps.
	Timezone string `mapstructure:"timezone" yaml:"timezone"`
	// HistoryLimit caps how many messages a room keeps; oldest entries are evicted first.
	HistoryLimit int `mapstructure:"history_limit" yaml:"history_limit"`
	// MaxMessageChars caps the length of a single chat message.
	MaxMessageChars int `mapstructure:"max_message_chars" yaml:"max_message_chars"`

	// NamingURL is the external random-word service used to mint usernames.
	NamingURL     string        `mapstructure:"naming_url" yaml:"naming_url"`
	NamingTimeout time.Duration `mapstructure:"naming_timeout" yaml:"naming_timeout"`

	// ModerationDB is the sqlite database holding banned devices.
	// Maintained by an external moderation tool; the server only reads it.
	ModerationDB string `mapstructure:"moderation_db" yaml:"moderation_db"`

	// PostRateLimit caps posts per minute across the server. 0 disables it.
	PostRateLimit int `mapstructure:"post_rate_limit" yaml:"post_rate_limit"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		Timezone:          "Asia/Brunei",
		HistoryLimit:      100,
		MaxMessageChars:   50,
		NamingURL:         "https://random-word-api.herokuapp.com/word?length=5",
		NamingTimeout:     3 * time.Second,
		ModerationDB:      "moderation.db",
		PostRateLimit:     0,
	}
}
