package config

import "github.com/spf13/viper"

type Config struct {
	S3            *S3Config            `mapstructure:"s3" yaml:"s3"`
	Restore       *RestoreConfig       `mapstructure:"restore" yaml:"restore,omitempty"`
	Notifications *NotificationsConfig `mapstructure:"notifications" yaml:"notifications,omitempty"`
}

type S3Config struct {
	Endpoint  string     `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
	Region    string     `mapstructure:"region" yaml:"region,omitempty"`
	AccessKey string     `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string     `mapstructure:"secret_key" yaml:"secret_key"`
	PathStyle *bool      `mapstructure:"path_style" yaml:"path_style,omitempty"`
	TLS       *TLSConfig `mapstructure:"tls" yaml:"tls,omitempty"`
}

type TLSConfig struct {
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify" yaml:"insecure_skip_verify,omitempty"`
}

type RestoreConfig struct {
	// Concurrency bounds the executor worker pool. 0 or 1 means sequential.
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency,omitempty"`
}

type NotificationsConfig struct {
	Enabled bool           `mapstructure:"enabled" yaml:"enabled"`
	Discord *DiscordConfig `mapstructure:"discord" yaml:"discord,omitempty"`
}

type DiscordConfig struct {
	Enabled        bool             `mapstructure:"enabled" yaml:"enabled"`
	WebhookURL     string           `mapstructure:"webhook_url" yaml:"webhook_url"`
	TimeoutSeconds int              `mapstructure:"timeout_seconds" yaml:"timeout_seconds,omitempty"`
	Events         []string         `mapstructure:"events" yaml:"events,omitempty"`
	Retry          *DiscordRetry    `mapstructure:"retry" yaml:"retry,omitempty"`
	Mentions       *DiscordMentions `mapstructure:"mentions" yaml:"mentions,omitempty"`
}

type DiscordRetry struct {
	Attempts  int `mapstructure:"attempts" yaml:"attempts,omitempty"`
	BackoffMs int `mapstructure:"backoff_ms" yaml:"backoff_ms,omitempty"`
}

type DiscordMentions struct {
	OnError string `mapstructure:"on_error" yaml:"on_error,omitempty"`
}

func Unmarshal(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func NotificationsEnabled(n *NotificationsConfig) bool {
	return n != nil && n.Enabled
}

// S3PathStyle defaults to true: MinIO and most self-hosted S3 endpoints
// require path-style addressing.
func S3PathStyle(s *S3Config) bool {
	if s == nil || s.PathStyle == nil {
		return true
	}
	return *s.PathStyle
}

func Concurrency(c *Config) int {
	if c == nil || c.Restore == nil || c.Restore.Concurrency < 1 {
		return 1
	}
	return c.Restore.Concurrency
}
