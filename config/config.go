package config

import "time"

type Config struct {
	Name            string `yaml:"name" validate:"required"`
	APIKey          string `yaml:"api_key" validate:"required"`
	APIKeyFile      string `yaml:"api_key_file"`
	URL             string `yaml:"url" validate:"required,url"`
	PredictionsPath string `yaml:"predictions_path" validate:"required,startswith=/"`
	FreshnessWindow int    `yaml:"freshness_window" validate:"gt=0"` // seconds
	Timeout         int    `yaml:"timeout" validate:"gt=0"`          // seconds
	Port            int    `yaml:"port" validate:"gt=0,lte=65535"`
	StaticDir       string `yaml:"static_dir"`
	UserAgent       string `yaml:"user_agent"`
	SkipTLSVerify   bool   `yaml:"skip_tls_verify"`
	Debug           bool   `yaml:"debug"`
}

func (c Config) FreshnessWindowDuration() time.Duration {
	return time.Duration(c.FreshnessWindow) * time.Second
}

func (c Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
