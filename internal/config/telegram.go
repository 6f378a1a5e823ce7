package config

import "time"

type TelegramConfig struct {
	ApiToken   string `yaml:"token"`
	TimeoutSec int    `yaml:"timeout-seconds" validate:"gte=0"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) Timeout() time.Duration {
	return time.Duration(t.TimeoutSec) * time.Second
}
