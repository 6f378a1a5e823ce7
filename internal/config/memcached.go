package config

import "time"

type MemcachedConfig struct {
	NodeHosts  []string `yaml:"hosts"`
	TimeoutSec int      `yaml:"timeout-seconds" validate:"gte=0"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}
