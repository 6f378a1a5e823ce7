package config

type ServerConfig struct {
	Address string `yaml:"addr"`
}

func (s *ServerConfig) Addr() string {
	return s.Address
}
