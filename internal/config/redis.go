package config

type RedisConfig struct {
	Address  string `yaml:"addr"`
	Pswd     string `yaml:"password"`
	Database int    `yaml:"db" validate:"gte=0"`
}

func (r *RedisConfig) Addr() string {
	return r.Address
}

func (r *RedisConfig) Password() string {
	return r.Pswd
}

func (r *RedisConfig) DB() int {
	return r.Database
}
