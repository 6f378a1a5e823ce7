package config

const (
	BackendMemory    = "memory"
	BackendMemcached = "memcached"
	BackendRedis     = "redis"
	BackendPostgres  = "postgres"
)

type StorageConfig struct {
	Backend     string `yaml:"backend" validate:"oneof=memory memcached redis postgres"`
	SnapshotKey string `yaml:"key" validate:"required"`
}

func (s *StorageConfig) Kind() string {
	return s.Backend
}

func (s *StorageConfig) Key() string {
	return s.SnapshotKey
}
