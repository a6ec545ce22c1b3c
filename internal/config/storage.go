package config

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type StorageConfig struct {
	DriverName string `yaml:"driver" split_words:"true"`
	// Source is a file path for sqlite and a DSN for postgres.
	Source string `yaml:"source" split_words:"true"`
}

func (s *StorageConfig) Driver() string {
	return s.DriverName
}

func (s *StorageConfig) DSN() string {
	return s.Source
}
