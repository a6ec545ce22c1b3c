package config

type MetricsConfig struct {
	ListenAddr string `yaml:"addr" split_words:"true"`
}

func (m *MetricsConfig) Addr() string {
	return m.ListenAddr
}
