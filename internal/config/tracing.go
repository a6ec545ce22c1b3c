package config

type TracingConfig struct {
	On        bool   `yaml:"enabled" split_words:"true"`
	Service   string `yaml:"service-name" split_words:"true"`
	AgentAddr string `yaml:"agent" split_words:"true"`
}

func (t *TracingConfig) Enabled() bool {
	return t.On
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}

func (t *TracingConfig) AgentHostPort() string {
	return t.AgentAddr
}
