package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers" split_words:"true"`
	Topic      string   `yaml:"alerts-topic" split_words:"true"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) AlertsTopic() string {
	return s.Topic
}

func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0
}
