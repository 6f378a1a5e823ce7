package config

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Topic      string   `yaml:"rates-topic"`
	Consumer   string   `yaml:"consumer-group"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) RatesTopic() string {
	return s.Topic
}

func (s *KafkaConfig) Enabled() bool {
	return len(s.BrokerList) > 0 && s.Topic != ""
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}
