package kafka

import (
	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_AUDIT_TOPIC" default:"bookreview.audit"`
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	return sarama.NewAsyncProducer(cfg.Addrs, producerConfig())
}

// producerConfig is fire-and-forget. sarama defaults Return.Errors to true,
// and with nobody draining Errors() a single failed produce wedges the
// producer and every Publish behind it.
func producerConfig() *sarama.Config {
	c := sarama.NewConfig()

	c.Producer.RequiredAcks = sarama.WaitForLocal
	c.Producer.Return.Successes = false
	c.Producer.Return.Errors = false

	return c
}
