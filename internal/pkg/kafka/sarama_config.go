package kafka

import (
	"Trendscope/internal/api/config"
	"time"

	"github.com/IBM/sarama"
)

// newProducerConfig 同步生产者配置，等待所有副本确认
func newProducerConfig(kafkaCfg config.KafkaConfig) *sarama.Config {
	c := sarama.NewConfig()

	if kafkaCfg.Sasl.Enable {
		c.Net.SASL.Enable = true
		c.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		c.Net.SASL.User = kafkaCfg.Sasl.Username
		c.Net.SASL.Password = kafkaCfg.Sasl.Password
	}

	c.Producer.RequiredAcks = sarama.WaitForAll
	c.Producer.Return.Successes = true
	c.Producer.Return.Errors = true
	c.Producer.Retry.Max = 3
	c.Producer.Timeout = 5 * time.Second

	return c
}
