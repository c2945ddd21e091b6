package kafka

import (
	"Trendscope/internal/api/config"
	"Trendscope/internal/model"
	"context"
	"fmt"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// RankingProducer 发布排名计算完成事件
type RankingProducer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewRankingProducer(cfg *config.Config) (*RankingProducer, error) {
	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newProducerConfig(cfg.Kafka))
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return NewRankingProducerWith(producer, cfg.KafkaRankingPub.Topic), nil
}

func NewRankingProducerWith(producer sarama.SyncProducer, topic string) *RankingProducer {
	return &RankingProducer{producer: producer, topic: topic}
}

// PublishRankingComputed 以 scope:periodType 为分区键，同一类排名的事件保持有序
func (p *RankingProducer) PublishRankingComputed(ctx context.Context, event *model.RankingComputedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Scope + ":" + event.PeriodType),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("publish ranking event: %w", err)
	}

	log.DebugContext(ctx, "ranking event published",
		"topic", p.topic, "partition", partition, "offset", offset, "period_id", event.PeriodID)
	return nil
}

func (p *RankingProducer) Close() error {
	return p.producer.Close()
}
