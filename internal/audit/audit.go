package audit

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher emits fire-and-forget mutation events. Publishing never fails the
// request that triggered it.
type Publisher interface {
	Publish(entity string, id int, action string)
}

type Event struct {
	EventID  string    `json:"event_id"`
	Entity   string    `json:"entity"`
	EntityID int       `json:"entity_id"`
	Action   string    `json:"action"`
	At       time.Time `json:"at"`
}

type kafkaPublisher struct {
	producer sarama.AsyncProducer
	topic    string
	log      *zap.Logger
}

func NewPublisher(producer sarama.AsyncProducer, topic string, log *zap.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		log:      log.Named("audit"),
	}
}

func (p *kafkaPublisher) Publish(entity string, id int, action string) {
	ev := Event{
		EventID:  uuid.NewString(),
		Entity:   entity,
		EntityID: id,
		Action:   action,
		At:       time.Now().UTC(),
	}
	data, err := json.Marshal(ev)
	if err != nil {
		p.log.Error("marshal event", zap.Error(err))
		return
	}
	p.producer.Input() <- &sarama.ProducerMessage{Topic: p.topic, Value: sarama.ByteEncoder(data)}
}

type noopPublisher struct{}

// NewNoop returns a publisher used when no brokers are configured.
func NewNoop() *noopPublisher { return &noopPublisher{} }

func (*noopPublisher) Publish(string, int, string) {}
