package gateway

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/fastforwardq/ffq/internal/weather"
)

// KafkaSource reads JSON-encoded weather records off a topic. It is
// "stream mode" — the concrete realization of the external gateway
// collaborator, over a real broker instead of the original's raw
// socket listener.
type KafkaSource struct {
	reader *kafka.Reader
}

// NewKafkaSource connects a reader to brokers/topic as a member of
// groupID, so multiple consumer processes can share partitions rather
// than each reading the whole topic.
func NewKafkaSource(brokers []string, topic, groupID string) *KafkaSource {
	return &KafkaSource{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
	}
}

// Next reads and decodes the next message. It returns the decode error
// unchanged if a message's payload is not valid JSON, letting the
// caller decide whether to skip it or treat the feed as broken.
func (k *KafkaSource) Next(ctx context.Context) (weather.Data, error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return weather.Data{}, err
	}
	return weather.DecodeJSON(msg.Value)
}

// Close closes the underlying reader.
func (k *KafkaSource) Close() error {
	return k.reader.Close()
}
