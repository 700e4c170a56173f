package kafka

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/segmentio/kafka-go"
)

// TopicReader loads a dataset stored as one message per recording on
// partition 0 of a topic. Each message value is a {"ecg": {...}} entry.
type TopicReader struct {
	client    *kafka.Client
	brokers   []string
	topic     string
	newReader func() messageReader
}

// messageReader is the subset of *kafka.Reader used to drain a partition.
type messageReader interface {
	SetOffset(offset int64) error
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Offset() int64
	Close() error
}

func NewTopicReader(brokers string, topic string) *TopicReader {
	addrs := strings.Split(brokers, ",")
	r := &TopicReader{
		client: &kafka.Client{
			Addr: kafka.TCP(addrs...),
		},
		brokers: addrs,
		topic:   topic,
	}
	r.newReader = func() messageReader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:   r.brokers,
			Topic:     r.topic,
			Partition: 0,
			MinBytes:  1,
			MaxBytes:  10e6,
		})
	}
	return r
}

func (r *TopicReader) String() string {
	return fmt.Sprintf("kafka://%s/%s", strings.Join(r.brokers, ","), r.topic)
}

// Open reads every message up to the end offset observed when it is called
// and returns them as a single {"data": [...]} document.
func (r *TopicReader) Open(ctx context.Context) (io.ReadCloser, error) {
	metaResp, err := r.client.Metadata(ctx, &kafka.MetadataRequest{
		Addr:   r.client.Addr,
		Topics: []string{r.topic},
	})
	if err != nil {
		return nil, fmt.Errorf("metadata request failed: %w", err)
	}
	if len(metaResp.Topics) == 0 {
		return nil, fmt.Errorf("topic %s not found", r.topic)
	}
	if metaResp.Topics[0].Error != nil {
		return nil, fmt.Errorf("topic metadata error: %w", metaResp.Topics[0].Error)
	}

	listResp, err := r.client.ListOffsets(ctx, &kafka.ListOffsetsRequest{
		Addr: r.client.Addr,
		Topics: map[string][]kafka.OffsetRequest{
			r.topic: {kafka.FirstOffsetOf(0), kafka.LastOffsetOf(0)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("list offsets failed: %w", err)
	}

	var first, last int64
	for _, po := range listResp.Topics[r.topic] {
		if po.Error != nil {
			return nil, fmt.Errorf("offset error for partition %d: %w", po.Partition, po.Error)
		}
		if po.Partition == 0 {
			first, last = po.FirstOffset, po.LastOffset
		}
	}

	values, err := readRange(ctx, r.newReader, first, last)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(assembleDocument(values))), nil
}

// readRange collects message values in [first, last). The reader is only
// created when the range is non-empty, since ReadMessage blocks at the end
// of the log.
func readRange(ctx context.Context, newReader func() messageReader, first, last int64) ([][]byte, error) {
	if last <= first {
		return nil, nil
	}

	reader := newReader()
	defer reader.Close()

	if err := reader.SetOffset(first); err != nil {
		return nil, fmt.Errorf("seeking to offset %d: %w", first, err)
	}

	values := make([][]byte, 0, last-first)
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading offset %d: %w", reader.Offset(), err)
		}
		values = append(values, msg.Value)
		if msg.Offset >= last-1 {
			return values, nil
		}
	}
}

func assembleDocument(values [][]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"data":[`)
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(v)
	}
	buf.WriteString(`]}`)
	return buf.Bytes()
}
