package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sarkarshuvojit/ecg-playback/pkg/render"
)

// FrameWriter publishes every frame to a topic, keyed by the monitor instance.
// Writes are asynchronous so a slow broker does not stall the tick loop.
type FrameWriter struct {
	writer *kafka.Writer
	key    []byte
}

func NewFrameWriter(brokers string, topic string, key string) *FrameWriter {
	return &FrameWriter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(strings.Split(brokers, ",")...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
			Async:        true,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					log.Printf("Failed to deliver %d frames: %v", len(messages), err)
				}
			},
		},
		key: []byte(key),
	}
}

func (w *FrameWriter) Publish(ctx context.Context, f render.Frame) error {
	msg, err := EncodeFrame(w.key, f)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *FrameWriter) Close() error {
	return w.writer.Close()
}

// EncodeFrame builds the message for one frame. Consumers only need the
// labels and values, so the static chart options are left out.
func EncodeFrame(key []byte, f render.Frame) (kafka.Message, error) {
	value, err := json.Marshal(FrameMessage{
		Cursor: f.Cursor,
		Labels: f.Labels,
		Values: f.Values(),
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encoding frame: %w", err)
	}
	return kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}, nil
}

type FrameMessage struct {
	Cursor int       `json:"cursor"`
	Labels []float64 `json:"labels"`
	Values []float64 `json:"values"`
}
