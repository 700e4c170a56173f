package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type MonitorConfig struct {
	DataSource     string
	WindowSize     int
	UpdateInterval time.Duration
	SampleRate     float64
	StartAtZero    bool
	GRPCPort       string
	HTTPPort       string
	KafkaBrokers   string
	KafkaTopic     string
}

// ParseFromMetadata reads each setting from metadata, then the environment,
// then falls back to the built-in defaults.
func ParseFromMetadata(metadata map[string]string) (*MonitorConfig, error) {
	cfg := &MonitorConfig{
		WindowSize:     1000,
		UpdateInterval: 10 * time.Millisecond,
		SampleRate:     250,
	}

	cfg.DataSource = getMetadataOrEnv(metadata, "dataSource", "DATA_SOURCE", "data.json")
	cfg.GRPCPort = getMetadataOrEnv(metadata, "grpcPort", "GRPC_PORT", "50051")
	cfg.HTTPPort = getMetadataOrEnv(metadata, "httpPort", "HTTP_PORT", "8080")
	cfg.KafkaBrokers = getMetadataOrEnv(metadata, "kafkaBrokers", "KAFKA_BROKERS", "localhost:9092")
	cfg.KafkaTopic = getMetadataOrEnv(metadata, "kafkaTopic", "KAFKA_TOPIC", "")

	if v, name, ok := lookup(metadata, "windowSize", "WINDOW_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		cfg.WindowSize = n
	}

	if v, name, ok := lookup(metadata, "updateIntervalMs", "UPDATE_INTERVAL_MS"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		cfg.UpdateInterval = time.Duration(n) * time.Millisecond
	}

	if v, name, ok := lookup(metadata, "sampleRate", "SAMPLE_RATE"); ok {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		cfg.SampleRate = n
	}

	if v, name, ok := lookup(metadata, "startAtZero", "START_AT_ZERO"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		cfg.StartAtZero = b
	}

	if cfg.WindowSize <= 0 {
		return nil, fmt.Errorf("windowSize must be positive")
	}
	if cfg.UpdateInterval <= 0 {
		return nil, fmt.Errorf("updateIntervalMs must be positive")
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sampleRate must be positive")
	}

	return cfg, nil
}

func ParseFromEnv() (*MonitorConfig, error) {
	return ParseFromMetadata(nil)
}

// KafkaEnabled reports whether frames should also be published to Kafka.
func (c *MonitorConfig) KafkaEnabled() bool {
	return c.KafkaTopic != ""
}

func getMetadataOrEnv(metadata map[string]string, key, envKey, defaultVal string) string {
	if v, _, ok := lookup(metadata, key, envKey); ok {
		return v
	}
	return defaultVal
}

// lookup returns the raw value and the name it was found under.
func lookup(metadata map[string]string, key, envKey string) (string, string, bool) {
	if metadata != nil {
		if v, ok := metadata[key]; ok && v != "" {
			return v, key, true
		}
	}
	if v := os.Getenv(envKey); v != "" {
		return v, envKey, true
	}
	return "", "", false
}
