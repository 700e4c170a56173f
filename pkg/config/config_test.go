package config

import (
	"strings"
	"testing"
	"time"
)

func TestParseFromMetadata_Defaults(t *testing.T) {
	cfg, err := ParseFromMetadata(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataSource != "data.json" {
		t.Errorf("expected default dataSource data.json, got %s", cfg.DataSource)
	}
	if cfg.WindowSize != 1000 {
		t.Errorf("expected default windowSize 1000, got %d", cfg.WindowSize)
	}
	if cfg.UpdateInterval != 10*time.Millisecond {
		t.Errorf("expected default updateInterval 10ms, got %s", cfg.UpdateInterval)
	}
	if cfg.SampleRate != 250 {
		t.Errorf("expected default sampleRate 250, got %v", cfg.SampleRate)
	}
	if cfg.StartAtZero {
		t.Error("expected startAtZero to default to false")
	}
	if cfg.GRPCPort != "50051" || cfg.HTTPPort != "8080" {
		t.Errorf("unexpected default ports grpc=%s http=%s", cfg.GRPCPort, cfg.HTTPPort)
	}
	if cfg.KafkaEnabled() {
		t.Error("expected kafka publishing disabled by default")
	}
}

func TestParseFromMetadata_AllFields(t *testing.T) {
	meta := map[string]string{
		"dataSource":       "https://example.com/data.json",
		"windowSize":       "500",
		"updateIntervalMs": "40",
		"sampleRate":       "500",
		"startAtZero":      "true",
		"grpcPort":         "6000",
		"httpPort":         "9090",
		"kafkaBrokers":     "broker1:9092,broker2:9092",
		"kafkaTopic":       "ecg-frames",
	}

	cfg, err := ParseFromMetadata(meta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataSource != "https://example.com/data.json" {
		t.Errorf("dataSource = %s", cfg.DataSource)
	}
	if cfg.WindowSize != 500 {
		t.Errorf("windowSize = %d", cfg.WindowSize)
	}
	if cfg.UpdateInterval != 40*time.Millisecond {
		t.Errorf("updateInterval = %s", cfg.UpdateInterval)
	}
	if cfg.SampleRate != 500 {
		t.Errorf("sampleRate = %v", cfg.SampleRate)
	}
	if !cfg.StartAtZero {
		t.Error("startAtZero = false")
	}
	if cfg.GRPCPort != "6000" || cfg.HTTPPort != "9090" {
		t.Errorf("ports grpc=%s http=%s", cfg.GRPCPort, cfg.HTTPPort)
	}
	if cfg.KafkaBrokers != "broker1:9092,broker2:9092" {
		t.Errorf("kafkaBrokers = %s", cfg.KafkaBrokers)
	}
	if !cfg.KafkaEnabled() {
		t.Error("expected kafka publishing enabled")
	}
}

func TestParseFromMetadata_InvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"windowSize":       {"windowSize": "big"},
		"updateIntervalMs": {"updateIntervalMs": "fast"},
		"sampleRate":       {"sampleRate": "hz"},
		"startAtZero":      {"startAtZero": "maybe"},
	}

	for key, meta := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := ParseFromMetadata(meta)
			if err == nil {
				t.Fatalf("expected error for invalid %s", key)
			}
			if !strings.Contains(err.Error(), "invalid "+key) {
				t.Errorf("unexpected error message: %v", err)
			}
		})
	}
}

func TestParseFromMetadata_NonPositiveValues(t *testing.T) {
	cases := map[string]map[string]string{
		"windowSize":       {"windowSize": "0"},
		"updateIntervalMs": {"updateIntervalMs": "-5"},
		"sampleRate":       {"sampleRate": "0"},
	}

	for key, meta := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := ParseFromMetadata(meta)
			if err == nil {
				t.Fatalf("expected error for non-positive %s", key)
			}
			if err.Error() != key+" must be positive" {
				t.Errorf("unexpected error message: %v", err)
			}
		})
	}
}

func TestParseFromMetadata_EnvVarFallback(t *testing.T) {
	t.Setenv("DATA_SOURCE", "gs://bucket/data.json")
	t.Setenv("WINDOW_SIZE", "200")
	t.Setenv("UPDATE_INTERVAL_MS", "25")
	t.Setenv("SAMPLE_RATE", "125")
	t.Setenv("START_AT_ZERO", "1")
	t.Setenv("KAFKA_TOPIC", "env-frames")

	cfg, err := ParseFromMetadata(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataSource != "gs://bucket/data.json" {
		t.Errorf("dataSource = %s", cfg.DataSource)
	}
	if cfg.WindowSize != 200 {
		t.Errorf("windowSize = %d, want 200", cfg.WindowSize)
	}
	if cfg.UpdateInterval != 25*time.Millisecond {
		t.Errorf("updateInterval = %s, want 25ms", cfg.UpdateInterval)
	}
	if cfg.SampleRate != 125 {
		t.Errorf("sampleRate = %v, want 125", cfg.SampleRate)
	}
	if !cfg.StartAtZero {
		t.Error("startAtZero = false, want true")
	}
	if cfg.KafkaTopic != "env-frames" {
		t.Errorf("kafkaTopic = %s", cfg.KafkaTopic)
	}
}

func TestParseFromMetadata_MetadataOverridesEnv(t *testing.T) {
	t.Setenv("DATA_SOURCE", "env.json")
	t.Setenv("WINDOW_SIZE", "999")

	cfg, err := ParseFromMetadata(map[string]string{
		"dataSource": "meta.json",
		"windowSize": "100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataSource != "meta.json" {
		t.Errorf("expected metadata to override env, got %s", cfg.DataSource)
	}
	if cfg.WindowSize != 100 {
		t.Errorf("expected metadata windowSize 100, got %d", cfg.WindowSize)
	}
}

func TestParseFromMetadata_InvalidEnvVars(t *testing.T) {
	t.Setenv("WINDOW_SIZE", "not-a-number")

	_, err := ParseFromEnv()
	if err == nil {
		t.Fatal("expected error for invalid WINDOW_SIZE env var")
	}
	if !strings.Contains(err.Error(), "invalid WINDOW_SIZE") {
		t.Errorf("unexpected error message: %v", err)
	}
}
