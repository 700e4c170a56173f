package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/sarkarshuvojit/ecg-playback/pkg/config"
	"github.com/sarkarshuvojit/ecg-playback/pkg/hub"
	"github.com/sarkarshuvojit/ecg-playback/pkg/kafka"
	"github.com/sarkarshuvojit/ecg-playback/pkg/monitor"
	"github.com/sarkarshuvojit/ecg-playback/pkg/scheduler"
	"github.com/sarkarshuvojit/ecg-playback/pkg/server"
	"github.com/sarkarshuvojit/ecg-playback/pkg/source"
)

func main() {
	dataSource := flag.String("data", "", "dataset location: path, file://, http(s)://, gs://bucket/object or kafka://brokers/topic")
	startAtZero := flag.Bool("start-at-zero", false, "show the window at index 0 on the first tick")
	flag.Parse()

	metadata := map[string]string{"dataSource": *dataSource}
	if *startAtZero {
		metadata["startAtZero"] = "true"
	}

	cfg, err := config.ParseFromMetadata(metadata)
	if err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	log.Printf("Starting ECG playback monitor")
	log.Printf("  Data Source:      %s", cfg.DataSource)
	log.Printf("  Window Size:      %d", cfg.WindowSize)
	log.Printf("  Update Interval:  %s", cfg.UpdateInterval)
	log.Printf("  Sample Rate:      %g Hz", cfg.SampleRate)
	log.Printf("  Start At Zero:    %v", cfg.StartAtZero)

	opener, err := source.New(cfg.DataSource)
	if err != nil {
		log.Fatalf("Invalid data source: %v", err)
	}

	id := uuid.New()
	frames := hub.New()
	publishers := []scheduler.Publisher{frames}

	if cfg.KafkaEnabled() {
		writer := kafka.NewFrameWriter(cfg.KafkaBrokers, cfg.KafkaTopic, id.String())
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("Failed to close frame writer: %v", err)
			}
		}()
		publishers = append(publishers, writer)
		log.Printf("  Kafka Frames:     %s @ %s", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	mon := monitor.New(id, opener, cfg, publishers...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start playback; a failed load leaves the servers up with no frames
	go func() {
		if err := mon.Run(ctx); err != nil {
			log.Printf("Failed to load dataset: %v", err)
		}
	}()

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: server.NewHTTPHandler(mon, frames),
	}
	go func() {
		log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer()
	svc := server.New(mon, frames)
	server.RegisterECGMonitorServer(grpcServer, svc)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Println("Received shutdown signal, stopping...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP shutdown error: %v", err)
		}
		svc.Stop()
		grpcServer.GracefulStop()
	}()

	log.Printf("gRPC server listening on :%s", cfg.GRPCPort)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}
