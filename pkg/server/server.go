package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/sarkarshuvojit/ecg-playback/pkg/hub"
	"github.com/sarkarshuvojit/ecg-playback/pkg/monitor"
	"github.com/sarkarshuvojit/ecg-playback/pkg/render"
)

type ECGMonitorService struct {
	monitor  *monitor.Monitor
	hub      *hub.Hub
	stop     chan struct{}
	stopOnce sync.Once
}

func New(m *monitor.Monitor, h *hub.Hub) *ECGMonitorService {
	return &ECGMonitorService{
		monitor: m,
		hub:     h,
		stop:    make(chan struct{}),
	}
}

// Stop ends all open window streams so a graceful server stop does not wait
// on clients.
func (s *ECGMonitorService) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *ECGMonitorService) GetStatus(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	st := s.monitor.Status()

	fields := map[string]interface{}{
		"id":           st.ID.String(),
		"state":        string(st.State),
		"seriesLength": st.SeriesLength,
		"windowSize":   st.WindowSize,
		"subscribers":  s.hub.Subscribers(),
	}
	if f, ok := s.hub.Latest(); ok {
		fields["cursor"] = f.Cursor
	}
	if st.Err != nil {
		fields["error"] = st.Err.Error()
	}

	return structpb.NewStruct(fields)
}

func (s *ECGMonitorService) GetWindow(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	f, ok := s.hub.Latest()
	if !ok {
		return nil, status.Error(codes.Unavailable, "no window published yet")
	}
	return frameToStruct(f)
}

// StreamWindows sends every frame the scheduler publishes until the client
// goes away. Frames a slow client cannot keep up with are skipped.
func (s *ECGMonitorService) StreamWindows(_ *emptypb.Empty, stream grpc.ServerStreamingServer[structpb.Struct]) error {
	if err := s.ready(); err != nil {
		return err
	}

	frames, cancel := s.hub.Subscribe()
	defer cancel()
	log.Printf("StreamWindows: subscriber attached (%d active)", s.hub.Subscribers())

	for {
		select {
		case <-stream.Context().Done():
			log.Println("StreamWindows: subscriber detached")
			return nil
		case <-s.stop:
			return status.Error(codes.Unavailable, "server shutting down")
		case f := <-frames:
			msg, err := frameToStruct(f)
			if err != nil {
				return err
			}
			if err := stream.Send(msg); err != nil {
				return fmt.Errorf("error sending stream: %w", err)
			}
		}
	}
}

func (s *ECGMonitorService) ready() error {
	err := s.monitor.Ready()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, monitor.ErrLoadFailed):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Unavailable, err.Error())
	}
}

func frameToStruct(f render.Frame) (*structpb.Struct, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding frame: %v", err)
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(b, out); err != nil {
		return nil, status.Errorf(codes.Internal, "converting frame: %v", err)
	}
	return out, nil
}
