package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Service definition for ecgmonitor.v1.ECGMonitor. Messages are protobuf
// well-known types so no generated message code is needed.
const (
	ECGMonitor_ServiceName              = "ecgmonitor.v1.ECGMonitor"
	ECGMonitor_GetStatus_FullMethodName = "/ecgmonitor.v1.ECGMonitor/GetStatus"
	ECGMonitor_GetWindow_FullMethodName = "/ecgmonitor.v1.ECGMonitor/GetWindow"
	ECGMonitor_StreamWindows_FullMethod = "/ecgmonitor.v1.ECGMonitor/StreamWindows"
)

type ECGMonitorServer interface {
	GetStatus(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetWindow(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	StreamWindows(*emptypb.Empty, grpc.ServerStreamingServer[structpb.Struct]) error
}

func RegisterECGMonitorServer(s grpc.ServiceRegistrar, srv ECGMonitorServer) {
	s.RegisterService(&ECGMonitor_ServiceDesc, srv)
}

func _ECGMonitor_GetStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ECGMonitorServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ECGMonitor_GetStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ECGMonitorServer).GetStatus(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ECGMonitor_GetWindow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ECGMonitorServer).GetWindow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ECGMonitor_GetWindow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ECGMonitorServer).GetWindow(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ECGMonitor_StreamWindows_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(emptypb.Empty)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ECGMonitorServer).StreamWindows(m, &grpc.GenericServerStream[emptypb.Empty, structpb.Struct]{ServerStream: stream})
}

var ECGMonitor_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ECGMonitor_ServiceName,
	HandlerType: (*ECGMonitorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetStatus",
			Handler:    _ECGMonitor_GetStatus_Handler,
		},
		{
			MethodName: "GetWindow",
			Handler:    _ECGMonitor_GetWindow_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamWindows",
			Handler:       _ECGMonitor_StreamWindows_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "ecgmonitor/v1/ecgmonitor.proto",
}
