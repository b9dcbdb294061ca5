package shiftv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	TimelineService_ListTimeline_FullMethodName   = "/omnipos.shift.v1.TimelineService/ListTimeline"
	TimelineService_SearchTimeline_FullMethodName = "/omnipos.shift.v1.TimelineService/SearchTimeline"
)

type TimelineServiceClient interface {
	ListTimeline(ctx context.Context, in *TimelineRequest, opts ...grpc.CallOption) (*TimelineResponse, error)
	SearchTimeline(ctx context.Context, in *TimelineRequest, opts ...grpc.CallOption) (*TimelineResponse, error)
}

type timelineServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTimelineServiceClient returns a client whose calls always use the JSON codec.
func NewTimelineServiceClient(cc grpc.ClientConnInterface) TimelineServiceClient {
	return &timelineServiceClient{cc}
}

func (c *timelineServiceClient) ListTimeline(ctx context.Context, in *TimelineRequest, opts ...grpc.CallOption) (*TimelineResponse, error) {
	out := new(TimelineResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, TimelineService_ListTimeline_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timelineServiceClient) SearchTimeline(ctx context.Context, in *TimelineRequest, opts ...grpc.CallOption) (*TimelineResponse, error) {
	out := new(TimelineResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, TimelineService_SearchTimeline_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type TimelineServiceServer interface {
	ListTimeline(context.Context, *TimelineRequest) (*TimelineResponse, error)
	SearchTimeline(context.Context, *TimelineRequest) (*TimelineResponse, error)
}

// UnimplementedTimelineServiceServer must be embedded by implementations.
type UnimplementedTimelineServiceServer struct{}

func (UnimplementedTimelineServiceServer) ListTimeline(context.Context, *TimelineRequest) (*TimelineResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTimeline not implemented")
}

func (UnimplementedTimelineServiceServer) SearchTimeline(context.Context, *TimelineRequest) (*TimelineResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchTimeline not implemented")
}

func RegisterTimelineServiceServer(s grpc.ServiceRegistrar, srv TimelineServiceServer) {
	s.RegisterService(&TimelineService_ServiceDesc, srv)
}

func _TimelineService_ListTimeline_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TimelineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimelineServiceServer).ListTimeline(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimelineService_ListTimeline_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimelineServiceServer).ListTimeline(ctx, req.(*TimelineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimelineService_SearchTimeline_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TimelineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimelineServiceServer).SearchTimeline(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimelineService_SearchTimeline_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimelineServiceServer).SearchTimeline(ctx, req.(*TimelineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var TimelineService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.shift.v1.TimelineService",
	HandlerType: (*TimelineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListTimeline",
			Handler:    _TimelineService_ListTimeline_Handler,
		},
		{
			MethodName: "SearchTimeline",
			Handler:    _TimelineService_SearchTimeline_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos.shift.v1",
}
