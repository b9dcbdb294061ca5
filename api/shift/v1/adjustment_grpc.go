package shiftv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AdjustmentService_CreateAdjustment_FullMethodName       = "/omnipos.shift.v1.AdjustmentService/CreateAdjustment"
	AdjustmentService_ListAdjustments_FullMethodName        = "/omnipos.shift.v1.AdjustmentService/ListAdjustments"
	AdjustmentService_ListPendingAdjustments_FullMethodName = "/omnipos.shift.v1.AdjustmentService/ListPendingAdjustments"
)

type AdjustmentServiceClient interface {
	CreateAdjustment(ctx context.Context, in *CreateAdjustmentRequest, opts ...grpc.CallOption) (*AdjustmentResponse, error)
	ListAdjustments(ctx context.Context, in *ListAdjustmentsRequest, opts ...grpc.CallOption) (*ListAdjustmentsResponse, error)
	ListPendingAdjustments(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListAdjustmentsResponse, error)
}

type adjustmentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAdjustmentServiceClient returns a client whose calls always use the JSON codec.
func NewAdjustmentServiceClient(cc grpc.ClientConnInterface) AdjustmentServiceClient {
	return &adjustmentServiceClient{cc}
}

func (c *adjustmentServiceClient) CreateAdjustment(ctx context.Context, in *CreateAdjustmentRequest, opts ...grpc.CallOption) (*AdjustmentResponse, error) {
	out := new(AdjustmentResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, AdjustmentService_CreateAdjustment_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adjustmentServiceClient) ListAdjustments(ctx context.Context, in *ListAdjustmentsRequest, opts ...grpc.CallOption) (*ListAdjustmentsResponse, error) {
	out := new(ListAdjustmentsResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, AdjustmentService_ListAdjustments_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adjustmentServiceClient) ListPendingAdjustments(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListAdjustmentsResponse, error) {
	out := new(ListAdjustmentsResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, AdjustmentService_ListPendingAdjustments_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type AdjustmentServiceServer interface {
	CreateAdjustment(context.Context, *CreateAdjustmentRequest) (*AdjustmentResponse, error)
	ListAdjustments(context.Context, *ListAdjustmentsRequest) (*ListAdjustmentsResponse, error)
	ListPendingAdjustments(context.Context, *Empty) (*ListAdjustmentsResponse, error)
}

// UnimplementedAdjustmentServiceServer must be embedded by implementations.
type UnimplementedAdjustmentServiceServer struct{}

func (UnimplementedAdjustmentServiceServer) CreateAdjustment(context.Context, *CreateAdjustmentRequest) (*AdjustmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAdjustment not implemented")
}

func (UnimplementedAdjustmentServiceServer) ListAdjustments(context.Context, *ListAdjustmentsRequest) (*ListAdjustmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAdjustments not implemented")
}

func (UnimplementedAdjustmentServiceServer) ListPendingAdjustments(context.Context, *Empty) (*ListAdjustmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPendingAdjustments not implemented")
}

func RegisterAdjustmentServiceServer(s grpc.ServiceRegistrar, srv AdjustmentServiceServer) {
	s.RegisterService(&AdjustmentService_ServiceDesc, srv)
}

func _AdjustmentService_CreateAdjustment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateAdjustmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdjustmentServiceServer).CreateAdjustment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdjustmentService_CreateAdjustment_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdjustmentServiceServer).CreateAdjustment(ctx, req.(*CreateAdjustmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdjustmentService_ListAdjustments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAdjustmentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdjustmentServiceServer).ListAdjustments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdjustmentService_ListAdjustments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdjustmentServiceServer).ListAdjustments(ctx, req.(*ListAdjustmentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdjustmentService_ListPendingAdjustments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdjustmentServiceServer).ListPendingAdjustments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdjustmentService_ListPendingAdjustments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdjustmentServiceServer).ListPendingAdjustments(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var AdjustmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.shift.v1.AdjustmentService",
	HandlerType: (*AdjustmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateAdjustment",
			Handler:    _AdjustmentService_CreateAdjustment_Handler,
		},
		{
			MethodName: "ListAdjustments",
			Handler:    _AdjustmentService_ListAdjustments_Handler,
		},
		{
			MethodName: "ListPendingAdjustments",
			Handler:    _AdjustmentService_ListPendingAdjustments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos.shift.v1",
}
