package shiftv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	MovementService_RecordMovement_FullMethodName = "/omnipos.shift.v1.MovementService/RecordMovement"
	MovementService_ListMovements_FullMethodName  = "/omnipos.shift.v1.MovementService/ListMovements"
	MovementService_StageDraft_FullMethodName     = "/omnipos.shift.v1.MovementService/StageDraft"
	MovementService_ListDrafts_FullMethodName     = "/omnipos.shift.v1.MovementService/ListDrafts"
	MovementService_SaveDrafts_FullMethodName     = "/omnipos.shift.v1.MovementService/SaveDrafts"
	MovementService_DiscardDrafts_FullMethodName  = "/omnipos.shift.v1.MovementService/DiscardDrafts"
)

type MovementServiceClient interface {
	RecordMovement(ctx context.Context, in *RecordMovementRequest, opts ...grpc.CallOption) (*MovementResponse, error)
	ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error)
	StageDraft(ctx context.Context, in *RecordMovementRequest, opts ...grpc.CallOption) (*DraftResponse, error)
	ListDrafts(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListDraftsResponse, error)
	SaveDrafts(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error)
	DiscardDrafts(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*Empty, error)
}

type movementServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMovementServiceClient returns a client whose calls always use the JSON codec.
func NewMovementServiceClient(cc grpc.ClientConnInterface) MovementServiceClient {
	return &movementServiceClient{cc}
}

func (c *movementServiceClient) RecordMovement(ctx context.Context, in *RecordMovementRequest, opts ...grpc.CallOption) (*MovementResponse, error) {
	out := new(MovementResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, MovementService_RecordMovement_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *movementServiceClient) ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error) {
	out := new(ListMovementsResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, MovementService_ListMovements_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *movementServiceClient) StageDraft(ctx context.Context, in *RecordMovementRequest, opts ...grpc.CallOption) (*DraftResponse, error) {
	out := new(DraftResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, MovementService_StageDraft_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *movementServiceClient) ListDrafts(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListDraftsResponse, error) {
	out := new(ListDraftsResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, MovementService_ListDrafts_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *movementServiceClient) SaveDrafts(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error) {
	out := new(ListMovementsResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, MovementService_SaveDrafts_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *movementServiceClient) DiscardDrafts(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, MovementService_DiscardDrafts_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type MovementServiceServer interface {
	RecordMovement(context.Context, *RecordMovementRequest) (*MovementResponse, error)
	ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error)
	StageDraft(context.Context, *RecordMovementRequest) (*DraftResponse, error)
	ListDrafts(context.Context, *ListMovementsRequest) (*ListDraftsResponse, error)
	SaveDrafts(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error)
	DiscardDrafts(context.Context, *ListMovementsRequest) (*Empty, error)
}

// UnimplementedMovementServiceServer must be embedded by implementations.
type UnimplementedMovementServiceServer struct{}

func (UnimplementedMovementServiceServer) RecordMovement(context.Context, *RecordMovementRequest) (*MovementResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordMovement not implemented")
}

func (UnimplementedMovementServiceServer) ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMovements not implemented")
}

func (UnimplementedMovementServiceServer) StageDraft(context.Context, *RecordMovementRequest) (*DraftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StageDraft not implemented")
}

func (UnimplementedMovementServiceServer) ListDrafts(context.Context, *ListMovementsRequest) (*ListDraftsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListDrafts not implemented")
}

func (UnimplementedMovementServiceServer) SaveDrafts(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SaveDrafts not implemented")
}

func (UnimplementedMovementServiceServer) DiscardDrafts(context.Context, *ListMovementsRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DiscardDrafts not implemented")
}

func RegisterMovementServiceServer(s grpc.ServiceRegistrar, srv MovementServiceServer) {
	s.RegisterService(&MovementService_ServiceDesc, srv)
}

func _MovementService_RecordMovement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordMovementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovementServiceServer).RecordMovement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MovementService_RecordMovement_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MovementServiceServer).RecordMovement(ctx, req.(*RecordMovementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MovementService_ListMovements_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMovementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovementServiceServer).ListMovements(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MovementService_ListMovements_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MovementServiceServer).ListMovements(ctx, req.(*ListMovementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MovementService_StageDraft_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordMovementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovementServiceServer).StageDraft(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MovementService_StageDraft_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MovementServiceServer).StageDraft(ctx, req.(*RecordMovementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MovementService_ListDrafts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMovementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovementServiceServer).ListDrafts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MovementService_ListDrafts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MovementServiceServer).ListDrafts(ctx, req.(*ListMovementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MovementService_SaveDrafts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMovementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovementServiceServer).SaveDrafts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MovementService_SaveDrafts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MovementServiceServer).SaveDrafts(ctx, req.(*ListMovementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MovementService_DiscardDrafts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListMovementsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovementServiceServer).DiscardDrafts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MovementService_DiscardDrafts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MovementServiceServer).DiscardDrafts(ctx, req.(*ListMovementsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var MovementService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.shift.v1.MovementService",
	HandlerType: (*MovementServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RecordMovement",
			Handler:    _MovementService_RecordMovement_Handler,
		},
		{
			MethodName: "ListMovements",
			Handler:    _MovementService_ListMovements_Handler,
		},
		{
			MethodName: "StageDraft",
			Handler:    _MovementService_StageDraft_Handler,
		},
		{
			MethodName: "ListDrafts",
			Handler:    _MovementService_ListDrafts_Handler,
		},
		{
			MethodName: "SaveDrafts",
			Handler:    _MovementService_SaveDrafts_Handler,
		},
		{
			MethodName: "DiscardDrafts",
			Handler:    _MovementService_DiscardDrafts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos.shift.v1",
}
