package shiftv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ShiftService_OpenShift_FullMethodName          = "/omnipos.shift.v1.ShiftService/OpenShift"
	ShiftService_CloseShift_FullMethodName         = "/omnipos.shift.v1.ShiftService/CloseShift"
	ShiftService_PreviewClose_FullMethodName       = "/omnipos.shift.v1.ShiftService/PreviewClose"
	ShiftService_StageValues_FullMethodName        = "/omnipos.shift.v1.ShiftService/StageValues"
	ShiftService_GetCurrentShift_FullMethodName    = "/omnipos.shift.v1.ShiftService/GetCurrentShift"
	ShiftService_GetShift_FullMethodName           = "/omnipos.shift.v1.ShiftService/GetShift"
	ShiftService_ListShifts_FullMethodName         = "/omnipos.shift.v1.ShiftService/ListShifts"
	ShiftService_GetShiftSummary_FullMethodName    = "/omnipos.shift.v1.ShiftService/GetShiftSummary"
	ShiftService_GetNextInitial_FullMethodName     = "/omnipos.shift.v1.ShiftService/GetNextInitial"
	ShiftService_AddCollaborator_FullMethodName    = "/omnipos.shift.v1.ShiftService/AddCollaborator"
	ShiftService_RemoveCollaborator_FullMethodName = "/omnipos.shift.v1.ShiftService/RemoveCollaborator"
	ShiftService_ListCollaborators_FullMethodName  = "/omnipos.shift.v1.ShiftService/ListCollaborators"
)

type ShiftServiceClient interface {
	OpenShift(ctx context.Context, in *OpenShiftRequest, opts ...grpc.CallOption) (*ShiftResponse, error)
	CloseShift(ctx context.Context, in *CloseShiftRequest, opts ...grpc.CallOption) (*ShiftResponse, error)
	PreviewClose(ctx context.Context, in *CloseShiftRequest, opts ...grpc.CallOption) (*ClosePreviewResponse, error)
	StageValues(ctx context.Context, in *StageValuesRequest, opts ...grpc.CallOption) (*ShiftResponse, error)
	GetCurrentShift(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ShiftResponse, error)
	GetShift(ctx context.Context, in *GetShiftRequest, opts ...grpc.CallOption) (*ShiftResponse, error)
	ListShifts(ctx context.Context, in *ListShiftsRequest, opts ...grpc.CallOption) (*ListShiftsResponse, error)
	GetShiftSummary(ctx context.Context, in *GetShiftRequest, opts ...grpc.CallOption) (*ShiftSummaryResponse, error)
	GetNextInitial(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NextInitialResponse, error)
	AddCollaborator(ctx context.Context, in *CollaboratorRequest, opts ...grpc.CallOption) (*CollaboratorResponse, error)
	RemoveCollaborator(ctx context.Context, in *CollaboratorRequest, opts ...grpc.CallOption) (*Empty, error)
	ListCollaborators(ctx context.Context, in *GetShiftRequest, opts ...grpc.CallOption) (*ListCollaboratorsResponse, error)
}

type shiftServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewShiftServiceClient returns a client whose calls always use the JSON codec.
func NewShiftServiceClient(cc grpc.ClientConnInterface) ShiftServiceClient {
	return &shiftServiceClient{cc}
}

func (c *shiftServiceClient) OpenShift(ctx context.Context, in *OpenShiftRequest, opts ...grpc.CallOption) (*ShiftResponse, error) {
	out := new(ShiftResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_OpenShift_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) CloseShift(ctx context.Context, in *CloseShiftRequest, opts ...grpc.CallOption) (*ShiftResponse, error) {
	out := new(ShiftResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_CloseShift_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) PreviewClose(ctx context.Context, in *CloseShiftRequest, opts ...grpc.CallOption) (*ClosePreviewResponse, error) {
	out := new(ClosePreviewResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_PreviewClose_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) StageValues(ctx context.Context, in *StageValuesRequest, opts ...grpc.CallOption) (*ShiftResponse, error) {
	out := new(ShiftResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_StageValues_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) GetCurrentShift(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ShiftResponse, error) {
	out := new(ShiftResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_GetCurrentShift_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) GetShift(ctx context.Context, in *GetShiftRequest, opts ...grpc.CallOption) (*ShiftResponse, error) {
	out := new(ShiftResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_GetShift_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) ListShifts(ctx context.Context, in *ListShiftsRequest, opts ...grpc.CallOption) (*ListShiftsResponse, error) {
	out := new(ListShiftsResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_ListShifts_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) GetShiftSummary(ctx context.Context, in *GetShiftRequest, opts ...grpc.CallOption) (*ShiftSummaryResponse, error) {
	out := new(ShiftSummaryResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_GetShiftSummary_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) GetNextInitial(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*NextInitialResponse, error) {
	out := new(NextInitialResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_GetNextInitial_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) AddCollaborator(ctx context.Context, in *CollaboratorRequest, opts ...grpc.CallOption) (*CollaboratorResponse, error) {
	out := new(CollaboratorResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_AddCollaborator_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) RemoveCollaborator(ctx context.Context, in *CollaboratorRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_RemoveCollaborator_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *shiftServiceClient) ListCollaborators(ctx context.Context, in *GetShiftRequest, opts ...grpc.CallOption) (*ListCollaboratorsResponse, error) {
	out := new(ListCollaboratorsResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, ShiftService_ListCollaborators_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type ShiftServiceServer interface {
	OpenShift(context.Context, *OpenShiftRequest) (*ShiftResponse, error)
	CloseShift(context.Context, *CloseShiftRequest) (*ShiftResponse, error)
	PreviewClose(context.Context, *CloseShiftRequest) (*ClosePreviewResponse, error)
	StageValues(context.Context, *StageValuesRequest) (*ShiftResponse, error)
	GetCurrentShift(context.Context, *Empty) (*ShiftResponse, error)
	GetShift(context.Context, *GetShiftRequest) (*ShiftResponse, error)
	ListShifts(context.Context, *ListShiftsRequest) (*ListShiftsResponse, error)
	GetShiftSummary(context.Context, *GetShiftRequest) (*ShiftSummaryResponse, error)
	GetNextInitial(context.Context, *Empty) (*NextInitialResponse, error)
	AddCollaborator(context.Context, *CollaboratorRequest) (*CollaboratorResponse, error)
	RemoveCollaborator(context.Context, *CollaboratorRequest) (*Empty, error)
	ListCollaborators(context.Context, *GetShiftRequest) (*ListCollaboratorsResponse, error)
}

// UnimplementedShiftServiceServer must be embedded by implementations.
type UnimplementedShiftServiceServer struct{}

func (UnimplementedShiftServiceServer) OpenShift(context.Context, *OpenShiftRequest) (*ShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OpenShift not implemented")
}

func (UnimplementedShiftServiceServer) CloseShift(context.Context, *CloseShiftRequest) (*ShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CloseShift not implemented")
}

func (UnimplementedShiftServiceServer) PreviewClose(context.Context, *CloseShiftRequest) (*ClosePreviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PreviewClose not implemented")
}

func (UnimplementedShiftServiceServer) StageValues(context.Context, *StageValuesRequest) (*ShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StageValues not implemented")
}

func (UnimplementedShiftServiceServer) GetCurrentShift(context.Context, *Empty) (*ShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCurrentShift not implemented")
}

func (UnimplementedShiftServiceServer) GetShift(context.Context, *GetShiftRequest) (*ShiftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetShift not implemented")
}

func (UnimplementedShiftServiceServer) ListShifts(context.Context, *ListShiftsRequest) (*ListShiftsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListShifts not implemented")
}

func (UnimplementedShiftServiceServer) GetShiftSummary(context.Context, *GetShiftRequest) (*ShiftSummaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetShiftSummary not implemented")
}

func (UnimplementedShiftServiceServer) GetNextInitial(context.Context, *Empty) (*NextInitialResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNextInitial not implemented")
}

func (UnimplementedShiftServiceServer) AddCollaborator(context.Context, *CollaboratorRequest) (*CollaboratorResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddCollaborator not implemented")
}

func (UnimplementedShiftServiceServer) RemoveCollaborator(context.Context, *CollaboratorRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveCollaborator not implemented")
}

func (UnimplementedShiftServiceServer) ListCollaborators(context.Context, *GetShiftRequest) (*ListCollaboratorsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCollaborators not implemented")
}

func RegisterShiftServiceServer(s grpc.ServiceRegistrar, srv ShiftServiceServer) {
	s.RegisterService(&ShiftService_ServiceDesc, srv)
}

func _ShiftService_OpenShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).OpenShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_OpenShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).OpenShift(ctx, req.(*OpenShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_CloseShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).CloseShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_CloseShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).CloseShift(ctx, req.(*CloseShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_PreviewClose_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).PreviewClose(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_PreviewClose_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).PreviewClose(ctx, req.(*CloseShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_StageValues_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StageValuesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).StageValues(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_StageValues_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).StageValues(ctx, req.(*StageValuesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_GetCurrentShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).GetCurrentShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_GetCurrentShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).GetCurrentShift(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_GetShift_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).GetShift(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_GetShift_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).GetShift(ctx, req.(*GetShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_ListShifts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListShiftsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).ListShifts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_ListShifts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).ListShifts(ctx, req.(*ListShiftsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_GetShiftSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).GetShiftSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_GetShiftSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).GetShiftSummary(ctx, req.(*GetShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_GetNextInitial_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).GetNextInitial(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_GetNextInitial_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).GetNextInitial(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_AddCollaborator_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CollaboratorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).AddCollaborator(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_AddCollaborator_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).AddCollaborator(ctx, req.(*CollaboratorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_RemoveCollaborator_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CollaboratorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).RemoveCollaborator(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_RemoveCollaborator_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).RemoveCollaborator(ctx, req.(*CollaboratorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShiftService_ListCollaborators_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetShiftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShiftServiceServer).ListCollaborators(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShiftService_ListCollaborators_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShiftServiceServer).ListCollaborators(ctx, req.(*GetShiftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var ShiftService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.shift.v1.ShiftService",
	HandlerType: (*ShiftServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "OpenShift",
			Handler:    _ShiftService_OpenShift_Handler,
		},
		{
			MethodName: "CloseShift",
			Handler:    _ShiftService_CloseShift_Handler,
		},
		{
			MethodName: "PreviewClose",
			Handler:    _ShiftService_PreviewClose_Handler,
		},
		{
			MethodName: "StageValues",
			Handler:    _ShiftService_StageValues_Handler,
		},
		{
			MethodName: "GetCurrentShift",
			Handler:    _ShiftService_GetCurrentShift_Handler,
		},
		{
			MethodName: "GetShift",
			Handler:    _ShiftService_GetShift_Handler,
		},
		{
			MethodName: "ListShifts",
			Handler:    _ShiftService_ListShifts_Handler,
		},
		{
			MethodName: "GetShiftSummary",
			Handler:    _ShiftService_GetShiftSummary_Handler,
		},
		{
			MethodName: "GetNextInitial",
			Handler:    _ShiftService_GetNextInitial_Handler,
		},
		{
			MethodName: "AddCollaborator",
			Handler:    _ShiftService_AddCollaborator_Handler,
		},
		{
			MethodName: "RemoveCollaborator",
			Handler:    _ShiftService_RemoveCollaborator_Handler,
		},
		{
			MethodName: "ListCollaborators",
			Handler:    _ShiftService_ListCollaborators_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos.shift.v1",
}
