package shiftv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	PaymentService_DeclarePayments_FullMethodName = "/omnipos.shift.v1.PaymentService/DeclarePayments"
	PaymentService_GetTotals_FullMethodName       = "/omnipos.shift.v1.PaymentService/GetTotals"
	PaymentService_GetRates_FullMethodName        = "/omnipos.shift.v1.PaymentService/GetRates"
	PaymentService_UpdateRates_FullMethodName     = "/omnipos.shift.v1.PaymentService/UpdateRates"
)

type PaymentServiceClient interface {
	DeclarePayments(ctx context.Context, in *DeclarePaymentsRequest, opts ...grpc.CallOption) (*DeclarationResponse, error)
	GetTotals(ctx context.Context, in *GetTotalsRequest, opts ...grpc.CallOption) (*PaymentTotalsResponse, error)
	GetRates(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*RatesResponse, error)
	UpdateRates(ctx context.Context, in *UpdateRatesRequest, opts ...grpc.CallOption) (*RatesResponse, error)
}

type paymentServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPaymentServiceClient returns a client whose calls always use the JSON codec.
func NewPaymentServiceClient(cc grpc.ClientConnInterface) PaymentServiceClient {
	return &paymentServiceClient{cc}
}

func (c *paymentServiceClient) DeclarePayments(ctx context.Context, in *DeclarePaymentsRequest, opts ...grpc.CallOption) (*DeclarationResponse, error) {
	out := new(DeclarationResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, PaymentService_DeclarePayments_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *paymentServiceClient) GetTotals(ctx context.Context, in *GetTotalsRequest, opts ...grpc.CallOption) (*PaymentTotalsResponse, error) {
	out := new(PaymentTotalsResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, PaymentService_GetTotals_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *paymentServiceClient) GetRates(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*RatesResponse, error) {
	out := new(RatesResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, PaymentService_GetRates_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *paymentServiceClient) UpdateRates(ctx context.Context, in *UpdateRatesRequest, opts ...grpc.CallOption) (*RatesResponse, error) {
	out := new(RatesResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, PaymentService_UpdateRates_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type PaymentServiceServer interface {
	DeclarePayments(context.Context, *DeclarePaymentsRequest) (*DeclarationResponse, error)
	GetTotals(context.Context, *GetTotalsRequest) (*PaymentTotalsResponse, error)
	GetRates(context.Context, *Empty) (*RatesResponse, error)
	UpdateRates(context.Context, *UpdateRatesRequest) (*RatesResponse, error)
}

// UnimplementedPaymentServiceServer must be embedded by implementations.
type UnimplementedPaymentServiceServer struct{}

func (UnimplementedPaymentServiceServer) DeclarePayments(context.Context, *DeclarePaymentsRequest) (*DeclarationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeclarePayments not implemented")
}

func (UnimplementedPaymentServiceServer) GetTotals(context.Context, *GetTotalsRequest) (*PaymentTotalsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetTotals not implemented")
}

func (UnimplementedPaymentServiceServer) GetRates(context.Context, *Empty) (*RatesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRates not implemented")
}

func (UnimplementedPaymentServiceServer) UpdateRates(context.Context, *UpdateRatesRequest) (*RatesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateRates not implemented")
}

func RegisterPaymentServiceServer(s grpc.ServiceRegistrar, srv PaymentServiceServer) {
	s.RegisterService(&PaymentService_ServiceDesc, srv)
}

func _PaymentService_DeclarePayments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeclarePaymentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentServiceServer).DeclarePayments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PaymentService_DeclarePayments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaymentServiceServer).DeclarePayments(ctx, req.(*DeclarePaymentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PaymentService_GetTotals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTotalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentServiceServer).GetTotals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PaymentService_GetTotals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaymentServiceServer).GetTotals(ctx, req.(*GetTotalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PaymentService_GetRates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentServiceServer).GetRates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PaymentService_GetRates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaymentServiceServer).GetRates(ctx, req.(*Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _PaymentService_UpdateRates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateRatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentServiceServer).UpdateRates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PaymentService_UpdateRates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaymentServiceServer).UpdateRates(ctx, req.(*UpdateRatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var PaymentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "omnipos.shift.v1.PaymentService",
	HandlerType: (*PaymentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DeclarePayments",
			Handler:    _PaymentService_DeclarePayments_Handler,
		},
		{
			MethodName: "GetTotals",
			Handler:    _PaymentService_GetTotals_Handler,
		},
		{
			MethodName: "GetRates",
			Handler:    _PaymentService_GetRates_Handler,
		},
		{
			MethodName: "UpdateRates",
			Handler:    _PaymentService_UpdateRates_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos.shift.v1",
}
