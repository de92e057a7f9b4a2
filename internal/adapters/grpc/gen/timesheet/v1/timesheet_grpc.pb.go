// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: timesheet/v1/timesheet.proto

package timesheetv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	TimesheetService_GetDailyReport_FullMethodName   = "/timesheet.v1.TimesheetService/GetDailyReport"
	TimesheetService_GetMonthlyReport_FullMethodName = "/timesheet.v1.TimesheetService/GetMonthlyReport"
	TimesheetService_GetBalance_FullMethodName       = "/timesheet.v1.TimesheetService/GetBalance"
	TimesheetService_StartWorkday_FullMethodName     = "/timesheet.v1.TimesheetService/StartWorkday"
	TimesheetService_EndWorkday_FullMethodName       = "/timesheet.v1.TimesheetService/EndWorkday"
	TimesheetService_StartEntry_FullMethodName       = "/timesheet.v1.TimesheetService/StartEntry"
	TimesheetService_StopEntry_FullMethodName        = "/timesheet.v1.TimesheetService/StopEntry"
	TimesheetService_StartBreak_FullMethodName       = "/timesheet.v1.TimesheetService/StartBreak"
	TimesheetService_EndBreak_FullMethodName         = "/timesheet.v1.TimesheetService/EndBreak"
)

// TimesheetServiceClient is the client API for TimesheetService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TimesheetServiceClient interface {
	GetDailyReport(ctx context.Context, in *GetDailyReportRequest, opts ...grpc.CallOption) (*GetDailyReportResponse, error)
	GetMonthlyReport(ctx context.Context, in *GetMonthlyReportRequest, opts ...grpc.CallOption) (*GetMonthlyReportResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	StartWorkday(ctx context.Context, in *StartWorkdayRequest, opts ...grpc.CallOption) (*StartWorkdayResponse, error)
	EndWorkday(ctx context.Context, in *EndWorkdayRequest, opts ...grpc.CallOption) (*EndWorkdayResponse, error)
	StartEntry(ctx context.Context, in *StartEntryRequest, opts ...grpc.CallOption) (*StartEntryResponse, error)
	StopEntry(ctx context.Context, in *StopEntryRequest, opts ...grpc.CallOption) (*StopEntryResponse, error)
	StartBreak(ctx context.Context, in *StartBreakRequest, opts ...grpc.CallOption) (*StartBreakResponse, error)
	EndBreak(ctx context.Context, in *EndBreakRequest, opts ...grpc.CallOption) (*EndBreakResponse, error)
}

type timesheetServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTimesheetServiceClient(cc grpc.ClientConnInterface) TimesheetServiceClient {
	return &timesheetServiceClient{cc}
}

func (c *timesheetServiceClient) GetDailyReport(ctx context.Context, in *GetDailyReportRequest, opts ...grpc.CallOption) (*GetDailyReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDailyReportResponse)
	err := c.cc.Invoke(ctx, TimesheetService_GetDailyReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) GetMonthlyReport(ctx context.Context, in *GetMonthlyReportRequest, opts ...grpc.CallOption) (*GetMonthlyReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMonthlyReportResponse)
	err := c.cc.Invoke(ctx, TimesheetService_GetMonthlyReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBalanceResponse)
	err := c.cc.Invoke(ctx, TimesheetService_GetBalance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) StartWorkday(ctx context.Context, in *StartWorkdayRequest, opts ...grpc.CallOption) (*StartWorkdayResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartWorkdayResponse)
	err := c.cc.Invoke(ctx, TimesheetService_StartWorkday_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) EndWorkday(ctx context.Context, in *EndWorkdayRequest, opts ...grpc.CallOption) (*EndWorkdayResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EndWorkdayResponse)
	err := c.cc.Invoke(ctx, TimesheetService_EndWorkday_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) StartEntry(ctx context.Context, in *StartEntryRequest, opts ...grpc.CallOption) (*StartEntryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartEntryResponse)
	err := c.cc.Invoke(ctx, TimesheetService_StartEntry_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) StopEntry(ctx context.Context, in *StopEntryRequest, opts ...grpc.CallOption) (*StopEntryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StopEntryResponse)
	err := c.cc.Invoke(ctx, TimesheetService_StopEntry_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) StartBreak(ctx context.Context, in *StartBreakRequest, opts ...grpc.CallOption) (*StartBreakResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartBreakResponse)
	err := c.cc.Invoke(ctx, TimesheetService_StartBreak_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *timesheetServiceClient) EndBreak(ctx context.Context, in *EndBreakRequest, opts ...grpc.CallOption) (*EndBreakResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EndBreakResponse)
	err := c.cc.Invoke(ctx, TimesheetService_EndBreak_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TimesheetServiceServer is the server API for TimesheetService service.
// All implementations must embed UnimplementedTimesheetServiceServer
// for forward compatibility.
type TimesheetServiceServer interface {
	GetDailyReport(context.Context, *GetDailyReportRequest) (*GetDailyReportResponse, error)
	GetMonthlyReport(context.Context, *GetMonthlyReportRequest) (*GetMonthlyReportResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	StartWorkday(context.Context, *StartWorkdayRequest) (*StartWorkdayResponse, error)
	EndWorkday(context.Context, *EndWorkdayRequest) (*EndWorkdayResponse, error)
	StartEntry(context.Context, *StartEntryRequest) (*StartEntryResponse, error)
	StopEntry(context.Context, *StopEntryRequest) (*StopEntryResponse, error)
	StartBreak(context.Context, *StartBreakRequest) (*StartBreakResponse, error)
	EndBreak(context.Context, *EndBreakRequest) (*EndBreakResponse, error)
	mustEmbedUnimplementedTimesheetServiceServer()
}

// UnimplementedTimesheetServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTimesheetServiceServer struct{}

func (UnimplementedTimesheetServiceServer) GetDailyReport(context.Context, *GetDailyReportRequest) (*GetDailyReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDailyReport not implemented")
}
func (UnimplementedTimesheetServiceServer) GetMonthlyReport(context.Context, *GetMonthlyReportRequest) (*GetMonthlyReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMonthlyReport not implemented")
}
func (UnimplementedTimesheetServiceServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBalance not implemented")
}
func (UnimplementedTimesheetServiceServer) StartWorkday(context.Context, *StartWorkdayRequest) (*StartWorkdayResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartWorkday not implemented")
}
func (UnimplementedTimesheetServiceServer) EndWorkday(context.Context, *EndWorkdayRequest) (*EndWorkdayResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EndWorkday not implemented")
}
func (UnimplementedTimesheetServiceServer) StartEntry(context.Context, *StartEntryRequest) (*StartEntryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartEntry not implemented")
}
func (UnimplementedTimesheetServiceServer) StopEntry(context.Context, *StopEntryRequest) (*StopEntryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StopEntry not implemented")
}
func (UnimplementedTimesheetServiceServer) StartBreak(context.Context, *StartBreakRequest) (*StartBreakResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartBreak not implemented")
}
func (UnimplementedTimesheetServiceServer) EndBreak(context.Context, *EndBreakRequest) (*EndBreakResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EndBreak not implemented")
}
func (UnimplementedTimesheetServiceServer) mustEmbedUnimplementedTimesheetServiceServer() {}
func (UnimplementedTimesheetServiceServer) testEmbeddedByValue()                          {}

// UnsafeTimesheetServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TimesheetServiceServer will
// result in compilation errors.
type UnsafeTimesheetServiceServer interface {
	mustEmbedUnimplementedTimesheetServiceServer()
}

func RegisterTimesheetServiceServer(s grpc.ServiceRegistrar, srv TimesheetServiceServer) {
	// If the following call pancis, it indicates UnimplementedTimesheetServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TimesheetService_ServiceDesc, srv)
}

func _TimesheetService_GetDailyReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDailyReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).GetDailyReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_GetDailyReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).GetDailyReport(ctx, req.(*GetDailyReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_GetMonthlyReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMonthlyReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).GetMonthlyReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_GetMonthlyReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).GetMonthlyReport(ctx, req.(*GetMonthlyReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_GetBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).GetBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_GetBalance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).GetBalance(ctx, req.(*GetBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_StartWorkday_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartWorkdayRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).StartWorkday(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_StartWorkday_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).StartWorkday(ctx, req.(*StartWorkdayRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_EndWorkday_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EndWorkdayRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).EndWorkday(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_EndWorkday_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).EndWorkday(ctx, req.(*EndWorkdayRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_StartEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).StartEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_StartEntry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).StartEntry(ctx, req.(*StartEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_StopEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StopEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).StopEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_StopEntry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).StopEntry(ctx, req.(*StopEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_StartBreak_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartBreakRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).StartBreak(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_StartBreak_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).StartBreak(ctx, req.(*StartBreakRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TimesheetService_EndBreak_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EndBreakRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TimesheetServiceServer).EndBreak(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TimesheetService_EndBreak_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TimesheetServiceServer).EndBreak(ctx, req.(*EndBreakRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TimesheetService_ServiceDesc is the grpc.ServiceDesc for TimesheetService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TimesheetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "timesheet.v1.TimesheetService",
	HandlerType: (*TimesheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDailyReport",
			Handler:    _TimesheetService_GetDailyReport_Handler,
		},
		{
			MethodName: "GetMonthlyReport",
			Handler:    _TimesheetService_GetMonthlyReport_Handler,
		},
		{
			MethodName: "GetBalance",
			Handler:    _TimesheetService_GetBalance_Handler,
		},
		{
			MethodName: "StartWorkday",
			Handler:    _TimesheetService_StartWorkday_Handler,
		},
		{
			MethodName: "EndWorkday",
			Handler:    _TimesheetService_EndWorkday_Handler,
		},
		{
			MethodName: "StartEntry",
			Handler:    _TimesheetService_StartEntry_Handler,
		},
		{
			MethodName: "StopEntry",
			Handler:    _TimesheetService_StopEntry_Handler,
		},
		{
			MethodName: "StartBreak",
			Handler:    _TimesheetService_StartBreak_Handler,
		},
		{
			MethodName: "EndBreak",
			Handler:    _TimesheetService_EndBreak_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "timesheet/v1/timesheet.proto",
}
