package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CombatService_ServiceName is the fully qualified service name
const CombatService_ServiceName = "combat.v1alpha1.CombatService"

// Full method names
const (
	CombatService_GetActiveFight_FullMethodName        = "/combat.v1alpha1.CombatService/GetActiveFight"
	CombatService_ListParticipants_FullMethodName      = "/combat.v1alpha1.CombatService/ListParticipants"
	CombatService_StartFight_FullMethodName            = "/combat.v1alpha1.CombatService/StartFight"
	CombatService_FinishFight_FullMethodName           = "/combat.v1alpha1.CombatService/FinishFight"
	CombatService_JoinFight_FullMethodName             = "/combat.v1alpha1.CombatService/JoinFight"
	CombatService_SetOwnHp_FullMethodName              = "/combat.v1alpha1.CombatService/SetOwnHp"
	CombatService_SetParticipantHp_FullMethodName      = "/combat.v1alpha1.CombatService/SetParticipantHp"
	CombatService_AddEnemy_FullMethodName              = "/combat.v1alpha1.CombatService/AddEnemy"
	CombatService_AddMonster_FullMethodName            = "/combat.v1alpha1.CombatService/AddMonster"
	CombatService_EditEnemy_FullMethodName             = "/combat.v1alpha1.CombatService/EditEnemy"
	CombatService_DeleteEnemy_FullMethodName           = "/combat.v1alpha1.CombatService/DeleteEnemy"
	CombatService_ResyncStats_FullMethodName           = "/combat.v1alpha1.CombatService/ResyncStats"
	CombatService_ListMonsters_FullMethodName          = "/combat.v1alpha1.CombatService/ListMonsters"
	CombatService_SubscribeParticipants_FullMethodName = "/combat.v1alpha1.CombatService/SubscribeParticipants"
)

// CombatServiceClient is the client API for CombatService. Identity travels in
// the x-account-id metadata header.
type CombatServiceClient interface {
	GetActiveFight(ctx context.Context, in *GetActiveFightRequest, opts ...grpc.CallOption) (*GetActiveFightResponse, error)
	ListParticipants(ctx context.Context, in *ListParticipantsRequest, opts ...grpc.CallOption) (*ListParticipantsResponse, error)
	StartFight(ctx context.Context, in *StartFightRequest, opts ...grpc.CallOption) (*StartFightResponse, error)
	FinishFight(ctx context.Context, in *FinishFightRequest, opts ...grpc.CallOption) (*FinishFightResponse, error)
	JoinFight(ctx context.Context, in *JoinFightRequest, opts ...grpc.CallOption) (*JoinFightResponse, error)
	SetOwnHp(ctx context.Context, in *SetOwnHpRequest, opts ...grpc.CallOption) (*SetOwnHpResponse, error)
	SetParticipantHp(ctx context.Context, in *SetParticipantHpRequest, opts ...grpc.CallOption) (*SetParticipantHpResponse, error)
	AddEnemy(ctx context.Context, in *AddEnemyRequest, opts ...grpc.CallOption) (*AddEnemyResponse, error)
	AddMonster(ctx context.Context, in *AddMonsterRequest, opts ...grpc.CallOption) (*AddMonsterResponse, error)
	EditEnemy(ctx context.Context, in *EditEnemyRequest, opts ...grpc.CallOption) (*EditEnemyResponse, error)
	DeleteEnemy(ctx context.Context, in *DeleteEnemyRequest, opts ...grpc.CallOption) (*DeleteEnemyResponse, error)
	ResyncStats(ctx context.Context, in *ResyncStatsRequest, opts ...grpc.CallOption) (*ResyncStatsResponse, error)
	ListMonsters(ctx context.Context, in *ListMonstersRequest, opts ...grpc.CallOption) (*ListMonstersResponse, error)
	// SubscribeParticipants streams a roster snapshot on subscribe and after
	// every change to the fight
	SubscribeParticipants(ctx context.Context, in *SubscribeParticipantsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ParticipantsSnapshot], error)
}

type combatServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCombatServiceClient creates a client that speaks the JSON codec
func NewCombatServiceClient(cc grpc.ClientConnInterface) CombatServiceClient {
	return &combatServiceClient{cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.StaticMethod(), grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *combatServiceClient) GetActiveFight(ctx context.Context, in *GetActiveFightRequest, opts ...grpc.CallOption) (*GetActiveFightResponse, error) {
	out := new(GetActiveFightResponse)
	if err := c.cc.Invoke(ctx, CombatService_GetActiveFight_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ListParticipants(ctx context.Context, in *ListParticipantsRequest, opts ...grpc.CallOption) (*ListParticipantsResponse, error) {
	out := new(ListParticipantsResponse)
	if err := c.cc.Invoke(ctx, CombatService_ListParticipants_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) StartFight(ctx context.Context, in *StartFightRequest, opts ...grpc.CallOption) (*StartFightResponse, error) {
	out := new(StartFightResponse)
	if err := c.cc.Invoke(ctx, CombatService_StartFight_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) FinishFight(ctx context.Context, in *FinishFightRequest, opts ...grpc.CallOption) (*FinishFightResponse, error) {
	out := new(FinishFightResponse)
	if err := c.cc.Invoke(ctx, CombatService_FinishFight_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) JoinFight(ctx context.Context, in *JoinFightRequest, opts ...grpc.CallOption) (*JoinFightResponse, error) {
	out := new(JoinFightResponse)
	if err := c.cc.Invoke(ctx, CombatService_JoinFight_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) SetOwnHp(ctx context.Context, in *SetOwnHpRequest, opts ...grpc.CallOption) (*SetOwnHpResponse, error) {
	out := new(SetOwnHpResponse)
	if err := c.cc.Invoke(ctx, CombatService_SetOwnHp_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) SetParticipantHp(ctx context.Context, in *SetParticipantHpRequest, opts ...grpc.CallOption) (*SetParticipantHpResponse, error) {
	out := new(SetParticipantHpResponse)
	if err := c.cc.Invoke(ctx, CombatService_SetParticipantHp_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) AddEnemy(ctx context.Context, in *AddEnemyRequest, opts ...grpc.CallOption) (*AddEnemyResponse, error) {
	out := new(AddEnemyResponse)
	if err := c.cc.Invoke(ctx, CombatService_AddEnemy_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) AddMonster(ctx context.Context, in *AddMonsterRequest, opts ...grpc.CallOption) (*AddMonsterResponse, error) {
	out := new(AddMonsterResponse)
	if err := c.cc.Invoke(ctx, CombatService_AddMonster_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) EditEnemy(ctx context.Context, in *EditEnemyRequest, opts ...grpc.CallOption) (*EditEnemyResponse, error) {
	out := new(EditEnemyResponse)
	if err := c.cc.Invoke(ctx, CombatService_EditEnemy_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) DeleteEnemy(ctx context.Context, in *DeleteEnemyRequest, opts ...grpc.CallOption) (*DeleteEnemyResponse, error) {
	out := new(DeleteEnemyResponse)
	if err := c.cc.Invoke(ctx, CombatService_DeleteEnemy_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ResyncStats(ctx context.Context, in *ResyncStatsRequest, opts ...grpc.CallOption) (*ResyncStatsResponse, error) {
	out := new(ResyncStatsResponse)
	if err := c.cc.Invoke(ctx, CombatService_ResyncStats_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) ListMonsters(ctx context.Context, in *ListMonstersRequest, opts ...grpc.CallOption) (*ListMonstersResponse, error) {
	out := new(ListMonstersResponse)
	if err := c.cc.Invoke(ctx, CombatService_ListMonsters_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) SubscribeParticipants(ctx context.Context, in *SubscribeParticipantsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ParticipantsSnapshot], error) {
	stream, err := c.cc.NewStream(ctx, &CombatService_ServiceDesc.Streams[0], CombatService_SubscribeParticipants_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeParticipantsRequest, ParticipantsSnapshot]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// CombatService_SubscribeParticipantsServer is the server side of the roster stream
type CombatService_SubscribeParticipantsServer = grpc.ServerStreamingServer[ParticipantsSnapshot]

// CombatServiceServer is the server API for CombatService. Implementations
// must embed UnimplementedCombatServiceServer.
type CombatServiceServer interface {
	GetActiveFight(context.Context, *GetActiveFightRequest) (*GetActiveFightResponse, error)
	ListParticipants(context.Context, *ListParticipantsRequest) (*ListParticipantsResponse, error)
	StartFight(context.Context, *StartFightRequest) (*StartFightResponse, error)
	FinishFight(context.Context, *FinishFightRequest) (*FinishFightResponse, error)
	JoinFight(context.Context, *JoinFightRequest) (*JoinFightResponse, error)
	SetOwnHp(context.Context, *SetOwnHpRequest) (*SetOwnHpResponse, error)
	SetParticipantHp(context.Context, *SetParticipantHpRequest) (*SetParticipantHpResponse, error)
	AddEnemy(context.Context, *AddEnemyRequest) (*AddEnemyResponse, error)
	AddMonster(context.Context, *AddMonsterRequest) (*AddMonsterResponse, error)
	EditEnemy(context.Context, *EditEnemyRequest) (*EditEnemyResponse, error)
	DeleteEnemy(context.Context, *DeleteEnemyRequest) (*DeleteEnemyResponse, error)
	ResyncStats(context.Context, *ResyncStatsRequest) (*ResyncStatsResponse, error)
	ListMonsters(context.Context, *ListMonstersRequest) (*ListMonstersResponse, error)
	SubscribeParticipants(*SubscribeParticipantsRequest, CombatService_SubscribeParticipantsServer) error
	mustEmbedUnimplementedCombatServiceServer()
}

// UnimplementedCombatServiceServer answers every method with codes.Unimplemented
type UnimplementedCombatServiceServer struct{}

func (UnimplementedCombatServiceServer) GetActiveFight(context.Context, *GetActiveFightRequest) (*GetActiveFightResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetActiveFight not implemented")
}

func (UnimplementedCombatServiceServer) ListParticipants(context.Context, *ListParticipantsRequest) (*ListParticipantsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListParticipants not implemented")
}

func (UnimplementedCombatServiceServer) StartFight(context.Context, *StartFightRequest) (*StartFightResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartFight not implemented")
}

func (UnimplementedCombatServiceServer) FinishFight(context.Context, *FinishFightRequest) (*FinishFightResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FinishFight not implemented")
}

func (UnimplementedCombatServiceServer) JoinFight(context.Context, *JoinFightRequest) (*JoinFightResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method JoinFight not implemented")
}

func (UnimplementedCombatServiceServer) SetOwnHp(context.Context, *SetOwnHpRequest) (*SetOwnHpResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetOwnHp not implemented")
}

func (UnimplementedCombatServiceServer) SetParticipantHp(context.Context, *SetParticipantHpRequest) (*SetParticipantHpResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetParticipantHp not implemented")
}

func (UnimplementedCombatServiceServer) AddEnemy(context.Context, *AddEnemyRequest) (*AddEnemyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddEnemy not implemented")
}

func (UnimplementedCombatServiceServer) AddMonster(context.Context, *AddMonsterRequest) (*AddMonsterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddMonster not implemented")
}

func (UnimplementedCombatServiceServer) EditEnemy(context.Context, *EditEnemyRequest) (*EditEnemyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EditEnemy not implemented")
}

func (UnimplementedCombatServiceServer) DeleteEnemy(context.Context, *DeleteEnemyRequest) (*DeleteEnemyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteEnemy not implemented")
}

func (UnimplementedCombatServiceServer) ResyncStats(context.Context, *ResyncStatsRequest) (*ResyncStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResyncStats not implemented")
}

func (UnimplementedCombatServiceServer) ListMonsters(context.Context, *ListMonstersRequest) (*ListMonstersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMonsters not implemented")
}

func (UnimplementedCombatServiceServer) SubscribeParticipants(*SubscribeParticipantsRequest, CombatService_SubscribeParticipantsServer) error {
	return status.Error(codes.Unimplemented, "method SubscribeParticipants not implemented")
}

func (UnimplementedCombatServiceServer) mustEmbedUnimplementedCombatServiceServer() {}

// RegisterCombatServiceServer registers srv on s
func RegisterCombatServiceServer(s grpc.ServiceRegistrar, srv CombatServiceServer) {
	s.RegisterService(&CombatService_ServiceDesc, srv)
}

func _CombatService_GetActiveFight_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetActiveFightRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).GetActiveFight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_GetActiveFight_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).GetActiveFight(ctx, req.(*GetActiveFightRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ListParticipants_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListParticipantsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ListParticipants(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ListParticipants_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).ListParticipants(ctx, req.(*ListParticipantsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_StartFight_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StartFightRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).StartFight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_StartFight_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).StartFight(ctx, req.(*StartFightRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_FinishFight_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FinishFightRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).FinishFight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_FinishFight_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).FinishFight(ctx, req.(*FinishFightRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_JoinFight_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(JoinFightRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).JoinFight(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_JoinFight_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).JoinFight(ctx, req.(*JoinFightRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_SetOwnHp_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetOwnHpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).SetOwnHp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_SetOwnHp_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).SetOwnHp(ctx, req.(*SetOwnHpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_SetParticipantHp_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SetParticipantHpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).SetParticipantHp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_SetParticipantHp_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).SetParticipantHp(ctx, req.(*SetParticipantHpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_AddEnemy_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddEnemyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).AddEnemy(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_AddEnemy_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).AddEnemy(ctx, req.(*AddEnemyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_AddMonster_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddMonsterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).AddMonster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_AddMonster_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).AddMonster(ctx, req.(*AddMonsterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_EditEnemy_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EditEnemyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).EditEnemy(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_EditEnemy_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).EditEnemy(ctx, req.(*EditEnemyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_DeleteEnemy_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteEnemyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).DeleteEnemy(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_DeleteEnemy_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).DeleteEnemy(ctx, req.(*DeleteEnemyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ResyncStats_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ResyncStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ResyncStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ResyncStats_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).ResyncStats(ctx, req.(*ResyncStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_ListMonsters_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListMonstersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ListMonsters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ListMonsters_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CombatServiceServer).ListMonsters(ctx, req.(*ListMonstersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_SubscribeParticipants_Handler(srv any, stream grpc.ServerStream) error {
	m := new(SubscribeParticipantsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(CombatServiceServer).SubscribeParticipants(m, &grpc.GenericServerStream[SubscribeParticipantsRequest, ParticipantsSnapshot]{ServerStream: stream})
}

// CombatService_ServiceDesc is the grpc.ServiceDesc for CombatService
var CombatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CombatService_ServiceName,
	HandlerType: (*CombatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetActiveFight",
			Handler:    _CombatService_GetActiveFight_Handler,
		},
		{
			MethodName: "ListParticipants",
			Handler:    _CombatService_ListParticipants_Handler,
		},
		{
			MethodName: "StartFight",
			Handler:    _CombatService_StartFight_Handler,
		},
		{
			MethodName: "FinishFight",
			Handler:    _CombatService_FinishFight_Handler,
		},
		{
			MethodName: "JoinFight",
			Handler:    _CombatService_JoinFight_Handler,
		},
		{
			MethodName: "SetOwnHp",
			Handler:    _CombatService_SetOwnHp_Handler,
		},
		{
			MethodName: "SetParticipantHp",
			Handler:    _CombatService_SetParticipantHp_Handler,
		},
		{
			MethodName: "AddEnemy",
			Handler:    _CombatService_AddEnemy_Handler,
		},
		{
			MethodName: "AddMonster",
			Handler:    _CombatService_AddMonster_Handler,
		},
		{
			MethodName: "EditEnemy",
			Handler:    _CombatService_EditEnemy_Handler,
		},
		{
			MethodName: "DeleteEnemy",
			Handler:    _CombatService_DeleteEnemy_Handler,
		},
		{
			MethodName: "ResyncStats",
			Handler:    _CombatService_ResyncStats_Handler,
		},
		{
			MethodName: "ListMonsters",
			Handler:    _CombatService_ListMonsters_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeParticipants",
			Handler:       _CombatService_SubscribeParticipants_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "combat/v1alpha1/combat.proto",
}
