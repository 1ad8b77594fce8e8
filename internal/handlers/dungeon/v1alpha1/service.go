package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "dungeon.api.v1alpha1.GameService"

// Full method names
const (
	StartGameMethod     = "/" + ServiceName + "/StartGame"
	PerformActionMethod = "/" + ServiceName + "/PerformAction"
	GetGameMethod       = "/" + ServiceName + "/GetGame"
	ListEventsMethod    = "/" + ServiceName + "/ListEvents"
	EndGameMethod       = "/" + ServiceName + "/EndGame"
)

// GameServiceServer is the server API for the game service
type GameServiceServer interface {
	StartGame(context.Context, *StartGameRequest) (*StartGameResponse, error)
	PerformAction(context.Context, *PerformActionRequest) (*PerformActionResponse, error)
	GetGame(context.Context, *GetGameRequest) (*GetGameResponse, error)
	ListEvents(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
	EndGame(context.Context, *EndGameRequest) (*EndGameResponse, error)
}

// GameServiceDesc describes the game service to a grpc.Server
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartGame", Handler: unaryHandler(StartGameMethod, GameServiceServer.StartGame)},
		{MethodName: "PerformAction", Handler: unaryHandler(PerformActionMethod, GameServiceServer.PerformAction)},
		{MethodName: "GetGame", Handler: unaryHandler(GetGameMethod, GameServiceServer.GetGame)},
		{MethodName: "ListEvents", Handler: unaryHandler(ListEventsMethod, GameServiceServer.ListEvents)},
		{MethodName: "EndGame", Handler: unaryHandler(EndGameMethod, GameServiceServer.EndGame)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dungeon/api/v1alpha1/game.json",
}

// RegisterGameServiceServer registers the game service with a server
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

// unaryHandler adapts a typed server method to the grpc.MethodDesc shape
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(GameServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GameServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(GameServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// GameServiceClient is the client API for the game service
type GameServiceClient interface {
	StartGame(ctx context.Context, in *StartGameRequest, opts ...grpc.CallOption) (*StartGameResponse, error)
	PerformAction(ctx context.Context, in *PerformActionRequest, opts ...grpc.CallOption) (*PerformActionResponse, error)
	GetGame(ctx context.Context, in *GetGameRequest, opts ...grpc.CallOption) (*GetGameResponse, error)
	ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error)
	EndGame(ctx context.Context, in *EndGameRequest, opts ...grpc.CallOption) (*EndGameResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient creates a client that speaks the JSON codec
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc: cc}
}

func (c *gameServiceClient) StartGame(ctx context.Context, in *StartGameRequest, opts ...grpc.CallOption) (*StartGameResponse, error) {
	out := new(StartGameResponse)
	if err := c.invoke(ctx, StartGameMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) PerformAction(ctx context.Context, in *PerformActionRequest, opts ...grpc.CallOption) (*PerformActionResponse, error) {
	out := new(PerformActionResponse)
	if err := c.invoke(ctx, PerformActionMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetGame(ctx context.Context, in *GetGameRequest, opts ...grpc.CallOption) (*GetGameResponse, error) {
	out := new(GetGameResponse)
	if err := c.invoke(ctx, GetGameMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) ListEvents(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	out := new(ListEventsResponse)
	if err := c.invoke(ctx, ListEventsMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) EndGame(ctx context.Context, in *EndGameRequest, opts ...grpc.CallOption) (*EndGameResponse, error) {
	out := new(EndGameResponse)
	if err := c.invoke(ctx, EndGameMethod, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}
