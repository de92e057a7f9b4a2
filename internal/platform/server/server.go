package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	orgpb "github.com/chronoplane/chronoplane-backend/internal/adapters/grpc/gen/organization/v1"
	tspb "github.com/chronoplane/chronoplane-backend/internal/adapters/grpc/gen/timesheet/v1"
	"github.com/chronoplane/chronoplane-backend/internal/adapters/grpc/handler"
	"github.com/chronoplane/chronoplane-backend/internal/core/hierarchy"
	"github.com/chronoplane/chronoplane-backend/internal/core/timesheet"
	"google.golang.org/grpc"
)

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, orgSvc hierarchy.UseCase, tsSvc timesheet.UseCase, opts ...grpc.ServerOption) *Server {
	srv := grpc.NewServer(opts...)
	orgpb.RegisterOrganizationServiceServer(srv, handler.NewOrganizationGrpcHandler(orgSvc))
	tspb.RegisterTimesheetServiceServer(srv, handler.NewTimesheetGrpcHandler(tsSvc))

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	go func() {
		<-ctx.Done()
		s.grpcServer.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
