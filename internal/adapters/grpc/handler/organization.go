package handler

import (
	"context"

	orgpb "github.com/chronoplane/chronoplane-backend/internal/adapters/grpc/gen/organization/v1"
	"github.com/chronoplane/chronoplane-backend/internal/core/hierarchy"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// OrganizationGrpcHandler は OrganizationService の gRPC 実装です。
type OrganizationGrpcHandler struct {
	svc hierarchy.UseCase
	orgpb.UnimplementedOrganizationServiceServer
}

// NewOrganizationGrpcHandler は OrganizationGrpcHandler を生成します。
func NewOrganizationGrpcHandler(svc hierarchy.UseCase) *OrganizationGrpcHandler {
	return &OrganizationGrpcHandler{svc: svc}
}

// GetTree はリクエスタの閲覧範囲に限定した組織ツリーを返します。
func (h *OrganizationGrpcHandler) GetTree(ctx context.Context, req *orgpb.GetTreeRequest) (*orgpb.GetTreeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	roots, err := h.svc.GetTree(ctx, hierarchy.GetTreeInput{
		RequesterID: req.GetRequesterId(),
		ProjectID:   req.GetProjectId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoRoots := make([]*orgpb.TreeNode, 0, len(roots))
	for _, root := range roots {
		protoRoots = append(protoRoots, toProtoTreeNode(root))
	}

	return &orgpb.GetTreeResponse{Roots: protoRoots}, nil
}

// ListVisibleUsers はリクエスタが閲覧可能なユーザーの一覧を返します。
func (h *OrganizationGrpcHandler) ListVisibleUsers(ctx context.Context, req *orgpb.ListVisibleUsersRequest) (*orgpb.ListVisibleUsersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	users, err := h.svc.ListVisibleUsers(ctx, hierarchy.ListVisibleUsersInput{
		RequesterID: req.GetRequesterId(),
		ProjectID:   req.GetProjectId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoUsers := make([]*orgpb.User, 0, len(users))
	for _, u := range users {
		protoUsers = append(protoUsers, toProtoUser(u))
	}

	return &orgpb.ListVisibleUsersResponse{Users: protoUsers}, nil
}

// ReassignManager はマネージャーの再割り当てを行います。manager_id が
// 未設定の場合は割り当てを解除します。
func (h *OrganizationGrpcHandler) ReassignManager(ctx context.Context, req *orgpb.ReassignManagerRequest) (*orgpb.ReassignManagerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var managerIDPtr *string
	if req.ManagerId != nil {
		value := req.ManagerId.GetValue()
		managerIDPtr = &value
	}

	updated, err := h.svc.ReassignManager(ctx, hierarchy.ReassignManagerInput{
		RequesterID: req.GetRequesterId(),
		ProjectID:   req.GetProjectId(),
		UserID:      req.GetUserId(),
		ManagerID:   managerIDPtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &orgpb.ReassignManagerResponse{User: toProtoUser(updated)}, nil
}

func toProtoTreeNode(node *hierarchy.Node) *orgpb.TreeNode {
	if node == nil {
		return nil
	}

	children := make([]*orgpb.TreeNode, 0, len(node.Children))
	for _, child := range node.Children {
		children = append(children, toProtoTreeNode(child))
	}

	return &orgpb.TreeNode{
		User:     toProtoUser(node.User),
		Children: children,
	}
}

func toProtoUser(u *hierarchy.User) *orgpb.User {
	if u == nil {
		return nil
	}

	var managerID *wrapperspb.StringValue
	if u.ManagerID != nil {
		managerID = wrapperspb.String(*u.ManagerID)
	}

	workDays := make([]int32, 0, len(u.WorkDays))
	for _, day := range u.WorkDays {
		workDays = append(workDays, int32(day))
	}

	var weeklyHours map[int32]float64
	if len(u.WeeklyHours) > 0 {
		weeklyHours = make(map[int32]float64, len(u.WeeklyHours))
		for day, hours := range u.WeeklyHours {
			weeklyHours[int32(day)] = hours
		}
	}

	return &orgpb.User{
		Id:          u.ID,
		ProjectId:   u.ProjectID,
		ManagerId:   managerID,
		Role:        toProtoRole(u.Role),
		DailyTarget: u.DailyTarget,
		WorkDays:    workDays,
		WeeklyHours: weeklyHours,
		WorkMode:    u.WorkMode,
		CreatedAt:   timestamppb.New(u.CreatedAt),
	}
}

func toProtoRole(role hierarchy.Role) orgpb.Role {
	switch role {
	case hierarchy.RoleAdmin:
		return orgpb.Role_ROLE_ADMIN
	case hierarchy.RoleManager:
		return orgpb.Role_ROLE_MANAGER
	case hierarchy.RoleMember:
		return orgpb.Role_ROLE_MEMBER
	default:
		return orgpb.Role_ROLE_UNSPECIFIED
	}
}
