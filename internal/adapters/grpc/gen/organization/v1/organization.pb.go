// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: organization/v1/organization.proto

package organizationv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Role int32

const (
	Role_ROLE_UNSPECIFIED Role = 0
	Role_ROLE_ADMIN       Role = 1
	Role_ROLE_MANAGER     Role = 2
	Role_ROLE_MEMBER      Role = 3
)

// Enum value maps for Role.
var (
	Role_name = map[int32]string{
		0: "ROLE_UNSPECIFIED",
		1: "ROLE_ADMIN",
		2: "ROLE_MANAGER",
		3: "ROLE_MEMBER",
	}
	Role_value = map[string]int32{
		"ROLE_UNSPECIFIED": 0,
		"ROLE_ADMIN":       1,
		"ROLE_MANAGER":     2,
		"ROLE_MEMBER":      3,
	}
)

func (x Role) Enum() *Role {
	p := new(Role)
	*p = x
	return p
}

func (x Role) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (Role) Descriptor() protoreflect.EnumDescriptor {
	return file_organization_v1_organization_proto_enumTypes[0].Descriptor()
}

func (Role) Type() protoreflect.EnumType {
	return &file_organization_v1_organization_proto_enumTypes[0]
}

func (x Role) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use Role.Descriptor instead.
func (Role) EnumDescriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{0}
}

type User struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Id            string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProjectId     string                  `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	ManagerId     *wrapperspb.StringValue `protobuf:"bytes,3,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	Role          Role                    `protobuf:"varint,4,opt,name=role,proto3,enum=organization.v1.Role" json:"role,omitempty"`
	DailyTarget   float64                 `protobuf:"fixed64,5,opt,name=daily_target,json=dailyTarget,proto3" json:"daily_target,omitempty"`
	WorkDays      []int32                 `protobuf:"varint,6,rep,packed,name=work_days,json=workDays,proto3" json:"work_days,omitempty"`
	WeeklyHours   map[int32]float64       `protobuf:"bytes,7,rep,name=weekly_hours,json=weeklyHours,proto3" json:"weekly_hours,omitempty" protobuf_key:"varint,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	WorkMode      string                  `protobuf:"bytes,8,opt,name=work_mode,json=workMode,proto3" json:"work_mode,omitempty"`
	CreatedAt     *timestamppb.Timestamp  `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_organization_v1_organization_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{0}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *User) GetManagerId() *wrapperspb.StringValue {
	if x != nil {
		return x.ManagerId
	}
	return nil
}

func (x *User) GetRole() Role {
	if x != nil {
		return x.Role
	}
	return Role_ROLE_UNSPECIFIED
}

func (x *User) GetDailyTarget() float64 {
	if x != nil {
		return x.DailyTarget
	}
	return 0
}

func (x *User) GetWorkDays() []int32 {
	if x != nil {
		return x.WorkDays
	}
	return nil
}

func (x *User) GetWeeklyHours() map[int32]float64 {
	if x != nil {
		return x.WeeklyHours
	}
	return nil
}

func (x *User) GetWorkMode() string {
	if x != nil {
		return x.WorkMode
	}
	return ""
}

func (x *User) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

type TreeNode struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	Children      []*TreeNode            `protobuf:"bytes,2,rep,name=children,proto3" json:"children,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TreeNode) Reset() {
	*x = TreeNode{}
	mi := &file_organization_v1_organization_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TreeNode) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TreeNode) ProtoMessage() {}

func (x *TreeNode) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TreeNode.ProtoReflect.Descriptor instead.
func (*TreeNode) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{1}
}

func (x *TreeNode) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *TreeNode) GetChildren() []*TreeNode {
	if x != nil {
		return x.Children
	}
	return nil
}

type GetTreeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequesterId   string                 `protobuf:"bytes,1,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTreeRequest) Reset() {
	*x = GetTreeRequest{}
	mi := &file_organization_v1_organization_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTreeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTreeRequest) ProtoMessage() {}

func (x *GetTreeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTreeRequest.ProtoReflect.Descriptor instead.
func (*GetTreeRequest) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{2}
}

func (x *GetTreeRequest) GetRequesterId() string {
	if x != nil {
		return x.RequesterId
	}
	return ""
}

func (x *GetTreeRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type GetTreeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Roots         []*TreeNode            `protobuf:"bytes,1,rep,name=roots,proto3" json:"roots,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTreeResponse) Reset() {
	*x = GetTreeResponse{}
	mi := &file_organization_v1_organization_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTreeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTreeResponse) ProtoMessage() {}

func (x *GetTreeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTreeResponse.ProtoReflect.Descriptor instead.
func (*GetTreeResponse) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{3}
}

func (x *GetTreeResponse) GetRoots() []*TreeNode {
	if x != nil {
		return x.Roots
	}
	return nil
}

type ListVisibleUsersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequesterId   string                 `protobuf:"bytes,1,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVisibleUsersRequest) Reset() {
	*x = ListVisibleUsersRequest{}
	mi := &file_organization_v1_organization_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVisibleUsersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVisibleUsersRequest) ProtoMessage() {}

func (x *ListVisibleUsersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVisibleUsersRequest.ProtoReflect.Descriptor instead.
func (*ListVisibleUsersRequest) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{4}
}

func (x *ListVisibleUsersRequest) GetRequesterId() string {
	if x != nil {
		return x.RequesterId
	}
	return ""
}

func (x *ListVisibleUsersRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

type ListVisibleUsersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Users         []*User                `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListVisibleUsersResponse) Reset() {
	*x = ListVisibleUsersResponse{}
	mi := &file_organization_v1_organization_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListVisibleUsersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListVisibleUsersResponse) ProtoMessage() {}

func (x *ListVisibleUsersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListVisibleUsersResponse.ProtoReflect.Descriptor instead.
func (*ListVisibleUsersResponse) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{5}
}

func (x *ListVisibleUsersResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

type ReassignManagerRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	RequesterId string                 `protobuf:"bytes,1,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	ProjectId   string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	UserId      string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// 未設定の場合はマネージャー割り当ての解除を意味します。
	ManagerId     *wrapperspb.StringValue `protobuf:"bytes,4,opt,name=manager_id,json=managerId,proto3" json:"manager_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReassignManagerRequest) Reset() {
	*x = ReassignManagerRequest{}
	mi := &file_organization_v1_organization_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReassignManagerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReassignManagerRequest) ProtoMessage() {}

func (x *ReassignManagerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReassignManagerRequest.ProtoReflect.Descriptor instead.
func (*ReassignManagerRequest) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{6}
}

func (x *ReassignManagerRequest) GetRequesterId() string {
	if x != nil {
		return x.RequesterId
	}
	return ""
}

func (x *ReassignManagerRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *ReassignManagerRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ReassignManagerRequest) GetManagerId() *wrapperspb.StringValue {
	if x != nil {
		return x.ManagerId
	}
	return nil
}

type ReassignManagerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReassignManagerResponse) Reset() {
	*x = ReassignManagerResponse{}
	mi := &file_organization_v1_organization_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReassignManagerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReassignManagerResponse) ProtoMessage() {}

func (x *ReassignManagerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_organization_v1_organization_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReassignManagerResponse.ProtoReflect.Descriptor instead.
func (*ReassignManagerResponse) Descriptor() ([]byte, []int) {
	return file_organization_v1_organization_proto_rawDescGZIP(), []int{7}
}

func (x *ReassignManagerResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

var File_organization_v1_organization_proto protoreflect.FileDescriptor

const file_organization_v1_organization_proto_rawDesc = "" +
	"\n" +
	"\"organization/v1/organization.proto\x12\x0forganization.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\xc0\x03\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12;\n" +
	"\n" +
	"manager_id\x18\x03 \x01(\v2\x1c.google.protobuf.StringValueR\tmanagerId\x12)\n" +
	"\x04role\x18\x04 \x01(\x0e2\x15.organization.v1.RoleR\x04role\x12!\n" +
	"\fdaily_target\x18\x05 \x01(\x01R\vdailyTarget\x12\x1b\n" +
	"\twork_days\x18\x06 \x03(\x05R\bworkDays\x12I\n" +
	"\fweekly_hours\x18\a \x03(\v2&.organization.v1.User.WeeklyHoursEntryR\vweeklyHours\x12\x1b\n" +
	"\twork_mode\x18\b \x01(\tR\bworkMode\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x1a>\n" +
	"\x10WeeklyHoursEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\x05R\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"l\n" +
	"\bTreeNode\x12)\n" +
	"\x04user\x18\x01 \x01(\v2\x15.organization.v1.UserR\x04user\x125\n" +
	"\bchildren\x18\x02 \x03(\v2\x19.organization.v1.TreeNodeR\bchildren\"R\n" +
	"\x0eGetTreeRequest\x12!\n" +
	"\frequester_id\x18\x01 \x01(\tR\vrequesterId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\"B\n" +
	"\x0fGetTreeResponse\x12/\n" +
	"\x05roots\x18\x01 \x03(\v2\x19.organization.v1.TreeNodeR\x05roots\"[\n" +
	"\x17ListVisibleUsersRequest\x12!\n" +
	"\frequester_id\x18\x01 \x01(\tR\vrequesterId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\"G\n" +
	"\x18ListVisibleUsersResponse\x12+\n" +
	"\x05users\x18\x01 \x03(\v2\x15.organization.v1.UserR\x05users\"\xb0\x01\n" +
	"\x16ReassignManagerRequest\x12!\n" +
	"\frequester_id\x18\x01 \x01(\tR\vrequesterId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12;\n" +
	"\n" +
	"manager_id\x18\x04 \x01(\v2\x1c.google.protobuf.StringValueR\tmanagerId\"D\n" +
	"\x17ReassignManagerResponse\x12)\n" +
	"\x04user\x18\x01 \x01(\v2\x15.organization.v1.UserR\x04user*O\n" +
	"\x04Role\x12\x14\n" +
	"\x10ROLE_UNSPECIFIED\x10\x00\x12\x0e\n" +
	"\n" +
	"ROLE_ADMIN\x10\x01\x12\x10\n" +
	"\fROLE_MANAGER\x10\x02\x12\x0f\n" +
	"\vROLE_MEMBER\x10\x032\xb2\x02\n" +
	"\x13OrganizationService\x12L\n" +
	"\aGetTree\x12\x1f.organization.v1.GetTreeRequest\x1a .organization.v1.GetTreeResponse\x12g\n" +
	"\x10ListVisibleUsers\x12(.organization.v1.ListVisibleUsersRequest\x1a).organization.v1.ListVisibleUsersResponse\x12d\n" +
	"\x0fReassignManager\x12'.organization.v1.ReassignManagerRequest\x1a(.organization.v1.ReassignManagerResponseBfZdgithub.com/chronoplane/chronoplane-backend/internal/adapters/grpc/gen/organization/v1;organizationv1b\x06proto3"

var (
	file_organization_v1_organization_proto_rawDescOnce sync.Once
	file_organization_v1_organization_proto_rawDescData []byte
)

func file_organization_v1_organization_proto_rawDescGZIP() []byte {
	file_organization_v1_organization_proto_rawDescOnce.Do(func() {
		file_organization_v1_organization_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_organization_v1_organization_proto_rawDesc), len(file_organization_v1_organization_proto_rawDesc)))
	})
	return file_organization_v1_organization_proto_rawDescData
}

var file_organization_v1_organization_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_organization_v1_organization_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_organization_v1_organization_proto_goTypes = []any{
	(Role)(0),                        // 0: organization.v1.Role
	(*User)(nil),                     // 1: organization.v1.User
	(*TreeNode)(nil),                 // 2: organization.v1.TreeNode
	(*GetTreeRequest)(nil),           // 3: organization.v1.GetTreeRequest
	(*GetTreeResponse)(nil),          // 4: organization.v1.GetTreeResponse
	(*ListVisibleUsersRequest)(nil),  // 5: organization.v1.ListVisibleUsersRequest
	(*ListVisibleUsersResponse)(nil), // 6: organization.v1.ListVisibleUsersResponse
	(*ReassignManagerRequest)(nil),   // 7: organization.v1.ReassignManagerRequest
	(*ReassignManagerResponse)(nil),  // 8: organization.v1.ReassignManagerResponse
	nil,                              // 9: organization.v1.User.WeeklyHoursEntry
	(*wrapperspb.StringValue)(nil),   // 10: google.protobuf.StringValue
	(*timestamppb.Timestamp)(nil),    // 11: google.protobuf.Timestamp
}
var file_organization_v1_organization_proto_depIdxs = []int32{
	10, // 0: organization.v1.User.manager_id:type_name -> google.protobuf.StringValue
	0,  // 1: organization.v1.User.role:type_name -> organization.v1.Role
	9,  // 2: organization.v1.User.weekly_hours:type_name -> organization.v1.User.WeeklyHoursEntry
	11, // 3: organization.v1.User.created_at:type_name -> google.protobuf.Timestamp
	1,  // 4: organization.v1.TreeNode.user:type_name -> organization.v1.User
	2,  // 5: organization.v1.TreeNode.children:type_name -> organization.v1.TreeNode
	2,  // 6: organization.v1.GetTreeResponse.roots:type_name -> organization.v1.TreeNode
	1,  // 7: organization.v1.ListVisibleUsersResponse.users:type_name -> organization.v1.User
	10, // 8: organization.v1.ReassignManagerRequest.manager_id:type_name -> google.protobuf.StringValue
	1,  // 9: organization.v1.ReassignManagerResponse.user:type_name -> organization.v1.User
	3,  // 10: organization.v1.OrganizationService.GetTree:input_type -> organization.v1.GetTreeRequest
	5,  // 11: organization.v1.OrganizationService.ListVisibleUsers:input_type -> organization.v1.ListVisibleUsersRequest
	7,  // 12: organization.v1.OrganizationService.ReassignManager:input_type -> organization.v1.ReassignManagerRequest
	4,  // 13: organization.v1.OrganizationService.GetTree:output_type -> organization.v1.GetTreeResponse
	6,  // 14: organization.v1.OrganizationService.ListVisibleUsers:output_type -> organization.v1.ListVisibleUsersResponse
	8,  // 15: organization.v1.OrganizationService.ReassignManager:output_type -> organization.v1.ReassignManagerResponse
	13, // [13:16] is the sub-list for method output_type
	10, // [10:13] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_organization_v1_organization_proto_init() }
func file_organization_v1_organization_proto_init() {
	if File_organization_v1_organization_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_organization_v1_organization_proto_rawDesc), len(file_organization_v1_organization_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_organization_v1_organization_proto_goTypes,
		DependencyIndexes: file_organization_v1_organization_proto_depIdxs,
		EnumInfos:         file_organization_v1_organization_proto_enumTypes,
		MessageInfos:      file_organization_v1_organization_proto_msgTypes,
	}.Build()
	File_organization_v1_organization_proto = out.File
	file_organization_v1_organization_proto_goTypes = nil
	file_organization_v1_organization_proto_depIdxs = nil
}
