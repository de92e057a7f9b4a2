// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: timesheet/v1/timesheet.proto

package timesheetv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type DayStatus int32

const (
	DayStatus_DAY_STATUS_UNSPECIFIED DayStatus = 0
	DayStatus_DAY_STATUS_MET         DayStatus = 1
	DayStatus_DAY_STATUS_MISSED      DayStatus = 2
	DayStatus_DAY_STATUS_OFF         DayStatus = 3
	DayStatus_DAY_STATUS_PENDING     DayStatus = 4
)

// Enum value maps for DayStatus.
var (
	DayStatus_name = map[int32]string{
		0: "DAY_STATUS_UNSPECIFIED",
		1: "DAY_STATUS_MET",
		2: "DAY_STATUS_MISSED",
		3: "DAY_STATUS_OFF",
		4: "DAY_STATUS_PENDING",
	}
	DayStatus_value = map[string]int32{
		"DAY_STATUS_UNSPECIFIED": 0,
		"DAY_STATUS_MET":         1,
		"DAY_STATUS_MISSED":      2,
		"DAY_STATUS_OFF":         3,
		"DAY_STATUS_PENDING":     4,
	}
)

func (x DayStatus) Enum() *DayStatus {
	p := new(DayStatus)
	*p = x
	return p
}

func (x DayStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (DayStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_timesheet_v1_timesheet_proto_enumTypes[0].Descriptor()
}

func (DayStatus) Type() protoreflect.EnumType {
	return &file_timesheet_v1_timesheet_proto_enumTypes[0]
}

func (x DayStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use DayStatus.Descriptor instead.
func (DayStatus) EnumDescriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{0}
}

type Break struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	EndedAt       *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=ended_at,json=endedAt,proto3" json:"ended_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Break) Reset() {
	*x = Break{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Break) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Break) ProtoMessage() {}

func (x *Break) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Break.ProtoReflect.Descriptor instead.
func (*Break) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{0}
}

func (x *Break) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Break) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *Break) GetEndedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.EndedAt
	}
	return nil
}

type Entry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	EndedAt       *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=ended_at,json=endedAt,proto3" json:"ended_at,omitempty"`
	Manual        bool                   `protobuf:"varint,5,opt,name=manual,proto3" json:"manual,omitempty"`
	Breaks        []*Break               `protobuf:"bytes,6,rep,name=breaks,proto3" json:"breaks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Entry) Reset() {
	*x = Entry{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Entry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Entry) ProtoMessage() {}

func (x *Entry) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Entry.ProtoReflect.Descriptor instead.
func (*Entry) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{1}
}

func (x *Entry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Entry) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Entry) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *Entry) GetEndedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.EndedAt
	}
	return nil
}

func (x *Entry) GetManual() bool {
	if x != nil {
		return x.Manual
	}
	return false
}

func (x *Entry) GetBreaks() []*Break {
	if x != nil {
		return x.Breaks
	}
	return nil
}

type Marker struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	EndedAt       *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=ended_at,json=endedAt,proto3" json:"ended_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Marker) Reset() {
	*x = Marker{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Marker) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Marker) ProtoMessage() {}

func (x *Marker) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Marker.ProtoReflect.Descriptor instead.
func (*Marker) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{2}
}

func (x *Marker) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Marker) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Marker) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *Marker) GetEndedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.EndedAt
	}
	return nil
}

type DailyReport struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// YYYY-MM-DD 形式の暦日です。
	Date             string                 `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`
	Weekday          string                 `protobuf:"bytes,2,opt,name=weekday,proto3" json:"weekday,omitempty"`
	IsWorkDay        bool                   `protobuf:"varint,3,opt,name=is_work_day,json=isWorkDay,proto3" json:"is_work_day,omitempty"`
	WorkdayStart     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=workday_start,json=workdayStart,proto3" json:"workday_start,omitempty"`
	WorkdayEnd       *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=workday_end,json=workdayEnd,proto3" json:"workday_end,omitempty"`
	TotalHours       float64                `protobuf:"fixed64,6,opt,name=total_hours,json=totalHours,proto3" json:"total_hours,omitempty"`
	NetHours         float64                `protobuf:"fixed64,7,opt,name=net_hours,json=netHours,proto3" json:"net_hours,omitempty"`
	Status           DayStatus              `protobuf:"varint,8,opt,name=status,proto3,enum=timesheet.v1.DayStatus" json:"status,omitempty"`
	HasManualEntries bool                   `protobuf:"varint,9,opt,name=has_manual_entries,json=hasManualEntries,proto3" json:"has_manual_entries,omitempty"`
	SessionRange     string                 `protobuf:"bytes,10,opt,name=session_range,json=sessionRange,proto3" json:"session_range,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *DailyReport) Reset() {
	*x = DailyReport{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DailyReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DailyReport) ProtoMessage() {}

func (x *DailyReport) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DailyReport.ProtoReflect.Descriptor instead.
func (*DailyReport) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{3}
}

func (x *DailyReport) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *DailyReport) GetWeekday() string {
	if x != nil {
		return x.Weekday
	}
	return ""
}

func (x *DailyReport) GetIsWorkDay() bool {
	if x != nil {
		return x.IsWorkDay
	}
	return false
}

func (x *DailyReport) GetWorkdayStart() *timestamppb.Timestamp {
	if x != nil {
		return x.WorkdayStart
	}
	return nil
}

func (x *DailyReport) GetWorkdayEnd() *timestamppb.Timestamp {
	if x != nil {
		return x.WorkdayEnd
	}
	return nil
}

func (x *DailyReport) GetTotalHours() float64 {
	if x != nil {
		return x.TotalHours
	}
	return 0
}

func (x *DailyReport) GetNetHours() float64 {
	if x != nil {
		return x.NetHours
	}
	return 0
}

func (x *DailyReport) GetStatus() DayStatus {
	if x != nil {
		return x.Status
	}
	return DayStatus_DAY_STATUS_UNSPECIFIED
}

func (x *DailyReport) GetHasManualEntries() bool {
	if x != nil {
		return x.HasManualEntries
	}
	return false
}

func (x *DailyReport) GetSessionRange() string {
	if x != nil {
		return x.SessionRange
	}
	return ""
}

type MonthlyReport struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Days             []*DailyReport         `protobuf:"bytes,1,rep,name=days,proto3" json:"days,omitempty"`
	TotalWorkedHours float64                `protobuf:"fixed64,2,opt,name=total_worked_hours,json=totalWorkedHours,proto3" json:"total_worked_hours,omitempty"`
	TotalTargetHours float64                `protobuf:"fixed64,3,opt,name=total_target_hours,json=totalTargetHours,proto3" json:"total_target_hours,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *MonthlyReport) Reset() {
	*x = MonthlyReport{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MonthlyReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MonthlyReport) ProtoMessage() {}

func (x *MonthlyReport) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MonthlyReport.ProtoReflect.Descriptor instead.
func (*MonthlyReport) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{4}
}

func (x *MonthlyReport) GetDays() []*DailyReport {
	if x != nil {
		return x.Days
	}
	return nil
}

func (x *MonthlyReport) GetTotalWorkedHours() float64 {
	if x != nil {
		return x.TotalWorkedHours
	}
	return 0
}

func (x *MonthlyReport) GetTotalTargetHours() float64 {
	if x != nil {
		return x.TotalTargetHours
	}
	return 0
}

type Balance struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WorkedHours   float64                `protobuf:"fixed64,1,opt,name=worked_hours,json=workedHours,proto3" json:"worked_hours,omitempty"`
	TargetHours   float64                `protobuf:"fixed64,2,opt,name=target_hours,json=targetHours,proto3" json:"target_hours,omitempty"`
	Balance       float64                `protobuf:"fixed64,3,opt,name=balance,proto3" json:"balance,omitempty"`
	Overtime      float64                `protobuf:"fixed64,4,opt,name=overtime,proto3" json:"overtime,omitempty"`
	Deficit       float64                `protobuf:"fixed64,5,opt,name=deficit,proto3" json:"deficit,omitempty"`
	DaysWorked    int32                  `protobuf:"varint,6,opt,name=days_worked,json=daysWorked,proto3" json:"days_worked,omitempty"`
	TodayWorked   float64                `protobuf:"fixed64,7,opt,name=today_worked,json=todayWorked,proto3" json:"today_worked,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Balance) Reset() {
	*x = Balance{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Balance) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Balance) ProtoMessage() {}

func (x *Balance) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Balance.ProtoReflect.Descriptor instead.
func (*Balance) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{5}
}

func (x *Balance) GetWorkedHours() float64 {
	if x != nil {
		return x.WorkedHours
	}
	return 0
}

func (x *Balance) GetTargetHours() float64 {
	if x != nil {
		return x.TargetHours
	}
	return 0
}

func (x *Balance) GetBalance() float64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

func (x *Balance) GetOvertime() float64 {
	if x != nil {
		return x.Overtime
	}
	return 0
}

func (x *Balance) GetDeficit() float64 {
	if x != nil {
		return x.Deficit
	}
	return 0
}

func (x *Balance) GetDaysWorked() int32 {
	if x != nil {
		return x.DaysWorked
	}
	return 0
}

func (x *Balance) GetTodayWorked() float64 {
	if x != nil {
		return x.TodayWorked
	}
	return 0
}

type GetDailyReportRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	RequesterId string                 `protobuf:"bytes,1,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	ProjectId   string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	UserId      string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// YYYY-MM-DD 形式です。
	Date          string `protobuf:"bytes,4,opt,name=date,proto3" json:"date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDailyReportRequest) Reset() {
	*x = GetDailyReportRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDailyReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDailyReportRequest) ProtoMessage() {}

func (x *GetDailyReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDailyReportRequest.ProtoReflect.Descriptor instead.
func (*GetDailyReportRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{6}
}

func (x *GetDailyReportRequest) GetRequesterId() string {
	if x != nil {
		return x.RequesterId
	}
	return ""
}

func (x *GetDailyReportRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *GetDailyReportRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetDailyReportRequest) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

type GetDailyReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *DailyReport           `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDailyReportResponse) Reset() {
	*x = GetDailyReportResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDailyReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDailyReportResponse) ProtoMessage() {}

func (x *GetDailyReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDailyReportResponse.ProtoReflect.Descriptor instead.
func (*GetDailyReportResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{7}
}

func (x *GetDailyReportResponse) GetReport() *DailyReport {
	if x != nil {
		return x.Report
	}
	return nil
}

type GetMonthlyReportRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	RequesterId string                 `protobuf:"bytes,1,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	ProjectId   string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	UserId      string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	// YYYY-MM 形式です。
	Month         string `protobuf:"bytes,4,opt,name=month,proto3" json:"month,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMonthlyReportRequest) Reset() {
	*x = GetMonthlyReportRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMonthlyReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMonthlyReportRequest) ProtoMessage() {}

func (x *GetMonthlyReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMonthlyReportRequest.ProtoReflect.Descriptor instead.
func (*GetMonthlyReportRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{8}
}

func (x *GetMonthlyReportRequest) GetRequesterId() string {
	if x != nil {
		return x.RequesterId
	}
	return ""
}

func (x *GetMonthlyReportRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *GetMonthlyReportRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetMonthlyReportRequest) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

type GetMonthlyReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *MonthlyReport         `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMonthlyReportResponse) Reset() {
	*x = GetMonthlyReportResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMonthlyReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMonthlyReportResponse) ProtoMessage() {}

func (x *GetMonthlyReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMonthlyReportResponse.ProtoReflect.Descriptor instead.
func (*GetMonthlyReportResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{9}
}

func (x *GetMonthlyReportResponse) GetReport() *MonthlyReport {
	if x != nil {
		return x.Report
	}
	return nil
}

type GetBalanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RequesterId   string                 `protobuf:"bytes,1,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	ProjectId     string                 `protobuf:"bytes,2,opt,name=project_id,json=projectId,proto3" json:"project_id,omitempty"`
	UserId        string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceRequest) Reset() {
	*x = GetBalanceRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceRequest) ProtoMessage() {}

func (x *GetBalanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceRequest.ProtoReflect.Descriptor instead.
func (*GetBalanceRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{10}
}

func (x *GetBalanceRequest) GetRequesterId() string {
	if x != nil {
		return x.RequesterId
	}
	return ""
}

func (x *GetBalanceRequest) GetProjectId() string {
	if x != nil {
		return x.ProjectId
	}
	return ""
}

func (x *GetBalanceRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetBalanceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Balance       *Balance               `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceResponse) Reset() {
	*x = GetBalanceResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceResponse) ProtoMessage() {}

func (x *GetBalanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceResponse.ProtoReflect.Descriptor instead.
func (*GetBalanceResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{11}
}

func (x *GetBalanceResponse) GetBalance() *Balance {
	if x != nil {
		return x.Balance
	}
	return nil
}

type StartWorkdayRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartWorkdayRequest) Reset() {
	*x = StartWorkdayRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartWorkdayRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartWorkdayRequest) ProtoMessage() {}

func (x *StartWorkdayRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartWorkdayRequest.ProtoReflect.Descriptor instead.
func (*StartWorkdayRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{12}
}

func (x *StartWorkdayRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type StartWorkdayResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Marker        *Marker                `protobuf:"bytes,1,opt,name=marker,proto3" json:"marker,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartWorkdayResponse) Reset() {
	*x = StartWorkdayResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartWorkdayResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartWorkdayResponse) ProtoMessage() {}

func (x *StartWorkdayResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartWorkdayResponse.ProtoReflect.Descriptor instead.
func (*StartWorkdayResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{13}
}

func (x *StartWorkdayResponse) GetMarker() *Marker {
	if x != nil {
		return x.Marker
	}
	return nil
}

type EndWorkdayRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EndWorkdayRequest) Reset() {
	*x = EndWorkdayRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EndWorkdayRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EndWorkdayRequest) ProtoMessage() {}

func (x *EndWorkdayRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EndWorkdayRequest.ProtoReflect.Descriptor instead.
func (*EndWorkdayRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{14}
}

func (x *EndWorkdayRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type EndWorkdayResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Marker        *Marker                `protobuf:"bytes,1,opt,name=marker,proto3" json:"marker,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EndWorkdayResponse) Reset() {
	*x = EndWorkdayResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EndWorkdayResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EndWorkdayResponse) ProtoMessage() {}

func (x *EndWorkdayResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EndWorkdayResponse.ProtoReflect.Descriptor instead.
func (*EndWorkdayResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{15}
}

func (x *EndWorkdayResponse) GetMarker() *Marker {
	if x != nil {
		return x.Marker
	}
	return nil
}

type StartEntryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Manual        bool                   `protobuf:"varint,2,opt,name=manual,proto3" json:"manual,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartEntryRequest) Reset() {
	*x = StartEntryRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartEntryRequest) ProtoMessage() {}

func (x *StartEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartEntryRequest.ProtoReflect.Descriptor instead.
func (*StartEntryRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{16}
}

func (x *StartEntryRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *StartEntryRequest) GetManual() bool {
	if x != nil {
		return x.Manual
	}
	return false
}

type StartEntryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entry         *Entry                 `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartEntryResponse) Reset() {
	*x = StartEntryResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartEntryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartEntryResponse) ProtoMessage() {}

func (x *StartEntryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartEntryResponse.ProtoReflect.Descriptor instead.
func (*StartEntryResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{17}
}

func (x *StartEntryResponse) GetEntry() *Entry {
	if x != nil {
		return x.Entry
	}
	return nil
}

type StopEntryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StopEntryRequest) Reset() {
	*x = StopEntryRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopEntryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopEntryRequest) ProtoMessage() {}

func (x *StopEntryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopEntryRequest.ProtoReflect.Descriptor instead.
func (*StopEntryRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{18}
}

func (x *StopEntryRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type StopEntryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entry         *Entry                 `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StopEntryResponse) Reset() {
	*x = StopEntryResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StopEntryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StopEntryResponse) ProtoMessage() {}

func (x *StopEntryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StopEntryResponse.ProtoReflect.Descriptor instead.
func (*StopEntryResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{19}
}

func (x *StopEntryResponse) GetEntry() *Entry {
	if x != nil {
		return x.Entry
	}
	return nil
}

type StartBreakRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartBreakRequest) Reset() {
	*x = StartBreakRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartBreakRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartBreakRequest) ProtoMessage() {}

func (x *StartBreakRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartBreakRequest.ProtoReflect.Descriptor instead.
func (*StartBreakRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{20}
}

func (x *StartBreakRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type StartBreakResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entry         *Entry                 `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartBreakResponse) Reset() {
	*x = StartBreakResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartBreakResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartBreakResponse) ProtoMessage() {}

func (x *StartBreakResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartBreakResponse.ProtoReflect.Descriptor instead.
func (*StartBreakResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{21}
}

func (x *StartBreakResponse) GetEntry() *Entry {
	if x != nil {
		return x.Entry
	}
	return nil
}

type EndBreakRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EndBreakRequest) Reset() {
	*x = EndBreakRequest{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EndBreakRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EndBreakRequest) ProtoMessage() {}

func (x *EndBreakRequest) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EndBreakRequest.ProtoReflect.Descriptor instead.
func (*EndBreakRequest) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{22}
}

func (x *EndBreakRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type EndBreakResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entry         *Entry                 `protobuf:"bytes,1,opt,name=entry,proto3" json:"entry,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EndBreakResponse) Reset() {
	*x = EndBreakResponse{}
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EndBreakResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EndBreakResponse) ProtoMessage() {}

func (x *EndBreakResponse) ProtoReflect() protoreflect.Message {
	mi := &file_timesheet_v1_timesheet_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EndBreakResponse.ProtoReflect.Descriptor instead.
func (*EndBreakResponse) Descriptor() ([]byte, []int) {
	return file_timesheet_v1_timesheet_proto_rawDescGZIP(), []int{23}
}

func (x *EndBreakResponse) GetEntry() *Entry {
	if x != nil {
		return x.Entry
	}
	return nil
}

var File_timesheet_v1_timesheet_proto protoreflect.FileDescriptor

const file_timesheet_v1_timesheet_proto_rawDesc = "" +
	"\n" +
	"\x1ctimesheet/v1/timesheet.proto\x12\ftimesheet.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\x89\x01\n" +
	"\x05Break\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x129\n" +
	"\n" +
	"started_at\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x125\n" +
	"\bended_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\aendedAt\"\xe9\x01\n" +
	"\x05Entry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x129\n" +
	"\n" +
	"started_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x125\n" +
	"\bended_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\aendedAt\x12\x16\n" +
	"\x06manual\x18\x05 \x01(\bR\x06manual\x12+\n" +
	"\x06breaks\x18\x06 \x03(\v2\x13.timesheet.v1.BreakR\x06breaks\"\xa5\x01\n" +
	"\x06Marker\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x129\n" +
	"\n" +
	"started_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x125\n" +
	"\bended_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\aendedAt\"\x9b\x03\n" +
	"\vDailyReport\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\x12\x18\n" +
	"\aweekday\x18\x02 \x01(\tR\aweekday\x12\x1e\n" +
	"\vis_work_day\x18\x03 \x01(\bR\tisWorkDay\x12?\n" +
	"\rworkday_start\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\fworkdayStart\x12;\n" +
	"\vworkday_end\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"workdayEnd\x12\x1f\n" +
	"\vtotal_hours\x18\x06 \x01(\x01R\n" +
	"totalHours\x12\x1b\n" +
	"\tnet_hours\x18\a \x01(\x01R\bnetHours\x12/\n" +
	"\x06status\x18\b \x01(\x0e2\x17.timesheet.v1.DayStatusR\x06status\x12,\n" +
	"\x12has_manual_entries\x18\t \x01(\bR\x10hasManualEntries\x12#\n" +
	"\rsession_range\x18\n" +
	" \x01(\tR\fsessionRange\"\x9a\x01\n" +
	"\rMonthlyReport\x12-\n" +
	"\x04days\x18\x01 \x03(\v2\x19.timesheet.v1.DailyReportR\x04days\x12,\n" +
	"\x12total_worked_hours\x18\x02 \x01(\x01R\x10totalWorkedHours\x12,\n" +
	"\x12total_target_hours\x18\x03 \x01(\x01R\x10totalTargetHours\"\xe3\x01\n" +
	"\aBalance\x12!\n" +
	"\fworked_hours\x18\x01 \x01(\x01R\vworkedHours\x12!\n" +
	"\ftarget_hours\x18\x02 \x01(\x01R\vtargetHours\x12\x18\n" +
	"\abalance\x18\x03 \x01(\x01R\abalance\x12\x1a\n" +
	"\bovertime\x18\x04 \x01(\x01R\bovertime\x12\x18\n" +
	"\adeficit\x18\x05 \x01(\x01R\adeficit\x12\x1f\n" +
	"\vdays_worked\x18\x06 \x01(\x05R\n" +
	"daysWorked\x12!\n" +
	"\ftoday_worked\x18\a \x01(\x01R\vtodayWorked\"\x86\x01\n" +
	"\x15GetDailyReportRequest\x12!\n" +
	"\frequester_id\x18\x01 \x01(\tR\vrequesterId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12\x12\n" +
	"\x04date\x18\x04 \x01(\tR\x04date\"K\n" +
	"\x16GetDailyReportResponse\x121\n" +
	"\x06report\x18\x01 \x01(\v2\x19.timesheet.v1.DailyReportR\x06report\"\x8a\x01\n" +
	"\x17GetMonthlyReportRequest\x12!\n" +
	"\frequester_id\x18\x01 \x01(\tR\vrequesterId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12\x14\n" +
	"\x05month\x18\x04 \x01(\tR\x05month\"O\n" +
	"\x18GetMonthlyReportResponse\x123\n" +
	"\x06report\x18\x01 \x01(\v2\x1b.timesheet.v1.MonthlyReportR\x06report\"n\n" +
	"\x11GetBalanceRequest\x12!\n" +
	"\frequester_id\x18\x01 \x01(\tR\vrequesterId\x12\x1d\n" +
	"\n" +
	"project_id\x18\x02 \x01(\tR\tprojectId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\"E\n" +
	"\x12GetBalanceResponse\x12/\n" +
	"\abalance\x18\x01 \x01(\v2\x15.timesheet.v1.BalanceR\abalance\".\n" +
	"\x13StartWorkdayRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"D\n" +
	"\x14StartWorkdayResponse\x12,\n" +
	"\x06marker\x18\x01 \x01(\v2\x14.timesheet.v1.MarkerR\x06marker\",\n" +
	"\x11EndWorkdayRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"B\n" +
	"\x12EndWorkdayResponse\x12,\n" +
	"\x06marker\x18\x01 \x01(\v2\x14.timesheet.v1.MarkerR\x06marker\"D\n" +
	"\x11StartEntryRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x16\n" +
	"\x06manual\x18\x02 \x01(\bR\x06manual\"?\n" +
	"\x12StartEntryResponse\x12)\n" +
	"\x05entry\x18\x01 \x01(\v2\x13.timesheet.v1.EntryR\x05entry\"+\n" +
	"\x10StopEntryRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\">\n" +
	"\x11StopEntryResponse\x12)\n" +
	"\x05entry\x18\x01 \x01(\v2\x13.timesheet.v1.EntryR\x05entry\",\n" +
	"\x11StartBreakRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"?\n" +
	"\x12StartBreakResponse\x12)\n" +
	"\x05entry\x18\x01 \x01(\v2\x13.timesheet.v1.EntryR\x05entry\"*\n" +
	"\x0fEndBreakRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"=\n" +
	"\x10EndBreakResponse\x12)\n" +
	"\x05entry\x18\x01 \x01(\v2\x13.timesheet.v1.EntryR\x05entry*~\n" +
	"\tDayStatus\x12\x1a\n" +
	"\x16DAY_STATUS_UNSPECIFIED\x10\x00\x12\x12\n" +
	"\x0eDAY_STATUS_MET\x10\x01\x12\x15\n" +
	"\x11DAY_STATUS_MISSED\x10\x02\x12\x12\n" +
	"\x0eDAY_STATUS_OFF\x10\x03\x12\x16\n" +
	"\x12DAY_STATUS_PENDING\x10\x042\x86\x06\n" +
	"\x10TimesheetService\x12[\n" +
	"\x0eGetDailyReport\x12#.timesheet.v1.GetDailyReportRequest\x1a$.timesheet.v1.GetDailyReportResponse\x12a\n" +
	"\x10GetMonthlyReport\x12%.timesheet.v1.GetMonthlyReportRequest\x1a&.timesheet.v1.GetMonthlyReportResponse\x12O\n" +
	"\n" +
	"GetBalance\x12\x1f.timesheet.v1.GetBalanceRequest\x1a .timesheet.v1.GetBalanceResponse\x12U\n" +
	"\fStartWorkday\x12!.timesheet.v1.StartWorkdayRequest\x1a\".timesheet.v1.StartWorkdayResponse\x12O\n" +
	"\n" +
	"EndWorkday\x12\x1f.timesheet.v1.EndWorkdayRequest\x1a .timesheet.v1.EndWorkdayResponse\x12O\n" +
	"\n" +
	"StartEntry\x12\x1f.timesheet.v1.StartEntryRequest\x1a .timesheet.v1.StartEntryResponse\x12L\n" +
	"\tStopEntry\x12\x1e.timesheet.v1.StopEntryRequest\x1a\x1f.timesheet.v1.StopEntryResponse\x12O\n" +
	"\n" +
	"StartBreak\x12\x1f.timesheet.v1.StartBreakRequest\x1a .timesheet.v1.StartBreakResponse\x12I\n" +
	"\bEndBreak\x12\x1d.timesheet.v1.EndBreakRequest\x1a\x1e.timesheet.v1.EndBreakResponseB`Z^github.com/chronoplane/chronoplane-backend/internal/adapters/grpc/gen/timesheet/v1;timesheetv1b\x06proto3"

var (
	file_timesheet_v1_timesheet_proto_rawDescOnce sync.Once
	file_timesheet_v1_timesheet_proto_rawDescData []byte
)

func file_timesheet_v1_timesheet_proto_rawDescGZIP() []byte {
	file_timesheet_v1_timesheet_proto_rawDescOnce.Do(func() {
		file_timesheet_v1_timesheet_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_timesheet_v1_timesheet_proto_rawDesc), len(file_timesheet_v1_timesheet_proto_rawDesc)))
	})
	return file_timesheet_v1_timesheet_proto_rawDescData
}

var file_timesheet_v1_timesheet_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_timesheet_v1_timesheet_proto_msgTypes = make([]protoimpl.MessageInfo, 24)
var file_timesheet_v1_timesheet_proto_goTypes = []any{
	(DayStatus)(0),                   // 0: timesheet.v1.DayStatus
	(*Break)(nil),                    // 1: timesheet.v1.Break
	(*Entry)(nil),                    // 2: timesheet.v1.Entry
	(*Marker)(nil),                   // 3: timesheet.v1.Marker
	(*DailyReport)(nil),              // 4: timesheet.v1.DailyReport
	(*MonthlyReport)(nil),            // 5: timesheet.v1.MonthlyReport
	(*Balance)(nil),                  // 6: timesheet.v1.Balance
	(*GetDailyReportRequest)(nil),    // 7: timesheet.v1.GetDailyReportRequest
	(*GetDailyReportResponse)(nil),   // 8: timesheet.v1.GetDailyReportResponse
	(*GetMonthlyReportRequest)(nil),  // 9: timesheet.v1.GetMonthlyReportRequest
	(*GetMonthlyReportResponse)(nil), // 10: timesheet.v1.GetMonthlyReportResponse
	(*GetBalanceRequest)(nil),        // 11: timesheet.v1.GetBalanceRequest
	(*GetBalanceResponse)(nil),       // 12: timesheet.v1.GetBalanceResponse
	(*StartWorkdayRequest)(nil),      // 13: timesheet.v1.StartWorkdayRequest
	(*StartWorkdayResponse)(nil),     // 14: timesheet.v1.StartWorkdayResponse
	(*EndWorkdayRequest)(nil),        // 15: timesheet.v1.EndWorkdayRequest
	(*EndWorkdayResponse)(nil),       // 16: timesheet.v1.EndWorkdayResponse
	(*StartEntryRequest)(nil),        // 17: timesheet.v1.StartEntryRequest
	(*StartEntryResponse)(nil),       // 18: timesheet.v1.StartEntryResponse
	(*StopEntryRequest)(nil),         // 19: timesheet.v1.StopEntryRequest
	(*StopEntryResponse)(nil),        // 20: timesheet.v1.StopEntryResponse
	(*StartBreakRequest)(nil),        // 21: timesheet.v1.StartBreakRequest
	(*StartBreakResponse)(nil),       // 22: timesheet.v1.StartBreakResponse
	(*EndBreakRequest)(nil),          // 23: timesheet.v1.EndBreakRequest
	(*EndBreakResponse)(nil),         // 24: timesheet.v1.EndBreakResponse
	(*timestamppb.Timestamp)(nil),    // 25: google.protobuf.Timestamp
}
var file_timesheet_v1_timesheet_proto_depIdxs = []int32{
	25, // 0: timesheet.v1.Break.started_at:type_name -> google.protobuf.Timestamp
	25, // 1: timesheet.v1.Break.ended_at:type_name -> google.protobuf.Timestamp
	25, // 2: timesheet.v1.Entry.started_at:type_name -> google.protobuf.Timestamp
	25, // 3: timesheet.v1.Entry.ended_at:type_name -> google.protobuf.Timestamp
	1,  // 4: timesheet.v1.Entry.breaks:type_name -> timesheet.v1.Break
	25, // 5: timesheet.v1.Marker.started_at:type_name -> google.protobuf.Timestamp
	25, // 6: timesheet.v1.Marker.ended_at:type_name -> google.protobuf.Timestamp
	25, // 7: timesheet.v1.DailyReport.workday_start:type_name -> google.protobuf.Timestamp
	25, // 8: timesheet.v1.DailyReport.workday_end:type_name -> google.protobuf.Timestamp
	0,  // 9: timesheet.v1.DailyReport.status:type_name -> timesheet.v1.DayStatus
	4,  // 10: timesheet.v1.MonthlyReport.days:type_name -> timesheet.v1.DailyReport
	4,  // 11: timesheet.v1.GetDailyReportResponse.report:type_name -> timesheet.v1.DailyReport
	5,  // 12: timesheet.v1.GetMonthlyReportResponse.report:type_name -> timesheet.v1.MonthlyReport
	6,  // 13: timesheet.v1.GetBalanceResponse.balance:type_name -> timesheet.v1.Balance
	3,  // 14: timesheet.v1.StartWorkdayResponse.marker:type_name -> timesheet.v1.Marker
	3,  // 15: timesheet.v1.EndWorkdayResponse.marker:type_name -> timesheet.v1.Marker
	2,  // 16: timesheet.v1.StartEntryResponse.entry:type_name -> timesheet.v1.Entry
	2,  // 17: timesheet.v1.StopEntryResponse.entry:type_name -> timesheet.v1.Entry
	2,  // 18: timesheet.v1.StartBreakResponse.entry:type_name -> timesheet.v1.Entry
	2,  // 19: timesheet.v1.EndBreakResponse.entry:type_name -> timesheet.v1.Entry
	7,  // 20: timesheet.v1.TimesheetService.GetDailyReport:input_type -> timesheet.v1.GetDailyReportRequest
	9,  // 21: timesheet.v1.TimesheetService.GetMonthlyReport:input_type -> timesheet.v1.GetMonthlyReportRequest
	11, // 22: timesheet.v1.TimesheetService.GetBalance:input_type -> timesheet.v1.GetBalanceRequest
	13, // 23: timesheet.v1.TimesheetService.StartWorkday:input_type -> timesheet.v1.StartWorkdayRequest
	15, // 24: timesheet.v1.TimesheetService.EndWorkday:input_type -> timesheet.v1.EndWorkdayRequest
	17, // 25: timesheet.v1.TimesheetService.StartEntry:input_type -> timesheet.v1.StartEntryRequest
	19, // 26: timesheet.v1.TimesheetService.StopEntry:input_type -> timesheet.v1.StopEntryRequest
	21, // 27: timesheet.v1.TimesheetService.StartBreak:input_type -> timesheet.v1.StartBreakRequest
	23, // 28: timesheet.v1.TimesheetService.EndBreak:input_type -> timesheet.v1.EndBreakRequest
	8,  // 29: timesheet.v1.TimesheetService.GetDailyReport:output_type -> timesheet.v1.GetDailyReportResponse
	10, // 30: timesheet.v1.TimesheetService.GetMonthlyReport:output_type -> timesheet.v1.GetMonthlyReportResponse
	12, // 31: timesheet.v1.TimesheetService.GetBalance:output_type -> timesheet.v1.GetBalanceResponse
	14, // 32: timesheet.v1.TimesheetService.StartWorkday:output_type -> timesheet.v1.StartWorkdayResponse
	16, // 33: timesheet.v1.TimesheetService.EndWorkday:output_type -> timesheet.v1.EndWorkdayResponse
	18, // 34: timesheet.v1.TimesheetService.StartEntry:output_type -> timesheet.v1.StartEntryResponse
	20, // 35: timesheet.v1.TimesheetService.StopEntry:output_type -> timesheet.v1.StopEntryResponse
	22, // 36: timesheet.v1.TimesheetService.StartBreak:output_type -> timesheet.v1.StartBreakResponse
	24, // 37: timesheet.v1.TimesheetService.EndBreak:output_type -> timesheet.v1.EndBreakResponse
	29, // [29:38] is the sub-list for method output_type
	20, // [20:29] is the sub-list for method input_type
	20, // [20:20] is the sub-list for extension type_name
	20, // [20:20] is the sub-list for extension extendee
	0,  // [0:20] is the sub-list for field type_name
}

func init() { file_timesheet_v1_timesheet_proto_init() }
func file_timesheet_v1_timesheet_proto_init() {
	if File_timesheet_v1_timesheet_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_timesheet_v1_timesheet_proto_rawDesc), len(file_timesheet_v1_timesheet_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   24,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_timesheet_v1_timesheet_proto_goTypes,
		DependencyIndexes: file_timesheet_v1_timesheet_proto_depIdxs,
		EnumInfos:         file_timesheet_v1_timesheet_proto_enumTypes,
		MessageInfos:      file_timesheet_v1_timesheet_proto_msgTypes,
	}.Build()
	File_timesheet_v1_timesheet_proto = out.File
	file_timesheet_v1_timesheet_proto_goTypes = nil
	file_timesheet_v1_timesheet_proto_depIdxs = nil
}
