// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/allocations/v1/allocation_service.proto

package allocationsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

// Статусы ордера аллокации. Строковые метки (pt-BR) живут в доменном слое,
// enum используется только на транспортном уровне.
type OrderStatus int32

const (
	OrderStatus_ORDER_STATUS_UNSPECIFIED   OrderStatus = 0
	OrderStatus_ORDER_STATUS_OPEN          OrderStatus = 1
	OrderStatus_ORDER_STATUS_PENDING_ISSUE OrderStatus = 2
	OrderStatus_ORDER_STATUS_IN_TREATMENT  OrderStatus = 3
	OrderStatus_ORDER_STATUS_EXECUTED      OrderStatus = 4
	OrderStatus_ORDER_STATUS_REJECTED      OrderStatus = 5
	OrderStatus_ORDER_STATUS_CLOSED        OrderStatus = 6
)

// Enum value maps for OrderStatus.
var (
	OrderStatus_name = map[int32]string{
		0: "ORDER_STATUS_UNSPECIFIED",
		1: "ORDER_STATUS_OPEN",
		2: "ORDER_STATUS_PENDING_ISSUE",
		3: "ORDER_STATUS_IN_TREATMENT",
		4: "ORDER_STATUS_EXECUTED",
		5: "ORDER_STATUS_REJECTED",
		6: "ORDER_STATUS_CLOSED",
	}
	OrderStatus_value = map[string]int32{
		"ORDER_STATUS_UNSPECIFIED":   0,
		"ORDER_STATUS_OPEN":          1,
		"ORDER_STATUS_PENDING_ISSUE": 2,
		"ORDER_STATUS_IN_TREATMENT":  3,
		"ORDER_STATUS_EXECUTED":      4,
		"ORDER_STATUS_REJECTED":      5,
		"ORDER_STATUS_CLOSED":        6,
	}
)

func (x OrderStatus) Enum() *OrderStatus {
	p := new(OrderStatus)
	*p = x
	return p
}

func (x OrderStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (OrderStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_proto_allocations_v1_allocation_service_proto_enumTypes[0].Descriptor()
}

func (OrderStatus) Type() protoreflect.EnumType {
	return &file_proto_allocations_v1_allocation_service_proto_enumTypes[0]
}

func (x OrderStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use OrderStatus.Descriptor instead.
func (OrderStatus) EnumDescriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{0}
}

// Одна позиция ордера: актив и сумма в сентаво.
type AssetAllocation struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AssetId        string                 `protobuf:"bytes,1,opt,name=asset_id,json=assetId,proto3" json:"asset_id,omitempty"`
	AmountCentavos int64                  `protobuf:"varint,2,opt,name=amount_centavos,json=amountCentavos,proto3" json:"amount_centavos,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *AssetAllocation) Reset() {
	*x = AssetAllocation{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssetAllocation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssetAllocation) ProtoMessage() {}

func (x *AssetAllocation) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssetAllocation.ProtoReflect.Descriptor instead.
func (*AssetAllocation) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{0}
}

func (x *AssetAllocation) GetAssetId() string {
	if x != nil {
		return x.AssetId
	}
	return ""
}

func (x *AssetAllocation) GetAmountCentavos() int64 {
	if x != nil {
		return x.AmountCentavos
	}
	return 0
}

// Событие таймлайна ордера. Seq нумеруется с единицы внутри ордера.
type TimelineEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Seq           int32                  `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	Kind          string                 `protobuf:"bytes,2,opt,name=kind,proto3" json:"kind,omitempty"`
	Author        string                 `protobuf:"bytes,3,opt,name=author,proto3" json:"author,omitempty"`
	Timestamp     string                 `protobuf:"bytes,4,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Content       string                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	FileName      string                 `protobuf:"bytes,6,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TimelineEvent) Reset() {
	*x = TimelineEvent{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TimelineEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TimelineEvent) ProtoMessage() {}

func (x *TimelineEvent) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TimelineEvent.ProtoReflect.Descriptor instead.
func (*TimelineEvent) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{1}
}

func (x *TimelineEvent) GetSeq() int32 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *TimelineEvent) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *TimelineEvent) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *TimelineEvent) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

func (x *TimelineEvent) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *TimelineEvent) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

type Order struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Account       string                 `protobuf:"bytes,2,opt,name=account,proto3" json:"account,omitempty"`
	ClientName    string                 `protobuf:"bytes,3,opt,name=client_name,json=clientName,proto3" json:"client_name,omitempty"`
	Assessor      string                 `protobuf:"bytes,4,opt,name=assessor,proto3" json:"assessor,omitempty"`
	Hub           string                 `protobuf:"bytes,5,opt,name=hub,proto3" json:"hub,omitempty"`
	Subject       string                 `protobuf:"bytes,6,opt,name=subject,proto3" json:"subject,omitempty"`
	Kind          string                 `protobuf:"bytes,7,opt,name=kind,proto3" json:"kind,omitempty"`
	Status        OrderStatus            `protobuf:"varint,8,opt,name=status,proto3,enum=allocations.v1.OrderStatus" json:"status,omitempty"`
	TotalCentavos int64                  `protobuf:"varint,9,opt,name=total_centavos,json=totalCentavos,proto3" json:"total_centavos,omitempty"`
	Assets        []*AssetAllocation     `protobuf:"bytes,10,rep,name=assets,proto3" json:"assets,omitempty"`
	IsFavorite    bool                   `protobuf:"varint,11,opt,name=is_favorite,json=isFavorite,proto3" json:"is_favorite,omitempty"`
	CreatedDate   string                 `protobuf:"bytes,12,opt,name=created_date,json=createdDate,proto3" json:"created_date,omitempty"`
	Timeline      []*TimelineEvent       `protobuf:"bytes,13,rep,name=timeline,proto3" json:"timeline,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Order) Reset() {
	*x = Order{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Order) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Order) ProtoMessage() {}

func (x *Order) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Order.ProtoReflect.Descriptor instead.
func (*Order) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{2}
}

func (x *Order) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Order) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *Order) GetClientName() string {
	if x != nil {
		return x.ClientName
	}
	return ""
}

func (x *Order) GetAssessor() string {
	if x != nil {
		return x.Assessor
	}
	return ""
}

func (x *Order) GetHub() string {
	if x != nil {
		return x.Hub
	}
	return ""
}

func (x *Order) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *Order) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *Order) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *Order) GetTotalCentavos() int64 {
	if x != nil {
		return x.TotalCentavos
	}
	return 0
}

func (x *Order) GetAssets() []*AssetAllocation {
	if x != nil {
		return x.Assets
	}
	return nil
}

func (x *Order) GetIsFavorite() bool {
	if x != nil {
		return x.IsFavorite
	}
	return false
}

func (x *Order) GetCreatedDate() string {
	if x != nil {
		return x.CreatedDate
	}
	return ""
}

func (x *Order) GetTimeline() []*TimelineEvent {
	if x != nil {
		return x.Timeline
	}
	return nil
}

type Client struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Account           string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Name              string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Assessor          string                 `protobuf:"bytes,3,opt,name=assessor,proto3" json:"assessor,omitempty"`
	OnboardingStatus  string                 `protobuf:"bytes,4,opt,name=onboarding_status,json=onboardingStatus,proto3" json:"onboarding_status,omitempty"`
	Progress          int32                  `protobuf:"varint,5,opt,name=progress,proto3" json:"progress,omitempty"`
	TotalSteps        int32                  `protobuf:"varint,6,opt,name=total_steps,json=totalSteps,proto3" json:"total_steps,omitempty"`
	BalanceCentavos   int64                  `protobuf:"varint,7,opt,name=balance_centavos,json=balanceCentavos,proto3" json:"balance_centavos,omitempty"`
	PatrimonyCentavos int64                  `protobuf:"varint,8,opt,name=patrimony_centavos,json=patrimonyCentavos,proto3" json:"patrimony_centavos,omitempty"`
	RegistrationDate  string                 `protobuf:"bytes,9,opt,name=registration_date,json=registrationDate,proto3" json:"registration_date,omitempty"`
	RiskProfile       string                 `protobuf:"bytes,10,opt,name=risk_profile,json=riskProfile,proto3" json:"risk_profile,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Client) Reset() {
	*x = Client{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Client) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Client) ProtoMessage() {}

func (x *Client) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Client.ProtoReflect.Descriptor instead.
func (*Client) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{3}
}

func (x *Client) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *Client) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Client) GetAssessor() string {
	if x != nil {
		return x.Assessor
	}
	return ""
}

func (x *Client) GetOnboardingStatus() string {
	if x != nil {
		return x.OnboardingStatus
	}
	return ""
}

func (x *Client) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *Client) GetTotalSteps() int32 {
	if x != nil {
		return x.TotalSteps
	}
	return 0
}

func (x *Client) GetBalanceCentavos() int64 {
	if x != nil {
		return x.BalanceCentavos
	}
	return 0
}

func (x *Client) GetPatrimonyCentavos() int64 {
	if x != nil {
		return x.PatrimonyCentavos
	}
	return 0
}

func (x *Client) GetRegistrationDate() string {
	if x != nil {
		return x.RegistrationDate
	}
	return ""
}

func (x *Client) GetRiskProfile() string {
	if x != nil {
		return x.RiskProfile
	}
	return ""
}

type Asset struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name              string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Type              string                 `protobuf:"bytes,3,opt,name=type,proto3" json:"type,omitempty"`
	Issuer            string                 `protobuf:"bytes,4,opt,name=issuer,proto3" json:"issuer,omitempty"`
	Rate              string                 `protobuf:"bytes,5,opt,name=rate,proto3" json:"rate,omitempty"`
	Category          string                 `protobuf:"bytes,6,opt,name=category,proto3" json:"category,omitempty"`
	Risk              string                 `protobuf:"bytes,7,opt,name=risk,proto3" json:"risk,omitempty"`
	MinAmountCentavos int64                  `protobuf:"varint,8,opt,name=min_amount_centavos,json=minAmountCentavos,proto3" json:"min_amount_centavos,omitempty"`
	Expiry            string                 `protobuf:"bytes,9,opt,name=expiry,proto3" json:"expiry,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Asset) Reset() {
	*x = Asset{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Asset) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Asset) ProtoMessage() {}

func (x *Asset) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Asset.ProtoReflect.Descriptor instead.
func (*Asset) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{4}
}

func (x *Asset) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Asset) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Asset) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Asset) GetIssuer() string {
	if x != nil {
		return x.Issuer
	}
	return ""
}

func (x *Asset) GetRate() string {
	if x != nil {
		return x.Rate
	}
	return ""
}

func (x *Asset) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Asset) GetRisk() string {
	if x != nil {
		return x.Risk
	}
	return ""
}

func (x *Asset) GetMinAmountCentavos() int64 {
	if x != nil {
		return x.MinAmountCentavos
	}
	return 0
}

func (x *Asset) GetExpiry() string {
	if x != nil {
		return x.Expiry
	}
	return ""
}

type StatusCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        OrderStatus            `protobuf:"varint,1,opt,name=status,proto3,enum=allocations.v1.OrderStatus" json:"status,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StatusCount) Reset() {
	*x = StatusCount{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusCount) ProtoMessage() {}

func (x *StatusCount) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusCount.ProtoReflect.Descriptor instead.
func (*StatusCount) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{5}
}

func (x *StatusCount) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *StatusCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type CreateOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Assessor      string                 `protobuf:"bytes,2,opt,name=assessor,proto3" json:"assessor,omitempty"`
	Hub           string                 `protobuf:"bytes,3,opt,name=hub,proto3" json:"hub,omitempty"`
	Subject       string                 `protobuf:"bytes,4,opt,name=subject,proto3" json:"subject,omitempty"`
	Kind          string                 `protobuf:"bytes,5,opt,name=kind,proto3" json:"kind,omitempty"`
	Status        OrderStatus            `protobuf:"varint,6,opt,name=status,proto3,enum=allocations.v1.OrderStatus" json:"status,omitempty"`
	TotalCentavos int64                  `protobuf:"varint,7,opt,name=total_centavos,json=totalCentavos,proto3" json:"total_centavos,omitempty"`
	Assets        []*AssetAllocation     `protobuf:"bytes,8,rep,name=assets,proto3" json:"assets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOrderRequest) Reset() {
	*x = CreateOrderRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrderRequest) ProtoMessage() {}

func (x *CreateOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrderRequest.ProtoReflect.Descriptor instead.
func (*CreateOrderRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{6}
}

func (x *CreateOrderRequest) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *CreateOrderRequest) GetAssessor() string {
	if x != nil {
		return x.Assessor
	}
	return ""
}

func (x *CreateOrderRequest) GetHub() string {
	if x != nil {
		return x.Hub
	}
	return ""
}

func (x *CreateOrderRequest) GetSubject() string {
	if x != nil {
		return x.Subject
	}
	return ""
}

func (x *CreateOrderRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *CreateOrderRequest) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *CreateOrderRequest) GetTotalCentavos() int64 {
	if x != nil {
		return x.TotalCentavos
	}
	return 0
}

func (x *CreateOrderRequest) GetAssets() []*AssetAllocation {
	if x != nil {
		return x.Assets
	}
	return nil
}

type CreateOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateOrderResponse) Reset() {
	*x = CreateOrderResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateOrderResponse) ProtoMessage() {}

func (x *CreateOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateOrderResponse.ProtoReflect.Descriptor instead.
func (*CreateOrderResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{7}
}

func (x *CreateOrderResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type GetOrderRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderRequest) Reset() {
	*x = GetOrderRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderRequest) ProtoMessage() {}

func (x *GetOrderRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderRequest.ProtoReflect.Descriptor instead.
func (*GetOrderRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{8}
}

func (x *GetOrderRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type GetOrderResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetOrderResponse) Reset() {
	*x = GetOrderResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetOrderResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetOrderResponse) ProtoMessage() {}

func (x *GetOrderResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetOrderResponse.ProtoReflect.Descriptor instead.
func (*GetOrderResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{9}
}

func (x *GetOrderResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type ListOrdersRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// ORDER_STATUS_UNSPECIFIED означает "все статусы".
	StatusFilter OrderStatus `protobuf:"varint,1,opt,name=status_filter,json=statusFilter,proto3,enum=allocations.v1.OrderStatus" json:"status_filter,omitempty"`
	// Подстрока для поиска по id ордера или имени клиента, без учёта регистра.
	Term          string `protobuf:"bytes,2,opt,name=term,proto3" json:"term,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersRequest) Reset() {
	*x = ListOrdersRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersRequest) ProtoMessage() {}

func (x *ListOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersRequest.ProtoReflect.Descriptor instead.
func (*ListOrdersRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{10}
}

func (x *ListOrdersRequest) GetStatusFilter() OrderStatus {
	if x != nil {
		return x.StatusFilter
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *ListOrdersRequest) GetTerm() string {
	if x != nil {
		return x.Term
	}
	return ""
}

type ListOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersResponse) Reset() {
	*x = ListOrdersResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersResponse) ProtoMessage() {}

func (x *ListOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersResponse.ProtoReflect.Descriptor instead.
func (*ListOrdersResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{11}
}

func (x *ListOrdersResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

type UpdateOrderStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Status        OrderStatus            `protobuf:"varint,2,opt,name=status,proto3,enum=allocations.v1.OrderStatus" json:"status,omitempty"`
	Reason        string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateOrderStatusRequest) Reset() {
	*x = UpdateOrderStatusRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateOrderStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateOrderStatusRequest) ProtoMessage() {}

func (x *UpdateOrderStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateOrderStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateOrderStatusRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateOrderStatusRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *UpdateOrderStatusRequest) GetStatus() OrderStatus {
	if x != nil {
		return x.Status
	}
	return OrderStatus_ORDER_STATUS_UNSPECIFIED
}

func (x *UpdateOrderStatusRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type UpdateOrderStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateOrderStatusResponse) Reset() {
	*x = UpdateOrderStatusResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateOrderStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateOrderStatusResponse) ProtoMessage() {}

func (x *UpdateOrderStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateOrderStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateOrderStatusResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{13}
}

func (x *UpdateOrderStatusResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type AddCommentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Author        string                 `protobuf:"bytes,2,opt,name=author,proto3" json:"author,omitempty"`
	Text          string                 `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCommentRequest) Reset() {
	*x = AddCommentRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCommentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCommentRequest) ProtoMessage() {}

func (x *AddCommentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCommentRequest.ProtoReflect.Descriptor instead.
func (*AddCommentRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{14}
}

func (x *AddCommentRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *AddCommentRequest) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *AddCommentRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type AddCommentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddCommentResponse) Reset() {
	*x = AddCommentResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddCommentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddCommentResponse) ProtoMessage() {}

func (x *AddCommentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddCommentResponse.ProtoReflect.Descriptor instead.
func (*AddCommentResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{15}
}

func (x *AddCommentResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type AttachFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	Author        string                 `protobuf:"bytes,2,opt,name=author,proto3" json:"author,omitempty"`
	FileName      string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Description   string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachFileRequest) Reset() {
	*x = AttachFileRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachFileRequest) ProtoMessage() {}

func (x *AttachFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachFileRequest.ProtoReflect.Descriptor instead.
func (*AttachFileRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{16}
}

func (x *AttachFileRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

func (x *AttachFileRequest) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}

func (x *AttachFileRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *AttachFileRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type AttachFileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachFileResponse) Reset() {
	*x = AttachFileResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachFileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachFileResponse) ProtoMessage() {}

func (x *AttachFileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachFileResponse.ProtoReflect.Descriptor instead.
func (*AttachFileResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{17}
}

func (x *AttachFileResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type ToggleFavoriteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OrderId       string                 `protobuf:"bytes,1,opt,name=order_id,json=orderId,proto3" json:"order_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleFavoriteRequest) Reset() {
	*x = ToggleFavoriteRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleFavoriteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleFavoriteRequest) ProtoMessage() {}

func (x *ToggleFavoriteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleFavoriteRequest.ProtoReflect.Descriptor instead.
func (*ToggleFavoriteRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{18}
}

func (x *ToggleFavoriteRequest) GetOrderId() string {
	if x != nil {
		return x.OrderId
	}
	return ""
}

type ToggleFavoriteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Order         *Order                 `protobuf:"bytes,1,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleFavoriteResponse) Reset() {
	*x = ToggleFavoriteResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleFavoriteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleFavoriteResponse) ProtoMessage() {}

func (x *ToggleFavoriteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleFavoriteResponse.ProtoReflect.Descriptor instead.
func (*ToggleFavoriteResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{19}
}

func (x *ToggleFavoriteResponse) GetOrder() *Order {
	if x != nil {
		return x.Order
	}
	return nil
}

type GetStatusCountsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatusCountsRequest) Reset() {
	*x = GetStatusCountsRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatusCountsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusCountsRequest) ProtoMessage() {}

func (x *GetStatusCountsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusCountsRequest.ProtoReflect.Descriptor instead.
func (*GetStatusCountsRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{20}
}

type GetStatusCountsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Counts        []*StatusCount         `protobuf:"bytes,1,rep,name=counts,proto3" json:"counts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatusCountsResponse) Reset() {
	*x = GetStatusCountsResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatusCountsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusCountsResponse) ProtoMessage() {}

func (x *GetStatusCountsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusCountsResponse.ProtoReflect.Descriptor instead.
func (*GetStatusCountsResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{21}
}

func (x *GetStatusCountsResponse) GetCounts() []*StatusCount {
	if x != nil {
		return x.Counts
	}
	return nil
}

type ListClientsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClientsRequest) Reset() {
	*x = ListClientsRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClientsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClientsRequest) ProtoMessage() {}

func (x *ListClientsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClientsRequest.ProtoReflect.Descriptor instead.
func (*ListClientsRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{22}
}

type ListClientsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Clients       []*Client              `protobuf:"bytes,1,rep,name=clients,proto3" json:"clients,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClientsResponse) Reset() {
	*x = ListClientsResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClientsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClientsResponse) ProtoMessage() {}

func (x *ListClientsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClientsResponse.ProtoReflect.Descriptor instead.
func (*ListClientsResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{23}
}

func (x *ListClientsResponse) GetClients() []*Client {
	if x != nil {
		return x.Clients
	}
	return nil
}

type ListAssetsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAssetsRequest) Reset() {
	*x = ListAssetsRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAssetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAssetsRequest) ProtoMessage() {}

func (x *ListAssetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAssetsRequest.ProtoReflect.Descriptor instead.
func (*ListAssetsRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{24}
}

type ListAssetsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Assets        []*Asset               `protobuf:"bytes,1,rep,name=assets,proto3" json:"assets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAssetsResponse) Reset() {
	*x = ListAssetsResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAssetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAssetsResponse) ProtoMessage() {}

func (x *ListAssetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAssetsResponse.ProtoReflect.Descriptor instead.
func (*ListAssetsResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{25}
}

func (x *ListAssetsResponse) GetAssets() []*Asset {
	if x != nil {
		return x.Assets
	}
	return nil
}

// Персональные данные, извлечённые из документа идентификации (RG/CNH).
type PersonalData struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FullName      string                 `protobuf:"bytes,1,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	Cpf           string                 `protobuf:"bytes,2,opt,name=cpf,proto3" json:"cpf,omitempty"`
	BirthDate     string                 `protobuf:"bytes,3,opt,name=birth_date,json=birthDate,proto3" json:"birth_date,omitempty"`
	Rg            string                 `protobuf:"bytes,4,opt,name=rg,proto3" json:"rg,omitempty"`
	IssuingBody   string                 `protobuf:"bytes,5,opt,name=issuing_body,json=issuingBody,proto3" json:"issuing_body,omitempty"`
	IssueDate     string                 `protobuf:"bytes,6,opt,name=issue_date,json=issueDate,proto3" json:"issue_date,omitempty"`
	MotherName    string                 `protobuf:"bytes,7,opt,name=mother_name,json=motherName,proto3" json:"mother_name,omitempty"`
	FatherName    string                 `protobuf:"bytes,8,opt,name=father_name,json=fatherName,proto3" json:"father_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PersonalData) Reset() {
	*x = PersonalData{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PersonalData) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PersonalData) ProtoMessage() {}

func (x *PersonalData) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PersonalData.ProtoReflect.Descriptor instead.
func (*PersonalData) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{26}
}

func (x *PersonalData) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *PersonalData) GetCpf() string {
	if x != nil {
		return x.Cpf
	}
	return ""
}

func (x *PersonalData) GetBirthDate() string {
	if x != nil {
		return x.BirthDate
	}
	return ""
}

func (x *PersonalData) GetRg() string {
	if x != nil {
		return x.Rg
	}
	return ""
}

func (x *PersonalData) GetIssuingBody() string {
	if x != nil {
		return x.IssuingBody
	}
	return ""
}

func (x *PersonalData) GetIssueDate() string {
	if x != nil {
		return x.IssueDate
	}
	return ""
}

func (x *PersonalData) GetMotherName() string {
	if x != nil {
		return x.MotherName
	}
	return ""
}

func (x *PersonalData) GetFatherName() string {
	if x != nil {
		return x.FatherName
	}
	return ""
}

// Адрес: результат извлечения из comprovante или поиска по CEP.
type AddressData struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cep           string                 `protobuf:"bytes,1,opt,name=cep,proto3" json:"cep,omitempty"`
	Street        string                 `protobuf:"bytes,2,opt,name=street,proto3" json:"street,omitempty"`
	Neighborhood  string                 `protobuf:"bytes,3,opt,name=neighborhood,proto3" json:"neighborhood,omitempty"`
	City          string                 `protobuf:"bytes,4,opt,name=city,proto3" json:"city,omitempty"`
	State         string                 `protobuf:"bytes,5,opt,name=state,proto3" json:"state,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddressData) Reset() {
	*x = AddressData{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddressData) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddressData) ProtoMessage() {}

func (x *AddressData) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddressData.ProtoReflect.Descriptor instead.
func (*AddressData) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{27}
}

func (x *AddressData) GetCep() string {
	if x != nil {
		return x.Cep
	}
	return ""
}

func (x *AddressData) GetStreet() string {
	if x != nil {
		return x.Street
	}
	return ""
}

func (x *AddressData) GetNeighborhood() string {
	if x != nil {
		return x.Neighborhood
	}
	return ""
}

func (x *AddressData) GetCity() string {
	if x != nil {
		return x.City
	}
	return ""
}

func (x *AddressData) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

type AnalyzeDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []byte                 `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	MimeType      string                 `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDocumentRequest) Reset() {
	*x = AnalyzeDocumentRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDocumentRequest) ProtoMessage() {}

func (x *AnalyzeDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDocumentRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeDocumentRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{28}
}

func (x *AnalyzeDocumentRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *AnalyzeDocumentRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

type AnalyzeDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PersonalData  *PersonalData          `protobuf:"bytes,1,opt,name=personal_data,json=personalData,proto3" json:"personal_data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDocumentResponse) Reset() {
	*x = AnalyzeDocumentResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDocumentResponse) ProtoMessage() {}

func (x *AnalyzeDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDocumentResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeDocumentResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{29}
}

func (x *AnalyzeDocumentResponse) GetPersonalData() *PersonalData {
	if x != nil {
		return x.PersonalData
	}
	return nil
}

type AnalyzeAddressDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []byte                 `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	MimeType      string                 `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeAddressDocumentRequest) Reset() {
	*x = AnalyzeAddressDocumentRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeAddressDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeAddressDocumentRequest) ProtoMessage() {}

func (x *AnalyzeAddressDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeAddressDocumentRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeAddressDocumentRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{30}
}

func (x *AnalyzeAddressDocumentRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *AnalyzeAddressDocumentRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

type AnalyzeAddressDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       *AddressData           `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeAddressDocumentResponse) Reset() {
	*x = AnalyzeAddressDocumentResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeAddressDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeAddressDocumentResponse) ProtoMessage() {}

func (x *AnalyzeAddressDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeAddressDocumentResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeAddressDocumentResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{31}
}

func (x *AnalyzeAddressDocumentResponse) GetAddress() *AddressData {
	if x != nil {
		return x.Address
	}
	return nil
}

type TranscribeAudioRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Data          []byte                 `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
	MimeType      string                 `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TranscribeAudioRequest) Reset() {
	*x = TranscribeAudioRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TranscribeAudioRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TranscribeAudioRequest) ProtoMessage() {}

func (x *TranscribeAudioRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TranscribeAudioRequest.ProtoReflect.Descriptor instead.
func (*TranscribeAudioRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{32}
}

func (x *TranscribeAudioRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

func (x *TranscribeAudioRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

type TranscribeAudioResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TranscribeAudioResponse) Reset() {
	*x = TranscribeAudioResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TranscribeAudioResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TranscribeAudioResponse) ProtoMessage() {}

func (x *TranscribeAudioResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TranscribeAudioResponse.ProtoReflect.Descriptor instead.
func (*TranscribeAudioResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{33}
}

func (x *TranscribeAudioResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type RecommendAssetsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prompt        string                 `protobuf:"bytes,1,opt,name=prompt,proto3" json:"prompt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecommendAssetsRequest) Reset() {
	*x = RecommendAssetsRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecommendAssetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecommendAssetsRequest) ProtoMessage() {}

func (x *RecommendAssetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecommendAssetsRequest.ProtoReflect.Descriptor instead.
func (*RecommendAssetsRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{34}
}

func (x *RecommendAssetsRequest) GetPrompt() string {
	if x != nil {
		return x.Prompt
	}
	return ""
}

type RecommendAssetsResponse struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Analysis            string                 `protobuf:"bytes,1,opt,name=analysis,proto3" json:"analysis,omitempty"`
	RecommendedAssetIds []string               `protobuf:"bytes,2,rep,name=recommended_asset_ids,json=recommendedAssetIds,proto3" json:"recommended_asset_ids,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *RecommendAssetsResponse) Reset() {
	*x = RecommendAssetsResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecommendAssetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecommendAssetsResponse) ProtoMessage() {}

func (x *RecommendAssetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecommendAssetsResponse.ProtoReflect.Descriptor instead.
func (*RecommendAssetsResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{35}
}

func (x *RecommendAssetsResponse) GetAnalysis() string {
	if x != nil {
		return x.Analysis
	}
	return ""
}

func (x *RecommendAssetsResponse) GetRecommendedAssetIds() []string {
	if x != nil {
		return x.RecommendedAssetIds
	}
	return nil
}

type LookupCepRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cep           string                 `protobuf:"bytes,1,opt,name=cep,proto3" json:"cep,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LookupCepRequest) Reset() {
	*x = LookupCepRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LookupCepRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LookupCepRequest) ProtoMessage() {}

func (x *LookupCepRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LookupCepRequest.ProtoReflect.Descriptor instead.
func (*LookupCepRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{36}
}

func (x *LookupCepRequest) GetCep() string {
	if x != nil {
		return x.Cep
	}
	return ""
}

type LookupCepResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       *AddressData           `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LookupCepResponse) Reset() {
	*x = LookupCepResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LookupCepResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LookupCepResponse) ProtoMessage() {}

func (x *LookupCepResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LookupCepResponse.ProtoReflect.Descriptor instead.
func (*LookupCepResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{37}
}

func (x *LookupCepResponse) GetAddress() *AddressData {
	if x != nil {
		return x.Address
	}
	return nil
}

type SaveAnnotationRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Account string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	Text    string                 `protobuf:"bytes,2,opt,name=text,proto3" json:"text,omitempty"`
	// final=false буферизует черновик до ближайшего autosave,
	// final=true сохраняет немедленно и отбрасывает черновик.
	Final         bool `protobuf:"varint,3,opt,name=final,proto3" json:"final,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveAnnotationRequest) Reset() {
	*x = SaveAnnotationRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveAnnotationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveAnnotationRequest) ProtoMessage() {}

func (x *SaveAnnotationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveAnnotationRequest.ProtoReflect.Descriptor instead.
func (*SaveAnnotationRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{38}
}

func (x *SaveAnnotationRequest) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

func (x *SaveAnnotationRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *SaveAnnotationRequest) GetFinal() bool {
	if x != nil {
		return x.Final
	}
	return false
}

type SaveAnnotationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PendingDrafts int32                  `protobuf:"varint,1,opt,name=pending_drafts,json=pendingDrafts,proto3" json:"pending_drafts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveAnnotationResponse) Reset() {
	*x = SaveAnnotationResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveAnnotationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveAnnotationResponse) ProtoMessage() {}

func (x *SaveAnnotationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveAnnotationResponse.ProtoReflect.Descriptor instead.
func (*SaveAnnotationResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{39}
}

func (x *SaveAnnotationResponse) GetPendingDrafts() int32 {
	if x != nil {
		return x.PendingDrafts
	}
	return 0
}

type GetAnnotationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       string                 `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnnotationRequest) Reset() {
	*x = GetAnnotationRequest{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnnotationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnnotationRequest) ProtoMessage() {}

func (x *GetAnnotationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnnotationRequest.ProtoReflect.Descriptor instead.
func (*GetAnnotationRequest) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{40}
}

func (x *GetAnnotationRequest) GetAccount() string {
	if x != nil {
		return x.Account
	}
	return ""
}

type GetAnnotationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Text          string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnnotationResponse) Reset() {
	*x = GetAnnotationResponse{}
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnnotationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnnotationResponse) ProtoMessage() {}

func (x *GetAnnotationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_allocations_v1_allocation_service_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnnotationResponse.ProtoReflect.Descriptor instead.
func (*GetAnnotationResponse) Descriptor() ([]byte, []int) {
	return file_proto_allocations_v1_allocation_service_proto_rawDescGZIP(), []int{41}
}

func (x *GetAnnotationResponse) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

var File_proto_allocations_v1_allocation_service_proto protoreflect.FileDescriptor

const file_proto_allocations_v1_allocation_service_proto_rawDesc = "" +
	"\n" +
	"-proto/allocations/v1/allocation_service.proto\x12\x0eallocations.v1\"U\n" +
	"\x0fAssetAllocation\x12\x19\n" +
	"\basset_id\x18\x01 \x01(\tR\aassetId\x12'\n" +
	"\x0famount_centavos\x18\x02 \x01(\x03R\x0eamountCentavos\"\xa2\x01\n" +
	"\rTimelineEvent\x12\x10\n" +
	"\x03seq\x18\x01 \x01(\x05R\x03seq\x12\x12\n" +
	"\x04kind\x18\x02 \x01(\tR\x04kind\x12\x16\n" +
	"\x06author\x18\x03 \x01(\tR\x06author\x12\x1c\n" +
	"\ttimestamp\x18\x04 \x01(\tR\ttimestamp\x12\x18\n" +
	"\acontent\x18\x05 \x01(\tR\acontent\x12\x1b\n" +
	"\tfile_name\x18\x06 \x01(\tR\bfileName\"\xc2\x03\n" +
	"\x05Order\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x18\n" +
	"\aaccount\x18\x02 \x01(\tR\aaccount\x12\x1f\n" +
	"\vclient_name\x18\x03 \x01(\tR\n" +
	"clientName\x12\x1a\n" +
	"\bassessor\x18\x04 \x01(\tR\bassessor\x12\x10\n" +
	"\x03hub\x18\x05 \x01(\tR\x03hub\x12\x18\n" +
	"\asubject\x18\x06 \x01(\tR\asubject\x12\x12\n" +
	"\x04kind\x18\a \x01(\tR\x04kind\x123\n" +
	"\x06status\x18\b \x01(\x0e2\x1b.allocations.v1.OrderStatusR\x06status\x12%\n" +
	"\x0etotal_centavos\x18\t \x01(\x03R\rtotalCentavos\x127\n" +
	"\x06assets\x18\n" +
	" \x03(\v2\x1f.allocations.v1.AssetAllocationR\x06assets\x12\x1f\n" +
	"\vis_favorite\x18\v \x01(\bR\n" +
	"isFavorite\x12!\n" +
	"\fcreated_date\x18\f \x01(\tR\vcreatedDate\x129\n" +
	"\btimeline\x18\r \x03(\v2\x1d.allocations.v1.TimelineEventR\btimeline\"\xe6\x02\n" +
	"\x06Client\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bassessor\x18\x03 \x01(\tR\bassessor\x12+\n" +
	"\x11onboarding_status\x18\x04 \x01(\tR\x10onboardingStatus\x12\x1a\n" +
	"\bprogress\x18\x05 \x01(\x05R\bprogress\x12\x1f\n" +
	"\vtotal_steps\x18\x06 \x01(\x05R\n" +
	"totalSteps\x12)\n" +
	"\x10balance_centavos\x18\a \x01(\x03R\x0fbalanceCentavos\x12-\n" +
	"\x12patrimony_centavos\x18\b \x01(\x03R\x11patrimonyCentavos\x12+\n" +
	"\x11registration_date\x18\t \x01(\tR\x10registrationDate\x12!\n" +
	"\frisk_profile\x18\n" +
	" \x01(\tR\vriskProfile\"\xe3\x01\n" +
	"\x05Asset\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04type\x18\x03 \x01(\tR\x04type\x12\x16\n" +
	"\x06issuer\x18\x04 \x01(\tR\x06issuer\x12\x12\n" +
	"\x04rate\x18\x05 \x01(\tR\x04rate\x12\x1a\n" +
	"\bcategory\x18\x06 \x01(\tR\bcategory\x12\x12\n" +
	"\x04risk\x18\a \x01(\tR\x04risk\x12.\n" +
	"\x13min_amount_centavos\x18\b \x01(\x03R\x11minAmountCentavos\x12\x16\n" +
	"\x06expiry\x18\t \x01(\tR\x06expiry\"X\n" +
	"\vStatusCount\x123\n" +
	"\x06status\x18\x01 \x01(\x0e2\x1b.allocations.v1.OrderStatusR\x06status\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"\x9f\x02\n" +
	"\x12CreateOrderRequest\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\x12\x1a\n" +
	"\bassessor\x18\x02 \x01(\tR\bassessor\x12\x10\n" +
	"\x03hub\x18\x03 \x01(\tR\x03hub\x12\x18\n" +
	"\asubject\x18\x04 \x01(\tR\asubject\x12\x12\n" +
	"\x04kind\x18\x05 \x01(\tR\x04kind\x123\n" +
	"\x06status\x18\x06 \x01(\x0e2\x1b.allocations.v1.OrderStatusR\x06status\x12%\n" +
	"\x0etotal_centavos\x18\a \x01(\x03R\rtotalCentavos\x127\n" +
	"\x06assets\x18\b \x03(\v2\x1f.allocations.v1.AssetAllocationR\x06assets\"B\n" +
	"\x13CreateOrderResponse\x12+\n" +
	"\x05order\x18\x01 \x01(\v2\x15.allocations.v1.OrderR\x05order\",\n" +
	"\x0fGetOrderRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\"?\n" +
	"\x10GetOrderResponse\x12+\n" +
	"\x05order\x18\x01 \x01(\v2\x15.allocations.v1.OrderR\x05order\"i\n" +
	"\x11ListOrdersRequest\x12@\n" +
	"\rstatus_filter\x18\x01 \x01(\x0e2\x1b.allocations.v1.OrderStatusR\fstatusFilter\x12\x12\n" +
	"\x04term\x18\x02 \x01(\tR\x04term\"C\n" +
	"\x12ListOrdersResponse\x12-\n" +
	"\x06orders\x18\x01 \x03(\v2\x15.allocations.v1.OrderR\x06orders\"\x82\x01\n" +
	"\x18UpdateOrderStatusRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x123\n" +
	"\x06status\x18\x02 \x01(\x0e2\x1b.allocations.v1.OrderStatusR\x06status\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\"H\n" +
	"\x19UpdateOrderStatusResponse\x12+\n" +
	"\x05order\x18\x01 \x01(\v2\x15.allocations.v1.OrderR\x05order\"Z\n" +
	"\x11AddCommentRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x16\n" +
	"\x06author\x18\x02 \x01(\tR\x06author\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\"A\n" +
	"\x12AddCommentResponse\x12+\n" +
	"\x05order\x18\x01 \x01(\v2\x15.allocations.v1.OrderR\x05order\"\x85\x01\n" +
	"\x11AttachFileRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\x12\x16\n" +
	"\x06author\x18\x02 \x01(\tR\x06author\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\"A\n" +
	"\x12AttachFileResponse\x12+\n" +
	"\x05order\x18\x01 \x01(\v2\x15.allocations.v1.OrderR\x05order\"2\n" +
	"\x15ToggleFavoriteRequest\x12\x19\n" +
	"\border_id\x18\x01 \x01(\tR\aorderId\"E\n" +
	"\x16ToggleFavoriteResponse\x12+\n" +
	"\x05order\x18\x01 \x01(\v2\x15.allocations.v1.OrderR\x05order\"\x18\n" +
	"\x16GetStatusCountsRequest\"N\n" +
	"\x17GetStatusCountsResponse\x123\n" +
	"\x06counts\x18\x01 \x03(\v2\x1b.allocations.v1.StatusCountR\x06counts\"\x14\n" +
	"\x12ListClientsRequest\"G\n" +
	"\x13ListClientsResponse\x120\n" +
	"\aclients\x18\x01 \x03(\v2\x16.allocations.v1.ClientR\aclients\"\x13\n" +
	"\x11ListAssetsRequest\"C\n" +
	"\x12ListAssetsResponse\x12-\n" +
	"\x06assets\x18\x01 \x03(\v2\x15.allocations.v1.AssetR\x06assets\"\xf0\x01\n" +
	"\fPersonalData\x12\x1b\n" +
	"\tfull_name\x18\x01 \x01(\tR\bfullName\x12\x10\n" +
	"\x03cpf\x18\x02 \x01(\tR\x03cpf\x12\x1d\n" +
	"\n" +
	"birth_date\x18\x03 \x01(\tR\tbirthDate\x12\x0e\n" +
	"\x02rg\x18\x04 \x01(\tR\x02rg\x12!\n" +
	"\fissuing_body\x18\x05 \x01(\tR\vissuingBody\x12\x1d\n" +
	"\n" +
	"issue_date\x18\x06 \x01(\tR\tissueDate\x12\x1f\n" +
	"\vmother_name\x18\a \x01(\tR\n" +
	"motherName\x12\x1f\n" +
	"\vfather_name\x18\b \x01(\tR\n" +
	"fatherName\"\x85\x01\n" +
	"\vAddressData\x12\x10\n" +
	"\x03cep\x18\x01 \x01(\tR\x03cep\x12\x16\n" +
	"\x06street\x18\x02 \x01(\tR\x06street\x12\"\n" +
	"\fneighborhood\x18\x03 \x01(\tR\fneighborhood\x12\x12\n" +
	"\x04city\x18\x04 \x01(\tR\x04city\x12\x14\n" +
	"\x05state\x18\x05 \x01(\tR\x05state\"I\n" +
	"\x16AnalyzeDocumentRequest\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data\x12\x1b\n" +
	"\tmime_type\x18\x02 \x01(\tR\bmimeType\"\\\n" +
	"\x17AnalyzeDocumentResponse\x12A\n" +
	"\rpersonal_data\x18\x01 \x01(\v2\x1c.allocations.v1.PersonalDataR\fpersonalData\"P\n" +
	"\x1dAnalyzeAddressDocumentRequest\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data\x12\x1b\n" +
	"\tmime_type\x18\x02 \x01(\tR\bmimeType\"W\n" +
	"\x1eAnalyzeAddressDocumentResponse\x125\n" +
	"\aaddress\x18\x01 \x01(\v2\x1b.allocations.v1.AddressDataR\aaddress\"I\n" +
	"\x16TranscribeAudioRequest\x12\x12\n" +
	"\x04data\x18\x01 \x01(\fR\x04data\x12\x1b\n" +
	"\tmime_type\x18\x02 \x01(\tR\bmimeType\"-\n" +
	"\x17TranscribeAudioResponse\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\"0\n" +
	"\x16RecommendAssetsRequest\x12\x16\n" +
	"\x06prompt\x18\x01 \x01(\tR\x06prompt\"i\n" +
	"\x17RecommendAssetsResponse\x12\x1a\n" +
	"\banalysis\x18\x01 \x01(\tR\banalysis\x122\n" +
	"\x15recommended_asset_ids\x18\x02 \x03(\tR\x13recommendedAssetIds\"$\n" +
	"\x10LookupCepRequest\x12\x10\n" +
	"\x03cep\x18\x01 \x01(\tR\x03cep\"J\n" +
	"\x11LookupCepResponse\x125\n" +
	"\aaddress\x18\x01 \x01(\v2\x1b.allocations.v1.AddressDataR\aaddress\"[\n" +
	"\x15SaveAnnotationRequest\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\x12\x12\n" +
	"\x04text\x18\x02 \x01(\tR\x04text\x12\x14\n" +
	"\x05final\x18\x03 \x01(\bR\x05final\"?\n" +
	"\x16SaveAnnotationResponse\x12%\n" +
	"\x0epending_drafts\x18\x01 \x01(\x05R\rpendingDrafts\"0\n" +
	"\x14GetAnnotationRequest\x12\x18\n" +
	"\aaccount\x18\x01 \x01(\tR\aaccount\"+\n" +
	"\x15GetAnnotationResponse\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text*\xd0\x01\n" +
	"\vOrderStatus\x12\x1c\n" +
	"\x18ORDER_STATUS_UNSPECIFIED\x10\x00\x12\x15\n" +
	"\x11ORDER_STATUS_OPEN\x10\x01\x12\x1e\n" +
	"\x1aORDER_STATUS_PENDING_ISSUE\x10\x02\x12\x1d\n" +
	"\x19ORDER_STATUS_IN_TREATMENT\x10\x03\x12\x19\n" +
	"\x15ORDER_STATUS_EXECUTED\x10\x04\x12\x19\n" +
	"\x15ORDER_STATUS_REJECTED\x10\x05\x12\x17\n" +
	"\x13ORDER_STATUS_CLOSED\x10\x062\x95\a\n" +
	"\x11AllocationService\x12V\n" +
	"\vCreateOrder\x12\".allocations.v1.CreateOrderRequest\x1a#.allocations.v1.CreateOrderResponse\x12M\n" +
	"\bGetOrder\x12\x1f.allocations.v1.GetOrderRequest\x1a .allocations.v1.GetOrderResponse\x12S\n" +
	"\n" +
	"ListOrders\x12!.allocations.v1.ListOrdersRequest\x1a\".allocations.v1.ListOrdersResponse\x12h\n" +
	"\x11UpdateOrderStatus\x12(.allocations.v1.UpdateOrderStatusRequest\x1a).allocations.v1.UpdateOrderStatusResponse\x12S\n" +
	"\n" +
	"AddComment\x12!.allocations.v1.AddCommentRequest\x1a\".allocations.v1.AddCommentResponse\x12S\n" +
	"\n" +
	"AttachFile\x12!.allocations.v1.AttachFileRequest\x1a\".allocations.v1.AttachFileResponse\x12_\n" +
	"\x0eToggleFavorite\x12%.allocations.v1.ToggleFavoriteRequest\x1a&.allocations.v1.ToggleFavoriteResponse\x12b\n" +
	"\x0fGetStatusCounts\x12&.allocations.v1.GetStatusCountsRequest\x1a'.allocations.v1.GetStatusCountsResponse\x12V\n" +
	"\vListClients\x12\".allocations.v1.ListClientsRequest\x1a#.allocations.v1.ListClientsResponse\x12S\n" +
	"\n" +
	"ListAssets\x12!.allocations.v1.ListAssetsRequest\x1a\".allocations.v1.ListAssetsResponse2\xc8\x05\n" +
	"\x10AssistantService\x12b\n" +
	"\x0fAnalyzeDocument\x12&.allocations.v1.AnalyzeDocumentRequest\x1a'.allocations.v1.AnalyzeDocumentResponse\x12w\n" +
	"\x16AnalyzeAddressDocument\x12-.allocations.v1.AnalyzeAddressDocumentRequest\x1a..allocations.v1.AnalyzeAddressDocumentResponse\x12b\n" +
	"\x0fTranscribeAudio\x12&.allocations.v1.TranscribeAudioRequest\x1a'.allocations.v1.TranscribeAudioResponse\x12b\n" +
	"\x0fRecommendAssets\x12&.allocations.v1.RecommendAssetsRequest\x1a'.allocations.v1.RecommendAssetsResponse\x12P\n" +
	"\tLookupCep\x12 .allocations.v1.LookupCepRequest\x1a!.allocations.v1.LookupCepResponse\x12_\n" +
	"\x0eSaveAnnotation\x12%.allocations.v1.SaveAnnotationRequest\x1a&.allocations.v1.SaveAnnotationResponse\x12\\\n" +
	"\rGetAnnotation\x12$.allocations.v1.GetAnnotationRequest\x1a%.allocations.v1.GetAnnotationResponseBGZEgithub.com/anovainvest/allocations/proto/allocations/v1;allocationsv1b\x06proto3"

var (
	file_proto_allocations_v1_allocation_service_proto_rawDescOnce sync.Once
	file_proto_allocations_v1_allocation_service_proto_rawDescData []byte
)

func file_proto_allocations_v1_allocation_service_proto_rawDescGZIP() []byte {
	file_proto_allocations_v1_allocation_service_proto_rawDescOnce.Do(func() {
		file_proto_allocations_v1_allocation_service_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_allocations_v1_allocation_service_proto_rawDesc), len(file_proto_allocations_v1_allocation_service_proto_rawDesc)))
	})
	return file_proto_allocations_v1_allocation_service_proto_rawDescData
}

var file_proto_allocations_v1_allocation_service_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_proto_allocations_v1_allocation_service_proto_msgTypes = make([]protoimpl.MessageInfo, 42)
var file_proto_allocations_v1_allocation_service_proto_goTypes = []any{
	(OrderStatus)(0),                       // 0: allocations.v1.OrderStatus
	(*AssetAllocation)(nil),                // 1: allocations.v1.AssetAllocation
	(*TimelineEvent)(nil),                  // 2: allocations.v1.TimelineEvent
	(*Order)(nil),                          // 3: allocations.v1.Order
	(*Client)(nil),                         // 4: allocations.v1.Client
	(*Asset)(nil),                          // 5: allocations.v1.Asset
	(*StatusCount)(nil),                    // 6: allocations.v1.StatusCount
	(*CreateOrderRequest)(nil),             // 7: allocations.v1.CreateOrderRequest
	(*CreateOrderResponse)(nil),            // 8: allocations.v1.CreateOrderResponse
	(*GetOrderRequest)(nil),                // 9: allocations.v1.GetOrderRequest
	(*GetOrderResponse)(nil),               // 10: allocations.v1.GetOrderResponse
	(*ListOrdersRequest)(nil),              // 11: allocations.v1.ListOrdersRequest
	(*ListOrdersResponse)(nil),             // 12: allocations.v1.ListOrdersResponse
	(*UpdateOrderStatusRequest)(nil),       // 13: allocations.v1.UpdateOrderStatusRequest
	(*UpdateOrderStatusResponse)(nil),      // 14: allocations.v1.UpdateOrderStatusResponse
	(*AddCommentRequest)(nil),              // 15: allocations.v1.AddCommentRequest
	(*AddCommentResponse)(nil),             // 16: allocations.v1.AddCommentResponse
	(*AttachFileRequest)(nil),              // 17: allocations.v1.AttachFileRequest
	(*AttachFileResponse)(nil),             // 18: allocations.v1.AttachFileResponse
	(*ToggleFavoriteRequest)(nil),          // 19: allocations.v1.ToggleFavoriteRequest
	(*ToggleFavoriteResponse)(nil),         // 20: allocations.v1.ToggleFavoriteResponse
	(*GetStatusCountsRequest)(nil),         // 21: allocations.v1.GetStatusCountsRequest
	(*GetStatusCountsResponse)(nil),        // 22: allocations.v1.GetStatusCountsResponse
	(*ListClientsRequest)(nil),             // 23: allocations.v1.ListClientsRequest
	(*ListClientsResponse)(nil),            // 24: allocations.v1.ListClientsResponse
	(*ListAssetsRequest)(nil),              // 25: allocations.v1.ListAssetsRequest
	(*ListAssetsResponse)(nil),             // 26: allocations.v1.ListAssetsResponse
	(*PersonalData)(nil),                   // 27: allocations.v1.PersonalData
	(*AddressData)(nil),                    // 28: allocations.v1.AddressData
	(*AnalyzeDocumentRequest)(nil),         // 29: allocations.v1.AnalyzeDocumentRequest
	(*AnalyzeDocumentResponse)(nil),        // 30: allocations.v1.AnalyzeDocumentResponse
	(*AnalyzeAddressDocumentRequest)(nil),  // 31: allocations.v1.AnalyzeAddressDocumentRequest
	(*AnalyzeAddressDocumentResponse)(nil), // 32: allocations.v1.AnalyzeAddressDocumentResponse
	(*TranscribeAudioRequest)(nil),         // 33: allocations.v1.TranscribeAudioRequest
	(*TranscribeAudioResponse)(nil),        // 34: allocations.v1.TranscribeAudioResponse
	(*RecommendAssetsRequest)(nil),         // 35: allocations.v1.RecommendAssetsRequest
	(*RecommendAssetsResponse)(nil),        // 36: allocations.v1.RecommendAssetsResponse
	(*LookupCepRequest)(nil),               // 37: allocations.v1.LookupCepRequest
	(*LookupCepResponse)(nil),              // 38: allocations.v1.LookupCepResponse
	(*SaveAnnotationRequest)(nil),          // 39: allocations.v1.SaveAnnotationRequest
	(*SaveAnnotationResponse)(nil),         // 40: allocations.v1.SaveAnnotationResponse
	(*GetAnnotationRequest)(nil),           // 41: allocations.v1.GetAnnotationRequest
	(*GetAnnotationResponse)(nil),          // 42: allocations.v1.GetAnnotationResponse
}
var file_proto_allocations_v1_allocation_service_proto_depIdxs = []int32{
	0,  // 0: allocations.v1.Order.status:type_name -> allocations.v1.OrderStatus
	1,  // 1: allocations.v1.Order.assets:type_name -> allocations.v1.AssetAllocation
	2,  // 2: allocations.v1.Order.timeline:type_name -> allocations.v1.TimelineEvent
	0,  // 3: allocations.v1.StatusCount.status:type_name -> allocations.v1.OrderStatus
	0,  // 4: allocations.v1.CreateOrderRequest.status:type_name -> allocations.v1.OrderStatus
	1,  // 5: allocations.v1.CreateOrderRequest.assets:type_name -> allocations.v1.AssetAllocation
	3,  // 6: allocations.v1.CreateOrderResponse.order:type_name -> allocations.v1.Order
	3,  // 7: allocations.v1.GetOrderResponse.order:type_name -> allocations.v1.Order
	0,  // 8: allocations.v1.ListOrdersRequest.status_filter:type_name -> allocations.v1.OrderStatus
	3,  // 9: allocations.v1.ListOrdersResponse.orders:type_name -> allocations.v1.Order
	0,  // 10: allocations.v1.UpdateOrderStatusRequest.status:type_name -> allocations.v1.OrderStatus
	3,  // 11: allocations.v1.UpdateOrderStatusResponse.order:type_name -> allocations.v1.Order
	3,  // 12: allocations.v1.AddCommentResponse.order:type_name -> allocations.v1.Order
	3,  // 13: allocations.v1.AttachFileResponse.order:type_name -> allocations.v1.Order
	3,  // 14: allocations.v1.ToggleFavoriteResponse.order:type_name -> allocations.v1.Order
	6,  // 15: allocations.v1.GetStatusCountsResponse.counts:type_name -> allocations.v1.StatusCount
	4,  // 16: allocations.v1.ListClientsResponse.clients:type_name -> allocations.v1.Client
	5,  // 17: allocations.v1.ListAssetsResponse.assets:type_name -> allocations.v1.Asset
	27, // 18: allocations.v1.AnalyzeDocumentResponse.personal_data:type_name -> allocations.v1.PersonalData
	28, // 19: allocations.v1.AnalyzeAddressDocumentResponse.address:type_name -> allocations.v1.AddressData
	28, // 20: allocations.v1.LookupCepResponse.address:type_name -> allocations.v1.AddressData
	7,  // 21: allocations.v1.AllocationService.CreateOrder:input_type -> allocations.v1.CreateOrderRequest
	9,  // 22: allocations.v1.AllocationService.GetOrder:input_type -> allocations.v1.GetOrderRequest
	11, // 23: allocations.v1.AllocationService.ListOrders:input_type -> allocations.v1.ListOrdersRequest
	13, // 24: allocations.v1.AllocationService.UpdateOrderStatus:input_type -> allocations.v1.UpdateOrderStatusRequest
	15, // 25: allocations.v1.AllocationService.AddComment:input_type -> allocations.v1.AddCommentRequest
	17, // 26: allocations.v1.AllocationService.AttachFile:input_type -> allocations.v1.AttachFileRequest
	19, // 27: allocations.v1.AllocationService.ToggleFavorite:input_type -> allocations.v1.ToggleFavoriteRequest
	21, // 28: allocations.v1.AllocationService.GetStatusCounts:input_type -> allocations.v1.GetStatusCountsRequest
	23, // 29: allocations.v1.AllocationService.ListClients:input_type -> allocations.v1.ListClientsRequest
	25, // 30: allocations.v1.AllocationService.ListAssets:input_type -> allocations.v1.ListAssetsRequest
	29, // 31: allocations.v1.AssistantService.AnalyzeDocument:input_type -> allocations.v1.AnalyzeDocumentRequest
	31, // 32: allocations.v1.AssistantService.AnalyzeAddressDocument:input_type -> allocations.v1.AnalyzeAddressDocumentRequest
	33, // 33: allocations.v1.AssistantService.TranscribeAudio:input_type -> allocations.v1.TranscribeAudioRequest
	35, // 34: allocations.v1.AssistantService.RecommendAssets:input_type -> allocations.v1.RecommendAssetsRequest
	37, // 35: allocations.v1.AssistantService.LookupCep:input_type -> allocations.v1.LookupCepRequest
	39, // 36: allocations.v1.AssistantService.SaveAnnotation:input_type -> allocations.v1.SaveAnnotationRequest
	41, // 37: allocations.v1.AssistantService.GetAnnotation:input_type -> allocations.v1.GetAnnotationRequest
	8,  // 38: allocations.v1.AllocationService.CreateOrder:output_type -> allocations.v1.CreateOrderResponse
	10, // 39: allocations.v1.AllocationService.GetOrder:output_type -> allocations.v1.GetOrderResponse
	12, // 40: allocations.v1.AllocationService.ListOrders:output_type -> allocations.v1.ListOrdersResponse
	14, // 41: allocations.v1.AllocationService.UpdateOrderStatus:output_type -> allocations.v1.UpdateOrderStatusResponse
	16, // 42: allocations.v1.AllocationService.AddComment:output_type -> allocations.v1.AddCommentResponse
	18, // 43: allocations.v1.AllocationService.AttachFile:output_type -> allocations.v1.AttachFileResponse
	20, // 44: allocations.v1.AllocationService.ToggleFavorite:output_type -> allocations.v1.ToggleFavoriteResponse
	22, // 45: allocations.v1.AllocationService.GetStatusCounts:output_type -> allocations.v1.GetStatusCountsResponse
	24, // 46: allocations.v1.AllocationService.ListClients:output_type -> allocations.v1.ListClientsResponse
	26, // 47: allocations.v1.AllocationService.ListAssets:output_type -> allocations.v1.ListAssetsResponse
	30, // 48: allocations.v1.AssistantService.AnalyzeDocument:output_type -> allocations.v1.AnalyzeDocumentResponse
	32, // 49: allocations.v1.AssistantService.AnalyzeAddressDocument:output_type -> allocations.v1.AnalyzeAddressDocumentResponse
	34, // 50: allocations.v1.AssistantService.TranscribeAudio:output_type -> allocations.v1.TranscribeAudioResponse
	36, // 51: allocations.v1.AssistantService.RecommendAssets:output_type -> allocations.v1.RecommendAssetsResponse
	38, // 52: allocations.v1.AssistantService.LookupCep:output_type -> allocations.v1.LookupCepResponse
	40, // 53: allocations.v1.AssistantService.SaveAnnotation:output_type -> allocations.v1.SaveAnnotationResponse
	42, // 54: allocations.v1.AssistantService.GetAnnotation:output_type -> allocations.v1.GetAnnotationResponse
	38, // [38:55] is the sub-list for method output_type
	21, // [21:38] is the sub-list for method input_type
	21, // [21:21] is the sub-list for extension type_name
	21, // [21:21] is the sub-list for extension extendee
	0,  // [0:21] is the sub-list for field type_name
}

func init() { file_proto_allocations_v1_allocation_service_proto_init() }
func file_proto_allocations_v1_allocation_service_proto_init() {
	if File_proto_allocations_v1_allocation_service_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_allocations_v1_allocation_service_proto_rawDesc), len(file_proto_allocations_v1_allocation_service_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   42,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_proto_allocations_v1_allocation_service_proto_goTypes,
		DependencyIndexes: file_proto_allocations_v1_allocation_service_proto_depIdxs,
		EnumInfos:         file_proto_allocations_v1_allocation_service_proto_enumTypes,
		MessageInfos:      file_proto_allocations_v1_allocation_service_proto_msgTypes,
	}.Build()
	File_proto_allocations_v1_allocation_service_proto = out.File
	file_proto_allocations_v1_allocation_service_proto_goTypes = nil
	file_proto_allocations_v1_allocation_service_proto_depIdxs = nil
}
