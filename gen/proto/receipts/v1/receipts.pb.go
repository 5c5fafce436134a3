// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: proto/receipts/v1/receipts.proto

package receiptsv1

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

type ProcessReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerUserId   string                 `protobuf:"bytes,1,opt,name=owner_user_id,json=ownerUserId,proto3" json:"owner_user_id,omitempty"` // UUID
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"` // image/jpeg, image/png, image/webp
	Image         []byte                 `protobuf:"bytes,4,opt,name=image,proto3" json:"image,omitempty"`
	Source        string                 `protobuf:"bytes,5,opt,name=source,proto3" json:"source,omitempty"` // "upload" (default) or "email"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessReceiptRequest) Reset() {
	*x = ProcessReceiptRequest{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReceiptRequest) ProtoMessage() {}

func (x *ProcessReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReceiptRequest.ProtoReflect.Descriptor instead.
func (*ProcessReceiptRequest) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{0}
}

func (x *ProcessReceiptRequest) GetOwnerUserId() string {
	if x != nil {
		return x.OwnerUserId
	}
	return ""
}

func (x *ProcessReceiptRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ProcessReceiptRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *ProcessReceiptRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ProcessReceiptRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type ProcessReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	SessionId     string                 `protobuf:"bytes,2,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessReceiptResponse) Reset() {
	*x = ProcessReceiptResponse{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessReceiptResponse) ProtoMessage() {}

func (x *ProcessReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessReceiptResponse.ProtoReflect.Descriptor instead.
func (*ProcessReceiptResponse) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{1}
}

func (x *ProcessReceiptResponse) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *ProcessReceiptResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type GetProgressRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProgressRequest) Reset() {
	*x = GetProgressRequest{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProgressRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProgressRequest) ProtoMessage() {}

func (x *GetProgressRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProgressRequest.ProtoReflect.Descriptor instead.
func (*GetProgressRequest) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{2}
}

func (x *GetProgressRequest) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type StageProgress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`           // pending | running | done | failed
	Completion    float64                `protobuf:"fixed64,3,opt,name=completion,proto3" json:"completion,omitempty"` // 0..1
	Error         string                 `protobuf:"bytes,4,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StageProgress) Reset() {
	*x = StageProgress{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StageProgress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StageProgress) ProtoMessage() {}

func (x *StageProgress) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StageProgress.ProtoReflect.Descriptor instead.
func (*StageProgress) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{3}
}

func (x *StageProgress) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *StageProgress) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *StageProgress) GetCompletion() float64 {
	if x != nil {
		return x.Completion
	}
	return 0
}

func (x *StageProgress) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type GetProgressResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	ReceiptId     string                 `protobuf:"bytes,2,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	Stages        []*StageProgress       `protobuf:"bytes,3,rep,name=stages,proto3" json:"stages,omitempty"`
	OverallStatus string                 `protobuf:"bytes,4,opt,name=overall_status,json=overallStatus,proto3" json:"overall_status,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProgressResponse) Reset() {
	*x = GetProgressResponse{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProgressResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProgressResponse) ProtoMessage() {}

func (x *GetProgressResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProgressResponse.ProtoReflect.Descriptor instead.
func (*GetProgressResponse) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{4}
}

func (x *GetProgressResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

func (x *GetProgressResponse) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *GetProgressResponse) GetStages() []*StageProgress {
	if x != nil {
		return x.Stages
	}
	return nil
}

func (x *GetProgressResponse) GetOverallStatus() string {
	if x != nil {
		return x.OverallStatus
	}
	return ""
}

func (x *GetProgressResponse) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *GetProgressResponse) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ConfirmReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmReceiptRequest) Reset() {
	*x = ConfirmReceiptRequest{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmReceiptRequest) ProtoMessage() {}

func (x *ConfirmReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmReceiptRequest.ProtoReflect.Descriptor instead.
func (*ConfirmReceiptRequest) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{5}
}

func (x *ConfirmReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type ConfirmReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmReceiptResponse) Reset() {
	*x = ConfirmReceiptResponse{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmReceiptResponse) ProtoMessage() {}

func (x *ConfirmReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmReceiptResponse.ProtoReflect.Descriptor instead.
func (*ConfirmReceiptResponse) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{6}
}

func (x *ConfirmReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type GetReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptRequest) Reset() {
	*x = GetReceiptRequest{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptRequest) ProtoMessage() {}

func (x *GetReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptRequest.ProtoReflect.Descriptor instead.
func (*GetReceiptRequest) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{7}
}

func (x *GetReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type GetReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptResponse) Reset() {
	*x = GetReceiptResponse{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptResponse) ProtoMessage() {}

func (x *GetReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptResponse.ProtoReflect.Descriptor instead.
func (*GetReceiptResponse) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{8}
}

func (x *GetReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ListReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerUserId   string                 `protobuf:"bytes,1,opt,name=owner_user_id,json=ownerUserId,proto3" json:"owner_user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsRequest) Reset() {
	*x = ListReceiptsRequest{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsRequest) ProtoMessage() {}

func (x *ListReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ListReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{9}
}

func (x *ListReceiptsRequest) GetOwnerUserId() string {
	if x != nil {
		return x.OwnerUserId
	}
	return ""
}

func (x *ListReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*Receipt             `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsResponse) Reset() {
	*x = ListReceiptsResponse{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsResponse) ProtoMessage() {}

func (x *ListReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ListReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{10}
}

func (x *ListReceiptsResponse) GetReceipts() []*Receipt {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type ExportReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerUserId   string                 `protobuf:"bytes,1,opt,name=owner_user_id,json=ownerUserId,proto3" json:"owner_user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsRequest) Reset() {
	*x = ExportReceiptsRequest{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsRequest) ProtoMessage() {}

func (x *ExportReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ExportReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{11}
}

func (x *ExportReceiptsRequest) GetOwnerUserId() string {
	if x != nil {
		return x.OwnerUserId
	}
	return ""
}

func (x *ExportReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsResponse) Reset() {
	*x = ExportReceiptsResponse{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsResponse) ProtoMessage() {}

func (x *ExportReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ExportReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{12}
}

func (x *ExportReceiptsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type Receipt struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerUserId          string                 `protobuf:"bytes,2,opt,name=owner_user_id,json=ownerUserId,proto3" json:"owner_user_id,omitempty"`
	Source               string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	OriginalFilename     string                 `protobuf:"bytes,4,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	StorageReference     string                 `protobuf:"bytes,5,opt,name=storage_reference,json=storageReference,proto3" json:"storage_reference,omitempty"`
	Status               string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	IsVerified           bool                   `protobuf:"varint,7,opt,name=is_verified,json=isVerified,proto3" json:"is_verified,omitempty"`
	ConfidenceScore      float32                `protobuf:"fixed32,8,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"` // 0 until extraction completes
	ReceiptDate          string                 `protobuf:"bytes,9,opt,name=receipt_date,json=receiptDate,proto3" json:"receipt_date,omitempty"`               // YYYY-MM-DD
	VendorName           string                 `protobuf:"bytes,10,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	AmountTotal          float64                `protobuf:"fixed64,11,opt,name=amount_total,json=amountTotal,proto3" json:"amount_total,omitempty"`
	AmountSubtotal       float64                `protobuf:"fixed64,12,opt,name=amount_subtotal,json=amountSubtotal,proto3" json:"amount_subtotal,omitempty"`
	TaxAmount            float64                `protobuf:"fixed64,13,opt,name=tax_amount,json=taxAmount,proto3" json:"tax_amount,omitempty"`
	CurrencyCode         string                 `protobuf:"bytes,14,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	PaymentMethod        string                 `protobuf:"bytes,15,opt,name=payment_method,json=paymentMethod,proto3" json:"payment_method,omitempty"`
	Category             string                 `protobuf:"bytes,16,opt,name=category,proto3" json:"category,omitempty"`
	StructuredFieldsJson string                 `protobuf:"bytes,17,opt,name=structured_fields_json,json=structuredFieldsJson,proto3" json:"structured_fields_json,omitempty"`
	CreatedAt            string                 `protobuf:"bytes,18,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt            string                 `protobuf:"bytes,19,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_proto_receipts_v1_receipts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_proto_receipts_v1_receipts_proto_rawDescGZIP(), []int{13}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetOwnerUserId() string {
	if x != nil {
		return x.OwnerUserId
	}
	return ""
}

func (x *Receipt) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Receipt) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Receipt) GetStorageReference() string {
	if x != nil {
		return x.StorageReference
	}
	return ""
}

func (x *Receipt) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Receipt) GetIsVerified() bool {
	if x != nil {
		return x.IsVerified
	}
	return false
}

func (x *Receipt) GetConfidenceScore() float32 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *Receipt) GetReceiptDate() string {
	if x != nil {
		return x.ReceiptDate
	}
	return ""
}

func (x *Receipt) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *Receipt) GetAmountTotal() float64 {
	if x != nil {
		return x.AmountTotal
	}
	return 0
}

func (x *Receipt) GetAmountSubtotal() float64 {
	if x != nil {
		return x.AmountSubtotal
	}
	return 0
}

func (x *Receipt) GetTaxAmount() float64 {
	if x != nil {
		return x.TaxAmount
	}
	return 0
}

func (x *Receipt) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Receipt) GetPaymentMethod() string {
	if x != nil {
		return x.PaymentMethod
	}
	return ""
}

func (x *Receipt) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Receipt) GetStructuredFieldsJson() string {
	if x != nil {
		return x.StructuredFieldsJson
	}
	return ""
}

func (x *Receipt) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Receipt) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

var File_proto_receipts_v1_receipts_proto protoreflect.FileDescriptor

const file_proto_receipts_v1_receipts_proto_rawDesc = "" +
	"\n" +
	" proto/receipts/v1/receipts.proto\x12\vreceipts.v1\"\xa8\x01\n" +
	"\x15ProcessReceiptRequest\x12\"\n" +
	"\rowner_user_id\x18\x01 \x01(\tR\vownerUserId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x14\n" +
	"\x05image\x18\x04 \x01(\fR\x05image\x12\x16\n" +
	"\x06source\x18\x05 \x01(\tR\x06source\"V\n" +
	"\x16ProcessReceiptResponse\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\x12\x1d\n" +
	"\n" +
	"session_id\x18\x02 \x01(\tR\tsessionId\"3\n" +
	"\x12GetProgressRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\"q\n" +
	"\rStageProgress\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1e\n" +
	"\n" +
	"completion\x18\x03 \x01(\x01R\n" +
	"completion\x12\x14\n" +
	"\x05error\x18\x04 \x01(\tR\x05error\"\xec\x01\n" +
	"\x13GetProgressResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x02 \x01(\tR\treceiptId\x122\n" +
	"\x06stages\x18\x03 \x03(\v2\x1a.receipts.v1.StageProgressR\x06stages\x12%\n" +
	"\x0eoverall_status\x18\x04 \x01(\tR\roverallStatus\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"6\n" +
	"\x15ConfirmReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"H\n" +
	"\x16ConfirmReceiptResponse\x12.\n" +
	"\areceipt\x18\x01 \x01(\v2\x14.receipts.v1.ReceiptR\areceipt\"2\n" +
	"\x11GetReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"D\n" +
	"\x12GetReceiptResponse\x12.\n" +
	"\areceipt\x18\x01 \x01(\v2\x14.receipts.v1.ReceiptR\areceipt\"o\n" +
	"\x13ListReceiptsRequest\x12\"\n" +
	"\rowner_user_id\x18\x01 \x01(\tR\vownerUserId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"H\n" +
	"\x14ListReceiptsResponse\x120\n" +
	"\breceipts\x18\x01 \x03(\v2\x14.receipts.v1.ReceiptR\breceipts\"q\n" +
	"\x15ExportReceiptsRequest\x12\"\n" +
	"\rowner_user_id\x18\x01 \x01(\tR\vownerUserId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\",\n" +
	"\x16ExportReceiptsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x9e\x05\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\"\n" +
	"\rowner_user_id\x18\x02 \x01(\tR\vownerUserId\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\x12+\n" +
	"\x11original_filename\x18\x04 \x01(\tR\x10originalFilename\x12+\n" +
	"\x11storage_reference\x18\x05 \x01(\tR\x10storageReference\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1f\n" +
	"\vis_verified\x18\a \x01(\bR\n" +
	"isVerified\x12)\n" +
	"\x10confidence_score\x18\b \x01(\x02R\x0fconfidenceScore\x12!\n" +
	"\freceipt_date\x18\t \x01(\tR\vreceiptDate\x12\x1f\n" +
	"\vvendor_name\x18\n" +
	" \x01(\tR\n" +
	"vendorName\x12!\n" +
	"\famount_total\x18\v \x01(\x01R\vamountTotal\x12'\n" +
	"\x0famount_subtotal\x18\f \x01(\x01R\x0eamountSubtotal\x12\x1d\n" +
	"\n" +
	"tax_amount\x18\r \x01(\x01R\ttaxAmount\x12#\n" +
	"\rcurrency_code\x18\x0e \x01(\tR\fcurrencyCode\x12%\n" +
	"\x0epayment_method\x18\x0f \x01(\tR\rpaymentMethod\x12\x1a\n" +
	"\bcategory\x18\x10 \x01(\tR\bcategory\x124\n" +
	"\x16structured_fields_json\x18\x11 \x01(\tR\x14structuredFieldsJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\x12 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x13 \x01(\tR\tupdatedAt2\xbd\x03\n" +
	"\x0fReceiptsService\x12Y\n" +
	"\x0eProcessReceipt\x12\".receipts.v1.ProcessReceiptRequest\x1a#.receipts.v1.ProcessReceiptResponse\x12P\n" +
	"\vGetProgress\x12\x1f.receipts.v1.GetProgressRequest\x1a .receipts.v1.GetProgressResponse\x12Y\n" +
	"\x0eConfirmReceipt\x12\".receipts.v1.ConfirmReceiptRequest\x1a#.receipts.v1.ConfirmReceiptResponse\x12M\n" +
	"\n" +
	"GetReceipt\x12\x1e.receipts.v1.GetReceiptRequest\x1a\x1f.receipts.v1.GetReceiptResponse\x12S\n" +
	"\fListReceipts\x12 .receipts.v1.ListReceiptsRequest\x1a!.receipts.v1.ListReceiptsResponse2j\n" +
	"\rExportService\x12Y\n" +
	"\x0eExportReceipts\x12\".receipts.v1.ExportReceiptsRequest\x1a#.receipts.v1.ExportReceiptsResponseBJZHgithub.com/scouter-app/receipt-pipeline/gen/proto/receipts/v1;receiptsv1b\x06proto3"

var (
	file_proto_receipts_v1_receipts_proto_rawDescOnce sync.Once
	file_proto_receipts_v1_receipts_proto_rawDescData []byte
)

func file_proto_receipts_v1_receipts_proto_rawDescGZIP() []byte {
	file_proto_receipts_v1_receipts_proto_rawDescOnce.Do(func() {
		file_proto_receipts_v1_receipts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_receipts_v1_receipts_proto_rawDesc), len(file_proto_receipts_v1_receipts_proto_rawDesc)))
	})
	return file_proto_receipts_v1_receipts_proto_rawDescData
}

var file_proto_receipts_v1_receipts_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_proto_receipts_v1_receipts_proto_goTypes = []any{
	(*ProcessReceiptRequest)(nil),  // 0: receipts.v1.ProcessReceiptRequest
	(*ProcessReceiptResponse)(nil), // 1: receipts.v1.ProcessReceiptResponse
	(*GetProgressRequest)(nil),     // 2: receipts.v1.GetProgressRequest
	(*StageProgress)(nil),          // 3: receipts.v1.StageProgress
	(*GetProgressResponse)(nil),    // 4: receipts.v1.GetProgressResponse
	(*ConfirmReceiptRequest)(nil),  // 5: receipts.v1.ConfirmReceiptRequest
	(*ConfirmReceiptResponse)(nil), // 6: receipts.v1.ConfirmReceiptResponse
	(*GetReceiptRequest)(nil),      // 7: receipts.v1.GetReceiptRequest
	(*GetReceiptResponse)(nil),     // 8: receipts.v1.GetReceiptResponse
	(*ListReceiptsRequest)(nil),    // 9: receipts.v1.ListReceiptsRequest
	(*ListReceiptsResponse)(nil),   // 10: receipts.v1.ListReceiptsResponse
	(*ExportReceiptsRequest)(nil),  // 11: receipts.v1.ExportReceiptsRequest
	(*ExportReceiptsResponse)(nil), // 12: receipts.v1.ExportReceiptsResponse
	(*Receipt)(nil),                // 13: receipts.v1.Receipt
}
var file_proto_receipts_v1_receipts_proto_depIdxs = []int32{
	3,  // 0: receipts.v1.GetProgressResponse.stages:type_name -> receipts.v1.StageProgress
	13, // 1: receipts.v1.ConfirmReceiptResponse.receipt:type_name -> receipts.v1.Receipt
	13, // 2: receipts.v1.GetReceiptResponse.receipt:type_name -> receipts.v1.Receipt
	13, // 3: receipts.v1.ListReceiptsResponse.receipts:type_name -> receipts.v1.Receipt
	0,  // 4: receipts.v1.ReceiptsService.ProcessReceipt:input_type -> receipts.v1.ProcessReceiptRequest
	2,  // 5: receipts.v1.ReceiptsService.GetProgress:input_type -> receipts.v1.GetProgressRequest
	5,  // 6: receipts.v1.ReceiptsService.ConfirmReceipt:input_type -> receipts.v1.ConfirmReceiptRequest
	7,  // 7: receipts.v1.ReceiptsService.GetReceipt:input_type -> receipts.v1.GetReceiptRequest
	9,  // 8: receipts.v1.ReceiptsService.ListReceipts:input_type -> receipts.v1.ListReceiptsRequest
	11, // 9: receipts.v1.ExportService.ExportReceipts:input_type -> receipts.v1.ExportReceiptsRequest
	1,  // 10: receipts.v1.ReceiptsService.ProcessReceipt:output_type -> receipts.v1.ProcessReceiptResponse
	4,  // 11: receipts.v1.ReceiptsService.GetProgress:output_type -> receipts.v1.GetProgressResponse
	6,  // 12: receipts.v1.ReceiptsService.ConfirmReceipt:output_type -> receipts.v1.ConfirmReceiptResponse
	8,  // 13: receipts.v1.ReceiptsService.GetReceipt:output_type -> receipts.v1.GetReceiptResponse
	10, // 14: receipts.v1.ReceiptsService.ListReceipts:output_type -> receipts.v1.ListReceiptsResponse
	12, // 15: receipts.v1.ExportService.ExportReceipts:output_type -> receipts.v1.ExportReceiptsResponse
	10, // [10:16] is the sub-list for method output_type
	4,  // [4:10] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_proto_receipts_v1_receipts_proto_init() }
func file_proto_receipts_v1_receipts_proto_init() {
	if File_proto_receipts_v1_receipts_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_receipts_v1_receipts_proto_rawDesc), len(file_proto_receipts_v1_receipts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_proto_receipts_v1_receipts_proto_goTypes,
		DependencyIndexes: file_proto_receipts_v1_receipts_proto_depIdxs,
		MessageInfos:      file_proto_receipts_v1_receipts_proto_msgTypes,
	}.Build()
	File_proto_receipts_v1_receipts_proto = out.File
	file_proto_receipts_v1_receipts_proto_goTypes = nil
	file_proto_receipts_v1_receipts_proto_depIdxs = nil
}
