package vaccelpb

import (
	"github.com/golang/protobuf/proto"
)

// ResourceType identifies the native-runtime flavor of a registered resource.
type ResourceType int32

const (
	ResourceType_RESOURCE_TYPE_UNSPECIFIED ResourceType = 0
	ResourceType_SHARED_OBJECT             ResourceType = 1
	ResourceType_SINGLE_MODEL              ResourceType = 2
	ResourceType_TF_SAVED_MODEL            ResourceType = 3
	ResourceType_TORCH_MODEL               ResourceType = 4
	ResourceType_TFLITE_MODEL              ResourceType = 5
)

var ResourceType_name = map[int32]string{
	0: "RESOURCE_TYPE_UNSPECIFIED",
	1: "SHARED_OBJECT",
	2: "SINGLE_MODEL",
	3: "TF_SAVED_MODEL",
	4: "TORCH_MODEL",
	5: "TFLITE_MODEL",
}

func (x ResourceType) String() string {
	if s, ok := ResourceType_name[int32(x)]; ok {
		return s
	}
	return "UNKNOWN"
}

// BlobType identifies how a Blob's payload is backed.
type BlobType int32

const (
	BlobType_BLOB_TYPE_UNSPECIFIED BlobType = 0
	BlobType_BLOB_FILE             BlobType = 1
	BlobType_BLOB_BUFFER           BlobType = 2
	BlobType_BLOB_MAPPED           BlobType = 3
)

// TFDataType is the TensorFlow saved-model tensor element type.
type TFDataType int32

const (
	TFDataType_TF_DT_UNSPECIFIED TFDataType = 0
	TFDataType_TF_DT_FLOAT       TFDataType = 1
	TFDataType_TF_DT_INT32       TFDataType = 2
	TFDataType_TF_DT_UINT8       TFDataType = 3
	TFDataType_TF_DT_INT64       TFDataType = 4
)

// TFLiteDataType is the TensorFlow Lite tensor element type.
type TFLiteDataType int32

const (
	TFLiteDataType_TFLITE_DT_UNSPECIFIED TFLiteDataType = 0
	TFLiteDataType_TFLITE_DT_FLOAT32     TFLiteDataType = 1
	TFLiteDataType_TFLITE_DT_INT32       TFLiteDataType = 2
	TFLiteDataType_TFLITE_DT_UINT8       TFLiteDataType = 3
)

// TorchDataType is the Torch tensor element type.
type TorchDataType int32

const (
	TorchDataType_TORCH_DT_UNSPECIFIED TorchDataType = 0
	TorchDataType_TORCH_DT_FLOAT       TorchDataType = 1
	TorchDataType_TORCH_DT_INT64       TorchDataType = 2
	TorchDataType_TORCH_DT_UINT8       TorchDataType = 3
)

// Empty is returned by RPCs that carry no result payload.
type Empty struct {
	XXX_unrecognized []byte `json:"-"`
}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

// Status carries a native-runtime status code and message.
type Status struct {
	Code                 uint32   `protobuf:"varint,1,opt,name=code,proto3" json:"code,omitempty"`
	Message              string   `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	XXX_unrecognized     []byte   `json:"-"`
}

func (m *Status) Reset()         { *m = Status{} }
func (m *Status) String() string { return proto.CompactTextString(m) }
func (*Status) ProtoMessage()    {}

func (m *Status) GetCode() uint32 {
	if m != nil {
		return m.Code
	}
	return 0
}

func (m *Status) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

// VaccelError carries a native-runtime error traveling as data inside an
// RPC response rather than as an RPC status.
type VaccelError struct {
	// Types that are valid to be assigned to Error:
	//	*VaccelError_VaccelCode
	//	*VaccelError_AgentCode
	Error                isVaccelError_Error `protobuf_oneof:"error"`
	Status               *Status             `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	XXX_unrecognized     []byte              `json:"-"`
}

func (m *VaccelError) Reset()         { *m = VaccelError{} }
func (m *VaccelError) String() string { return proto.CompactTextString(m) }
func (*VaccelError) ProtoMessage()    {}

type isVaccelError_Error interface {
	isVaccelError_Error()
}

type VaccelError_VaccelCode struct {
	VaccelCode int64 `protobuf:"varint,1,opt,name=vaccel_code,json=vaccelCode,proto3,oneof"`
}

type VaccelError_AgentCode struct {
	AgentCode int64 `protobuf:"varint,2,opt,name=agent_code,json=agentCode,proto3,oneof"`
}

func (*VaccelError_VaccelCode) isVaccelError_Error() {}
func (*VaccelError_AgentCode) isVaccelError_Error()  {}

func (m *VaccelError) GetVaccelCode() int64 {
	if x, ok := m.GetError().(*VaccelError_VaccelCode); ok {
		return x.VaccelCode
	}
	return 0
}

func (m *VaccelError) GetAgentCode() int64 {
	if x, ok := m.GetError().(*VaccelError_AgentCode); ok {
		return x.AgentCode
	}
	return 0
}

func (m *VaccelError) GetError() isVaccelError_Error {
	if m != nil {
		return m.Error
	}
	return nil
}

func (m *VaccelError) GetStatus() *Status {
	if m != nil {
		return m.Status
	}
	return nil
}

// File is carried inside RegisterResourceRequest to name an on-disk or
// in-memory resource payload.
type File struct {
	Name                 string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Path                 string   `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	PathOwned            bool     `protobuf:"varint,3,opt,name=path_owned,json=pathOwned,proto3" json:"path_owned,omitempty"`
	Data                 []byte   `protobuf:"bytes,4,opt,name=data,proto3" json:"data,omitempty"`
	Size                 uint32   `protobuf:"varint,5,opt,name=size,proto3" json:"size,omitempty"`
	XXX_unrecognized     []byte   `json:"-"`
}

func (m *File) Reset()         { *m = File{} }
func (m *File) String() string { return proto.CompactTextString(m) }
func (*File) ProtoMessage()    {}

func (m *File) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *File) GetPath() string {
	if m != nil {
		return m.Path
	}
	return ""
}

func (m *File) GetPathOwned() bool {
	if m != nil {
		return m.PathOwned
	}
	return false
}

func (m *File) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

func (m *File) GetSize() uint32 {
	if m != nil {
		return m.Size
	}
	return 0
}

// Blob describes a shared-object resource payload.
type Blob struct {
	Type                 BlobType `protobuf:"varint,1,opt,name=type,proto3,enum=vaccel.BlobType" json:"type,omitempty"`
	Name                 string   `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Data                 []byte   `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	Size                 uint32   `protobuf:"varint,4,opt,name=size,proto3" json:"size,omitempty"`
	XXX_unrecognized     []byte   `json:"-"`
}

func (m *Blob) Reset()         { *m = Blob{} }
func (m *Blob) String() string { return proto.CompactTextString(m) }
func (*Blob) ProtoMessage()    {}

// Arg is a generic opaque Genop argument, self-contained when Parts == 0 or
// a fragment of a larger argument being streamed when Parts > 0.
type Arg struct {
	Buf                  []byte   `protobuf:"bytes,1,opt,name=buf,proto3" json:"buf,omitempty"`
	Size                 uint32   `protobuf:"varint,2,opt,name=size,proto3" json:"size,omitempty"`
	Argtype              uint32   `protobuf:"varint,3,opt,name=argtype,proto3" json:"argtype,omitempty"`
	Parts                uint32   `protobuf:"varint,4,opt,name=parts,proto3" json:"parts,omitempty"`
	PartNo               uint32   `protobuf:"varint,5,opt,name=part_no,json=partNo,proto3" json:"part_no,omitempty"`
	XXX_unrecognized     []byte   `json:"-"`
}

func (m *Arg) Reset()         { *m = Arg{} }
func (m *Arg) String() string { return proto.CompactTextString(m) }
func (*Arg) ProtoMessage()    {}

func (m *Arg) GetBuf() []byte {
	if m != nil {
		return m.Buf
	}
	return nil
}

func (m *Arg) GetSize() uint32 {
	if m != nil {
		return m.Size
	}
	return 0
}

func (m *Arg) GetArgtype() uint32 {
	if m != nil {
		return m.Argtype
	}
	return 0
}

func (m *Arg) GetParts() uint32 {
	if m != nil {
		return m.Parts
	}
	return 0
}

func (m *Arg) GetPartNo() uint32 {
	if m != nil {
		return m.PartNo
	}
	return 0
}

// TFTensor is a TensorFlow saved-model tensor; dims are i64 on 64-bit targets.
type TFTensor struct {
	Dims                 []int64    `protobuf:"varint,1,rep,packed,name=dims,proto3" json:"dims,omitempty"`
	Type                 TFDataType `protobuf:"varint,2,opt,name=type,proto3,enum=vaccel.TFDataType" json:"type,omitempty"`
	Data                 []byte     `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	XXX_unrecognized     []byte     `json:"-"`
}

func (m *TFTensor) Reset()         { *m = TFTensor{} }
func (m *TFTensor) String() string { return proto.CompactTextString(m) }
func (*TFTensor) ProtoMessage()    {}

// TFNode names a TensorFlow graph input or output.
type TFNode struct {
	Name                 string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Id                   int32  `protobuf:"varint,2,opt,name=id,proto3" json:"id,omitempty"`
	XXX_unrecognized     []byte `json:"-"`
}

func (m *TFNode) Reset()         { *m = TFNode{} }
func (m *TFNode) String() string { return proto.CompactTextString(m) }
func (*TFNode) ProtoMessage()    {}

// TFLiteTensor is a TensorFlow Lite tensor; dims are i32.
type TFLiteTensor struct {
	Dims                 []int32        `protobuf:"varint,1,rep,packed,name=dims,proto3" json:"dims,omitempty"`
	Type                 TFLiteDataType `protobuf:"varint,2,opt,name=type,proto3,enum=vaccel.TFLiteDataType" json:"type,omitempty"`
	Data                 []byte         `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	XXX_unrecognized     []byte         `json:"-"`
}

func (m *TFLiteTensor) Reset()         { *m = TFLiteTensor{} }
func (m *TFLiteTensor) String() string { return proto.CompactTextString(m) }
func (*TFLiteTensor) ProtoMessage()    {}

// TorchTensor is a Torch tensor; dims are i64 on 64-bit targets.
type TorchTensor struct {
	Dims                 []int64       `protobuf:"varint,1,rep,packed,name=dims,proto3" json:"dims,omitempty"`
	Type                 TorchDataType `protobuf:"varint,2,opt,name=type,proto3,enum=vaccel.TorchDataType" json:"type,omitempty"`
	Data                 []byte        `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	XXX_unrecognized     []byte        `json:"-"`
}

func (m *TorchTensor) Reset()         { *m = TorchTensor{} }
func (m *TorchTensor) String() string { return proto.CompactTextString(m) }
func (*TorchTensor) ProtoMessage()    {}

// ProfSample is one timed sample within a profiling region.
type ProfSample struct {
	Start                uint64 `protobuf:"varint,1,opt,name=start,proto3" json:"start,omitempty"`
	Duration             uint64 `protobuf:"varint,2,opt,name=duration,proto3" json:"duration,omitempty"`
	XXX_unrecognized     []byte `json:"-"`
}

func (m *ProfSample) Reset()         { *m = ProfSample{} }
func (m *ProfSample) String() string { return proto.CompactTextString(m) }
func (*ProfSample) ProtoMessage()    {}

func (m *ProfSample) GetStart() uint64 {
	if m != nil {
		return m.Start
	}
	return 0
}

func (m *ProfSample) GetDuration() uint64 {
	if m != nil {
		return m.Duration
	}
	return 0
}

// ProfRegion is a named sequence of timing samples.
type ProfRegion struct {
	Name                 string        `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Samples              []*ProfSample `protobuf:"bytes,2,rep,name=samples,proto3" json:"samples,omitempty"`
	XXX_unrecognized     []byte        `json:"-"`
}

func (m *ProfRegion) Reset()         { *m = ProfRegion{} }
func (m *ProfRegion) String() string { return proto.CompactTextString(m) }
func (*ProfRegion) ProtoMessage()    {}

func (m *ProfRegion) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *ProfRegion) GetSamples() []*ProfSample {
	if m != nil {
		return m.Samples
	}
	return nil
}

func init() {
	proto.RegisterType((*Empty)(nil), "vaccel.Empty")
	proto.RegisterType((*Status)(nil), "vaccel.Status")
	proto.RegisterType((*VaccelError)(nil), "vaccel.VaccelError")
	proto.RegisterType((*File)(nil), "vaccel.File")
	proto.RegisterType((*Blob)(nil), "vaccel.Blob")
	proto.RegisterType((*Arg)(nil), "vaccel.Arg")
	proto.RegisterType((*TFTensor)(nil), "vaccel.TFTensor")
	proto.RegisterType((*TFNode)(nil), "vaccel.TFNode")
	proto.RegisterType((*TFLiteTensor)(nil), "vaccel.TFLiteTensor")
	proto.RegisterType((*TorchTensor)(nil), "vaccel.TorchTensor")
	proto.RegisterType((*ProfSample)(nil), "vaccel.ProfSample")
	proto.RegisterType((*ProfRegion)(nil), "vaccel.ProfRegion")
}
