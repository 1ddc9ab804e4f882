// Package lnrpcpb holds the wire messages for the subset of the lnrpc
// Lightning service the squeak core calls through lnclient.GRPCClient:
// AddInvoice, LookupInvoice, DecodePayReq, SendPaymentSync,
// SubscribeInvoices and GetInfo. Field numbers and names follow
// lnrpc's own rpc.proto so a squeak node can talk to an unmodified
// lnd/lightninglib node.
package lnrpcpb

// AddInvoiceRequest is the request for AddInvoice.
type AddInvoiceRequest struct {
	RPreimage []byte `protobuf:"bytes,1,opt,name=r_preimage,proto3"`
	ValueMsat int64  `protobuf:"varint,2,opt,name=value_msat,proto3"`
}

func (m *AddInvoiceRequest) Reset()         { *m = AddInvoiceRequest{} }
func (m *AddInvoiceRequest) String() string { return "AddInvoiceRequest" }
func (*AddInvoiceRequest) ProtoMessage()    {}

// AddInvoiceResponse is the response for AddInvoice.
type AddInvoiceResponse struct {
	RHash          []byte `protobuf:"bytes,1,opt,name=r_hash,proto3"`
	PaymentRequest string `protobuf:"bytes,2,opt,name=payment_request,proto3"`
}

func (m *AddInvoiceResponse) Reset()         { *m = AddInvoiceResponse{} }
func (m *AddInvoiceResponse) String() string { return "AddInvoiceResponse" }
func (*AddInvoiceResponse) ProtoMessage()    {}

// PaymentHash identifies an invoice by its r_hash, for LookupInvoice.
type PaymentHash struct {
	RHash    []byte `protobuf:"bytes,1,opt,name=r_hash,proto3"`
	RHashStr string `protobuf:"bytes,2,opt,name=r_hash_str,proto3"`
}

func (m *PaymentHash) Reset()         { *m = PaymentHash{} }
func (m *PaymentHash) String() string { return "PaymentHash" }
func (*PaymentHash) ProtoMessage()    {}

// Invoice is both LookupInvoice's response and each event delivered by
// SubscribeInvoices.
type Invoice struct {
	RHash        []byte `protobuf:"bytes,1,opt,name=r_hash,proto3"`
	CreationDate int64  `protobuf:"varint,2,opt,name=creation_date,proto3"`
	Expiry       int64  `protobuf:"varint,3,opt,name=expiry,proto3"`
	Settled      bool   `protobuf:"varint,4,opt,name=settled,proto3"`
	SettleIndex  uint64 `protobuf:"varint,5,opt,name=settle_index,proto3"`
}

func (m *Invoice) Reset()         { *m = Invoice{} }
func (m *Invoice) String() string { return "Invoice" }
func (*Invoice) ProtoMessage()    {}

// InvoiceSubscription is the request opening a SubscribeInvoices stream.
type InvoiceSubscription struct {
	AddIndex    uint64 `protobuf:"varint,1,opt,name=add_index,proto3"`
	SettleIndex uint64 `protobuf:"varint,2,opt,name=settle_index,proto3"`
}

func (m *InvoiceSubscription) Reset()         { *m = InvoiceSubscription{} }
func (m *InvoiceSubscription) String() string { return "InvoiceSubscription" }
func (*InvoiceSubscription) ProtoMessage()    {}

// PayReqString is the request for DecodePayReq.
type PayReqString struct {
	PayReq string `protobuf:"bytes,1,opt,name=pay_req,proto3"`
}

func (m *PayReqString) Reset()         { *m = PayReqString{} }
func (m *PayReqString) String() string { return "PayReqString" }
func (*PayReqString) ProtoMessage()    {}

// PayReq is the response for DecodePayReq.
type PayReq struct {
	Destination string `protobuf:"bytes,1,opt,name=destination,proto3"`
	PaymentHash []byte `protobuf:"bytes,2,opt,name=payment_hash,proto3"`
	NumMsat     int64  `protobuf:"varint,3,opt,name=num_msat,proto3"`
	Timestamp   int64  `protobuf:"varint,4,opt,name=timestamp,proto3"`
	Expiry      int64  `protobuf:"varint,5,opt,name=expiry,proto3"`
}

func (m *PayReq) Reset()         { *m = PayReq{} }
func (m *PayReq) String() string { return "PayReq" }
func (*PayReq) ProtoMessage()    {}

// SendRequest is the request for SendPaymentSync.
type SendRequest struct {
	PaymentRequest string `protobuf:"bytes,1,opt,name=payment_request,proto3"`
}

func (m *SendRequest) Reset()         { *m = SendRequest{} }
func (m *SendRequest) String() string { return "SendRequest" }
func (*SendRequest) ProtoMessage()    {}

// SendResponse is the response for SendPaymentSync.
type SendResponse struct {
	PaymentPreimage []byte `protobuf:"bytes,1,opt,name=payment_preimage,proto3"`
	PaymentError    string `protobuf:"bytes,2,opt,name=payment_error,proto3"`
}

func (m *SendResponse) Reset()         { *m = SendResponse{} }
func (m *SendResponse) String() string { return "SendResponse" }
func (*SendResponse) ProtoMessage()    {}

// GetInfoRequest is the (empty) request for GetInfo.
type GetInfoRequest struct{}

func (m *GetInfoRequest) Reset()         { *m = GetInfoRequest{} }
func (m *GetInfoRequest) String() string { return "GetInfoRequest" }
func (*GetInfoRequest) ProtoMessage()    {}

// GetInfoResponse is the response for GetInfo.
type GetInfoResponse struct {
	Uris []string `protobuf:"bytes,1,rep,name=uris,proto3"`
}

func (m *GetInfoResponse) Reset()         { *m = GetInfoResponse{} }
func (m *GetInfoResponse) String() string { return "GetInfoResponse" }
func (*GetInfoResponse) ProtoMessage()    {}
