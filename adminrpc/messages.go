// Package adminrpc implements the admin request shim of spec §4.7: a
// single Handle(ctx, name, body) boundary dispatching protobuf-encoded
// requests to handler methods on Handler, fronted by an HTTP layer
// (server.go) that is a path → (decode, Handle, encode) table plus
// session-cookie login. No business logic lives here; every handler
// method is a thin translation to and from the engine/store/network
// packages that do the real work, per spec §4.7 and §7.
package adminrpc

// Every request/response type below follows the same hand-written
// protobuf-message shape lnclient/lnrpcpb uses: struct tags describing
// the wire encoding, plus the Reset/String/ProtoMessage trio
// golang/protobuf's reflection-based Marshal/Unmarshal needs. Field
// names and endpoint names are preserved verbatim from spec §6 for wire
// compatibility with existing clients.

// Empty is the request or response for operations that carry, or
// return, no payload.
type Empty struct{}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return "Empty" }
func (*Empty) ProtoMessage()    {}

// IDRequest identifies a row by its store-assigned numeric id, the
// shape shared by most "get/delete/set * by id" endpoints.
type IDRequest struct {
	Id uint64 `protobuf:"varint,1,opt,name=id,proto3"`
}

func (m *IDRequest) Reset()         { *m = IDRequest{} }
func (m *IDRequest) String() string { return "IDRequest" }
func (*IDRequest) ProtoMessage()    {}

// HashRequest identifies a squeak by its 32-byte hash.
type HashRequest struct {
	SqueakHash []byte `protobuf:"bytes,1,opt,name=squeak_hash,proto3"`
}

func (m *HashRequest) Reset()         { *m = HashRequest{} }
func (m *HashRequest) String() string { return "HashRequest" }
func (*HashRequest) ProtoMessage()    {}

// AddressRequest identifies a peer by host/port.
type AddressRequest struct {
	Host string `protobuf:"bytes,1,opt,name=host,proto3"`
	Port uint32 `protobuf:"varint,2,opt,name=port,proto3"`
}

func (m *AddressRequest) Reset()         { *m = AddressRequest{} }
func (m *AddressRequest) String() string { return "AddressRequest" }
func (*AddressRequest) ProtoMessage()    {}

// SqueakDisplay is the read-model a client renders a single squeak
// from. Content is populated only when the squeak is unlocked (a
// secret_key is on file for it); otherwise IsUnlocked is false and
// Content is empty, never the ciphertext.
type SqueakDisplay struct {
	SqueakHash     []byte `protobuf:"bytes,1,opt,name=squeak_hash,proto3"`
	AuthorAddress  string `protobuf:"bytes,2,opt,name=author_address,proto3"`
	AuthorName     string `protobuf:"bytes,3,opt,name=author_name,proto3"`
	Content        string `protobuf:"bytes,4,opt,name=content,proto3"`
	IsUnlocked     bool   `protobuf:"varint,5,opt,name=is_unlocked,proto3"`
	BlockHeight    int32  `protobuf:"varint,6,opt,name=block_height,proto3"`
	BlockHash      []byte `protobuf:"bytes,7,opt,name=block_hash,proto3"`
	Timestamp      int64  `protobuf:"varint,8,opt,name=timestamp,proto3"`
	ReplyToHash    []byte `protobuf:"bytes,9,opt,name=reply_to_hash,proto3"`
	Liked          bool   `protobuf:"varint,10,opt,name=liked,proto3"`
	HasCustomPrice bool   `protobuf:"varint,11,opt,name=has_custom_price,proto3"`
	PriceMsat      int64  `protobuf:"varint,12,opt,name=price_msat,proto3"`
}

func (m *SqueakDisplay) Reset()         { *m = SqueakDisplay{} }
func (m *SqueakDisplay) String() string { return "SqueakDisplay" }
func (*SqueakDisplay) ProtoMessage()    {}

// SqueakDisplaysResponse wraps a list of SqueakDisplay, the response
// shape shared by every *squeakdisplays endpoint.
type SqueakDisplaysResponse struct {
	SqueakDisplays []*SqueakDisplay `protobuf:"bytes,1,rep,name=squeak_displays,proto3"`
}

func (m *SqueakDisplaysResponse) Reset()         { *m = SqueakDisplaysResponse{} }
func (m *SqueakDisplaysResponse) String() string { return "SqueakDisplaysResponse" }
func (*SqueakDisplaysResponse) ProtoMessage()    {}

// SqueakDisplayResponse wraps a single SqueakDisplay.
type SqueakDisplayResponse struct {
	SqueakDisplay *SqueakDisplay `protobuf:"bytes,1,opt,name=squeak_display,proto3"`
}

func (m *SqueakDisplayResponse) Reset()         { *m = SqueakDisplayResponse{} }
func (m *SqueakDisplayResponse) String() string { return "SqueakDisplayResponse" }
func (*SqueakDisplayResponse) ProtoMessage()    {}

// MakeSqueakRequest authors a new squeak as ProfileId.
type MakeSqueakRequest struct {
	ProfileId   uint64 `protobuf:"varint,1,opt,name=profile_id,proto3"`
	Content     string `protobuf:"bytes,2,opt,name=content,proto3"`
	ReplyToHash []byte `protobuf:"bytes,3,opt,name=reply_to_hash,proto3"`
}

func (m *MakeSqueakRequest) Reset()         { *m = MakeSqueakRequest{} }
func (m *MakeSqueakRequest) String() string { return "MakeSqueakRequest" }
func (*MakeSqueakRequest) ProtoMessage()    {}

// AddressSqueaksRequest scopes a squeak listing to a single author
// address, used by getaddresssqueakdisplays.
type AddressSqueaksRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3"`
}

func (m *AddressSqueaksRequest) Reset()         { *m = AddressSqueaksRequest{} }
func (m *AddressSqueaksRequest) String() string { return "AddressSqueaksRequest" }
func (*AddressSqueaksRequest) ProtoMessage()    {}

// SearchSqueaksRequest carries a free-text content search term.
type SearchSqueaksRequest struct {
	SearchText string `protobuf:"bytes,1,opt,name=search_text,proto3"`
}

func (m *SearchSqueaksRequest) Reset()         { *m = SearchSqueaksRequest{} }
func (m *SearchSqueaksRequest) String() string { return "SearchSqueaksRequest" }
func (*SearchSqueaksRequest) ProtoMessage()    {}

// ProfileDisplay is the read-model for a SqueakProfile.
type ProfileDisplay struct {
	ProfileId       uint64 `protobuf:"varint,1,opt,name=profile_id,proto3"`
	Name            string `protobuf:"bytes,2,opt,name=name,proto3"`
	Address         string `protobuf:"bytes,3,opt,name=address,proto3"`
	IsSigningKey    bool   `protobuf:"varint,4,opt,name=is_signing_key,proto3"`
	Following       bool   `protobuf:"varint,5,opt,name=following,proto3"`
	UseCustomPrice  bool   `protobuf:"varint,6,opt,name=use_custom_price,proto3"`
	CustomPriceMsat int64  `protobuf:"varint,7,opt,name=custom_price_msat,proto3"`
	HasImage        bool   `protobuf:"varint,8,opt,name=has_image,proto3"`
}

func (m *ProfileDisplay) Reset()         { *m = ProfileDisplay{} }
func (m *ProfileDisplay) String() string { return "ProfileDisplay" }
func (*ProfileDisplay) ProtoMessage()    {}

// ProfileResponse wraps a single ProfileDisplay.
type ProfileResponse struct {
	Profile *ProfileDisplay `protobuf:"bytes,1,opt,name=profile,proto3"`
}

func (m *ProfileResponse) Reset()         { *m = ProfileResponse{} }
func (m *ProfileResponse) String() string { return "ProfileResponse" }
func (*ProfileResponse) ProtoMessage()    {}

// ProfilesResponse wraps a list of ProfileDisplay.
type ProfilesResponse struct {
	Profiles []*ProfileDisplay `protobuf:"bytes,1,rep,name=profiles,proto3"`
}

func (m *ProfilesResponse) Reset()         { *m = ProfilesResponse{} }
func (m *ProfilesResponse) String() string { return "ProfilesResponse" }
func (*ProfilesResponse) ProtoMessage()    {}

// AddressRequestByString looks a profile up by its author address.
type AddressRequestByString struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3"`
}

func (m *AddressRequestByString) Reset()         { *m = AddressRequestByString{} }
func (m *AddressRequestByString) String() string { return "AddressRequestByString" }
func (*AddressRequestByString) ProtoMessage()    {}

// SetBoolRequest carries an id plus a single boolean flag, the shape
// shared by every setsqueakprofile*/setpeer* toggle endpoint.
type SetBoolRequest struct {
	Id    uint64 `protobuf:"varint,1,opt,name=id,proto3"`
	Value bool   `protobuf:"varint,2,opt,name=value,proto3"`
}

func (m *SetBoolRequest) Reset()         { *m = SetBoolRequest{} }
func (m *SetBoolRequest) String() string { return "SetBoolRequest" }
func (*SetBoolRequest) ProtoMessage()    {}

// SetStringRequest carries an id plus a single string value, shared by
// renamesqueakprofile/renamepeer.
type SetStringRequest struct {
	Id    uint64 `protobuf:"varint,1,opt,name=id,proto3"`
	Value string `protobuf:"bytes,2,opt,name=value,proto3"`
}

func (m *SetStringRequest) Reset()         { *m = SetStringRequest{} }
func (m *SetStringRequest) String() string { return "SetStringRequest" }
func (*SetStringRequest) ProtoMessage()    {}

// SetInt64Request carries an id plus a single int64 value, used by
// setsqueakprofilecustomprice.
type SetInt64Request struct {
	Id    uint64 `protobuf:"varint,1,opt,name=id,proto3"`
	Value int64  `protobuf:"varint,2,opt,name=value,proto3"`
}

func (m *SetInt64Request) Reset()         { *m = SetInt64Request{} }
func (m *SetInt64Request) String() string { return "SetInt64Request" }
func (*SetInt64Request) ProtoMessage()    {}

// SetImageRequest carries an id plus image bytes.
type SetImageRequest struct {
	Id    uint64 `protobuf:"varint,1,opt,name=id,proto3"`
	Image []byte `protobuf:"bytes,2,opt,name=image,proto3"`
}

func (m *SetImageRequest) Reset()         { *m = SetImageRequest{} }
func (m *SetImageRequest) String() string { return "SetImageRequest" }
func (*SetImageRequest) ProtoMessage()    {}

// CreateContactProfileRequest creates a profile for someone else's
// address (no private key).
type CreateContactProfileRequest struct {
	Name    string `protobuf:"bytes,1,opt,name=name,proto3"`
	Address string `protobuf:"bytes,2,opt,name=address,proto3"`
}

func (m *CreateContactProfileRequest) Reset()         { *m = CreateContactProfileRequest{} }
func (m *CreateContactProfileRequest) String() string { return "CreateContactProfileRequest" }
func (*CreateContactProfileRequest) ProtoMessage()    {}

// CreateSigningProfileRequest creates a fresh signing identity.
type CreateSigningProfileRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3"`
}

func (m *CreateSigningProfileRequest) Reset()         { *m = CreateSigningProfileRequest{} }
func (m *CreateSigningProfileRequest) String() string { return "CreateSigningProfileRequest" }
func (*CreateSigningProfileRequest) ProtoMessage()    {}

// ImportSigningProfileRequest imports an existing private key.
type ImportSigningProfileRequest struct {
	Name       string `protobuf:"bytes,1,opt,name=name,proto3"`
	PrivateKey []byte `protobuf:"bytes,2,opt,name=private_key,proto3"`
}

func (m *ImportSigningProfileRequest) Reset()         { *m = ImportSigningProfileRequest{} }
func (m *ImportSigningProfileRequest) String() string { return "ImportSigningProfileRequest" }
func (*ImportSigningProfileRequest) ProtoMessage()    {}

// PrivateKeyResponse carries a profile's raw private key, for
// getsqueakprofileprivatekey.
type PrivateKeyResponse struct {
	PrivateKey []byte `protobuf:"bytes,1,opt,name=private_key,proto3"`
}

func (m *PrivateKeyResponse) Reset()         { *m = PrivateKeyResponse{} }
func (m *PrivateKeyResponse) String() string { return "PrivateKeyResponse" }
func (*PrivateKeyResponse) ProtoMessage()    {}

// PeerDisplay is the read-model for a configured peer, with Connected
// reflecting network.ConnectionManager's live state rather than the
// store's static configuration.
type PeerDisplay struct {
	PeerId      uint64 `protobuf:"varint,1,opt,name=peer_id,proto3"`
	Name        string `protobuf:"bytes,2,opt,name=name,proto3"`
	Host        string `protobuf:"bytes,3,opt,name=host,proto3"`
	Port        uint32 `protobuf:"varint,4,opt,name=port,proto3"`
	Downloading bool   `protobuf:"varint,5,opt,name=downloading,proto3"`
	Uploading   bool   `protobuf:"varint,6,opt,name=uploading,proto3"`
	Autoconnect bool   `protobuf:"varint,7,opt,name=autoconnect,proto3"`
	Connected   bool   `protobuf:"varint,8,opt,name=connected,proto3"`
}

func (m *PeerDisplay) Reset()         { *m = PeerDisplay{} }
func (m *PeerDisplay) String() string { return "PeerDisplay" }
func (*PeerDisplay) ProtoMessage()    {}

// PeerResponse wraps a single PeerDisplay.
type PeerResponse struct {
	Peer *PeerDisplay `protobuf:"bytes,1,opt,name=peer,proto3"`
}

func (m *PeerResponse) Reset()         { *m = PeerResponse{} }
func (m *PeerResponse) String() string { return "PeerResponse" }
func (*PeerResponse) ProtoMessage()    {}

// PeersResponse wraps a list of PeerDisplay.
type PeersResponse struct {
	Peers []*PeerDisplay `protobuf:"bytes,1,rep,name=peers,proto3"`
}

func (m *PeersResponse) Reset()         { *m = PeersResponse{} }
func (m *PeersResponse) String() string { return "PeersResponse" }
func (*PeersResponse) ProtoMessage()    {}

// CreatePeerRequest configures a new peer to track.
type CreatePeerRequest struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3"`
	Host string `protobuf:"bytes,2,opt,name=host,proto3"`
	Port uint32 `protobuf:"varint,3,opt,name=port,proto3"`
}

func (m *CreatePeerRequest) Reset()         { *m = CreatePeerRequest{} }
func (m *CreatePeerRequest) String() string { return "CreatePeerRequest" }
func (*CreatePeerRequest) ProtoMessage()    {}

// ExternalAddressResponse carries this node's own externally-reachable
// address, per getexternaladdress.
type ExternalAddressResponse struct {
	Host string `protobuf:"bytes,1,opt,name=host,proto3"`
	Port uint32 `protobuf:"varint,2,opt,name=port,proto3"`
}

func (m *ExternalAddressResponse) Reset()         { *m = ExternalAddressResponse{} }
func (m *ExternalAddressResponse) String() string { return "ExternalAddressResponse" }
func (*ExternalAddressResponse) ProtoMessage()    {}

// NetworkResponse carries the configured chain network name, e.g.
// "mainnet"/"testnet"/"regtest".
type NetworkResponse struct {
	Network string `protobuf:"bytes,1,opt,name=network,proto3"`
}

func (m *NetworkResponse) Reset()         { *m = NetworkResponse{} }
func (m *NetworkResponse) String() string { return "NetworkResponse" }
func (*NetworkResponse) ProtoMessage()    {}

// PayOfferRequest pays a previously unpacked ReceivedOffer by id.
type PayOfferRequest struct {
	ReceivedOfferId uint64 `protobuf:"varint,1,opt,name=received_offer_id,proto3"`
}

func (m *PayOfferRequest) Reset()         { *m = PayOfferRequest{} }
func (m *PayOfferRequest) String() string { return "PayOfferRequest" }
func (*PayOfferRequest) ProtoMessage()    {}

// SentPaymentDisplay is the read-model for a SentPayment.
type SentPaymentDisplay struct {
	SentPaymentId uint64 `protobuf:"varint,1,opt,name=sent_payment_id,proto3"`
	SqueakHash    []byte `protobuf:"bytes,2,opt,name=squeak_hash,proto3"`
	PaymentHash   []byte `protobuf:"bytes,3,opt,name=payment_hash,proto3"`
	PriceMsat     int64  `protobuf:"varint,4,opt,name=price_msat,proto3"`
	NodePubkey    []byte `protobuf:"bytes,5,opt,name=node_pubkey,proto3"`
	Valid         bool   `protobuf:"varint,6,opt,name=valid,proto3"`
	CreatedTimeMs int64  `protobuf:"varint,7,opt,name=created_time_ms,proto3"`
}

func (m *SentPaymentDisplay) Reset()         { *m = SentPaymentDisplay{} }
func (m *SentPaymentDisplay) String() string { return "SentPaymentDisplay" }
func (*SentPaymentDisplay) ProtoMessage()    {}

// PayOfferResponse wraps the SentPayment a payoffer call produced.
type PayOfferResponse struct {
	SentPayment *SentPaymentDisplay `protobuf:"bytes,1,opt,name=sent_payment,proto3"`
}

func (m *PayOfferResponse) Reset()         { *m = PayOfferResponse{} }
func (m *PayOfferResponse) String() string { return "PayOfferResponse" }
func (*PayOfferResponse) ProtoMessage()    {}

// SentPaymentsResponse wraps a list of SentPaymentDisplay.
type SentPaymentsResponse struct {
	SentPayments []*SentPaymentDisplay `protobuf:"bytes,1,rep,name=sent_payments,proto3"`
}

func (m *SentPaymentsResponse) Reset()         { *m = SentPaymentsResponse{} }
func (m *SentPaymentsResponse) String() string { return "SentPaymentsResponse" }
func (*SentPaymentsResponse) ProtoMessage()    {}

// BuyOfferDisplay is the read-model for a ReceivedOffer (what the admin
// surface calls a "buy offer": an offer this node can pay to buy a
// squeak's key).
type BuyOfferDisplay struct {
	OfferId        uint64 `protobuf:"varint,1,opt,name=offer_id,proto3"`
	SqueakHash     []byte `protobuf:"bytes,2,opt,name=squeak_hash,proto3"`
	PriceMsat      int64  `protobuf:"varint,3,opt,name=price_msat,proto3"`
	PaymentHash    []byte `protobuf:"bytes,4,opt,name=payment_hash,proto3"`
	NodePubkey     []byte `protobuf:"bytes,5,opt,name=node_pubkey,proto3"`
	PeerHost       string `protobuf:"bytes,6,opt,name=peer_host,proto3"`
	PeerPort       uint32 `protobuf:"varint,7,opt,name=peer_port,proto3"`
	PaymentRequest string `protobuf:"bytes,8,opt,name=payment_request,proto3"`
}

func (m *BuyOfferDisplay) Reset()         { *m = BuyOfferDisplay{} }
func (m *BuyOfferDisplay) String() string { return "BuyOfferDisplay" }
func (*BuyOfferDisplay) ProtoMessage()    {}

// BuyOfferResponse wraps a single BuyOfferDisplay.
type BuyOfferResponse struct {
	Offer *BuyOfferDisplay `protobuf:"bytes,1,opt,name=offer,proto3"`
}

func (m *BuyOfferResponse) Reset()         { *m = BuyOfferResponse{} }
func (m *BuyOfferResponse) String() string { return "BuyOfferResponse" }
func (*BuyOfferResponse) ProtoMessage()    {}

// BuyOffersResponse wraps a list of BuyOfferDisplay, scoped by
// HashRequest.SqueakHash.
type BuyOffersResponse struct {
	Offers []*BuyOfferDisplay `protobuf:"bytes,1,rep,name=offers,proto3"`
}

func (m *BuyOffersResponse) Reset()         { *m = BuyOffersResponse{} }
func (m *BuyOffersResponse) String() string { return "BuyOffersResponse" }
func (*BuyOffersResponse) ProtoMessage()    {}

// SentOfferDisplay is the read-model for a SentOffer (an offer this
// node, as seller, has made to a peer).
type SentOfferDisplay struct {
	SentOfferId    uint64 `protobuf:"varint,1,opt,name=sent_offer_id,proto3"`
	SqueakHash     []byte `protobuf:"bytes,2,opt,name=squeak_hash,proto3"`
	PaymentHash    []byte `protobuf:"bytes,3,opt,name=payment_hash,proto3"`
	PriceMsat      int64  `protobuf:"varint,4,opt,name=price_msat,proto3"`
	PeerHost       string `protobuf:"bytes,5,opt,name=peer_host,proto3"`
	PeerPort       uint32 `protobuf:"varint,6,opt,name=peer_port,proto3"`
	Paid           bool   `protobuf:"varint,7,opt,name=paid,proto3"`
	PaymentRequest string `protobuf:"bytes,8,opt,name=payment_request,proto3"`
}

func (m *SentOfferDisplay) Reset()         { *m = SentOfferDisplay{} }
func (m *SentOfferDisplay) String() string { return "SentOfferDisplay" }
func (*SentOfferDisplay) ProtoMessage()    {}

// SentOffersResponse wraps a list of SentOfferDisplay.
type SentOffersResponse struct {
	SentOffers []*SentOfferDisplay `protobuf:"bytes,1,rep,name=sent_offers,proto3"`
}

func (m *SentOffersResponse) Reset()         { *m = SentOffersResponse{} }
func (m *SentOffersResponse) String() string { return "SentOffersResponse" }
func (*SentOffersResponse) ProtoMessage()    {}

// ReceivedPaymentDisplay is the read-model for a ReceivedPayment (a
// settled sale, from the seller's side).
type ReceivedPaymentDisplay struct {
	ReceivedPaymentId uint64 `protobuf:"varint,1,opt,name=received_payment_id,proto3"`
	SqueakHash        []byte `protobuf:"bytes,2,opt,name=squeak_hash,proto3"`
	PaymentHash       []byte `protobuf:"bytes,3,opt,name=payment_hash,proto3"`
	PriceMsat         int64  `protobuf:"varint,4,opt,name=price_msat,proto3"`
	SettleIndex       uint64 `protobuf:"varint,5,opt,name=settle_index,proto3"`
	PeerHost          string `protobuf:"bytes,6,opt,name=peer_host,proto3"`
	PeerPort          uint32 `protobuf:"varint,7,opt,name=peer_port,proto3"`
	CreatedTimeMs     int64  `protobuf:"varint,8,opt,name=created_time_ms,proto3"`
}

func (m *ReceivedPaymentDisplay) Reset()         { *m = ReceivedPaymentDisplay{} }
func (m *ReceivedPaymentDisplay) String() string { return "ReceivedPaymentDisplay" }
func (*ReceivedPaymentDisplay) ProtoMessage()    {}

// ReceivedPaymentsResponse wraps a list of ReceivedPaymentDisplay.
type ReceivedPaymentsResponse struct {
	ReceivedPayments []*ReceivedPaymentDisplay `protobuf:"bytes,1,rep,name=received_payments,proto3"`
}

func (m *ReceivedPaymentsResponse) Reset()         { *m = ReceivedPaymentsResponse{} }
func (m *ReceivedPaymentsResponse) String() string { return "ReceivedPaymentsResponse" }
func (*ReceivedPaymentsResponse) ProtoMessage()    {}

// PaymentSummaryResponse is the aggregate getpaymentsummary reply.
type PaymentSummaryResponse struct {
	NumSentPayments      uint64 `protobuf:"varint,1,opt,name=num_sent_payments,proto3"`
	NumReceivedPayments  uint64 `protobuf:"varint,2,opt,name=num_received_payments,proto3"`
	AmountSentMsat       int64  `protobuf:"varint,3,opt,name=amount_sent_msat,proto3"`
	AmountReceivedMsat   int64  `protobuf:"varint,4,opt,name=amount_received_msat,proto3"`
}

func (m *PaymentSummaryResponse) Reset()         { *m = PaymentSummaryResponse{} }
func (m *PaymentSummaryResponse) String() string { return "PaymentSummaryResponse" }
func (*PaymentSummaryResponse) ProtoMessage()    {}

// LndInfoResponse is a minimal lndgetinfo reply: the subset of node
// identity this repo's narrow lnclient.Client surface can answer
// (GetInfo). Fields the underlying lnd RPC also exposes but that
// lnclient.Client does not model (sync height, version string, feature
// bits, ...) are out of scope per spec §1; see DESIGN.md.
type LndInfoResponse struct {
	Uris []string `protobuf:"bytes,1,rep,name=uris,proto3"`
}

func (m *LndInfoResponse) Reset()         { *m = LndInfoResponse{} }
func (m *LndInfoResponse) String() string { return "LndInfoResponse" }
func (*LndInfoResponse) ProtoMessage()    {}

// SyncSqueakRequest identifies a squeak to fetch from a specific peer,
// the shape shared by syncsqueak, downloadsqueak, and downloadoffers.
type SyncSqueakRequest struct {
	SqueakHash []byte `protobuf:"bytes,1,opt,name=squeak_hash,proto3"`
	Host       string `protobuf:"bytes,2,opt,name=host,proto3"`
	Port       uint32 `protobuf:"varint,3,opt,name=port,proto3"`
}

func (m *SyncSqueakRequest) Reset()         { *m = SyncSqueakRequest{} }
func (m *SyncSqueakRequest) String() string { return "SyncSqueakRequest" }
func (*SyncSqueakRequest) ProtoMessage()    {}

// DownloadAddressSqueaksRequest identifies an author address to fetch
// from a specific peer.
type DownloadAddressSqueaksRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3"`
	Host    string `protobuf:"bytes,2,opt,name=host,proto3"`
	Port    uint32 `protobuf:"varint,3,opt,name=port,proto3"`
}

func (m *DownloadAddressSqueaksRequest) Reset()         { *m = DownloadAddressSqueaksRequest{} }
func (m *DownloadAddressSqueaksRequest) String() string { return "DownloadAddressSqueaksRequest" }
func (*DownloadAddressSqueaksRequest) ProtoMessage()    {}

// CreateSentOfferRequest asks this node, as seller, to create and
// package an offer for a squeak it holds the secret_key for, addressed
// to a specific buyer peer.
type CreateSentOfferRequest struct {
	SqueakHash      []byte `protobuf:"bytes,1,opt,name=squeak_hash,proto3"`
	PeerHost        string `protobuf:"bytes,2,opt,name=peer_host,proto3"`
	PeerPort        uint32 `protobuf:"varint,3,opt,name=peer_port,proto3"`
	PriceMsat       int64  `protobuf:"varint,4,opt,name=price_msat,proto3"`
	ExternalHost    string `protobuf:"bytes,5,opt,name=external_host,proto3"`
	ExternalPort    uint32 `protobuf:"varint,6,opt,name=external_port,proto3"`
	HasExternalAddr bool   `protobuf:"varint,7,opt,name=has_external_addr,proto3"`
}

func (m *CreateSentOfferRequest) Reset()         { *m = CreateSentOfferRequest{} }
func (m *CreateSentOfferRequest) String() string { return "CreateSentOfferRequest" }
func (*CreateSentOfferRequest) ProtoMessage()    {}

// OfferPayload is the wire Offer a seller hands a buyer out-of-band
// (e.g. over the network.ConnectionManager transport), base64-free here
// since the admin transport already carries arbitrary bytes.
type OfferPayload struct {
	SentOfferId    uint64 `protobuf:"varint,1,opt,name=sent_offer_id,proto3"`
	SqueakHash     []byte `protobuf:"bytes,2,opt,name=squeak_hash,proto3"`
	Nonce          []byte `protobuf:"bytes,3,opt,name=nonce,proto3"`
	PaymentRequest string `protobuf:"bytes,4,opt,name=payment_request,proto3"`
	Host           string `protobuf:"bytes,5,opt,name=host,proto3"`
	Port           uint32 `protobuf:"varint,6,opt,name=port,proto3"`
}

func (m *OfferPayload) Reset()         { *m = OfferPayload{} }
func (m *OfferPayload) String() string { return "OfferPayload" }
func (*OfferPayload) ProtoMessage()    {}

// CreateSentOfferResponse returns both the recorded SentOffer display
// and the packaged wire Offer ready to be transmitted to the buyer.
type CreateSentOfferResponse struct {
	SentOffer *SentOfferDisplay `protobuf:"bytes,1,opt,name=sent_offer,proto3"`
	Offer     *OfferPayload     `protobuf:"bytes,2,opt,name=offer,proto3"`
}

func (m *CreateSentOfferResponse) Reset()         { *m = CreateSentOfferResponse{} }
func (m *CreateSentOfferResponse) String() string { return "CreateSentOfferResponse" }
func (*CreateSentOfferResponse) ProtoMessage()    {}
