package adminrpc

import (
	"context"
	"strings"

	"github.com/go-errors/errors"

	"github.com/breez/squeaknode/engine"
	"github.com/breez/squeaknode/network"
	"github.com/breez/squeaknode/store"
)

// ErrNotImplemented is returned by endpoints whose underlying RPC needs
// a wider Lightning-node surface than lnclient.Client's narrow
// sale-protocol contract models (wallet/channel management). Per spec
// §1 those belong to the Lightning node itself, out of scope here.
var ErrNotImplemented = errors.New("not implemented by this lnclient backend")

// ErrNotFound is returned by by-id/by-hash lookups that miss.
var ErrNotFound = errors.New("not found")

// Handler implements one Go method per admin endpoint named in spec §6.
// Every method is a thin translation between wire messages and the
// engine/store/network packages; it never contains business logic of
// its own, per spec §4.7 and §7. It is the dispatch target the HTTP
// layer in server.go resolves a request path to.
type Handler struct {
	Engine *engine.Engine
	Store  store.Store
	Conns  *network.ConnectionManager
	// Dialer requests a new outbound connection for ConnectPeer. A nil
	// Dialer makes ConnectPeer fail with ErrNotImplemented, the state
	// a node wired without a transport layer is in.
	Dialer network.Dialer
	// Peers fetches squeak content and offers from remote peers for the
	// sync/download endpoints in sync.go. A nil Peers makes those fail
	// with ErrNotImplemented.
	Peers PeerClient
}

func displaySqueak(h *Handler, record *store.SqueakRecord) *SqueakDisplay {
	sq := record.Squeak
	d := &SqueakDisplay{
		SqueakHash:    record.Hash[:],
		AuthorAddress: sq.AuthorAddress,
		IsUnlocked:    record.SecretKey != nil,
		BlockHeight:   sq.BlockHeight,
		BlockHash:     sq.BlockHash[:],
		Timestamp:     sq.Timestamp,
		Liked:         record.Liked,
	}
	if sq.ReplyToHash != nil {
		d.ReplyToHash = sq.ReplyToHash[:]
	}
	if prof, err := h.Store.GetProfileByAddress(sq.AuthorAddress); err == nil && prof != nil {
		d.AuthorName = prof.Name
		d.HasCustomPrice = prof.UseCustomPrice
		d.PriceMsat = prof.CustomPriceMsat
	}
	if record.SecretKey != nil {
		content, err := h.Engine.DecryptedContent(record.Hash)
		if err == nil {
			d.Content = content
		}
	}
	return d
}

func displaySqueaks(h *Handler, records []store.SqueakRecord) []*SqueakDisplay {
	out := make([]*SqueakDisplay, 0, len(records))
	for i := range records {
		out = append(out, displaySqueak(h, &records[i]))
	}
	return out
}

// GetTimelineSqueakDisplays returns the squeaks Store.GetTimeline yields,
// in the order it yields them, with no filtering or sorting of its own.
// memstore's GetTimeline yields every stored squeak, whether or not its
// author is followed, in no defined order.
func (h *Handler) GetTimelineSqueakDisplays(ctx context.Context, req *Empty) (*SqueakDisplaysResponse, error) {
	records, err := h.Store.GetTimeline()
	if err != nil {
		return nil, err
	}
	return &SqueakDisplaysResponse{SqueakDisplays: displaySqueaks(h, records)}, nil
}

// MakeSqueakRequest authors a new squeak as ProfileId and returns it.
func (h *Handler) MakeSqueakRequest(ctx context.Context, req *MakeSqueakRequest) (*SqueakDisplayResponse, error) {
	var replyTo *[32]byte
	if len(req.ReplyToHash) == 32 {
		var hash [32]byte
		copy(hash[:], req.ReplyToHash)
		replyTo = &hash
	}

	record, err := h.Engine.AuthorSqueak(req.ProfileId, req.Content, replyTo)
	if err != nil {
		return nil, err
	}
	return &SqueakDisplayResponse{SqueakDisplay: displaySqueak(h, record)}, nil
}

// GetSqueakDisplay returns a single squeak by hash.
func (h *Handler) GetSqueakDisplay(ctx context.Context, req *HashRequest) (*SqueakDisplayResponse, error) {
	record, err := h.getSqueakRecord(req.SqueakHash)
	if err != nil {
		return nil, err
	}
	return &SqueakDisplayResponse{SqueakDisplay: displaySqueak(h, record)}, nil
}

// GetSqueakDetails is an alias of GetSqueakDisplay: the admin surface
// exposes both names for wire compatibility (spec §6 lists both), but
// they answer the same query.
func (h *Handler) GetSqueakDetails(ctx context.Context, req *HashRequest) (*SqueakDisplayResponse, error) {
	return h.GetSqueakDisplay(ctx, req)
}

// GetAncestorSqueakDisplays walks the reply_to chain from hash back to
// its root, oldest first.
func (h *Handler) GetAncestorSqueakDisplays(ctx context.Context, req *HashRequest) (*SqueakDisplaysResponse, error) {
	var chain []store.SqueakRecord

	record, err := h.getSqueakRecord(req.SqueakHash)
	if err != nil {
		return nil, err
	}
	for {
		chain = append([]store.SqueakRecord{*record}, chain...)
		if record.Squeak.ReplyToHash == nil {
			break
		}
		next, err := h.Store.GetSqueak(*record.Squeak.ReplyToHash)
		if err != nil || next == nil {
			break
		}
		record = next
	}
	return &SqueakDisplaysResponse{SqueakDisplays: displaySqueaks(h, chain)}, nil
}

// GetReplySqueakDisplays returns every squeak whose reply_to_hash is
// hash.
func (h *Handler) GetReplySqueakDisplays(ctx context.Context, req *HashRequest) (*SqueakDisplaysResponse, error) {
	var hash [32]byte
	copy(hash[:], req.SqueakHash)

	records, err := h.Store.GetRepliesTo(hash)
	if err != nil {
		return nil, err
	}
	return &SqueakDisplaysResponse{SqueakDisplays: displaySqueaks(h, records)}, nil
}

// GetAddressSqueakDisplays returns every squeak authored by address.
func (h *Handler) GetAddressSqueakDisplays(ctx context.Context, req *AddressSqueaksRequest) (*SqueakDisplaysResponse, error) {
	records, err := h.Store.GetByAuthorAddress(req.Address)
	if err != nil {
		return nil, err
	}
	return &SqueakDisplaysResponse{SqueakDisplays: displaySqueaks(h, records)}, nil
}

// GetSearchSqueakDisplays returns every unlocked squeak whose decrypted
// content contains SearchText. Locked squeaks cannot be searched: their
// content is, by design, unavailable without payment.
func (h *Handler) GetSearchSqueakDisplays(ctx context.Context, req *SearchSqueaksRequest) (*SqueakDisplaysResponse, error) {
	timeline, err := h.Store.GetTimeline()
	if err != nil {
		return nil, err
	}

	var matches []store.SqueakRecord
	for _, record := range timeline {
		if record.SecretKey == nil {
			continue
		}
		content, err := h.Engine.DecryptedContent(record.Hash)
		if err == nil && strings.Contains(strings.ToLower(content), strings.ToLower(req.SearchText)) {
			matches = append(matches, record)
		}
	}
	return &SqueakDisplaysResponse{SqueakDisplays: displaySqueaks(h, matches)}, nil
}

// DeleteSqueak removes a squeak and any secret_key on file for it.
func (h *Handler) DeleteSqueak(ctx context.Context, req *HashRequest) (*Empty, error) {
	var hash [32]byte
	copy(hash[:], req.SqueakHash)
	return &Empty{}, h.Store.DeleteSqueak(hash)
}

// LikeSqueak and UnlikeSqueak toggle SqueakStore's Liked flag, the
// original_source-derived like feature from SPEC_FULL.md §3.
func (h *Handler) LikeSqueak(ctx context.Context, req *HashRequest) (*Empty, error) {
	var hash [32]byte
	copy(hash[:], req.SqueakHash)
	return &Empty{}, h.Store.SetLiked(hash, true)
}

func (h *Handler) UnlikeSqueak(ctx context.Context, req *HashRequest) (*Empty, error) {
	var hash [32]byte
	copy(hash[:], req.SqueakHash)
	return &Empty{}, h.Store.SetLiked(hash, false)
}

// GetLikedSqueakDisplays returns every liked squeak.
func (h *Handler) GetLikedSqueakDisplays(ctx context.Context, req *Empty) (*SqueakDisplaysResponse, error) {
	records, err := h.Store.GetLiked()
	if err != nil {
		return nil, err
	}
	return &SqueakDisplaysResponse{SqueakDisplays: displaySqueaks(h, records)}, nil
}

func (h *Handler) getSqueakRecord(rawHash []byte) (*store.SqueakRecord, error) {
	if len(rawHash) != 32 {
		return nil, errors.New("squeak hash must be 32 bytes")
	}
	var hash [32]byte
	copy(hash[:], rawHash)

	record, err := h.Store.GetSqueak(hash)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}
