package adminrpc

import (
	"context"

	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/squeak"
	"github.com/breez/squeaknode/store"
)

// PeerClient fetches squeak content and offers from a remote peer. It is
// the transport collaborator the download*/syncsqueak endpoints need;
// spec §1 scopes squeak discovery/transport as an external concern (only
// the Offer wire format itself, §6, and the payment protocol are
// specified), so this interface is this repo's narrow boundary onto
// that concern, the same role lnclient.Client plays for the Lightning
// node. A Handler wired with a nil PeerClient answers these endpoints
// with ErrNotImplemented rather than silently omitting them from the
// path table.
type PeerClient interface {
	// FetchSqueak retrieves a single squeak (locked: without its
	// secret_key) by hash from address.
	FetchSqueak(ctx context.Context, address peeraddr.PeerAddress, hash [32]byte) (*squeak.Squeak, error)

	// FetchOffers retrieves every offer address is willing to sell for
	// hash.
	FetchOffers(ctx context.Context, address peeraddr.PeerAddress, hash [32]byte) ([]*squeak.Offer, error)

	// FetchReplies retrieves every squeak replying to hash that address
	// knows about.
	FetchReplies(ctx context.Context, address peeraddr.PeerAddress, hash [32]byte) ([]*squeak.Squeak, error)

	// FetchByAddress retrieves every squeak authored by authorAddress
	// that peer knows about.
	FetchByAddress(ctx context.Context, peer peeraddr.PeerAddress, authorAddress string) ([]*squeak.Squeak, error)
}

// storeLockedSqueak records a fetched squeak with no secret_key on
// file: exactly the "locked" state spec §3 describes for a squeak
// received but not yet bought.
func (h *Handler) storeLockedSqueak(sq *squeak.Squeak) error {
	return h.Store.InsertSqueak(store.SqueakRecord{
		Hash:   sq.Hash(),
		Squeak: sq,
	})
}

// SyncSqueak fetches a single squeak by hash from peer and records it
// locked (no secret_key), without attempting to buy it.
func (h *Handler) SyncSqueak(ctx context.Context, req *SyncSqueakRequest) (*Empty, error) {
	if h.Peers == nil {
		return nil, ErrNotImplemented
	}
	var hash [32]byte
	copy(hash[:], req.SqueakHash)
	address := peeraddr.PeerAddress{Host: req.Host, Port: uint16(req.Port)}

	sq, err := h.Peers.FetchSqueak(ctx, address, hash)
	if err != nil {
		return nil, err
	}
	return &Empty{}, h.storeLockedSqueak(sq)
}

// DownloadSqueak is an alias of SyncSqueak kept for wire compatibility
// with the endpoint name in spec §6; both fetch and record one squeak.
func (h *Handler) DownloadSqueak(ctx context.Context, req *SyncSqueakRequest) (*Empty, error) {
	return h.SyncSqueak(ctx, req)
}

// DownloadOffers fetches and records every ReceivedOffer a peer offers
// for a squeak this node already has locked.
func (h *Handler) DownloadOffers(ctx context.Context, req *SyncSqueakRequest) (*Empty, error) {
	if h.Peers == nil {
		return nil, ErrNotImplemented
	}
	var hash [32]byte
	copy(hash[:], req.SqueakHash)
	address := peeraddr.PeerAddress{Host: req.Host, Port: uint16(req.Port)}

	offers, err := h.Peers.FetchOffers(ctx, address, hash)
	if err != nil {
		return nil, err
	}
	for _, offer := range offers {
		if _, err := h.Engine.UnpackOffer(ctx, hash, offer, address); err != nil {
			return nil, err
		}
	}
	return &Empty{}, nil
}

// DownloadReplies fetches and records every reply to a squeak this node
// already has, locked, from peer.
func (h *Handler) DownloadReplies(ctx context.Context, req *SyncSqueakRequest) (*Empty, error) {
	if h.Peers == nil {
		return nil, ErrNotImplemented
	}
	var hash [32]byte
	copy(hash[:], req.SqueakHash)
	address := peeraddr.PeerAddress{Host: req.Host, Port: uint16(req.Port)}

	replies, err := h.Peers.FetchReplies(ctx, address, hash)
	if err != nil {
		return nil, err
	}
	for _, sq := range replies {
		if err := h.storeLockedSqueak(sq); err != nil {
			return nil, err
		}
	}
	return &Empty{}, nil
}

// DownloadAddressSqueaks fetches and records every squeak a peer knows
// about for a given author address.
func (h *Handler) DownloadAddressSqueaks(ctx context.Context, req *DownloadAddressSqueaksRequest) (*Empty, error) {
	if h.Peers == nil {
		return nil, ErrNotImplemented
	}
	address := peeraddr.PeerAddress{Host: req.Host, Port: uint16(req.Port)}

	squeaks, err := h.Peers.FetchByAddress(ctx, address, req.Address)
	if err != nil {
		return nil, err
	}
	for _, sq := range squeaks {
		if err := h.storeLockedSqueak(sq); err != nil {
			return nil, err
		}
	}
	return &Empty{}, nil
}
