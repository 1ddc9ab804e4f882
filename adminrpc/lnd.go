package adminrpc

import "context"

// LndGetInfo proxies the underlying Lightning node's own identity. It is
// the one lnd* admin endpoint lnclient.Client's narrow sale-protocol
// surface (§4.3) can actually answer.
func (h *Handler) LndGetInfo(ctx context.Context, req *Empty) (*LndInfoResponse, error) {
	if h.Engine == nil || h.Engine.LN == nil {
		return nil, ErrNotImplemented
	}
	info, err := h.Engine.LN.GetInfo(ctx)
	if err != nil {
		return nil, err
	}
	return &LndInfoResponse{Uris: info.URIs}, nil
}

// The remaining lnd* endpoints (wallet balance, on-chain transactions,
// channel peers/open/close, new address, send coins) proxy RPCs the
// Lightning node itself exposes but that lnclient.Client deliberately
// does not model: spec §1 scopes "the Lightning node itself" out,
// wrapped only behind the narrow sale-protocol contract in §4.3. Wiring
// these for real would mean importing the node's full wallet/channel
// RPC surface, which is exactly the external collaborator spec.md
// treats as out of scope. Each endpoint keeps its wire path (table in
// dispatch.go) but its handler reports ErrNotImplemented, rather than
// silently dropping the endpoint from the table — see DESIGN.md.

func (h *Handler) LndWalletBalance(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}

func (h *Handler) LndGetTransactions(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}

func (h *Handler) LndListPeers(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}

func (h *Handler) LndListChannels(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}

func (h *Handler) LndPendingChannels(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}

func (h *Handler) LndConnectPeer(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}

func (h *Handler) LndDisconnectPeer(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}

func (h *Handler) LndOpenChannelSync(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}

func (h *Handler) LndCloseChannel(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}

func (h *Handler) LndNewAddress(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}

func (h *Handler) LndSendCoins(ctx context.Context, req *Empty) (*Empty, error) {
	return nil, ErrNotImplemented
}
