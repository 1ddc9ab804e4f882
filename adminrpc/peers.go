package adminrpc

import (
	"context"
	"net"
	"strconv"
	"strings"

	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/store"
)

func (h *Handler) displayPeer(p *store.StoredPeer) *PeerDisplay {
	connected := h.Conns != nil && h.Conns.HasConnection(p.Address)
	return &PeerDisplay{
		PeerId:      p.ID,
		Name:        p.Name,
		Host:        p.Address.Host,
		Port:        uint32(p.Address.Port),
		Downloading: p.Downloading,
		Uploading:   p.Uploading,
		Autoconnect: p.Autoconnect,
		Connected:   connected,
	}
}

// GetPeers returns every configured peer (regardless of live connection
// state).
func (h *Handler) GetPeers(ctx context.Context, req *Empty) (*PeersResponse, error) {
	peers, err := h.Store.GetPeers()
	if err != nil {
		return nil, err
	}
	out := make([]*PeerDisplay, 0, len(peers))
	for _, p := range peers {
		out = append(out, h.displayPeer(p))
	}
	return &PeersResponse{Peers: out}, nil
}

// GetPeer returns a single configured peer by id.
func (h *Handler) GetPeer(ctx context.Context, req *IDRequest) (*PeerResponse, error) {
	p, err := h.Store.GetPeer(req.Id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return &PeerResponse{Peer: h.displayPeer(p)}, nil
}

// GetPeerByAddress returns a single configured peer by host/port.
func (h *Handler) GetPeerByAddress(ctx context.Context, req *AddressRequest) (*PeerResponse, error) {
	p, err := h.Store.GetPeerByAddress(peeraddr.PeerAddress{Host: req.Host, Port: uint16(req.Port)})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return &PeerResponse{Peer: h.displayPeer(p)}, nil
}

// CreatePeer configures a new peer to track.
func (h *Handler) CreatePeer(ctx context.Context, req *CreatePeerRequest) (*PeerResponse, error) {
	p := &store.StoredPeer{
		Name:    req.Name,
		Address: peeraddr.PeerAddress{Host: req.Host, Port: uint16(req.Port)},
	}
	id, err := h.Store.InsertPeer(p)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return &PeerResponse{Peer: h.displayPeer(p)}, nil
}

// RenamePeer changes a configured peer's display name.
func (h *Handler) RenamePeer(ctx context.Context, req *SetStringRequest) (*Empty, error) {
	return &Empty{}, h.Store.SetPeerName(req.Id, req.Value)
}

// SetPeerDownloading, SetPeerUploading and SetPeerAutoconnect toggle the
// three independent sync policies a configured peer carries.
func (h *Handler) SetPeerDownloading(ctx context.Context, req *SetBoolRequest) (*Empty, error) {
	return &Empty{}, h.Store.SetPeerDownloading(req.Id, req.Value)
}

func (h *Handler) SetPeerUploading(ctx context.Context, req *SetBoolRequest) (*Empty, error) {
	return &Empty{}, h.Store.SetPeerUploading(req.Id, req.Value)
}

func (h *Handler) SetPeerAutoconnect(ctx context.Context, req *SetBoolRequest) (*Empty, error) {
	return &Empty{}, h.Store.SetPeerAutoconnect(req.Id, req.Value)
}

// DeletePeer removes a configured peer, first dropping any live
// connection to it.
func (h *Handler) DeletePeer(ctx context.Context, req *IDRequest) (*Empty, error) {
	p, err := h.Store.GetPeer(req.Id)
	if err != nil {
		return nil, err
	}
	if p != nil && h.Conns != nil {
		h.Conns.StopConnection(p.Address)
	}
	return &Empty{}, h.Store.DeletePeer(req.Id)
}

// GetConnectedPeers returns the live (network.ConnectionManager-tracked)
// peer set, independent of the configured-peers store.
func (h *Handler) GetConnectedPeers(ctx context.Context, req *Empty) (*PeersResponse, error) {
	if h.Conns == nil {
		return &PeersResponse{}, nil
	}
	out := make([]*PeerDisplay, 0)
	for _, live := range h.Conns.Peers() {
		display := &PeerDisplay{
			Host:      live.Address.Host,
			Port:      uint32(live.Address.Port),
			Connected: true,
		}
		if stored, err := h.Store.GetPeerByAddress(live.Address); err == nil && stored != nil {
			display.PeerId = stored.ID
			display.Name = stored.Name
			display.Downloading = stored.Downloading
			display.Uploading = stored.Uploading
			display.Autoconnect = stored.Autoconnect
		}
		out = append(out, display)
	}
	return &PeersResponse{Peers: out}, nil
}

// GetConnectedPeer returns a single live peer by address, or
// ErrNotFound if no connection is currently open to it.
func (h *Handler) GetConnectedPeer(ctx context.Context, req *AddressRequest) (*PeerResponse, error) {
	address := peeraddr.PeerAddress{Host: req.Host, Port: uint16(req.Port)}
	if h.Conns == nil || h.Conns.GetPeer(address) == nil {
		return nil, ErrNotFound
	}
	display := &PeerDisplay{Host: address.Host, Port: uint32(address.Port), Connected: true}
	if stored, err := h.Store.GetPeerByAddress(address); err == nil && stored != nil {
		display.PeerId = stored.ID
		display.Name = stored.Name
	}
	return &PeerResponse{Peer: display}, nil
}

// ConnectPeer requests a new outbound connection, via Dialer. It fails
// with ErrNotImplemented if this node was wired without a transport
// layer (see cmd/squeaknode).
func (h *Handler) ConnectPeer(ctx context.Context, req *AddressRequest) (*Empty, error) {
	if h.Dialer == nil {
		return nil, ErrNotImplemented
	}
	address := peeraddr.PeerAddress{Host: req.Host, Port: uint16(req.Port)}
	return &Empty{}, h.Dialer.ConnectPeer(address)
}

// DisconnectPeer closes a live connection, if one exists. It is not an
// error to disconnect a peer that is not currently connected.
func (h *Handler) DisconnectPeer(ctx context.Context, req *AddressRequest) (*Empty, error) {
	if h.Conns == nil {
		return &Empty{}, nil
	}
	h.Conns.StopConnection(peeraddr.PeerAddress{Host: req.Host, Port: uint16(req.Port)})
	return &Empty{}, nil
}

// GetExternalAddress returns this node's own advertised Lightning
// address, the same host/port package_offer falls back to when no
// explicit external address is configured.
func (h *Handler) GetExternalAddress(ctx context.Context, req *Empty) (*ExternalAddressResponse, error) {
	if h.Engine == nil || h.Engine.LN == nil {
		return &ExternalAddressResponse{}, nil
	}
	info, err := h.Engine.LN.GetInfo(ctx)
	if err != nil {
		return nil, err
	}
	if len(info.URIs) == 0 {
		return &ExternalAddressResponse{}, nil
	}
	host, port, err := splitLightningURI(info.URIs[0])
	if err != nil {
		return &ExternalAddressResponse{}, nil
	}
	return &ExternalAddressResponse{Host: host, Port: uint32(port)}, nil
}

// splitLightningURI parses a "pubkey@host:port" GetInfo URI, the same
// format squeak.PackageOffer's internal helper handles.
func splitLightningURI(uri string) (string, uint16, error) {
	addr := uri
	if idx := strings.Index(uri, "@"); idx >= 0 {
		addr = uri[idx+1:]
	}
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, err
	}
	return host, uint16(port), nil
}

// GetNetwork reports which chain network this node is configured
// against (mainnet/testnet/regtest), read off the engine's chain
// parameters.
func (h *Handler) GetNetwork(ctx context.Context, req *Empty) (*NetworkResponse, error) {
	if h.Engine == nil || h.Engine.Params == nil {
		return &NetworkResponse{}, nil
	}
	return &NetworkResponse{Network: h.Engine.Params.Name}, nil
}
