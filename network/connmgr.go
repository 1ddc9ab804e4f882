package network

import (
	"sync"

	"github.com/btcsuite/btclog"
	"github.com/go-errors/errors"

	"github.com/breez/squeaknode/peeraddr"
)

// log is the network subsystem's logger, wired up via UseLogger.
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by the connection
// manager and the autoconnect reconciler.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// Connection-manager faults, per spec §7.
var (
	ErrDuplicatePeer  = errors.New("duplicate peer")
	ErrDuplicateNonce = errors.New("duplicate nonce")
	ErrMissingPeer    = errors.New("missing peer")
)

// PeersChangedObserver is invoked with a snapshot of the live peer set
// whenever it changes. It is called after the manager's lock has been
// released, per the redesign note in spec §9: the single
// listen_peers_changed callback is replaced with an observer list
// invoked outside the critical section, so an observer that itself
// calls back into add_peer/remove_peer cannot deadlock against the
// mutation that triggered it.
type PeersChangedObserver func(peers []*Peer)

// ConnectionManager is the process-wide registry of live peer
// connections. All mutations are serialized behind a single mutex;
// observers are invoked after the lock is released, with a snapshot of
// the peer set taken while still holding it.
type ConnectionManager struct {
	mu        sync.RWMutex
	byAddress map[peeraddr.PeerAddress]*Peer

	observersMu sync.Mutex
	observers   []PeersChangedObserver
}

// NewConnectionManager returns an empty ConnectionManager.
func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		byAddress: make(map[peeraddr.PeerAddress]*Peer),
	}
}

// AddPeer registers peer as live. It fails with ErrDuplicateNonce,
// before the map is mutated, if some existing peer's LocalVersion.Nonce
// equals peer.RemoteVersion — that echo indicates the remote end is this
// same node (a self-connect). Otherwise it fails with ErrDuplicatePeer
// if peer.Address is already registered.
func (c *ConnectionManager) AddPeer(peer *Peer) error {
	c.mu.Lock()

	for _, existing := range c.byAddress {
		if existing.LocalVersion != nil && existing.LocalVersion.Nonce == peer.RemoteVersion {
			c.mu.Unlock()
			return ErrDuplicateNonce
		}
	}

	if _, ok := c.byAddress[peer.Address]; ok {
		c.mu.Unlock()
		return ErrDuplicatePeer
	}

	c.byAddress[peer.Address] = peer
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	log.Infof("added peer %v (%d total)", peer.Address, len(snapshot))
	c.notify(snapshot)
	return nil
}

// RemovePeer unregisters peer. It fails with ErrMissingPeer if
// peer.Address is not currently registered.
func (c *ConnectionManager) RemovePeer(peer *Peer) error {
	c.mu.Lock()

	if _, ok := c.byAddress[peer.Address]; !ok {
		c.mu.Unlock()
		return ErrMissingPeer
	}
	delete(c.byAddress, peer.Address)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snapshot)
	return nil
}

// GetPeer returns the live peer at address, or nil if none.
func (c *ConnectionManager) GetPeer(address peeraddr.PeerAddress) *Peer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byAddress[address]
}

// HasConnection reports whether a peer is currently registered at
// address.
func (c *ConnectionManager) HasConnection(address peeraddr.PeerAddress) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.byAddress[address]
	return ok
}

// StopConnection closes the peer at address, if any. It does not itself
// remove the peer from the registry: removal happens through the peer's
// own lifecycle callback calling RemovePeer, the same separation of
// concerns the teacher's removePeer/Disconnect split embodies.
func (c *ConnectionManager) StopConnection(address peeraddr.PeerAddress) {
	peer := c.GetPeer(address)
	if peer == nil {
		return
	}
	peer.Close()
}

// StopAllConnections closes every currently registered peer.
func (c *ConnectionManager) StopAllConnections() {
	c.mu.RLock()
	peers := make([]*Peer, 0, len(c.byAddress))
	for _, p := range c.byAddress {
		peers = append(peers, p)
	}
	c.mu.RUnlock()

	for _, p := range peers {
		p.Close()
	}
}

// ListenPeersChanged registers an observer invoked after every
// successful AddPeer/RemovePeer.
func (c *ConnectionManager) ListenPeersChanged(cb PeersChangedObserver) {
	c.observersMu.Lock()
	defer c.observersMu.Unlock()
	c.observers = append(c.observers, cb)
}

// Peers returns a snapshot of all currently registered peers.
func (c *ConnectionManager) Peers() []*Peer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *ConnectionManager) snapshotLocked() []*Peer {
	peers := make([]*Peer, 0, len(c.byAddress))
	for _, p := range c.byAddress {
		peers = append(peers, p)
	}
	return peers
}

func (c *ConnectionManager) notify(peers []*Peer) {
	c.observersMu.Lock()
	observers := make([]PeersChangedObserver, len(c.observers))
	copy(observers, c.observers)
	c.observersMu.Unlock()

	for _, obs := range observers {
		obs(peers)
	}
}
