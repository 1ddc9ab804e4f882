// Package network implements the ConnectionManager invariant set for
// live peer connections: duplicate-address and duplicate-nonce
// detection, peer lifecycle, and an autoconnect reconciler, generalized
// from the teacher's server.peersByPub/addPeer/removePeer pattern from a
// single pubkey-keyed map to the spec's PeerAddress-keyed map.
package network

import (
	"github.com/breez/squeaknode/peeraddr"
)

// VersionInfo is the handshake state a connecting peer carries: the
// nonce it echoed back (RemoteVersion) lets the local node detect that
// it has connected to itself.
type VersionInfo struct {
	Nonce uint64
}

// Peer is a single live connection to a remote node.
type Peer struct {
	Address       peeraddr.PeerAddress
	LocalVersion  *VersionInfo
	RemoteVersion uint64
	CloseFunc     func()
}

// Close tears down the underlying connection. It is safe to call Close
// more than once; CloseFunc is expected to be idempotent, the same
// contract p.Disconnect carries in the teacher's peer type.
func (p *Peer) Close() {
	if p.CloseFunc != nil {
		p.CloseFunc()
	}
}
