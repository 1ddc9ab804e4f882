package network

import (
	"sync"
	"time"

	"github.com/breez/squeaknode/peeraddr"
)

// Autoconnect knobs, per spec §4.6.
const (
	MinPeers              = 5
	MaxPeers              = 10
	UpdateThreadSleepTime = 10 * time.Second
)

// Dialer requests outbound connections and supplies candidate addresses
// to dial; stopping a connection goes through
// ConnectionManager.StopConnection instead. It is the minimal surface the
// reconciler needs; concrete dialing (DNS, handshake, TLS) lives
// outside this package, the same separation the teacher keeps between
// server.peerBootstrapper and connmgr.ConnManager's actual dialing.
type Dialer interface {
	// ConnectPeer requests a new outbound connection to address. The
	// reconciler ignores its errors: a failed dial attempt is retried on
	// the next tick.
	ConnectPeer(address peeraddr.PeerAddress) error

	// CandidatePeers returns addresses the reconciler can try next,
	// already filtered to exclude currently-connected peers.
	CandidatePeers(exclude map[peeraddr.PeerAddress]struct{}, count int) []peeraddr.PeerAddress
}

// Autoconnect is the reconciler that requests new outbound connections
// when the live peer count drops below MinPeers, and stops opportunistic
// connections above MaxPeers.
type Autoconnect struct {
	cm     *ConnectionManager
	dialer Dialer

	quit chan struct{}
	wg   sync.WaitGroup
}

// NewAutoconnect builds a reconciler over cm, using dialer to source and
// request new connections.
func NewAutoconnect(cm *ConnectionManager, dialer Dialer) *Autoconnect {
	return &Autoconnect{
		cm:     cm,
		dialer: dialer,
		quit:   make(chan struct{}),
	}
}

// Start launches the reconciler's background loop.
func (a *Autoconnect) Start() {
	a.wg.Add(1)
	go a.run()
}

// Stop signals the background loop to exit and waits for it to do so.
func (a *Autoconnect) Stop() {
	close(a.quit)
	a.wg.Wait()
}

func (a *Autoconnect) run() {
	defer a.wg.Done()

	ticker := time.NewTicker(UpdateThreadSleepTime)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.reconcileOnce()
		case <-a.quit:
			return
		}
	}
}

func (a *Autoconnect) reconcileOnce() {
	peers := a.cm.Peers()
	count := len(peers)

	switch {
	case count < MinPeers:
		exclude := make(map[peeraddr.PeerAddress]struct{}, count)
		for _, p := range peers {
			exclude[p.Address] = struct{}{}
		}

		needed := MinPeers - count
		candidates := a.dialer.CandidatePeers(exclude, needed)
		log.Debugf("below MinPeers (%d/%d), dialing %d candidates", count, MinPeers, len(candidates))
		for _, addr := range candidates {
			// Errors are not surfaced here: a failed dial is
			// simply retried on the next tick once the peer
			// count is reassessed.
			_ = a.dialer.ConnectPeer(addr)
		}

	case count > MaxPeers:
		excess := count - MaxPeers
		log.Debugf("above MaxPeers (%d/%d), stopping %d opportunistic connections", count, MaxPeers, excess)
		for i := 0; i < excess && i < len(peers); i++ {
			a.cm.StopConnection(peers[i].Address)
		}
	}
}
