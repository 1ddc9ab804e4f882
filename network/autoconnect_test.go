package network

import (
	"sync"
	"testing"

	"github.com/breez/squeaknode/peeraddr"
)

type fakeDialer struct {
	mu         sync.Mutex
	candidates []peeraddr.PeerAddress
	dialed     []peeraddr.PeerAddress
}

func (f *fakeDialer) ConnectPeer(address peeraddr.PeerAddress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dialed = append(f.dialed, address)
	return nil
}

func (f *fakeDialer) CandidatePeers(exclude map[peeraddr.PeerAddress]struct{}, count int) []peeraddr.PeerAddress {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]peeraddr.PeerAddress, 0, count)
	for _, c := range f.candidates {
		if _, skip := exclude[c]; skip {
			continue
		}
		out = append(out, c)
		if len(out) == count {
			break
		}
	}
	return out
}

func TestReconcileBelowMinDialsCandidates(t *testing.T) {
	cm := NewConnectionManager()
	dialer := &fakeDialer{candidates: []peeraddr.PeerAddress{addr(1), addr(2), addr(3)}}
	ac := NewAutoconnect(cm, dialer)

	ac.reconcileOnce()

	if len(dialer.dialed) != 3 {
		t.Fatalf("expected 3 ConnectPeer calls (all candidates, below MinPeers), got %d", len(dialer.dialed))
	}
}

func TestReconcileAtOrAboveMinDoesNotDial(t *testing.T) {
	cm := NewConnectionManager()
	for i := uint16(1); i <= MinPeers; i++ {
		if err := cm.AddPeer(&Peer{Address: addr(i), LocalVersion: &VersionInfo{Nonce: uint64(i)}}); err != nil {
			t.Fatalf("AddPeer: %v", err)
		}
	}

	dialer := &fakeDialer{candidates: []peeraddr.PeerAddress{addr(100)}}
	ac := NewAutoconnect(cm, dialer)

	ac.reconcileOnce()

	if len(dialer.dialed) != 0 {
		t.Fatalf("expected no dials at MinPeers, got %d", len(dialer.dialed))
	}
}

func TestReconcileAboveMaxStopsExcess(t *testing.T) {
	cm := NewConnectionManager()
	closedCount := 0
	var mu sync.Mutex
	for i := uint16(1); i <= MaxPeers+2; i++ {
		i := i
		err := cm.AddPeer(&Peer{
			Address:      addr(i),
			LocalVersion: &VersionInfo{Nonce: uint64(i)},
			CloseFunc: func() {
				mu.Lock()
				closedCount++
				mu.Unlock()
			},
		})
		if err != nil {
			t.Fatalf("AddPeer: %v", err)
		}
	}

	dialer := &fakeDialer{}
	ac := NewAutoconnect(cm, dialer)

	ac.reconcileOnce()

	mu.Lock()
	defer mu.Unlock()
	if closedCount != 2 {
		t.Fatalf("expected 2 excess peers closed, got %d", closedCount)
	}
}

func TestReconcileExcludesExistingPeers(t *testing.T) {
	cm := NewConnectionManager()
	if err := cm.AddPeer(&Peer{Address: addr(1), LocalVersion: &VersionInfo{Nonce: 1}}); err != nil {
		t.Fatalf("AddPeer: %v", err)
	}

	dialer := &fakeDialer{candidates: []peeraddr.PeerAddress{addr(1), addr(2)}}
	ac := NewAutoconnect(cm, dialer)

	ac.reconcileOnce()

	for _, d := range dialer.dialed {
		if d == addr(1) {
			t.Fatalf("should not redial an already-connected peer")
		}
	}
}
