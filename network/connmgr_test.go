package network

import (
	"testing"

	"github.com/breez/squeaknode/peeraddr"
)

func addr(port uint16) peeraddr.PeerAddress {
	return peeraddr.PeerAddress{Host: "127.0.0.1", Port: port}
}

func TestAddPeerDuplicateAddress(t *testing.T) {
	cm := NewConnectionManager()

	p1 := &Peer{Address: addr(1), LocalVersion: &VersionInfo{Nonce: 1}, RemoteVersion: 100}
	if err := cm.AddPeer(p1); err != nil {
		t.Fatalf("AddPeer p1: %v", err)
	}

	p2 := &Peer{Address: addr(1), LocalVersion: &VersionInfo{Nonce: 2}, RemoteVersion: 200}
	if err := cm.AddPeer(p2); err != ErrDuplicatePeer {
		t.Fatalf("expected ErrDuplicatePeer, got %v", err)
	}

	if len(cm.Peers()) != 1 {
		t.Fatalf("expected map unchanged, got %d peers", len(cm.Peers()))
	}
}

func TestAddPeerDuplicateNonceBeforeMutation(t *testing.T) {
	cm := NewConnectionManager()

	local := &Peer{Address: addr(1), LocalVersion: &VersionInfo{Nonce: 0xA5}, RemoteVersion: 1}
	if err := cm.AddPeer(local); err != nil {
		t.Fatalf("AddPeer local: %v", err)
	}

	selfConnect := &Peer{Address: addr(2), RemoteVersion: 0xA5}
	if err := cm.AddPeer(selfConnect); err != ErrDuplicateNonce {
		t.Fatalf("expected ErrDuplicateNonce, got %v", err)
	}

	if len(cm.Peers()) != 1 {
		t.Fatalf("map must be unchanged after DuplicateNonce, got %d peers", len(cm.Peers()))
	}
	if cm.HasConnection(addr(2)) {
		t.Fatalf("selfConnect must not have been added")
	}
}

func TestRemovePeerMissing(t *testing.T) {
	cm := NewConnectionManager()
	p := &Peer{Address: addr(1)}

	if err := cm.RemovePeer(p); err != ErrMissingPeer {
		t.Fatalf("expected ErrMissingPeer, got %v", err)
	}
}

func TestAddRemoveInvariant(t *testing.T) {
	cm := NewConnectionManager()

	peers := []*Peer{
		{Address: addr(1), LocalVersion: &VersionInfo{Nonce: 1}, RemoteVersion: 11},
		{Address: addr(2), LocalVersion: &VersionInfo{Nonce: 2}, RemoteVersion: 22},
		{Address: addr(3), LocalVersion: &VersionInfo{Nonce: 3}, RemoteVersion: 33},
	}
	for _, p := range peers {
		if err := cm.AddPeer(p); err != nil {
			t.Fatalf("AddPeer: %v", err)
		}
	}

	if err := cm.RemovePeer(peers[1]); err != nil {
		t.Fatalf("RemovePeer: %v", err)
	}

	remaining := cm.Peers()
	if len(remaining) != 2 {
		t.Fatalf("expected 2 remaining peers, got %d", len(remaining))
	}

	seen := map[peeraddr.PeerAddress]bool{}
	for _, p := range remaining {
		if seen[p.Address] {
			t.Fatalf("duplicate address in peer set: %v", p.Address)
		}
		seen[p.Address] = true
	}
	if !seen[addr(1)] || !seen[addr(3)] {
		t.Fatalf("unexpected remaining set: %v", remaining)
	}
}

func TestListenPeersChangedSnapshot(t *testing.T) {
	cm := NewConnectionManager()

	var got []*Peer
	done := make(chan struct{}, 10)
	cm.ListenPeersChanged(func(peers []*Peer) {
		got = peers
		done <- struct{}{}
	})

	p := &Peer{Address: addr(1), LocalVersion: &VersionInfo{Nonce: 1}, RemoteVersion: 2}
	if err := cm.AddPeer(p); err != nil {
		t.Fatalf("AddPeer: %v", err)
	}
	<-done

	if len(got) != 1 || got[0].Address != addr(1) {
		t.Fatalf("observer did not receive expected snapshot: %v", got)
	}
}

func TestStopConnectionClosesWithoutRemoving(t *testing.T) {
	cm := NewConnectionManager()

	closed := false
	p := &Peer{
		Address:   addr(1),
		CloseFunc: func() { closed = true },
	}
	if err := cm.AddPeer(p); err != nil {
		t.Fatalf("AddPeer: %v", err)
	}

	cm.StopConnection(addr(1))

	if !closed {
		t.Fatalf("expected peer.Close to be invoked")
	}
	if !cm.HasConnection(addr(1)) {
		t.Fatalf("StopConnection must not remove the peer from the registry")
	}
}
