package adminrpc

import (
	"context"
	"errors"
	"testing"

	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/squeak"
)

var errSqueakNotFound = errors.New("squeak not found")

type fakePeerClient struct {
	squeaks map[[32]byte]*squeak.Squeak
	offers  map[[32]byte][]*squeak.Offer
	replies map[[32]byte][]*squeak.Squeak
}

func newFakePeerClient() *fakePeerClient {
	return &fakePeerClient{
		squeaks: make(map[[32]byte]*squeak.Squeak),
		offers:  make(map[[32]byte][]*squeak.Offer),
		replies: make(map[[32]byte][]*squeak.Squeak),
	}
}

func (f *fakePeerClient) FetchSqueak(ctx context.Context, address peeraddr.PeerAddress, hash [32]byte) (*squeak.Squeak, error) {
	sq, ok := f.squeaks[hash]
	if !ok {
		return nil, errSqueakNotFound
	}
	return sq, nil
}

func (f *fakePeerClient) FetchOffers(ctx context.Context, address peeraddr.PeerAddress, hash [32]byte) ([]*squeak.Offer, error) {
	return f.offers[hash], nil
}

func (f *fakePeerClient) FetchReplies(ctx context.Context, address peeraddr.PeerAddress, hash [32]byte) ([]*squeak.Squeak, error) {
	return f.replies[hash], nil
}

func (f *fakePeerClient) FetchByAddress(ctx context.Context, peer peeraddr.PeerAddress, authorAddress string) ([]*squeak.Squeak, error) {
	var out []*squeak.Squeak
	for _, sq := range f.squeaks {
		if sq.AuthorAddress == authorAddress {
			out = append(out, sq)
		}
	}
	return out, nil
}

func TestSyncEndpointsNotImplementedWithoutPeerClient(t *testing.T) {
	h := newTestHandler(t)

	if _, err := h.SyncSqueak(context.Background(), &SyncSqueakRequest{}); err != ErrNotImplemented {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if _, err := h.DownloadOffers(context.Background(), &SyncSqueakRequest{}); err != ErrNotImplemented {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if _, err := h.DownloadReplies(context.Background(), &SyncSqueakRequest{}); err != ErrNotImplemented {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
	if _, err := h.DownloadAddressSqueaks(context.Background(), &DownloadAddressSqueaksRequest{}); err != ErrNotImplemented {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}

func TestSyncSqueakStoresLocked(t *testing.T) {
	h := newTestHandler(t)
	peers := newFakePeerClient()
	h.Peers = peers

	sq := &squeak.Squeak{AuthorAddress: "addr1", ContentCiphertext: []byte("ciphertext")}
	hash := sq.Hash()
	peers.squeaks[hash] = sq

	if _, err := h.SyncSqueak(context.Background(), &SyncSqueakRequest{SqueakHash: hash[:], Host: "1.2.3.4", Port: 9999}); err != nil {
		t.Fatalf("SyncSqueak: %v", err)
	}

	record, err := h.Store.GetSqueak(hash)
	if err != nil {
		t.Fatalf("GetSqueak: %v", err)
	}
	if record.SecretKey != nil {
		t.Fatalf("expected a synced squeak to be locked (no secret_key)")
	}
}

func TestDownloadAddressSqueaksStoresEach(t *testing.T) {
	h := newTestHandler(t)
	peers := newFakePeerClient()
	h.Peers = peers

	sq1 := &squeak.Squeak{AuthorAddress: "addr1", ContentCiphertext: []byte("a")}
	sq2 := &squeak.Squeak{AuthorAddress: "addr1", ContentCiphertext: []byte("b")}
	peers.squeaks[sq1.Hash()] = sq1
	peers.squeaks[sq2.Hash()] = sq2

	if _, err := h.DownloadAddressSqueaks(context.Background(), &DownloadAddressSqueaksRequest{Address: "addr1"}); err != nil {
		t.Fatalf("DownloadAddressSqueaks: %v", err)
	}

	records, err := h.Store.GetByAuthorAddress("addr1")
	if err != nil {
		t.Fatalf("GetByAuthorAddress: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 stored squeaks, got %d", len(records))
	}
}
