package engine

import (
	"context"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/breez/squeaknode/chainclient"
	"github.com/breez/squeaknode/lnclient"
	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/profile"
	"github.com/breez/squeaknode/squeak"
	"github.com/breez/squeaknode/store/memstore"
)

type fakeChain struct {
	height int32
}

func (f *fakeChain) GetBestBlockInfo() (*chainclient.BlockInfo, error) {
	h := sha256.Sum256([]byte("block"))
	return &chainclient.BlockInfo{Height: f.height, Hash: chainhash.Hash(h)}, nil
}

func (f *fakeChain) GetBlockInfoByHeight(height int32) (*chainclient.BlockInfo, error) {
	h := sha256.Sum256([]byte("block"))
	return &chainclient.BlockInfo{Height: height, Hash: chainhash.Hash(h)}, nil
}

func (f *fakeChain) ParseBlockHeader(raw []byte) (*wire.BlockHeader, error) {
	return &wire.BlockHeader{}, nil
}

type fakeLN struct {
	invoices  map[[32]byte][32]byte
	payResult *lnclient.PaymentResult
}

func newFakeLN() *fakeLN {
	return &fakeLN{invoices: make(map[[32]byte][32]byte)}
}

func (f *fakeLN) AddInvoice(ctx context.Context, preimage [32]byte, amtMsat int64) (*lnclient.AddedInvoice, error) {
	rHash := sha256.Sum256(preimage[:])
	f.invoices[rHash] = preimage
	return &lnclient.AddedInvoice{RHash: rHash, PaymentRequest: "lnbc_test"}, nil
}

func (f *fakeLN) LookupInvoice(ctx context.Context, rHash [32]byte) (*lnclient.InvoiceInfo, error) {
	return &lnclient.InvoiceInfo{CreationDate: time.Unix(1700000000, 0), Expiry: time.Hour}, nil
}

func (f *fakeLN) DecodePayReq(ctx context.Context, payReq string) (*lnclient.PayReqInfo, error) {
	return &lnclient.PayReqInfo{NumMsat: 1000, Timestamp: time.Unix(1700000000, 0), Expiry: time.Hour}, nil
}

func (f *fakeLN) PayInvoiceSync(ctx context.Context, payReq string) (*lnclient.PaymentResult, error) {
	if f.payResult != nil {
		return f.payResult, nil
	}
	for _, preimage := range f.invoices {
		return &lnclient.PaymentResult{PaymentPreimage: preimage}, nil
	}
	return &lnclient.PaymentResult{PaymentError: "unknown invoice"}, nil
}

func (f *fakeLN) SubscribeInvoices(ctx context.Context, settleIndex uint64) (*lnclient.InvoiceSubscription, error) {
	ch := make(chan lnclient.Invoice)
	close(ch)
	return &lnclient.InvoiceSubscription{Invoices: ch, Cancel: func() {}}, nil
}

func (f *fakeLN) GetInfo(ctx context.Context) (*lnclient.NodeInfo, error) {
	return &lnclient.NodeInfo{}, nil
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	st := memstore.New()
	return New(&fakeChain{height: 100}, newFakeLN(), st, &chaincfg.RegressionNetParams)
}

func newSigningProfile(t *testing.T, e *Engine, name string) *profile.SqueakProfile {
	t.Helper()
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	addr, err := squeak.AddressForPubKey(priv.PubKey(), e.Params)
	if err != nil {
		t.Fatalf("AddressForPubKey: %v", err)
	}
	p := &profile.SqueakProfile{Name: name, Address: addr, PrivateKey: priv.Serialize()}
	id, err := e.Store.InsertProfile(p)
	if err != nil {
		t.Fatalf("InsertProfile: %v", err)
	}
	p.ProfileID = id
	return p
}

var peerAddr = peeraddr.PeerAddress{Host: "127.0.0.1", Port: 9999}

func TestAuthorSqueakRecordsSecretKey(t *testing.T) {
	e := newTestEngine(t)
	p := newSigningProfile(t, e, "alice")

	record, err := e.AuthorSqueak(p.ProfileID, "hello world", nil)
	if err != nil {
		t.Fatalf("AuthorSqueak: %v", err)
	}
	if record.SecretKey == nil {
		t.Fatalf("expected a recorded secret_key")
	}

	content, err := e.DecryptedContent(record.Hash)
	if err != nil {
		t.Fatalf("DecryptedContent: %v", err)
	}
	if content != "hello world" {
		t.Fatalf("got %q", content)
	}
}

func TestAuthorSqueakRejectsContactProfile(t *testing.T) {
	e := newTestEngine(t)
	contact := &profile.SqueakProfile{Name: "bob", Address: "bob-addr"}
	id, err := e.Store.InsertProfile(contact)
	if err != nil {
		t.Fatalf("InsertProfile: %v", err)
	}

	if _, err := e.AuthorSqueak(id, "hi", nil); err != squeak.ErrProfileNotSigning {
		t.Fatalf("expected ErrProfileNotSigning, got %v", err)
	}
}

func TestDecryptedContentLockedSqueak(t *testing.T) {
	e := newTestEngine(t)
	p := newSigningProfile(t, e, "alice")
	record, err := e.AuthorSqueak(p.ProfileID, "secret", nil)
	if err != nil {
		t.Fatalf("AuthorSqueak: %v", err)
	}

	// Simulate receiving the squeak from a peer without its secret_key.
	locked := *record
	locked.SecretKey = nil
	if err := e.Store.InsertSqueak(locked); err != nil {
		t.Fatalf("InsertSqueak: %v", err)
	}

	if _, err := e.DecryptedContent(record.Hash); err != squeak.ErrInvalidKey {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestFullSaleLifecycle(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	seller := newSigningProfile(t, e, "alice")

	authored, err := e.AuthorSqueak(seller.ProfileID, "atomic swap content", nil)
	if err != nil {
		t.Fatalf("AuthorSqueak: %v", err)
	}

	sentOffer, err := e.SellSqueak(ctx, authored.Hash, peerAddr, 1000)
	if err != nil {
		t.Fatalf("SellSqueak: %v", err)
	}

	wireOffer, err := e.PackageOffer(ctx, sentOffer.ID, nil)
	if err != nil {
		t.Fatalf("PackageOffer: %v", err)
	}

	// The buyer side is a second Engine sharing the seller's Lightning
	// backend (the same node settling both ends of the HODL invoice) but
	// its own store, holding only the locked squeak.
	buyerStore := memstore.New()
	locked := *authored
	locked.SecretKey = nil
	if err := buyerStore.InsertSqueak(locked); err != nil {
		t.Fatalf("InsertSqueak: %v", err)
	}
	buyer := New(e.Chain, e.LN, buyerStore, e.Params)

	received, err := buyer.UnpackOffer(ctx, authored.Hash, wireOffer, peerAddr)
	if err != nil {
		t.Fatalf("UnpackOffer: %v", err)
	}

	payment, err := buyer.PayOffer(ctx, received.ID)
	if err != nil {
		t.Fatalf("PayOffer: %v", err)
	}
	if !payment.Valid {
		t.Fatalf("expected a valid payment")
	}

	content, err := buyer.DecryptedContent(authored.Hash)
	if err != nil {
		t.Fatalf("buyer DecryptedContent: %v", err)
	}
	if content != "atomic swap content" {
		t.Fatalf("got %q", content)
	}
}

func TestSellSqueakRequiresSecretKeyOnFile(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)
	seller := newSigningProfile(t, e, "alice")

	authored, err := e.AuthorSqueak(seller.ProfileID, "content", nil)
	if err != nil {
		t.Fatalf("AuthorSqueak: %v", err)
	}

	locked := *authored
	locked.SecretKey = nil
	if err := e.Store.InsertSqueak(locked); err != nil {
		t.Fatalf("InsertSqueak: %v", err)
	}

	if _, err := e.SellSqueak(ctx, authored.Hash, peerAddr, 1000); err != ErrSqueakLocked {
		t.Fatalf("expected ErrSqueakLocked, got %v", err)
	}
}

func TestSellSqueakUnknownHash(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	var hash [32]byte
	hash[0] = 0xaa
	if _, err := e.SellSqueak(ctx, hash, peerAddr, 1000); err != ErrUnknownSqueak {
		t.Fatalf("expected ErrUnknownSqueak, got %v", err)
	}
}

func TestPackageOfferUnknownOffer(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t)

	if _, err := e.PackageOffer(ctx, 999, nil); err != ErrUnknownOffer {
		t.Fatalf("expected ErrUnknownOffer, got %v", err)
	}
}

func TestIsProfileSigning(t *testing.T) {
	if IsProfileSigning(&profile.SqueakProfile{}) {
		t.Fatalf("a profile with no private key should not be signing")
	}
	if !IsProfileSigning(&profile.SqueakProfile{PrivateKey: []byte{1}}) {
		t.Fatalf("a profile with a private key should be signing")
	}
}
