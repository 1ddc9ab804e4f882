package squeak

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
	"github.com/breez/squeaknode/squeakcrypto"
)

func newSigningProfile(t *testing.T) (*profile.SqueakProfile, *btcec.PrivateKey) {
	t.Helper()
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		t.Fatalf("NewPrivateKey: %v", err)
	}
	addr, err := AddressForPubKey(priv.PubKey(), &chaincfg.RegressionNetParams)
	if err != nil {
		t.Fatalf("AddressForPubKey: %v", err)
	}
	return &profile.SqueakProfile{
		ProfileID:  1,
		Name:       "alice",
		Address:    addr,
		PrivateKey: priv.Serialize(),
	}, priv
}

func makeTestSqueak(t *testing.T) (*Squeak, squeakcrypto.Scalar) {
	t.Helper()
	p, _ := newSigningProfile(t)
	chain := &fakeChainReal{height: 100}
	sq, key, err := MakeSqueak(p, "hello world", nil, chain, &chaincfg.RegressionNetParams, time.Unix(1700000000, 0))
	if err != nil {
		t.Fatalf("MakeSqueak: %v", err)
	}
	return sq, key
}

// fakeChainReal implements chainclient.Client fully (the type squeak.go
// actually depends on).
type fakeChainReal struct {
	height int32
}

func (f *fakeChainReal) GetBestBlockInfo() (*chainclient.BlockInfo, error) {
	h := sha256.Sum256([]byte("block"))
	return &chainclient.BlockInfo{Height: f.height, Hash: chainhash.Hash(h)}, nil
}
func (f *fakeChainReal) GetBlockInfoByHeight(height int32) (*chainclient.BlockInfo, error) {
	h := sha256.Sum256([]byte("block"))
	return &chainclient.BlockInfo{Height: height, Hash: chainhash.Hash(h)}, nil
}
func (f *fakeChainReal) ParseBlockHeader(raw []byte) (*wire.BlockHeader, error) {
	return &wire.BlockHeader{}, nil
}

func TestMakeSqueakRequiresSigningProfile(t *testing.T) {
	contact := &profile.SqueakProfile{ProfileID: 2, Name: "bob", Address: "bob-addr"}
	chain := &fakeChainReal{height: 10}

	_, _, err := MakeSqueak(contact, "hi", nil, chain, &chaincfg.RegressionNetParams, time.Now())
	if err != ErrProfileNotSigning {
		t.Fatalf("expected ErrProfileNotSigning, got %v", err)
	}
}

func TestCheckSqueakRoundTrip(t *testing.T) {
	sq, _ := makeTestSqueak(t)
	if err := CheckSqueak(sq, &chaincfg.RegressionNetParams); err != nil {
		t.Fatalf("CheckSqueak: %v", err)
	}
}

func TestCheckSqueakRejectsTamperedContent(t *testing.T) {
	sq, _ := makeTestSqueak(t)
	sq.ContentCiphertext = append([]byte{0xff}, sq.ContentCiphertext...)

	if err := CheckSqueak(sq, &chaincfg.RegressionNetParams); err == nil {
		t.Fatalf("expected signature check to fail for tampered content")
	}
}

func TestGetDecryptedContentRoundTrip(t *testing.T) {
	sq, key := makeTestSqueak(t)

	content, err := GetDecryptedContent(sq, key)
	if err != nil {
		t.Fatalf("GetDecryptedContent: %v", err)
	}
	if content != "hello world" {
		t.Fatalf("got %q, want %q", content, "hello world")
	}
}

func TestGetDecryptedContentWrongKey(t *testing.T) {
	sq, _ := makeTestSqueak(t)

	wrongKey, err := squeakcrypto.GenerateTweak()
	if err != nil {
		t.Fatalf("GenerateTweak: %v", err)
	}

	if _, err := GetDecryptedContent(sq, wrongKey); err != ErrInvalidKey {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

// --- Lightning client fake used by the offer lifecycle tests ---

type fakeLN struct {
	invoices   map[[32]byte][32]byte // rHash -> preimage
	payResult  *lnclient.PaymentResult
	payReqInfo *lnclient.PayReqInfo
	uris       []string
}

func newFakeLN() *fakeLN {
	return &fakeLN{invoices: make(map[[32]byte][32]byte)}
}

func (f *fakeLN) AddInvoice(ctx context.Context, preimage [32]byte, amtMsat int64) (*lnclient.AddedInvoice, error) {
	rHash := sha256.Sum256(preimage[:])
	f.invoices[rHash] = preimage
	return &lnclient.AddedInvoice{RHash: rHash, PaymentRequest: "lnbc_test_" + string(rHash[:4])}, nil
}

func (f *fakeLN) LookupInvoice(ctx context.Context, rHash [32]byte) (*lnclient.InvoiceInfo, error) {
	return &lnclient.InvoiceInfo{CreationDate: time.Unix(1700000000, 0), Expiry: time.Hour}, nil
}

func (f *fakeLN) DecodePayReq(ctx context.Context, payReq string) (*lnclient.PayReqInfo, error) {
	if f.payReqInfo != nil {
		return f.payReqInfo, nil
	}
	return &lnclient.PayReqInfo{NumMsat: 1000, Timestamp: time.Unix(1700000000, 0), Expiry: time.Hour}, nil
}

func (f *fakeLN) PayInvoiceSync(ctx context.Context, payReq string) (*lnclient.PaymentResult, error) {
	if f.payResult != nil {
		return f.payResult, nil
	}
	// Default: pay the single invoice on file.
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
	return &lnclient.NodeInfo{URIs: f.uris}, nil
}

var peerAddr = peeraddr.PeerAddress{Host: "127.0.0.1", Port: 9999}

func TestHappyPathSale(t *testing.T) {
	sq, secretKey := makeTestSqueak(t)
	ln := newFakeLN()

	sentOffer, err := CreateOffer(context.Background(), ln, sq, secretKey, peerAddr, 1000)
	if err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}

	wireOffer, err := PackageOffer(context.Background(), ln, sentOffer, nil)
	if err != nil {
		t.Fatalf("PackageOffer: %v", err)
	}

	received, err := UnpackOffer(context.Background(), ln, sq, wireOffer, peerAddr)
	if err != nil {
		t.Fatalf("UnpackOffer: %v", err)
	}

	sentPayment, err := PayOffer(context.Background(), ln, NowMs, received)
	if err != nil {
		t.Fatalf("PayOffer: %v", err)
	}

	if sentPayment.SecretKey != secretKey {
		t.Fatalf("recovered key %x != original %x", sentPayment.SecretKey, secretKey)
	}
	if !sentPayment.Valid {
		t.Fatalf("expected sentPayment.Valid == true")
	}

	content, err := GetDecryptedContent(sq, sentPayment.SecretKey)
	if err != nil {
		t.Fatalf("GetDecryptedContent: %v", err)
	}
	if content != "hello world" {
		t.Fatalf("got %q", content)
	}
}

func TestUnpackOfferRejectsTamperedHash(t *testing.T) {
	sq, secretKey := makeTestSqueak(t)
	ln := newFakeLN()

	sentOffer, err := CreateOffer(context.Background(), ln, sq, secretKey, peerAddr, 1000)
	if err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}
	wireOffer, err := PackageOffer(context.Background(), ln, sentOffer, nil)
	if err != nil {
		t.Fatalf("PackageOffer: %v", err)
	}

	wireOffer.SqueakHash[0] ^= 0xff

	if _, err := UnpackOffer(context.Background(), ln, sq, wireOffer, peerAddr); err != ErrOfferHashMismatch {
		t.Fatalf("expected ErrOfferHashMismatch, got %v", err)
	}
}

func TestPayOfferFailure(t *testing.T) {
	sq, secretKey := makeTestSqueak(t)
	ln := newFakeLN()

	sentOffer, err := CreateOffer(context.Background(), ln, sq, secretKey, peerAddr, 1000)
	if err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}
	wireOffer, err := PackageOffer(context.Background(), ln, sentOffer, nil)
	if err != nil {
		t.Fatalf("PackageOffer: %v", err)
	}
	received, err := UnpackOffer(context.Background(), ln, sq, wireOffer, peerAddr)
	if err != nil {
		t.Fatalf("UnpackOffer: %v", err)
	}

	ln.payResult = &lnclient.PaymentResult{PaymentError: "no_route"}

	_, err = PayOffer(context.Background(), ln, NowMs, received)
	if err == nil {
		t.Fatalf("expected PayOffer to fail")
	}
	if err.Error() != ErrPaymentFailed.Error()+": no_route" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateOfferPaymentHashBinding(t *testing.T) {
	sq, secretKey := makeTestSqueak(t)
	ln := newFakeLN()

	sentOffer, err := CreateOffer(context.Background(), ln, sq, secretKey, peerAddr, 1000)
	if err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}

	want := sha256.Sum256(sentOffer.SecretKey[:])
	if sentOffer.PaymentHash != want {
		t.Fatalf("payment hash %x != sha256(preimage) %x", sentOffer.PaymentHash, want)
	}
}

func TestExternalAddressFallback(t *testing.T) {
	sq, secretKey := makeTestSqueak(t)
	ln := newFakeLN() // uris left empty

	sentOffer, err := CreateOffer(context.Background(), ln, sq, secretKey, peerAddr, 1000)
	if err != nil {
		t.Fatalf("CreateOffer: %v", err)
	}

	wireOffer, err := PackageOffer(context.Background(), ln, sentOffer, nil)
	if err != nil {
		t.Fatalf("PackageOffer: %v", err)
	}
	if wireOffer.Host != "" || wireOffer.Port != 0 {
		t.Fatalf("expected host=\"\" port=0 fallback, got %q %d", wireOffer.Host, wireOffer.Port)
	}

	received, err := UnpackOffer(context.Background(), ln, sq, wireOffer, peerAddr)
	if err != nil {
		t.Fatalf("UnpackOffer: %v", err)
	}
	if received.LightningAddress.Host != peerAddr.Host {
		t.Fatalf("expected lightning_address.host to fall back to peer_address.host")
	}
}
