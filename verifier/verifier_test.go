package verifier

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/breez/squeaknode/lnclient"
	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/squeak"
)

type memIndexStore struct {
	mu    sync.Mutex
	index uint64
}

func (m *memIndexStore) GetLatestSettleIndex() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.index, nil
}

func (m *memIndexStore) SetLatestSettleIndex(index uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.index = index
	return nil
}

type memRecorder struct {
	mu       sync.Mutex
	payments []squeak.ReceivedPayment
}

func (m *memRecorder) SaveReceivedPayment(payment squeak.ReceivedPayment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments = append(m.payments, payment)
	return nil
}

func (m *memRecorder) snapshot() []squeak.ReceivedPayment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]squeak.ReceivedPayment, len(m.payments))
	copy(out, m.payments)
	return out
}

// fakeStreamLN emits a single settled invoice then closes, satisfying
// lnclient.Client for the one method the verifier actually calls.
type fakeStreamLN struct {
	invoice lnclient.Invoice
}

func (f *fakeStreamLN) AddInvoice(ctx context.Context, preimage [32]byte, amtMsat int64) (*lnclient.AddedInvoice, error) {
	return nil, nil
}
func (f *fakeStreamLN) LookupInvoice(ctx context.Context, rHash [32]byte) (*lnclient.InvoiceInfo, error) {
	return nil, nil
}
func (f *fakeStreamLN) DecodePayReq(ctx context.Context, payReq string) (*lnclient.PayReqInfo, error) {
	return nil, nil
}
func (f *fakeStreamLN) PayInvoiceSync(ctx context.Context, payReq string) (*lnclient.PaymentResult, error) {
	return nil, nil
}
func (f *fakeStreamLN) GetInfo(ctx context.Context) (*lnclient.NodeInfo, error) {
	return nil, nil
}

func (f *fakeStreamLN) SubscribeInvoices(ctx context.Context, settleIndex uint64) (*lnclient.InvoiceSubscription, error) {
	ch := make(chan lnclient.Invoice, 1)
	ch <- f.invoice
	close(ch)
	return &lnclient.InvoiceSubscription{
		Invoices: ch,
		Cancel:   func() {},
	}, nil
}

func TestVerifierPersistsSettledPaymentAndAdvancesIndex(t *testing.T) {
	squeakHash := [32]byte{1, 2, 3}
	rHash := [32]byte{4, 5, 6}

	sentOffer := &squeak.SentOffer{
		SqueakHash:  squeakHash,
		PaymentHash: rHash,
		PriceMsat:   500,
		PeerAddress: peeraddr.PeerAddress{Host: "peer", Port: 1},
	}

	ln := &fakeStreamLN{invoice: lnclient.Invoice{RHash: rHash, SettleIndex: 42, Settled: true}}
	indexStore := &memIndexStore{}
	recorder := &memRecorder{}

	lookup := func(paymentHash [32]byte) (*squeak.SentOffer, error) {
		return sentOffer, nil
	}

	v := New(ln, indexStore, recorder, lookup, 10*time.Millisecond)
	v.Start()
	defer v.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(recorder.snapshot()) > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	payments := recorder.snapshot()
	if len(payments) != 1 {
		t.Fatalf("expected 1 recorded payment, got %d", len(payments))
	}
	if payments[0].SqueakHash != squeakHash {
		t.Fatalf("unexpected squeak hash: %x", payments[0].SqueakHash)
	}
	if payments[0].SettleIndex != 42 {
		t.Fatalf("unexpected settle index: %d", payments[0].SettleIndex)
	}

	idx, _ := indexStore.GetLatestSettleIndex()
	if idx != 42 {
		t.Fatalf("expected settle index store advanced to 42, got %d", idx)
	}
}

func TestVerifierStopIsIdempotent(t *testing.T) {
	ln := &fakeStreamLN{invoice: lnclient.Invoice{Settled: false}}
	v := New(ln, &memIndexStore{}, &memRecorder{}, func([32]byte) (*squeak.SentOffer, error) {
		return nil, nil
	}, 10*time.Millisecond)

	v.Start()
	v.Stop()
	v.Stop()
}
