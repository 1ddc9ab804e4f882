// Package verifier runs the background loop that turns settled Lightning
// invoices into recorded ReceivedPayment rows, per spec §4.5. It is
// generalized from the teacher's daemon.lnd.go chain-sync wait loop and
// BackupNotifier started/stopped lifecycle to a reconnect-and-resume loop
// over squeak.GetReceivedPayments.
package verifier

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/btclog"

	"github.com/breez/squeaknode/lnclient"
	"github.com/breez/squeaknode/squeak"
)

// DefaultRetryInterval is LND_CONNECT_RETRY_S from spec §4.5/§8: how long
// the verifier waits before resubscribing after a transport error.
const DefaultRetryInterval = 10 * time.Second

// SettleIndexStore persists the cursor the verifier resumes from. It is
// the subset of the store package's PaymentStore the verifier depends on.
type SettleIndexStore interface {
	GetLatestSettleIndex() (uint64, error)
	SetLatestSettleIndex(index uint64) error
}

// PaymentRecorder persists a settled ReceivedPayment. Saving is expected
// to be idempotent on PaymentHash, since a resumed subscription may
// redeliver an invoice the verifier already recorded before a disconnect.
type PaymentRecorder interface {
	SaveReceivedPayment(payment squeak.ReceivedPayment) error
}

// log is the verifier subsystem's logger, wired up the teacher's btclog
// way via UseLogger from the build package.
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by the verifier loop.
func UseLogger(logger btclog.Logger) {
	log = logger
}

// SentOffersVerifier drives GetReceivedPayments against the configured
// Lightning client, persisting every settled payment and advancing the
// settle-index cursor, reconnecting on error after RetryInterval.
type SentOffersVerifier struct {
	ln            lnclient.Client
	indexStore    SettleIndexStore
	recorder      PaymentRecorder
	lookup        squeak.SentOfferLookup
	retryInterval time.Duration

	started uint32
	stopped uint32

	quit chan struct{}
	wg   sync.WaitGroup
}

// New builds a SentOffersVerifier. retryInterval of zero selects
// DefaultRetryInterval.
func New(ln lnclient.Client, indexStore SettleIndexStore, recorder PaymentRecorder, lookup squeak.SentOfferLookup, retryInterval time.Duration) *SentOffersVerifier {
	if retryInterval == 0 {
		retryInterval = DefaultRetryInterval
	}
	return &SentOffersVerifier{
		ln:            ln,
		indexStore:    indexStore,
		recorder:      recorder,
		lookup:        lookup,
		retryInterval: retryInterval,
		quit:          make(chan struct{}),
	}
}

// Start launches the verifier's background loop. It is safe to call
// Start more than once; only the first call has an effect.
func (v *SentOffersVerifier) Start() {
	if !atomic.CompareAndSwapUint32(&v.started, 0, 1) {
		return
	}
	v.wg.Add(1)
	go v.run()
}

// Stop signals the loop to exit and waits for it to do so. It is safe to
// call Stop more than once.
func (v *SentOffersVerifier) Stop() {
	if !atomic.CompareAndSwapUint32(&v.stopped, 0, 1) {
		return
	}
	close(v.quit)
	v.wg.Wait()
}

func (v *SentOffersVerifier) run() {
	defer v.wg.Done()

	for {
		select {
		case <-v.quit:
			return
		default:
		}

		if err := v.runOnce(); err != nil {
			log.Errorf("received-payments subscription ended: %v", err)
		}

		select {
		case <-v.quit:
			return
		case <-time.After(v.retryInterval):
		}
	}
}

// runOnce opens a single subscription and drains it until it ends, either
// because of an upstream error or because Stop was called.
func (v *SentOffersVerifier) runOnce() error {
	settleIndex, err := v.indexStore.GetLatestSettleIndex()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := squeak.GetReceivedPayments(ctx, v.ln, settleIndex, v.lookup)
	if err != nil {
		return err
	}
	defer stream.Cancel()

	for {
		select {
		case <-v.quit:
			return nil

		case payment, ok := <-stream.Payments:
			if !ok {
				return drainErr(stream)
			}
			if err := v.recorder.SaveReceivedPayment(payment); err != nil {
				log.Errorf("failed to persist received payment %x: %v", payment.PaymentHash, err)
				continue
			}
			if err := v.indexStore.SetLatestSettleIndex(payment.SettleIndex); err != nil {
				log.Errorf("failed to advance settle index: %v", err)
			}
		}
	}
}

func drainErr(stream *squeak.ReceivedPaymentsStream) error {
	select {
	case err := <-stream.Errors:
		return err
	default:
		return nil
	}
}
