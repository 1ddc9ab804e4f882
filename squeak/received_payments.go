package squeak

import (
	"context"

	"github.com/breez/squeaknode/lnclient"
)

// SentOfferLookup resolves a settled invoice's payment hash back to the
// SentOffer that was sold, so its squeak_hash and price can be attached
// to the resulting ReceivedPayment.
type SentOfferLookup func(paymentHash [32]byte) (*SentOffer, error)

// ReceivedPaymentsStream is a cancelable, lazily-pulled sequence of
// ReceivedPayment events. Cancel is thread-safe and idempotent; the
// consumer must drive Payments from a single goroutine.
type ReceivedPaymentsStream struct {
	Payments <-chan ReceivedPayment
	Errors   <-chan error
	Cancel   context.CancelFunc
}

// GetReceivedPayments subscribes to settled invoices strictly after
// latestSettleIndex. For each settled invoice, lookup resolves the
// SentOffer it corresponds to and a ReceivedPayment is emitted carrying
// that offer's squeak_hash/price and the invoice's own settle_index.
// The stream ends cleanly when Cancel is called; any other transport
// error terminates it via Errors, wrapped as
// lnclient.ErrInvoiceSubscriptionError.
func GetReceivedPayments(ctx context.Context, ln lnclient.Client, latestSettleIndex uint64, lookup SentOfferLookup) (*ReceivedPaymentsStream, error) {
	sub, err := ln.SubscribeInvoices(ctx, latestSettleIndex)
	if err != nil {
		return nil, err
	}

	payments := make(chan ReceivedPayment)
	errs := make(chan error, 1)

	go func() {
		defer close(payments)

		for invoice := range sub.Invoices {
			if !invoice.Settled {
				continue
			}

			sentOffer, err := lookup(invoice.RHash)
			if err != nil {
				select {
				case errs <- err:
				default:
				}
				return
			}

			payment := ReceivedPayment{
				SqueakHash:  sentOffer.SqueakHash,
				PaymentHash: invoice.RHash,
				PriceMsat:   sentOffer.PriceMsat,
				SettleIndex: invoice.SettleIndex,
				PeerAddress: sentOffer.PeerAddress,
			}

			select {
			case payments <- payment:
			case <-ctx.Done():
				return
			}
		}

		select {
		case err := <-sub.Errors:
			if err != nil {
				select {
				case errs <- err:
				default:
				}
			}
		default:
		}
	}()

	return &ReceivedPaymentsStream{
		Payments: payments,
		Errors:   errs,
		Cancel:   sub.Cancel,
	}, nil
}
