package squeak

import (
	"context"
	"time"

	"github.com/breez/squeaknode/lnclient"
	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/squeakcrypto"
)

// CreateOffer is step one of a sale, run by the seller. It tweaks
// secretKey by a freshly generated nonce to get the invoice preimage,
// registers a HODL invoice for that preimage, and returns the resulting
// SentOffer. The seller never transmits secretKey directly; the buyer
// recovers it from the Lightning payment's revealed preimage.
func CreateOffer(
	ctx context.Context,
	ln lnclient.Client,
	sq *Squeak,
	secretKey squeakcrypto.Scalar,
	peerAddress peeraddr.PeerAddress,
	priceMsat MilliSatoshi,
) (*SentOffer, error) {

	hash := sq.Hash()

	nonce, err := squeakcrypto.GenerateTweak()
	if err != nil {
		return nil, err
	}

	preimage := squeakcrypto.TweakAdd(secretKey, nonce)

	added, err := ln.AddInvoice(ctx, [32]byte(preimage), int64(priceMsat))
	if err != nil {
		return nil, err
	}

	info, err := ln.LookupInvoice(ctx, added.RHash)
	if err != nil {
		return nil, err
	}

	return &SentOffer{
		SqueakHash:     hash,
		PaymentHash:    added.RHash,
		SecretKey:      preimage,
		Nonce:          nonce,
		PriceMsat:      priceMsat,
		PaymentRequest: added.PaymentRequest,
		InvoiceTime:    info.CreationDate,
		InvoiceExpiry:  info.Expiry,
		PeerAddress:    peerAddress,
	}, nil
}

// PackageOffer is step two of a sale, run by the seller. It builds the
// wire Offer sent to the buyer, falling back to this node's first
// advertised Lightning URI when no explicit external address is given.
func PackageOffer(ctx context.Context, ln lnclient.Client, sentOffer *SentOffer, externalAddress *peeraddr.PeerAddress) (*Offer, error) {
	host, port := "", uint16(0)

	if externalAddress != nil {
		host, port = externalAddress.Host, externalAddress.Port
	} else {
		info, err := ln.GetInfo(ctx)
		if err != nil {
			return nil, err
		}
		if len(info.URIs) > 0 {
			h, p, err := splitLightningURI(info.URIs[0])
			if err == nil {
				host, port = h, p
			}
		}
	}

	return &Offer{
		SqueakHash:     sentOffer.SqueakHash,
		Nonce:          sentOffer.Nonce,
		PaymentRequest: sentOffer.PaymentRequest,
		Host:           host,
		Port:           port,
	}, nil
}

// UnpackOffer is step three of a sale, run by the buyer. It binds the
// wire Offer to the squeak it claims to sell, failing with
// ErrOfferHashMismatch if the offer's squeak_hash disagrees with the
// squeak's own hash. Validation of payment_point against the invoice is
// deliberately deferred to PayOffer (see spec §9's open question on
// payment-point validation): current behavior carries payment_point
// forward unchecked.
func UnpackOffer(ctx context.Context, ln lnclient.Client, sq *Squeak, offer *Offer, peerAddress peeraddr.PeerAddress) (*ReceivedOffer, error) {
	if offer.SqueakHash != sq.Hash() {
		return nil, ErrOfferHashMismatch
	}

	payReq, err := ln.DecodePayReq(ctx, offer.PaymentRequest)
	if err != nil {
		return nil, err
	}

	host := offer.Host
	if host == "" {
		host = peerAddress.Host
	}

	return &ReceivedOffer{
		SqueakHash:       offer.SqueakHash,
		PriceMsat:        MilliSatoshi(payReq.NumMsat),
		PaymentHash:      payReq.PaymentHash,
		Nonce:            offer.Nonce,
		PaymentPoint:     sq.PaymentPoint,
		InvoiceTimestamp: payReq.Timestamp,
		InvoiceExpiry:    payReq.Expiry,
		PaymentRequest:   offer.PaymentRequest,
		Destination:      payReq.Destination,
		LightningAddress: peeraddr.PeerAddress{Host: host, Port: offer.Port},
		PeerAddress:      peerAddress,
	}, nil
}

// PayOffer is step four of a sale, run by the buyer. It pays the offer's
// invoice and, on success, recovers secret_key from the revealed
// preimage and the nonce already known from the offer. A SentPayment is
// produced even when Valid is false: the payment happened regardless,
// and it is up to the caller whether to consume (decrypt) the squeak.
func PayOffer(ctx context.Context, ln lnclient.Client, nowMs func() int64, receivedOffer *ReceivedOffer) (*SentPayment, error) {
	result, err := ln.PayInvoiceSync(ctx, receivedOffer.PaymentRequest)
	if err != nil {
		return nil, err
	}
	if !result.HasPreimage() {
		return nil, wrapPaymentFailed(result.PaymentError)
	}

	secretKey := squeakcrypto.TweakSub(squeakcrypto.Scalar(result.PaymentPreimage), receivedOffer.Nonce)
	valid := squeakcrypto.ScalarToPoint(secretKey) == receivedOffer.PaymentPoint

	return &SentPayment{
		CreatedTimeMs: nowMs(),
		PeerAddress:   receivedOffer.PeerAddress,
		SqueakHash:    receivedOffer.SqueakHash,
		PaymentHash:   receivedOffer.PaymentHash,
		SecretKey:     secretKey,
		PriceMsat:     receivedOffer.PriceMsat,
		NodePubkey:    receivedOffer.Destination,
		Valid:         valid,
	}, nil
}

func wrapPaymentFailed(reason string) error {
	if reason == "" {
		return ErrPaymentFailed
	}
	return &paymentFailedError{reason: reason}
}

type paymentFailedError struct {
	reason string
}

func (e *paymentFailedError) Error() string {
	return ErrPaymentFailed.Error() + ": " + e.reason
}

func (e *paymentFailedError) Is(target error) bool {
	return target == ErrPaymentFailed
}

// NowMs is the default wall-clock source for PayOffer and
// ReceivedPayment timestamps.
func NowMs() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

func splitLightningURI(uri string) (string, uint16, error) {
	return parseHostPort(uri)
}
