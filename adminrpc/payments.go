package adminrpc

import (
	"context"

	"github.com/breez/squeaknode/squeak"
)

// PayOffer pays a previously unpacked offer and returns the resulting
// SentPayment. Per spec §4.4, a SentPayment is returned even when its
// Valid flag is false: the payment happened regardless of whether the
// recovered key checks out.
func (h *Handler) PayOffer(ctx context.Context, req *PayOfferRequest) (*PayOfferResponse, error) {
	payment, err := h.Engine.PayOffer(ctx, req.ReceivedOfferId)
	if err != nil {
		return nil, err
	}
	return &PayOfferResponse{SentPayment: displaySentPayment(payment)}, nil
}

func displaySentPayment(p *squeak.SentPayment) *SentPaymentDisplay {
	return &SentPaymentDisplay{
		SentPaymentId: p.ID,
		SqueakHash:    p.SqueakHash[:],
		PaymentHash:   p.PaymentHash[:],
		PriceMsat:     int64(p.PriceMsat),
		NodePubkey:    p.NodePubkey[:],
		Valid:         p.Valid,
		CreatedTimeMs: p.CreatedTimeMs,
	}
}

// GetSentPayments returns every payment this node has made as a buyer.
func (h *Handler) GetSentPayments(ctx context.Context, req *Empty) (*SentPaymentsResponse, error) {
	payments, err := h.Store.GetSentPayments()
	if err != nil {
		return nil, err
	}
	out := make([]*SentPaymentDisplay, 0, len(payments))
	for _, p := range payments {
		out = append(out, displaySentPayment(p))
	}
	return &SentPaymentsResponse{SentPayments: out}, nil
}

// GetBuyOffers returns every ReceivedOffer recorded for a squeak: the
// offers this node could pay to unlock it.
func (h *Handler) GetBuyOffers(ctx context.Context, req *HashRequest) (*BuyOffersResponse, error) {
	var hash [32]byte
	copy(hash[:], req.SqueakHash)

	offers, err := h.Store.GetReceivedOffers(hash)
	if err != nil {
		return nil, err
	}
	out := make([]*BuyOfferDisplay, 0, len(offers))
	for _, o := range offers {
		out = append(out, displayBuyOffer(o))
	}
	return &BuyOffersResponse{Offers: out}, nil
}

// GetBuyOffer returns a single ReceivedOffer by id.
func (h *Handler) GetBuyOffer(ctx context.Context, req *IDRequest) (*BuyOfferResponse, error) {
	o, err := h.Store.GetReceivedOffer(req.Id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return &BuyOfferResponse{Offer: displayBuyOffer(o)}, nil
}

func displayBuyOffer(o *squeak.ReceivedOffer) *BuyOfferDisplay {
	return &BuyOfferDisplay{
		OfferId:        o.ID,
		SqueakHash:     o.SqueakHash[:],
		PriceMsat:      int64(o.PriceMsat),
		PaymentHash:    o.PaymentHash[:],
		NodePubkey:     o.Destination[:],
		PeerHost:       o.PeerAddress.Host,
		PeerPort:       uint32(o.PeerAddress.Port),
		PaymentRequest: o.PaymentRequest,
	}
}

// GetSentOffers returns every SentOffer this node, as seller, has made
// for a squeak.
func (h *Handler) GetSentOffers(ctx context.Context, req *HashRequest) (*SentOffersResponse, error) {
	var hash [32]byte
	copy(hash[:], req.SqueakHash)

	offers, err := h.Store.GetSentOffers(hash)
	if err != nil {
		return nil, err
	}
	out := make([]*SentOfferDisplay, 0, len(offers))
	for _, o := range offers {
		out = append(out, &SentOfferDisplay{
			SentOfferId:    o.ID,
			SqueakHash:     o.SqueakHash[:],
			PaymentHash:    o.PaymentHash[:],
			PriceMsat:      int64(o.PriceMsat),
			PeerHost:       o.PeerAddress.Host,
			PeerPort:       uint32(o.PeerAddress.Port),
			Paid:           o.Paid,
			PaymentRequest: o.PaymentRequest,
		})
	}
	return &SentOffersResponse{SentOffers: out}, nil
}

// GetReceivedPayments returns every settled sale recorded for this node
// as seller, materialized by the verifier package's background loop.
func (h *Handler) GetReceivedPayments(ctx context.Context, req *Empty) (*ReceivedPaymentsResponse, error) {
	payments, err := h.Store.GetReceivedPayments()
	if err != nil {
		return nil, err
	}
	out := make([]*ReceivedPaymentDisplay, 0, len(payments))
	for _, p := range payments {
		out = append(out, &ReceivedPaymentDisplay{
			SqueakHash:    p.SqueakHash[:],
			PaymentHash:   p.PaymentHash[:],
			PriceMsat:     int64(p.PriceMsat),
			SettleIndex:   p.SettleIndex,
			PeerHost:      p.PeerAddress.Host,
			PeerPort:      uint32(p.PeerAddress.Port),
			CreatedTimeMs: p.CreatedTimeMs,
		})
	}
	return &ReceivedPaymentsResponse{ReceivedPayments: out}, nil
}

// GetPaymentSummary aggregates the sent/received payment rows into the
// node-wide totals an admin dashboard shows at a glance.
func (h *Handler) GetPaymentSummary(ctx context.Context, req *Empty) (*PaymentSummaryResponse, error) {
	sent, err := h.Store.GetSentPayments()
	if err != nil {
		return nil, err
	}
	received, err := h.Store.GetReceivedPayments()
	if err != nil {
		return nil, err
	}

	summary := &PaymentSummaryResponse{
		NumSentPayments:     uint64(len(sent)),
		NumReceivedPayments: uint64(len(received)),
	}
	for _, p := range sent {
		summary.AmountSentMsat += int64(p.PriceMsat)
	}
	for _, p := range received {
		summary.AmountReceivedMsat += int64(p.PriceMsat)
	}
	return summary, nil
}

// ReprocessReceivedPayments resets the verifier's resume cursor to zero,
// causing its next subscription to replay every settled invoice from the
// beginning. Recording is idempotent on payment hash (spec §5), so this
// is safe to call at any time; it exists for recovering from a store
// that was restored from an older backup than the Lightning node's own
// invoice database.
func (h *Handler) ReprocessReceivedPayments(ctx context.Context, req *Empty) (*Empty, error) {
	return &Empty{}, h.Store.ResetLatestSettleIndex()
}
