package adminrpc

import (
	"context"

	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/squeak"
)

// CreateSentOffer runs the seller side of a sale end to end:
// create_offer followed by package_offer, per the data-flow description
// in spec §3. The caller is responsible for transmitting the returned
// OfferPayload to the buyer peer; this repo does not assume any
// particular offer-transport channel beyond network.ConnectionManager's
// live connections.
func (h *Handler) CreateSentOffer(ctx context.Context, req *CreateSentOfferRequest) (*CreateSentOfferResponse, error) {
	var hash [32]byte
	copy(hash[:], req.SqueakHash)
	peerAddress := peeraddr.PeerAddress{Host: req.PeerHost, Port: uint16(req.PeerPort)}

	sentOffer, err := h.Engine.SellSqueak(ctx, hash, peerAddress, squeak.MilliSatoshi(req.PriceMsat))
	if err != nil {
		return nil, err
	}

	var externalAddress *peeraddr.PeerAddress
	if req.HasExternalAddr {
		externalAddress = &peeraddr.PeerAddress{Host: req.ExternalHost, Port: uint16(req.ExternalPort)}
	}

	offer, err := h.Engine.PackageOffer(ctx, sentOffer.ID, externalAddress)
	if err != nil {
		return nil, err
	}

	return &CreateSentOfferResponse{
		SentOffer: &SentOfferDisplay{
			SentOfferId:    sentOffer.ID,
			SqueakHash:     sentOffer.SqueakHash[:],
			PaymentHash:    sentOffer.PaymentHash[:],
			PriceMsat:      int64(sentOffer.PriceMsat),
			PeerHost:       sentOffer.PeerAddress.Host,
			PeerPort:       uint32(sentOffer.PeerAddress.Port),
			Paid:           sentOffer.Paid,
			PaymentRequest: sentOffer.PaymentRequest,
		},
		Offer: &OfferPayload{
			SentOfferId:    sentOffer.ID,
			SqueakHash:     offer.SqueakHash[:],
			Nonce:          offer.Nonce[:],
			PaymentRequest: offer.PaymentRequest,
			Host:           offer.Host,
			Port:           uint32(offer.Port),
		},
	}, nil
}

// ReceiveOffer runs the buyer-side unpack_offer step against a wire
// OfferPayload received out-of-band from a seller (typically relayed by
// the client that called CreateSentOffer on the seller's own node).
func (h *Handler) ReceiveOffer(ctx context.Context, req *OfferPayload) (*BuyOfferResponse, error) {
	var hash, nonce [32]byte
	copy(hash[:], req.SqueakHash)
	copy(nonce[:], req.Nonce)

	offer := &squeak.Offer{
		SqueakHash:     hash,
		Nonce:          nonce,
		PaymentRequest: req.PaymentRequest,
		Host:           req.Host,
		Port:           uint16(req.Port),
	}
	peerAddress := peeraddr.PeerAddress{Host: req.Host, Port: uint16(req.Port)}

	received, err := h.Engine.UnpackOffer(ctx, hash, offer, peerAddress)
	if err != nil {
		return nil, err
	}
	return &BuyOfferResponse{Offer: displayBuyOffer(received)}, nil
}
