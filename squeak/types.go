// Package squeak implements the core squeak exchange protocol: authoring
// and validating squeaks, and the create/package/unpack/pay offer dance
// that sells a squeak's decryption key atomically with a Lightning
// payment settlement.
package squeak

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/squeakcrypto"
)

// MilliSatoshi is a Lightning amount denominated in thousandths of a
// satoshi, the unit every price/fee field in the exchange protocol is
// expressed in.
type MilliSatoshi uint64

// Squeak is an immutable, signed, encrypted post anchored to a Bitcoin
// block. Its identity is Hash(), the digest of its canonical
// serialization; it is "locked" until paired with the secret_key that
// decrypts ContentCiphertext.
type Squeak struct {
	AuthorAddress     string
	ContentCiphertext []byte
	BlockHeight       int32
	BlockHash         [32]byte
	Timestamp         int64
	ReplyToHash       *[32]byte
	Signature         []byte
	PaymentPoint      squeakcrypto.Point
}

// CanonicalBytes serializes the squeak's fields in a fixed order for
// hashing and signing. The signature field itself is excluded: it signs
// over everything else.
func (s *Squeak) CanonicalBytes() []byte {
	var buf bytes.Buffer

	buf.WriteString(s.AuthorAddress)
	buf.Write(s.ContentCiphertext)

	var heightBuf [4]byte
	binary.BigEndian.PutUint32(heightBuf[:], uint32(s.BlockHeight))
	buf.Write(heightBuf[:])

	buf.Write(s.BlockHash[:])

	var tsBuf [8]byte
	binary.BigEndian.PutUint64(tsBuf[:], uint64(s.Timestamp))
	buf.Write(tsBuf[:])

	if s.ReplyToHash != nil {
		buf.Write(s.ReplyToHash[:])
	}

	buf.Write(s.PaymentPoint[:])

	return buf.Bytes()
}

// Hash returns the squeak's identity, H(canonical serialization).
func (s *Squeak) Hash() [32]byte {
	return squeakcrypto.Hash(s.CanonicalBytes())
}

// PeerAddress is re-exported for callers that only import this package.
type PeerAddress = peeraddr.PeerAddress

// SentOffer is the seller-side record of a single sale proposal.
type SentOffer struct {
	ID             uint64
	SqueakHash     [32]byte
	PaymentHash    [32]byte
	SecretKey      squeakcrypto.Scalar // the tweaked preimage, not the squeak's original key
	Nonce          squeakcrypto.Scalar
	PriceMsat      MilliSatoshi
	PaymentRequest string
	InvoiceTime    time.Time
	InvoiceExpiry  time.Duration
	PeerAddress    peeraddr.PeerAddress
	Paid           bool
	SettleIndex    *uint64
}

// Offer is the wire message a seller sends a buyer. It carries no
// plaintext decryption key.
type Offer struct {
	SqueakHash     [32]byte
	Nonce          squeakcrypto.Scalar
	PaymentRequest string
	Host           string
	Port           uint16
}

// ReceivedOffer is the buyer-side record of a sale proposal after
// unpacking the wire Offer.
type ReceivedOffer struct {
	ID               uint64
	SqueakHash       [32]byte
	PriceMsat        MilliSatoshi
	PaymentHash      [32]byte
	Nonce            squeakcrypto.Scalar
	PaymentPoint     squeakcrypto.Point
	InvoiceTimestamp time.Time
	InvoiceExpiry    time.Duration
	PaymentRequest   string
	Destination      [33]byte
	LightningAddress peeraddr.PeerAddress
	PeerAddress      peeraddr.PeerAddress
}

// SentPayment is the buyer-side record of a completed (successful or not)
// payment attempt against a ReceivedOffer.
type SentPayment struct {
	ID            uint64
	CreatedTimeMs int64
	PeerAddress   peeraddr.PeerAddress
	SqueakHash    [32]byte
	PaymentHash   [32]byte
	SecretKey     squeakcrypto.Scalar
	PriceMsat     MilliSatoshi
	NodePubkey    [33]byte
	Valid         bool
}

// ReceivedPayment is the seller-side record materialized once a sold
// invoice settles.
type ReceivedPayment struct {
	ID            uint64
	CreatedTimeMs int64
	SqueakHash    [32]byte
	PaymentHash   [32]byte
	PriceMsat     MilliSatoshi
	SettleIndex   uint64
	PeerAddress   peeraddr.PeerAddress
}
