package squeak

import "github.com/go-errors/errors"

// Error kinds the squeak core can fail with, per the exchange protocol's
// error taxonomy. Collaborator errors (chain/Lightning transport failures)
// are classified and passed through, never swallowed.
var (
	// ErrProfileNotSigning is returned by MakeSqueak when the supplied
	// profile has no private key.
	ErrProfileNotSigning = errors.New("profile is not a signing profile")

	// ErrOfferHashMismatch is returned by UnpackOffer when the wire
	// offer's squeak_hash disagrees with the squeak's own hash.
	ErrOfferHashMismatch = errors.New("offer squeak hash mismatch")

	// ErrPaymentFailed is returned by PayOffer when the Lightning
	// payment produced no usable preimage.
	ErrPaymentFailed = errors.New("payment failed")

	// ErrInvalidKey is returned by GetDecryptedContent when the
	// supplied key does not match the squeak's payment point.
	ErrInvalidKey = errors.New("invalid decryption key")
)
