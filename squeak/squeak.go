package squeak

import (
	"time"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcutil"

	"github.com/breez/squeaknode/chainclient"
	"github.com/breez/squeaknode/profile"
	"github.com/breez/squeaknode/squeakcrypto"
)

// squeakSigPrefix is prepended to a squeak's canonical bytes before
// signing, the same defense-in-depth the teacher applies in
// rpcserver.go's SignMessage/VerifyMessage (a fixed prefix keeps a
// squeak signature from being replayable as some other message type).
var squeakSigPrefix = []byte("squeak:")

func signingDigest(sq *Squeak) []byte {
	return chainhash.DoubleHashB(append(squeakSigPrefix, sq.CanonicalBytes()...))
}

// AddressForPubKey derives the author address a signing profile's public
// key is presented under, matching the pay-to-pubkey-hash style address
// the teacher's wallet-facing RPCs (NewAddress, SendCoins) work with.
func AddressForPubKey(pub *btcec.PublicKey, params *chaincfg.Params) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(
		btcutil.Hash160(pub.SerializeCompressed()), params,
	)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// MakeSqueak authors and signs a new squeak as signingProfile, anchoring
// it to the chain's current best block. It fails with
// ErrProfileNotSigning, and has no side effects, if signingProfile
// carries no private key.
//
// The squeak is signed with a recoverable compact signature, the same
// scheme rpcserver.go's SignMessage/VerifyMessage use, so CheckSqueak can
// validate the signature against AuthorAddress without needing the
// signer's public key out of band.
func MakeSqueak(
	signingProfile *profile.SqueakProfile,
	content string,
	replyTo *[32]byte,
	chain chainclient.Client,
	params *chaincfg.Params,
	now time.Time,
) (*Squeak, squeakcrypto.Scalar, error) {

	var zero squeakcrypto.Scalar

	if !signingProfile.IsSigningProfile() {
		return nil, zero, ErrProfileNotSigning
	}

	best, err := chain.GetBestBlockInfo()
	if err != nil {
		return nil, zero, err
	}

	secretKey, err := squeakcrypto.GenerateTweak()
	if err != nil {
		return nil, zero, err
	}
	paymentPoint := squeakcrypto.ScalarToPoint(secretKey)

	ciphertext, err := encryptContent(secretKey, []byte(content))
	if err != nil {
		return nil, zero, err
	}

	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), signingProfile.PrivateKey)

	sq := &Squeak{
		AuthorAddress:     signingProfile.Address,
		ContentCiphertext: ciphertext,
		BlockHeight:       best.Height,
		BlockHash:         [32]byte(best.Hash),
		Timestamp:         now.Unix(),
		ReplyToHash:       replyTo,
		PaymentPoint:      paymentPoint,
	}

	sig, err := btcec.SignCompact(btcec.S256(), priv, signingDigest(sq), true)
	if err != nil {
		return nil, zero, err
	}
	sq.Signature = sig

	return sq, secretKey, nil
}

// CheckSqueak fails with squeakcrypto.ErrInvalidSqueak if sq's signature
// does not recover to AuthorAddress, or its payment point is malformed.
func CheckSqueak(sq *Squeak, params *chaincfg.Params) error {
	if err := squeakcrypto.ValidatePoint(sq.PaymentPoint); err != nil {
		return err
	}

	pubKey, _, err := btcec.RecoverCompact(btcec.S256(), sq.Signature, signingDigest(sq))
	if err != nil {
		return squeakcrypto.ErrInvalidSqueak
	}

	addr, err := AddressForPubKey(pubKey, params)
	if err != nil {
		return squeakcrypto.ErrInvalidSqueak
	}
	if addr != sq.AuthorAddress {
		return squeakcrypto.ErrInvalidSqueak
	}

	return nil
}
