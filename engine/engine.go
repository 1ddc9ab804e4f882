// Package engine wires the squeak core (package squeak) to a concrete
// store.Store, chainclient.Client and lnclient.Client, and exposes the
// handful of stateful operations the admin surface calls through: author
// a squeak, sell it, package an offer, unpack and pay one, and decrypt
// the result. It is the single place anything in this repo is
// constructed and threaded through rather than reached via an ambient
// global, the same role daemon.LndMain plays for the teacher's own
// collaborators.
package engine

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/go-errors/errors"

	"github.com/breez/squeaknode/chainclient"
	"github.com/breez/squeaknode/lnclient"
	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/profile"
	"github.com/breez/squeaknode/squeak"
	"github.com/breez/squeaknode/squeakcrypto"
	"github.com/breez/squeaknode/store"
)

// ErrSqueakLocked is returned when an operation needs a squeak's
// secret_key but the store has none recorded for it (it has been
// received but not yet bought, or authored by someone else).
var ErrSqueakLocked = errors.New("squeak is locked: no secret key on file")

// ErrUnknownSqueak and ErrUnknownOffer report missing store rows by the
// ids/hashes the admin surface's by-id endpoints are keyed on.
var (
	ErrUnknownSqueak = errors.New("unknown squeak")
	ErrUnknownOffer  = errors.New("unknown offer")
)

// Engine bundles the collaborators every stateful squeak operation
// needs. It carries no state of its own beyond these references: all
// durable state lives in Store.
type Engine struct {
	Chain  chainclient.Client
	LN     lnclient.Client
	Store  store.Store
	Params *chaincfg.Params

	// Now and NowMs are overridable for tests; both default to the
	// wall clock.
	Now   func() time.Time
	NowMs func() int64
}

// New builds an Engine over the given collaborators, defaulting Now/NowMs
// to the wall clock.
func New(chain chainclient.Client, ln lnclient.Client, st store.Store, params *chaincfg.Params) *Engine {
	return &Engine{
		Chain:  chain,
		LN:     ln,
		Store:  st,
		Params: params,
		Now:    time.Now,
		NowMs:  squeak.NowMs,
	}
}

// AuthorSqueak authors a new squeak as the given signing profile and
// records it, along with its secret_key, in the store. It fails with
// squeak.ErrProfileNotSigning (no side effects) if the profile cannot
// author.
func (e *Engine) AuthorSqueak(profileID uint64, content string, replyTo *[32]byte) (*store.SqueakRecord, error) {
	prof, err := e.Store.GetProfile(profileID)
	if err != nil {
		return nil, err
	}

	sq, secretKey, err := squeak.MakeSqueak(prof, content, replyTo, e.Chain, e.Params, e.Now())
	if err != nil {
		return nil, err
	}

	hash := sq.Hash()
	record := store.SqueakRecord{
		Hash:      hash,
		Squeak:    sq,
		SecretKey: &secretKey,
	}
	if err := e.Store.InsertSqueak(record); err != nil {
		return nil, err
	}
	return &record, nil
}

// SellSqueak runs CreateOffer for a squeak this node has the secret_key
// for, recording the resulting SentOffer.
func (e *Engine) SellSqueak(ctx context.Context, hash [32]byte, peerAddress peeraddr.PeerAddress, priceMsat squeak.MilliSatoshi) (*squeak.SentOffer, error) {
	record, err := e.Store.GetSqueak(hash)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrUnknownSqueak
	}
	if record.SecretKey == nil {
		return nil, ErrSqueakLocked
	}

	sentOffer, err := squeak.CreateOffer(ctx, e.LN, record.Squeak, squeakcrypto.Scalar(*record.SecretKey), peerAddress, priceMsat)
	if err != nil {
		return nil, err
	}

	if _, err := e.Store.InsertSentOffer(sentOffer); err != nil {
		return nil, err
	}
	return sentOffer, nil
}

// PackageOffer builds the wire Offer for a previously created SentOffer.
func (e *Engine) PackageOffer(ctx context.Context, sentOfferID uint64, externalAddress *peeraddr.PeerAddress) (*squeak.Offer, error) {
	sentOffer, err := e.Store.GetSentOffer(sentOfferID)
	if err != nil {
		return nil, err
	}
	if sentOffer == nil {
		return nil, ErrUnknownOffer
	}
	return squeak.PackageOffer(ctx, e.LN, sentOffer, externalAddress)
}

// UnpackOffer validates a wire Offer against a squeak this node already
// knows about (received separately, still locked) and records the
// resulting ReceivedOffer.
func (e *Engine) UnpackOffer(ctx context.Context, squeakHash [32]byte, offer *squeak.Offer, peerAddress peeraddr.PeerAddress) (*squeak.ReceivedOffer, error) {
	record, err := e.Store.GetSqueak(squeakHash)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrUnknownSqueak
	}

	received, err := squeak.UnpackOffer(ctx, e.LN, record.Squeak, offer, peerAddress)
	if err != nil {
		return nil, err
	}

	if _, err := e.Store.InsertReceivedOffer(received); err != nil {
		return nil, err
	}
	return received, nil
}

// PayOffer pays a previously unpacked ReceivedOffer, records the
// resulting SentPayment, and — when the recovered key validates —
// unlocks the corresponding squeak in the store by attaching its
// secret_key.
func (e *Engine) PayOffer(ctx context.Context, receivedOfferID uint64) (*squeak.SentPayment, error) {
	received, err := e.Store.GetReceivedOffer(receivedOfferID)
	if err != nil {
		return nil, err
	}
	if received == nil {
		return nil, ErrUnknownOffer
	}

	payment, err := squeak.PayOffer(ctx, e.LN, e.NowMs, received)
	if err != nil {
		return nil, err
	}

	if _, err := e.Store.InsertSentPayment(payment); err != nil {
		return nil, err
	}

	if payment.Valid {
		record, err := e.Store.GetSqueak(received.SqueakHash)
		if err == nil && record != nil {
			key := payment.SecretKey
			record.SecretKey = (*[32]byte)(&key)
			_ = e.Store.InsertSqueak(*record)
		}
	}

	return payment, nil
}

// DecryptedContent returns a squeak's plaintext, using the secret_key on
// file for it in the store. It fails with squeak.ErrInvalidKey if the
// squeak is locked (no key on file) or the key does not match the
// squeak's payment point.
func (e *Engine) DecryptedContent(hash [32]byte) (string, error) {
	record, err := e.Store.GetSqueak(hash)
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", ErrUnknownSqueak
	}
	if record.SecretKey == nil {
		return "", squeak.ErrInvalidKey
	}
	return squeak.GetDecryptedContent(record.Squeak, squeakcrypto.Scalar(*record.SecretKey))
}

// IsProfileSigning reports whether a profile can author squeaks, used by
// the admin surface to answer getsqueakprofileprivatekey-style checks
// without duplicating profile.SqueakProfile.IsSigningProfile's logic.
func IsProfileSigning(p *profile.SqueakProfile) bool {
	return p.IsSigningProfile()
}
