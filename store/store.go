// Package store defines the persistence boundary the engine and the
// admin surface depend on. It is split into one sub-interface per
// entity, the same repository-per-entity boundary channeldb draws
// around its own on-disk structures, composed into a single Store.
//
// No implementation here touches a database directly; store/memstore
// provides an in-memory implementation used by the engine's own tests
// and suitable for running a node without a persistent backend.
package store

import (
	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/profile"
	"github.com/breez/squeaknode/squeak"
)

// SqueakRecord pairs a stored Squeak with its locally-known secret_key,
// if any. A squeak received from a peer but not yet purchased has a nil
// SecretKey: its content is locked.
type SqueakRecord struct {
	Hash      [32]byte
	Squeak    *squeak.Squeak
	SecretKey *[32]byte
	Liked     bool
}

// SqueakStore persists squeaks and their unlock state.
type SqueakStore interface {
	InsertSqueak(record SqueakRecord) error
	GetSqueak(hash [32]byte) (*SqueakRecord, error)
	DeleteSqueak(hash [32]byte) error
	GetRepliesTo(hash [32]byte) ([]SqueakRecord, error)
	GetByAuthorAddress(address string) ([]SqueakRecord, error)
	GetTimeline() ([]SqueakRecord, error)
	SetLiked(hash [32]byte, liked bool) error
	GetLiked() ([]SqueakRecord, error)
}

// ProfileStore persists signing and contact profiles.
type ProfileStore interface {
	InsertProfile(p *profile.SqueakProfile) (uint64, error)
	GetProfile(id uint64) (*profile.SqueakProfile, error)
	GetProfileByAddress(address string) (*profile.SqueakProfile, error)
	GetProfiles() ([]*profile.SqueakProfile, error)
	GetSigningProfiles() ([]*profile.SqueakProfile, error)
	GetContactProfiles() ([]*profile.SqueakProfile, error)
	SetProfileFollowing(id uint64, following bool) error
	SetProfileName(id uint64, name string) error
	SetProfileImage(id uint64, image []byte) error
	SetProfileUseCustomPrice(id uint64, use bool) error
	SetProfileCustomPrice(id uint64, priceMsat int64) error
	DeleteProfile(id uint64) error
}

// StoredPeer is a peer configuration record, independent of whether a
// live connection currently exists (that liveness is network.ConnectionManager's
// job, not storage's).
type StoredPeer struct {
	ID          uint64
	Name        string
	Address     peeraddr.PeerAddress
	Downloading bool
	Uploading   bool
	Autoconnect bool
}

// PeerStore persists configured peers.
type PeerStore interface {
	InsertPeer(p *StoredPeer) (uint64, error)
	GetPeer(id uint64) (*StoredPeer, error)
	GetPeerByAddress(address peeraddr.PeerAddress) (*StoredPeer, error)
	GetPeers() ([]*StoredPeer, error)
	SetPeerName(id uint64, name string) error
	SetPeerDownloading(id uint64, downloading bool) error
	SetPeerUploading(id uint64, uploading bool) error
	SetPeerAutoconnect(id uint64, autoconnect bool) error
	DeletePeer(id uint64) error
}

// OfferStore persists both sides of the offer exchange.
type OfferStore interface {
	InsertSentOffer(o *squeak.SentOffer) (uint64, error)
	GetSentOffer(id uint64) (*squeak.SentOffer, error)
	GetSentOfferByPreimageHash(paymentHash [32]byte) (*squeak.SentOffer, error)
	GetSentOffers(squeakHash [32]byte) ([]*squeak.SentOffer, error)
	MarkSentOfferPaid(id uint64, settleIndex uint64) error

	InsertReceivedOffer(o *squeak.ReceivedOffer) (uint64, error)
	GetReceivedOffer(id uint64) (*squeak.ReceivedOffer, error)
	GetReceivedOffers(squeakHash [32]byte) ([]*squeak.ReceivedOffer, error)
}

// PaymentStore persists payment records and the verifier's resume cursor.
type PaymentStore interface {
	GetLatestSettleIndex() (uint64, error)

	// SetLatestSettleIndex advances the cursor the verifier resumes
	// from. It is monotonic: an index not greater than the one on file
	// is silently ignored, since settle_index must only move forward
	// (spec §5/§8).
	SetLatestSettleIndex(index uint64) error

	// ResetLatestSettleIndex unconditionally rewinds the cursor to
	// zero, bypassing SetLatestSettleIndex's monotonic guard. It backs
	// the admin surface's ReprocessReceivedPayments, which needs an
	// actual rewind rather than a no-op clamped by the current index.
	ResetLatestSettleIndex() error

	InsertReceivedPayment(p squeak.ReceivedPayment) error
	GetReceivedPayments() ([]squeak.ReceivedPayment, error)

	InsertSentPayment(p *squeak.SentPayment) (uint64, error)
	GetSentPayments() ([]*squeak.SentPayment, error)
}

// Store is the full storage boundary consumed by the engine and the
// admin surface. Every SPEC_FULL.md storage operation is reachable
// through one of its composed sub-interfaces.
type Store interface {
	SqueakStore
	ProfileStore
	PeerStore
	OfferStore
	PaymentStore
}
