// Package memstore is a sync.Mutex-guarded in-memory implementation of
// store.Store, grounded on channeldb's repository style but backed by
// plain maps instead of bbolt buckets. It exists so the engine and its
// tests can run without a real database, the same role an in-memory
// channeldb.DB plays in the teacher's own funding-manager tests.
package memstore

import (
	"sync"

	"github.com/go-errors/errors"

	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/profile"
	"github.com/breez/squeaknode/squeak"
	"github.com/breez/squeaknode/store"
)

// ErrNotFound is returned by single-record lookups that miss.
var ErrNotFound = errors.New("record not found")

// MemStore implements store.Store entirely in memory.
type MemStore struct {
	mu sync.Mutex

	squeaks  map[[32]byte]store.SqueakRecord
	profiles map[uint64]*profile.SqueakProfile
	peers    map[uint64]*store.StoredPeer

	sentOffers     map[uint64]*squeak.SentOffer
	receivedOffers map[uint64]*squeak.ReceivedOffer
	sentPayments   map[uint64]*squeak.SentPayment
	receivedPays   []squeak.ReceivedPayment

	latestSettleIndex uint64
	seenPaymentHashes map[[32]byte]struct{}

	nextProfileID uint64
	nextPeerID    uint64
	nextOfferID   uint64
	nextPaymentID uint64
}

// New returns an empty MemStore.
func New() *MemStore {
	return &MemStore{
		squeaks:           make(map[[32]byte]store.SqueakRecord),
		profiles:          make(map[uint64]*profile.SqueakProfile),
		peers:             make(map[uint64]*store.StoredPeer),
		sentOffers:        make(map[uint64]*squeak.SentOffer),
		receivedOffers:    make(map[uint64]*squeak.ReceivedOffer),
		sentPayments:      make(map[uint64]*squeak.SentPayment),
		seenPaymentHashes: make(map[[32]byte]struct{}),
	}
}

var _ store.Store = (*MemStore)(nil)

// --- SqueakStore ---

func (m *MemStore) InsertSqueak(record store.SqueakRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.squeaks[record.Hash] = record
	return nil
}

func (m *MemStore) GetSqueak(hash [32]byte) (*store.SqueakRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.squeaks[hash]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (m *MemStore) DeleteSqueak(hash [32]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.squeaks, hash)
	return nil
}

func (m *MemStore) GetRepliesTo(hash [32]byte) ([]store.SqueakRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.SqueakRecord
	for _, rec := range m.squeaks {
		if rec.Squeak.ReplyToHash != nil && *rec.Squeak.ReplyToHash == hash {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *MemStore) GetByAuthorAddress(address string) ([]store.SqueakRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.SqueakRecord
	for _, rec := range m.squeaks {
		if rec.Squeak.AuthorAddress == address {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *MemStore) GetTimeline() ([]store.SqueakRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.SqueakRecord, 0, len(m.squeaks))
	for _, rec := range m.squeaks {
		out = append(out, rec)
	}
	return out, nil
}

func (m *MemStore) SetLiked(hash [32]byte, liked bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.squeaks[hash]
	if !ok {
		return ErrNotFound
	}
	rec.Liked = liked
	m.squeaks[hash] = rec
	return nil
}

func (m *MemStore) GetLiked() ([]store.SqueakRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.SqueakRecord
	for _, rec := range m.squeaks {
		if rec.Liked {
			out = append(out, rec)
		}
	}
	return out, nil
}

// --- ProfileStore ---

func (m *MemStore) InsertProfile(p *profile.SqueakProfile) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextProfileID++
	id := m.nextProfileID
	p.ProfileID = id
	m.profiles[id] = p
	return id, nil
}

func (m *MemStore) GetProfile(id uint64) (*profile.SqueakProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *MemStore) GetProfileByAddress(address string) (*profile.SqueakProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.profiles {
		if p.Address == address {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemStore) GetProfiles() ([]*profile.SqueakProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*profile.SqueakProfile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (m *MemStore) GetSigningProfiles() ([]*profile.SqueakProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*profile.SqueakProfile
	for _, p := range m.profiles {
		if p.IsSigningProfile() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemStore) GetContactProfiles() ([]*profile.SqueakProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*profile.SqueakProfile
	for _, p := range m.profiles {
		if !p.IsSigningProfile() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MemStore) SetProfileFollowing(id uint64, following bool) error {
	return m.mutateProfile(id, func(p *profile.SqueakProfile) { p.Following = following })
}

func (m *MemStore) SetProfileName(id uint64, name string) error {
	return m.mutateProfile(id, func(p *profile.SqueakProfile) { p.Name = name })
}

func (m *MemStore) SetProfileImage(id uint64, image []byte) error {
	return m.mutateProfile(id, func(p *profile.SqueakProfile) { p.Image = image })
}

func (m *MemStore) SetProfileUseCustomPrice(id uint64, use bool) error {
	return m.mutateProfile(id, func(p *profile.SqueakProfile) { p.UseCustomPrice = use })
}

func (m *MemStore) SetProfileCustomPrice(id uint64, priceMsat int64) error {
	return m.mutateProfile(id, func(p *profile.SqueakProfile) { p.CustomPriceMsat = priceMsat })
}

func (m *MemStore) mutateProfile(id uint64, fn func(*profile.SqueakProfile)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return ErrNotFound
	}
	fn(p)
	return nil
}

func (m *MemStore) DeleteProfile(id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.profiles, id)
	return nil
}

// --- PeerStore ---

func (m *MemStore) InsertPeer(p *store.StoredPeer) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextPeerID++
	id := m.nextPeerID
	p.ID = id
	m.peers[id] = p
	return id, nil
}

func (m *MemStore) GetPeer(id uint64) (*store.StoredPeer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.peers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *MemStore) GetPeerByAddress(address peeraddr.PeerAddress) (*store.StoredPeer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.peers {
		if p.Address == address {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemStore) GetPeers() ([]*store.StoredPeer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*store.StoredPeer, 0, len(m.peers))
	for _, p := range m.peers {
		out = append(out, p)
	}
	return out, nil
}

func (m *MemStore) SetPeerName(id uint64, name string) error {
	return m.mutatePeer(id, func(p *store.StoredPeer) { p.Name = name })
}

func (m *MemStore) SetPeerDownloading(id uint64, downloading bool) error {
	return m.mutatePeer(id, func(p *store.StoredPeer) { p.Downloading = downloading })
}

func (m *MemStore) SetPeerUploading(id uint64, uploading bool) error {
	return m.mutatePeer(id, func(p *store.StoredPeer) { p.Uploading = uploading })
}

func (m *MemStore) SetPeerAutoconnect(id uint64, autoconnect bool) error {
	return m.mutatePeer(id, func(p *store.StoredPeer) { p.Autoconnect = autoconnect })
}

func (m *MemStore) mutatePeer(id uint64, fn func(*store.StoredPeer)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.peers[id]
	if !ok {
		return ErrNotFound
	}
	fn(p)
	return nil
}

func (m *MemStore) DeletePeer(id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.peers, id)
	return nil
}

// --- OfferStore ---

func (m *MemStore) InsertSentOffer(o *squeak.SentOffer) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextOfferID++
	id := m.nextOfferID
	o.ID = id
	m.sentOffers[id] = o
	return id, nil
}

func (m *MemStore) GetSentOffer(id uint64) (*squeak.SentOffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.sentOffers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (m *MemStore) GetSentOfferByPreimageHash(paymentHash [32]byte) (*squeak.SentOffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.sentOffers {
		if o.PaymentHash == paymentHash {
			return o, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemStore) GetSentOffers(squeakHash [32]byte) ([]*squeak.SentOffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*squeak.SentOffer
	for _, o := range m.sentOffers {
		if o.SqueakHash == squeakHash {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MemStore) MarkSentOfferPaid(id uint64, settleIndex uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.sentOffers[id]
	if !ok {
		return ErrNotFound
	}
	o.Paid = true
	idx := settleIndex
	o.SettleIndex = &idx
	return nil
}

func (m *MemStore) InsertReceivedOffer(o *squeak.ReceivedOffer) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextOfferID++
	id := m.nextOfferID
	o.ID = id
	m.receivedOffers[id] = o
	return id, nil
}

func (m *MemStore) GetReceivedOffer(id uint64) (*squeak.ReceivedOffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.receivedOffers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (m *MemStore) GetReceivedOffers(squeakHash [32]byte) ([]*squeak.ReceivedOffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*squeak.ReceivedOffer
	for _, o := range m.receivedOffers {
		if o.SqueakHash == squeakHash {
			out = append(out, o)
		}
	}
	return out, nil
}

// --- PaymentStore ---

func (m *MemStore) GetLatestSettleIndex() (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latestSettleIndex, nil
}

func (m *MemStore) SetLatestSettleIndex(index uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if index > m.latestSettleIndex {
		m.latestSettleIndex = index
	}
	return nil
}

func (m *MemStore) ResetLatestSettleIndex() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latestSettleIndex = 0
	return nil
}

// InsertReceivedPayment is idempotent on PaymentHash: a redelivered
// invoice after a resumed subscription does not produce a duplicate
// row, per spec §4.5's at-least-once delivery note.
func (m *MemStore) InsertReceivedPayment(p squeak.ReceivedPayment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, seen := m.seenPaymentHashes[p.PaymentHash]; seen {
		return nil
	}
	m.seenPaymentHashes[p.PaymentHash] = struct{}{}
	m.nextPaymentID++
	p.ID = m.nextPaymentID
	m.receivedPays = append(m.receivedPays, p)
	return nil
}

func (m *MemStore) GetReceivedPayments() ([]squeak.ReceivedPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]squeak.ReceivedPayment, len(m.receivedPays))
	copy(out, m.receivedPays)
	return out, nil
}

func (m *MemStore) InsertSentPayment(p *squeak.SentPayment) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextPaymentID++
	id := m.nextPaymentID
	p.ID = id
	m.sentPayments[id] = p
	return id, nil
}

func (m *MemStore) GetSentPayments() ([]*squeak.SentPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*squeak.SentPayment, 0, len(m.sentPayments))
	for _, p := range m.sentPayments {
		out = append(out, p)
	}
	return out, nil
}

// SaveReceivedPayment satisfies verifier.PaymentRecorder.
func (m *MemStore) SaveReceivedPayment(p squeak.ReceivedPayment) error {
	return m.InsertReceivedPayment(p)
}
