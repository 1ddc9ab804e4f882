package adminrpc

import (
	"context"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/breez/squeaknode/profile"
	"github.com/breez/squeaknode/squeak"
)

func displayProfile(p *profile.SqueakProfile) *ProfileDisplay {
	return &ProfileDisplay{
		ProfileId:       p.ProfileID,
		Name:            p.Name,
		Address:         p.Address,
		IsSigningKey:    p.IsSigningProfile(),
		Following:       p.Following,
		UseCustomPrice:  p.UseCustomPrice,
		CustomPriceMsat: p.CustomPriceMsat,
		HasImage:        len(p.Image) > 0,
	}
}

// GetSqueakProfile returns a single profile by id.
func (h *Handler) GetSqueakProfile(ctx context.Context, req *IDRequest) (*ProfileResponse, error) {
	p, err := h.Store.GetProfile(req.Id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return &ProfileResponse{Profile: displayProfile(p)}, nil
}

// GetSqueakProfileByAddress returns a single profile by author address.
func (h *Handler) GetSqueakProfileByAddress(ctx context.Context, req *AddressRequestByString) (*ProfileResponse, error) {
	p, err := h.Store.GetProfileByAddress(req.Address)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return &ProfileResponse{Profile: displayProfile(p)}, nil
}

// GetProfiles returns every local profile, signing and contact alike.
func (h *Handler) GetProfiles(ctx context.Context, req *Empty) (*ProfilesResponse, error) {
	profiles, err := h.Store.GetProfiles()
	if err != nil {
		return nil, err
	}
	return &ProfilesResponse{Profiles: displayProfileList(profiles)}, nil
}

// GetSigningProfiles returns only the local identities that can author
// squeaks.
func (h *Handler) GetSigningProfiles(ctx context.Context, req *Empty) (*ProfilesResponse, error) {
	profiles, err := h.Store.GetSigningProfiles()
	if err != nil {
		return nil, err
	}
	return &ProfilesResponse{Profiles: displayProfileList(profiles)}, nil
}

// GetContactProfiles returns only contact (non-signing) profiles.
func (h *Handler) GetContactProfiles(ctx context.Context, req *Empty) (*ProfilesResponse, error) {
	profiles, err := h.Store.GetContactProfiles()
	if err != nil {
		return nil, err
	}
	return &ProfilesResponse{Profiles: displayProfileList(profiles)}, nil
}

func displayProfileList(profiles []*profile.SqueakProfile) []*ProfileDisplay {
	out := make([]*ProfileDisplay, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, displayProfile(p))
	}
	return out
}

// SetSqueakProfileFollowing toggles whether a contact profile's squeaks
// appear in the timeline.
func (h *Handler) SetSqueakProfileFollowing(ctx context.Context, req *SetBoolRequest) (*Empty, error) {
	return &Empty{}, h.Store.SetProfileFollowing(req.Id, req.Value)
}

// SetSqueakProfileUseCustomPrice toggles whether selling this profile's
// squeaks uses CustomPriceMsat instead of the node-wide default price.
func (h *Handler) SetSqueakProfileUseCustomPrice(ctx context.Context, req *SetBoolRequest) (*Empty, error) {
	return &Empty{}, h.Store.SetProfileUseCustomPrice(req.Id, req.Value)
}

// SetSqueakProfileCustomPrice sets the custom per-squeak sale price.
func (h *Handler) SetSqueakProfileCustomPrice(ctx context.Context, req *SetInt64Request) (*Empty, error) {
	return &Empty{}, h.Store.SetProfileCustomPrice(req.Id, req.Value)
}

// RenameSqueakProfile changes a profile's display name.
func (h *Handler) RenameSqueakProfile(ctx context.Context, req *SetStringRequest) (*Empty, error) {
	return &Empty{}, h.Store.SetProfileName(req.Id, req.Value)
}

// SetSqueakProfileImage and ClearSqueakProfileImage set or clear a
// profile's avatar image.
func (h *Handler) SetSqueakProfileImage(ctx context.Context, req *SetImageRequest) (*Empty, error) {
	return &Empty{}, h.Store.SetProfileImage(req.Id, req.Image)
}

func (h *Handler) ClearSqueakProfileImage(ctx context.Context, req *IDRequest) (*Empty, error) {
	return &Empty{}, h.Store.SetProfileImage(req.Id, nil)
}

// CreateContactProfile adds a profile for a remote author's address,
// with no private key: it can never be used to author squeaks.
func (h *Handler) CreateContactProfile(ctx context.Context, req *CreateContactProfileRequest) (*ProfileResponse, error) {
	p := &profile.SqueakProfile{Name: req.Name, Address: req.Address}
	id, err := h.Store.InsertProfile(p)
	if err != nil {
		return nil, err
	}
	p.ProfileID = id
	return &ProfileResponse{Profile: displayProfile(p)}, nil
}

// CreateSigningProfile generates a fresh private key and the address
// derived from it, the same key/address pairing squeak.AddressForPubKey
// computes when authoring.
func (h *Handler) CreateSigningProfile(ctx context.Context, req *CreateSigningProfileRequest) (*ProfileResponse, error) {
	priv, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return nil, err
	}
	return h.importSigningKey(req.Name, priv.Serialize())
}

// ImportSigningProfile wraps an externally-generated private key
// into a new signing profile.
func (h *Handler) ImportSigningProfile(ctx context.Context, req *ImportSigningProfileRequest) (*ProfileResponse, error) {
	return h.importSigningKey(req.Name, req.PrivateKey)
}

func (h *Handler) importSigningKey(name string, rawKey []byte) (*ProfileResponse, error) {
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), rawKey)
	addr, err := squeak.AddressForPubKey(priv.PubKey(), h.chainParams())
	if err != nil {
		return nil, err
	}

	p := &profile.SqueakProfile{Name: name, Address: addr, PrivateKey: rawKey}
	id, err := h.Store.InsertProfile(p)
	if err != nil {
		return nil, err
	}
	p.ProfileID = id
	return &ProfileResponse{Profile: displayProfile(p)}, nil
}

// GetSqueakProfilePrivateKey exports a signing profile's raw private
// key, e.g. for backup. It fails with squeak.ErrProfileNotSigning for a
// contact profile.
func (h *Handler) GetSqueakProfilePrivateKey(ctx context.Context, req *IDRequest) (*PrivateKeyResponse, error) {
	p, err := h.Store.GetProfile(req.Id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if !p.IsSigningProfile() {
		return nil, squeak.ErrProfileNotSigning
	}
	return &PrivateKeyResponse{PrivateKey: p.PrivateKey}, nil
}

// DeleteProfile removes a profile.
func (h *Handler) DeleteProfile(ctx context.Context, req *IDRequest) (*Empty, error) {
	return &Empty{}, h.Store.DeleteProfile(req.Id)
}

func (h *Handler) chainParams() *chaincfg.Params {
	if h.Engine != nil && h.Engine.Params != nil {
		return h.Engine.Params
	}
	return &chaincfg.MainNetParams
}
