// Package profile defines a node's local identities: signing profiles
// (which can author squeaks) and contact profiles (which cannot).
package profile

// SqueakProfile is a local identity. A signing profile carries a private
// key and can author squeaks; a contact profile tracks someone else's
// address and never carries a private key.
type SqueakProfile struct {
	ProfileID       uint64
	Name            string
	Address         string
	PrivateKey      []byte // nil for a contact profile
	Following       bool
	UseCustomPrice  bool
	CustomPriceMsat int64
	Image           []byte
}

// IsSigningProfile reports whether this profile can author squeaks.
func (p *SqueakProfile) IsSigningProfile() bool {
	return p != nil && len(p.PrivateKey) > 0
}
