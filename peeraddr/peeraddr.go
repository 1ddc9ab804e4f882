// Package peeraddr defines the value-typed network address used
// throughout the squeak exchange engine to identify a remote peer. It is
// deliberately comparable (==) so it can be used directly as a map key,
// the same role a serialized pubkey string plays as the key of
// server.peersByPub in the teacher codebase.
package peeraddr

import (
	"fmt"
	"net"
	"strconv"
)

// PeerAddress identifies a remote node by host and port. Two
// PeerAddress values are equal, and therefore collide as map keys, iff
// both fields match exactly.
type PeerAddress struct {
	Host string
	Port uint16
}

// String renders the address in host:port form.
func (a PeerAddress) String() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// IsZero reports whether a is the unset PeerAddress, as produced by the
// package/port-0 fallback in package_offer when no external address is
// configured.
func (a PeerAddress) IsZero() bool {
	return a == PeerAddress{}
}

// Parse splits a plain "host:port" string into a PeerAddress, the form
// a configured --addpeer value takes (as opposed to the
// "pubkey@host:port" Lightning URI form squeak.PackageOffer parses).
func Parse(hostPort string) (PeerAddress, error) {
	host, portStr, err := net.SplitHostPort(hostPort)
	if err != nil {
		return PeerAddress{}, err
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return PeerAddress{}, err
	}
	return PeerAddress{Host: host, Port: uint16(port)}, nil
}
