package squeak

import (
	"net"
	"strconv"
	"strings"
)

// parseHostPort splits a Lightning URI of the form "pubkey@host:port"
// into its host and port, the same format GetInfo's Uris field uses.
func parseHostPort(uri string) (string, uint16, error) {
	addr := uri
	if idx := strings.Index(uri, "@"); idx >= 0 {
		addr = uri[idx+1:]
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}

	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return "", 0, err
	}

	return host, uint16(port), nil
}
