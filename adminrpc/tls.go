package adminrpc

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"io/ioutil"
	"math/big"
	"net"
	"os"
	"time"
)

// autogenCertValidity is how long an adhoc self-signed admin cert is
// valid for, the same 14-month window daemon/lnd.go's genCertPair uses
// for its own autogenerated certificate.
const autogenCertValidity = 14 * 30 * 24 * time.Hour

var serialNumberLimit = new(big.Int).Lsh(big.NewInt(1), 128)

// EnsureSelfSignedCert makes sure a certificate exists at certFile. If
// certFile is already present it returns without reading or checking
// either file; otherwise it writes a new adhoc self-signed pair covering
// localhost and this host's own interface addresses to certFile and
// keyFile. Spec §6
// calls this out as the admin surface's "Optional TLS (adhoc
// self-signed)" mode; it is adapted from daemon/lnd.go's genCertPair,
// the teacher's own adhoc-cert generator for its gRPC listener.
func EnsureSelfSignedCert(certFile, keyFile string) error {
	if _, err := os.Stat(certFile); err == nil {
		return nil
	}
	return genCertPair(certFile, keyFile)
}

func genCertPair(certFile, keyFile string) error {
	org := "squeaknode admin autogenerated cert"
	now := time.Now()
	validUntil := now.Add(autogenCertValidity)

	serialNumber, err := rand.Int(rand.Reader, serialNumberLimit)
	if err != nil {
		return fmt.Errorf("failed to generate serial number: %v", err)
	}

	ipAddresses := []net.IP{net.ParseIP("127.0.0.1"), net.ParseIP("::1")}
	addIP := func(ip net.IP) {
		for _, existing := range ipAddresses {
			if bytes.Equal(existing, ip) {
				return
			}
		}
		ipAddresses = append(ipAddresses, ip)
	}
	if addrs, err := net.InterfaceAddrs(); err == nil {
		for _, a := range addrs {
			if ip, _, err := net.ParseCIDR(a.String()); err == nil {
				addIP(ip)
			}
		}
	}

	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	dnsNames := []string{host}
	if host != "localhost" {
		dnsNames = append(dnsNames, "localhost")
	}

	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return err
	}

	template := x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization: []string{org},
			CommonName:   host,
		},
		NotBefore: now.Add(-time.Hour * 24),
		NotAfter:  validUntil,

		KeyUsage: x509.KeyUsageKeyEncipherment |
			x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		IsCA:                  true,
		BasicConstraintsValid: true,

		DNSNames:    dnsNames,
		IPAddresses: ipAddresses,
	}

	derBytes, err := x509.CreateCertificate(rand.Reader, &template, &template, &priv.PublicKey, priv)
	if err != nil {
		return fmt.Errorf("failed to create certificate: %v", err)
	}

	certPem, err := pemBlock("CERTIFICATE", derBytes)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalECPrivateKey(priv)
	if err != nil {
		return fmt.Errorf("unable to encode privkey: %v", err)
	}
	keyPem, err := pemBlock("EC PRIVATE KEY", keyBytes)
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(certFile, certPem, 0644); err != nil {
		return err
	}
	if err := ioutil.WriteFile(keyFile, keyPem, 0600); err != nil {
		os.Remove(certFile)
		return err
	}
	return nil
}

func pemBlock(blockType string, der []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := pem.Encode(buf, &pem.Block{Type: blockType, Bytes: der}); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %v", blockType, err)
	}
	return buf.Bytes(), nil
}
