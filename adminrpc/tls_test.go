package adminrpc

import (
	"crypto/tls"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureSelfSignedCertGeneratesLoadablePair(t *testing.T) {
	dir := t.TempDir()
	certFile := filepath.Join(dir, "admin-tls.cert")
	keyFile := filepath.Join(dir, "admin-tls.key")

	if err := EnsureSelfSignedCert(certFile, keyFile); err != nil {
		t.Fatalf("EnsureSelfSignedCert: %v", err)
	}

	if _, err := tls.LoadX509KeyPair(certFile, keyFile); err != nil {
		t.Fatalf("generated pair did not load as a valid TLS certificate: %v", err)
	}
}

func TestEnsureSelfSignedCertIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	certFile := filepath.Join(dir, "admin-tls.cert")
	keyFile := filepath.Join(dir, "admin-tls.key")

	if err := EnsureSelfSignedCert(certFile, keyFile); err != nil {
		t.Fatalf("EnsureSelfSignedCert (first call): %v", err)
	}
	before, err := os.ReadFile(certFile)
	if err != nil {
		t.Fatalf("read generated cert: %v", err)
	}

	if err := EnsureSelfSignedCert(certFile, keyFile); err != nil {
		t.Fatalf("EnsureSelfSignedCert (second call): %v", err)
	}
	after, err := os.ReadFile(certFile)
	if err != nil {
		t.Fatalf("read cert after second call: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("EnsureSelfSignedCert regenerated an existing cert instead of leaving it alone")
	}
}
