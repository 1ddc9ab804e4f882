// squeaknode is the process entry point: it loads configuration, wires
// up the chain/Lightning collaborators, the store, the network and
// verifier background loops, and the admin HTTP surface, then blocks
// until an interrupt signal arrives. It plays the same role
// daemon.LndMain plays for the teacher, minus the Lightning node itself
// (out of scope per spec §1) and plus the admin HTTP server this repo
// adds.
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btclog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/breez/squeaknode/adminrpc"
	"github.com/breez/squeaknode/build"
	"github.com/breez/squeaknode/chainclient"
	"github.com/breez/squeaknode/config"
	"github.com/breez/squeaknode/engine"
	"github.com/breez/squeaknode/lnclient"
	"github.com/breez/squeaknode/network"
	"github.com/breez/squeaknode/peeraddr"
	"github.com/breez/squeaknode/store"
	"github.com/breez/squeaknode/store/memstore"
	"github.com/breez/squeaknode/verifier"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}

	chainParams := netParams(cfg.Network)

	chainConn, err := chainclient.NewBtcdClient(&rpcclient.ConnConfig{
		Host:                 cfg.BitcoindHost,
		User:                 cfg.BitcoindUser,
		Pass:                 cfg.BitcoindPass,
		DisableConnectOnNew:  true,
		DisableAutoReconnect: false,
		DisableTLS:           true,
		HTTPPostMode:         true,
	})
	if err != nil {
		return err
	}
	defer chainConn.Shutdown()

	lnCC, err := dialLnd(cfg)
	if err != nil {
		return err
	}
	defer lnCC.Close()
	lnClient := lnclient.NewGRPCClient(lnCC)

	st := memstore.New()

	eng := engine.New(chainConn, lnClient, st, chainParams)

	network.UseLogger(log("NTWK"))
	connMgr := network.NewConnectionManager()

	dialer := &storeDialer{store: st}
	autoconnect := network.NewAutoconnect(connMgr, dialer)
	autoconnect.Start()
	defer autoconnect.Stop()

	verifier.UseLogger(log("VRFY"))
	sentOffersVerifier := verifier.New(lnClient, st, st, st.GetSentOfferByPreimageHash, verifier.DefaultRetryInterval)
	sentOffersVerifier.Start()
	defer sentOffersVerifier.Stop()

	sessionKey, err := adminSessionKey(cfg)
	if err != nil {
		return err
	}

	handler := &adminrpc.Handler{
		Engine: eng,
		Store:  st,
		Conns:  connMgr,
		Dialer: dialer,
	}
	serverCfg := adminrpc.ServerConfig{
		Handler:       handler,
		Username:      cfg.AdminUser,
		Password:      cfg.AdminPass,
		SessionKey:    sessionKey,
		AllowCORS:     cfg.AdminAllowCORS,
		LoginDisabled: cfg.AdminLoginDisabled,
	}
	if cfg.AdminTLS {
		if err := adminrpc.EnsureSelfSignedCert(cfg.AdminTLSCertPath, cfg.AdminTLSKeyPath); err != nil {
			return fmt.Errorf("could not prepare admin TLS cert: %w", err)
		}
		serverCfg.TLSCert = cfg.AdminTLSCertPath
	}
	router := adminrpc.NewRouter(serverCfg)

	addr := fmt.Sprintf("%s:%d", cfg.AdminHost, cfg.AdminPort)
	srv := &http.Server{Addr: addr, Handler: router}
	go func() {
		var err error
		if cfg.AdminTLS {
			err = srv.ListenAndServeTLS(cfg.AdminTLSCertPath, cfg.AdminTLSKeyPath)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "admin server stopped: %v\n", err)
		}
	}()
	defer srv.Close()

	for _, raw := range cfg.AddPeers {
		address, err := peeraddr.Parse(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping invalid peer %q: %v\n", raw, err)
			continue
		}
		if err := dialer.ConnectPeer(address); err != nil {
			fmt.Fprintf(os.Stderr, "failed to connect to %q: %v\n", raw, err)
		}
	}

	waitForShutdown()
	return nil
}

func waitForShutdown() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
}

func setupLogging(cfg *config.Config) error {
	logFile := filepath.Join(cfg.LogDir, "squeaknode.log")
	_, err := build.InitLogRotator(build.LogWriterSingleton, logFile, 10, 3)
	return err
}

func log(subsystem string) btclog.Logger {
	return build.NewSubLogger(subsystem, build.Backend.Logger)
}

func netParams(netName string) *chaincfg.Params {
	switch netName {
	case "testnet":
		return &chaincfg.TestNet3Params
	case "regtest":
		return &chaincfg.RegressionNetParams
	case "simnet":
		return &chaincfg.SimNetParams
	default:
		return &chaincfg.MainNetParams
	}
}

// dialLnd dials lnd's gRPC interface using its own TLS certificate and a
// macaroon granting invoice/payment permissions, the same
// credentials.NewClientTLSFromFile + PerRPCCredentials pairing any lnd
// gRPC client in the wild uses.
func dialLnd(cfg *config.Config) (*grpc.ClientConn, error) {
	creds, err := credentials.NewClientTLSFromFile(cfg.LndTLSCert, "")
	if err != nil {
		return nil, fmt.Errorf("could not load lnd tls cert from %s: %w", cfg.LndTLSCert, err)
	}

	macBytes, err := os.ReadFile(cfg.LndMacaroon)
	if err != nil {
		return nil, fmt.Errorf("could not read lnd macaroon from %s: %w", cfg.LndMacaroon, err)
	}

	return grpc.Dial(cfg.LndHost,
		grpc.WithTransportCredentials(creds),
		grpc.WithPerRPCCredentials(macaroonCredential{hex.EncodeToString(macBytes)}),
	)
}

// macaroonCredential implements grpc.PerRPCCredentials, attaching lnd's
// expected hex-encoded macaroon metadata to every call.
type macaroonCredential struct {
	macaroon string
}

func (m macaroonCredential) GetRequestMetadata(_ interface{}, _ ...string) (map[string]string, error) {
	return map[string]string{"macaroon": m.macaroon}, nil
}

func (m macaroonCredential) RequireTransportSecurity() bool {
	return true
}

// adminSessionKey derives a stable cookie-authentication key from the
// admin password, so the login session survives a restart without an
// extra config option. A fresh random key is used only when no password
// is configured at all (login-disabled deployments).
func adminSessionKey(cfg *config.Config) ([]byte, error) {
	if cfg.AdminPass == "" {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, err
		}
		return key, nil
	}
	sum := sha256.Sum256([]byte(cfg.AdminUser + ":" + cfg.AdminPass))
	return sum[:], nil
}

// storeDialer adapts store.Store into the network.Dialer contract the
// autoconnect reconciler and adminrpc.Handler.ConnectPeer both need:
// candidate addresses come from configured peers with Autoconnect set.
type storeDialer struct {
	store store.Store
}

func (d *storeDialer) ConnectPeer(address peeraddr.PeerAddress) error {
	// A real implementation dials address over TCP, runs the
	// version/verack handshake described in spec §4.6, and registers the
	// resulting *network.Peer with the shared ConnectionManager via
	// AddPeer. Transport framing for that handshake is outside
	// SPEC_FULL.md's scope (the spec only names the ConnectionManager
	// and Autoconnect contracts, not a wire handshake), so this is the
	// extension point a concrete transport plugs into.
	return network.ErrMissingPeer
}

func (d *storeDialer) CandidatePeers(exclude map[peeraddr.PeerAddress]struct{}, count int) []peeraddr.PeerAddress {
	peers, err := d.store.GetPeers()
	if err != nil {
		return nil
	}

	var candidates []peeraddr.PeerAddress
	for _, p := range peers {
		if !p.Autoconnect {
			continue
		}
		if _, skip := exclude[p.Address]; skip {
			continue
		}
		candidates = append(candidates, p.Address)
		if len(candidates) >= count {
			break
		}
	}
	return candidates
}
