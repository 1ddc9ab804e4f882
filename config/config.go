// Package config loads squeaknode's on-disk/command-line configuration,
// grounded on cmd/lnd/main.go's use of jessevdk/go-flags (the teacher's
// config.go itself was not part of the retrieved source, so the
// struct-tag layout here follows go-flags' own documented convention).
package config

import (
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "squeaknode.conf"
	defaultLogFilename    = "squeaknode.log"
	defaultAdminHost      = "localhost"
	defaultAdminPort      = 8995
	defaultNetwork        = "mainnet"
)

// Config is the full set of options squeaknode accepts, either from a
// config file or the command line (command-line flags win on conflict,
// go-flags' own precedence rule).
type Config struct {
	ConfigFile string `long:"configfile" description:"Path to configuration file"`
	DataDir    string `long:"datadir" description:"Directory to store squeaknode's state"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `long:"debuglevel" description:"Logging level for all subsystems (trace, debug, info, warn, error, critical)"`

	Network string `long:"network" description:"Bitcoin network to operate on (mainnet, testnet, regtest, simnet)"`

	BitcoindHost string `long:"bitcoind.host" description:"Host:port of the backing Bitcoin node's RPC"`
	BitcoindUser string `long:"bitcoind.rpcuser" description:"Bitcoin node RPC username"`
	BitcoindPass string `long:"bitcoind.rpcpass" description:"Bitcoin node RPC password"`

	LndHost     string `long:"lnd.host" description:"Host:port of the backing Lightning node's gRPC interface"`
	LndTLSCert  string `long:"lnd.tlscertpath" description:"Path to lnd's TLS certificate"`
	LndMacaroon string `long:"lnd.macaroonpath" description:"Path to lnd's macaroon granting invoice/payment permissions"`

	AdminHost          string `long:"adminrpc.host" description:"Interface the admin HTTP server listens on"`
	AdminPort          int    `long:"adminrpc.port" description:"Port the admin HTTP server listens on"`
	AdminUser          string `long:"adminrpc.user" description:"Admin login username"`
	AdminPass          string `long:"adminrpc.pass" description:"Admin login password"`
	AdminAllowCORS     bool   `long:"adminrpc.allowcors" description:"Answer every admin HTTP preflight with Access-Control-Allow-Origin: *"`
	AdminLoginDisabled bool   `long:"adminrpc.logindisabled" description:"Disable admin session login entirely (trusted network only)"`
	AdminTLS           bool   `long:"adminrpc.tls" description:"Serve the admin HTTP surface over TLS, autogenerating an adhoc self-signed cert if none exists yet"`
	AdminTLSCertPath   string `long:"adminrpc.tlscertpath" description:"Path to the admin server's TLS certificate"`
	AdminTLSKeyPath    string `long:"adminrpc.tlskeypath" description:"Path to the admin server's TLS private key"`

	PeerListenHost string `long:"peer.listenhost" description:"Interface the peer-to-peer listener binds"`
	PeerListenPort int    `long:"peer.listenport" description:"Port the peer-to-peer listener binds"`
	AddPeers       []string `long:"addpeer" description:"host:port of a peer to connect to once at startup; may be given multiple times"`
}

// DefaultConfig returns a Config with every option set to the value
// squeaknode starts from before a config file or the command line is
// applied.
func DefaultConfig() Config {
	squeakDir := defaultSqueakDir()
	return Config{
		ConfigFile: filepath.Join(squeakDir, defaultConfigFilename),
		DataDir:    squeakDir,
		LogDir:     filepath.Join(squeakDir, "logs"),
		DebugLevel: "info",
		Network:    defaultNetwork,
		AdminHost:        defaultAdminHost,
		AdminPort:        defaultAdminPort,
		AdminTLSCertPath: filepath.Join(squeakDir, "admin-tls.cert"),
		AdminTLSKeyPath:  filepath.Join(squeakDir, "admin-tls.key"),
	}
}

func defaultSqueakDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".squeaknode"
	}
	return filepath.Join(home, ".squeaknode")
}

// LoadConfig parses command-line arguments over DefaultConfig, then
// applies a config file at the resolved ConfigFile path if one exists,
// mirroring the two-pass (flags-then-ini) approach cmd/lnd/main.go's
// daemon.LndMain delegates to internally.
func LoadConfig(args []string) (*Config, error) {
	cfg := DefaultConfig()

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.ConfigFile); err == nil {
		if err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
		// Re-apply command-line flags so they still win over the file,
		// go-flags' documented precedence.
		if _, err := parser.ParseArgs(args); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
		return nil, err
	}

	return &cfg, nil
}
