package config

import "testing"

func TestDefaultConfigIsWellFormed(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Network != defaultNetwork {
		t.Fatalf("got network %q, want %q", cfg.Network, defaultNetwork)
	}
	if cfg.AdminPort != defaultAdminPort {
		t.Fatalf("got admin port %d, want %d", cfg.AdminPort, defaultAdminPort)
	}
	if cfg.DataDir == "" || cfg.LogDir == "" {
		t.Fatalf("expected non-empty default data/log dirs")
	}
}

func TestLoadConfigCommandLineOverridesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig([]string{
		"--datadir", dir,
		"--logdir", dir,
		"--network", "testnet",
		"--bitcoind.host", "127.0.0.1:18332",
		"--adminrpc.port", "9001",
	})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Network != "testnet" {
		t.Fatalf("got network %q, want testnet", cfg.Network)
	}
	if cfg.AdminPort != 9001 {
		t.Fatalf("got admin port %d, want 9001", cfg.AdminPort)
	}
	if cfg.BitcoindHost != "127.0.0.1:18332" {
		t.Fatalf("got bitcoind host %q", cfg.BitcoindHost)
	}
	if cfg.DataDir != dir {
		t.Fatalf("got datadir %q, want %q", cfg.DataDir, dir)
	}
}

func TestLoadConfigRepeatedAddPeer(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig([]string{
		"--datadir", dir,
		"--logdir", dir,
		"--addpeer", "10.0.0.1:8555",
		"--addpeer", "10.0.0.2:8555",
	})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if len(cfg.AddPeers) != 2 {
		t.Fatalf("got %d peers, want 2: %v", len(cfg.AddPeers), cfg.AddPeers)
	}
}
