package database

import (
	"context"
	"testing"

	"github.com/dbsmedya/goeclat/internal/config"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		expected string
	}{
		{
			name: "basic connection",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "miner",
				Password: "secret",
				Database: "warehouse",
			},
			expected: "miner:secret@tcp(localhost:3306)/warehouse?parseTime=true&tls=preferred",
		},
		{
			name: "tls disabled",
			cfg: config.DatabaseConfig{
				Host:     "db.example.com",
				Port:     3307,
				User:     "app",
				Password: "pass",
				Database: "orders",
				TLS:      "disable",
			},
			expected: "app:pass@tcp(db.example.com:3307)/orders?parseTime=true&tls=false",
		},
		{
			name: "tls required",
			cfg: config.DatabaseConfig{
				Host:     "db.example.com",
				Port:     3306,
				User:     "app",
				Password: "pass",
				Database: "orders",
				TLS:      "required",
			},
			expected: "app:pass@tcp(db.example.com:3306)/orders?parseTime=true&tls=true",
		},
		{
			name: "no database name",
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "root",
				Password: "root",
				TLS:      "preferred",
			},
			expected: "root:root@tcp(localhost:3306)/?parseTime=true&tls=preferred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildDSN(&tt.cfg); got != tt.expected {
				t.Errorf("BuildDSN() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewManager(t *testing.T) {
	cfg := config.DefaultConfig()
	m := NewManager(cfg)
	if m == nil {
		t.Fatal("NewManager returned nil")
	}
	if m.Source != nil {
		t.Error("Source should be nil before Connect")
	}
}

func TestManagerClose_NilConnection(t *testing.T) {
	m := NewManager(config.DefaultConfig())
	if err := m.Close(); err != nil {
		t.Errorf("Close on unconnected manager should not fail: %v", err)
	}
}

func TestManagerPing_NilConnection(t *testing.T) {
	m := NewManager(config.DefaultConfig())
	if err := m.Ping(context.Background()); err != nil {
		t.Errorf("Ping on unconnected manager should not fail: %v", err)
	}
}
