package config

import "testing"

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("driver = %q, want sqlite", cfg.Database.Driver)
	}
	if cfg.GenAI.NumQueries != 3 {
		t.Errorf("num queries = %d, want 3", cfg.GenAI.NumQueries)
	}
	if cfg.Search.DefaultLocation != "United States" {
		t.Errorf("default location = %q", cfg.Search.DefaultLocation)
	}
	if cfg.Goals.ApplicationsPerWeek != 50 {
		t.Errorf("applications goal = %d, want 50", cfg.Goals.ApplicationsPerWeek)
	}
	if cfg.Goals.RevenuePerMonth != 8000 {
		t.Errorf("revenue goal = %v, want 8000", cfg.Goals.RevenuePerMonth)
	}
	if cfg.Goals.ContactsPerWeek != 5 || cfg.Goals.PostsPerWeek != 3 {
		t.Errorf("weekly goals = %d contacts, %d posts", cfg.Goals.ContactsPerWeek, cfg.Goals.PostsPerWeek)
	}
}

func TestDSN(t *testing.T) {
	sqlite := DatabaseConfig{Driver: "sqlite", Path: "./data/huntboard.db"}
	if dsn := sqlite.DSN(); dsn != "./data/huntboard.db" {
		t.Errorf("sqlite dsn = %q", dsn)
	}

	pg := DatabaseConfig{
		Driver:   "postgres",
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Name:     "huntboard",
		SSLMode:  "disable",
	}
	expected := "host=localhost port=5432 user=postgres password=secret dbname=huntboard sslmode=disable"
	if dsn := pg.DSN(); dsn != expected {
		t.Errorf("postgres dsn = %q, want %q", dsn, expected)
	}
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		name     string
		genaiKey string
		serpKey  string
		expected Capabilities
	}{
		{"no keys", "", "", Capabilities{}},
		{"genai only", "g-key", "", Capabilities{GenAI: true}},
		{"search only", "", "s-key", Capabilities{Search: true}},
		{"both", "g-key", "s-key", Capabilities{GenAI: true, Search: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}
			cfg.GenAI.APIKey = tt.genaiKey
			cfg.Search.APIKey = tt.serpKey
			if got := cfg.Capabilities(); got != tt.expected {
				t.Errorf("Capabilities() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
