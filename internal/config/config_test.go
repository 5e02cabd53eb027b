package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidateStationsConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errMsg    string
	}{
		{
			name: "valid stations",
			config: &Config{
				Stations: []StationConfig{
					{Name: "otterbourne", SourceID: "src-01", TableSuffix: "otterbourne", BottomLevelMM: 1200},
					{Name: "highbridge", SourceID: "src-02", TableSuffix: "highbridge_2", BottomLevelMM: 950},
				},
			},
			wantError: false,
		},
		{
			name:      "no stations",
			config:    &Config{},
			wantError: true,
			errMsg:    "at least one station is required",
		},
		{
			name: "missing name",
			config: &Config{
				Stations: []StationConfig{
					{SourceID: "src-01", BottomLevelMM: 1200},
				},
			},
			wantError: true,
			errMsg:    "name is required",
		},
		{
			name: "duplicate names",
			config: &Config{
				Stations: []StationConfig{
					{Name: "otterbourne", SourceID: "src-01", BottomLevelMM: 1200},
					{Name: "otterbourne", SourceID: "src-02", BottomLevelMM: 900},
				},
			},
			wantError: true,
			errMsg:    "duplicate station name",
		},
		{
			name: "missing source id",
			config: &Config{
				Stations: []StationConfig{
					{Name: "otterbourne", BottomLevelMM: 1200},
				},
			},
			wantError: true,
			errMsg:    "source_id is required",
		},
		{
			name: "suffix defaults to station name",
			config: &Config{
				Stations: []StationConfig{
					{Name: "otterbourne", SourceID: "src-01", BottomLevelMM: 1200},
				},
			},
			wantError: false,
		},
		{
			name: "suffix with sql metacharacters",
			config: &Config{
				Stations: []StationConfig{
					{Name: "otterbourne", SourceID: "src-01", TableSuffix: "x; DROP TABLE tag.livedata", BottomLevelMM: 1200},
				},
			},
			wantError: true,
			errMsg:    "table_suffix",
		},
		{
			name: "suffix starting with digit",
			config: &Config{
				Stations: []StationConfig{
					{Name: "otterbourne", SourceID: "src-01", TableSuffix: "1otterbourne", BottomLevelMM: 1200},
				},
			},
			wantError: true,
			errMsg:    "table_suffix",
		},
		{
			name: "non-positive bottom level",
			config: &Config{
				Stations: []StationConfig{
					{Name: "otterbourne", SourceID: "src-01", TableSuffix: "otterbourne"},
				},
			},
			wantError: true,
			errMsg:    "bottom_level_mm must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validateStationsConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("validateStationsConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateStationsConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("validateStationsConfig() unexpected error = %v", err)
				}
			}
		})
	}
}

func TestValidateStationsConfigAppliesSuffixDefault(t *testing.T) {
	cfg := &Config{
		Stations: []StationConfig{
			{Name: "otterbourne", SourceID: "src-01", BottomLevelMM: 1200},
		},
	}

	if err := cfg.validateStationsConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Stations[0].TableSuffix != "otterbourne" {
		t.Errorf("expected table suffix to default to station name, got %q", cfg.Stations[0].TableSuffix)
	}
}

func TestValidateOIDCConfig(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
		errMsg    string
	}{
		{
			name: "valid config",
			config: &Config{
				Server: ServerConfig{FrontendURL: "https://rivers.example.com"},
				OIDC: OIDCConfig{
					BaseURL:      "https://idp.example.com",
					Realm:        "rivers",
					ClientID:     "river-watch",
					ClientSecret: "secret",
				},
			},
			wantError: false,
		},
		{
			name: "missing client id",
			config: &Config{
				OIDC: OIDCConfig{
					BaseURL:      "https://idp.example.com",
					Realm:        "rivers",
					ClientSecret: "secret",
				},
			},
			wantError: true,
			errMsg:    "client_id is required",
		},
		{
			name: "missing client secret",
			config: &Config{
				OIDC: OIDCConfig{
					BaseURL:  "https://idp.example.com",
					Realm:    "rivers",
					ClientID: "river-watch",
				},
			},
			wantError: true,
			errMsg:    "client_secret is required",
		},
		{
			name: "missing realm",
			config: &Config{
				OIDC: OIDCConfig{
					BaseURL:      "https://idp.example.com",
					ClientID:     "river-watch",
					ClientSecret: "secret",
				},
			},
			wantError: true,
			errMsg:    "realm is required",
		},
		{
			name: "invalid base url",
			config: &Config{
				OIDC: OIDCConfig{
					BaseURL:      "not a url",
					Realm:        "rivers",
					ClientID:     "river-watch",
					ClientSecret: "secret",
				},
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validateOIDCConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("validateOIDCConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateOIDCConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("validateOIDCConfig() unexpected error = %v", err)
				}
			}
		})
	}
}

func TestValidateOIDCConfigDefaultsRedirectURI(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{FrontendURL: "https://rivers.example.com"},
		OIDC: OIDCConfig{
			BaseURL:      "https://idp.example.com",
			Realm:        "rivers",
			ClientID:     "river-watch",
			ClientSecret: "secret",
		},
	}

	if err := cfg.validateOIDCConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "https://rivers.example.com/api/auth/callback"
	if cfg.OIDC.RedirectURI != expected {
		t.Errorf("expected redirect URI %q, got %q", expected, cfg.OIDC.RedirectURI)
	}

	if len(cfg.OIDC.Scopes) == 0 || cfg.OIDC.Scopes[0] != "openid" {
		t.Errorf("expected default scopes to start with openid, got %v", cfg.OIDC.Scopes)
	}
}

func TestIssuerURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		realm    string
		expected string
	}{
		{
			name:     "plain base url",
			baseURL:  "https://idp.example.com",
			realm:    "rivers",
			expected: "https://idp.example.com/realms/rivers",
		},
		{
			name:     "trailing slash",
			baseURL:  "https://idp.example.com/",
			realm:    "rivers",
			expected: "https://idp.example.com/realms/rivers",
		},
		{
			name:     "base url with path",
			baseURL:  "https://idp.example.com/auth",
			realm:    "rivers",
			expected: "https://idp.example.com/auth/realms/rivers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := OIDCConfig{BaseURL: tt.baseURL, Realm: tt.realm}
			if got := cfg.IssuerURL(); got != tt.expected {
				t.Errorf("IssuerURL() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateDataConfig(t *testing.T) {
	cfg := &Config{}
	if err := cfg.validateDataConfig(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Data.RefreshInterval != 60*time.Second {
		t.Errorf("expected default refresh interval of 60s, got %v", cfg.Data.RefreshInterval)
	}
	if cfg.Data.HistoryMaxDays != 90 {
		t.Errorf("expected default history cap of 90 days, got %d", cfg.Data.HistoryMaxDays)
	}

	cfg = &Config{Data: DataConfig{RefreshInterval: 5 * time.Second}}
	if err := cfg.validateDataConfig(); err == nil {
		t.Error("expected error for refresh interval below 30 seconds")
	}
}

func TestValidateRedisConfig(t *testing.T) {
	tests := []struct {
		name      string
		redis     *RedisConfig
		wantError bool
		errMsg    string
	}{
		{
			name:      "valid",
			redis:     &RedisConfig{Address: "127.0.0.1:6379", SessionIndex: 0, CacheIndex: 1},
			wantError: false,
		},
		{
			name:      "missing address",
			redis:     &RedisConfig{},
			wantError: true,
			errMsg:    "redis address is required",
		},
		{
			name:      "address without port",
			redis:     &RedisConfig{Address: "127.0.0.1"},
			wantError: true,
			errMsg:    "invalid redis address format",
		},
		{
			name:      "colliding indices",
			redis:     &RedisConfig{Address: "127.0.0.1:6379", SessionIndex: 2, CacheIndex: 2},
			wantError: true,
			errMsg:    "should be different",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Redis: tt.redis}
			err := cfg.validateRedisConfig()
			if tt.wantError {
				if err == nil {
					t.Errorf("validateRedisConfig() expected error but got none")
				} else if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("validateRedisConfig() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("validateRedisConfig() unexpected error = %v", err)
				}
			}
		})
	}
}

func TestStationByName(t *testing.T) {
	cfg := &Config{
		Stations: []StationConfig{
			{Name: "otterbourne", SourceID: "src-01"},
			{Name: "highbridge", SourceID: "src-02"},
		},
	}

	station, ok := cfg.StationByName("highbridge")
	if !ok {
		t.Fatal("expected to find station highbridge")
	}
	if station.SourceID != "src-02" {
		t.Errorf("expected source id src-02, got %s", station.SourceID)
	}

	if _, ok := cfg.StationByName("nowhere"); ok {
		t.Error("expected lookup of unknown station to fail")
	}
}
