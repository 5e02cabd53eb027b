package config

import (
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig    `yaml:"server"`
	OIDC     OIDCConfig      `yaml:"oidc"`
	Log      LogConfig       `yaml:"log"`
	CORS     CORSConfig      `yaml:"cors"`
	Sessions SessionConfig   `yaml:"sessions"`
	Storage  StorageConfig   `yaml:"storage"`
	Stations []StationConfig `yaml:"stations"`
	Data     DataConfig      `yaml:"data"`
	Cache    CacheConfig     `yaml:"cache"`
	Redis    *RedisConfig    `yaml:"redis"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	FrontendURL string             `yaml:"frontend_url"`
	Debug       *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8080,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type OIDCConfig struct {
	BaseURL      string   `yaml:"base_url"`
	Realm        string   `yaml:"realm"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	RedirectURI  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

// IssuerURL returns the realm issuer in the Keycloak layout.
func (c OIDCConfig) IssuerURL() string {
	return strings.TrimRight(c.BaseURL, "/") + "/realms/" + c.Realm
}

var DefaultOIDCConfig = OIDCConfig{
	Scopes: []string{"openid", "profile", "email"},
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store        string        `yaml:"store"`
	FixedTimeout time.Duration `yaml:"fixed_timeout"`
	Name         string        `yaml:"name"`
	Secure       bool          `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FixedTimeout: 24 * time.Hour,
	Name:         "session_id",
	Secure:       true,
}

type StorageConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
}

var DefaultStorageConfig = StorageConfig{
	Port:     5432,
	SSLMode:  "prefer",
	MaxConns: 10,
}

// StationConfig describes one gauging station. TableSuffix selects the
// per-station aggregate tables in the tag schema, BottomLevelMM is the
// riverbed reference used to convert empty height into water level.
type StationConfig struct {
	Name          string `yaml:"name"`
	SourceID      string `yaml:"source_id"`
	TableSuffix   string `yaml:"table_suffix"`
	BottomLevelMM int    `yaml:"bottom_level_mm"`
}

type DataConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	SummaryTTL      time.Duration `yaml:"summary_ttl"`
	HistoryMaxDays  int           `yaml:"history_max_days"`
}

var DefaultDataConfig = DataConfig{
	RefreshInterval: 60 * time.Second,
	SummaryTTL:      5 * time.Minute,
	HistoryMaxDays:  90,
}

type CacheConfig struct {
	Type string `yaml:"type"` // "memory" or "redis"
}

type RedisConfig struct {
	Address      string `yaml:"address"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	SessionIndex int    `yaml:"session_index"`
	CacheIndex   int    `yaml:"cache_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
	CacheIndex:   1,
}
