package config

import (
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config or -c)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvOIDCClientID     = "RIVERWATCH_OIDC_CLIENT_ID"
	EnvOIDCClientSecret = "RIVERWATCH_OIDC_CLIENT_SECRET"
	EnvOIDCBaseURL      = "RIVERWATCH_OIDC_BASE_URL"
	EnvOIDCRealm        = "RIVERWATCH_OIDC_REALM"
	EnvFrontendURL      = "RIVERWATCH_FRONTEND_URL"
	EnvRedisPassword    = "RIVERWATCH_REDIS_PASSWORD"
	EnvRedisUsername    = "RIVERWATCH_REDIS_USERNAME"
	EnvStorageHost      = "RIVERWATCH_STORAGE_HOST"
	EnvStoragePort      = "RIVERWATCH_STORAGE_PORT"
	EnvStorageUsername  = "RIVERWATCH_STORAGE_USERNAME"
	EnvStoragePassword  = "RIVERWATCH_STORAGE_PASSWORD"
	EnvStorageDatabase  = "RIVERWATCH_STORAGE_DATABASE"
)

func applyEnvironmentOverrides(config *Config) {
	if clientID := os.Getenv(EnvOIDCClientID); clientID != "" {
		config.OIDC.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvOIDCClientSecret); clientSecret != "" {
		config.OIDC.ClientSecret = clientSecret
	}

	if baseURL := os.Getenv(EnvOIDCBaseURL); baseURL != "" {
		config.OIDC.BaseURL = baseURL
	}

	if realm := os.Getenv(EnvOIDCRealm); realm != "" {
		config.OIDC.Realm = realm
	}

	if frontendURL := os.Getenv(EnvFrontendURL); frontendURL != "" {
		config.Server.FrontendURL = frontendURL
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if host := os.Getenv(EnvStorageHost); host != "" {
		config.Storage.Host = host
	}

	if portStr := os.Getenv(EnvStoragePort); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Storage.Port = port
		}
	}

	if username := os.Getenv(EnvStorageUsername); username != "" {
		config.Storage.Username = username
	}

	if password := os.Getenv(EnvStoragePassword); password != "" {
		config.Storage.Password = password
	}

	if database := os.Getenv(EnvStorageDatabase); database != "" {
		config.Storage.Database = database
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateOIDCConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateStorageConfig()
	if err != nil {
		return err
	}

	err = config.validateStationsConfig()
	if err != nil {
		return err
	}

	err = config.validateDataConfig()
	if err != nil {
		return err
	}

	err = config.validateCacheConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if err := validateURL(c.Server.FrontendURL, "server.frontend_url"); err != nil {
		return err
	}

	c.Server.FrontendURL = strings.TrimRight(c.Server.FrontendURL, "/")

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

func (c *Config) validateOIDCConfig() error {
	if c.OIDC.ClientID == "" {
		return fmt.Errorf("oidc client_id is required")
	}

	if c.OIDC.ClientSecret == "" {
		return fmt.Errorf("oidc client_secret is required")
	}

	if err := validateURL(c.OIDC.BaseURL, "oidc.base_url"); err != nil {
		return err
	}

	if c.OIDC.Realm == "" {
		return fmt.Errorf("oidc realm is required")
	}

	if c.OIDC.RedirectURI == "" {
		c.OIDC.RedirectURI = c.Server.FrontendURL + "/api/auth/callback"
	} else if err := validateURL(c.OIDC.RedirectURI, "oidc.redirect_url"); err != nil {
		return err
	}

	if len(c.OIDC.Scopes) == 0 {
		c.OIDC.Scopes = DefaultOIDCConfig.Scopes
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{c.Server.FrontendURL}
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.FixedTimeout == 0 {
		c.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	return nil
}

func (c *Config) validateStorageConfig() error {
	if c.Storage.Host == "" {
		return fmt.Errorf("storage.host is required")
	}

	if c.Storage.Port == 0 {
		c.Storage.Port = DefaultStorageConfig.Port
	}

	if c.Storage.Port <= 0 || c.Storage.Port > 65535 {
		return fmt.Errorf("storage.port must be between 1 and 65535, got %d", c.Storage.Port)
	}

	if c.Storage.Database == "" {
		return fmt.Errorf("storage.database is required")
	}

	if c.Storage.SSLMode == "" {
		c.Storage.SSLMode = DefaultStorageConfig.SSLMode
	}

	if c.Storage.MaxConns <= 0 {
		c.Storage.MaxConns = DefaultStorageConfig.MaxConns
	}

	return nil
}

// tableSuffixPattern restricts suffixes to what can be spliced into a table
// name safely. Everything else in the queries is a bind parameter.
var tableSuffixPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func (c *Config) validateStationsConfig() error {
	if len(c.Stations) == 0 {
		return fmt.Errorf("at least one station is required")
	}

	seen := make(map[string]bool, len(c.Stations))
	for i, station := range c.Stations {
		if station.Name == "" {
			return fmt.Errorf("stations[%d].name is required", i)
		}

		if seen[station.Name] {
			return fmt.Errorf("duplicate station name: %s", station.Name)
		}
		seen[station.Name] = true

		if station.SourceID == "" {
			return fmt.Errorf("stations[%d].source_id is required", i)
		}

		if station.TableSuffix == "" {
			c.Stations[i].TableSuffix = station.Name
		}

		if !tableSuffixPattern.MatchString(c.Stations[i].TableSuffix) {
			return fmt.Errorf("stations[%d].table_suffix %q must match %s", i, c.Stations[i].TableSuffix, tableSuffixPattern)
		}

		if station.BottomLevelMM <= 0 {
			return fmt.Errorf("stations[%d].bottom_level_mm must be positive", i)
		}
	}

	return nil
}

func (c *Config) validateDataConfig() error {
	if c.Data.RefreshInterval == 0 {
		c.Data.RefreshInterval = DefaultDataConfig.RefreshInterval
	} else if c.Data.RefreshInterval.Seconds() < 30 {
		return fmt.Errorf("data.refresh_interval cannot be less than 30 seconds")
	}

	if c.Data.SummaryTTL == 0 {
		c.Data.SummaryTTL = DefaultDataConfig.SummaryTTL
	}

	if c.Data.HistoryMaxDays <= 0 {
		c.Data.HistoryMaxDays = DefaultDataConfig.HistoryMaxDays
	}

	return nil
}

func (c *Config) validateCacheConfig() error {
	if c.Cache.Type == "" {
		c.Cache.Type = "memory"
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Redis == nil {
			return fmt.Errorf("redis configuration must be set to use redis for the data cache")
		}
	default:
		return fmt.Errorf("invalid cache type: %s, must be 'memory' or 'redis'", c.Cache.Type)
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is nil")
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
		return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
	}

	if c.Redis.SessionIndex == 0 && c.Redis.CacheIndex == 0 {
		c.Redis.SessionIndex = DefaultRedisConfig.SessionIndex
		c.Redis.CacheIndex = DefaultRedisConfig.CacheIndex
	}

	if c.Redis.SessionIndex < 0 {
		return fmt.Errorf("redis session_index must be non-negative, got %d", c.Redis.SessionIndex)
	}

	if c.Redis.CacheIndex < 0 {
		return fmt.Errorf("redis cache_index must be non-negative, got %d", c.Redis.CacheIndex)
	}

	if c.Redis.SessionIndex == c.Redis.CacheIndex {
		return fmt.Errorf("redis session_index and cache_index should be different to avoid data collision (both are %d)", c.Redis.SessionIndex)
	}

	const maxRedisDB = 15
	if c.Redis.SessionIndex > maxRedisDB {
		return fmt.Errorf("redis session_index %d exceeds typical maximum of %d", c.Redis.SessionIndex, maxRedisDB)
	}

	if c.Redis.CacheIndex > maxRedisDB {
		return fmt.Errorf("redis cache_index %d exceeds typical maximum of %d", c.Redis.CacheIndex, maxRedisDB)
	}

	return nil
}

// StationByName looks up a configured station by its route name.
func (c *Config) StationByName(name string) (StationConfig, bool) {
	for _, station := range c.Stations {
		if station.Name == name {
			return station, true
		}
	}

	return StationConfig{}, false
}
