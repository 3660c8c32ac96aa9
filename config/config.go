package config

import (
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultACRCloudHost  = "identify-ap-southeast-1.acrcloud.com"
	defaultACRTimeout    = 10
	defaultGeniusTimeout = 10
	defaultGeniusAPIURL  = "https://api.genius.com"
	defaultGeminiModel   = "gemini-2.0-flash"
	defaultGeminiURL     = "https://generativelanguage.googleapis.com"
	defaultGeminiTimeout = 30
	defaultSideTimeout   = 10
	defaultPort          = 5000
	defaultLogLevel      = "info"
	configBasename       = "config.toml"
)

// environment variables mapped onto configuration keys
var envKeys = map[string]string{
	"ACRCLOUD_HOST":          "acrcloud.host",
	"ACRCLOUD_ACCESS_KEY":    "acrcloud.access_key",
	"ACRCLOUD_ACCESS_SECRET": "acrcloud.access_secret",
	"ACRCLOUD_TIMEOUT":       "acrcloud.timeout",
	"GENIUS_ACCESS_TOKEN":    "genius.access_token",
	"GENIUS_TIMEOUT":         "genius.timeout",
	"GEMINI_API_KEY":         "gemini.api_key",
	"GEMINI_MODEL":           "gemini.model",
	"GEMINI_BASE_URL":        "gemini.base_url",
	"GEMINI_TIMEOUT":         "gemini.timeout",
	"SPOTIFY_ID":             "spotify.id",
	"SPOTIFY_KEY":            "spotify.key",
	"LASTFM_API_KEY":         "lastfm.api_key",
	"LASTFM_API_SECRET":      "lastfm.api_secret",
	"PORT":                   "server.port",
	"LYRIKA_ALLOWED_ORIGINS": "server.allowed_origins",
	"LYRIKA_LOG_LEVEL":       "log.level",
	"LYRIKA_LOG_FILE":        "log.file",
	"LYRIKA_FORMAT_LYRICS":   "lyrics.format",
}

type Config struct {
	ACRCloud ACRCloudConfig `koanf:"acrcloud"`
	Genius   GeniusConfig   `koanf:"genius"`
	Gemini   GeminiConfig   `koanf:"gemini"`
	Spotify  SpotifyConfig  `koanf:"spotify"`
	Lastfm   LastfmConfig   `koanf:"lastfm"`
	Server   ServerConfig   `koanf:"server"`
	Log      LogConfig      `koanf:"log"`
	Lyrics   LyricsConfig   `koanf:"lyrics"`
}

type ACRCloudConfig struct {
	Host         string `koanf:"host"`
	AccessKey    string `koanf:"access_key"`
	AccessSecret string `koanf:"access_secret"`
	Timeout      int    `koanf:"timeout"` // seconds
}

type GeniusConfig struct {
	AccessToken string `koanf:"access_token"`
	APIURL      string `koanf:"api_url"`
	Timeout     int    `koanf:"timeout"` // seconds
}

type GeminiConfig struct {
	APIKey  string `koanf:"api_key"`
	Model   string `koanf:"model"`
	BaseURL string `koanf:"base_url"`
	Timeout int    `koanf:"timeout"` // seconds
}

type SpotifyConfig struct {
	ID  string `koanf:"id"`
	Key string `koanf:"key"`
}

type LastfmConfig struct {
	APIKey    string `koanf:"api_key"`
	APISecret string `koanf:"api_secret"`
}

type ServerConfig struct {
	Port           int      `koanf:"port"`
	AllowedOrigins []string `koanf:"allowed_origins"` // empty or "*" allows any origin
}

type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

type LyricsConfig struct {
	Format *bool `koanf:"format"` // pass scraped lyrics through generative formatting (default: true)
}

// Load reads the configuration from the given TOML file, if any, or from
// the first config.toml found in the XDG config directories or in the
// working directory, then overlays environment variables
func Load(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths(paths...) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.ProviderWithValue("", ".", envValue), nil); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.ACRCloud.Host = strings.TrimSuffix(strings.TrimPrefix(cfg.ACRCloud.Host, "https://"), "/")
	cfg.Genius.APIURL = strings.TrimSuffix(cfg.Genius.APIURL, "/")
	cfg.Gemini.BaseURL = strings.TrimSuffix(cfg.Gemini.BaseURL, "/")
	return cfg, nil
}

func configPaths(paths ...string) []string {
	if len(paths) > 0 && paths[0] != "" {
		return paths[:1]
	}

	var configPaths []string
	if path, err := xdg.SearchConfigFile("lyrika/" + configBasename); err == nil {
		configPaths = append(configPaths, path)
	}
	// working directory wins over XDG
	return append(configPaths, configBasename)
}

func envValue(key, value string) (string, interface{}) {
	mapped, ok := envKeys[key]
	if !ok || value == "" {
		return "", nil
	}
	if mapped == "server.allowed_origins" {
		var origins []string
		for _, origin := range strings.Split(value, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		return mapped, origins
	}
	return mapped, value
}

// HasACRCloudConfig returns true if fingerprinting credentials are configured.
func (c *Config) HasACRCloudConfig() bool {
	return c.ACRCloud.AccessKey != "" && c.ACRCloud.AccessSecret != ""
}

// HasGeniusConfig returns true if the lyrics search token is configured.
func (c *Config) HasGeniusConfig() bool {
	return c.Genius.AccessToken != ""
}

// HasGeminiConfig returns true if the generative-text key is configured.
func (c *Config) HasGeminiConfig() bool {
	return c.Gemini.APIKey != ""
}

// HasSpotifyConfig returns true if Spotify client credentials are configured.
func (c *Config) HasSpotifyConfig() bool {
	return c.Spotify.ID != "" && c.Spotify.Key != ""
}

// HasLastfmConfig returns true if Last.fm is configured.
func (c *Config) HasLastfmConfig() bool {
	return c.Lastfm.APIKey != ""
}

// GetACRCloudConfig returns the fingerprinting configuration with defaults applied.
func (c *Config) GetACRCloudConfig() ACRCloudConfig {
	cfg := c.ACRCloud
	if cfg.Host == "" {
		cfg.Host = defaultACRCloudHost
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultACRTimeout
	}
	return cfg
}

// GetGeniusConfig returns the lyrics search configuration with defaults applied.
func (c *Config) GetGeniusConfig() GeniusConfig {
	cfg := c.Genius
	if cfg.APIURL == "" {
		cfg.APIURL = defaultGeniusAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultGeniusTimeout
	}
	return cfg
}

// GetGeminiConfig returns the generative-text configuration with defaults applied.
func (c *Config) GetGeminiConfig() GeminiConfig {
	cfg := c.Gemini
	if cfg.Model == "" {
		cfg.Model = defaultGeminiModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultGeminiURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultGeminiTimeout
	}
	return cfg
}

// GetServerConfig returns the HTTP server configuration with defaults applied.
func (c *Config) GetServerConfig() ServerConfig {
	cfg := c.Server
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = defaultPort
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	return cfg
}

// GetLogConfig returns the logging configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = defaultLogLevel
	}
	return cfg
}

// FormatLyrics reports whether scraped lyrics go through generative formatting.
func (c *Config) FormatLyrics() bool {
	return c.Lyrics.Format == nil || *c.Lyrics.Format
}

// SideTimeout is the deadline applied to artwork lookups.
func (c *Config) SideTimeout() time.Duration {
	return defaultSideTimeout * time.Second
}

func Seconds(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
