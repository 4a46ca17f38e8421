// Package config manages the CLI profile file at ~/.vocabloom/config.yaml:
// per-profile backend URL and the persisted access/refresh token pair.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the hosted vocabloom backend root.
const DefaultAPIURL = "https://vocabloom-backend.onrender.com/api/"

type Config struct {
	CurrentProfile string              `yaml:"current_profile" mapstructure:"current_profile"`
	APIURL         string              `yaml:"api_url" mapstructure:"api_url"`
	Profiles       map[string]*Profile `yaml:"profiles" mapstructure:"profiles"`

	path string
	mu   sync.Mutex
}

type Profile struct {
	APIURL       string `yaml:"api_url,omitempty" mapstructure:"api_url"`
	AccessToken  string `yaml:"access_token,omitempty" mapstructure:"access_token"`
	RefreshToken string `yaml:"refresh_token,omitempty" mapstructure:"refresh_token"`
}

func Default() *Config {
	return &Config{
		CurrentProfile: "default",
		APIURL:         DefaultAPIURL,
		Profiles:       make(map[string]*Profile),
	}
}

// Load reads the config file and applies VOCABLOOM_* environment overrides.
// A missing file is not an error; defaults apply.
func Load(cfgFile string) (*Config, error) {
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfgFile = filepath.Join(home, ".vocabloom", "config.yaml")
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	v.SetDefault("current_profile", "default")
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetEnvPrefix("VOCABLOOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}
	cfg.path = cfgFile

	// AutomaticEnv only resolves keys on direct Get, not Unmarshal.
	if url := v.GetString("api_url"); url != "" {
		cfg.APIURL = url
	}
	if profile := v.GetString("profile"); profile != "" && os.Getenv("VOCABLOOM_PROFILE") != "" {
		cfg.CurrentProfile = profile
	}

	return cfg, nil
}

func (c *Config) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked()
}

func (c *Config) saveLocked() error {
	if c.path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(home, ".vocabloom", "config.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0600)
}

// ResolveProfile maps an empty name to the current profile.
func (c *Config) ResolveProfile(name string) string {
	if name == "" {
		return c.CurrentProfile
	}
	return name
}

// ResolveAPIURL returns the backend root for a profile: the profile's own
// URL when set, otherwise the global one.
func (c *Config) ResolveAPIURL(profile string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.Profiles[c.ResolveProfile(profile)]; ok && p.APIURL != "" {
		return p.APIURL
	}
	if c.APIURL != "" {
		return c.APIURL
	}
	return DefaultAPIURL
}

// SaveProfile records a profile and makes it current.
func (c *Config) SaveProfile(name, apiURL, accessToken, refreshToken string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name = c.ResolveProfile(name)
	if c.Profiles == nil {
		c.Profiles = make(map[string]*Profile)
	}
	c.Profiles[name] = &Profile{
		APIURL:       apiURL,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	c.CurrentProfile = name
	return c.saveLocked()
}

// RemoveProfile deletes a profile's stored credentials.
func (c *Config) RemoveProfile(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	name = c.ResolveProfile(name)
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("profile '%s' not found", name)
	}
	delete(c.Profiles, name)
	if c.CurrentProfile == name {
		c.CurrentProfile = ""
	}
	return c.saveLocked()
}

// TokenStore exposes a profile's token pair as a client.TokenStore. Every
// mutation is written straight through to the config file; a write failure
// is logged, the in-memory pair stays authoritative for this process.
type TokenStore struct {
	cfg  *Config
	name string
}

func (c *Config) TokenStore(profile string) *TokenStore {
	return &TokenStore{cfg: c, name: c.ResolveProfile(profile)}
}

func (s *TokenStore) profile() *Profile {
	p, ok := s.cfg.Profiles[s.name]
	if !ok {
		p = &Profile{}
		s.cfg.Profiles[s.name] = p
	}
	return p
}

func (s *TokenStore) Access() string {
	s.cfg.mu.Lock()
	defer s.cfg.mu.Unlock()
	return s.profile().AccessToken
}

func (s *TokenStore) Refresh() string {
	s.cfg.mu.Lock()
	defer s.cfg.mu.Unlock()
	return s.profile().RefreshToken
}

func (s *TokenStore) SetTokens(access, refresh string) {
	s.cfg.mu.Lock()
	defer s.cfg.mu.Unlock()
	p := s.profile()
	p.AccessToken = access
	p.RefreshToken = refresh
	if err := s.cfg.saveLocked(); err != nil {
		slog.Warn("could not persist tokens", "profile", s.name, "error", err)
	}
}

func (s *TokenStore) Clear() {
	s.cfg.mu.Lock()
	defer s.cfg.mu.Unlock()
	p := s.profile()
	p.AccessToken = ""
	p.RefreshToken = ""
	if err := s.cfg.saveLocked(); err != nil {
		slog.Warn("could not persist token clear", "profile", s.name, "error", err)
	}
}
