// Package config resolves the icmt configuration from .icmt/conf.yaml, a
// .env file, environment variables and command-line flags.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/icmt/icmt/internal/icmt/api"
	"github.com/icmt/icmt/internal/icmt/errors"
	"github.com/icmt/icmt/internal/icmt/utils"
	"github.com/icmt/icmt/internal/log"
)

const (
	ConfigDir  = ".icmt"
	ConfigFile = "conf.yaml"
	EnvFile    = ".env"

	DefaultProfile = "default"
	DefaultHost    = "localhost"
	DefaultPort    = 8090
)

// Environment variables that override the config file.
const (
	EnvURL      = "ICMT_URL"
	EnvEmail    = "ICMT_EMAIL"
	EnvPassword = "ICMT_PASSWORD"
	EnvName     = "ICMT_NAME"
	EnvProfile  = "ICMT_PROFILE"
)

// Config is the resolved client configuration
type Config struct {
	URL     string          `yaml:"url"`
	Profile string          `yaml:"profile,omitempty"`
	Creds   api.Credentials `yaml:"creds,omitempty"`
	Server  ServerConfig    `yaml:"server,omitempty"`
}

// ServerConfig holds defaults for the web front-end
type ServerConfig struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// Path returns the config file location under dir
func Path(dir string) string {
	return filepath.Join(dir, ConfigDir, ConfigFile)
}

// Load resolves the configuration for the current working directory.
// Precedence, lowest first: conf.yaml, .env, process environment, urlFlag.
func Load(urlFlag string) (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir, urlFlag)
}

// LoadFrom is Load rooted at dir
func LoadFrom(dir, urlFlag string) (*Config, error) {
	var cfg Config

	confPath := Path(dir)
	if err := utils.ParseYamlFromFile(confPath, &cfg); err != nil {
		if !stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "failed to read config %s", confPath)
		}
		log.Debug("No config file at %s", confPath)
	}

	if err := godotenv.Load(filepath.Join(dir, EnvFile)); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		log.Warn("Could not load %s: %v", EnvFile, err)
	}

	overrideFromEnv(&cfg.URL, EnvURL)
	overrideFromEnv(&cfg.Creds.Email, EnvEmail)
	overrideFromEnv(&cfg.Creds.Password, EnvPassword)
	overrideFromEnv(&cfg.Creds.Name, EnvName)
	overrideFromEnv(&cfg.Profile, EnvProfile)

	if urlFlag = strings.TrimSpace(urlFlag); urlFlag != "" {
		cfg.URL = urlFlag
	}

	cfg.applyDefaults()

	if cfg.URL == "" {
		return nil, errors.Wrapf(errors.ErrEmptyURL, "set url in %s, %s, or pass --url", confPath, EnvURL)
	}
	return &cfg, nil
}

// Save writes cfg to the config file under dir
func Save(dir string, cfg *Config) error {
	return utils.WriteYamlToFile(Path(dir), cfg)
}

func (c *Config) applyDefaults() {
	c.URL = strings.TrimRight(strings.TrimSpace(c.URL), "/")
	if c.Profile == "" {
		c.Profile = DefaultProfile
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
}

func overrideFromEnv(field *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*field = v
	}
}

// HasCredentials reports whether both email and password are configured
func (c *Config) HasCredentials() bool {
	return c.Creds.Email != "" && c.Creds.Password != ""
}
