// Package config loads the weblink CLI configuration from defaults, an
// optional config file, a .env file and WEBLINK_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/smnsjas/go-weblink/client"
	"github.com/smnsjas/go-weblink/soap"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "WEBLINK"

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

// Config holds the CLI configuration.
type Config struct {
	Endpoint       string        `mapstructure:"endpoint"`
	Namespace      string        `mapstructure:"namespace"`
	Username       string        `mapstructure:"username"`
	Password       string        `mapstructure:"password"`
	TimeoutSeconds int64         `mapstructure:"timeout"`
	Timeout        time.Duration `mapstructure:"-"`
	UserAgent      string        `mapstructure:"user_agent"`
	AuthType       string        `mapstructure:"auth_type"`
	SOAPVersion    string        `mapstructure:"soap_version"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFile        string        `mapstructure:"log_file"`
	Format         string        `mapstructure:"format"`
}

// Load reads the configuration. configFile may be empty.
func Load(configFile string) (*Config, error) {
	return LoadFiles(DefaultEnvFile, configFile)
}

// LoadFiles reads the configuration using the given dotenv and config files.
// Precedence, highest first: environment, dotenv file, config file, defaults.
// A missing dotenv file is ignored; a missing config file is an error.
func LoadFiles(envFile, configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("endpoint", client.DefaultEndpoint)
	v.SetDefault("namespace", client.DefaultNamespace)
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("timeout", int64(client.DefaultTimeout/time.Second))
	v.SetDefault("user_agent", "")
	v.SetDefault("auth_type", "basic")
	v.SetDefault("soap_version", "1.1")
	v.SetDefault("log_level", "")
	v.SetDefault("log_file", "")
	v.SetDefault("format", "json")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		for name, value := range values {
			key, ok := strings.CutPrefix(name, EnvPrefix+"_")
			if !ok {
				continue
			}
			if _, set := os.LookupEnv(name); set {
				continue
			}
			v.Set(strings.ToLower(key), value)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid timeout %d (must be positive seconds)", c.TimeoutSeconds)
	}

	c.AuthType = strings.ToLower(c.AuthType)
	if c.AuthType != "basic" && c.AuthType != "ntlm" {
		return fmt.Errorf("invalid auth_type %q (want basic or ntlm)", c.AuthType)
	}
	if c.SOAPVersion != "1.1" && c.SOAPVersion != "1.2" {
		return fmt.Errorf("invalid soap_version %q (want 1.1 or 1.2)", c.SOAPVersion)
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format != "json" && c.Format != "yaml" {
		return fmt.Errorf("invalid format %q (want json or yaml)", c.Format)
	}
	return nil
}

// ClientOptions converts the configuration into client options.
func (c *Config) ClientOptions(logger *slog.Logger) []client.Option {
	authType := client.AuthBasic
	if c.AuthType == "ntlm" {
		authType = client.AuthNTLM
	}
	version := soap.Version11
	if c.SOAPVersion == "1.2" {
		version = soap.Version12
	}

	return []client.Option{
		client.WithEndpoint(c.Endpoint),
		client.WithNamespace(c.Namespace),
		client.WithAuthType(authType),
		client.WithSOAPVersion(version),
		client.WithTimeout(c.Timeout),
		client.WithUserAgent(c.UserAgent),
		client.WithLogger(logger),
	}
}

// LogValue implements slog.LogValuer so the password never leaks into logs.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", c.Endpoint),
		slog.String("username", c.Username),
		slog.Duration("timeout", c.Timeout),
		slog.String("scheme", c.AuthType),
		slog.String("soap_version", c.SOAPVersion),
		slog.String("format", c.Format),
	)
}
