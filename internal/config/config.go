// Package config loads runtime settings from defaults, an optional YAML file
// and THUMBFORGE_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvPrefix namespaces every environment variable read by Load.
	EnvPrefix = "THUMBFORGE"

	defaultConfigName        = "thumbforge"
	defaultPort              = "8080"
	defaultReadHeaderTimeout = 5 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultRequestTimeout    = 30 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultLogLevel          = "info"
	defaultOutputDir         = "dist"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Site   SiteConfig   `mapstructure:"site"`
	Log    LogConfig    `mapstructure:"log"`
	Build  BuildConfig  `mapstructure:"build"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// SiteConfig holds deployment-specific page settings.
type SiteConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	SceneURL string `mapstructure:"scene_url"`
}

// LogConfig selects the minimum log level.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// BuildConfig controls the static export.
type BuildConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

// keys lists every setting Load understands.
var keys = []string{
	"server.addr",
	"server.read_header_timeout",
	"server.read_timeout",
	"server.write_timeout",
	"server.idle_timeout",
	"server.request_timeout",
	"server.shutdown_timeout",
	"site.base_url",
	"site.scene_url",
	"log.level",
	"build.output_dir",
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises loader behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	configFile string
	searchDirs []string
	envMap     map[string]string
	overrides  map[string]any
	systemEnv  bool
}

// WithConfigFile reads settings from path. A missing file is an error.
func WithConfigFile(path string) Option {
	return func(o *loaderOptions) {
		o.configFile = strings.TrimSpace(path)
	}
}

// WithSearchDirs replaces the directories searched for thumbforge.yaml.
func WithSearchDirs(dirs ...string) Option {
	return func(o *loaderOptions) {
		o.searchDirs = append([]string(nil), dirs...)
	}
}

// WithEnvMap supplies environment values that take precedence over the process environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithOverrides sets keys explicitly. Overrides win over every other source.
func WithOverrides(values map[string]any) Option {
	return func(o *loaderOptions) {
		o.overrides = values
	}
}

// WithoutSystemEnv ignores the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.systemEnv = false
	}
}

// Load resolves configuration. Precedence from lowest to highest: defaults,
// config file, environment, overrides. PORT is honoured when server.addr is
// not set anywhere.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		searchDirs: []string{"."},
		systemEnv:  true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := options.envMap[key]; ok {
			return v, true
		}
		if options.systemEnv {
			return os.LookupEnv(key)
		}
		return "", false
	}

	v := viper.New()
	v.SetDefault("server.read_header_timeout", defaultReadHeaderTimeout)
	v.SetDefault("server.read_timeout", defaultReadTimeout)
	v.SetDefault("server.write_timeout", defaultWriteTimeout)
	v.SetDefault("server.idle_timeout", defaultIdleTimeout)
	v.SetDefault("server.request_timeout", defaultRequestTimeout)
	v.SetDefault("server.shutdown_timeout", defaultShutdownTimeout)
	v.SetDefault("site.base_url", "")
	v.SetDefault("site.scene_url", "")
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("build.output_dir", defaultOutputDir)

	if err := readConfigFile(v, options); err != nil {
		return Config{}, err
	}

	for _, key := range keys {
		if val, ok := lookup(EnvKey(key)); ok {
			v.Set(key, val)
		}
	}
	for key, val := range options.overrides {
		v.Set(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	cfg.Server.Addr = resolveAddr(cfg.Server.Addr, lookup)
	cfg.Site.BaseURL = strings.TrimSpace(cfg.Site.BaseURL)
	cfg.Site.SceneURL = strings.TrimSpace(cfg.Site.SceneURL)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Build.OutputDir = strings.TrimSpace(cfg.Build.OutputDir)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EnvKey maps a dotted key to its environment variable name.
func EnvKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func readConfigFile(v *viper.Viper, options loaderOptions) error {
	if options.configFile != "" {
		v.SetConfigFile(options.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", options.configFile, err)
		}
		return nil
	}
	if len(options.searchDirs) == 0 {
		return nil
	}

	v.SetConfigName(defaultConfigName)
	v.SetConfigType("yaml")
	for _, dir := range options.searchDirs {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}
	return nil
}

func resolveAddr(addr string, lookup func(string) (string, bool)) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		if port, ok := lookup("PORT"); ok {
			addr = strings.TrimSpace(port)
		}
	}
	if addr == "" {
		addr = defaultPort
	}
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	return addr
}

// Validate reports every invalid field at once.
func Validate(cfg Config) error {
	var fields []string

	if _, port, err := net.SplitHostPort(cfg.Server.Addr); err != nil || port == "" {
		fields = append(fields, "server.addr")
	}
	durations := []struct {
		key   string
		value time.Duration
	}{
		{"server.read_header_timeout", cfg.Server.ReadHeaderTimeout},
		{"server.read_timeout", cfg.Server.ReadTimeout},
		{"server.write_timeout", cfg.Server.WriteTimeout},
		{"server.idle_timeout", cfg.Server.IdleTimeout},
		{"server.request_timeout", cfg.Server.RequestTimeout},
		{"server.shutdown_timeout", cfg.Server.ShutdownTimeout},
	}
	for _, d := range durations {
		if d.value <= 0 {
			fields = append(fields, d.key)
		}
	}
	if cfg.Site.BaseURL != "" && !isAbsoluteHTTP(cfg.Site.BaseURL) {
		fields = append(fields, "site.base_url")
	}
	if cfg.Site.SceneURL != "" && !isAbsoluteHTTP(cfg.Site.SceneURL) {
		fields = append(fields, "site.scene_url")
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		fields = append(fields, "log.level")
	}
	if cfg.Build.OutputDir == "" {
		fields = append(fields, "build.output_dir")
	}

	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
