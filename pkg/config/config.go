// Package config loads pagesmith settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/pagesmith/config.toml (falling back to
// ~/.config/pagesmith/config.toml). A missing file is not an error: every
// setting has a default, applied by [Config.SetDefaults].
//
//	[store]
//	backend = "file"          # file, memory, redis or mongo
//	dir = "~/.local/share/pagesmith"
//
//	[store.redis]
//	addr = "localhost:6379"
//	prefix = "pagesmith:"
//
//	[store.mongo]
//	uri = "mongodb://localhost:27017"
//	database = "pagesmith"
//	collection = "documents"
//
//	[cache]
//	enabled = true
//	backend = "file"          # file or redis
//	ttl = "24h"
//	namespace = ""            # key prefix for shared backends
//
//	[server]
//	addr = ":8080"
//
//	[editor]
//	strict = false
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pagesmith/pkg/errors"
)

// AppName names the application directories.
const AppName = "pagesmith"

// Store backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Defaults.
const (
	DefaultServerAddr      = ":8080"
	DefaultRedisAddr       = "localhost:6379"
	DefaultRedisPrefix     = "pagesmith:"
	DefaultMongoURI        = "mongodb://localhost:27017"
	DefaultMongoDatabase   = "pagesmith"
	DefaultMongoCollection = "documents"
	DefaultCacheTTL        = 24 * time.Hour
)

// Config is the full configuration.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Editor EditorConfig `toml:"editor"`
}

// StoreConfig selects where editor state and templates persist.
type StoreConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig configures a Redis connection. It is shared by the redis
// store and the redis cache.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// MongoConfig configures the mongo store.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// CacheConfig configures the artifact cache.
type CacheConfig struct {
	Enabled *bool    `toml:"enabled"`
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`
	// Namespace prefixes every cache key, so several projects can share
	// one backend.
	Namespace string `toml:"namespace"`
}

// IsEnabled reports whether caching is on. It defaults to true.
func (c CacheConfig) IsEnabled() bool { return c.Enabled == nil || *c.Enabled }

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// EditorConfig configures editing behavior.
type EditorConfig struct {
	// Strict reports requests against missing ids as errors instead of
	// ignoring them.
	Strict bool `toml:"strict"`
}

// Duration is a time.Duration written as a string ("24h", "90m") in TOML.
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied.
func Default() Config {
	var c Config
	c.SetDefaults()
	return c
}

// SetDefaults fills every unset field.
func (c *Config) SetDefaults() {
	if c.Store.Backend == "" {
		c.Store.Backend = BackendFile
	}
	if c.Store.Dir == "" {
		c.Store.Dir = DataDir()
	}
	c.Store.Dir = expandHome(c.Store.Dir)
	if c.Store.Redis.Addr == "" {
		c.Store.Redis.Addr = DefaultRedisAddr
	}
	if c.Store.Redis.Prefix == "" {
		c.Store.Redis.Prefix = DefaultRedisPrefix
	}
	if c.Store.Mongo.URI == "" {
		c.Store.Mongo.URI = DefaultMongoURI
	}
	if c.Store.Mongo.Database == "" {
		c.Store.Mongo.Database = DefaultMongoDatabase
	}
	if c.Store.Mongo.Collection == "" {
		c.Store.Mongo.Collection = DefaultMongoCollection
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = BackendFile
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = CacheDir()
	}
	c.Cache.Dir = expandHome(c.Cache.Dir)
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = DefaultCacheTTL
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}

// Validate checks the configuration after defaults are applied.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendMemory, BackendRedis, BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "store.backend: unknown backend %q (want file, memory, redis or mongo)", c.Store.Backend)
	}
	switch c.Cache.Backend {
	case BackendFile, BackendRedis:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "cache.backend: unknown backend %q (want file or redis)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl: must not be negative")
	}
	if c.Store.Redis.DB < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "store.redis.db: must not be negative")
	}
	if c.Store.Backend == BackendFile {
		if err := errors.ValidatePath(c.Store.Dir); err != nil {
			return fmt.Errorf("store.dir: %w", err)
		}
	}
	return nil
}

// Load reads the configuration at path, applies defaults and validates it.
// An empty path reads [Path]; a missing file yields the defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
	}
	var c Config
	md, err := toml.DecodeFile(path, &c)
	switch {
	case err == nil:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Config{}, errors.New(errors.ErrCodeInvalidInput, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Write encodes c as TOML to path, creating its directory.
func Write(c Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Path returns the default configuration file path.
func Path() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "config.toml")
}

// DataDir returns the default directory of the file store.
func DataDir() string { return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")) }

// CacheDir returns the default directory of the file cache.
func CacheDir() string { return xdgDir("XDG_CACHE_HOME", ".cache") }

func xdgDir(env, fallback string) string {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppName)
	}
	return filepath.Join(home, fallback, AppName)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
