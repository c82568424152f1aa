// Package conf wraps a YAML-backed configuration store with quick creation,
// saving and reloading, plus helpers for rendering user-facing messages
// (placeholder substitution, color-code translation, prefix injection) and
// for deduplicating list-valued entries.
//
// A Config can be backed by a file, a reader, or an in-memory settings tree.
// File-backed configs support the full lifecycle; reader-backed configs can
// be reloaded but not saved; wrapped configs support neither.
//
// Example YAML for the message helpers:
//
//	prefix:
//	    prefix: "&6Example &8> &r"
//	messages:
//	    test: "My test message!"
//
// Unless the prefix is excluded, Message("messages.test") renders the prefix
// followed by the message, with &-codes translated to terminal styling.
package conf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/renameio/v2"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPrefixPath is the dotted key the message prefix is read from.
const DefaultPrefixPath = "prefix.prefix"

// Config is a YAML configuration with message-rendering conveniences.
// Mutating methods return the receiver so calls can be chained.
type Config struct {
	mu sync.RWMutex
	v  *viper.Viper

	file   string
	source []byte // retained reader contents, for reloads
	app    *App
	logger *log.Logger

	lastReload   time.Time
	loadedOnOpen bool
	saveOK       bool
	reloadOK     bool

	// prefixPath is the dotted key of the message prefix, e.g. "prefix.prefix".
	// Only consulted while excludePrefix is false.
	prefixPath    string
	excludePrefix bool
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithApp attaches the owning application, enabling bundled-resource
// defaults and resource extraction.
func WithApp(app *App) Option {
	return func(c *Config) { c.app = app }
}

// WithDefaults layers default values, read as YAML from r, beneath the
// loaded values.
func WithDefaults(r io.Reader) Option {
	return func(c *Config) {
		data, err := io.ReadAll(r)
		if err != nil {
			c.log().Error("reading defaults", "error", err)
			return
		}
		if err := c.applyDefaults(data); err != nil {
			c.log().Error("applying defaults", "error", err)
		}
	}
}

// WithPrefixPath sets the dotted key the message prefix is read from.
func WithPrefixPath(path string) Option {
	return func(c *Config) { c.prefixPath = path }
}

// WithoutPrefix disables prefix injection for rendered messages.
func WithoutPrefix() Option {
	return func(c *Config) { c.excludePrefix = true }
}

// WithLogger sets the logger used for watcher and lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) { c.logger = logger }
}

func newConfig(opts ...Option) *Config {
	c := &Config{
		v:          newStore(),
		prefixPath: DefaultPrefixPath,
		saveOK:     true,
		reloadOK:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newStore() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	return v
}

// New returns a file-backed Config without loading it. Call Load (or
// Reload) before reading values.
func New(path string, opts ...Option) *Config {
	c := newConfig(opts...)
	c.file = path
	return c
}

// Open returns a file-backed Config loaded immediately.
func Open(path string, opts ...Option) (*Config, error) {
	c := New(path, opts...)
	c.loadedOnOpen = true
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromReader returns a Config loaded from r. The contents are retained so
// the config can be reloaded; saving is unsupported.
func FromReader(r io.Reader, opts ...Option) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	c := newConfig(opts...)
	c.source = data
	c.saveOK = false
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}

// Wrap returns a Config over an existing settings tree. Saving and
// reloading are unsupported.
func Wrap(settings map[string]any) *Config {
	c := newConfig()
	c.saveOK = false
	c.reloadOK = false
	for k, val := range settings {
		c.v.Set(k, val)
	}
	return c
}

// Load reads the configuration from its file or retained reader contents.
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(c.v)
}

// load reads into the given store. Callers hold the write lock.
func (c *Config) load(v *viper.Viper) error {
	switch {
	case c.file != "":
		v.SetConfigFile(c.file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	case c.source != nil:
		if err := v.ReadConfig(bytes.NewReader(c.source)); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	default:
		return ErrReloadUnsupported
	}
	return nil
}

// Save marshals the current settings to YAML and writes them atomically to
// the backing file. Reader-backed and wrapped configs return
// ErrSaveUnsupported.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.file == "" || !c.saveOK {
		return ErrSaveUnsupported
	}

	data, err := yaml.Marshal(c.v.AllSettings())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := renameio.WriteFile(c.file, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Reload re-reads the configuration from its source. The new contents are
// loaded into a fresh store and swapped in only on success, so a failed
// reload leaves the previous snapshot intact. When an App is attached and
// bundles a resource of the same name, its values are re-applied as
// defaults.
func (c *Config) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.reloadOK {
		return ErrReloadUnsupported
	}

	fresh := newStore()
	if err := c.load(fresh); err != nil {
		return err
	}

	if c.app != nil && c.file != "" {
		if data, err := c.app.Resource(filepath.Base(c.file)); err == nil {
			if err := applyDefaultsTo(fresh, data); err != nil {
				return fmt.Errorf("applying bundled defaults: %w", err)
			}
		}
	}

	c.v = fresh
	c.lastReload = time.Now()
	return nil
}

// CreateIfMissing extracts the bundled resource of the same name to the
// backing file if it does not exist yet. Requires an attached App.
func (c *Config) CreateIfMissing() error {
	if c.file == "" || !c.saveOK {
		return ErrSaveUnsupported
	}
	if _, err := os.Stat(c.file); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking config file: %w", err)
	}
	return c.SaveResource(false)
}

// SaveResource extracts the bundled resource matching the backing file's
// name into place. Existing files are kept unless replace is set.
func (c *Config) SaveResource(replace bool) error {
	if c.app == nil {
		return ErrNoApp
	}
	if c.file == "" || !c.saveOK {
		return ErrSaveUnsupported
	}
	return c.app.extractResource(filepath.Base(c.file), c.file, replace)
}

// applyDefaults layers YAML defaults beneath the live values.
func (c *Config) applyDefaults(data []byte) error {
	return applyDefaultsTo(c.v, data)
}

func applyDefaultsTo(v *viper.Viper, data []byte) error {
	d := newStore()
	if err := d.ReadConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parsing defaults: %w", err)
	}
	for _, key := range d.AllKeys() {
		v.SetDefault(key, d.Get(key))
	}
	return nil
}

// SetApp attaches the owning application.
func (c *Config) SetApp(app *App) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.app = app
	return c
}

// App returns the attached application, if any.
func (c *Config) App() *App {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.app
}

// File returns the backing file path, or "" for reader-backed and wrapped
// configs.
func (c *Config) File() string {
	return c.file
}

// LastReload returns the time of the last successful Reload, or the zero
// time if the config has never been reloaded.
func (c *Config) LastReload() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastReload
}

// LoadedOnOpen reports whether the config was loaded at construction time.
func (c *Config) LoadedOnOpen() bool {
	return c.loadedOnOpen
}

// SaveSupported reports whether Save can succeed on this config.
func (c *Config) SaveSupported() bool {
	return c.saveOK
}

// Get returns the raw value at the dotted key, or nil.
func (c *Config) Get(key string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.Get(key)
}

// IsSet reports whether a value (or default) exists at the dotted key.
func (c *Config) IsSet(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.IsSet(key)
}

// Set writes a value at the dotted key. The change is in-memory until Save.
func (c *Config) Set(key string, value any) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.v.Set(key, value)
	return c
}

// String returns the string at key, or def when the key is unset.
func (c *Config) String(key, def string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.v.IsSet(key) {
		return def
	}
	return c.v.GetString(key)
}

// Bool returns the boolean at key, or def when the key is unset.
func (c *Config) Bool(key string, def bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.v.IsSet(key) {
		return def
	}
	return c.v.GetBool(key)
}

// Int returns the integer at key, or def when the key is unset.
func (c *Config) Int(key string, def int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.v.IsSet(key) {
		return def
	}
	return c.v.GetInt(key)
}

// Float returns the float at key, or def when the key is unset.
func (c *Config) Float(key string, def float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.v.IsSet(key) {
		return def
	}
	return c.v.GetFloat64(key)
}

// StringList returns the string list at key. Missing keys yield an empty
// slice.
func (c *Config) StringList(key string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetStringSlice(key)
}

// IntList returns the integer list at key. Missing keys yield an empty
// slice.
func (c *Config) IntList(key string) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetIntSlice(key)
}

// FloatList returns the float list at key. Elements that cannot be cast
// are dropped.
func (c *Config) FloatList(key string) []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items, err := cast.ToSliceE(c.v.Get(key))
	if err != nil {
		return nil
	}
	out := make([]float64, 0, len(items))
	for _, item := range items {
		f, err := cast.ToFloat64E(item)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

// AllSettings returns the merged settings tree.
func (c *Config) AllSettings() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.AllSettings()
}

// AllKeys returns every dotted key with a value or default.
func (c *Config) AllKeys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.AllKeys()
}

func (c *Config) log() *log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return log.Default()
}
