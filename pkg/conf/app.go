package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/renameio/v2"
)

// App describes the application a Config belongs to: where its data folder
// lives and which bundled default resources it ships.
type App struct {
	// Name identifies the application in logs.
	Name string

	// Dir is the data folder configs are read from and written to.
	Dir string

	// Resources holds the bundled default files, typically an embed.FS.
	Resources fs.FS

	// Logger receives lifecycle events. Defaults to the package logger.
	Logger *log.Logger
}

// EnsureDir creates the data folder if it does not exist.
func (a *App) EnsureDir() error {
	if a.Dir == "" {
		return errors.New("app has no data folder")
	}
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return fmt.Errorf("creating data folder: %w", err)
	}
	return nil
}

// Resource returns the contents of a bundled resource.
func (a *App) Resource(name string) ([]byte, error) {
	if a.Resources == nil {
		return nil, ErrResourceNotFound
	}
	data, err := fs.ReadFile(a.Resources, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
	}
	return data, nil
}

// HasResource reports whether a bundled resource exists.
func (a *App) HasResource(name string) bool {
	_, err := a.Resource(name)
	return err == nil
}

// extractResource writes a bundled resource to dest. Existing files are
// kept unless replace is set.
func (a *App) extractResource(name, dest string, replace bool) error {
	if !replace {
		if _, err := os.Stat(dest); err == nil {
			return nil
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("checking %s: %w", dest, err)
		}
	}

	data, err := a.Resource(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating data folder: %w", err)
	}
	if err := renameio.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("extracting resource %s: %w", name, err)
	}
	a.log().Debug("extracted bundled resource", "app", a.Name, "resource", name, "dest", dest)
	return nil
}

func (a *App) log() *log.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return log.Default()
}

// DefaultConfig opens the app's "config.yml", extracting the bundled copy
// on first run and layering it beneath the on-disk values.
func DefaultConfig(app *App) (*Config, error) {
	return NamedConfig(app, "config.yml")
}

// DefaultLang opens the app's "lang.yml" the same way as DefaultConfig.
func DefaultLang(app *App) (*Config, error) {
	return NamedConfig(app, "lang.yml")
}

// NamedConfig opens the named config in the app's data folder. The data
// folder is created if needed, the bundled resource of the same name is
// extracted when the file is missing, and the bundled values are applied
// as defaults.
func NamedConfig(app *App, name string, opts ...Option) (*Config, error) {
	if app == nil {
		return nil, ErrNoApp
	}
	if err := app.EnsureDir(); err != nil {
		return nil, err
	}

	path := filepath.Join(app.Dir, name)
	c := New(path, append(opts, WithApp(app))...)
	if err := c.SaveResource(false); err != nil && !errors.Is(err, ErrResourceNotFound) {
		return nil, err
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}
