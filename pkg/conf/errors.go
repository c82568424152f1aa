package conf

import "errors"

// Sentinel errors for unsupported lifecycle operations.
var (
	// ErrSaveUnsupported indicates the config has no writable backing file.
	ErrSaveUnsupported = errors.New("saving is not supported on this config")

	// ErrReloadUnsupported indicates the config has no reloadable source.
	ErrReloadUnsupported = errors.New("reloading is not supported on this config")

	// ErrNoApp indicates a bundled-resource operation was attempted without
	// an attached App.
	ErrNoApp = errors.New("no app attached to this config")

	// ErrResourceNotFound indicates the requested bundled resource does not
	// exist.
	ErrResourceNotFound = errors.New("bundled resource not found")
)
