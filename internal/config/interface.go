package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the file at path and applies every setting it contains on
	// top of base. Settings absent from the file keep their base value.
	Load(ctx context.Context, path string, base Model) (*Model, error)
}
