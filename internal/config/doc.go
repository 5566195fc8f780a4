// Package config defines the format-agnostic simulation settings, the Loader
// interface implemented by the file format adapters, and key=value overrides.
//
// The Model is the single source of truth for the app package. Concrete
// loaders for HCL and YAML live in separate packages.
package config
