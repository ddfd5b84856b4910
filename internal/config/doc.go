// Package config defines the format-agnostic settings model and the Loader
// interface that concrete file formats (see internal/hcl) implement.
package config
