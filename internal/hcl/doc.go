// Package hcl provides the concrete HCL implementation of config.Loader.
// It is responsible for parsing the settings file, decoding its blocks with
// gohcl, and binding the free-form `overrides` attribute through cty.
package hcl
