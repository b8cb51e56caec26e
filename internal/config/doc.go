// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from a
// concrete source.
//
// The `config.Model` is the single source of truth for where the four graph
// tables live and how the optional health server is exposed. Concrete
// loaders, such as the HCL one, are provided in separate packages.
package config
