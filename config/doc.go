// Package config loads runtime configuration for the page template service.
//
// Configuration is read from an optional `config.yaml` (searched in the
// working directory and `config/`) and can be overridden via environment
// variables prefixed with PAGETEMPLATE_, e.g. PAGETEMPLATE_TEMPLATE_PATH.
package config
