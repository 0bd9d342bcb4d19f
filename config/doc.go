// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml, overridden from the environment
// and validated using struct tags.
package config
