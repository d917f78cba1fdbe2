// Package config loads the server settings with viper.
//
// Values come from built-in defaults, then an optional config.yaml (in the
// working directory or at USERHUB_CONFIG_FILE), then USERHUB_* environment
// variables such as USERHUB_DATABASE_URL and USERHUB_AUTH_JWT_SECRET. The
// resulting Config is checked with validator struct tags before use.
package config
