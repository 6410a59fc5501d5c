// Package config loads and validates the application configuration.
//
// Configuration is optional: every setting has a default that reproduces the
// stock RaceCapture Pro to GEMS conversion. Values are read from config.yml
// when present, then overridden by RCPGEMS_* environment variables, then
// validated.
package config
