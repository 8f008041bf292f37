// Package config manages orghub configuration settings.
//
// Configuration is loaded from a YAML file (ORGHUB_CONFIG_PATH/orghub.yml)
// with environment variable overrides, tracking the source of each value.
// Secrets are intentionally excluded: DATABASE_URL and ORGHUB_TOKEN_SECRET
// are read from the environment only.
package config
